package handlers

import (
	"net/http"
	request "salesdesk/internal/adapter/http/dto/request"
	response "salesdesk/internal/adapter/http/dto/response"
	"salesdesk/internal/usecase"
	"salesdesk/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidStatsQuery = pkg.NewDomainErrorSimple("VALIDATION_ERROR", "Invalid query parameters", http.StatusUnprocessableEntity)
)

// DashboardHandler handles HTTP requests for the analytics dashboard.

type DashboardHandler struct {
	usecase usecase.IDashboardUseCase
}

func NewDashboardHandler(uc usecase.IDashboardUseCase) *DashboardHandler {
	return &DashboardHandler{usecase: uc}
}

// GetStats returns the KPI cards, industry and service line breakdowns and the
// annual trends for the requested window.
func (h *DashboardHandler) GetStats(c *gin.Context) {
	var query request.DashboardStatsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(errInvalidStatsQuery.HTTPStatus, errInvalidStatsQuery.ToHTTPError())
		return
	}

	stats, err := h.usecase.Stats(c.Request.Context(), query.Month, query.Year)
	if err != nil {
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromDashboardStats(stats))
}
