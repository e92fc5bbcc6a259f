package routes

import (
	"net/http"
	"salesdesk/internal/infrastructure/metrics"

	"github.com/gin-gonic/gin"
)

const (
	PathHealth  = "/health"
	PathMetrics = "/metrics"
)

func addOpsRoutes(rg *gin.RouterGroup, m *metrics.Registry) {
	rg.GET(PathHealth, healthCheck)
	rg.GET(PathMetrics, gin.WrapH(m.Handler()))
}

// healthCheck answers container and load balancer liveness probes.
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
