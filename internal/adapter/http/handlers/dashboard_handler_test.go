package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"salesdesk/internal/adapter/http/handlers/mocks"
	"salesdesk/internal/domain/entities"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestDashboardHandler_GetStats(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("forwards window", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDashboardUseCase(ctrl)
		h := NewDashboardHandler(uc)

		r := gin.New()
		r.GET("/v1/dashboard/stats", h.GetStats)

		uc.EXPECT().
			Stats(gomock.Any(), 3, 2026).
			Return(entities.DashboardStats{
				KPICards: entities.KPICards{ActiveEngagements: 2, TotalContractValue: 54000, InactiveEngagements: 1},
				AnnualTrends: []entities.MonthlyTrend{
					{Month: "Jan", ByServiceLine: map[string]float64{"Audit": 18000}},
				},
			}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/dashboard/stats?month=3&year=2026", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &resp)
		kpi, ok := resp["kpi_cards"].(map[string]any)
		if !ok || kpi["active_engagements"] != 2.0 || kpi["total_contract_value"] != 54000.0 {
			t.Fatalf("unexpected kpi cards: %s", w.Body.String())
		}
		trends, ok := resp["annual_trends"].([]any)
		if !ok || len(trends) != 1 {
			t.Fatalf("unexpected trends: %s", w.Body.String())
		}
		row := trends[0].(map[string]any)
		if row["month"] != "Jan" || row["Audit"] != 18000.0 {
			t.Fatalf("expected flattened trend row, got %v", row)
		}
	})

	t.Run("defaults when no window given", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDashboardUseCase(ctrl)
		h := NewDashboardHandler(uc)

		r := gin.New()
		r.GET("/v1/dashboard/stats", h.GetStats)

		uc.EXPECT().Stats(gomock.Any(), 0, 0).Return(entities.DashboardStats{}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/dashboard/stats", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("non integer month", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDashboardUseCase(ctrl)
		h := NewDashboardHandler(uc)

		r := gin.New()
		r.GET("/v1/dashboard/stats", h.GetStats)

		req := httptest.NewRequest(http.MethodGet, "/v1/dashboard/stats?month=march", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
	})

	t.Run("usecase failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDashboardUseCase(ctrl)
		h := NewDashboardHandler(uc)

		r := gin.New()
		r.GET("/v1/dashboard/stats", h.GetStats)

		uc.EXPECT().Stats(gomock.Any(), 0, 0).Return(entities.DashboardStats{}, errors.New("scan failed"))

		req := httptest.NewRequest(http.MethodGet, "/v1/dashboard/stats", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
		var resp map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &resp)
		if resp["code"] != "INTERNAL_ERROR" {
			t.Fatalf("unexpected error body: %s", w.Body.String())
		}
	})
}
