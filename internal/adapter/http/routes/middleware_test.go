package routes

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"salesdesk/internal/infrastructure/metrics"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func TestHTTPMetricsMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	m := metrics.NewRegistry()
	r := gin.New()
	r.Use(requestLogger(zap.NewNop()))
	r.Use(httpMetrics(m))
	r.GET("/orders/:order_id", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"id": c.Param("order_id")})
	})
	r.GET(PathMetrics, gin.WrapH(m.Handler()))

	t.Run("Should label series by route template, not by path", func(t *testing.T) {
		for _, id := range []string{"ord-1", "ord-2"} {
			req := httptest.NewRequest(http.MethodGet, "/orders/"+id, nil)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != http.StatusOK {
				t.Fatalf("expected status 200, got %d", w.Code)
			}
		}

		req := httptest.NewRequest(http.MethodGet, PathMetrics, nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected status 200, got %d", w.Code)
		}
		want := `salesdesk_http_requests_total{method="GET",route="/orders/:order_id",status="200"} 2`
		if body := w.Body.String(); !strings.Contains(body, want) {
			t.Errorf("metrics output missing %q", want)
		}
	})

	t.Run("Should count unmatched paths under one label", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/nope", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected status 404, got %d", w.Code)
		}

		req = httptest.NewRequest(http.MethodGet, PathMetrics, nil)
		w = httptest.NewRecorder()
		r.ServeHTTP(w, req)

		want := `salesdesk_http_requests_total{method="GET",route="unmatched",status="404"} 1`
		if body := w.Body.String(); !strings.Contains(body, want) {
			t.Errorf("metrics output missing %q", want)
		}
	})
}

func TestHealthRoute(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	addOpsRoutes(&r.RouterGroup, metrics.NewRegistry())

	req := httptest.NewRequest(http.MethodGet, PathHealth, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	if body := strings.TrimSpace(w.Body.String()); body != `{"status":"ok"}` {
		t.Errorf("unexpected body: %s", body)
	}
}
