package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Registry bundles the service's Prometheus collectors behind one private
// prometheus.Registry so the /metrics endpoint only exposes what we register.
type Registry struct {
	reg *prometheus.Registry

	HTTPRequests *prometheus.CounterVec
	HTTPDuration *prometheus.HistogramVec

	OrdersCreated       prometheus.Counter
	OrderTransitions    *prometheus.CounterVec
	ProductsDeactivated prometheus.Counter
	DraftOrdersCleaned  prometheus.Counter
}

func NewRegistry() *Registry {
	reg := prometheus.NewRegistry()

	httpRequests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "salesdesk_http_requests_total",
		Help: "HTTP requests by method, route and status code.",
	}, []string{"method", "route", "status"})
	httpDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "salesdesk_http_request_duration_seconds",
		Help:    "HTTP request latency by method and route.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route"})

	ordersCreated := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "salesdesk_orders_created_total",
		Help: "Orders successfully created.",
	})
	orderTransitions := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "salesdesk_order_status_transitions_total",
		Help: "Order status transitions by target status.",
	}, []string{"to"})
	productsDeactivated := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "salesdesk_products_deactivated_total",
		Help: "Products soft-deleted or deactivated.",
	})
	draftOrdersCleaned := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "salesdesk_draft_orders_cleaned_total",
		Help: "Draft orders removed because every item's product was deactivated.",
	})

	reg.MustRegister(httpRequests, httpDuration, ordersCreated, orderTransitions, productsDeactivated, draftOrdersCleaned)
	return &Registry{
		reg:                 reg,
		HTTPRequests:        httpRequests,
		HTTPDuration:        httpDuration,
		OrdersCreated:       ordersCreated,
		OrderTransitions:    orderTransitions,
		ProductsDeactivated: productsDeactivated,
		DraftOrdersCleaned:  draftOrdersCleaned,
	}
}

func (r *Registry) Handler() http.Handler { return promhttp.HandlerFor(r.reg, promhttp.HandlerOpts{}) }
