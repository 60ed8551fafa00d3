// Package api wires the HTTP surface: routing, request decoding and the
// mapping from service errors to wire responses.
package api

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/oguzk/mobilebill/internal/auth"
	"github.com/oguzk/mobilebill/internal/middleware"
	"github.com/oguzk/mobilebill/internal/service"
)

// NewRouter builds the service router: the /v1 API surface, a liveness
// endpoint and the Prometheus scrape endpoint. A nil registry disables
// metrics (used by tests).
func NewRouter(authService *service.AuthService, billService *service.BillService, jwtManager *auth.JWTManager, registry *prometheus.Registry) *mux.Router {
	router := mux.NewRouter()

	if registry != nil {
		metrics := middleware.NewMetrics(registry)
		router.Use(metrics.Handler)
		router.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{})).Methods(http.MethodGet)
	}

	router.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods(http.MethodGet)

	authHandlers := NewAuthHandlers(authService)
	billHandlers := NewBillHandlers(billService)

	// Login and the website pay-bill endpoint are reachable without a token.
	public := router.PathPrefix("/v1").Subrouter()
	authHandlers.RegisterRoutes(public)
	billHandlers.RegisterPublicRoutes(public)

	// Everything else requires a valid bearer token.
	protected := router.PathPrefix("/v1").Subrouter()
	protected.Use(middleware.NewAuthMiddleware(jwtManager).Handler)
	billHandlers.RegisterProtectedRoutes(protected)

	return router
}
