package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/dcastaneda/mercato-backend/api/controllers"
	analyticscontrollers "github.com/dcastaneda/mercato-backend/api/controllers/analytics"
	"github.com/dcastaneda/mercato-backend/api/middleware"
	"github.com/dcastaneda/mercato-backend/internal/analytics"
	"github.com/dcastaneda/mercato-backend/pkg/config"
	"github.com/dcastaneda/mercato-backend/pkg/logger"
	"github.com/dcastaneda/mercato-backend/pkg/metrics"
)

// NewRouter wires the HTTP surface: health probes, prometheus metrics, and
// the authenticated vendor reporting endpoints.
func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	database controllers.Pinger,
	cache controllers.Pinger,
	httpMetrics *metrics.HTTPMetrics,
	gatherer prometheus.Gatherer,
	analyticsService analytics.Service,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.Metrics(httpMetrics),
		middleware.CORS(),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, database, cache))
	})

	if gatherer != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	}

	r.Route("/api/public", func(r chi.Router) {
		r.Get("/ping", controllers.PublicPing())
	})

	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.Auth(cfg.JWT, logg))

		r.Get("/ping", controllers.PrivatePing())

		r.Route("/v1/vendor", func(r chi.Router) {
			r.Get("/analytics", analyticscontrollers.VendorAnalytics(analyticsService, logg))
			r.Get("/dashboard", analyticscontrollers.VendorDashboard(analyticsService, logg))
		})
	})

	return r
}
