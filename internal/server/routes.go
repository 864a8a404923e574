package server

import (
	"log"

	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"spacexdash/internal/aggregate"
	"spacexdash/internal/charts"
	"spacexdash/internal/dashboard"
	"spacexdash/internal/dataset"
	"spacexdash/internal/handlers"
	"spacexdash/internal/handlers/api"
)

// Deps are the components the routes are served from.
type Deps struct {
	Dataset    *dataset.Dataset
	Aggregator *aggregate.Aggregator
	Dashboard  *dashboard.Dashboard
	Renderer   *charts.Renderer
}

// RegisterRoutes registers all application routes.
func (s *Server) RegisterRoutes(deps Deps) {
	// Initialize handlers
	dashboardHandler := handlers.NewDashboardHandler(deps.Dashboard, s.Cfg)
	chartHandler := handlers.NewChartHandler(deps.Aggregator, deps.Renderer, deps.Dashboard.Layout().Slider.Value)
	probeHandler := handlers.NewProbeHandler(deps.Dataset)
	apiHandler := api.NewDashboardHandler(deps.Dashboard)

	// Probes
	s.App.Get("/healthz", probeHandler.Liveness)
	s.App.Get("/readyz", probeHandler.Readiness)

	// Dashboard page and htmx updates
	s.App.Get("/", dashboardHandler.Index)
	s.App.Get("/update", dashboardHandler.Update)

	// Chart images
	ext := s.Cfg.ChartExt()
	s.App.Get("/charts/pie."+ext, chartHandler.Pie)
	s.App.Get("/charts/scatter."+ext, chartHandler.Scatter)

	// JSON API
	s.App.Get("/api/layout", apiHandler.Layout)
	s.App.Get("/api/pie", apiHandler.Pie)
	s.App.Get("/api/scatter", apiHandler.Scatter)
	s.App.Post("/api/update", apiHandler.Update)

	if s.Cfg.MetricsEnabled {
		s.App.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
	} else {
		log.Println("Metrics endpoint is disabled. Set METRICS_ENABLED=true to enable.")
	}
}
