package handlers

import (
	"log/slog"

	"github.com/gofiber/fiber/v3"

	"spacexdash/internal/config"
	"spacexdash/internal/dashboard"
)

// DashboardHandler serves the dashboard page and its htmx updates.
type DashboardHandler struct {
	dash *dashboard.Dashboard
	cfg  *config.Config
}

// NewDashboardHandler creates a new dashboard handler.
func NewDashboardHandler(dash *dashboard.Dashboard, cfg *config.Config) *DashboardHandler {
	return &DashboardHandler{dash: dash, cfg: cfg}
}

// Index renders the full dashboard with every chart computed for the
// selection in the query, or the default selection.
func (h *DashboardHandler) Index(c fiber.Ctx) error {
	layout := h.dash.Layout()
	sel := selectionFromQuery(c, layout.Slider.Value)

	figures, err := h.dash.Update(sel)
	if err != nil {
		slog.Error("failed to compute dashboard figures", "site", sel.Site, "error", err)
		return err
	}

	data := fiber.Map{
		"Title":     "Dashboard",
		"Layout":    layout,
		"Selection": sel,
	}
	for _, fig := range figures {
		switch fig.Output {
		case dashboard.PieOutput:
			data["Pie"] = fig
		case dashboard.ScatterOutput:
			data["Scatter"] = fig
		}
	}

	return c.Render("index", MergeBranding(data, h.cfg))
}

// Update recomputes the charts that depend on the changed widgets and
// returns them as out-of-band swaps.
func (h *DashboardHandler) Update(c fiber.Ctx) error {
	sel := selectionFromQuery(c, h.dash.Layout().Slider.Value)
	changed := changedWidgets(c)

	figures, err := h.dash.Update(sel, changed...)
	if err != nil {
		slog.Error("failed to update dashboard figures", "site", sel.Site, "changed", changed, "error", err)
		return err
	}

	return c.Render("partials/figures", fiber.Map{
		"Figures": figures,
	}, "")
}
