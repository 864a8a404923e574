package api

import (
	"encoding/json"

	"github.com/gofiber/fiber/v3"

	"spacexdash/internal/dashboard"
	"spacexdash/internal/models"
	"spacexdash/internal/validation"
)

// DashboardHandler exposes the dashboard layout and chart data via JSON API.
type DashboardHandler struct {
	dash *dashboard.Dashboard
}

// NewDashboardHandler creates a new API dashboard handler.
func NewDashboardHandler(dash *dashboard.Dashboard) *DashboardHandler {
	return &DashboardHandler{dash: dash}
}

// Layout returns the widget layout and the chart callbacks wired to it.
func (h *DashboardHandler) Layout(c fiber.Ctx) error {
	resp := h.dash.Layout().Response()
	callbacks, err := h.dash.Callbacks()
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "failed to list callbacks")
	}
	resp.Callbacks = callbacks
	return jsonSuccess(c, resp)
}

// Pie returns the success pie chart data for the site in the query.
func (h *DashboardHandler) Pie(c fiber.Ctx) error {
	site := validation.NormalizeSite(c.Query("site"))
	return jsonSuccess(c, h.dash.Pie(site).Response())
}

// Scatter returns the payload scatter chart data for the selection in the query.
func (h *DashboardHandler) Scatter(c fiber.Ctx) error {
	sel := validation.ParseSelection(c.Query("site"), c.Query("payload_low"), c.Query("payload_high"), h.dash.Layout().Slider.Value)
	return jsonSuccess(c, h.dash.Scatter(sel.Site, sel.Payload).Response())
}

type selectionBody struct {
	Site    string               `json:"site"`
	Payload *models.PayloadRange `json:"payload"`
}

func (h *DashboardHandler) selection(b selectionBody) models.Selection {
	sel := h.dash.DefaultSelection()
	sel.Site = validation.NormalizeSite(b.Site)
	if b.Payload != nil {
		sel.Payload = b.Payload.Normalize()
	}
	return sel
}

// Update recomputes the charts affected by the changed widgets. Without an
// explicit changed list, a previous selection in the body is diffed against
// the current one; a previous selection equal to the current one updates
// nothing.
func (h *DashboardHandler) Update(c fiber.Ctx) error {
	var body struct {
		selectionBody
		Previous *selectionBody `json:"previous"`
		Changed  []string       `json:"changed"`
	}
	if err := json.Unmarshal(c.Body(), &body); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid request body")
	}

	sel := h.selection(body.selectionBody)
	changed := validation.FilterWidgetIDs(body.Changed)
	if len(body.Changed) == 0 && body.Previous != nil {
		changed = h.dash.Changed(h.selection(*body.Previous), sel)
		if len(changed) == 0 {
			return jsonSuccess(c, []models.FigureResponse{})
		}
	}

	figures, err := h.dash.Update(sel, changed...)
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "failed to update charts")
	}

	resp := make([]models.FigureResponse, 0, len(figures))
	for _, fig := range figures {
		resp = append(resp, fig.Response())
	}
	return jsonSuccess(c, resp)
}
