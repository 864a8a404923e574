package handlers

import (
	"bytes"
	"log/slog"

	"github.com/gofiber/fiber/v3"

	"spacexdash/internal/aggregate"
	"spacexdash/internal/charts"
	"spacexdash/internal/models"
	"spacexdash/internal/validation"
)

// ChartHandler renders chart images.
type ChartHandler struct {
	agg      *aggregate.Aggregator
	renderer *charts.Renderer
	payload  models.PayloadRange
}

// NewChartHandler creates a new chart handler. payload is the range used
// when a request doesn't specify one.
func NewChartHandler(agg *aggregate.Aggregator, renderer *charts.Renderer, payload models.PayloadRange) *ChartHandler {
	return &ChartHandler{agg: agg, renderer: renderer, payload: payload}
}

// Pie renders the success pie chart for the site in the query.
func (h *ChartHandler) Pie(c fiber.Ctx) error {
	view := h.agg.SuccessPie(validation.NormalizeSite(c.Query("site")))

	var buf bytes.Buffer
	if err := h.renderer.Pie(view, &buf); err != nil {
		slog.Error("failed to render chart", "chart", "pie", "site", view.Site, "error", err)
		return err
	}
	return h.send(c, buf.Bytes())
}

// Scatter renders the payload scatter chart for the selection in the query.
func (h *ChartHandler) Scatter(c fiber.Ctx) error {
	sel := selectionFromQuery(c, h.payload)
	view := h.agg.PayloadScatter(sel.Site, sel.Payload)

	var buf bytes.Buffer
	if err := h.renderer.Scatter(view, &buf); err != nil {
		slog.Error("failed to render chart", "chart", "scatter", "site", view.Site, "error", err)
		return err
	}
	return h.send(c, buf.Bytes())
}

func (h *ChartHandler) send(c fiber.Ctx, body []byte) error {
	c.Set(fiber.HeaderContentType, h.renderer.ContentType())
	// URLs carry the dataset ID, so a given URL always renders the same image
	c.Set(fiber.HeaderCacheControl, "public, max-age=3600")
	return c.Send(body)
}
