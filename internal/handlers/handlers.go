package handlers

import (
	"github.com/gofiber/fiber/v3"

	"spacexdash/internal/models"
	"spacexdash/internal/validation"
)

// HX-Trigger carries the ID of the element that issued an htmx request.
const headerHXTrigger = "HX-Trigger"

// selectionFromQuery reads the widget values from the request query.
func selectionFromQuery(c fiber.Ctx, fallback models.PayloadRange) models.Selection {
	return validation.ParseSelection(c.Query("site"), c.Query("payload_low"), c.Query("payload_high"), fallback)
}

// changedWidgets returns the widgets an update request reports as changed.
// The HX-Trigger header wins over the changed query parameter.
func changedWidgets(c fiber.Ctx) []string {
	if ids := validation.ParseWidgetIDs(c.Get(headerHXTrigger)); len(ids) > 0 {
		return ids
	}
	return validation.ParseWidgetIDs(c.Query("changed"))
}
