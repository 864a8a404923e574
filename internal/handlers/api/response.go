package api

import (
	"github.com/gofiber/fiber/v3"
)

// Envelope statuses.
const (
	statusOK    = "ok"
	statusError = "error"
)

// Envelope wraps every JSON API response.
type Envelope struct {
	Status string `json:"status"`
	Data   any    `json:"data,omitempty"`
	Error  string `json:"error,omitempty"`
}

// jsonSuccess returns a 200 response with data wrapped in the envelope.
func jsonSuccess(c fiber.Ctx, data any) error {
	return c.JSON(Envelope{Status: statusOK, Data: data})
}

// jsonError returns an error envelope with the given HTTP status code.
func jsonError(c fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(Envelope{Status: statusError, Error: message})
}
