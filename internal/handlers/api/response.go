// Package api implements the JSON endpoints the browser toggle clients call.
package api

import (
	"log/slog"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

// failure returns the error envelope the toggle clients expect. A reference
// ID ties the client-visible message to the server log line.
func failure(c fiber.Ctx, status int, message string, err error) error {
	ref := uuid.NewString()
	if err != nil {
		slog.Error("toggle request failed", "ref", ref, "message", message, "error", err)
	}
	return c.Status(status).JSON(fiber.Map{
		"success": false,
		"error":   message,
		"ref":     ref,
	})
}
