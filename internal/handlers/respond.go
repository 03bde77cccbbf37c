package handlers

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"glamgirl/internal/api"
)

// writeError maps a service failure onto the HTTP response. Backend-reported
// failures keep their status and human-readable reason; everything else
// (transport, decode) is logged in full and reported generically, since the
// detail is of no use to a shopper.
func writeError(c *fiber.Ctx, err error) error {
	var apiErr *api.Error
	if errors.As(err, &apiErr) {
		return c.Status(apiErr.Status).JSON(fiber.Map{
			"error": apiErr.Message,
		})
	}

	log.Printf("Error handling %s %s: %v", c.Method(), c.Path(), err)
	return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
		"error": api.Reason(err),
	})
}

// logRefreshFailure records a non-fatal cart fetch failure. The stale
// mirror is still served.
func logRefreshFailure(c *fiber.Ctx, err error) {
	log.Printf("Cart refresh failed on %s %s, serving last known state: %v", c.Method(), c.Path(), err)
}
