package routes

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// NotFoundRoute is the JSON 404 fallback. Static uploads pass through so the
// file handler can answer for them.
func NotFoundRoute(app *fiber.App) {
	app.Use(func(c *fiber.Ctx) error {
		if strings.HasPrefix(c.Path(), "/uploads/") {
			return c.Next()
		}

		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"message": "Endpoint not found",
		})
	})
}
