package controllers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"booknest/apperr"
)

var validate = validator.New()

// respondError maps the error taxonomy onto HTTP statuses. Anything outside
// the taxonomy is an internal error and gets a generic message.
func respondError(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	message := "An unexpected error occurred"

	switch apperr.KindOf(err) {
	case apperr.KindNotFound:
		status = fiber.StatusNotFound
		message = err.Error()
	case apperr.KindConflict:
		status = fiber.StatusConflict
		message = err.Error()
	case apperr.KindInvalidState:
		status = fiber.StatusBadRequest
		message = err.Error()
	case apperr.KindUnauthorized:
		status = fiber.StatusUnauthorized
		message = err.Error()
	}

	return c.Status(status).JSON(fiber.Map{
		"success": false,
		"message": message,
	})
}

func respondValidationError(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"success": false,
		"message": err.Error(),
	})
}

func respondBadRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"success": false,
		"message": message,
	})
}
