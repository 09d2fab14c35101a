package handler

import (
	"github.com/gofiber/fiber/v2"
)

// ValidationErrors maps a field name to its error messages, mirroring the
// {"message": ..., "errors": {field: [msgs]}} payload shape used by every
// rejected request.
type ValidationErrors map[string][]string

// JSONValidationError writes a 422 field-scoped validation payload.
func JSONValidationError(c *fiber.Ctx, message string, errs ValidationErrors) error {
	return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
		"message": message,
		"errors":  errs,
	})
}

// JSONNotFound writes a 404 payload with the given message.
func JSONNotFound(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
		"message": message,
	})
}

// JSONError writes an error payload with the given status.
func JSONError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"message": message,
	})
}
