package handlers

import (
	"errors"
	"log"

	"storefront/internal/models"

	"github.com/gofiber/fiber/v2"
)

// errorResponse maps a service error onto the HTTP taxonomy:
// Validation → 400, NotFound → 404, everything else → 500 with a
// generic message (the details are logged server-side only).
func errorResponse(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, models.ErrValidation):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": err.Error(),
		})
	case errors.Is(err, models.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"message": err.Error(),
		})
	default:
		log.Printf("Internal error handling %s %s: %v", c.Method(), c.Path(), err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "internal server error",
		})
	}
}

// currentUserID returns the authenticated user's ID placed in the
// context by the auth middleware.
func currentUserID(c *fiber.Ctx) string {
	userID, _ := c.Locals("user_id").(string)
	return userID
}
