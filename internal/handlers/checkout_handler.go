package handlers

import (
	"fmt"
	"log"

	"storefront/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// CheckoutHandler handles HTTP requests for checkouts.
type CheckoutHandler struct {
	service  *services.CheckoutService
	validate *validator.Validate
}

// NewCheckoutHandler creates a new CheckoutHandler.
func NewCheckoutHandler(service *services.CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the checkout routes with the Fiber app.
func (h *CheckoutHandler) RegisterRoutes(router fiber.Router) {
	checkoutRoutes := router.Group("/checkout")
	checkoutRoutes.Post("/", h.HandleCheckout)
	checkoutRoutes.Post("/solo", h.HandleSoloCheckout)
}

// HandleCheckout converts the authenticated user's cart into an order.
func (h *CheckoutHandler) HandleCheckout(c *fiber.Ctx) error {
	order, err := h.service.Checkout(currentUserID(c))
	if err != nil {
		log.Printf("Checkout failed for user %s: %v", currentUserID(c), err)
		return errorResponse(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(order)
}

// SoloCheckoutRequest is the request body for an ad hoc single-product
// checkout.
type SoloCheckoutRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Quantity  int    `json:"quantity" validate:"omitempty,gte=1"`
}

// HandleSoloCheckout creates an order for a single product, bypassing
// the cart.
func (h *CheckoutHandler) HandleSoloCheckout(c *fiber.Ctx) error {
	var req SoloCheckoutRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing solo checkout request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid request body",
		})
	}
	if err := h.validate.Struct(req); err != nil {
		validationErrors := err.(validator.ValidationErrors)
		errorMessages := make(map[string]string)
		for _, e := range validationErrors {
			errorMessages[e.Field()] = fmt.Sprintf("Field '%s' failed on the '%s' tag", e.Field(), e.Tag())
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Validation failed",
			"errors":  errorMessages,
		})
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	order, err := h.service.SoloCheckout(currentUserID(c), req.ProductID, req.Quantity)
	if err != nil {
		log.Printf("Solo checkout failed for user %s: %v", currentUserID(c), err)
		return errorResponse(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(order)
}
