package services

import (
	"fmt"

	"storefront/internal/models"
	"storefront/internal/repositories"
)

// CartService handles business logic for the user's cart.
type CartService struct {
	carts    repositories.CartRepository
	products repositories.ProductRepository
}

// NewCartService creates a new CartService.
func NewCartService(carts repositories.CartRepository, products repositories.ProductRepository) *CartService {
	return &CartService{
		carts:    carts,
		products: products,
	}
}

// GetCart returns the user's cart items.
func (s *CartService) GetCart(userID string) ([]models.CartItem, error) {
	return s.carts.GetByUser(userID)
}

// AddItem puts a product into the user's cart, replacing the quantity
// of an existing line. Stock is not reserved here; checkout enforces
// availability.
func (s *CartService) AddItem(userID, productID string, quantity int) (*models.CartItem, error) {
	if quantity < 1 {
		return nil, fmt.Errorf("quantity must be at least 1: %w", models.ErrValidation)
	}
	product, err := s.products.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if !product.Active {
		return nil, fmt.Errorf("product with ID %s is not available: %w", productID, models.ErrNotFound)
	}

	item := &models.CartItem{
		UserID:    userID,
		ProductID: productID,
		Quantity:  quantity,
	}
	if err := s.carts.Upsert(item); err != nil {
		return nil, err
	}
	return item, nil
}

// RemoveItem removes one product line from the user's cart.
func (s *CartService) RemoveItem(userID, productID string) error {
	return s.carts.Remove(userID, productID)
}
