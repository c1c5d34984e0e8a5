package repositories

import (
	"fmt"

	"storefront/internal/models"
)

// ErrInsufficientStock is returned by DecrementStock when the product
// does not hold at least the requested quantity.
var ErrInsufficientStock = fmt.Errorf("out of stock: %w", models.ErrValidation)

// ProductRepository defines the interface for product data access.
type ProductRepository interface {
	GetAll() ([]models.Product, error)
	GetByID(id string) (*models.Product, error)
	Create(product *models.Product) error
	Update(product *models.Product) error
	Delete(id string) error
	// DecrementStock atomically subtracts quantity from the product's
	// stock iff stock >= quantity, returning ErrInsufficientStock
	// otherwise. The stored value can never go negative.
	DecrementStock(id string, quantity int) error
}
