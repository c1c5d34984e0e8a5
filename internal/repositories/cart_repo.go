package repositories

import "storefront/internal/models"

// CartRepository defines the interface for cart data access. A cart
// is the set of CartItem rows belonging to one user.
type CartRepository interface {
	GetByUser(userID string) ([]models.CartItem, error)
	// Upsert inserts the item, or replaces the quantity of the
	// existing (user, product) line.
	Upsert(item *models.CartItem) error
	Remove(userID, productID string) error
	ClearByUser(userID string) error
}
