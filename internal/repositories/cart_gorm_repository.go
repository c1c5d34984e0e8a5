package repositories

import (
	"errors"
	"fmt"

	"storefront/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMCartRepository is a GORM implementation of CartRepository.
type GORMCartRepository struct {
	db *gorm.DB
}

// NewGORMCartRepository creates a new instance of GORMCartRepository.
func NewGORMCartRepository(db *gorm.DB) *GORMCartRepository {
	return &GORMCartRepository{
		db: db,
	}
}

// GetByUser retrieves all cart items belonging to the user.
func (r *GORMCartRepository) GetByUser(userID string) ([]models.CartItem, error) {
	var items []models.CartItem
	if err := r.db.Find(&items, "user_id = ?", userID).Error; err != nil {
		return nil, fmt.Errorf("failed to get cart for user %s: %w", userID, err)
	}
	return items, nil
}

// Upsert inserts the item or replaces the quantity of an existing
// (user, product) line.
func (r *GORMCartRepository) Upsert(item *models.CartItem) error {
	var existing models.CartItem
	err := r.db.First(&existing, "user_id = ? AND product_id = ?", item.UserID, item.ProductID).Error
	switch {
	case err == nil:
		existing.Quantity = item.Quantity
		if err := r.db.Save(&existing).Error; err != nil {
			return fmt.Errorf("failed to update cart item: %w", err)
		}
		*item = existing
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		if item.ID == "" {
			item.ID = uuid.New().String()
		}
		if err := r.db.Create(item).Error; err != nil {
			return fmt.Errorf("failed to create cart item: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("failed to look up cart item: %w", err)
	}
}

// Remove deletes one (user, product) line from the cart.
func (r *GORMCartRepository) Remove(userID, productID string) error {
	res := r.db.Delete(&models.CartItem{}, "user_id = ? AND product_id = ?", userID, productID)
	if res.Error != nil {
		return fmt.Errorf("failed to remove cart item: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("cart item for product %s: %w", productID, models.ErrNotFound)
	}
	return nil
}

// ClearByUser deletes every cart item belonging to the user.
func (r *GORMCartRepository) ClearByUser(userID string) error {
	if err := r.db.Delete(&models.CartItem{}, "user_id = ?", userID).Error; err != nil {
		return fmt.Errorf("failed to clear cart for user %s: %w", userID, err)
	}
	return nil
}
