package models

import "time"

// CartItem is one line of a user's cart. A user's cart is the set of
// their CartItem rows; there is no separate cart entity. Lines are
// transient and hard-deleted: the unique (user, product) index spans
// all rows, so a soft-deleted line would block adding the same
// product again.
type CartItem struct {
	ID        string    `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	UserID    string    `json:"user_id" gorm:"uniqueIndex:idx_cart_user_product;type:varchar(36)" validate:"required"`
	ProductID string    `json:"product_id" gorm:"uniqueIndex:idx_cart_user_product;type:varchar(36)" validate:"required"`
	Quantity  int       `json:"quantity" validate:"required,gte=1"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
