package models

import "time"

// OrderStatus is the closed set of states an order can be in.
type OrderStatus string

const (
	StatusProcessing     OrderStatus = "Processing"
	StatusAccepted       OrderStatus = "Accepted"
	StatusCancelled      OrderStatus = "Cancelled"
	StatusOutForDelivery OrderStatus = "Out for Delivery"
	StatusDelivered      OrderStatus = "Delivered"
)

func (s OrderStatus) String() string { return string(s) }

func (s OrderStatus) IsValid() bool {
	switch s {
	case StatusProcessing, StatusAccepted, StatusCancelled, StatusOutForDelivery, StatusDelivered:
		return true
	default:
		return false
	}
}

// statusTransitions is the allowed from→to graph. Delivered and
// Cancelled are terminal; Cancelled is reachable from every
// non-terminal state.
var statusTransitions = map[OrderStatus][]OrderStatus{
	StatusProcessing:     {StatusAccepted, StatusCancelled},
	StatusAccepted:       {StatusOutForDelivery, StatusCancelled},
	StatusOutForDelivery: {StatusDelivered, StatusCancelled},
	StatusDelivered:      {},
	StatusCancelled:      {},
}

// CanTransitionTo reports whether moving from s to next is allowed.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	for _, allowed := range statusTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// OrderLineItem is an immutable snapshot of one purchased line,
// captured at checkout time. Later catalog edits never alter it.
type OrderLineItem struct {
	ID        string  `json:"id" gorm:"primaryKey;type:varchar(36)"`
	OrderID   string  `json:"-" gorm:"index;type:varchar(36)"`
	ProductID string  `json:"product_id" gorm:"type:varchar(36)"`
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unit_price"`
	Quantity  int     `json:"quantity"`
	Image     string  `json:"image"`
}

// ShippingInfo is a denormalized snapshot of the user's shipping
// profile taken at checkout time, not a live reference.
type ShippingInfo struct {
	Address    string `json:"address"`
	City       string `json:"city"`
	PostalCode string `json:"postal_code"`
	Country    string `json:"country"`
	PhoneNo    string `json:"phone_no"`
}

// Complete reports whether every required shipping field is set.
func (s ShippingInfo) Complete() bool {
	return s.Address != "" && s.City != "" && s.PostalCode != "" && s.Country != "" && s.PhoneNo != ""
}

// Order represents a customer order. Pricing fields are computed once
// at creation; TotalPrice = ItemsPrice + TaxPrice + ShippingPrice.
// Status and DeliveredAt are the only fields mutated afterwards.
type Order struct {
	ID            string          `json:"id" gorm:"primaryKey;type:varchar(36)"`
	UserID        string          `json:"user_id" gorm:"index;type:varchar(36)"`
	LineItems     []OrderLineItem `json:"line_items" gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	ShippingInfo  ShippingInfo    `json:"shipping_info" gorm:"embedded;embeddedPrefix:shipping_"`
	ItemsPrice    float64         `json:"items_price"`
	TaxPrice      float64         `json:"tax_price"`
	ShippingPrice float64         `json:"shipping_price"`
	TotalPrice    float64         `json:"total_price"`
	Status        OrderStatus     `json:"status" gorm:"type:varchar(20)"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
	DeliveredAt   *time.Time      `json:"delivered_at,omitempty"`
}
