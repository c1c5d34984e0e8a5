package notify_test

import (
	"testing"
	"time"

	"storefront/internal/models"
	"storefront/internal/notify"

	"github.com/stretchr/testify/assert"
)

func sampleOrder() *models.Order {
	deliveredAt := time.Date(2025, 6, 2, 14, 30, 0, 0, time.UTC)
	return &models.Order{
		ID:     "order-1",
		UserID: "user-1",
		LineItems: []models.OrderLineItem{
			{ProductID: "prod-1", Name: "Laptop", UnitPrice: 1000.00, Quantity: 2},
			{ProductID: "prod-2", Name: "Mouse", UnitPrice: 25.00, Quantity: 1},
		},
		ShippingInfo: models.ShippingInfo{
			Address: "1 Main St", City: "Springfield", PostalCode: "12345", Country: "US", PhoneNo: "555-0100",
		},
		ItemsPrice:    2025.00,
		TaxPrice:      202.50,
		ShippingPrice: 50.00,
		TotalPrice:    2277.50,
		Status:        models.StatusDelivered,
		CreatedAt:     time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC),
		DeliveredAt:   &deliveredAt,
	}
}

func sampleUser() *models.User {
	return &models.User{ID: "user-1", Username: "alice", Email: "alice@example.com"}
}

func TestTemplateRenderer_Render(t *testing.T) {
	r := notify.NewTemplateRenderer()
	order := sampleOrder()
	user := sampleUser()

	body, err := r.Render(order, user, models.StatusOutForDelivery)
	assert.NoError(t, err)
	assert.Contains(t, body, "alice")
	assert.Contains(t, body, "out for delivery")
	assert.Contains(t, body, "order-1")
	assert.Contains(t, body, "Laptop")
	assert.Contains(t, body, "2277.50")
	assert.Contains(t, body, "Springfield")
}

func TestTemplateRenderer_Render_UnknownStatus(t *testing.T) {
	r := notify.NewTemplateRenderer()

	_, err := r.Render(sampleOrder(), sampleUser(), models.OrderStatus("shipped"))
	assert.Error(t, err)
}

func TestTemplateRenderer_Subject(t *testing.T) {
	r := notify.NewTemplateRenderer()

	subject := r.Subject(sampleOrder(), models.StatusAccepted)
	assert.Contains(t, subject, "order-1")
	assert.Contains(t, subject, "Accepted")
}

func TestReceiptRenderer_Render(t *testing.T) {
	r := notify.NewReceiptRenderer()
	order := sampleOrder()
	user := sampleUser()

	receipt, err := r.Render(order, user)
	assert.NoError(t, err)
	assert.Equal(t, "receipt-order-1.html", receipt.Filename)
	assert.Equal(t, "text/html", receipt.ContentType)

	html := string(receipt.Data)
	assert.Contains(t, html, "Receipt")
	assert.Contains(t, html, "alice@example.com")
	assert.Contains(t, html, "Laptop")
	assert.Contains(t, html, "2000.00") // line subtotal
	assert.Contains(t, html, "2277.50") // grand total
	assert.Contains(t, html, "02 Jun 2025") // delivery date
}
