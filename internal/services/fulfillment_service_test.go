package services_test

import (
	"errors"
	"strings"
	"testing"
	"time"

	"storefront/internal/models"
	"storefront/internal/repositories"
	"storefront/internal/services"

	"github.com/stretchr/testify/assert"
)

type fulfillmentEnv struct {
	users   *MockUserRepository
	orders  *repositories.MockOrderRepository
	gateway *chanGateway
	service *services.FulfillmentService
}

func newFulfillmentEnv() *fulfillmentEnv {
	users := new(MockUserRepository)
	orders := repositories.NewMockOrderRepository()
	gateway := newChanGateway()
	service := services.NewFulfillmentService(orders, users, services.NewOrderNotifier(gateway))
	return &fulfillmentEnv{
		users:   users,
		orders:  orders,
		gateway: gateway,
		service: service,
	}
}

func seedOrder(t *testing.T, orders *repositories.MockOrderRepository, status models.OrderStatus) *models.Order {
	t.Helper()
	order := &models.Order{
		UserID: "user-1",
		LineItems: []models.OrderLineItem{
			{ProductID: "prod-1", Name: "Laptop", UnitPrice: 1000.00, Quantity: 2},
		},
		ShippingInfo: models.ShippingInfo{
			Address: "1 Main St", City: "Springfield", PostalCode: "12345", Country: "US", PhoneNo: "555-0100",
		},
		ItemsPrice:    2000.00,
		TaxPrice:      200.00,
		ShippingPrice: 50.00,
		TotalPrice:    2250.00,
		Status:        status,
	}
	assert.NoError(t, orders.Create(order))
	return order
}

func TestFulfillmentService_Transition(t *testing.T) {
	env := newFulfillmentEnv()
	user := completeUser()
	env.users.On("GetByID", user.ID).Return(user, nil)
	order := seedOrder(t, env.orders, models.StatusProcessing)

	updated, err := env.service.Transition(order.ID, models.StatusAccepted)
	assert.NoError(t, err)
	assert.Equal(t, models.StatusAccepted, updated.Status)
	assert.Nil(t, updated.DeliveredAt)

	stored, err := env.orders.GetByID(order.ID)
	assert.NoError(t, err)
	assert.Equal(t, models.StatusAccepted, stored.Status)

	n := env.gateway.waitForNotification(t)
	assert.Equal(t, user.Email, n.Recipient)
	assert.Contains(t, n.Subject, "Accepted")
	assert.Contains(t, n.HTMLBody, "accepted")
	assert.Empty(t, n.Attachments)
}

func TestFulfillmentService_Transition_InvalidStatus(t *testing.T) {
	env := newFulfillmentEnv()
	order := seedOrder(t, env.orders, models.StatusProcessing)

	updated, err := env.service.Transition(order.ID, models.OrderStatus("shipped"))
	assert.Error(t, err)
	assert.Nil(t, updated)
	assert.True(t, errors.Is(err, models.ErrValidation))
	env.gateway.assertNothingSent(t)
}

func TestFulfillmentService_Transition_OrderNotFound(t *testing.T) {
	env := newFulfillmentEnv()

	updated, err := env.service.Transition("ghost", models.StatusAccepted)
	assert.Error(t, err)
	assert.Nil(t, updated)
	assert.True(t, errors.Is(err, models.ErrNotFound))
}

func TestFulfillmentService_Transition_RejectsOffGraphMoves(t *testing.T) {
	env := newFulfillmentEnv()
	order := seedOrder(t, env.orders, models.StatusProcessing)

	// Skipping straight to Delivered is not allowed.
	updated, err := env.service.Transition(order.ID, models.StatusDelivered)
	assert.Error(t, err)
	assert.Nil(t, updated)
	assert.True(t, errors.Is(err, models.ErrValidation))

	stored, _ := env.orders.GetByID(order.ID)
	assert.Equal(t, models.StatusProcessing, stored.Status)
	assert.Nil(t, stored.DeliveredAt)
	env.gateway.assertNothingSent(t)
}

func TestFulfillmentService_Transition_CancelBeforeDelivery(t *testing.T) {
	env := newFulfillmentEnv()
	user := completeUser()
	env.users.On("GetByID", user.ID).Return(user, nil)
	order := seedOrder(t, env.orders, models.StatusProcessing)

	_, err := env.service.Transition(order.ID, models.StatusAccepted)
	assert.NoError(t, err)
	env.gateway.waitForNotification(t)

	updated, err := env.service.Transition(order.ID, models.StatusCancelled)
	assert.NoError(t, err)
	assert.Equal(t, models.StatusCancelled, updated.Status)
	assert.Nil(t, updated.DeliveredAt)
	env.gateway.waitForNotification(t)

	// Cancelled is terminal.
	_, err = env.service.Transition(order.ID, models.StatusAccepted)
	assert.Error(t, err)
	assert.True(t, errors.Is(err, models.ErrValidation))
}

func TestFulfillmentService_Transition_DeliveredSetsTimestampAndReceipt(t *testing.T) {
	env := newFulfillmentEnv()
	user := completeUser()
	env.users.On("GetByID", user.ID).Return(user, nil)
	order := seedOrder(t, env.orders, models.StatusOutForDelivery)

	before := time.Now()
	updated, err := env.service.Transition(order.ID, models.StatusDelivered)
	assert.NoError(t, err)
	assert.Equal(t, models.StatusDelivered, updated.Status)
	assert.NotNil(t, updated.DeliveredAt)
	assert.False(t, updated.DeliveredAt.Before(before))

	n := env.gateway.waitForNotification(t)
	assert.Len(t, n.Attachments, 1)
	assert.True(t, strings.HasPrefix(n.Attachments[0].Filename, "receipt-"))
	assert.Equal(t, "text/html", n.Attachments[0].ContentType)

	// A second Delivered is rejected and the timestamp does not move.
	firstDeliveredAt := *updated.DeliveredAt
	_, err = env.service.Transition(order.ID, models.StatusDelivered)
	assert.Error(t, err)
	assert.True(t, errors.Is(err, models.ErrValidation))

	stored, _ := env.orders.GetByID(order.ID)
	assert.NotNil(t, stored.DeliveredAt)
	assert.True(t, stored.DeliveredAt.Equal(firstDeliveredAt))
}

func TestFulfillmentService_Transition_GatewayFailureIsSwallowed(t *testing.T) {
	users := new(MockUserRepository)
	orders := repositories.NewMockOrderRepository()
	gateway := newFailingGateway()
	service := services.NewFulfillmentService(orders, users, services.NewOrderNotifier(gateway))

	user := completeUser()
	users.On("GetByID", user.ID).Return(user, nil)
	order := seedOrder(t, orders, models.StatusProcessing)

	updated, err := service.Transition(order.ID, models.StatusAccepted)
	assert.NoError(t, err)
	assert.Equal(t, models.StatusAccepted, updated.Status)

	// The send was attempted and failed; the transition stands.
	select {
	case <-gateway.attempts:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for send attempt")
	}
	stored, _ := orders.GetByID(order.ID)
	assert.Equal(t, models.StatusAccepted, stored.Status)
}

func TestFulfillmentService_DeleteOrder(t *testing.T) {
	env := newFulfillmentEnv()
	order := seedOrder(t, env.orders, models.StatusDelivered)

	// Deletion is unconditional, terminal state or not.
	assert.NoError(t, env.service.DeleteOrder(order.ID))

	_, err := env.orders.GetByID(order.ID)
	assert.True(t, errors.Is(err, models.ErrNotFound))

	err = env.service.DeleteOrder("ghost")
	assert.True(t, errors.Is(err, models.ErrNotFound))
}

func TestFulfillmentService_ListUserOrders(t *testing.T) {
	env := newFulfillmentEnv()
	mine := seedOrder(t, env.orders, models.StatusProcessing)
	other := seedOrder(t, env.orders, models.StatusProcessing)
	other.UserID = "someone-else"
	assert.NoError(t, env.orders.Update(other))

	orders, err := env.service.ListUserOrders("user-1")
	assert.NoError(t, err)
	assert.Len(t, orders, 1)
	assert.Equal(t, mine.ID, orders[0].ID)

	all, err := env.service.ListAllOrders()
	assert.NoError(t, err)
	assert.Len(t, all, 2)
}
