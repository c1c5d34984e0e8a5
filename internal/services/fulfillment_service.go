package services

import (
	"fmt"
	"log"
	"time"

	"storefront/internal/models"
	"storefront/internal/repositories"
)

// FulfillmentService advances orders through the delivery pipeline.
// Every committed transition triggers a best-effort customer
// notification; the Delivered transition additionally attaches a
// receipt.
type FulfillmentService struct {
	orders   repositories.OrderRepository
	users    repositories.UserRepository
	notifier *OrderNotifier
}

// NewFulfillmentService creates a new FulfillmentService.
func NewFulfillmentService(orders repositories.OrderRepository, users repositories.UserRepository, notifier *OrderNotifier) *FulfillmentService {
	return &FulfillmentService{
		orders:   orders,
		users:    users,
		notifier: notifier,
	}
}

// Transition moves the order to newStatus if the move is allowed by
// the status graph. The persisted transition is the operation; the
// notification is dispatched afterwards on a detached goroutine and
// can never fail or roll it back.
func (s *FulfillmentService) Transition(orderID string, newStatus models.OrderStatus) (*models.Order, error) {
	if !newStatus.IsValid() {
		return nil, fmt.Errorf("invalid order status %q: %w", newStatus, models.ErrValidation)
	}

	order, err := s.orders.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if !order.Status.CanTransitionTo(newStatus) {
		return nil, fmt.Errorf("cannot transition order from %s to %s: %w", order.Status, newStatus, models.ErrValidation)
	}

	order.Status = newStatus
	if newStatus == models.StatusDelivered && order.DeliveredAt == nil {
		now := time.Now()
		order.DeliveredAt = &now
	}

	if err := s.orders.Update(order); err != nil {
		return nil, fmt.Errorf("failed to persist status update for order %s: %w", orderID, err)
	}

	go s.dispatchTransition(*order)
	return order, nil
}

// dispatchTransition looks up the customer and sends the status
// notification. Runs detached from the request that committed the
// transition.
func (s *FulfillmentService) dispatchTransition(order models.Order) {
	user, err := s.users.GetByID(order.UserID)
	if err != nil {
		log.Printf("Warning: cannot notify for order %s, user lookup failed: %v", order.ID, err)
		return
	}
	s.notifier.Dispatch(order, *user, order.Status)
}

// GetOrder retrieves a single order.
func (s *FulfillmentService) GetOrder(id string) (*models.Order, error) {
	return s.orders.GetByID(id)
}

// ListAllOrders retrieves every order, for the admin overview.
func (s *FulfillmentService) ListAllOrders() ([]models.Order, error) {
	return s.orders.GetAll()
}

// ListUserOrders retrieves the orders placed by one user.
func (s *FulfillmentService) ListUserOrders(userID string) ([]models.Order, error) {
	return s.orders.GetByUser(userID)
}

// DeleteOrder hard-deletes an order in any state. Stock reserved by
// the order is not restored.
func (s *FulfillmentService) DeleteOrder(id string) error {
	return s.orders.Delete(id)
}
