package services

import (
	"fmt"

	"storefront/internal/models"
	"storefront/internal/repositories"
)

// Pricing policy, fixed for every order.
const (
	taxRate           = 0.10
	flatShippingPrice = 50.0
)

// CheckoutService converts a cart (or a single ad hoc line) into a
// durable order. Order creation, stock decrement and cart clearing
// run in one transaction: either the whole checkout happens or none
// of it does.
type CheckoutService struct {
	users    repositories.UserRepository
	tx       repositories.TxManager
	notifier *OrderNotifier
}

// NewCheckoutService creates a new CheckoutService.
func NewCheckoutService(users repositories.UserRepository, tx repositories.TxManager, notifier *OrderNotifier) *CheckoutService {
	return &CheckoutService{
		users:    users,
		tx:       tx,
		notifier: notifier,
	}
}

// Checkout turns the user's full cart into an order and clears the
// cart. Any line whose stock decrement fails aborts the whole
// checkout.
func (s *CheckoutService) Checkout(userID string) (*models.Order, error) {
	user, err := s.users.GetByID(userID)
	if err != nil {
		return nil, err
	}

	var order *models.Order
	err = s.tx.RunInTx(func(uow repositories.UnitOfWork) error {
		cartItems, err := uow.Carts().GetByUser(userID)
		if err != nil {
			return err
		}
		if len(cartItems) == 0 {
			return fmt.Errorf("cart is empty: %w", models.ErrValidation)
		}

		lines := make([]models.OrderLineItem, 0, len(cartItems))
		for _, item := range cartItems {
			line, err := reserveLine(uow.Products(), item.ProductID, item.Quantity)
			if err != nil {
				return err
			}
			lines = append(lines, line)
		}

		// Shipping is checked only after the cart and stock; a cart or
		// stock failure is the one reported.
		shipping, err := shippingFromProfile(user)
		if err != nil {
			return err
		}

		order = buildOrder(userID, lines, shipping)
		if err := uow.Orders().Create(order); err != nil {
			return err
		}
		return uow.Carts().ClearByUser(userID)
	})
	if err != nil {
		return nil, err
	}

	go s.notifier.Dispatch(*order, *user, models.StatusProcessing)
	return order, nil
}

// SoloCheckout creates an order for a single ad hoc line, bypassing
// the cart entirely.
func (s *CheckoutService) SoloCheckout(userID, productID string, quantity int) (*models.Order, error) {
	if quantity < 1 {
		return nil, fmt.Errorf("quantity must be at least 1: %w", models.ErrValidation)
	}
	user, err := s.users.GetByID(userID)
	if err != nil {
		return nil, err
	}

	var order *models.Order
	err = s.tx.RunInTx(func(uow repositories.UnitOfWork) error {
		line, err := reserveLine(uow.Products(), productID, quantity)
		if err != nil {
			return err
		}
		shipping, err := shippingFromProfile(user)
		if err != nil {
			return err
		}
		order = buildOrder(userID, []models.OrderLineItem{line}, shipping)
		return uow.Orders().Create(order)
	})
	if err != nil {
		return nil, err
	}

	go s.notifier.Dispatch(*order, *user, models.StatusProcessing)
	return order, nil
}

// shippingFromProfile snapshots the user's stored shipping profile.
// Client-supplied shipping data is never accepted: the profile is the
// only source, so the shipping identity always matches the account.
func shippingFromProfile(user *models.User) (models.ShippingInfo, error) {
	shipping := models.ShippingInfo{
		Address:    user.Address,
		City:       user.City,
		PostalCode: user.PostalCode,
		Country:    user.Country,
		PhoneNo:    user.PhoneNo,
	}
	if !shipping.Complete() {
		return models.ShippingInfo{}, fmt.Errorf("shipping address incomplete, please update your profile: %w", models.ErrValidation)
	}
	return shipping, nil
}

// reserveLine snapshots the product at its current price and
// decrements its stock. The decrement is conditional: it fails with
// ErrInsufficientStock instead of over-selling.
func reserveLine(products repositories.ProductRepository, productID string, quantity int) (models.OrderLineItem, error) {
	product, err := products.GetByID(productID)
	if err != nil {
		return models.OrderLineItem{}, err
	}
	if !product.Active {
		return models.OrderLineItem{}, fmt.Errorf("product with ID %s is not available: %w", productID, models.ErrNotFound)
	}
	if err := products.DecrementStock(productID, quantity); err != nil {
		return models.OrderLineItem{}, err
	}
	return models.OrderLineItem{
		ProductID: product.ID,
		Name:      product.Name,
		UnitPrice: product.Price,
		Quantity:  quantity,
		Image:     product.Image,
	}, nil
}

// buildOrder assembles the order with its pricing computed once.
func buildOrder(userID string, lines []models.OrderLineItem, shipping models.ShippingInfo) *models.Order {
	var itemsPrice float64
	for _, line := range lines {
		itemsPrice += line.UnitPrice * float64(line.Quantity)
	}
	taxPrice := itemsPrice * taxRate

	return &models.Order{
		UserID:        userID,
		LineItems:     lines,
		ShippingInfo:  shipping,
		ItemsPrice:    itemsPrice,
		TaxPrice:      taxPrice,
		ShippingPrice: flatShippingPrice,
		TotalPrice:    itemsPrice + taxPrice + flatShippingPrice,
		Status:        models.StatusProcessing,
	}
}
