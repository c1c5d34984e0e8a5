package models_test

import (
	"testing"

	"storefront/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestOrderStatus_IsValid(t *testing.T) {
	valid := []models.OrderStatus{
		models.StatusProcessing,
		models.StatusAccepted,
		models.StatusCancelled,
		models.StatusOutForDelivery,
		models.StatusDelivered,
	}
	for _, s := range valid {
		assert.True(t, s.IsValid(), "expected %q to be valid", s)
	}

	assert.False(t, models.OrderStatus("shipped").IsValid())
	assert.False(t, models.OrderStatus("processing").IsValid()) // case-sensitive
	assert.False(t, models.OrderStatus("").IsValid())
}

func TestOrderStatus_CanTransitionTo(t *testing.T) {
	// Allowed moves along the delivery pipeline.
	assert.True(t, models.StatusProcessing.CanTransitionTo(models.StatusAccepted))
	assert.True(t, models.StatusAccepted.CanTransitionTo(models.StatusOutForDelivery))
	assert.True(t, models.StatusOutForDelivery.CanTransitionTo(models.StatusDelivered))

	// Cancelled is reachable from every non-terminal state.
	assert.True(t, models.StatusProcessing.CanTransitionTo(models.StatusCancelled))
	assert.True(t, models.StatusAccepted.CanTransitionTo(models.StatusCancelled))
	assert.True(t, models.StatusOutForDelivery.CanTransitionTo(models.StatusCancelled))

	// No skipping stages or moving backwards.
	assert.False(t, models.StatusProcessing.CanTransitionTo(models.StatusDelivered))
	assert.False(t, models.StatusProcessing.CanTransitionTo(models.StatusOutForDelivery))
	assert.False(t, models.StatusAccepted.CanTransitionTo(models.StatusProcessing))

	// Terminal states have no outgoing transitions.
	for _, next := range []models.OrderStatus{
		models.StatusProcessing,
		models.StatusAccepted,
		models.StatusCancelled,
		models.StatusOutForDelivery,
		models.StatusDelivered,
	} {
		assert.False(t, models.StatusDelivered.CanTransitionTo(next))
		assert.False(t, models.StatusCancelled.CanTransitionTo(next))
	}
}

func TestShippingInfo_Complete(t *testing.T) {
	full := models.ShippingInfo{
		Address:    "1 Main St",
		City:       "Springfield",
		PostalCode: "12345",
		Country:    "US",
		PhoneNo:    "555-0100",
	}
	assert.True(t, full.Complete())

	missingCity := full
	missingCity.City = ""
	assert.False(t, missingCity.Complete())

	assert.False(t, models.ShippingInfo{}.Complete())
}
