package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransitionOrderStatusForwardMoves(t *testing.T) {
	assert.True(t, CanTransitionOrderStatus(OrderStatusPending, OrderStatusConfirmed))
	assert.True(t, CanTransitionOrderStatus(OrderStatusConfirmed, OrderStatusProcessing))
	assert.True(t, CanTransitionOrderStatus(OrderStatusProcessing, OrderStatusShipped))
	assert.True(t, CanTransitionOrderStatus(OrderStatusShipped, OrderStatusDelivered))
	assert.True(t, CanTransitionOrderStatus(OrderStatusDelivered, OrderStatusRefunded))
}

func TestCanTransitionOrderStatusCancelBlockedAfterShipment(t *testing.T) {
	assert.True(t, CanTransitionOrderStatus(OrderStatusPending, OrderStatusCancelled))
	assert.True(t, CanTransitionOrderStatus(OrderStatusConfirmed, OrderStatusCancelled))
	assert.True(t, CanTransitionOrderStatus(OrderStatusProcessing, OrderStatusCancelled))

	assert.False(t, CanTransitionOrderStatus(OrderStatusShipped, OrderStatusCancelled))
	assert.False(t, CanTransitionOrderStatus(OrderStatusDelivered, OrderStatusCancelled))
}

func TestCanTransitionOrderStatusTerminalStates(t *testing.T) {
	assert.False(t, CanTransitionOrderStatus(OrderStatusCancelled, OrderStatusPending))
	assert.False(t, CanTransitionOrderStatus(OrderStatusRefunded, OrderStatusConfirmed))
}

func TestCanTransitionOrderStatusRejectsNoopAndUnknown(t *testing.T) {
	assert.False(t, CanTransitionOrderStatus(OrderStatusPending, OrderStatusPending))
	assert.False(t, CanTransitionOrderStatus(OrderStatusPending, "teleported"))
}

func TestCanTransitionOrderStatusCaseInsensitive(t *testing.T) {
	assert.True(t, CanTransitionOrderStatus("Pending", "CONFIRMED"))
	assert.False(t, CanTransitionOrderStatus("SHIPPED", "Cancelled"))
}

func TestIsValidOrderStatus(t *testing.T) {
	for _, status := range ValidOrderStatuses {
		assert.True(t, IsValidOrderStatus(status))
	}
	assert.False(t, IsValidOrderStatus("returned"))
}
