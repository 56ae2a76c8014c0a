package repository

import (
	"context"

	"petroserve/internal/domain"
)

// DeliveryRepository defines the persistence operations for delivery orders.
type DeliveryRepository interface {
	// Create persists a new delivery order. This is the write path for a
	// network-backed deployment where order placement produces a real
	// delivery; in demo mode placement leaves the seeded delivery in place.
	Create(ctx context.Context, order *domain.DeliveryOrder) error

	// GetByOrderID retrieves a delivery by its order number.
	GetByOrderID(ctx context.Context, orderID string) (*domain.DeliveryOrder, error)

	// GetCurrent retrieves the most recently placed delivery.
	GetCurrent(ctx context.Context) (*domain.DeliveryOrder, error)

	// Update updates an existing delivery order.
	Update(ctx context.Context, order *domain.DeliveryOrder) error
}
