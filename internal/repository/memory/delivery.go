package memory

import (
	"context"
	"sync"
	"time"

	"petroserve/internal/domain"
	"petroserve/internal/repository"
)

// DeliveryRepository is an in-memory implementation of
// repository.DeliveryRepository seeded with one fixed delivery in flight.
type DeliveryRepository struct {
	mu        sync.RWMutex
	byID      map[string]*domain.DeliveryOrder
	byOrderID map[string]string // order number -> delivery id
	currentID string
}

// Ensure interface is satisfied.
var _ repository.DeliveryRepository = (*DeliveryRepository)(nil)

// NewDeliveryRepository creates a delivery repository seeded with the demo
// delivery: a 25L petrol order already on the way.
func NewDeliveryRepository() *DeliveryRepository {
	r := &DeliveryRepository{
		byID:      make(map[string]*domain.DeliveryOrder),
		byOrderID: make(map[string]string),
	}

	seed := &domain.DeliveryOrder{
		ID:          "DEL-2024-001",
		OrderID:     "ORD-2024-001",
		ServiceType: domain.ServiceTypeFuel,
		Status:      domain.DeliveryStatusOnTheWay,
		ETAMinutes:  8,
		Agent: domain.Agent{
			Name:          "Rajesh Kumar",
			Phone:         "+91 98765 43210",
			Rating:        4.8,
			VehicleNumber: "DL 01 FU 1234",
		},
		CurrentLat:     28.5355,
		CurrentLng:     77.3910,
		DestinationLat: 28.5421,
		DestinationLng: 77.3899,
		Address:        "Sector 15, Gurgaon, Haryana",
		Summary: domain.OrderSummary{
			FuelType:       domain.FuelTypePetrol,
			QuantityLiters: 25,
			Price:          2387.50,
		},
		PlacedAt: time.Date(2024, 1, 20, 14, 30, 0, 0, time.UTC),
	}
	r.byID[seed.ID] = seed
	r.byOrderID[seed.OrderID] = seed.ID
	r.currentID = seed.ID

	return r
}

// Create persists a new delivery order.
func (r *DeliveryRepository) Create(ctx context.Context, order *domain.DeliveryOrder) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	copy := *order
	r.byID[order.ID] = &copy
	r.byOrderID[order.OrderID] = order.ID
	r.currentID = order.ID
	return nil
}

// GetByOrderID retrieves a delivery by its order number.
func (r *DeliveryRepository) GetByOrderID(ctx context.Context, orderID string) (*domain.DeliveryOrder, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byOrderID[orderID]
	if !ok {
		return nil, repository.ErrNotFound
	}

	copy := *r.byID[id]
	return &copy, nil
}

// GetCurrent retrieves the most recently placed delivery.
func (r *DeliveryRepository) GetCurrent(ctx context.Context) (*domain.DeliveryOrder, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	order, ok := r.byID[r.currentID]
	if !ok {
		return nil, repository.ErrNotFound
	}

	copy := *order
	return &copy, nil
}

// Update updates an existing delivery order.
func (r *DeliveryRepository) Update(ctx context.Context, order *domain.DeliveryOrder) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[order.ID]; !ok {
		return repository.ErrNotFound
	}

	copy := *order
	r.byID[order.ID] = &copy
	return nil
}
