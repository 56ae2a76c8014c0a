package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"petroserve/internal/domain"
	"petroserve/internal/repository"
)

// HistoryRepository is an in-memory implementation of
// repository.HistoryRepository seeded with the demo past-order list.
type HistoryRepository struct {
	mu      sync.RWMutex
	records []*domain.ServiceHistoryRecord
}

// Ensure interface is satisfied.
var _ repository.HistoryRepository = (*HistoryRepository)(nil)

// NewHistoryRepository creates a history repository with the demo records.
func NewHistoryRepository() *HistoryRepository {
	return &HistoryRepository{
		records: []*domain.ServiceHistoryRecord{
			{
				ID:             "1",
				OrderNumber:    "ORD-2024-001",
				PlacedAt:       time.Date(2024, 1, 20, 14, 30, 0, 0, time.UTC),
				Status:         domain.HistoryStatusCompleted,
				ServiceType:    domain.ServiceTypeFuel,
				FuelType:       domain.FuelTypePetrol,
				QuantityLiters: 25,
				Location:       "Sector 15, Gurgaon",
				TotalAmount:    2400,
				VehicleNumber:  "DL 01 AB 1234",
				Rating:         5,
				HasInvoice:     true,
			},
			{
				ID:              "2",
				OrderNumber:     "ORD-2024-002",
				PlacedAt:        time.Date(2024, 1, 18, 10, 15, 0, 0, time.UTC),
				Status:          domain.HistoryStatusCompleted,
				ServiceType:     domain.ServiceTypeMechanic,
				MechanicService: "Battery Issue",
				MechanicName:    "Rajesh Kumar",
				Location:        "MG Road, Bangalore",
				TotalAmount:     650,
				VehicleNumber:   "KA 05 CD 5678",
				Rating:          4,
				HasInvoice:      true,
			},
			{
				ID:             "3",
				OrderNumber:    "ORD-2024-003",
				PlacedAt:       time.Date(2024, 1, 15, 16, 45, 0, 0, time.UTC),
				Status:         domain.HistoryStatusCompleted,
				ServiceType:    domain.ServiceTypeFuel,
				FuelType:       domain.FuelTypeDiesel,
				QuantityLiters: 40,
				Location:       "Andheri West, Mumbai",
				TotalAmount:    3520,
				VehicleNumber:  "MH 01 EF 9012",
				Rating:         5,
				HasInvoice:     true,
			},
			{
				ID:              "4",
				OrderNumber:     "ORD-2024-004",
				PlacedAt:        time.Date(2024, 1, 12, 9, 30, 0, 0, time.UTC),
				Status:          domain.HistoryStatusCompleted,
				ServiceType:     domain.ServiceTypeMechanic,
				MechanicService: "Tire Puncture",
				MechanicName:    "Amit Singh",
				Location:        "Sector 18, Noida",
				TotalAmount:     300,
				VehicleNumber:   "UP 16 GH 3456",
				HasInvoice:      true,
			},
			{
				ID:             "5",
				OrderNumber:    "ORD-2024-005",
				PlacedAt:       time.Date(2024, 1, 10, 11, 20, 0, 0, time.UTC),
				Status:         domain.HistoryStatusOngoing,
				ServiceType:    domain.ServiceTypeFuel,
				FuelType:       domain.FuelTypePetrol,
				QuantityLiters: 30,
				Location:       "Salt Lake, Kolkata",
				TotalAmount:    2865,
				VehicleNumber:  "WB 02 IJ 7890",
			},
		},
	}
}

// GetAll retrieves all history records, most recent first.
func (r *HistoryRepository) GetAll(ctx context.Context) ([]*domain.ServiceHistoryRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*domain.ServiceHistoryRecord, 0, len(r.records))
	for _, rec := range r.records {
		copy := *rec
		result = append(result, &copy)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].PlacedAt.After(result[j].PlacedAt)
	})

	return result, nil
}

// Create persists a new history record.
func (r *HistoryRepository) Create(ctx context.Context, record *domain.ServiceHistoryRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	copy := *record
	r.records = append(r.records, &copy)
	return nil
}
