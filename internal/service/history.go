package service

import (
	"context"
	"strings"

	"petroserve/internal/domain"
	"petroserve/internal/repository"
)

// TypeFilter selects which order family a history query matches.
type TypeFilter string

const (
	TypeFilterAll          TypeFilter = "ALL"
	TypeFilterFuelOnly     TypeFilter = "FUEL_ONLY"
	TypeFilterMechanicOnly TypeFilter = "MECHANIC_ONLY"
)

// HistoryQuery is the predicate set applied to the record list.
type HistoryQuery struct {
	TypeFilter TypeFilter
	Search     string
}

// HistoryCounts aggregates the filtered record set.
type HistoryCounts struct {
	Completed int
	Fuel      int
	Mechanic  int
}

// HistoryService serves read-only views over past orders.
type HistoryService struct {
	historyRepo repository.HistoryRepository
}

// NewHistoryService creates a new HistoryService.
func NewHistoryService(historyRepo repository.HistoryRepository) *HistoryService {
	return &HistoryService{historyRepo: historyRepo}
}

// Query loads all records and applies the filter.
func (s *HistoryService) Query(ctx context.Context, query HistoryQuery) ([]*domain.ServiceHistoryRecord, error) {
	records, err := s.historyRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return FilterHistory(records, query), nil
}

// FilterHistory is a pure function over the record set: no mutation, and
// filtering twice with the same query equals filtering once. The search
// text matches case-insensitively against vehicle number, order number,
// location, mechanic service and fuel type (OR across fields).
func FilterHistory(records []*domain.ServiceHistoryRecord, query HistoryQuery) []*domain.ServiceHistoryRecord {
	search := strings.ToLower(query.Search)

	matched := make([]*domain.ServiceHistoryRecord, 0, len(records))
	for _, rec := range records {
		if !matchesType(rec, query.TypeFilter) {
			continue
		}
		if search != "" && !matchesSearch(rec, search) {
			continue
		}
		matched = append(matched, rec)
	}

	return matched
}

func matchesType(rec *domain.ServiceHistoryRecord, filter TypeFilter) bool {
	switch filter {
	case TypeFilterFuelOnly:
		return rec.ServiceType == domain.ServiceTypeFuel
	case TypeFilterMechanicOnly:
		return rec.ServiceType == domain.ServiceTypeMechanic
	default:
		return true
	}
}

func matchesSearch(rec *domain.ServiceHistoryRecord, search string) bool {
	fields := []string{
		rec.VehicleNumber,
		rec.OrderNumber,
		rec.Location,
		rec.MechanicService,
		string(rec.FuelType),
	}
	for _, f := range fields {
		if f != "" && strings.Contains(strings.ToLower(f), search) {
			return true
		}
	}
	return false
}

// TotalSpent sums the amounts of completed records.
func TotalSpent(records []*domain.ServiceHistoryRecord) float64 {
	var total float64
	for _, rec := range records {
		if rec.Status == domain.HistoryStatusCompleted {
			total += rec.TotalAmount
		}
	}
	return total
}

// CountByStatus aggregates the record set by status and service type.
func CountByStatus(records []*domain.ServiceHistoryRecord) HistoryCounts {
	var counts HistoryCounts
	for _, rec := range records {
		if rec.Status == domain.HistoryStatusCompleted {
			counts.Completed++
		}
		switch rec.ServiceType {
		case domain.ServiceTypeFuel:
			counts.Fuel++
		case domain.ServiceTypeMechanic:
			counts.Mechanic++
		}
	}
	return counts
}
