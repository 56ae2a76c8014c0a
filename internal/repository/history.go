package repository

import (
	"context"

	"petroserve/internal/domain"
)

// HistoryRepository defines read access to past-order records.
type HistoryRepository interface {
	// GetAll retrieves all history records, most recent first.
	GetAll(ctx context.Context) ([]*domain.ServiceHistoryRecord, error)

	// Create persists a new history record. This is the write path for a
	// network-backed deployment where completed orders are appended to the
	// history; the demo serves the fixed seeded record set.
	Create(ctx context.Context, record *domain.ServiceHistoryRecord) error
}
