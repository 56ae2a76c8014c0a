package postgres

import (
	"context"
	"database/sql"

	"petroserve/internal/domain"
)

// HistoryRepository is a PostgreSQL implementation of repository.HistoryRepository.
type HistoryRepository struct {
	q Querier
}

// NewHistoryRepository creates a new PostgreSQL history repository.
func NewHistoryRepository(db *sql.DB) *HistoryRepository {
	return &HistoryRepository{q: db}
}

// GetAll retrieves all history records, most recent first.
func (r *HistoryRepository) GetAll(ctx context.Context) ([]*domain.ServiceHistoryRecord, error) {
	query := `
		SELECT id, order_number, placed_at, status, service_type,
		       fuel_type, quantity_liters, mechanic_service, mechanic_name,
		       location, total_amount, vehicle_number, rating, has_invoice
		FROM service_history ORDER BY placed_at DESC LIMIT 200
	`

	rows, err := r.q.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []*domain.ServiceHistoryRecord
	for rows.Next() {
		var rec domain.ServiceHistoryRecord
		var fuelType, mechanicService, mechanicName, vehicleNumber sql.NullString
		var quantity sql.NullFloat64
		var rating sql.NullInt64
		if err := rows.Scan(
			&rec.ID,
			&rec.OrderNumber,
			&rec.PlacedAt,
			&rec.Status,
			&rec.ServiceType,
			&fuelType,
			&quantity,
			&mechanicService,
			&mechanicName,
			&rec.Location,
			&rec.TotalAmount,
			&vehicleNumber,
			&rating,
			&rec.HasInvoice,
		); err != nil {
			return nil, err
		}
		if fuelType.Valid {
			rec.FuelType = domain.FuelType(fuelType.String)
		}
		if quantity.Valid {
			rec.QuantityLiters = quantity.Float64
		}
		if mechanicService.Valid {
			rec.MechanicService = mechanicService.String
		}
		if mechanicName.Valid {
			rec.MechanicName = mechanicName.String
		}
		if vehicleNumber.Valid {
			rec.VehicleNumber = vehicleNumber.String
		}
		if rating.Valid {
			rec.Rating = int(rating.Int64)
		}
		records = append(records, &rec)
	}
	return records, rows.Err()
}

// Create persists a new history record.
func (r *HistoryRepository) Create(ctx context.Context, rec *domain.ServiceHistoryRecord) error {
	query := `
		INSERT INTO service_history (id, order_number, placed_at, status, service_type,
			fuel_type, quantity_liters, mechanic_service, mechanic_name,
			location, total_amount, vehicle_number, rating, has_invoice)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	`

	var fuelType sql.NullString
	if rec.FuelType != "" {
		fuelType = sql.NullString{String: string(rec.FuelType), Valid: true}
	}
	var mechanicService sql.NullString
	if rec.MechanicService != "" {
		mechanicService = sql.NullString{String: rec.MechanicService, Valid: true}
	}
	var mechanicName sql.NullString
	if rec.MechanicName != "" {
		mechanicName = sql.NullString{String: rec.MechanicName, Valid: true}
	}
	var vehicleNumber sql.NullString
	if rec.VehicleNumber != "" {
		vehicleNumber = sql.NullString{String: rec.VehicleNumber, Valid: true}
	}
	var rating sql.NullInt64
	if rec.Rating > 0 {
		rating = sql.NullInt64{Int64: int64(rec.Rating), Valid: true}
	}

	_, err := r.q.ExecContext(ctx, query,
		rec.ID,
		rec.OrderNumber,
		rec.PlacedAt,
		rec.Status,
		rec.ServiceType,
		fuelType,
		rec.QuantityLiters,
		mechanicService,
		mechanicName,
		rec.Location,
		rec.TotalAmount,
		vehicleNumber,
		rating,
		rec.HasInvoice,
	)

	return err
}
