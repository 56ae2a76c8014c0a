package postgres

import (
	"context"
	"database/sql"
	"errors"

	"petroserve/internal/domain"
	"petroserve/internal/repository"
)

// DeliveryRepository is a PostgreSQL implementation of repository.DeliveryRepository.
type DeliveryRepository struct {
	q Querier
}

// NewDeliveryRepository creates a new PostgreSQL delivery repository.
func NewDeliveryRepository(db *sql.DB) *DeliveryRepository {
	return &DeliveryRepository{q: db}
}

const deliveryColumns = `
	id, order_id, service_type, status, eta_minutes,
	agent_name, agent_phone, agent_rating, agent_vehicle_number,
	current_lat, current_lng, destination_lat, destination_lng, address,
	fuel_type, quantity_liters, price, placed_at, cancelled_at, cancel_reason
`

// Create persists a new delivery order.
func (r *DeliveryRepository) Create(ctx context.Context, order *domain.DeliveryOrder) error {
	query := `
		INSERT INTO deliveries (` + deliveryColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20)
	`

	var cancelledAt sql.NullTime
	if !order.CancelledAt.IsZero() {
		cancelledAt = sql.NullTime{Time: order.CancelledAt, Valid: true}
	}

	var cancelReason sql.NullString
	if order.CancelReason != "" {
		cancelReason = sql.NullString{String: order.CancelReason, Valid: true}
	}

	_, err := r.q.ExecContext(ctx, query,
		order.ID,
		order.OrderID,
		order.ServiceType,
		order.Status,
		order.ETAMinutes,
		order.Agent.Name,
		order.Agent.Phone,
		order.Agent.Rating,
		order.Agent.VehicleNumber,
		order.CurrentLat,
		order.CurrentLng,
		order.DestinationLat,
		order.DestinationLng,
		order.Address,
		order.Summary.FuelType,
		order.Summary.QuantityLiters,
		order.Summary.Price,
		order.PlacedAt,
		cancelledAt,
		cancelReason,
	)

	return err
}

// GetByOrderID retrieves a delivery by its order number.
func (r *DeliveryRepository) GetByOrderID(ctx context.Context, orderID string) (*domain.DeliveryOrder, error) {
	query := `SELECT ` + deliveryColumns + ` FROM deliveries WHERE order_id = $1`
	return r.scanOne(r.q.QueryRowContext(ctx, query, orderID))
}

// GetCurrent retrieves the most recently placed delivery.
func (r *DeliveryRepository) GetCurrent(ctx context.Context) (*domain.DeliveryOrder, error) {
	query := `SELECT ` + deliveryColumns + ` FROM deliveries ORDER BY placed_at DESC LIMIT 1`
	return r.scanOne(r.q.QueryRowContext(ctx, query))
}

// Update updates an existing delivery order.
func (r *DeliveryRepository) Update(ctx context.Context, order *domain.DeliveryOrder) error {
	query := `
		UPDATE deliveries
		SET status = $1, eta_minutes = $2, cancelled_at = $3, cancel_reason = $4
		WHERE id = $5
	`

	var cancelledAt sql.NullTime
	if !order.CancelledAt.IsZero() {
		cancelledAt = sql.NullTime{Time: order.CancelledAt, Valid: true}
	}

	var cancelReason sql.NullString
	if order.CancelReason != "" {
		cancelReason = sql.NullString{String: order.CancelReason, Valid: true}
	}

	result, err := r.q.ExecContext(ctx, query,
		order.Status,
		order.ETAMinutes,
		cancelledAt,
		cancelReason,
		order.ID,
	)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return repository.ErrNotFound
	}

	return nil
}

func (r *DeliveryRepository) scanOne(row *sql.Row) (*domain.DeliveryOrder, error) {
	var order domain.DeliveryOrder
	var cancelledAt sql.NullTime
	var cancelReason sql.NullString

	err := row.Scan(
		&order.ID,
		&order.OrderID,
		&order.ServiceType,
		&order.Status,
		&order.ETAMinutes,
		&order.Agent.Name,
		&order.Agent.Phone,
		&order.Agent.Rating,
		&order.Agent.VehicleNumber,
		&order.CurrentLat,
		&order.CurrentLng,
		&order.DestinationLat,
		&order.DestinationLng,
		&order.Address,
		&order.Summary.FuelType,
		&order.Summary.QuantityLiters,
		&order.Summary.Price,
		&order.PlacedAt,
		&cancelledAt,
		&cancelReason,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	if cancelledAt.Valid {
		order.CancelledAt = cancelledAt.Time
	}
	if cancelReason.Valid {
		order.CancelReason = cancelReason.String
	}

	return &order, nil
}
