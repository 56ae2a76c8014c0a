package domain

import "time"

// HistoryStatus represents the final (or current) status of a past order.
type HistoryStatus string

const (
	HistoryStatusCompleted HistoryStatus = "COMPLETED"
	HistoryStatusCancelled HistoryStatus = "CANCELLED"
	HistoryStatusOngoing   HistoryStatus = "ONGOING"
)

// ServiceHistoryRecord is an immutable past-order record used for display
// and filtering. Fuel orders carry FuelType/QuantityLiters; mechanic
// services carry MechanicService/MechanicName.
type ServiceHistoryRecord struct {
	ID              string
	OrderNumber     string
	PlacedAt        time.Time
	Status          HistoryStatus
	ServiceType     ServiceType
	FuelType        FuelType
	QuantityLiters  float64
	MechanicService string
	MechanicName    string
	Location        string
	TotalAmount     float64
	VehicleNumber   string
	Rating          int
	HasInvoice      bool
}
