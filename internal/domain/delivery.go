package domain

import "time"

// DeliveryStatus represents the current status of a delivery order.
// The lifecycle is linear: CONFIRMED → ASSIGNED → ON_THE_WAY → ARRIVED →
// COMPLETED, with CANCELLED reachable only from the first two states.
type DeliveryStatus string

const (
	DeliveryStatusConfirmed DeliveryStatus = "CONFIRMED"
	DeliveryStatusAssigned  DeliveryStatus = "ASSIGNED"
	DeliveryStatusOnTheWay  DeliveryStatus = "ON_THE_WAY"
	DeliveryStatusArrived   DeliveryStatus = "ARRIVED"
	DeliveryStatusCompleted DeliveryStatus = "COMPLETED"
	DeliveryStatusCancelled DeliveryStatus = "CANCELLED"
)

// Agent represents the delivery agent or mechanic assigned to an order.
type Agent struct {
	Name          string
	Phone         string
	Rating        float64
	VehicleNumber string
}

// OrderSummary is the priced summary attached to a delivery order.
type OrderSummary struct {
	FuelType       FuelType
	QuantityLiters float64
	Price          float64
}

// DeliveryOrder represents a placed order moving through delivery.
type DeliveryOrder struct {
	ID             string
	OrderID        string
	ServiceType    ServiceType
	Status         DeliveryStatus
	ETAMinutes     int
	Agent          Agent
	CurrentLat     float64
	CurrentLng     float64
	DestinationLat float64
	DestinationLng float64
	Address        string
	Summary        OrderSummary
	PlacedAt       time.Time
	CancelledAt    time.Time
	CancelReason   string
}
