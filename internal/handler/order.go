package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"petroserve/internal/domain"
	"petroserve/internal/service"
)

// OrderHandler handles HTTP requests for fuel orders and mechanic bookings.
type OrderHandler struct {
	fuelService     *service.FuelOrderService
	mechanicService *service.MechanicBookingService
	locationService *service.LocationService
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(
	fuelService *service.FuelOrderService,
	mechanicService *service.MechanicBookingService,
	locationService *service.LocationService,
) *OrderHandler {
	return &OrderHandler{
		fuelService:     fuelService,
		mechanicService: mechanicService,
		locationService: locationService,
	}
}

// VehicleInfoRequest is the vehicle section of an order request.
type VehicleInfoRequest struct {
	Type               string `json:"type"`
	RegistrationNumber string `json:"registration_number"`
	FuelType           string `json:"fuel_type"`
	TankCapacity       string `json:"tank_capacity,omitempty"`
	ModelYear          string `json:"model_year,omitempty"`
}

// LocationRequest is the location section of an order request.
type LocationRequest struct {
	UseCurrentLocation bool   `json:"use_current_location"`
	AddressLine        string `json:"address_line,omitempty"`
	Landmark           string `json:"landmark,omitempty"`
	Pincode            string `json:"pincode,omitempty"`
}

// FuelOrderRequest is the HTTP request body for quoting or placing a fuel order.
type FuelOrderRequest struct {
	Vehicle        VehicleInfoRequest `json:"vehicle"`
	QuantityLiters float64            `json:"quantity_liters"`
	Location       LocationRequest    `json:"location"`
	TimeSlot       string             `json:"time_slot,omitempty"`
	PaymentMethod  string             `json:"payment_method,omitempty"`
}

// LineItemResponse is one priced line of a quote.
type LineItemResponse struct {
	Label  string  `json:"label"`
	Amount float64 `json:"amount"`
}

// FuelQuoteResponse is the HTTP response for a fuel quote.
type FuelQuoteResponse struct {
	LineItems []LineItemResponse `json:"line_items"`
	Total     float64            `json:"total"`
}

// PlacedOrderResponse is the HTTP response for a placed order.
type PlacedOrderResponse struct {
	OrderID  string  `json:"order_id"`
	PlacedAt string  `json:"placed_at"`
	Total    float64 `json:"total,omitempty"`
	TrackURL string  `json:"track_url"`
}

func (r FuelOrderRequest) toDraft() domain.FuelOrderDraft {
	return domain.FuelOrderDraft{
		Vehicle: domain.VehicleInfo{
			Type:               domain.VehicleType(r.Vehicle.Type),
			RegistrationNumber: r.Vehicle.RegistrationNumber,
			FuelType:           domain.FuelType(r.Vehicle.FuelType),
			TankCapacity:       r.Vehicle.TankCapacity,
			ModelYear:          r.Vehicle.ModelYear,
		},
		QuantityLiters: r.QuantityLiters,
		Location: domain.LocationSelection{
			UseCurrentLocation: r.Location.UseCurrentLocation,
			AddressLine:        r.Location.AddressLine,
			Landmark:           r.Location.Landmark,
			Pincode:            r.Location.Pincode,
		},
		TimeSlot:      r.TimeSlot,
		PaymentMethod: domain.PaymentMethod(r.PaymentMethod),
	}
}

// QuoteFuel handles POST /v1/orders/fuel/quote
func (h *OrderHandler) QuoteFuel(c *gin.Context) {
	var req FuelOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	summary, err := h.fuelService.ComputeSummary(req.toDraft())
	if err != nil {
		respondError(c, err)
		return
	}

	response := FuelQuoteResponse{Total: summary.Total}
	for _, item := range summary.LineItems {
		response.LineItems = append(response.LineItems, LineItemResponse{Label: item.Label, Amount: item.Amount})
	}

	respondJSON(c, http.StatusOK, response)
}

// PlaceFuelOrder handles POST /v1/orders/fuel
func (h *OrderHandler) PlaceFuelOrder(c *gin.Context) {
	var req FuelOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	order, err := h.fuelService.PlaceOrder(c.Request.Context(), req.toDraft())
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusCreated, PlacedOrderResponse{
		OrderID:  order.OrderID,
		PlacedAt: order.PlacedAt.Format("2006-01-02T15:04:05Z07:00"),
		Total:    order.Total,
		TrackURL: "/v1/deliveries/" + order.OrderID,
	})
}

// MechanicBookingRequest is the HTTP request body for a mechanic booking.
type MechanicBookingRequest struct {
	Vehicle       VehicleInfoRequest `json:"vehicle"`
	ServiceTypeID string             `json:"service_type_id"`
	Description   string             `json:"description,omitempty"`
	Location      LocationRequest    `json:"location"`
	TimeSlot      string             `json:"time_slot,omitempty"`
	PaymentMethod string             `json:"payment_method,omitempty"`
}

func (r MechanicBookingRequest) toDraft() domain.MechanicBookingDraft {
	return domain.MechanicBookingDraft{
		Vehicle: domain.VehicleInfo{
			Type:               domain.VehicleType(r.Vehicle.Type),
			RegistrationNumber: r.Vehicle.RegistrationNumber,
			FuelType:           domain.FuelType(r.Vehicle.FuelType),
		},
		ServiceTypeID: r.ServiceTypeID,
		Description:   r.Description,
		Location: domain.LocationSelection{
			UseCurrentLocation: r.Location.UseCurrentLocation,
			AddressLine:        r.Location.AddressLine,
			Landmark:           r.Location.Landmark,
			Pincode:            r.Location.Pincode,
		},
		TimeSlot:      r.TimeSlot,
		PaymentMethod: domain.PaymentMethod(r.PaymentMethod),
	}
}

// MechanicEstimateResponse is the HTTP response for a mechanic estimate.
type MechanicEstimateResponse struct {
	ServiceTypeID string `json:"service_type_id"`
	EstimatedCost string `json:"estimated_cost"`
	CanConfirm    bool   `json:"can_confirm"`
}

// EstimateMechanic handles POST /v1/orders/mechanic/estimate
func (h *OrderHandler) EstimateMechanic(c *gin.Context) {
	var req MechanicBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	respondJSON(c, http.StatusOK, MechanicEstimateResponse{
		ServiceTypeID: req.ServiceTypeID,
		EstimatedCost: service.EstimateCost(req.ServiceTypeID),
		CanConfirm:    h.mechanicService.CanConfirm(req.toDraft()),
	})
}

// BookMechanic handles POST /v1/orders/mechanic
func (h *OrderHandler) BookMechanic(c *gin.Context) {
	var req MechanicBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	order, err := h.mechanicService.PlaceBooking(c.Request.Context(), req.toDraft())
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusCreated, PlacedOrderResponse{
		OrderID:  order.OrderID,
		PlacedAt: order.PlacedAt.Format("2006-01-02T15:04:05Z07:00"),
		TrackURL: "/v1/deliveries/" + order.OrderID,
	})
}

// DetectLocation handles POST /v1/location/detect
func (h *OrderHandler) DetectLocation(c *gin.Context) {
	message, err := h.locationService.Detect(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, gin.H{"message": message})
}
