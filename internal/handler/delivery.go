package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"petroserve/internal/domain"
	"petroserve/internal/service"
)

// DeliveryHandler handles HTTP requests for order tracking.
type DeliveryHandler struct {
	deliveryService *service.DeliveryService
}

// NewDeliveryHandler creates a new DeliveryHandler.
func NewDeliveryHandler(deliveryService *service.DeliveryService) *DeliveryHandler {
	return &DeliveryHandler{deliveryService: deliveryService}
}

// AgentResponse is the HTTP representation of a delivery agent.
type AgentResponse struct {
	Name          string  `json:"name"`
	Phone         string  `json:"phone"`
	Rating        float64 `json:"rating"`
	VehicleNumber string  `json:"vehicle_number,omitempty"`
	CallURL       string  `json:"call_url"`
	WhatsAppURL   string  `json:"whatsapp_url"`
}

// DeliveryResponse is the HTTP response for a tracked delivery.
type DeliveryResponse struct {
	ID              string        `json:"id"`
	OrderID         string        `json:"order_id"`
	ServiceType     string        `json:"service_type"`
	Status          string        `json:"status"`
	ETA             string        `json:"eta"`
	ProgressPercent int           `json:"progress_percent"`
	Agent           AgentResponse `json:"agent"`
	Address         string        `json:"address"`
	FuelType        string        `json:"fuel_type,omitempty"`
	QuantityLiters  float64       `json:"quantity_liters,omitempty"`
	Price           float64       `json:"price,omitempty"`
	PlacedAt        string        `json:"placed_at"`
	CancelledAt     string        `json:"cancelled_at,omitempty"`
	CancelReason    string        `json:"cancel_reason,omitempty"`
}

// CancelDeliveryRequest is the HTTP request body for cancelling a delivery.
type CancelDeliveryRequest struct {
	Reason string `json:"reason,omitempty"`
}

func deliveryResponse(order *domain.DeliveryOrder) DeliveryResponse {
	callURL, whatsappURL := service.ContactLinks(order)

	response := DeliveryResponse{
		ID:              order.ID,
		OrderID:         order.OrderID,
		ServiceType:     string(order.ServiceType),
		Status:          string(order.Status),
		ETA:             service.ETADisplay(order),
		ProgressPercent: service.Progress(order.Status),
		Agent: AgentResponse{
			Name:          order.Agent.Name,
			Phone:         order.Agent.Phone,
			Rating:        order.Agent.Rating,
			VehicleNumber: order.Agent.VehicleNumber,
			CallURL:       callURL,
			WhatsAppURL:   whatsappURL,
		},
		Address:        order.Address,
		FuelType:       string(order.Summary.FuelType),
		QuantityLiters: order.Summary.QuantityLiters,
		Price:          order.Summary.Price,
		PlacedAt:       order.PlacedAt.Format("2006-01-02T15:04:05Z07:00"),
	}

	if !order.CancelledAt.IsZero() {
		response.CancelledAt = order.CancelledAt.Format("2006-01-02T15:04:05Z07:00")
		response.CancelReason = order.CancelReason
	}

	return response
}

// Track handles GET /v1/deliveries/:id
func (h *DeliveryHandler) Track(c *gin.Context) {
	order, err := h.deliveryService.Track(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, deliveryResponse(order))
}

// ETA handles GET /v1/deliveries/:id/eta
func (h *DeliveryHandler) ETA(c *gin.Context) {
	eta, err := h.deliveryService.RefreshETA(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, gin.H{"eta": eta})
}

// Cancel handles POST /v1/deliveries/:id/cancel
// The reason is optional, so a bare POST without a body cancels too.
func (h *DeliveryHandler) Cancel(c *gin.Context) {
	var req CancelDeliveryRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	order, err := h.deliveryService.Cancel(c.Request.Context(), c.Param("id"), req.Reason)
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, deliveryResponse(order))
}

// Advance handles POST /v1/deliveries/:id/advance
func (h *DeliveryHandler) Advance(c *gin.Context) {
	order, err := h.deliveryService.Advance(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, deliveryResponse(order))
}
