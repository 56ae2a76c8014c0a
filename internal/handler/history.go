package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"petroserve/internal/domain"
	"petroserve/internal/service"
)

// HistoryHandler handles HTTP requests for past orders.
type HistoryHandler struct {
	historyService *service.HistoryService
}

// NewHistoryHandler creates a new HistoryHandler.
func NewHistoryHandler(historyService *service.HistoryService) *HistoryHandler {
	return &HistoryHandler{historyService: historyService}
}

// HistoryRecordResponse is the HTTP representation of a past order.
type HistoryRecordResponse struct {
	ID              string  `json:"id"`
	OrderNumber     string  `json:"order_number"`
	PlacedAt        string  `json:"placed_at"`
	Status          string  `json:"status"`
	ServiceType     string  `json:"service_type"`
	FuelType        string  `json:"fuel_type,omitempty"`
	QuantityLiters  float64 `json:"quantity_liters,omitempty"`
	MechanicService string  `json:"mechanic_service,omitempty"`
	MechanicName    string  `json:"mechanic_name,omitempty"`
	Location        string  `json:"location"`
	TotalAmount     float64 `json:"total_amount"`
	VehicleNumber   string  `json:"vehicle_number,omitempty"`
	Rating          int     `json:"rating,omitempty"`
	HasInvoice      bool    `json:"has_invoice"`
}

// HistorySummaryResponse aggregates the filtered record set.
type HistorySummaryResponse struct {
	TotalSpent float64 `json:"total_spent"`
	Completed  int     `json:"completed"`
	Fuel       int     `json:"fuel"`
	Mechanic   int     `json:"mechanic"`
}

func historyQuery(c *gin.Context) service.HistoryQuery {
	filter := service.TypeFilter(c.DefaultQuery("type", string(service.TypeFilterAll)))
	switch filter {
	case service.TypeFilterFuelOnly, service.TypeFilterMechanicOnly:
	default:
		filter = service.TypeFilterAll
	}

	return service.HistoryQuery{
		TypeFilter: filter,
		Search:     c.Query("search"),
	}
}

func historyRecordResponse(rec *domain.ServiceHistoryRecord) HistoryRecordResponse {
	return HistoryRecordResponse{
		ID:              rec.ID,
		OrderNumber:     rec.OrderNumber,
		PlacedAt:        rec.PlacedAt.Format("2006-01-02T15:04:05Z07:00"),
		Status:          string(rec.Status),
		ServiceType:     string(rec.ServiceType),
		FuelType:        string(rec.FuelType),
		QuantityLiters:  rec.QuantityLiters,
		MechanicService: rec.MechanicService,
		MechanicName:    rec.MechanicName,
		Location:        rec.Location,
		TotalAmount:     rec.TotalAmount,
		VehicleNumber:   rec.VehicleNumber,
		Rating:          rec.Rating,
		HasInvoice:      rec.HasInvoice,
	}
}

// List handles GET /v1/history
func (h *HistoryHandler) List(c *gin.Context) {
	records, err := h.historyService.Query(c.Request.Context(), historyQuery(c))
	if err != nil {
		respondError(c, err)
		return
	}

	response := make([]HistoryRecordResponse, 0, len(records))
	for _, rec := range records {
		response = append(response, historyRecordResponse(rec))
	}

	respondJSON(c, http.StatusOK, response)
}

// Summary handles GET /v1/history/summary
func (h *HistoryHandler) Summary(c *gin.Context) {
	records, err := h.historyService.Query(c.Request.Context(), historyQuery(c))
	if err != nil {
		respondError(c, err)
		return
	}

	counts := service.CountByStatus(records)
	respondJSON(c, http.StatusOK, HistorySummaryResponse{
		TotalSpent: service.TotalSpent(records),
		Completed:  counts.Completed,
		Fuel:       counts.Fuel,
		Mechanic:   counts.Mechanic,
	})
}
