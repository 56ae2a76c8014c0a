package service

import (
	"context"
	"time"

	"petroserve/internal/domain"
)

// mechanicEstimates maps service type ids to static display cost ranges.
// Mechanic cost is intentionally a range, not a computed total: unknown or
// custom work is priced after diagnosis.
var mechanicEstimates = map[string]string{
	"general":   "₹500 - ₹1,500",
	"battery":   "₹300 - ₹800",
	"tire":      "₹100 - ₹500",
	"breakdown": "₹200 - ₹1,000",
	"carwash":   "₹150 - ₹400",
	"custom":    "To be determined",
}

// EstimateFallback is shown for service types without a published range.
const EstimateFallback = "Our mechanic will diagnose and provide an estimate."

// MechanicBookingService validates and places mechanic bookings.
type MechanicBookingService struct {
	notificationService *NotificationService
}

// NewMechanicBookingService creates a new MechanicBookingService.
func NewMechanicBookingService(notificationService *NotificationService) *MechanicBookingService {
	return &MechanicBookingService{notificationService: notificationService}
}

// EstimateCost returns the static estimated cost range for a service type.
func EstimateCost(serviceTypeID string) string {
	if estimate, ok := mechanicEstimates[serviceTypeID]; ok {
		return estimate
	}
	return EstimateFallback
}

// CanConfirm reports whether a mechanic draft is submittable. The service
// type is the required discriminator; everything else is free-form.
func (s *MechanicBookingService) CanConfirm(draft domain.MechanicBookingDraft) bool {
	return draft.ServiceTypeID != ""
}

// PlaceBooking confirms a mechanic draft. Confirmation is rejected until a
// service type has been selected; re-selecting the same type keeps the
// draft valid.
func (s *MechanicBookingService) PlaceBooking(ctx context.Context, draft domain.MechanicBookingDraft) (*PlacedOrder, error) {
	if !s.CanConfirm(draft) {
		return nil, ErrServiceTypeRequired
	}

	if draft.PaymentMethod != "" {
		if _, err := ValidatePaymentMethod(string(draft.PaymentMethod)); err != nil {
			return nil, err
		}
	}

	order := &PlacedOrder{
		OrderID:  newOrderNumber(),
		PlacedAt: time.Now(),
	}

	if s.notificationService != nil {
		_ = s.notificationService.NotifyOrderPlaced(ctx, order.OrderID, domain.ServiceTypeMechanic, 0)
	}

	return order, nil
}
