package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"petroserve/internal/domain"
)

// Fuel pricing. Prices are per liter; the service fee is flat per order.
const (
	PetrolPricePerLiter = 95.50
	DieselPricePerLiter = 87.30
	FuelServiceFee      = 25.0

	// MaxQuantityLiters is a single tanker load.
	MaxQuantityLiters = 200.0
)

// LineItem is one priced line of an order summary.
type LineItem struct {
	Label  string
	Amount float64
}

// FuelSummary is the derived cost breakdown of a fuel draft.
type FuelSummary struct {
	LineItems []LineItem
	Total     float64
}

// FuelOrderService prices and places fuel orders.
type FuelOrderService struct {
	notificationService *NotificationService
}

// NewFuelOrderService creates a new FuelOrderService.
func NewFuelOrderService(notificationService *NotificationService) *FuelOrderService {
	return &FuelOrderService{notificationService: notificationService}
}

// PricePerLiter returns the static per-liter price for a fuel type.
func PricePerLiter(fuelType domain.FuelType) (float64, error) {
	switch fuelType {
	case domain.FuelTypePetrol:
		return PetrolPricePerLiter, nil
	case domain.FuelTypeDiesel:
		return DieselPricePerLiter, nil
	default:
		return 0, ErrInvalidFuelType
	}
}

// ComputeSummary derives the cost breakdown of a fuel draft. It is a pure
// derivation: total = quantity × price-per-liter + service fee.
func (s *FuelOrderService) ComputeSummary(draft domain.FuelOrderDraft) (*FuelSummary, error) {
	if draft.QuantityLiters <= 0 {
		return nil, ErrInvalidQuantity
	}
	if draft.QuantityLiters > MaxQuantityLiters {
		return nil, ErrQuantityTooLarge
	}

	price, err := PricePerLiter(draft.Vehicle.FuelType)
	if err != nil {
		return nil, err
	}

	fuelCost := draft.QuantityLiters * price

	return &FuelSummary{
		LineItems: []LineItem{
			{Label: fmt.Sprintf("%s × %.0fL", draft.Vehicle.FuelType, draft.QuantityLiters), Amount: fuelCost},
			{Label: "Service fee", Amount: FuelServiceFee},
		},
		Total: fuelCost + FuelServiceFee,
	}, nil
}

// PlacedOrder is the result of confirming a draft.
type PlacedOrder struct {
	OrderID  string
	PlacedAt time.Time
	Total    float64
}

// PlaceOrder confirms a fuel draft and returns the new order number.
// A fuel draft has no required discriminator: any draft that prices cleanly
// is submittable. The placed order is not threaded into delivery tracking;
// tracking serves the active delivery.
func (s *FuelOrderService) PlaceOrder(ctx context.Context, draft domain.FuelOrderDraft) (*PlacedOrder, error) {
	summary, err := s.ComputeSummary(draft)
	if err != nil {
		return nil, err
	}

	if draft.PaymentMethod != "" {
		if _, err := ValidatePaymentMethod(string(draft.PaymentMethod)); err != nil {
			return nil, err
		}
	}

	order := &PlacedOrder{
		OrderID:  newOrderNumber(),
		PlacedAt: time.Now(),
		Total:    summary.Total,
	}

	if s.notificationService != nil {
		_ = s.notificationService.NotifyOrderPlaced(ctx, order.OrderID, domain.ServiceTypeFuel, summary.Total)
	}

	return order, nil
}

// ValidatePaymentMethod validates a payment method string. Empty defaults
// to UPI, matching the order form's initial state.
func ValidatePaymentMethod(method string) (domain.PaymentMethod, error) {
	switch domain.PaymentMethod(method) {
	case domain.PaymentMethodUPI, domain.PaymentMethodWallet,
		domain.PaymentMethodCard, domain.PaymentMethodCash:
		return domain.PaymentMethod(method), nil
	case "":
		return domain.PaymentMethodUPI, nil
	default:
		return "", ErrInvalidPaymentMethod
	}
}

func newOrderNumber() string {
	return "ORD-" + uuid.New().String()[:8]
}
