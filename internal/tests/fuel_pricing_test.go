package tests

import (
	"context"
	"errors"
	"testing"

	"petroserve/internal/domain"
	"petroserve/internal/service"
)

// ──────────────────────────────────────────────
// FUEL PRICING
// ──────────────────────────────────────────────

func petrolDraft(quantity float64) domain.FuelOrderDraft {
	return domain.FuelOrderDraft{
		Vehicle: domain.VehicleInfo{
			Type:               domain.VehicleTypeCar,
			RegistrationNumber: "DL 01 AB 1234",
			FuelType:           domain.FuelTypePetrol,
		},
		QuantityLiters: quantity,
	}
}

func TestFuelSummary_PetrolTotal(t *testing.T) {
	t.Parallel()

	fuelService := service.NewFuelOrderService(nil)

	summary, err := fuelService.ComputeSummary(petrolDraft(20))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// 20 × 95.50 + 25 service fee
	if !almostEqual(summary.Total, 1935.00) {
		t.Errorf("expected total 1935.00, got %.2f", summary.Total)
	}

	if len(summary.LineItems) != 2 {
		t.Fatalf("expected 2 line items, got %d", len(summary.LineItems))
	}
	if !almostEqual(summary.LineItems[1].Amount, 25.0) {
		t.Errorf("expected service fee 25, got %.2f", summary.LineItems[1].Amount)
	}
}

func TestFuelSummary_DieselTotal(t *testing.T) {
	t.Parallel()

	fuelService := service.NewFuelOrderService(nil)

	draft := petrolDraft(40)
	draft.Vehicle.FuelType = domain.FuelTypeDiesel

	summary, err := fuelService.ComputeSummary(draft)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// 40 × 87.30 + 25 service fee
	if !almostEqual(summary.Total, 3517.00) {
		t.Errorf("expected total 3517.00, got %.2f", summary.Total)
	}
}

func TestFuelSummary_LinearAndMonotonic(t *testing.T) {
	t.Parallel()

	fuelService := service.NewFuelOrderService(nil)

	var previous float64
	for _, quantity := range []float64{1, 5, 10, 20, 50, 100, 200} {
		summary, err := fuelService.ComputeSummary(petrolDraft(quantity))
		if err != nil {
			t.Fatalf("quantity %.0f: unexpected error: %v", quantity, err)
		}

		if summary.Total <= previous {
			t.Errorf("quantity %.0f: total %.2f not monotonically increasing", quantity, summary.Total)
		}
		previous = summary.Total

		// Strictly linear: total = qty*price + fee.
		expected := quantity*service.PetrolPricePerLiter + service.FuelServiceFee
		if !almostEqual(summary.Total, expected) {
			t.Errorf("quantity %.0f: expected %.2f, got %.2f", quantity, expected, summary.Total)
		}
	}
}

func TestFuelSummary_RejectsInvalidDrafts(t *testing.T) {
	t.Parallel()

	fuelService := service.NewFuelOrderService(nil)

	_, err := fuelService.ComputeSummary(petrolDraft(0))
	if !errors.Is(err, service.ErrInvalidQuantity) {
		t.Errorf("expected ErrInvalidQuantity, got %v", err)
	}

	_, err = fuelService.ComputeSummary(petrolDraft(-5))
	if !errors.Is(err, service.ErrInvalidQuantity) {
		t.Errorf("expected ErrInvalidQuantity, got %v", err)
	}

	_, err = fuelService.ComputeSummary(petrolDraft(500))
	if !errors.Is(err, service.ErrQuantityTooLarge) {
		t.Errorf("expected ErrQuantityTooLarge, got %v", err)
	}

	draft := petrolDraft(20)
	draft.Vehicle.FuelType = "KEROSENE"
	_, err = fuelService.ComputeSummary(draft)
	if !errors.Is(err, service.ErrInvalidFuelType) {
		t.Errorf("expected ErrInvalidFuelType, got %v", err)
	}
}

// ──────────────────────────────────────────────
// FUEL ORDER PLACEMENT
// ──────────────────────────────────────────────

func TestFuelOrder_DefaultDraftIsSubmittable(t *testing.T) {
	t.Parallel()

	fuelService := service.NewFuelOrderService(nil)

	// Unlike mechanic bookings, a fuel order has no required discriminator:
	// the form's initial state (20L petrol) prices and places cleanly.
	order, err := fuelService.PlaceOrder(context.Background(), petrolDraft(20))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if order.OrderID == "" {
		t.Error("expected an order id")
	}
	if !almostEqual(order.Total, 1935.00) {
		t.Errorf("expected total 1935.00, got %.2f", order.Total)
	}
}

func TestFuelOrder_RejectsUnknownPaymentMethod(t *testing.T) {
	t.Parallel()

	fuelService := service.NewFuelOrderService(nil)

	draft := petrolDraft(20)
	draft.PaymentMethod = "BARTER"

	_, err := fuelService.PlaceOrder(context.Background(), draft)
	if !errors.Is(err, service.ErrInvalidPaymentMethod) {
		t.Errorf("expected ErrInvalidPaymentMethod, got %v", err)
	}
}

func TestValidatePaymentMethod_DefaultsToUPI(t *testing.T) {
	t.Parallel()

	method, err := service.ValidatePaymentMethod("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if method != domain.PaymentMethodUPI {
		t.Errorf("expected UPI default, got %s", method)
	}
}
