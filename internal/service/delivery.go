package service

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"petroserve/internal/domain"
	"petroserve/internal/repository"
)

// deliveryStatusRank orders the linear lifecycle. CANCELLED has no rank;
// it is terminal and reachable only before the agent departs.
var deliveryStatusRank = map[domain.DeliveryStatus]int{
	domain.DeliveryStatusConfirmed: 1,
	domain.DeliveryStatusAssigned:  2,
	domain.DeliveryStatusOnTheWay:  3,
	domain.DeliveryStatusArrived:   4,
	domain.DeliveryStatusCompleted: 5,
}

// progressCheckpoints are the four tracking steps shown to the user.
// ARRIVED shares the En Route checkpoint; only COMPLETED fills the last.
const progressCheckpoints = 4

// DeliveryService handles order tracking and the delivery lifecycle.
type DeliveryService struct {
	deliveryRepo        DeliveryRepositoryInterface
	notificationService *NotificationService
}

// DeliveryRepositoryInterface is the slice of repository.DeliveryRepository
// the delivery service reads and mutates; tracking never creates orders.
type DeliveryRepositoryInterface interface {
	GetByOrderID(ctx context.Context, orderID string) (*domain.DeliveryOrder, error)
	GetCurrent(ctx context.Context) (*domain.DeliveryOrder, error)
	Update(ctx context.Context, order *domain.DeliveryOrder) error
}

// NewDeliveryService creates a new DeliveryService.
func NewDeliveryService(deliveryRepo DeliveryRepositoryInterface, notificationService *NotificationService) *DeliveryService {
	return &DeliveryService{
		deliveryRepo:        deliveryRepo,
		notificationService: notificationService,
	}
}

// Track returns the delivery for an order number. Unknown or empty order
// ids fall back to the active delivery: in the demo every submit lands on
// the same in-flight order regardless of what was drafted. Only a missing
// order triggers the fallback; repository failures surface to the caller.
func (s *DeliveryService) Track(ctx context.Context, orderID string) (*domain.DeliveryOrder, error) {
	if orderID != "" {
		order, err := s.deliveryRepo.GetByOrderID(ctx, orderID)
		if err == nil {
			return order, nil
		}
		if !errors.Is(err, repository.ErrNotFound) {
			return nil, err
		}
	}
	return s.deliveryRepo.GetCurrent(ctx)
}

// Cancel cancels a delivery. Cancellation is permitted only from CONFIRMED
// or ASSIGNED; once the agent is en route the attempt is rejected with a
// descriptive reason and the order is left unchanged.
func (s *DeliveryService) Cancel(ctx context.Context, orderID, reason string) (*domain.DeliveryOrder, error) {
	if orderID == "" {
		return nil, ErrInvalidOrderID
	}

	order, err := s.deliveryRepo.GetByOrderID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if order.Status == domain.DeliveryStatusCancelled {
		return nil, ErrOrderAlreadyCancelled
	}

	if order.Status != domain.DeliveryStatusConfirmed && order.Status != domain.DeliveryStatusAssigned {
		return nil, ErrAgentEnRoute
	}

	order.Status = domain.DeliveryStatusCancelled
	order.CancelledAt = time.Now()
	order.CancelReason = reason

	if err := s.deliveryRepo.Update(ctx, order); err != nil {
		return nil, err
	}

	if s.notificationService != nil {
		_ = s.notificationService.NotifyOrderCancelled(ctx, order, reason)
	}

	return order, nil
}

// Advance moves a delivery to the next lifecycle state. The lifecycle is
// strictly linear with no backward transitions.
func (s *DeliveryService) Advance(ctx context.Context, orderID string) (*domain.DeliveryOrder, error) {
	if orderID == "" {
		return nil, ErrInvalidOrderID
	}

	order, err := s.deliveryRepo.GetByOrderID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	next, ok := nextStatus(order.Status)
	if !ok {
		return nil, ErrDeliveryCompleted
	}

	order.Status = next
	if next == domain.DeliveryStatusArrived || next == domain.DeliveryStatusCompleted {
		order.ETAMinutes = 0
	}

	if err := s.deliveryRepo.Update(ctx, order); err != nil {
		return nil, err
	}

	if s.notificationService != nil {
		_ = s.notificationService.NotifyStatusChanged(ctx, order)
	}

	return order, nil
}

func nextStatus(status domain.DeliveryStatus) (domain.DeliveryStatus, bool) {
	switch status {
	case domain.DeliveryStatusConfirmed:
		return domain.DeliveryStatusAssigned, true
	case domain.DeliveryStatusAssigned:
		return domain.DeliveryStatusOnTheWay, true
	case domain.DeliveryStatusOnTheWay:
		return domain.DeliveryStatusArrived, true
	case domain.DeliveryStatusArrived:
		return domain.DeliveryStatusCompleted, true
	default:
		return "", false
	}
}

// Progress maps a lifecycle state to a 0-100 completion percentage across
// the four tracking checkpoints (Confirmed, Assigned, En Route, Delivered).
func Progress(status domain.DeliveryStatus) int {
	rank, ok := deliveryStatusRank[status]
	if !ok {
		return 0
	}

	completed := rank
	if rank >= 3 && status != domain.DeliveryStatusCompleted {
		// ON_THE_WAY and ARRIVED both sit on the En Route checkpoint.
		completed = 3
	}
	if status == domain.DeliveryStatusCompleted {
		completed = progressCheckpoints
	}

	return completed * 100 / progressCheckpoints
}

// RefreshETA reloads the delivery and returns the current ETA display, so
// the tracking page can poll the ETA without re-rendering the whole order.
func (s *DeliveryService) RefreshETA(ctx context.Context, orderID string) (string, error) {
	order, err := s.Track(ctx, orderID)
	if err != nil {
		return "", err
	}
	return ETADisplay(order), nil
}

// ETADisplay renders the ETA the way the tracking page shows it.
func ETADisplay(order *domain.DeliveryOrder) string {
	switch order.Status {
	case domain.DeliveryStatusArrived:
		return "Agent has arrived"
	case domain.DeliveryStatusCompleted:
		return "Delivered"
	case domain.DeliveryStatusCancelled:
		return "Cancelled"
	default:
		return fmt.Sprintf("Arriving in %d mins", order.ETAMinutes)
	}
}

// ContactLinks builds the dial and messaging deep links for the assigned
// agent. Both are fire-and-forget external surfaces; nothing is consumed
// back into the order.
func ContactLinks(order *domain.DeliveryOrder) (telURL, whatsappURL string) {
	telURL = "tel:" + order.Agent.Phone

	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, order.Agent.Phone)

	text := fmt.Sprintf("Hi %s, I'm tracking my delivery order %s. Can you provide an update?",
		order.Agent.Name, order.OrderID)
	whatsappURL = "https://wa.me/" + digits + "?text=" + url.QueryEscape(text)

	return telURL, whatsappURL
}
