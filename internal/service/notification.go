package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"petroserve/internal/domain"
)

// NotificationType represents the type of notification.
type NotificationType string

const (
	NotificationOrderPlaced    NotificationType = "ORDER_PLACED"
	NotificationStatusChanged  NotificationType = "STATUS_CHANGED"
	NotificationOrderCancelled NotificationType = "ORDER_CANCELLED"
)

// Notification represents a notification to be sent.
type Notification struct {
	Type      NotificationType
	Title     string
	Message   string
	Data      map[string]interface{}
	CreatedAt time.Time
}

// NotificationService handles notification delivery.
type NotificationService struct {
	// In a real system, this would have push/SMS/email clients and
	// WebSocket connections for live tracking updates.
}

// NewNotificationService creates a new NotificationService.
func NewNotificationService() *NotificationService {
	return &NotificationService{}
}

// NotifyOrderPlaced announces a newly confirmed order.
func (s *NotificationService) NotifyOrderPlaced(ctx context.Context, orderID string, serviceType domain.ServiceType, total float64) error {
	message := fmt.Sprintf("Your %s order %s has been placed", serviceType, orderID)
	if total > 0 {
		message = fmt.Sprintf("%s. Total: ₹%.2f", message, total)
	}

	return s.send(ctx, Notification{
		Type:    NotificationOrderPlaced,
		Title:   "Order Placed",
		Message: message,
		Data: map[string]interface{}{
			"order_id":     orderID,
			"service_type": serviceType,
			"total":        total,
		},
		CreatedAt: time.Now(),
	})
}

// NotifyStatusChanged announces a delivery lifecycle transition.
func (s *NotificationService) NotifyStatusChanged(ctx context.Context, order *domain.DeliveryOrder) error {
	return s.send(ctx, Notification{
		Type:    NotificationStatusChanged,
		Title:   "Delivery Update",
		Message: fmt.Sprintf("Order %s is now %s", order.OrderID, order.Status),
		Data: map[string]interface{}{
			"order_id": order.OrderID,
			"status":   order.Status,
			"eta_mins": order.ETAMinutes,
		},
		CreatedAt: time.Now(),
	})
}

// NotifyOrderCancelled announces a cancellation.
func (s *NotificationService) NotifyOrderCancelled(ctx context.Context, order *domain.DeliveryOrder, reason string) error {
	return s.send(ctx, Notification{
		Type:    NotificationOrderCancelled,
		Title:   "Order Cancelled",
		Message: fmt.Sprintf("Order %s has been cancelled", order.OrderID),
		Data: map[string]interface{}{
			"order_id": order.OrderID,
			"reason":   reason,
		},
		CreatedAt: time.Now(),
	})
}

// send delivers a notification (mock implementation).
func (s *NotificationService) send(ctx context.Context, notification Notification) error {
	log.Printf("[NOTIFICATION] Type=%s, Title=%s, Message=%s",
		notification.Type, notification.Title, notification.Message)
	return nil
}
