package service

import (
	"context"
)

// Notification event types emitted by the lifecycle engine.
const (
	NotificationApproved       = "approved"
	NotificationItemReceived   = "item_received"
	NotificationCreditAssigned = "credit_assigned"
)

// NotificationEvent is the intent the lifecycle engine emits when a request
// changes state. A separate consumer performs the actual email delivery, so
// the engine never blocks or fails a transition on notification problems.
type NotificationEvent struct {
	RequestID         string `json:"request_id,omitempty"` // For distributed tracing
	Type              string `json:"type"`
	ExchangeRequestID string `json:"exchange_request_id"`
	OwnerEmail        string `json:"owner_email"`
	ProductName       string `json:"product_name"`

	// WarehouseInfo is attached to "approved" events so the email can carry
	// the destination address.
	WarehouseInfo map[string]string `json:"warehouse_info,omitempty"`

	// CreditAmount and TotalPoints are attached to "credit_assigned" events.
	CreditAmount int64 `json:"credit_amount,omitempty"`
	TotalPoints  int64 `json:"total_points,omitempty"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishNotificationEvent publishes a notification event for async processing
	PublishNotificationEvent(ctx context.Context, event *NotificationEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
