package service

import (
	"context"
	"time"
)

// AlarmFiredEvent is emitted after an alarm has been claimed, delivered and
// logged. Consumers use it to refresh reactive notification lists.
type AlarmFiredEvent struct {
	RequestID      string    `json:"request_id,omitempty"` // For distributed tracing
	NotificationID string    `json:"notification_id"`
	AlarmID        string    `json:"alarm_id"`
	UserID         string    `json:"user_id"`
	RecordID       string    `json:"record_id"`
	Collection     string    `json:"collection"`
	Title          string    `json:"title"`
	Body           string    `json:"body"`
	FiredAt        time.Time `json:"fired_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishAlarmFired publishes an alarm-fired event for async consumers
	PublishAlarmFired(ctx context.Context, event *AlarmFiredEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
