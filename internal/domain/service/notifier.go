// Package service defines the interfaces for domain services implemented by
// the infra layer.
package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// ErrTierUnavailable is returned by a DeliveryTier that cannot deliver right
// now (no registered devices, no endpoint configured). The notifier treats it
// as "try the next tier", not as a delivery failure worth logging loudly.
var ErrTierUnavailable = errors.New("delivery tier unavailable")

// SendOptions carries the optional parts of a notification.
type SendOptions struct {
	Body string // Notification body text.
	Icon string // Icon URL, passed through to tiers that render one.
	// ClickAction is the URL to open when the notification is clicked.
	// Only the direct tier honors it; the background push tier cannot attach
	// a click handler.
	ClickAction string
	// Data is attached to the notification for client-side routing.
	Data map[string]string
}

// Receipt identifies a successfully dispatched notification.
type Receipt struct {
	Tier      string // Name of the delivery tier that accepted it.
	MessageID string // Tier-specific message ID, if any.
}

// Notifier delivers a user-visible notification through the best available
// delivery tier.
//
// Send re-checks the user's notification permission at call time. If the
// permission is not granted, or every tier fails, it returns (nil, nil):
// delivery is best-effort and a skipped notification is not an error.
type Notifier interface {
	Send(ctx context.Context, userID uuid.UUID, title string, opts *SendOptions) (*Receipt, error)
}

// DeliveryTier is one ranked mechanism for showing a notification.
// Tiers are attempted in order until one succeeds or all are exhausted.
type DeliveryTier interface {
	// Name identifies the tier in receipts and logs.
	Name() string

	// Deliver attempts to show the notification. ErrTierUnavailable means the
	// tier cannot serve this user right now; any other error is a delivery
	// failure.
	Deliver(ctx context.Context, userID uuid.UUID, title string, opts *SendOptions) (*Receipt, error)
}
