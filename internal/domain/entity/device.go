package entity

import (
	"time"

	"github.com/google/uuid"
)

// PushPermission is the tri-state notification permission reported by a device.
type PushPermission string

const (
	// PermissionDefault means the user has not been asked yet.
	PermissionDefault PushPermission = "default"
	// PermissionGranted means the device may show notifications.
	PermissionGranted PushPermission = "granted"
	// PermissionDenied means the user refused notifications.
	PermissionDenied PushPermission = "denied"
)

// Valid reports whether p is one of the three known states.
func (p PushPermission) Valid() bool {
	switch p {
	case PermissionDefault, PermissionGranted, PermissionDenied:
		return true
	}

	return false
}

// UserDevice represents a user's device registered for alarm notifications.
// Its FCM token feeds the push delivery tier and its permission state feeds
// the permission gate.
type UserDevice struct {
	ID         uuid.UUID      `json:"id"`         // The Global Unique Identifier (GUID) for the device.
	UserID     uuid.UUID      `json:"user_id"`    // The ID of the user who owns this device.
	FCMToken   string         `json:"fcm_token"`  // Firebase Cloud Messaging token for push delivery.
	DeviceID   string         `json:"device_id"`  // Unique device identifier from the client.
	Platform   string         `json:"platform"`   // Device platform (web, ios, android).
	Permission PushPermission `json:"permission"` // Notification permission last reported by the device.
	IsActive   bool           `json:"is_active"`  // Indicates if this device is active for notifications.
	CreatedAt  time.Time      `json:"created_at"` // Timestamp of when this device was registered.
	UpdatedAt  time.Time      `json:"updated_at"` // Timestamp of the last modification.
}
