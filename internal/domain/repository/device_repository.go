package repository

import (
	"context"
	"errors"

	"chime/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrDeviceNotFound is returned when a device is not found.
var ErrDeviceNotFound = errors.New("device not found")

// DeviceRepository defines the interface for device-related database operations.
// Devices back both delivery tiers: their FCM tokens feed the push tier and
// their reported permission states feed the permission gate.
type DeviceRepository interface {
	// UpsertDevice registers a device or refreshes its token, platform,
	// permission and activity state, keyed by (userID, deviceID).
	UpsertDevice(ctx context.Context, device *entity.UserDevice) error

	// FindActiveDevicesByUser retrieves all active devices for a user.
	FindActiveDevicesByUser(ctx context.Context, userID uuid.UUID) ([]*entity.UserDevice, error)

	// UpdatePermission records the permission state a device reported.
	UpdatePermission(ctx context.Context, userID uuid.UUID, deviceID string, permission entity.PushPermission) error

	// DeactivateByTokens marks the devices carrying the given FCM tokens
	// inactive. Used after the push tier reports tokens as unregistered.
	DeactivateByTokens(ctx context.Context, tokens []string) error
}
