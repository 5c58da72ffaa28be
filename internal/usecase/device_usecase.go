package usecase

import (
	"context"

	"chime/internal/domain/entity"

	"github.com/google/uuid"
)

// RegisterDeviceInput carries the fields a client reports when registering a
// device for notifications.
type RegisterDeviceInput struct {
	DeviceID   string                `json:"device_id"`
	FCMToken   string                `json:"fcm_token"`
	Platform   string                `json:"platform"`
	Permission entity.PushPermission `json:"permission"`
}

// DeviceUsecase manages device registrations and the notification permission
// state machine they back.
type DeviceUsecase interface {
	// RegisterDevice registers or refreshes a device, including the
	// permission state it reports.
	RegisterDevice(ctx context.Context, userID uuid.UUID, input *RegisterDeviceInput) (*entity.UserDevice, error)

	// RequestPermission triggers an explicit permission request.
	RequestPermission(ctx context.Context, userID uuid.UUID) (entity.PushPermission, error)

	// ResyncPermission re-reads the authoritative permission state, catching
	// changes made outside this process.
	ResyncPermission(ctx context.Context, userID uuid.UUID) (entity.PushPermission, error)
}
