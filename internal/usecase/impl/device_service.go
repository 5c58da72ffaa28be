package impl

import (
	"context"
	"log/slog"
	"time"

	"chime/internal/domain/entity"
	domainerrors "chime/internal/domain/errors"
	"chime/internal/domain/repository"
	"chime/internal/domain/service"
	"chime/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// deviceService implements usecase.DeviceUsecase.
type deviceService struct {
	logger     *slog.Logger
	deviceRepo repository.DeviceRepository
	gate       service.PermissionGate
}

// NewDeviceService creates a new device service instance.
func NewDeviceService(
	logger *slog.Logger,
	deviceRepo repository.DeviceRepository,
	gate service.PermissionGate,
) usecase.DeviceUsecase {
	return &deviceService{
		logger:     logger,
		deviceRepo: deviceRepo,
		gate:       gate,
	}
}

// RegisterDevice upserts a device registration and resyncs the permission
// gate so the reported state takes effect immediately.
func (s *deviceService) RegisterDevice(ctx context.Context, userID uuid.UUID, input *usecase.RegisterDeviceInput) (*entity.UserDevice, error) {
	if userID == uuid.Nil {
		return nil, domainerrors.ErrIdentityRequired
	}

	permission := input.Permission
	if permission == "" {
		permission = entity.PermissionDefault
	}
	if !permission.Valid() {
		return nil, domainerrors.ErrValidationFailed
	}

	now := time.Now()
	device := &entity.UserDevice{
		ID:         uuid.New(),
		UserID:     userID,
		FCMToken:   input.FCMToken,
		DeviceID:   input.DeviceID,
		Platform:   input.Platform,
		Permission: permission,
		IsActive:   true,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.deviceRepo.UpsertDevice(ctx, device); err != nil {
		return nil, errors.Wrap(err, "failed to register device")
	}

	if _, err := s.gate.Resync(ctx, userID); err != nil {
		s.logger.Warn("failed to resync permission after device registration",
			slog.String("user_id", userID.String()),
			slog.Any("error", err),
		)
	}

	return device, nil
}

// RequestPermission triggers an explicit permission request through the gate.
func (s *deviceService) RequestPermission(ctx context.Context, userID uuid.UUID) (entity.PushPermission, error) {
	if userID == uuid.Nil {
		return "", domainerrors.ErrIdentityRequired
	}

	state, err := s.gate.Request(ctx, userID)
	if err != nil {
		return "", errors.Wrap(err, "failed to request permission")
	}

	return state, nil
}

// ResyncPermission re-reads the authoritative permission state.
func (s *deviceService) ResyncPermission(ctx context.Context, userID uuid.UUID) (entity.PushPermission, error) {
	if userID == uuid.Nil {
		return "", domainerrors.ErrIdentityRequired
	}

	state, err := s.gate.Resync(ctx, userID)
	if err != nil {
		return "", errors.Wrap(err, "failed to resync permission")
	}

	return state, nil
}
