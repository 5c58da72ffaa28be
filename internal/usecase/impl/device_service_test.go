package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"chime/internal/domain/entity"
	domainerrors "chime/internal/domain/errors"
	mockRepo "chime/internal/mocks/repository"
	mockSvc "chime/internal/mocks/service"
	"chime/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestDeviceService(t *testing.T) (
	usecase.DeviceUsecase,
	*mockRepo.MockDeviceRepository,
	*mockSvc.MockPermissionGate,
) {
	deviceRepo := mockRepo.NewMockDeviceRepository(t)
	gate := mockSvc.NewMockPermissionGate(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	svc := NewDeviceService(logger, deviceRepo, gate)

	return svc, deviceRepo, gate
}

func TestDeviceService_RegisterDevice_Success(t *testing.T) {
	svc, deviceRepo, gate := createTestDeviceService(t)

	ctx := context.Background()
	userID := uuid.New()

	deviceRepo.EXPECT().
		UpsertDevice(ctx, mock.MatchedBy(func(device *entity.UserDevice) bool {
			return device.UserID == userID &&
				device.DeviceID == "browser-abc" &&
				device.Permission == entity.PermissionGranted &&
				device.IsActive
		})).
		Return(nil)
	gate.EXPECT().Resync(ctx, userID).Return(entity.PermissionGranted, nil)

	device, err := svc.RegisterDevice(ctx, userID, &usecase.RegisterDeviceInput{
		DeviceID:   "browser-abc",
		FCMToken:   "fcm-token-1",
		Platform:   "web",
		Permission: entity.PermissionGranted,
	})

	require.NoError(t, err)
	assert.Equal(t, "fcm-token-1", device.FCMToken)
}

func TestDeviceService_RegisterDevice_EmptyPermissionDefaults(t *testing.T) {
	svc, deviceRepo, gate := createTestDeviceService(t)

	ctx := context.Background()
	userID := uuid.New()

	deviceRepo.EXPECT().
		UpsertDevice(ctx, mock.MatchedBy(func(device *entity.UserDevice) bool {
			return device.Permission == entity.PermissionDefault
		})).
		Return(nil)
	gate.EXPECT().Resync(ctx, userID).Return(entity.PermissionDefault, nil)

	device, err := svc.RegisterDevice(ctx, userID, &usecase.RegisterDeviceInput{
		DeviceID: "browser-abc",
		Platform: "web",
	})

	require.NoError(t, err)
	assert.Equal(t, entity.PermissionDefault, device.Permission)
}

func TestDeviceService_RegisterDevice_InvalidPermission(t *testing.T) {
	svc, _, _ := createTestDeviceService(t)

	device, err := svc.RegisterDevice(context.Background(), uuid.New(), &usecase.RegisterDeviceInput{
		DeviceID:   "browser-abc",
		Permission: entity.PushPermission("maybe"),
	})

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	assert.Nil(t, device)
}

func TestDeviceService_RegisterDevice_UpsertError(t *testing.T) {
	svc, deviceRepo, _ := createTestDeviceService(t)

	ctx := context.Background()
	userID := uuid.New()

	deviceRepo.EXPECT().UpsertDevice(ctx, mock.Anything).Return(errors.New("db error"))

	device, err := svc.RegisterDevice(ctx, userID, &usecase.RegisterDeviceInput{
		DeviceID:   "browser-abc",
		Permission: entity.PermissionGranted,
	})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to register device")
	assert.Nil(t, device)
}

func TestDeviceService_RegisterDevice_ResyncFailureTolerated(t *testing.T) {
	svc, deviceRepo, gate := createTestDeviceService(t)

	ctx := context.Background()
	userID := uuid.New()

	deviceRepo.EXPECT().UpsertDevice(ctx, mock.Anything).Return(nil)
	// Registration already committed; the resync is advisory.
	gate.EXPECT().Resync(ctx, userID).Return(entity.PushPermission(""), errors.New("provider unavailable"))

	device, err := svc.RegisterDevice(ctx, userID, &usecase.RegisterDeviceInput{
		DeviceID:   "browser-abc",
		Permission: entity.PermissionDenied,
	})

	require.NoError(t, err)
	assert.NotNil(t, device)
}

func TestDeviceService_RegisterDevice_IdentityRequired(t *testing.T) {
	svc, _, _ := createTestDeviceService(t)

	device, err := svc.RegisterDevice(context.Background(), uuid.Nil, &usecase.RegisterDeviceInput{
		DeviceID: "browser-abc",
	})

	assert.ErrorIs(t, err, domainerrors.ErrIdentityRequired)
	assert.Nil(t, device)
}

func TestDeviceService_RequestPermission(t *testing.T) {
	svc, _, gate := createTestDeviceService(t)

	ctx := context.Background()
	userID := uuid.New()

	gate.EXPECT().Request(ctx, userID).Return(entity.PermissionGranted, nil)

	state, err := svc.RequestPermission(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, entity.PermissionGranted, state)
}

func TestDeviceService_RequestPermission_Error(t *testing.T) {
	svc, _, gate := createTestDeviceService(t)

	ctx := context.Background()
	userID := uuid.New()

	gate.EXPECT().Request(ctx, userID).Return(entity.PushPermission(""), errors.New("provider unavailable"))

	state, err := svc.RequestPermission(ctx, userID)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to request permission")
	assert.Empty(t, state)
}

func TestDeviceService_ResyncPermission(t *testing.T) {
	svc, _, gate := createTestDeviceService(t)

	ctx := context.Background()
	userID := uuid.New()

	// Resync catches a denial made in browser settings, outside the app.
	gate.EXPECT().Resync(ctx, userID).Return(entity.PermissionDenied, nil)

	state, err := svc.ResyncPermission(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, entity.PermissionDenied, state)
}

func TestDeviceService_ResyncPermission_IdentityRequired(t *testing.T) {
	svc, _, _ := createTestDeviceService(t)

	state, err := svc.ResyncPermission(context.Background(), uuid.Nil)

	assert.ErrorIs(t, err, domainerrors.ErrIdentityRequired)
	assert.Empty(t, state)
}
