package notification

import (
	"context"
	"testing"

	"chime/internal/domain/entity"
	mockRepo "chime/internal/mocks/repository"
	mockSvc "chime/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDevicePermissionProvider_Query_AnyGrantedWins(t *testing.T) {
	deviceRepo := mockRepo.NewMockDeviceRepository(t)

	ctx := context.Background()
	userID := uuid.New()

	deviceRepo.EXPECT().
		FindActiveDevicesByUser(ctx, userID).
		Return([]*entity.UserDevice{
			{ID: uuid.New(), UserID: userID, Permission: entity.PermissionDenied},
			{ID: uuid.New(), UserID: userID, Permission: entity.PermissionGranted},
		}, nil)

	provider := NewDevicePermissionProvider(deviceRepo)

	state, err := provider.Query(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, entity.PermissionGranted, state)
}

func TestDevicePermissionProvider_Query_AllDenied(t *testing.T) {
	deviceRepo := mockRepo.NewMockDeviceRepository(t)

	ctx := context.Background()
	userID := uuid.New()

	deviceRepo.EXPECT().
		FindActiveDevicesByUser(ctx, userID).
		Return([]*entity.UserDevice{
			{ID: uuid.New(), UserID: userID, Permission: entity.PermissionDenied},
			{ID: uuid.New(), UserID: userID, Permission: entity.PermissionDenied},
		}, nil)

	provider := NewDevicePermissionProvider(deviceRepo)

	state, err := provider.Query(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, entity.PermissionDenied, state)
}

func TestDevicePermissionProvider_Query_MixedDeniedAndDefault(t *testing.T) {
	deviceRepo := mockRepo.NewMockDeviceRepository(t)

	ctx := context.Background()
	userID := uuid.New()

	// One device was never asked: the user as a whole is still promptable.
	deviceRepo.EXPECT().
		FindActiveDevicesByUser(ctx, userID).
		Return([]*entity.UserDevice{
			{ID: uuid.New(), UserID: userID, Permission: entity.PermissionDenied},
			{ID: uuid.New(), UserID: userID, Permission: entity.PermissionDefault},
		}, nil)

	provider := NewDevicePermissionProvider(deviceRepo)

	state, err := provider.Query(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, entity.PermissionDefault, state)
}

func TestDevicePermissionProvider_Query_NoDevices(t *testing.T) {
	deviceRepo := mockRepo.NewMockDeviceRepository(t)

	ctx := context.Background()
	userID := uuid.New()

	deviceRepo.EXPECT().FindActiveDevicesByUser(ctx, userID).Return([]*entity.UserDevice{}, nil)

	provider := NewDevicePermissionProvider(deviceRepo)

	state, err := provider.Query(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, entity.PermissionDefault, state)
}

func TestDevicePermissionProvider_Query_RepositoryError(t *testing.T) {
	deviceRepo := mockRepo.NewMockDeviceRepository(t)

	ctx := context.Background()
	userID := uuid.New()

	deviceRepo.EXPECT().FindActiveDevicesByUser(ctx, userID).Return(nil, errors.New("db error"))

	provider := NewDevicePermissionProvider(deviceRepo)

	_, err := provider.Query(ctx, userID)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to query device permissions")
}

func TestPermissionGate_Current_AlwaysAsksProvider(t *testing.T) {
	provider := mockSvc.NewMockPermissionProvider(t)

	ctx := context.Background()
	userID := uuid.New()

	// Two calls, two provider reads: Current never serves a cached state.
	provider.EXPECT().Query(ctx, userID).Return(entity.PermissionGranted, nil).Once()
	provider.EXPECT().Query(ctx, userID).Return(entity.PermissionDenied, nil).Once()

	gate := NewPermissionGate(provider, newDiscardLogger())

	first, err := gate.Current(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, entity.PermissionGranted, first)

	second, err := gate.Current(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, entity.PermissionDenied, second)
}

func TestPermissionGate_Request_RecordsState(t *testing.T) {
	provider := mockSvc.NewMockPermissionProvider(t)

	ctx := context.Background()
	userID := uuid.New()

	provider.EXPECT().Request(ctx, userID).Return(entity.PermissionGranted, nil)

	gate := NewPermissionGate(provider, newDiscardLogger())

	state, err := gate.Request(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, entity.PermissionGranted, state)
}

func TestPermissionGate_Resync_PicksUpExternalChange(t *testing.T) {
	provider := mockSvc.NewMockPermissionProvider(t)

	ctx := context.Background()
	userID := uuid.New()

	// The user granted in-app, then revoked in browser settings. Resync is
	// how the revocation becomes visible.
	provider.EXPECT().Request(ctx, userID).Return(entity.PermissionGranted, nil)
	provider.EXPECT().Query(ctx, userID).Return(entity.PermissionDenied, nil)

	gate := NewPermissionGate(provider, newDiscardLogger())

	granted, err := gate.Request(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, entity.PermissionGranted, granted)

	resynced, err := gate.Resync(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, entity.PermissionDenied, resynced)
}

func TestPermissionGate_Request_ProviderError(t *testing.T) {
	provider := mockSvc.NewMockPermissionProvider(t)

	ctx := context.Background()
	userID := uuid.New()

	provider.EXPECT().Request(ctx, userID).Return(entity.PermissionDefault, errors.New("provider unavailable"))

	gate := NewPermissionGate(provider, newDiscardLogger())

	state, err := gate.Request(ctx, userID)

	assert.Error(t, err)
	assert.Equal(t, entity.PermissionDefault, state)
}
