package notification

import (
	"context"
	"log/slog"
	"sync"

	"chime/internal/domain/entity"
	"chime/internal/domain/repository"
	"chime/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// devicePermissionProvider reports the authoritative permission state from the
// device registrations: a user is granted if any active device is granted,
// denied if every active device denied, default otherwise. The actual prompt
// happens on the client; devices report the outcome through the registration
// endpoint, so Request is a fresh read of the same authority.
type devicePermissionProvider struct {
	deviceRepo repository.DeviceRepository
}

// NewDevicePermissionProvider is the constructor for devicePermissionProvider.
func NewDevicePermissionProvider(deviceRepo repository.DeviceRepository) service.PermissionProvider {
	return &devicePermissionProvider{deviceRepo: deviceRepo}
}

// Query reads the current authoritative permission state.
func (p *devicePermissionProvider) Query(ctx context.Context, userID uuid.UUID) (entity.PushPermission, error) {
	devices, err := p.deviceRepo.FindActiveDevicesByUser(ctx, userID)
	if err != nil {
		return entity.PermissionDefault, errors.Wrap(err, "failed to query device permissions")
	}
	if len(devices) == 0 {
		return entity.PermissionDefault, nil
	}

	allDenied := true
	for _, device := range devices {
		switch device.Permission {
		case entity.PermissionGranted:
			return entity.PermissionGranted, nil
		case entity.PermissionDenied:
		default:
			allDenied = false
		}
	}
	if allDenied {
		return entity.PermissionDenied, nil
	}

	return entity.PermissionDefault, nil
}

// Request re-reads the authoritative state after a prompt was requested.
func (p *devicePermissionProvider) Request(ctx context.Context, userID uuid.UUID) (entity.PushPermission, error) {
	return p.Query(ctx, userID)
}

// permissionGate implements the tri-state permission machine on top of a
// PermissionProvider. The tracked state moves only through Request and
// Resync; Current always bypasses the tracked state and asks the provider,
// because permission may change between component activation and a delivery
// attempt.
type permissionGate struct {
	provider service.PermissionProvider
	logger   *slog.Logger

	mu     sync.RWMutex
	states map[uuid.UUID]entity.PushPermission
}

// NewPermissionGate is the constructor for permissionGate.
func NewPermissionGate(provider service.PermissionProvider, logger *slog.Logger) service.PermissionGate {
	return &permissionGate{
		provider: provider,
		logger:   logger,
		states:   make(map[uuid.UUID]entity.PushPermission),
	}
}

// Current returns the permission state, re-read from the provider at call time.
func (g *permissionGate) Current(ctx context.Context, userID uuid.UUID) (entity.PushPermission, error) {
	state, err := g.provider.Query(ctx, userID)
	if err != nil {
		return entity.PermissionDefault, err
	}

	return state, nil
}

// Request triggers an explicit permission request and records the new state.
func (g *permissionGate) Request(ctx context.Context, userID uuid.UUID) (entity.PushPermission, error) {
	state, err := g.provider.Request(ctx, userID)
	if err != nil {
		return entity.PermissionDefault, err
	}

	g.transition(userID, state, "request")

	return state, nil
}

// Resync re-reads the authoritative state, catching changes made outside this
// process.
func (g *permissionGate) Resync(ctx context.Context, userID uuid.UUID) (entity.PushPermission, error) {
	state, err := g.provider.Query(ctx, userID)
	if err != nil {
		return entity.PermissionDefault, err
	}

	g.transition(userID, state, "resync")

	return state, nil
}

func (g *permissionGate) transition(userID uuid.UUID, state entity.PushPermission, cause string) {
	g.mu.Lock()
	prev, seen := g.states[userID]
	g.states[userID] = state
	g.mu.Unlock()

	if seen && prev != state {
		g.logger.Info("notification permission changed",
			slog.String("user_id", userID.String()),
			slog.String("from", string(prev)),
			slog.String("to", string(state)),
			slog.String("cause", cause),
		)
	}
}
