package service

import (
	"context"

	"chime/internal/domain/entity"

	"github.com/google/uuid"
)

// PermissionProvider reports the platform's authoritative notification
// permission for a user. The provider is the only source of permission
// transitions: the gate never infers a state change from delivery outcomes.
type PermissionProvider interface {
	// Query reads the current authoritative permission state.
	Query(ctx context.Context, userID uuid.UUID) (entity.PushPermission, error)

	// Request asks the platform to prompt the user and returns the resulting
	// state. On platforms where the prompt happens out-of-band the returned
	// state is simply the authoritative state at this moment.
	Request(ctx context.Context, userID uuid.UUID) (entity.PushPermission, error)
}

// PermissionGate tracks the tri-state permission machine
// (default | granted | denied) in front of a PermissionProvider.
type PermissionGate interface {
	// Current returns the permission state, re-read from the provider at call
	// time. Delivery decisions must use this, not a cached state.
	Current(ctx context.Context, userID uuid.UUID) (entity.PushPermission, error)

	// Request triggers an explicit permission request and records the new state.
	Request(ctx context.Context, userID uuid.UUID) (entity.PushPermission, error)

	// Resync re-reads the authoritative state, catching changes made outside
	// this process (e.g. via system settings).
	Resync(ctx context.Context, userID uuid.UUID) (entity.PushPermission, error)
}
