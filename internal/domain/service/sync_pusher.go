package service

import (
	"context"

	"github.com/google/uuid"
)

// SyncPusher sends a silent data-only push to a user's devices. The fired
// alarm's notification is delivered once by the claiming scheduler; the sync
// push only tells the user's other devices to refresh their local state.
type SyncPusher interface {
	PushSync(ctx context.Context, userID uuid.UUID, data map[string]string) error
}
