package service

import (
	"context"

	"chime/internal/domain/entity"

	"github.com/google/uuid"
)

// RemoteStore mirrors local alarm and notification writes to a durable cloud
// document store for cross-device continuity.
//
// Documents are keyed by the same client-generated IDs as the local rows, so
// no translation layer exists between the two stores. Saves use merge
// semantics; the store assigns server-side "last updated" timestamps so
// cross-device ordering does not depend on client clocks. The mirror is
// best-effort: callers log failures and never roll back the local write.
type RemoteStore interface {
	// SaveAlarm writes or merges an alarm document.
	SaveAlarm(ctx context.Context, alarm *entity.Alarm) error

	// DeleteAlarm removes an alarm document. Deleting a missing document is
	// not an error.
	DeleteAlarm(ctx context.Context, id uuid.UUID) error

	// SaveNotificationRecord writes or merges a notification history document.
	SaveNotificationRecord(ctx context.Context, record *entity.NotificationRecord) error

	// Close releases the underlying client.
	Close() error
}
