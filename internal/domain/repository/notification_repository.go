package repository

import (
	"context"
	"errors"

	"chime/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrNotificationRecordNotFound is returned when a notification record is not found.
var ErrNotificationRecordNotFound = errors.New("notification record not found")

// NotificationRepository defines the interface for notification history operations.
// Records are append-only: nothing in this service updates or deletes them.
type NotificationRepository interface {
	// CreateNotificationRecord persists a new notification history entry.
	CreateNotificationRecord(ctx context.Context, record *entity.NotificationRecord) error

	// FindRecordByID retrieves a notification record by its unique ID.
	FindRecordByID(ctx context.Context, id uuid.UUID) (*entity.NotificationRecord, error)

	// FindRecordsByUser retrieves notification history for a user, newest
	// first, with pagination.
	FindRecordsByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.NotificationRecord, error)
}
