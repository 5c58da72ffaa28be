// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"
	"time"

	"chime/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for alarm persistence.
var (
	// ErrAlarmNotFound is returned when an alarm is not found.
	ErrAlarmNotFound = errors.New("alarm not found")
	// ErrAlarmAlreadyClaimed is returned by MarkFired when another observer
	// has already flipped the fired flag (or deleted the alarm). It is the
	// normal lost-race outcome, not a failure.
	ErrAlarmAlreadyClaimed = errors.New("alarm already claimed")
)

// AlarmRepository defines the interface for alarm-related database operations.
//
// FindAlarmByIDForUpdate and MarkFired are only meaningful inside a
// transaction obtained through TransactionManager; the claim protocol relies
// on the store serializing conflicting transactions over the same row.
type AlarmRepository interface {
	// CreateAlarm persists a new alarm.
	CreateAlarm(ctx context.Context, alarm *entity.Alarm) error

	// FindAlarmByID retrieves an alarm by its unique ID.
	FindAlarmByID(ctx context.Context, id uuid.UUID) (*entity.Alarm, error)

	// FindAlarmByIDForUpdate retrieves an alarm by ID with a row lock, so the
	// subsequent MarkFired in the same transaction cannot race another claimer.
	FindAlarmByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Alarm, error)

	// FindAlarmsByRecord retrieves all alarms of a user referencing a record.
	FindAlarmsByRecord(ctx context.Context, userID, recordID uuid.UUID) ([]*entity.Alarm, error)

	// FindDueAlarms retrieves all unfired alarms of a user whose trigger time
	// has passed.
	FindDueAlarms(ctx context.Context, userID uuid.UUID, now time.Time) ([]*entity.Alarm, error)

	// FindPendingAlarms retrieves all unfired, not-done alarms of a user.
	// Used to recompute the nearest-alarm read model.
	FindPendingAlarms(ctx context.Context, userID uuid.UUID) ([]*entity.Alarm, error)

	// MarkFired flips the fired flag false→true. Returns
	// ErrAlarmAlreadyClaimed if the flag was already set or the row is gone.
	MarkFired(ctx context.Context, id uuid.UUID) error

	// MarkDone sets the completion timestamp. Independent of firing.
	MarkDone(ctx context.Context, id uuid.UUID, doneAt time.Time) error

	// DeleteAlarm removes an alarm by ID. Deleting a missing alarm is not an
	// error.
	DeleteAlarm(ctx context.Context, id uuid.UUID) error
}
