// Package usecase defines the interfaces for the application's use cases.
package usecase

import (
	"context"
	"time"

	"chime/internal/domain/entity"

	"github.com/google/uuid"
)

// AddAlarmInput carries the fields for creating an alarm. ID is optional:
// clients that pre-generate the ID (so they can reference it offline) pass it
// in, otherwise one is generated.
type AddAlarmInput struct {
	ID         *uuid.UUID `json:"id,omitempty"`
	RecordID   uuid.UUID  `json:"record_id"`
	Collection string     `json:"collection"`
	Label      string     `json:"label"`
	Note       string     `json:"note,omitempty"`
	TriggerAt  time.Time  `json:"trigger_at"`
}

// AlarmUsecase defines the public CRUD surface consumed by UI collaborators.
// Every operation is scoped to the calling user's identity.
type AlarmUsecase interface {
	// AddAlarm creates an alarm locally and mirrors it to the remote store.
	AddAlarm(ctx context.Context, userID uuid.UUID, input *AddAlarmInput) (*entity.Alarm, error)

	// DeleteAlarm removes an alarm locally and mirrors the delete remotely.
	// Only the owner may delete.
	DeleteAlarm(ctx context.Context, userID, alarmID uuid.UUID) error

	// GetAlarmsForRecord retrieves the user's alarms referencing a record.
	GetAlarmsForRecord(ctx context.Context, userID, recordID uuid.UUID) ([]*entity.Alarm, error)

	// MarkAsDone sets the completion timestamp. Independent of firing: the
	// alarm stays in the due query until its trigger time.
	MarkAsDone(ctx context.Context, userID, alarmID uuid.UUID) (*entity.Alarm, error)

	// NearestAlarms returns the derived read model: for each record with at
	// least one pending alarm, the earliest pending trigger time.
	NearestAlarms(ctx context.Context, userID uuid.UUID) (map[uuid.UUID]time.Time, error)

	// GetNotificationHistory retrieves the user's notification records,
	// newest first, with pagination.
	GetNotificationHistory(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.NotificationRecord, error)
}
