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

// alarmService implements usecase.AlarmUsecase. Every mutation follows the
// sync-bridge ordering: the local write commits first, then the remote mirror
// is written best-effort. A failed mirror is logged and left divergent; the
// local store stays the source of truth for the claim protocol.
type alarmService struct {
	logger      *slog.Logger
	alarmRepo   repository.AlarmRepository
	recordRepo  repository.NotificationRepository
	remoteStore service.RemoteStore
	nearest     *NearestIndex
}

// NewAlarmService creates a new alarm service instance.
func NewAlarmService(
	logger *slog.Logger,
	alarmRepo repository.AlarmRepository,
	recordRepo repository.NotificationRepository,
	remoteStore service.RemoteStore,
	nearest *NearestIndex,
) usecase.AlarmUsecase {
	return &alarmService{
		logger:      logger,
		alarmRepo:   alarmRepo,
		recordRepo:  recordRepo,
		remoteStore: remoteStore,
		nearest:     nearest,
	}
}

// AddAlarm creates an alarm locally and mirrors it to the remote store.
func (s *alarmService) AddAlarm(ctx context.Context, userID uuid.UUID, input *usecase.AddAlarmInput) (*entity.Alarm, error) {
	if userID == uuid.Nil {
		return nil, domainerrors.ErrIdentityRequired
	}

	alarmID := uuid.New()
	if input.ID != nil {
		alarmID = *input.ID
	}

	now := time.Now()
	alarm := &entity.Alarm{
		ID:         alarmID,
		UserID:     userID,
		RecordID:   input.RecordID,
		Collection: input.Collection,
		Label:      input.Label,
		Note:       input.Note,
		TriggerAt:  input.TriggerAt,
		Fired:      false,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.alarmRepo.CreateAlarm(ctx, alarm); err != nil {
		return nil, errors.Wrap(err, "failed to create alarm")
	}

	s.mirrorAlarmSave(ctx, alarm)
	s.refreshNearest(ctx, userID)

	return alarm, nil
}

// DeleteAlarm removes an alarm locally and mirrors the delete remotely.
func (s *alarmService) DeleteAlarm(ctx context.Context, userID, alarmID uuid.UUID) error {
	if userID == uuid.Nil {
		return domainerrors.ErrIdentityRequired
	}

	alarm, err := s.alarmRepo.FindAlarmByID(ctx, alarmID)
	if err != nil {
		if errors.Is(err, repository.ErrAlarmNotFound) {
			return domainerrors.ErrAlarmNotFound
		}

		return errors.Wrap(err, "failed to find alarm")
	}
	if alarm.UserID != userID {
		return domainerrors.ErrForbidden
	}

	if err := s.alarmRepo.DeleteAlarm(ctx, alarmID); err != nil {
		return errors.Wrap(err, "failed to delete alarm")
	}

	// Local delete precedes the remote delete; the mirror is best-effort.
	if err := s.remoteStore.DeleteAlarm(ctx, alarmID); err != nil {
		s.logger.Warn("failed to mirror alarm delete",
			slog.String("alarm_id", alarmID.String()),
			slog.Any("error", err),
		)
	}

	s.refreshNearest(ctx, userID)

	return nil
}

// GetAlarmsForRecord retrieves the user's alarms referencing a record.
func (s *alarmService) GetAlarmsForRecord(ctx context.Context, userID, recordID uuid.UUID) ([]*entity.Alarm, error) {
	if userID == uuid.Nil {
		return nil, domainerrors.ErrIdentityRequired
	}

	alarms, err := s.alarmRepo.FindAlarmsByRecord(ctx, userID, recordID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find alarms for record")
	}

	return alarms, nil
}

// MarkAsDone sets the completion timestamp without touching the fired flag or
// removing the alarm from the due query.
func (s *alarmService) MarkAsDone(ctx context.Context, userID, alarmID uuid.UUID) (*entity.Alarm, error) {
	if userID == uuid.Nil {
		return nil, domainerrors.ErrIdentityRequired
	}

	alarm, err := s.alarmRepo.FindAlarmByID(ctx, alarmID)
	if err != nil {
		if errors.Is(err, repository.ErrAlarmNotFound) {
			return nil, domainerrors.ErrAlarmNotFound
		}

		return nil, errors.Wrap(err, "failed to find alarm")
	}
	if alarm.UserID != userID {
		return nil, domainerrors.ErrForbidden
	}

	doneAt := time.Now()
	if err := s.alarmRepo.MarkDone(ctx, alarmID, doneAt); err != nil {
		if errors.Is(err, repository.ErrAlarmNotFound) {
			return nil, domainerrors.ErrAlarmNotFound
		}

		return nil, errors.Wrap(err, "failed to mark alarm done")
	}

	alarm.DoneAt = &doneAt
	alarm.UpdatedAt = doneAt

	s.mirrorAlarmSave(ctx, alarm)
	s.refreshNearest(ctx, userID)

	return alarm, nil
}

// NearestAlarms returns the derived read model snapshot.
func (s *alarmService) NearestAlarms(ctx context.Context, userID uuid.UUID) (map[uuid.UUID]time.Time, error) {
	if userID == uuid.Nil {
		return nil, domainerrors.ErrIdentityRequired
	}

	// Serve from the index when this user's slice is warm; recompute lazily
	// otherwise so a fresh process answers correctly before the user's first
	// mutation.
	if snapshot, ok := s.nearest.Snapshot(userID); ok {
		return snapshot, nil
	}

	s.refreshNearest(ctx, userID)

	snapshot, _ := s.nearest.Snapshot(userID)

	return snapshot, nil
}

// GetNotificationHistory retrieves the user's notification records.
func (s *alarmService) GetNotificationHistory(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.NotificationRecord, error) {
	if userID == uuid.Nil {
		return nil, domainerrors.ErrIdentityRequired
	}

	records, err := s.recordRepo.FindRecordsByUser(ctx, userID, limit, offset)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find notification history")
	}

	return records, nil
}

// mirrorAlarmSave writes the alarm to the remote store after a committed
// local write. Failures leave the stores divergent; there is no rollback and
// no retry queue.
func (s *alarmService) mirrorAlarmSave(ctx context.Context, alarm *entity.Alarm) {
	if err := s.remoteStore.SaveAlarm(ctx, alarm); err != nil {
		s.logger.Warn("failed to mirror alarm save",
			slog.String("alarm_id", alarm.ID.String()),
			slog.Any("error", err),
		)
	}
}

// refreshNearest recomputes the nearest-alarm read model from the committed
// pending set.
func (s *alarmService) refreshNearest(ctx context.Context, userID uuid.UUID) {
	pending, err := s.alarmRepo.FindPendingAlarms(ctx, userID)
	if err != nil {
		s.logger.Warn("failed to recompute nearest alarms",
			slog.String("user_id", userID.String()),
			slog.Any("error", err),
		)

		return
	}

	s.nearest.Recompute(userID, pending)
}
