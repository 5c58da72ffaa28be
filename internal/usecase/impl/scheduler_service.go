package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"chime/internal/domain/entity"
	"chime/internal/domain/repository"
	"chime/internal/domain/service"
	"chime/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// schedulerService implements usecase.SchedulerUsecase. Each tick scans the
// due set, claims alarms one at a time through a locking transaction, and
// fires the claimed ones. Losing a claim race to another observer is a silent
// no-op; a failed claim transaction leaves the alarm for the next tick.
type schedulerService struct {
	logger      *slog.Logger
	txManager   repository.TransactionManager
	alarmRepo   repository.AlarmRepository
	recordRepo  repository.NotificationRepository
	notifier    service.Notifier
	remoteStore service.RemoteStore
	publisher   service.EventPublisher
	nearest     *NearestIndex
}

// NewSchedulerService creates a new scheduler service instance.
func NewSchedulerService(
	logger *slog.Logger,
	txManager repository.TransactionManager,
	alarmRepo repository.AlarmRepository,
	recordRepo repository.NotificationRepository,
	notifier service.Notifier,
	remoteStore service.RemoteStore,
	publisher service.EventPublisher,
	nearest *NearestIndex,
) usecase.SchedulerUsecase {
	return &schedulerService{
		logger:      logger,
		txManager:   txManager,
		alarmRepo:   alarmRepo,
		recordRepo:  recordRepo,
		notifier:    notifier,
		remoteStore: remoteStore,
		publisher:   publisher,
		nearest:     nearest,
	}
}

// RunTick scans for due alarms and fires every one this observer wins the
// claim for. It returns the number of alarms fired.
func (s *schedulerService) RunTick(ctx context.Context, userID uuid.UUID, now time.Time) (int, error) {
	due, err := s.alarmRepo.FindDueAlarms(ctx, userID, now)
	if err != nil {
		return 0, errors.Wrap(err, "failed to find due alarms")
	}

	fired := 0
	for _, alarm := range due {
		claimed, err := s.claim(ctx, alarm.ID)
		if err != nil {
			// The alarm stays unclaimed and is retried on the next tick.
			s.logger.Error("alarm claim transaction failed",
				slog.String("alarm_id", alarm.ID.String()),
				slog.Any("error", err),
			)

			continue
		}
		if !claimed {
			continue
		}

		s.fire(ctx, alarm, now)
		fired++
	}

	if fired > 0 {
		s.refreshNearest(ctx, userID)
	}

	return fired, nil
}

// claim attempts to take exclusive ownership of the alarm. It re-reads the
// row under a lock inside the transaction so a claim observed by a stale due
// scan cannot fire twice. Returns false with a nil error when another
// observer won.
func (s *schedulerService) claim(ctx context.Context, alarmID uuid.UUID) (bool, error) {
	claimed := false

	err := s.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		alarmRepo := factory.NewAlarmRepository()

		alarm, err := alarmRepo.FindAlarmByIDForUpdate(ctx, alarmID)
		if err != nil {
			if errors.Is(err, repository.ErrAlarmNotFound) {
				// Already fired and deleted by another observer.
				return nil
			}

			return errors.Wrap(err, "failed to lock alarm")
		}
		if alarm.Fired {
			return nil
		}

		if err := alarmRepo.MarkFired(ctx, alarmID); err != nil {
			if errors.Is(err, repository.ErrAlarmAlreadyClaimed) {
				return nil
			}

			return errors.Wrap(err, "failed to mark alarm fired")
		}

		claimed = true

		return nil
	})
	if err != nil {
		return false, err
	}

	return claimed, nil
}

// fire runs the post-claim pipeline: deliver the notification, persist the
// history record, remove the alarm from both stores, and publish the event.
// The alarm is removed even when delivery fails; a claimed alarm never fires
// twice, so delivery is at most once.
func (s *schedulerService) fire(ctx context.Context, alarm *entity.Alarm, now time.Time) {
	title := fmt.Sprintf("鬧鐘提醒:%s", alarm.Label)
	body := alarm.Note

	receipt, err := s.notifier.Send(ctx, alarm.UserID, title, &service.SendOptions{
		Body:        body,
		ClickAction: fmt.Sprintf("/records/%s", alarm.RecordID.String()),
		Data: map[string]string{
			"alarm_id":   alarm.ID.String(),
			"record_id":  alarm.RecordID.String(),
			"collection": alarm.Collection,
		},
	})
	switch {
	case err != nil:
		s.logger.Warn("alarm notification delivery failed",
			slog.String("alarm_id", alarm.ID.String()),
			slog.Any("error", err),
		)
	case receipt != nil:
		s.logger.Info("alarm notification delivered",
			slog.String("alarm_id", alarm.ID.String()),
			slog.String("tier", receipt.Tier),
			slog.String("message_id", receipt.MessageID),
		)
	default:
		s.logger.Info("alarm notification skipped",
			slog.String("alarm_id", alarm.ID.String()),
			slog.String("user_id", alarm.UserID.String()),
		)
	}

	record := &entity.NotificationRecord{
		ID:         uuid.New(),
		UserID:     alarm.UserID,
		Title:      title,
		Body:       body,
		RecordID:   alarm.RecordID,
		Collection: alarm.Collection,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := s.recordRepo.CreateNotificationRecord(ctx, record); err != nil {
		s.logger.Error("failed to persist notification record",
			slog.String("alarm_id", alarm.ID.String()),
			slog.Any("error", err),
		)
	} else if err := s.remoteStore.SaveNotificationRecord(ctx, record); err != nil {
		s.logger.Warn("failed to mirror notification record",
			slog.String("notification_id", record.ID.String()),
			slog.Any("error", err),
		)
	}

	if err := s.alarmRepo.DeleteAlarm(ctx, alarm.ID); err != nil {
		s.logger.Error("failed to delete fired alarm",
			slog.String("alarm_id", alarm.ID.String()),
			slog.Any("error", err),
		)
	}
	if err := s.remoteStore.DeleteAlarm(ctx, alarm.ID); err != nil {
		s.logger.Warn("failed to mirror fired alarm delete",
			slog.String("alarm_id", alarm.ID.String()),
			slog.Any("error", err),
		)
	}

	event := &service.AlarmFiredEvent{
		RequestID:      uuid.New().String(),
		NotificationID: record.ID.String(),
		AlarmID:        alarm.ID.String(),
		UserID:         alarm.UserID.String(),
		RecordID:       alarm.RecordID.String(),
		Collection:     alarm.Collection,
		Title:          title,
		Body:           body,
		FiredAt:        now,
	}
	if err := s.publisher.PublishAlarmFired(ctx, event); err != nil {
		s.logger.Warn("failed to publish alarm fired event",
			slog.String("alarm_id", alarm.ID.String()),
			slog.Any("error", err),
		)
	}
}

func (s *schedulerService) refreshNearest(ctx context.Context, userID uuid.UUID) {
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
