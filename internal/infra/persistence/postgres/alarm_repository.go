package postgres

import (
	"context"
	"time"

	"chime/internal/domain/entity"
	domainerrors "chime/internal/domain/errors"
	"chime/internal/domain/repository"
	"chime/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// alarmRepository implements the repository.AlarmRepository interface.
type alarmRepository struct {
	db *gorm.DB
}

// NewAlarmRepository is the constructor for alarmRepository.
func NewAlarmRepository(db *gorm.DB) repository.AlarmRepository {
	return &alarmRepository{
		db: db,
	}
}

// CreateAlarm persists a new alarm with its client-generated ID.
func (repo *alarmRepository) CreateAlarm(ctx context.Context, alarm *entity.Alarm) error {
	alarmM := fromAlarmDomain(alarm)

	if err := repo.db.WithContext(ctx).Create(alarmM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrAlarmCreationFailed.WrapMessage("alarm id already exists")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrAlarmCreationFailed.WrapMessage("missing required alarm information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create alarm")
	}

	alarm.CreatedAt = alarmM.CreatedAt
	alarm.UpdatedAt = alarmM.UpdatedAt

	return nil
}

// FindAlarmByID retrieves an alarm by its unique ID.
func (repo *alarmRepository) FindAlarmByID(ctx context.Context, id uuid.UUID) (*entity.Alarm, error) {
	return repo.findByID(ctx, id, false)
}

// FindAlarmByIDForUpdate retrieves an alarm by ID holding a row lock until the
// surrounding transaction commits. This is the re-read of the claim protocol:
// concurrent claimers serialize on the lock, so only the first one still sees
// fired == false.
func (repo *alarmRepository) FindAlarmByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Alarm, error) {
	return repo.findByID(ctx, id, true)
}

func (repo *alarmRepository) findByID(ctx context.Context, id uuid.UUID, forUpdate bool) (*entity.Alarm, error) {
	var alarmM model.AlarmModel

	query := repo.db.WithContext(ctx)
	if forUpdate {
		query = query.Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate})
	}

	if err := query.Where("id = ?", id).First(&alarmM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAlarmNotFound
		}

		return nil, errors.Wrap(err, "failed to find alarm by ID")
	}

	return toAlarmDomain(&alarmM), nil
}

// FindAlarmsByRecord retrieves all alarms of a user referencing a record.
func (repo *alarmRepository) FindAlarmsByRecord(ctx context.Context, userID, recordID uuid.UUID) ([]*entity.Alarm, error) {
	var alarmModels []*model.AlarmModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND record_id = ?", userID, recordID).
		Order("trigger_at ASC").
		Find(&alarmModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find alarms by record")
	}

	return toAlarmDomainSlice(alarmModels), nil
}

// FindDueAlarms retrieves the due set: fired == false AND trigger_at <= now,
// scoped to the user. Ordering is not significant for correctness; trigger_at
// ascending keeps the notification list deterministic within a tick.
func (repo *alarmRepository) FindDueAlarms(ctx context.Context, userID uuid.UUID, now time.Time) ([]*entity.Alarm, error) {
	var alarmModels []*model.AlarmModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND fired = false AND trigger_at <= ?", userID, now).
		Order("trigger_at ASC").
		Find(&alarmModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find due alarms")
	}

	return toAlarmDomainSlice(alarmModels), nil
}

// FindPendingAlarms retrieves all unfired, not-done alarms of a user.
func (repo *alarmRepository) FindPendingAlarms(ctx context.Context, userID uuid.UUID) ([]*entity.Alarm, error) {
	var alarmModels []*model.AlarmModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND fired = false AND done_at IS NULL", userID).
		Find(&alarmModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find pending alarms")
	}

	return toAlarmDomainSlice(alarmModels), nil
}

// MarkFired flips fired false→true. The WHERE clause makes the flip
// conditional, so even without the preceding locked re-read a second claimer
// affects zero rows and loses.
func (repo *alarmRepository) MarkFired(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.AlarmModel{}).
		Where("id = ? AND fired = false", id).
		Updates(map[string]interface{}{
			"fired":      true,
			"updated_at": time.Now(),
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to mark alarm fired")
	}

	if result.RowsAffected == 0 {
		return repository.ErrAlarmAlreadyClaimed
	}

	return nil
}

// MarkDone sets the completion timestamp without touching the fired flag.
func (repo *alarmRepository) MarkDone(ctx context.Context, id uuid.UUID, doneAt time.Time) error {
	result := repo.db.WithContext(ctx).
		Model(&model.AlarmModel{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"done_at":    doneAt,
			"updated_at": time.Now(),
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to mark alarm done")
	}

	if result.RowsAffected == 0 {
		return repository.ErrAlarmNotFound
	}

	return nil
}

// DeleteAlarm removes an alarm by ID. Missing rows are tolerated: the claim
// pipeline and an explicit user delete may race, and either outcome is fine.
func (repo *alarmRepository) DeleteAlarm(ctx context.Context, id uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.AlarmModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to delete alarm")
	}

	return nil
}

// --- Mapper Functions ---

// toAlarmDomain converts a GORM AlarmModel to a domain Alarm entity.
func toAlarmDomain(data *model.AlarmModel) *entity.Alarm {
	if data == nil {
		return nil
	}

	return &entity.Alarm{
		ID:         data.ID,
		UserID:     data.UserID,
		RecordID:   data.RecordID,
		Collection: data.Collection,
		Label:      data.Label,
		Note:       data.Note,
		TriggerAt:  data.TriggerAt,
		Fired:      data.Fired,
		DoneAt:     data.DoneAt,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}

func toAlarmDomainSlice(models []*model.AlarmModel) []*entity.Alarm {
	alarms := make([]*entity.Alarm, 0, len(models))
	for _, alarmM := range models {
		alarms = append(alarms, toAlarmDomain(alarmM))
	}

	return alarms
}

// fromAlarmDomain converts a domain Alarm entity to a GORM AlarmModel.
func fromAlarmDomain(data *entity.Alarm) *model.AlarmModel {
	if data == nil {
		return nil
	}

	return &model.AlarmModel{
		ID:         data.ID,
		UserID:     data.UserID,
		RecordID:   data.RecordID,
		Collection: data.Collection,
		Label:      data.Label,
		Note:       data.Note,
		TriggerAt:  data.TriggerAt,
		Fired:      data.Fired,
		DoneAt:     data.DoneAt,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}
