package postgres

import (
	"context"

	"chime/internal/domain/entity"
	domainerrors "chime/internal/domain/errors"
	"chime/internal/domain/repository"
	"chime/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// notificationRepository implements the repository.NotificationRepository interface.
type notificationRepository struct {
	db *gorm.DB
}

// NewNotificationRepository is the constructor for notificationRepository.
func NewNotificationRepository(db *gorm.DB) repository.NotificationRepository {
	return &notificationRepository{
		db: db,
	}
}

// CreateNotificationRecord persists a new notification history entry.
func (repo *notificationRepository) CreateNotificationRecord(ctx context.Context, record *entity.NotificationRecord) error {
	recordM := fromNotificationRecordDomain(record)

	if err := repo.db.WithContext(ctx).Create(recordM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrInternalError.WrapMessage("missing required notification record information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create notification record")
	}

	record.CreatedAt = recordM.CreatedAt
	record.UpdatedAt = recordM.UpdatedAt

	return nil
}

// FindRecordByID retrieves a notification record by its unique ID.
func (repo *notificationRepository) FindRecordByID(ctx context.Context, id uuid.UUID) (*entity.NotificationRecord, error) {
	var recordM model.NotificationRecordModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&recordM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNotificationRecordNotFound
		}

		return nil, errors.Wrap(err, "failed to find notification record by ID")
	}

	return toNotificationRecordDomain(&recordM), nil
}

// FindRecordsByUser retrieves notification history for a user with pagination.
func (repo *notificationRepository) FindRecordsByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.NotificationRecord, error) {
	var recordModels []*model.NotificationRecordModel

	query := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC")

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	if err := query.Find(&recordModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find notification records by user")
	}

	records := make([]*entity.NotificationRecord, 0, len(recordModels))
	for _, recordM := range recordModels {
		records = append(records, toNotificationRecordDomain(recordM))
	}

	return records, nil
}

// --- Mapper Functions ---

func toNotificationRecordDomain(data *model.NotificationRecordModel) *entity.NotificationRecord {
	if data == nil {
		return nil
	}

	return &entity.NotificationRecord{
		ID:         data.ID,
		UserID:     data.UserID,
		Title:      data.Title,
		Body:       data.Body,
		RecordID:   data.RecordID,
		Collection: data.Collection,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}

func fromNotificationRecordDomain(data *entity.NotificationRecord) *model.NotificationRecordModel {
	if data == nil {
		return nil
	}

	return &model.NotificationRecordModel{
		ID:         data.ID,
		UserID:     data.UserID,
		Title:      data.Title,
		Body:       data.Body,
		RecordID:   data.RecordID,
		Collection: data.Collection,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}
