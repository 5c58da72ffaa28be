package model

import (
	"time"

	"github.com/google/uuid"
)

// NotificationRecordModel is the GORM-specific struct for the
// 'notification_records' table. Rows are append-only history.
type NotificationRecordModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key"`
	UserID     uuid.UUID `gorm:"type:uuid;not null;index"`
	Title      string    `gorm:"type:text;not null"`
	Body       string    `gorm:"type:text"`
	RecordID   uuid.UUID `gorm:"type:uuid;not null;index"`
	Collection string    `gorm:"type:text;not null"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (NotificationRecordModel) TableName() string {
	return "notification_records"
}
