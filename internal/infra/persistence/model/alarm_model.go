// Package model contains the GORM-specific structs for the persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
)

// AlarmModel is the GORM-specific struct for the 'alarms' table.
//
// The composite index on (user_id, fired, trigger_at) serves the due-set
// query; (user_id, record_id) serves the per-record listing. IDs are
// client-generated, never defaulted by the database, because the same ID keys
// the remote mirror document.
type AlarmModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key"`
	UserID     uuid.UUID `gorm:"type:uuid;not null;index:idx_alarms_due,priority:1;index:idx_alarms_record,priority:1"`
	RecordID   uuid.UUID `gorm:"type:uuid;not null;index:idx_alarms_record,priority:2"`
	Collection string    `gorm:"type:text;not null"`
	Label      string    `gorm:"type:text;not null"`
	Note       string    `gorm:"type:text"`
	TriggerAt  time.Time `gorm:"not null;index:idx_alarms_due,priority:3"`
	Fired      bool      `gorm:"not null;default:false;index:idx_alarms_due,priority:2"`
	DoneAt     *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (AlarmModel) TableName() string {
	return "alarms"
}
