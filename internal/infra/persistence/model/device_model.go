package model

import (
	"time"

	"github.com/google/uuid"
)

// UserDeviceModel is the GORM-specific struct for the 'user_devices' table.
type UserDeviceModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key"`
	UserID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_devices_user_device,priority:1"`
	DeviceID   string    `gorm:"type:text;not null;uniqueIndex:idx_devices_user_device,priority:2"`
	FCMToken   string    `gorm:"type:text;not null;index"`
	Platform   string    `gorm:"type:text;not null"`
	Permission string    `gorm:"type:text;not null;default:'default'"`
	IsActive   bool      `gorm:"not null;default:true"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserDeviceModel) TableName() string {
	return "user_devices"
}
