package entity

import (
	"time"

	"github.com/google/uuid"
)

// NotificationRecord is the durable history entry produced when an alarm fires.
// Exactly one record is created per successful claim; it outlives the alarm
// and is never deleted or mutated by this service (aside from replication
// metadata on the remote mirror).
type NotificationRecord struct {
	ID         uuid.UUID `json:"id"`         // The Global Unique Identifier (GUID) for the record.
	UserID     uuid.UUID `json:"user_id"`    // The user the notification was shown to.
	Title      string    `json:"title"`      // Rendered notification title.
	Body       string    `json:"body"`       // Rendered notification body.
	RecordID   uuid.UUID `json:"record_id"`  // Back-reference carried over from the alarm.
	Collection string    `json:"collection"` // Collection of the back-reference.
	CreatedAt  time.Time `json:"created_at"` // Timestamp of when this record was created.
	UpdatedAt  time.Time `json:"updated_at"` // Timestamp of the last modification.
}
