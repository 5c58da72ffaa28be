// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Alarm represents a scheduled reminder owned by a single user.
//
// An alarm lives until it fires: the claim pipeline flips Fired exactly once,
// writes a NotificationRecord, and deletes the alarm. Outside the claim the
// only mutations are the DoneAt completion mark and explicit deletion.
type Alarm struct {
	ID         uuid.UUID  `json:"id"`          // Client-generated GUID, shared with the remote mirror.
	UserID     uuid.UUID  `json:"user_id"`     // Owner; every query is scoped to it.
	RecordID   uuid.UUID  `json:"record_id"`   // Back-reference to the entity the alarm concerns.
	Collection string     `json:"collection"`  // Collection the back-reference belongs to (opaque here).
	Label      string     `json:"label"`       // Display title.
	Note       string     `json:"note"`        // Optional display body.
	TriggerAt  time.Time  `json:"trigger_at"`  // Absolute time after which the alarm is due.
	Fired      bool       `json:"fired"`       // One-way false→true; set by exactly one claimer.
	DoneAt     *time.Time `json:"done_at"`     // Completion mark set by the user, independent of firing.
	CreatedAt  time.Time  `json:"created_at"`  // Timestamp of when this record was created.
	UpdatedAt  time.Time  `json:"updated_at"`  // Timestamp of the last modification.
}

// Due reports whether the alarm should fire at the given instant.
func (a *Alarm) Due(now time.Time) bool {
	return !a.Fired && !a.TriggerAt.After(now)
}

// Done reports whether the user has marked the alarm completed.
func (a *Alarm) Done() bool {
	return a.DoneAt != nil
}
