package service

import "github.com/google/uuid"

// IdentitySource supplies the externally-provided user identity the claim
// scheduler operates for. All scheduling is a no-op while no identity is
// present.
type IdentitySource interface {
	// Current returns the active user identity. ok is false when absent.
	Current() (userID uuid.UUID, ok bool)

	// Changes returns a channel that receives the new identity whenever it
	// changes. uuid.Nil means the identity was cleared. The channel is never
	// closed by the source.
	Changes() <-chan uuid.UUID
}
