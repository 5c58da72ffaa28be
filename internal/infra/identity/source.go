// Package identity supplies the externally-provided user identity the claim
// scheduler runs for.
package identity

import (
	"log/slog"
	"sync"

	"chime/config"
	"chime/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Source is a mutable identity holder. The initial identity comes from
// configuration; Set swaps or clears it at runtime and notifies watchers.
type Source struct {
	logger *slog.Logger

	mu      sync.RWMutex
	current uuid.UUID
	changes chan uuid.UUID
}

// NewSource builds the identity source from configuration. An empty
// scheduler.userId means the scheduler starts idle until an identity is set.
func NewSource(cfg *config.Config, logger *slog.Logger) (service.IdentitySource, error) {
	src := &Source{
		logger: logger,
		// Buffered so a Set never blocks on a scheduler mid-tick.
		changes: make(chan uuid.UUID, 8),
	}

	if cfg.Scheduler != nil && cfg.Scheduler.UserID != "" {
		userID, err := uuid.Parse(cfg.Scheduler.UserID)
		if err != nil {
			return nil, errors.Wrap(err, "invalid scheduler.userId")
		}
		src.current = userID
	}

	return src, nil
}

// Current returns the active user identity. ok is false when absent.
func (s *Source) Current() (uuid.UUID, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.current, s.current != uuid.Nil
}

// Changes returns the identity change channel.
func (s *Source) Changes() <-chan uuid.UUID {
	return s.changes
}

// Set swaps the active identity. uuid.Nil clears it. A no-op when the
// identity is unchanged.
func (s *Source) Set(userID uuid.UUID) {
	s.mu.Lock()
	if s.current == userID {
		s.mu.Unlock()

		return
	}
	s.current = userID
	s.mu.Unlock()

	select {
	case s.changes <- userID:
	default:
		s.logger.Warn("identity change dropped, watcher not keeping up",
			slog.String("user_id", userID.String()),
		)
	}
}
