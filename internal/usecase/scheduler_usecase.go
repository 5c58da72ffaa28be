package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// SchedulerUsecase drives the exactly-once claim pipeline. The polling loop
// calls RunTick; everything between discovering a due alarm and publishing the
// fired event lives behind this interface.
type SchedulerUsecase interface {
	// RunTick processes every alarm of the user that is due at now,
	// sequentially. It returns the number of alarms this observer claimed and
	// fired. Alarms lost to concurrent claimers are skipped silently; alarms
	// whose claim transaction failed remain due and are retried next tick.
	RunTick(ctx context.Context, userID uuid.UUID, now time.Time) (int, error)
}
