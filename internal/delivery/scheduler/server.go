// Package scheduler runs the polling loop that scans for due alarms and
// fires the ones this process claims.
package scheduler

import (
	"context"
	"log/slog"
	"time"

	"chime/config"
	"chime/internal/delivery"
	"chime/internal/domain/service"
	"chime/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

const defaultPollInterval = 15 * time.Second

type schedulerServer struct {
	cfg      *config.Config
	logger   *slog.Logger
	uc       usecase.SchedulerUsecase
	identity service.IdentitySource

	interval time.Duration
	cancel   context.CancelFunc
}

// ServerParams holds dependencies for the scheduler server.
type ServerParams struct {
	fx.In

	Lc       fx.Lifecycle
	Cfg      *config.Config
	Logger   *slog.Logger
	Usecase  usecase.SchedulerUsecase
	Identity service.IdentitySource
}

// NewServer creates the polling scheduler delivery.
func NewServer(params ServerParams) (delivery.Delivery, error) {
	interval := defaultPollInterval
	if params.Cfg.Scheduler != nil && params.Cfg.Scheduler.PollInterval > 0 {
		interval = params.Cfg.Scheduler.PollInterval
	}

	srv := &schedulerServer{
		cfg:      params.Cfg,
		logger:   params.Logger,
		uc:       params.Usecase,
		identity: params.Identity,
		interval: interval,
	}

	params.Lc.Append(fx.Hook{
		OnStop: srv.stop,
	})

	return srv, nil
}

// Serve runs the polling loop until the context is cancelled. An identity
// change re-arms the loop for the new user, starting with an immediate tick;
// a cleared identity disarms it until a new one arrives.
func (s *schedulerServer) Serve(ctx context.Context) error {
	ctx, s.cancel = context.WithCancel(ctx)

	userID, armed := s.identity.Current()
	if armed {
		s.logger.Info("Starting alarm scheduler",
			slog.String("user_id", userID.String()),
			slog.Duration("interval", s.interval),
		)
		// First tick fires immediately: a long-due alarm must not wait a
		// full interval after activation.
		s.tick(ctx, userID)
	} else {
		s.logger.Info("Alarm scheduler idle, waiting for identity")
	}

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()
	if !armed {
		ticker.Stop()
	}

	for {
		select {
		case <-ctx.Done():
			return nil

		case <-ticker.C:
			if !armed {
				// A wakeup queued before Stop took effect.
				continue
			}
			s.tick(ctx, userID)

		case next := <-s.identity.Changes():
			if next == uuid.Nil {
				s.logger.Info("Alarm scheduler disarmed, identity cleared")
				userID, armed = uuid.Nil, false
				ticker.Stop()

				continue
			}

			userID, armed = next, true
			ticker.Reset(s.interval)
			s.logger.Info("Alarm scheduler re-armed",
				slog.String("user_id", userID.String()),
			)
			s.tick(ctx, userID)
		}
	}
}

func (s *schedulerServer) tick(ctx context.Context, userID uuid.UUID) {
	fired, err := s.uc.RunTick(ctx, userID, time.Now())
	if err != nil {
		s.logger.Error("scheduler tick failed",
			slog.String("user_id", userID.String()),
			slog.Any("error", err),
		)

		return
	}

	if fired > 0 {
		s.logger.Info("scheduler tick fired alarms",
			slog.String("user_id", userID.String()),
			slog.Int("fired", fired),
		)
	}
}

func (s *schedulerServer) stop(ctx context.Context) error {
	s.logger.Info("Shutting down alarm scheduler")
	if s.cancel != nil {
		s.cancel()
	}

	return nil
}
