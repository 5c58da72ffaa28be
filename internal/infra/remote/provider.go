package remote

import (
	"context"
	"log/slog"

	"chime/config"
	"chime/internal/domain/entity"
	"chime/internal/domain/service"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// noopStore is a no-op implementation when the remote mirror is disabled.
// Alarms still work from the local store alone; they just do not survive a
// local wipe.
type noopStore struct {
	logger *slog.Logger
}

func (s *noopStore) SaveAlarm(ctx context.Context, alarm *entity.Alarm) error {
	s.logger.Debug("remote mirror disabled, skipping alarm save",
		slog.String("alarm_id", alarm.ID.String()),
	)

	return nil
}

func (s *noopStore) DeleteAlarm(ctx context.Context, alarmID uuid.UUID) error {
	return nil
}

func (s *noopStore) SaveNotificationRecord(ctx context.Context, record *entity.NotificationRecord) error {
	return nil
}

func (s *noopStore) Close() error {
	return nil
}

// StoreParams holds dependencies for the remote store provider.
type StoreParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewRemoteStore creates the configured remote store. Without Firebase
// configuration it falls back to the no-op store.
func NewRemoteStore(params StoreParams) (service.RemoteStore, error) {
	cfg := params.Config
	if cfg.Firebase == nil || cfg.Firebase.ProjectID == "" {
		params.Logger.Info("Remote mirror disabled, using noop store")

		return &noopStore{logger: params.Logger}, nil
	}

	store, err := NewFirestoreStore(params.Ctx, cfg.Firebase.ProjectID, cfg.Firebase.CredentialsPath)
	if err != nil {
		return nil, err
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return store.Close()
		},
	})

	params.Logger.Info("Remote mirror enabled",
		slog.String("project_id", cfg.Firebase.ProjectID),
	)

	return store, nil
}
