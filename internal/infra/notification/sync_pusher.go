package notification

import (
	"context"
	"log/slog"

	"chime/internal/domain/repository"
	"chime/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"google.golang.org/api/option"
)

// fcmSyncPusher sends data-only FCM messages so the user's other devices
// refresh their alarm and notification state without showing anything.
type fcmSyncPusher struct {
	client     *messaging.Client
	deviceRepo repository.DeviceRepository
	logger     *slog.Logger
}

// noopSyncPusher is used when Firebase is not configured.
type noopSyncPusher struct{}

func (p *noopSyncPusher) PushSync(ctx context.Context, userID uuid.UUID, data map[string]string) error {
	return nil
}

// NewSyncPusher creates the data-only push sender. Without Firebase
// credentials it degrades to a no-op.
func NewSyncPusher(params TierParams) (service.SyncPusher, error) {
	if params.Config.Firebase == nil || params.Config.Firebase.CredentialsPath == "" {
		params.Logger.Info("Sync push disabled, no Firebase credentials")

		return &noopSyncPusher{}, nil
	}

	opt := option.WithCredentialsFile(params.Config.Firebase.CredentialsPath)
	app, err := firebase.NewApp(params.Ctx, nil, opt)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	client, err := app.Messaging(params.Ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get messaging client")
	}

	return &fcmSyncPusher{
		client:     client,
		deviceRepo: params.DeviceRepo,
		logger:     params.Logger,
	}, nil
}

// PushSync multicasts a data-only message to the user's active devices.
// Having no registered devices is not an error.
func (p *fcmSyncPusher) PushSync(ctx context.Context, userID uuid.UUID, data map[string]string) error {
	devices, err := p.deviceRepo.FindActiveDevicesByUser(ctx, userID)
	if err != nil {
		return errors.Wrap(err, "failed to find devices for sync push")
	}
	if len(devices) == 0 {
		return nil
	}

	tokens := make([]string, 0, len(devices))
	for _, device := range devices {
		tokens = append(tokens, device.FCMToken)
	}

	response, err := p.client.SendEachForMulticast(ctx, &messaging.MulticastMessage{
		Tokens: tokens,
		Data:   data,
	})
	if err != nil {
		return errors.Wrap(err, "failed to send sync push")
	}

	var invalidTokens []string
	for idx, sendResponse := range response.Responses {
		if sendResponse.Error == nil {
			continue
		}
		if messaging.IsInvalidArgument(sendResponse.Error) ||
			messaging.IsUnregistered(sendResponse.Error) {
			invalidTokens = append(invalidTokens, tokens[idx])
		}
	}

	if len(invalidTokens) > 0 {
		if err := p.deviceRepo.DeactivateByTokens(ctx, invalidTokens); err != nil {
			p.logger.Warn("failed to deactivate invalid FCM tokens",
				slog.Int("count", len(invalidTokens)),
				slog.Any("error", err),
			)
		}
	}

	return nil
}
