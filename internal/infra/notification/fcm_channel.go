// Package notification implements the tiered delivery channel for alarm
// notifications.
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

// fcmTier delivers through Firebase Cloud Messaging to the user's registered
// devices. It is the background-agent tier: per-device delivery outcomes are
// not surfaced as errors and no click handler can be attached.
type fcmTier struct {
	client     *messaging.Client
	deviceRepo repository.DeviceRepository
	logger     *slog.Logger
}

// NewFCMTier creates the push delivery tier from Firebase credentials.
func NewFCMTier(ctx context.Context, credentialsPath string, deviceRepo repository.DeviceRepository, logger *slog.Logger) (service.DeliveryTier, error) {
	opt := option.WithCredentialsFile(credentialsPath)
	app, err := firebase.NewApp(ctx, nil, opt)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get messaging client")
	}

	return &fcmTier{
		client:     client,
		deviceRepo: deviceRepo,
		logger:     logger,
	}, nil
}

// Name identifies the tier in receipts and logs.
func (t *fcmTier) Name() string {
	return "fcm"
}

// Deliver pushes the notification to every active device of the user. The
// tier succeeds if at least one device accepted the message; tokens reported
// as unregistered are deactivated so the next lookup skips them.
func (t *fcmTier) Deliver(ctx context.Context, userID uuid.UUID, title string, opts *service.SendOptions) (*service.Receipt, error) {
	devices, err := t.deviceRepo.FindActiveDevicesByUser(ctx, userID)
	if err != nil {
		// Registration lookup failed: report unavailable so the caller falls
		// through to the direct tier.
		return nil, service.ErrTierUnavailable
	}
	if len(devices) == 0 {
		return nil, service.ErrTierUnavailable
	}

	tokens := make([]string, 0, len(devices))
	for _, device := range devices {
		tokens = append(tokens, device.FCMToken)
	}

	message := &messaging.MulticastMessage{
		Tokens: tokens,
		Notification: &messaging.Notification{
			Title: title,
			Body:  opts.Body,
		},
		Data: opts.Data,
	}

	response, err := t.client.SendEachForMulticast(ctx, message)
	if err != nil {
		return nil, errors.Wrap(err, "failed to send multicast notification")
	}

	var invalidTokens []string
	var messageID string
	for idx, sendResponse := range response.Responses {
		if sendResponse.Error == nil {
			if messageID == "" {
				messageID = sendResponse.MessageID
			}

			continue
		}
		if messaging.IsInvalidArgument(sendResponse.Error) ||
			messaging.IsUnregistered(sendResponse.Error) {
			invalidTokens = append(invalidTokens, tokens[idx])
		}
	}

	if len(invalidTokens) > 0 {
		if err := t.deviceRepo.DeactivateByTokens(ctx, invalidTokens); err != nil {
			t.logger.Warn("failed to deactivate invalid FCM tokens",
				slog.Int("count", len(invalidTokens)),
				slog.Any("error", err),
			)
		}
	}

	if response.SuccessCount == 0 {
		return nil, errors.Errorf("all %d push deliveries failed", response.FailureCount)
	}

	return &service.Receipt{
		Tier:      t.Name(),
		MessageID: messageID,
	}, nil
}
