package notification

import (
	"context"
	"log/slog"
	"time"

	"chime/config"
	"chime/internal/domain/repository"
	"chime/internal/domain/service"

	"go.uber.org/fx"
)

// TierParams holds dependencies for assembling the delivery tiers.
type TierParams struct {
	fx.In

	Ctx        context.Context
	Config     *config.Config
	Logger     *slog.Logger
	DeviceRepo repository.DeviceRepository
}

// NewDeliveryTiers assembles the ordered delivery tiers: FCM push first,
// webhook direct delivery as the fallback. Unconfigured tiers are simply
// omitted.
func NewDeliveryTiers(params TierParams) ([]service.DeliveryTier, error) {
	var tiers []service.DeliveryTier

	if params.Config.Firebase != nil && params.Config.Firebase.CredentialsPath != "" {
		fcm, err := NewFCMTier(params.Ctx, params.Config.Firebase.CredentialsPath, params.DeviceRepo, params.Logger)
		if err != nil {
			return nil, err
		}
		tiers = append(tiers, fcm)
	} else {
		params.Logger.Info("FCM delivery tier disabled, no Firebase credentials")
	}

	webhookEndpoint := ""
	var webhookTimeout time.Duration
	if params.Config.Webhook != nil {
		webhookEndpoint = params.Config.Webhook.Endpoint
		webhookTimeout = params.Config.Webhook.Timeout
	}
	tiers = append(tiers, NewWebhookTier(webhookEndpoint, webhookTimeout, params.Logger))

	return tiers, nil
}
