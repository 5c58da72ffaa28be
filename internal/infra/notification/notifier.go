package notification

import (
	"context"
	"log/slog"

	"chime/internal/domain/entity"
	"chime/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// tieredNotifier implements service.Notifier over an ordered list of delivery
// tiers behind a permission gate. Delivery is best-effort: permission not
// granted or every tier failing both yield (nil, nil), never an error that
// would stall the claim pipeline.
type tieredNotifier struct {
	gate   service.PermissionGate
	tiers  []service.DeliveryTier
	logger *slog.Logger
}

// NewTieredNotifier is the constructor for tieredNotifier. Tiers are attempted
// in the given order.
func NewTieredNotifier(gate service.PermissionGate, tiers []service.DeliveryTier, logger *slog.Logger) service.Notifier {
	return &tieredNotifier{
		gate:   gate,
		tiers:  tiers,
		logger: logger,
	}
}

// Send delivers a notification through the first tier that accepts it.
func (n *tieredNotifier) Send(ctx context.Context, userID uuid.UUID, title string, opts *service.SendOptions) (*service.Receipt, error) {
	if opts == nil {
		opts = &service.SendOptions{}
	}

	// Permission is re-checked on every send; it may have changed since the
	// component was activated.
	state, err := n.gate.Current(ctx, userID)
	if err != nil {
		n.logger.Warn("permission check failed, skipping notification",
			slog.String("user_id", userID.String()),
			slog.Any("error", err),
		)

		return nil, nil
	}
	if state != entity.PermissionGranted {
		n.logger.Debug("notification skipped, permission not granted",
			slog.String("user_id", userID.String()),
			slog.String("permission", string(state)),
		)

		return nil, nil
	}

	for _, tier := range n.tiers {
		receipt, err := n.deliverThrough(ctx, tier, userID, title, opts)
		if err == nil && receipt != nil {
			return receipt, nil
		}
		if errors.Is(err, service.ErrTierUnavailable) {
			continue
		}
		if err != nil {
			n.logger.Warn("notification delivery tier failed",
				slog.String("tier", tier.Name()),
				slog.String("user_id", userID.String()),
				slog.Any("error", err),
			)
		}
	}

	return nil, nil
}

// deliverThrough guards a single tier attempt. A panicking tier counts as a
// delivery failure, not a crash of the poll loop.
func (n *tieredNotifier) deliverThrough(ctx context.Context, tier service.DeliveryTier, userID uuid.UUID, title string, opts *service.SendOptions) (receipt *service.Receipt, err error) {
	defer func() {
		if r := recover(); r != nil {
			receipt = nil
			err = errors.Errorf("delivery tier %s panicked: %v", tier.Name(), r)
		}
	}()

	return tier.Deliver(ctx, userID, title, opts)
}
