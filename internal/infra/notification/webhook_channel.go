package notification

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"chime/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// webhookTier is the direct delivery tier: it POSTs the notification to a
// configured endpoint (a companion client or bridge that renders it
// immediately). Unlike the push tier it carries a click action.
type webhookTier struct {
	endpoint   string
	httpClient *http.Client
	logger     *slog.Logger
}

// webhookPayload is the JSON body posted to the endpoint.
type webhookPayload struct {
	UserID      string            `json:"user_id"`
	Title       string            `json:"title"`
	Body        string            `json:"body,omitempty"`
	Icon        string            `json:"icon,omitempty"`
	ClickAction string            `json:"click_action,omitempty"`
	Data        map[string]string `json:"data,omitempty"`
	SentAt      string            `json:"sent_at"`
}

const defaultWebhookTimeout = 10 * time.Second

// NewWebhookTier creates the direct delivery tier. An empty endpoint yields a
// tier that always reports unavailable; a non-positive timeout falls back to
// the default.
func NewWebhookTier(endpoint string, timeout time.Duration, logger *slog.Logger) service.DeliveryTier {
	if timeout <= 0 {
		timeout = defaultWebhookTimeout
	}

	return &webhookTier{
		endpoint: endpoint,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

// Name identifies the tier in receipts and logs.
func (t *webhookTier) Name() string {
	return "webhook"
}

// Deliver posts the notification to the configured endpoint.
func (t *webhookTier) Deliver(ctx context.Context, userID uuid.UUID, title string, opts *service.SendOptions) (*service.Receipt, error) {
	if t.endpoint == "" {
		return nil, service.ErrTierUnavailable
	}

	payload := webhookPayload{
		UserID:      userID.String(),
		Title:       title,
		Body:        opts.Body,
		Icon:        opts.Icon,
		ClickAction: opts.ClickAction,
		Data:        opts.Data,
		SentAt:      time.Now().UTC().Format(time.RFC3339),
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := t.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "failed to post notification webhook")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, errors.Errorf("notification webhook returned status %d", resp.StatusCode)
	}

	return &service.Receipt{
		Tier: t.Name(),
	}, nil
}
