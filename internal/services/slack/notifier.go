// Package slack posts notifications to per-rep Slack webhooks.
package slack

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/Loanify-Inc/Project-Loanify-Webhooks/internal/models"
	"github.com/Loanify-Inc/Project-Loanify-Webhooks/internal/utils"
)

// Notifier sends messages to the Slack webhook configured for a rep.
// Each rep's CRM id maps to a webhook URL and an optional mention tag
// prepended to every message.
type Notifier struct {
	webhooks   map[string]string
	mentions   map[string]string
	httpClient *http.Client
}

// NewNotifier creates a notifier from the rep webhook and mention tables.
func NewNotifier(webhooks, mentions map[string]string) *Notifier {
	return &Notifier{
		webhooks: webhooks,
		mentions: mentions,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// WithHTTPClient overrides the HTTP client, used in tests.
func (n *Notifier) WithHTTPClient(httpClient *http.Client) *Notifier {
	n.httpClient = httpClient
	return n
}

// Notify posts a message to the webhook of the given rep. Unknown reps
// yield a NotFoundError.
func (n *Notifier) Notify(ctx context.Context, repID, message string) error {
	webhookURL, ok := n.webhooks[repID]
	if !ok {
		return models.NewNotFoundError("Slack configuration not found for provided ID")
	}

	text := message
	if mention := n.mentions[repID]; mention != "" {
		text = mention + " " + message
	}

	body, err := json.Marshal(map[string]string{"text": text})
	if err != nil {
		return fmt.Errorf("failed to marshal Slack message: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, webhookURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.httpClient.Do(req)
	if err != nil {
		return models.NewUpstreamError(0, err.Error())
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return models.NewUpstreamError(resp.StatusCode, "Slack webhook rejected the message")
	}

	utils.GetLogger().Info("Slack message sent", zap.String("repID", repID))
	return nil
}
