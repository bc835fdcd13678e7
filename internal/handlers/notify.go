package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/aws/aws-lambda-go/events"

	"github.com/Loanify-Inc/Project-Loanify-Webhooks/internal/models"
	"github.com/Loanify-Inc/Project-Loanify-Webhooks/internal/utils"
)

// NotifyHandler posts an ad-hoc message to a rep's Slack channel.
type NotifyHandler struct {
	notifier ReportNotifier
}

// NewNotifyHandler creates a notification handler.
func NewNotifyHandler(notifier ReportNotifier) *NotifyHandler {
	return &NotifyHandler{notifier: notifier}
}

// Handle sends the message to the webhook configured for the rep id.
func (h *NotifyHandler) Handle(ctx context.Context, request events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	if resp, ok := preflight(request); ok {
		return resp, nil
	}

	var req struct {
		ID      string `json:"id"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal([]byte(request.Body), &req); err != nil || req.ID == "" || req.Message == "" {
		return errorResponse(http.StatusBadRequest, "Both ID and message are required.")
	}

	if err := h.notifier.Notify(ctx, req.ID, req.Message); err != nil {
		utils.GetLogger().Error("Notification failed",
			utils.String("repID", req.ID), utils.Error(err))
		return errorResponse(models.StatusCode(err), err.Error())
	}

	return jsonResponse(http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Slack message sent successfully.",
	})
}
