package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/aws/aws-lambda-go/events"

	"github.com/Loanify-Inc/Project-Loanify-Webhooks/internal/models"
	"github.com/Loanify-Inc/Project-Loanify-Webhooks/internal/services/crm"
	"github.com/Loanify-Inc/Project-Loanify-Webhooks/internal/utils"
)

// RunCreditHandler triggers a fresh credit pull for a contact and
// passes the provider response through unchanged.
type RunCreditHandler struct {
	crm *crm.Client
}

// NewRunCreditHandler creates a credit pull handler.
func NewRunCreditHandler(crmClient *crm.Client) *RunCreditHandler {
	return &RunCreditHandler{crm: crmClient}
}

// Handle triggers the credit pull.
func (h *RunCreditHandler) Handle(ctx context.Context, request events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	if resp, ok := preflight(request); ok {
		return resp, nil
	}

	var req contactRequest
	if err := json.Unmarshal([]byte(request.Body), &req); err != nil || req.ContactID == "" {
		return errorResponse(http.StatusBadRequest, "Contact ID is required")
	}

	result, err := h.crm.PullCredit(ctx, req.ContactID)
	if err != nil {
		utils.GetLogger().Error("Credit pull failed",
			utils.String("contactID", req.ContactID), utils.Error(err))
		return errorResponse(models.StatusCode(err), err.Error())
	}

	return events.APIGatewayProxyResponse{
		StatusCode: http.StatusOK,
		Headers:    corsHeaders(),
		Body:       string(result),
	}, nil
}
