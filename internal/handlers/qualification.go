package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/aws/aws-lambda-go/events"

	"github.com/Loanify-Inc/Project-Loanify-Webhooks/internal/models"
	"github.com/Loanify-Inc/Project-Loanify-Webhooks/internal/services/crm"
	"github.com/Loanify-Inc/Project-Loanify-Webhooks/internal/services/debt"
	"github.com/Loanify-Inc/Project-Loanify-Webhooks/internal/utils"
)

// QualificationHandler computes the debt qualification verdict for a
// contact from its enrolled debts.
type QualificationHandler struct {
	crm        *crm.Client
	normalizer *debt.Normalizer
	evaluator  *debt.Evaluator
}

// NewQualificationHandler creates a qualification handler.
func NewQualificationHandler(crmClient *crm.Client, normalizer *debt.Normalizer, evaluator *debt.Evaluator) *QualificationHandler {
	return &QualificationHandler{
		crm:        crmClient,
		normalizer: normalizer,
		evaluator:  evaluator,
	}
}

// contactRequest is the shared request body carrying a contact id.
type contactRequest struct {
	ContactID string `json:"contact_id"`
}

// QualificationResponse is the qualification verdict returned to the caller.
type QualificationResponse struct {
	Success bool `json:"success"`
	models.QualificationResult
}

// Handle processes a qualification request for a contact.
func (h *QualificationHandler) Handle(ctx context.Context, request events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	if resp, ok := preflight(request); ok {
		return resp, nil
	}

	var req contactRequest
	if err := json.Unmarshal([]byte(request.Body), &req); err != nil || req.ContactID == "" {
		return errorResponse(http.StatusBadRequest, "Contact ID is required")
	}

	debts, err := h.crm.GetEnrolledDebts(ctx, req.ContactID)
	if err != nil {
		utils.GetLogger().Error("Failed to fetch enrolled debts",
			utils.String("contactID", req.ContactID), utils.Error(err))
		return errorResponse(models.StatusCode(err), err.Error())
	}

	items, err := h.normalizer.Normalize(debts)
	if err != nil {
		return errorResponse(models.StatusCode(err), err.Error())
	}

	result := h.evaluator.Evaluate(items)

	utils.GetLogger().Info("Qualification computed",
		utils.String("contactID", req.ContactID),
		utils.Float64("totalDebt", result.TotalDebt),
		utils.String("status", string(result.Status)))

	return jsonResponse(http.StatusOK, QualificationResponse{
		Success:             true,
		QualificationResult: result,
	})
}
