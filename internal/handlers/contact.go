package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/aws/aws-lambda-go/events"

	"github.com/Loanify-Inc/Project-Loanify-Webhooks/internal/models"
	"github.com/Loanify-Inc/Project-Loanify-Webhooks/internal/services/crm"
	"github.com/Loanify-Inc/Project-Loanify-Webhooks/internal/utils"
)

// CreateContactHandler validates and creates CRM contacts. The state
// eligibility gate runs before any CRM write.
type CreateContactHandler struct {
	crm *crm.Client
}

// NewCreateContactHandler creates a contact creation handler.
func NewCreateContactHandler(crmClient *crm.Client) *CreateContactHandler {
	return &CreateContactHandler{crm: crmClient}
}

// CreateContactResponse reports the outcome of a creation attempt.
// Rejections (unqualified state, missing fields) come back with a 200
// and a structured reason rather than an error, so form frontends can
// surface them directly.
type CreateContactResponse struct {
	IsStateQualified   models.QualificationStatus `json:"isStateQualified"`
	MissingInformation string                     `json:"missingInformation,omitempty"`
	Message            string                     `json:"message"`
	Contact            *models.ContactInfo        `json:"contact,omitempty"`
}

// Handle validates the request and creates the contact in the CRM.
func (h *CreateContactHandler) Handle(ctx context.Context, request events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	if resp, ok := preflight(request); ok {
		return resp, nil
	}

	var req models.ContactCreate
	if err := json.Unmarshal([]byte(request.Body), &req); err != nil {
		return errorResponse(http.StatusBadRequest, "Invalid JSON in request body")
	}

	missing := models.MissingContactFields(&req)

	stateAbbr := models.StateAbbreviation(req.Address.State)
	stateStatus := models.StatusNotQualified
	if models.IsQualifiedState(stateAbbr) {
		stateStatus = models.StatusQualified
	}

	if stateStatus == models.StatusNotQualified || len(missing) > 0 {
		message := "Missing required information."
		if stateStatus == models.StatusNotQualified {
			message = fmt.Sprintf("State %s is not qualified for processing.", stateAbbr)
		}
		utils.GetLogger().Info("Contact creation rejected",
			utils.String("state", stateAbbr),
			utils.String("missing", strings.Join(missing, ", ")))
		return jsonResponse(http.StatusOK, CreateContactResponse{
			IsStateQualified:   stateStatus,
			MissingInformation: strings.Join(missing, ", "),
			Message:            message,
		})
	}

	req.Address.State = stateAbbr
	req.DateOfBirth = models.FormatDateOfBirth(req.DateOfBirth)

	created, err := h.crm.CreateContact(ctx, &req)
	if err != nil {
		utils.GetLogger().Error("CRM contact creation failed", utils.Error(err))
		return errorResponse(models.StatusCode(err), err.Error())
	}

	return jsonResponse(http.StatusOK, CreateContactResponse{
		IsStateQualified: models.StatusQualified,
		Message:          "Contact created successfully",
		Contact:          created,
	})
}

// GetContactHandler fetches a contact and returns a reshaped view.
type GetContactHandler struct {
	crm *crm.Client
}

// NewGetContactHandler creates a contact fetch handler.
func NewGetContactHandler(crmClient *crm.Client) *GetContactHandler {
	return &GetContactHandler{crm: crmClient}
}

// ContactResponse is the reshaped contact view returned to callers.
type ContactResponse struct {
	ID          int64  `json:"id"`
	FullName    string `json:"fullName"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
}

// Handle fetches and reshapes a contact.
func (h *GetContactHandler) Handle(ctx context.Context, request events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	if resp, ok := preflight(request); ok {
		return resp, nil
	}

	var req contactRequest
	if err := json.Unmarshal([]byte(request.Body), &req); err != nil || req.ContactID == "" {
		return errorResponse(http.StatusBadRequest, "Contact ID is required")
	}

	contact, err := h.crm.GetContact(ctx, req.ContactID)
	if err != nil {
		return errorResponse(models.StatusCode(err), err.Error())
	}

	return jsonResponse(http.StatusOK, ContactResponse{
		ID:          contact.ID,
		FullName:    contact.FullName(),
		FirstName:   contact.FirstName,
		LastName:    contact.LastName,
		Email:       contact.Email,
		PhoneNumber: contact.PhoneNumber,
	})
}

// SearchContactHandler finds a contact id by phone number.
type SearchContactHandler struct {
	crm *crm.Client
}

// NewSearchContactHandler creates a contact search handler.
func NewSearchContactHandler(crmClient *crm.Client) *SearchContactHandler {
	return &SearchContactHandler{crm: crmClient}
}

// Handle searches the CRM by phone number and returns the first match.
func (h *SearchContactHandler) Handle(ctx context.Context, request events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	if resp, ok := preflight(request); ok {
		return resp, nil
	}

	var req struct {
		Phone string `json:"phone"`
	}
	if err := json.Unmarshal([]byte(request.Body), &req); err != nil || req.Phone == "" {
		return errorResponse(http.StatusBadRequest, "Phone number is required")
	}

	id, err := h.crm.SearchByPhone(ctx, req.Phone)
	if err != nil {
		return errorResponse(models.StatusCode(err), err.Error())
	}

	return jsonResponse(http.StatusOK, map[string]string{"id": strconv.FormatInt(id, 10)})
}

// ReassignContactHandler moves a contact to a different rep.
type ReassignContactHandler struct {
	crm *crm.Client
}

// NewReassignContactHandler creates a reassignment handler.
func NewReassignContactHandler(crmClient *crm.Client) *ReassignContactHandler {
	return &ReassignContactHandler{crm: crmClient}
}

// Handle reassigns a contact to the given rep.
func (h *ReassignContactHandler) Handle(ctx context.Context, request events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	if resp, ok := preflight(request); ok {
		return resp, nil
	}

	var req struct {
		ContactID  string `json:"contact_id"`
		AssignedTo string `json:"assigned_to"`
	}
	if err := json.Unmarshal([]byte(request.Body), &req); err != nil || req.ContactID == "" || req.AssignedTo == "" {
		return errorResponse(http.StatusBadRequest, "Contact ID and Assigned To are required")
	}

	if err := h.crm.Reassign(ctx, req.ContactID, req.AssignedTo); err != nil {
		return errorResponse(models.StatusCode(err), err.Error())
	}

	return jsonResponse(http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Contact reassigned successfully",
	})
}
