package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/aws/aws-lambda-go/events"

	"github.com/Loanify-Inc/Project-Loanify-Webhooks/internal/models"
	"github.com/Loanify-Inc/Project-Loanify-Webhooks/internal/services/report"
	"github.com/Loanify-Inc/Project-Loanify-Webhooks/internal/services/ses"
	"github.com/Loanify-Inc/Project-Loanify-Webhooks/internal/services/slack"
	"github.com/Loanify-Inc/Project-Loanify-Webhooks/internal/services/storage"
	"github.com/Loanify-Inc/Project-Loanify-Webhooks/internal/utils"
)

// ReportStorage is the subset of the storage service the report
// handlers need.
type ReportStorage interface {
	UploadReport(ctx context.Context, html []byte) (*storage.UploadResult, error)
	PresignDownload(ctx context.Context, key string, expiry time.Duration) (string, error)
}

// ReportNotifier posts a report link to the channel of the assigned rep.
type ReportNotifier interface {
	Notify(ctx context.Context, repID, message string) error
}

// ReportEmailer emails a report link to a recipient.
type ReportEmailer interface {
	SendReportLink(ctx context.Context, to, name, url string) error
}

var _ ReportNotifier = (*slack.Notifier)(nil)
var _ ReportEmailer = (*ses.Emailer)(nil)

// FinancialReportHandler builds, renders, stores, and announces the
// financial analysis report for a contact.
type FinancialReportHandler struct {
	builder  *report.Builder
	storage  ReportStorage
	notifier ReportNotifier
	emailer  ReportEmailer
}

// NewFinancialReportHandler creates a financial report handler. The
// emailer may be nil when SES is not configured.
func NewFinancialReportHandler(builder *report.Builder, store ReportStorage, notifier ReportNotifier, emailer ReportEmailer) *FinancialReportHandler {
	return &FinancialReportHandler{
		builder:  builder,
		storage:  store,
		notifier: notifier,
		emailer:  emailer,
	}
}

// ReportResponse announces a stored report.
type ReportResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	URL     string `json:"url"`
}

// Handle builds and publishes the financial report for a contact.
func (h *FinancialReportHandler) Handle(ctx context.Context, request events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	if resp, ok := preflight(request); ok {
		return resp, nil
	}

	var req contactRequest
	if err := json.Unmarshal([]byte(request.Body), &req); err != nil || req.ContactID == "" {
		return errorResponse(http.StatusBadRequest, "Contact ID is required")
	}

	built, err := h.builder.Build(ctx, req.ContactID)
	if err != nil {
		utils.GetLogger().Error("Failed to build report",
			utils.String("contactID", req.ContactID), utils.Error(err))
		return errorResponse(models.StatusCode(err), err.Error())
	}

	html, err := report.Render(built.Payload)
	if err != nil {
		return errorResponse(http.StatusInternalServerError, err.Error())
	}

	uploaded, err := h.storage.UploadReport(ctx, html)
	if err != nil {
		return errorResponse(models.StatusCode(err), err.Error())
	}

	// Notification failures are logged but do not fail the request; the
	// report is already stored.
	message := fmt.Sprintf("Here is the updated report you requested for %s: %s",
		built.Contact.FullName(), uploaded.URL)
	if err := h.notifier.Notify(ctx, built.Contact.AssignedTo, message); err != nil {
		utils.GetLogger().Warn("Failed to send Slack notification",
			utils.String("contactID", req.ContactID), utils.Error(err))
	}

	if h.emailer != nil && built.Contact.Email != "" {
		if err := h.emailer.SendReportLink(ctx, built.Contact.Email, built.Contact.FirstName, uploaded.URL); err != nil {
			utils.GetLogger().Warn("Failed to email report link",
				utils.String("contactID", req.ContactID), utils.Error(err))
		}
	}

	return jsonResponse(http.StatusOK, ReportResponse{
		Success: true,
		Message: "File uploaded to S3 successfully",
		URL:     uploaded.URL,
	})
}

// ReportPreviewHandler computes the report payload without rendering or
// storing anything.
type ReportPreviewHandler struct {
	builder *report.Builder
}

// NewReportPreviewHandler creates a report preview handler.
func NewReportPreviewHandler(builder *report.Builder) *ReportPreviewHandler {
	return &ReportPreviewHandler{builder: builder}
}

// Handle returns the assembled report payload for a contact.
func (h *ReportPreviewHandler) Handle(ctx context.Context, request events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	if resp, ok := preflight(request); ok {
		return resp, nil
	}

	var req contactRequest
	if err := json.Unmarshal([]byte(request.Body), &req); err != nil || req.ContactID == "" {
		return errorResponse(http.StatusBadRequest, "Contact ID is required")
	}

	built, err := h.builder.Build(ctx, req.ContactID)
	if err != nil {
		return errorResponse(models.StatusCode(err), err.Error())
	}

	return jsonResponse(http.StatusOK, map[string]models.ReportPayload{"payload": built.Payload})
}

// ReceiveReportHandler renders and stores a report from a payload
// supplied in the request body, bypassing the CRM fetches.
type ReceiveReportHandler struct {
	storage ReportStorage
}

// NewReceiveReportHandler creates a receive-report handler.
func NewReceiveReportHandler(store ReportStorage) *ReceiveReportHandler {
	return &ReceiveReportHandler{storage: store}
}

// Handle renders a caller-supplied payload and uploads the result.
func (h *ReceiveReportHandler) Handle(ctx context.Context, request events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	if resp, ok := preflight(request); ok {
		return resp, nil
	}

	var payload models.ReportPayload
	if err := json.Unmarshal([]byte(request.Body), &payload); err != nil {
		return errorResponse(http.StatusBadRequest, "Invalid JSON in request body")
	}

	html, err := report.Render(payload)
	if err != nil {
		return errorResponse(http.StatusInternalServerError, err.Error())
	}

	uploaded, err := h.storage.UploadReport(ctx, html)
	if err != nil {
		return errorResponse(models.StatusCode(err), err.Error())
	}

	return jsonResponse(http.StatusOK, ReportResponse{
		Success: true,
		Message: "File uploaded to S3 successfully",
		URL:     uploaded.URL,
	})
}

// ReportURLHandler issues presigned download URLs for stored reports.
type ReportURLHandler struct {
	storage ReportStorage
}

// NewReportURLHandler creates a report URL handler.
func NewReportURLHandler(store ReportStorage) *ReportURLHandler {
	return &ReportURLHandler{storage: store}
}

// ReportURLResponse carries a presigned download URL.
type ReportURLResponse struct {
	URL       string `json:"url"`
	ExpiresIn int    `json:"expiresIn"`
}

// Handle returns a presigned download URL for a report key.
func (h *ReportURLHandler) Handle(ctx context.Context, request events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	if resp, ok := preflight(request); ok {
		return resp, nil
	}

	key := request.QueryStringParameters["key"]
	if key == "" {
		return errorResponse(http.StatusBadRequest, "Report key is required")
	}

	expiryMinutes := 15
	if v := request.QueryStringParameters["expiry_minutes"]; v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			expiryMinutes = parsed
		}
	}

	url, err := h.storage.PresignDownload(ctx, key, time.Duration(expiryMinutes)*time.Minute)
	if err != nil {
		return errorResponse(models.StatusCode(err), err.Error())
	}

	return jsonResponse(http.StatusOK, ReportURLResponse{
		URL:       url,
		ExpiresIn: expiryMinutes * 60,
	})
}
