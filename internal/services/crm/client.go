// Package crm provides the Forth CRM REST client.
package crm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/Loanify-Inc/Project-Loanify-Webhooks/internal/models"
	"github.com/Loanify-Inc/Project-Loanify-Webhooks/internal/utils"
)

// Client talks to the Forth CRM REST API. All calls carry the static
// API-Key header and a per-request context.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	cache      *Cache
}

// Option customizes a Client.
type Option func(*Client)

// WithCache attaches a response cache for GET endpoints.
func WithCache(cache *Cache) Option {
	return func(c *Client) { c.cache = cache }
}

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) { c.httpClient = httpClient }
}

// NewClient creates a CRM client for the given base URL and API key.
func NewClient(baseURL, apiKey string, opts ...Option) *Client {
	c := &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// envelope is the CRM's standard response wrapper.
type envelope struct {
	Response json.RawMessage `json:"response"`
}

// do issues a request and unwraps the response envelope. Non-2xx
// upstream responses map to UpstreamError with the upstream status.
func (c *Client) do(ctx context.Context, method, path string, body interface{}) (json.RawMessage, error) {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("API-Key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, models.NewUpstreamError(0, err.Error())
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, models.NewUpstreamError(0, err.Error())
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		utils.GetLogger().Warn("CRM call failed",
			zap.String("path", path),
			zap.Int("status", resp.StatusCode))
		return nil, models.NewUpstreamError(resp.StatusCode, string(data))
	}

	var env envelope
	if err := json.Unmarshal(data, &env); err != nil || env.Response == nil {
		// Some endpoints answer without the envelope.
		return data, nil
	}
	return env.Response, nil
}

// getCached issues a GET, consulting the cache first when one is attached.
func (c *Client) getCached(ctx context.Context, path string) (json.RawMessage, error) {
	if c.cache != nil {
		if data, ok := c.cache.Get(ctx, path); ok {
			return data, nil
		}
	}
	data, err := c.do(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}
	if c.cache != nil {
		c.cache.Set(ctx, path, data)
	}
	return data, nil
}

// GetContact fetches a contact by id.
func (c *Client) GetContact(ctx context.Context, contactID string) (*models.ContactInfo, error) {
	data, err := c.do(ctx, http.MethodGet, "/contacts/"+contactID, nil)
	if err != nil {
		return nil, err
	}
	var contact models.ContactInfo
	if err := json.Unmarshal(data, &contact); err != nil {
		return nil, models.NewUpstreamError(0, "failed to parse contact response: "+err.Error())
	}
	return &contact, nil
}

// GetEnrolledDebts fetches the enrolled debt list for a contact.
func (c *Client) GetEnrolledDebts(ctx context.Context, contactID string) ([]models.DebtRecord, error) {
	data, err := c.getCached(ctx, "/contacts/"+contactID+"/debts/enrolled")
	if err != nil {
		return nil, err
	}
	var debts []models.DebtRecord
	if err := json.Unmarshal(data, &debts); err != nil {
		return nil, models.NewUpstreamError(0, "failed to parse debts response: "+err.Error())
	}
	return debts, nil
}

// creditReportEnvelope matches the nested credit report shape.
type creditReportEnvelope struct {
	Report struct {
		ScoreModels struct {
			Equifax struct {
				Score   int      `json:"score"`
				Factors []string `json:"factors"`
			} `json:"Equifax"`
		} `json:"scoreModels"`
		RevolvingCreditUtilization string `json:"revolvingCreditUtilization"`
	} `json:"report"`
}

// GetCreditReport fetches and flattens a contact's credit report.
func (c *Client) GetCreditReport(ctx context.Context, contactID string) (*models.CreditReport, error) {
	data, err := c.getCached(ctx, "/contacts/"+contactID+"/get_credit_report")
	if err != nil {
		return nil, err
	}
	var env creditReportEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, models.NewUpstreamError(0, "failed to parse credit report response: "+err.Error())
	}
	return &models.CreditReport{
		Score:                      env.Report.ScoreModels.Equifax.Score,
		Factors:                    env.Report.ScoreModels.Equifax.Factors,
		RevolvingCreditUtilization: env.Report.RevolvingCreditUtilization,
	}, nil
}

// PullCredit triggers a fresh credit pull through the Xactus360
// integration and returns the raw provider response.
func (c *Client) PullCredit(ctx context.Context, contactID string) (json.RawMessage, error) {
	return c.do(ctx, http.MethodPost, "/contacts/"+contactID+"/pull_credit/Xactus360", nil)
}

// CreateContact creates a contact and returns the CRM's view of it.
func (c *Client) CreateContact(ctx context.Context, contact *models.ContactCreate) (*models.ContactInfo, error) {
	data, err := c.do(ctx, http.MethodPost, "/contacts", contact)
	if err != nil {
		return nil, err
	}
	var created models.ContactInfo
	if err := json.Unmarshal(data, &created); err != nil {
		return nil, models.NewUpstreamError(0, "failed to parse create response: "+err.Error())
	}
	return &created, nil
}

// Reassign changes the rep a contact is assigned to.
func (c *Client) Reassign(ctx context.Context, contactID, assignedTo string) error {
	body := map[string]string{"assigned_to": assignedTo}
	_, err := c.do(ctx, http.MethodPut, "/contacts/"+contactID, body)
	return err
}

// searchResult is one row of a contact search response.
type searchResult struct {
	ID int64 `json:"id"`
}

// SearchByPhone returns the id of the first contact matching a phone
// number, or NotFoundError when the search comes back empty.
func (c *Client) SearchByPhone(ctx context.Context, phone string) (int64, error) {
	data, err := c.do(ctx, http.MethodGet, "/contacts/search_by_phone/"+phone, nil)
	if err != nil {
		return 0, err
	}
	var results []searchResult
	if err := json.Unmarshal(data, &results); err != nil {
		return 0, models.NewUpstreamError(0, "failed to parse search response: "+err.Error())
	}
	if len(results) == 0 {
		return 0, models.NewNotFoundError("no contacts found")
	}
	return results[0].ID, nil
}
