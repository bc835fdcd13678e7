package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aws/aws-lambda-go/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Loanify-Inc/Project-Loanify-Webhooks/internal/models"
	"github.com/Loanify-Inc/Project-Loanify-Webhooks/internal/services/crm"
	"github.com/Loanify-Inc/Project-Loanify-Webhooks/internal/services/debt"
)

func newCRMClient(t *testing.T, mux *http.ServeMux) *crm.Client {
	t.Helper()
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return crm.NewClient(srv.URL, "test-key")
}

func postRequest(body string) events.APIGatewayProxyRequest {
	return events.APIGatewayProxyRequest{
		HTTPMethod: http.MethodPost,
		Body:       body,
	}
}

func newQualificationHandler(t *testing.T, mux *http.ServeMux) *QualificationHandler {
	t.Helper()
	return NewQualificationHandler(
		newCRMClient(t, mux),
		debt.NewNormalizer(debt.NormalizerConfig{MinAmount: 500}),
		debt.NewEvaluator(debt.DefaultEvaluatorConfig()),
	)
}

func TestQualificationHandler_MissingContactID(t *testing.T) {
	h := newQualificationHandler(t, http.NewServeMux())

	for _, body := range []string{"", "{}", `{"contact_id": ""}`, "not json"} {
		resp, err := h.Handle(context.Background(), postRequest(body))
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, "body=%q", body)
		assert.JSONEq(t, `{"error": "Contact ID is required"}`, resp.Body)
	}
}

func TestQualificationHandler_Preflight(t *testing.T) {
	h := newQualificationHandler(t, http.NewServeMux())

	resp, err := h.Handle(context.Background(), events.APIGatewayProxyRequest{HTTPMethod: http.MethodOptions})
	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	assert.Equal(t, "*", resp.Headers["Access-Control-Allow-Origin"])
}

func TestQualificationHandler_NotQualified(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/contacts/12345/debts/enrolled", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"response": [
			{"og_account_num": "1", "creditor": {"company_name": "Visa"}, "current_debt_amount": "600", "notes": "CreditCard"},
			{"og_account_num": "2", "creditor": {"company_name": "Lender"}, "current_debt_amount": "400", "notes": "Unsecured"},
			{"og_account_num": "3", "creditor": {"company_name": "Hospital"}, "current_debt_amount": "5000", "notes": "MedicalDebt"}
		]}`))
	})
	h := newQualificationHandler(t, mux)

	resp, err := h.Handle(context.Background(), postRequest(`{"contact_id": "12345"}`))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var got QualificationResponse
	require.NoError(t, json.Unmarshal([]byte(resp.Body), &got))
	assert.True(t, got.Success)
	// The 400 record is under the minimum and excluded from the total.
	assert.Equal(t, 5600.0, got.TotalDebt)
	assert.Equal(t, models.StatusNotQualified, got.Status)
	assert.False(t, got.DebtThresholdMet)
	assert.False(t, got.UnsecuredDebtThresholdMet)
	assert.Len(t, got.Debts, 2)
}

func TestQualificationHandler_Qualified(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/contacts/777/debts/enrolled", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"response": [
			{"og_account_num": "1", "creditor": {"company_name": "Visa"}, "current_debt_amount": "25000", "notes": "CreditCard"},
			{"og_account_num": "2", "creditor": {"company_name": "Lender"}, "current_debt_amount": "12000", "notes": "Unsecured"}
		]}`))
	})
	h := newQualificationHandler(t, mux)

	resp, err := h.Handle(context.Background(), postRequest(`{"contact_id": "777"}`))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var got QualificationResponse
	require.NoError(t, json.Unmarshal([]byte(resp.Body), &got))
	assert.Equal(t, models.StatusQualified, got.Status)
	assert.Equal(t, 37000.0, got.TotalDebt)
	assert.True(t, got.DebtThresholdMet)
	assert.True(t, got.UnsecuredDebtThresholdMet)
}

func TestQualificationHandler_UpstreamFailure(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error": "bad api key"}`))
	})
	h := newQualificationHandler(t, mux)

	resp, err := h.Handle(context.Background(), postRequest(`{"contact_id": "12345"}`))
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
