package crm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Loanify-Inc/Project-Loanify-Webhooks/internal/models"
)

func newTestServer(t *testing.T, handler http.HandlerFunc) (*httptest.Server, *Client) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return srv, NewClient(srv.URL, "test-key")
}

func TestGetContact_UnwrapsEnvelope(t *testing.T) {
	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/contacts/12345", r.URL.Path)
		assert.Equal(t, "test-key", r.Header.Get("API-Key"))
		w.Write([]byte(`{"response": {"id": 12345, "first_name": "Jane", "last_name": "Doe", "assigned_to": "rep-7"}}`))
	})

	contact, err := client.GetContact(context.Background(), "12345")
	require.NoError(t, err)
	assert.Equal(t, int64(12345), contact.ID)
	assert.Equal(t, "Jane Doe", contact.FullName())
	assert.Equal(t, "rep-7", contact.AssignedTo)
}

func TestGetContact_AcceptsBareBody(t *testing.T) {
	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"id": 7, "first_name": "Sam"}`))
	})

	contact, err := client.GetContact(context.Background(), "7")
	require.NoError(t, err)
	assert.Equal(t, int64(7), contact.ID)
}

func TestDo_UpstreamStatusPassthrough(t *testing.T) {
	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"error": "bad api key"}`))
	})

	_, err := client.GetContact(context.Background(), "12345")
	require.Error(t, err)

	var ue *models.UpstreamError
	require.ErrorAs(t, err, &ue)
	assert.Equal(t, http.StatusForbidden, ue.StatusCode)
	assert.Contains(t, ue.Message, "bad api key")
	assert.Equal(t, http.StatusForbidden, models.StatusCode(err))
}

func TestGetEnrolledDebts(t *testing.T) {
	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/contacts/12345/debts/enrolled", r.URL.Path)
		w.Write([]byte(`{"response": [
			{"og_account_num": "1001", "creditor": {"company_name": "Visa"}, "current_debt_amount": "600", "current_payment": "25", "notes": "CreditCard"},
			{"og_account_num": "1002", "creditor": {"company_name": "Hospital"}, "current_debt_amount": "5000", "notes": "MedicalDebt"}
		]}`))
	})

	debts, err := client.GetEnrolledDebts(context.Background(), "12345")
	require.NoError(t, err)
	require.Len(t, debts, 2)
	assert.Equal(t, "Visa", debts[0].Creditor.CompanyName)
	assert.Equal(t, "600", debts[0].CurrentDebtAmount)
	assert.Equal(t, "MedicalDebt", debts[1].Notes)
}

func TestGetCreditReport_FlattensEquifaxBlock(t *testing.T) {
	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/contacts/12345/get_credit_report", r.URL.Path)
		w.Write([]byte(`{"response": {"report": {
			"scoreModels": {"Equifax": {"score": 612, "factors": ["38 - Serious delinquency", "18 - Number of accounts with delinquency"]}},
			"revolvingCreditUtilization": "95%"
		}}}`))
	})

	report, err := client.GetCreditReport(context.Background(), "12345")
	require.NoError(t, err)
	assert.Equal(t, 612, report.Score)
	assert.Len(t, report.Factors, 2)
	assert.Equal(t, "95%", report.RevolvingCreditUtilization)
}

func TestPullCredit_ReturnsRawProviderResponse(t *testing.T) {
	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/contacts/12345/pull_credit/Xactus360", r.URL.Path)
		w.Write([]byte(`{"response": {"status": "pulled"}}`))
	})

	raw, err := client.PullCredit(context.Background(), "12345")
	require.NoError(t, err)
	assert.JSONEq(t, `{"status": "pulled"}`, string(raw))
}

func TestCreateContact_SendsBody(t *testing.T) {
	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/contacts", r.URL.Path)

		var got models.ContactCreate
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		assert.Equal(t, "Jane", got.FirstName)
		assert.Equal(t, "TX", got.Address.State)

		w.Write([]byte(`{"response": {"id": 999, "first_name": "Jane", "last_name": "Doe"}}`))
	})

	created, err := client.CreateContact(context.Background(), &models.ContactCreate{
		FirstName:   "Jane",
		LastName:    "Doe",
		DateOfBirth: "1980-03-03",
		Address:     models.Address{State: "TX"},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(999), created.ID)
}

func TestReassign(t *testing.T) {
	var gotBody map[string]string
	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/contacts/12345", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.Write([]byte(`{"response": {}}`))
	})

	err := client.Reassign(context.Background(), "12345", "rep-3")
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"assigned_to": "rep-3"}, gotBody)
}

func TestSearchByPhone(t *testing.T) {
	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/contacts/search_by_phone/5551234567", r.URL.Path)
		w.Write([]byte(`{"response": [{"id": 42}, {"id": 43}]}`))
	})

	id, err := client.SearchByPhone(context.Background(), "5551234567")
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)
}

func TestSearchByPhone_Empty(t *testing.T) {
	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"response": []}`))
	})

	_, err := client.SearchByPhone(context.Background(), "5550000000")
	require.Error(t, err)

	var nf *models.NotFoundError
	assert.ErrorAs(t, err, &nf)
	assert.Equal(t, http.StatusNotFound, models.StatusCode(err))
}
