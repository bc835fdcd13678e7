package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/aws/aws-lambda-go/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthHandler(t *testing.T) {
	h := NewHealthHandler("dev")

	resp, err := h.Handle(context.Background(), events.APIGatewayProxyRequest{HTTPMethod: http.MethodGet})
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var got HealthResponse
	require.NoError(t, json.Unmarshal([]byte(resp.Body), &got))
	assert.Equal(t, "healthy", got.Status)
	assert.Equal(t, "loanify-webhooks", got.Service)
	assert.Equal(t, "dev", got.Stage)
	assert.NotEmpty(t, got.Version)

	_, err = time.Parse(time.RFC3339, got.Timestamp)
	assert.NoError(t, err)
}

func TestHealthHandler_VersionFromEnv(t *testing.T) {
	t.Setenv("SERVICE_VERSION", "2.3.1")
	h := NewHealthHandler("prod")

	resp, err := h.Handle(context.Background(), events.APIGatewayProxyRequest{HTTPMethod: http.MethodGet})
	require.NoError(t, err)

	var got HealthResponse
	require.NoError(t, json.Unmarshal([]byte(resp.Body), &got))
	assert.Equal(t, "2.3.1", got.Version)
}
