package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "https://api.forthcrm.com/v1", cfg.CRMBaseURL)
	assert.Equal(t, 500.0, cfg.MinDebtAmount)
	assert.Equal(t, 10000.0, cfg.QualifyThreshold)
	assert.Equal(t, 35000.0, cfg.DebtThreshold)
	assert.Equal(t, 10000.0, cfg.UnsecuredThreshold)
	assert.Equal(t, "exclude", cfg.MalformedAmountPolicy)
	assert.Equal(t, 120, cfg.CacheTTLSecs)
	assert.Equal(t, "dev", cfg.Stage)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("CRM_BASE_URL", "https://crm.test.local/v1")
	t.Setenv("MIN_DEBT_AMOUNT", "250")
	t.Setenv("QUALIFY_THRESHOLD", "12000")
	t.Setenv("CACHE_TTL_SECONDS", "60")
	t.Setenv("MALFORMED_AMOUNT_POLICY", "reject")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "https://crm.test.local/v1", cfg.CRMBaseURL)
	assert.Equal(t, 250.0, cfg.MinDebtAmount)
	assert.Equal(t, 12000.0, cfg.QualifyThreshold)
	assert.Equal(t, 60, cfg.CacheTTLSecs)
	assert.Equal(t, "reject", cfg.MalformedAmountPolicy)
}

func TestLoad_InvalidNumbersFallBack(t *testing.T) {
	t.Setenv("MIN_DEBT_AMOUNT", "lots")
	t.Setenv("CACHE_TTL_SECONDS", "soon")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 500.0, cfg.MinDebtAmount)
	assert.Equal(t, 120, cfg.CacheTTLSecs)
}

func TestParsePairs(t *testing.T) {
	m := parsePairs("rep-7=https://hooks.slack.com/a, rep-3 = https://hooks.slack.com/b")
	assert.Equal(t, map[string]string{
		"rep-7": "https://hooks.slack.com/a",
		"rep-3": "https://hooks.slack.com/b",
	}, m)

	assert.Empty(t, parsePairs(""))
	assert.Empty(t, parsePairs("no-separator"))
}
