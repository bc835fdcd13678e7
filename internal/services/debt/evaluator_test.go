package debt

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Loanify-Inc/Project-Loanify-Webhooks/internal/models"
)

func items(amounts ...float64) []models.DebtItem {
	out := make([]models.DebtItem, 0, len(amounts))
	for _, a := range amounts {
		out = append(out, models.DebtItem{
			AccountNumber: "acct",
			CompanyName:   "Creditor",
			Amount:        a,
			DebtType:      models.DebtTypeCreditCard,
		})
	}
	return out
}

func TestEvaluate_QualifyThresholdInclusive(t *testing.T) {
	e := NewEvaluator(DefaultEvaluatorConfig())

	result := e.Evaluate(items(10000.00))
	assert.Equal(t, models.StatusQualified, result.Status)

	result = e.Evaluate(items(9999.99))
	assert.Equal(t, models.StatusNotQualified, result.Status)
	assert.Equal(t, 9999.99, result.TotalDebt)
}

func TestEvaluate_DebtThresholdInclusive(t *testing.T) {
	e := NewEvaluator(DefaultEvaluatorConfig())

	result := e.Evaluate(items(20000, 15000))
	assert.True(t, result.DebtThresholdMet)

	result = e.Evaluate(items(20000, 14999.99))
	assert.False(t, result.DebtThresholdMet)
}

func TestEvaluate_UnsecuredThresholdStrict(t *testing.T) {
	e := NewEvaluator(DefaultEvaluatorConfig())

	unsecured := []models.DebtItem{
		{Amount: 10000, DebtType: models.DebtTypeUnsecured},
	}
	result := e.Evaluate(unsecured)
	assert.False(t, result.UnsecuredDebtThresholdMet, "exactly at threshold is not over it")

	unsecured[0].Amount = 10000.01
	result = e.Evaluate(unsecured)
	assert.True(t, result.UnsecuredDebtThresholdMet)
}

func TestEvaluate_UnsecuredOnlyCountsUnsecuredType(t *testing.T) {
	e := NewEvaluator(DefaultEvaluatorConfig())

	mixed := []models.DebtItem{
		{Amount: 50000, DebtType: models.DebtTypeCreditCard},
		{Amount: 5000, DebtType: models.DebtTypeUnsecured},
	}
	result := e.Evaluate(mixed)
	assert.Equal(t, models.StatusQualified, result.Status)
	assert.True(t, result.DebtThresholdMet)
	assert.False(t, result.UnsecuredDebtThresholdMet)
}

func TestEvaluate_EmptyList(t *testing.T) {
	e := NewEvaluator(DefaultEvaluatorConfig())

	result := e.Evaluate(nil)
	assert.Equal(t, models.StatusNotQualified, result.Status)
	assert.Equal(t, 0.0, result.TotalDebt)
	assert.False(t, result.DebtThresholdMet)
	assert.False(t, result.UnsecuredDebtThresholdMet)
}

func TestCategorizeUtilization(t *testing.T) {
	cases := []struct {
		input string
		want  models.UtilizationCategory
	}{
		{"101%", models.UtilizationOverutilization},
		{"100%", models.UtilizationVeryHigh},
		{"95%", models.UtilizationVeryHigh},
		{"91%", models.UtilizationVeryHigh},
		{"90.99%", models.UtilizationHigh},
		{"61%", models.UtilizationHigh},
		{"60%", models.UtilizationModerate},
		{"31%", models.UtilizationModerate},
		{"30%", models.UtilizationLow},
		{"0%", models.UtilizationLow},
		{" 45% ", models.UtilizationModerate},
		{"45", models.UtilizationModerate},
		{"n/a", models.UtilizationUnknown},
		{"", models.UtilizationUnknown},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, CategorizeUtilization(tc.input), "input=%q", tc.input)
	}
}
