package debt

import (
	"math"
	"strconv"
	"strings"

	"github.com/Loanify-Inc/Project-Loanify-Webhooks/internal/models"
)

// EvaluatorConfig carries the qualification thresholds. All comparisons
// against QualifyThreshold and DebtThreshold are inclusive; the
// unsecured check is strictly greater-than.
type EvaluatorConfig struct {
	QualifyThreshold   float64
	DebtThreshold      float64
	UnsecuredThreshold float64
}

// DefaultEvaluatorConfig returns the canonical production thresholds.
func DefaultEvaluatorConfig() EvaluatorConfig {
	return EvaluatorConfig{
		QualifyThreshold:   10000,
		DebtThreshold:      35000,
		UnsecuredThreshold: 10000,
	}
}

// Evaluator applies qualification rules to a normalized debt list.
type Evaluator struct {
	cfg EvaluatorConfig
}

// NewEvaluator creates an Evaluator with the given thresholds.
func NewEvaluator(cfg EvaluatorConfig) *Evaluator {
	return &Evaluator{cfg: cfg}
}

// Evaluate produces the qualification verdict for a normalized debt list.
func (e *Evaluator) Evaluate(items []models.DebtItem) models.QualificationResult {
	total := Total(items)

	var unsecured float64
	for _, item := range items {
		if item.DebtType == models.DebtTypeUnsecured {
			unsecured += item.Amount
		}
	}

	status := models.StatusNotQualified
	if total >= e.cfg.QualifyThreshold {
		status = models.StatusQualified
	}

	return models.QualificationResult{
		TotalDebt:                 total,
		Status:                    status,
		DebtThresholdMet:          total >= e.cfg.DebtThreshold,
		UnsecuredDebtThresholdMet: RoundCents(unsecured) > e.cfg.UnsecuredThreshold,
		Debts:                     items,
	}
}

// CategorizeUtilization buckets a utilization percentage string like
// "45%". Unparseable input categorizes as Unknown.
func CategorizeUtilization(s string) models.UtilizationCategory {
	trimmed := strings.TrimSuffix(strings.TrimSpace(s), "%")
	p, err := strconv.ParseFloat(trimmed, 64)
	if err != nil || math.IsNaN(p) {
		return models.UtilizationUnknown
	}
	switch {
	case p > 100:
		return models.UtilizationOverutilization
	case p >= 91:
		return models.UtilizationVeryHigh
	case p >= 61:
		return models.UtilizationHigh
	case p >= 31:
		return models.UtilizationModerate
	default:
		return models.UtilizationLow
	}
}
