// Package debt implements the qualification pipeline: normalizing raw
// enrolled debts, computing amortization comparisons, and applying the
// qualification thresholds.
package debt

import (
	"math"
	"strconv"

	"github.com/Loanify-Inc/Project-Loanify-Webhooks/internal/models"
)

// MalformedPolicy decides what happens to a debt record whose amount
// does not parse as a number.
type MalformedPolicy string

const (
	// MalformedExclude silently drops the record, matching the CRM
	// integration's observed behavior.
	MalformedExclude MalformedPolicy = "exclude"
	// MalformedReject fails the whole request with a validation error
	// naming the offending account.
	MalformedReject MalformedPolicy = "reject"
)

// NormalizerConfig carries the filtering rules for a Normalizer.
type NormalizerConfig struct {
	// MinAmount excludes debts below this balance. Zero disables the
	// amount filter.
	MinAmount float64
	// Malformed selects the policy for unparseable amounts. Empty
	// defaults to MalformedExclude.
	Malformed MalformedPolicy
}

// Normalizer filters and maps raw CRM debt records into canonical items.
type Normalizer struct {
	cfg NormalizerConfig
}

// NewNormalizer creates a Normalizer with the given filtering rules.
func NewNormalizer(cfg NormalizerConfig) *Normalizer {
	if cfg.Malformed == "" {
		cfg.Malformed = MalformedExclude
	}
	return &Normalizer{cfg: cfg}
}

// Normalize filters raw debt records into canonical DebtItems. A record
// is included iff its amount parses, meets the minimum, and its notes
// contain a canonical debt type name. Output preserves input order.
func (n *Normalizer) Normalize(raw []models.DebtRecord) ([]models.DebtItem, error) {
	items := make([]models.DebtItem, 0, len(raw))
	for _, rec := range raw {
		amount, err := strconv.ParseFloat(rec.CurrentDebtAmount, 64)
		if err != nil || math.IsNaN(amount) || math.IsInf(amount, 0) {
			if n.cfg.Malformed == MalformedReject {
				return nil, models.NewValidationError(
					"debt amount %q on account %s is not a number", rec.CurrentDebtAmount, rec.OGAccountNum)
			}
			continue
		}
		if amount < n.cfg.MinAmount {
			continue
		}
		debtType, ok := models.MatchDebtType(rec.Notes)
		if !ok {
			continue
		}
		items = append(items, models.DebtItem{
			AccountNumber: rec.OGAccountNum,
			CompanyName:   rec.Creditor.CompanyName,
			Amount:        RoundCents(amount),
			DebtType:      debtType,
		})
	}
	return items, nil
}

// Total sums the item amounts, rounded to cents.
func Total(items []models.DebtItem) float64 {
	var total float64
	for _, item := range items {
		total += item.Amount
	}
	return RoundCents(total)
}

// TotalMonthlyPayment sums the current_payment fields of raw records,
// skipping unparseable values, rounded to cents.
func TotalMonthlyPayment(raw []models.DebtRecord) float64 {
	var total float64
	for _, rec := range raw {
		if p, err := strconv.ParseFloat(rec.CurrentPayment, 64); err == nil {
			total += p
		}
	}
	return RoundCents(total)
}

// RoundCents rounds to two decimal places, half up.
func RoundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
