// Package report assembles and renders the financial analysis report.
package report

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/Loanify-Inc/Project-Loanify-Webhooks/internal/models"
	"github.com/Loanify-Inc/Project-Loanify-Webhooks/internal/services/crm"
	"github.com/Loanify-Inc/Project-Loanify-Webhooks/internal/services/debt"
	"github.com/Loanify-Inc/Project-Loanify-Webhooks/internal/utils"
)

// Builder assembles a ReportPayload from CRM data and the debt
// qualification pipeline.
type Builder struct {
	crm        *crm.Client
	normalizer *debt.Normalizer
	evaluator  *debt.Evaluator
	preparedBy string
}

// NewBuilder creates a report builder.
func NewBuilder(crmClient *crm.Client, normalizer *debt.Normalizer, evaluator *debt.Evaluator, preparedBy string) *Builder {
	return &Builder{
		crm:        crmClient,
		normalizer: normalizer,
		evaluator:  evaluator,
		preparedBy: preparedBy,
	}
}

// BuildResult pairs the rendered payload with the contact it was built
// for, so callers can route notifications to the assigned rep.
type BuildResult struct {
	Payload models.ReportPayload
	Contact *models.ContactInfo
}

// Build fetches contact info, credit report, and enrolled debts
// concurrently, then runs the qualification pipeline and assembles the
// report payload. Any fetch failure fails the whole build.
func (b *Builder) Build(ctx context.Context, contactID string) (*BuildResult, error) {
	var (
		contact *models.ContactInfo
		credit  *models.CreditReport
		debts   []models.DebtRecord
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		contact, err = b.crm.GetContact(gctx, contactID)
		return err
	})
	g.Go(func() error {
		var err error
		credit, err = b.crm.GetCreditReport(gctx, contactID)
		return err
	})
	g.Go(func() error {
		var err error
		debts, err = b.crm.GetEnrolledDebts(gctx, contactID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	items, err := b.normalizer.Normalize(debts)
	if err != nil {
		return nil, err
	}
	result := b.evaluator.Evaluate(items)

	comparison, err := debt.ComparePlans(result.TotalDebt, len(items))
	if err != nil {
		return nil, err
	}

	utils.GetLogger().Info("Built financial report payload",
		zap.String("contactID", contactID),
		zap.Float64("totalDebt", result.TotalDebt),
		zap.Int("debts", len(items)),
		zap.String("status", string(result.Status)))

	payload := models.ReportPayload{
		FirstName:         contact.FirstName,
		LastName:          contact.LastName,
		PreparedBy:        b.preparedBy,
		CreditScore:       credit.Score,
		RedFlagCodes:      ParseRedFlags(credit.Factors),
		Debts:             items,
		CreditUtilization: credit.RevolvingCreditUtilization,
		UtilizationLevel:  debt.CategorizeUtilization(credit.RevolvingCreditUtilization),
		TotalDebt:         money(result.TotalDebt),
		CurrentSituation: models.PlanSummary{
			MonthlyPayment: money(comparison.Current.MonthlyPayment),
			PayoffTime:     comparison.Current.TermMonths,
			InterestCost:   money(comparison.Current.InterestCost),
			TotalCost:      money(comparison.Current.TotalCost),
		},
		ModificationPlan: models.PlanSummary{
			MonthlyPayment: money(comparison.Modification.MonthlyPayment),
			PayoffTime:     comparison.Modification.TermMonths,
			InterestCost:   money(comparison.Modification.InterestCost),
			TotalCost:      money(comparison.Modification.TotalCost),
			TotalSavings:   money(comparison.TotalSavings),
		},
	}

	return &BuildResult{Payload: payload, Contact: contact}, nil
}

// ParseRedFlags splits factor strings of the form "CODE - description"
// into structured red flag codes. Factors without the separator keep
// the whole string as the description.
func ParseRedFlags(factors []string) []models.RedFlagCode {
	flags := make([]models.RedFlagCode, 0, len(factors))
	for _, factor := range factors {
		code, description, found := strings.Cut(factor, " - ")
		if !found {
			flags = append(flags, models.RedFlagCode{Description: strings.TrimSpace(factor)})
			continue
		}
		flags = append(flags, models.RedFlagCode{
			Code:        strings.TrimSpace(code),
			Description: strings.TrimSpace(description),
		})
	}
	return flags
}

func money(v float64) string {
	return fmt.Sprintf("%.2f", v)
}
