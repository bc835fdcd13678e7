package debt

import (
	"math"

	"github.com/Loanify-Inc/Project-Loanify-Webhooks/internal/models"
)

// Program constants for the debt modification comparison. The current
// situation models the debt as a high-interest amortized loan; the
// modification program carries no interest and a monthly program fee.
const (
	CurrentAnnualRate  = 0.24
	CurrentTermMonths  = 120
	PrincipalReduction = 0.75
	MonthlyProgramFee  = 10.95
	SingleAccountTerm  = 24
)

// PaymentPlan is the computed cost of paying off a principal.
type PaymentPlan struct {
	Principal      float64
	MonthlyPayment float64
	TermMonths     int
	InterestCost   float64
	TotalCost      float64
}

// Amortize computes the fixed-rate amortization of a principal over a
// term. A zero rate degrades to straight division. Non-positive inputs
// or a non-finite result yield a CalculationError.
func Amortize(principal, annualRate float64, termMonths int) (PaymentPlan, error) {
	if principal <= 0 {
		return PaymentPlan{}, models.NewCalculationError("principal must be positive, got %.2f", principal)
	}
	if termMonths <= 0 {
		return PaymentPlan{}, models.NewCalculationError("term must be positive, got %d months", termMonths)
	}

	monthlyRate := annualRate / 12
	term := float64(termMonths)

	var monthlyPayment float64
	if monthlyRate == 0 {
		monthlyPayment = principal / term
	} else {
		growth := math.Pow(1+monthlyRate, term)
		monthlyPayment = principal * monthlyRate * growth / (growth - 1)
	}

	if math.IsNaN(monthlyPayment) || math.IsInf(monthlyPayment, 0) {
		return PaymentPlan{}, models.NewCalculationError(
			"monthly payment is not finite (principal %.2f, rate %.4f, term %d)", principal, annualRate, termMonths)
	}

	interestCost := monthlyPayment*term - principal
	return PaymentPlan{
		Principal:      principal,
		MonthlyPayment: RoundCents(monthlyPayment),
		TermMonths:     termMonths,
		InterestCost:   RoundCents(interestCost),
		TotalCost:      RoundCents(principal + interestCost),
	}, nil
}

// ModificationTerm derives the program term in months from the debt
// total and the number of enrolled accounts. A single account always
// gets the short 24-month term.
func ModificationTerm(totalDebt float64, accounts int) int {
	if accounts == 1 {
		return SingleAccountTerm
	}
	switch {
	case totalDebt >= 60000:
		return 60
	case totalDebt >= 35000:
		return 54
	case totalDebt >= 20000:
		return 48
	case totalDebt >= 15000:
		return 42
	default:
		return 36
	}
}

// ModifiedPrincipal reduces the debt total to 75% and accrues the
// monthly program fee over the term.
func ModifiedPrincipal(totalDebt float64, termMonths int) float64 {
	return totalDebt*PrincipalReduction + MonthlyProgramFee + MonthlyProgramFee*float64(termMonths-1)
}

// PlanComparison holds the side-by-side cost comparison for a report.
type PlanComparison struct {
	Current      PaymentPlan
	Modification PaymentPlan
	TotalSavings float64
}

// ComparePlans computes the current-situation amortization against the
// zero-interest modification program for a normalized debt total.
func ComparePlans(totalDebt float64, accounts int) (PlanComparison, error) {
	current, err := Amortize(totalDebt, CurrentAnnualRate, CurrentTermMonths)
	if err != nil {
		return PlanComparison{}, err
	}

	term := ModificationTerm(totalDebt, accounts)
	modified, err := Amortize(ModifiedPrincipal(totalDebt, term), 0, term)
	if err != nil {
		return PlanComparison{}, err
	}

	return PlanComparison{
		Current:      current,
		Modification: modified,
		TotalSavings: RoundCents(current.TotalCost - modified.TotalCost),
	}, nil
}
