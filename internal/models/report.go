package models

// RedFlagCode is one parsed credit report factor ("CODE - description").
type RedFlagCode struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

// PlanSummary is the presentation view of a payment plan.
type PlanSummary struct {
	MonthlyPayment string `json:"monthlyPayment"`
	PayoffTime     int    `json:"payoffTime"`
	InterestCost   string `json:"interestCost"`
	TotalCost      string `json:"totalCost"`
	TotalSavings   string `json:"totalSavings,omitempty"`
}

// ReportPayload carries everything the financial analysis report renders.
type ReportPayload struct {
	FirstName         string              `json:"firstName"`
	LastName          string              `json:"lastName"`
	PreparedBy        string              `json:"preparedBy"`
	CreditScore       int                 `json:"creditScore"`
	RedFlagCodes      []RedFlagCode       `json:"redFlagCodes"`
	Debts             []DebtItem          `json:"debts"`
	CreditUtilization string              `json:"creditUtilization"`
	UtilizationLevel  UtilizationCategory `json:"utilizationLevel"`
	TotalDebt         string              `json:"totalDebt"`
	CurrentSituation  PlanSummary         `json:"currentSituation"`
	ModificationPlan  PlanSummary         `json:"debtModificationProgram"`
}
