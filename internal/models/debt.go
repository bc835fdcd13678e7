// Package models defines the data structures for the Loanify webhook handlers.
package models

import (
	"strings"
)

// DebtType classifies an enrolled debt. The declaration order matters:
// the normalizer scans a record's free-text notes for the first type
// name that appears as a substring.
type DebtType string

const (
	DebtTypeCreditCard              DebtType = "CreditCard"
	DebtTypeUnsecured               DebtType = "Unsecured"
	DebtTypeCheckCreditOrLineOfCred DebtType = "CheckCreditOrLineOfCredit"
	DebtTypeAutomobile              DebtType = "Automobile"
	DebtTypeCollection              DebtType = "Collection"
	DebtTypeMedicalDebt             DebtType = "MedicalDebt"
	DebtTypeChargeAccount           DebtType = "ChargeAccount"
	DebtTypeRecreational            DebtType = "Recreational"
	DebtTypeNoteLoan                DebtType = "NoteLoan"
	DebtTypeInstallmentLoan         DebtType = "InstallmentLoan"
)

// AllDebtTypes returns the canonical debt types in matching order.
func AllDebtTypes() []DebtType {
	return []DebtType{
		DebtTypeCreditCard,
		DebtTypeUnsecured,
		DebtTypeCheckCreditOrLineOfCred,
		DebtTypeAutomobile,
		DebtTypeCollection,
		DebtTypeMedicalDebt,
		DebtTypeChargeAccount,
		DebtTypeRecreational,
		DebtTypeNoteLoan,
		DebtTypeInstallmentLoan,
	}
}

// MatchDebtType scans free-text notes for the first canonical type name
// appearing as a substring. Returns false when no type matches.
func MatchDebtType(notes string) (DebtType, bool) {
	for _, t := range AllDebtTypes() {
		if strings.Contains(notes, string(t)) {
			return t, true
		}
	}
	return "", false
}

// Creditor is the creditor block on a CRM debt record.
type Creditor struct {
	CompanyName string `json:"company_name"`
}

// DebtRecord is a raw enrolled debt as returned by the CRM. The CRM
// serializes monetary fields as strings.
type DebtRecord struct {
	OGAccountNum      string   `json:"og_account_num"`
	Creditor          Creditor `json:"creditor"`
	CurrentDebtAmount string   `json:"current_debt_amount"`
	CurrentPayment    string   `json:"current_payment"`
	Notes             string   `json:"notes"`
}

// DebtItem is the canonical filtered view of an enrolled debt. Amounts
// are rounded to cents. Items live only for the duration of a single
// qualification or report computation.
type DebtItem struct {
	AccountNumber string   `json:"accountNumber"`
	CompanyName   string   `json:"companyName"`
	Amount        float64  `json:"individualDebtAmount"`
	DebtType      DebtType `json:"debtType"`
}

// QualificationStatus is the verdict of the qualification evaluator.
type QualificationStatus string

const (
	StatusQualified    QualificationStatus = "Qualified"
	StatusNotQualified QualificationStatus = "Not Qualified"
)

// QualificationResult is the output of evaluating a normalized debt list.
type QualificationResult struct {
	TotalDebt                 float64             `json:"totalDebt"`
	Status                    QualificationStatus `json:"status"`
	DebtThresholdMet          bool                `json:"debtThresholdMet"`
	UnsecuredDebtThresholdMet bool                `json:"unsecuredDebtThresholdMet"`
	Debts                     []DebtItem          `json:"debts"`
}

// UtilizationCategory buckets a revolving credit utilization percentage.
type UtilizationCategory string

const (
	UtilizationOverutilization UtilizationCategory = "Overutilization"
	UtilizationVeryHigh        UtilizationCategory = "VeryHigh"
	UtilizationHigh            UtilizationCategory = "High"
	UtilizationModerate        UtilizationCategory = "Moderate"
	UtilizationLow             UtilizationCategory = "Low"
	UtilizationUnknown         UtilizationCategory = "Unknown"
)
