package report

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/Loanify-Inc/Project-Loanify-Webhooks/internal/models"
)

// reportTemplate is the financial analysis document. Layout is kept
// minimal; the interesting part is the data it presents.
const reportTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <title>Financial Analysis for {{.FirstName}} {{.LastName}}</title>
</head>
<body>
  <h1>Financial Analysis</h1>
  <p>Prepared for {{.FirstName}} {{.LastName}} by {{.PreparedBy}}.</p>
  <p>The following is a detailed analysis of your financial profile, covering
  your current credit situation and the resolution plan you are approved for.</p>

  <h2>Your Credit Score: {{.CreditScore}}</h2>

  <h2>Red Flag Codes</h2>
  {{if .RedFlagCodes}}
  <table>
    <tr><th>Code</th><th>Description</th></tr>
    {{range .RedFlagCodes}}
    <tr><td>{{.Code}}</td><td>{{.Description}}</td></tr>
    {{end}}
  </table>
  {{else}}
  <p>No red flag codes reported.</p>
  {{end}}

  <h2>Your Creditors</h2>
  <table>
    <tr><th>Creditor</th><th>Account</th><th>Type</th><th>Balance</th></tr>
    {{range .Debts}}
    <tr><td>{{.CompanyName}}</td><td>{{.AccountNumber}}</td><td>{{.DebtType}}</td><td>${{printf "%.2f" .Amount}}</td></tr>
    {{end}}
    <tr><td colspan="3"><strong>TOTAL</strong></td><td><strong>${{.TotalDebt}}</strong></td></tr>
  </table>

  <h2>Utilization Rates and Why They Matter</h2>
  <p>Your current utilization rate is <strong>{{.CreditUtilization}}</strong>
  ({{.UtilizationLevel}}). Lenders view any ratio over 30% to be high and as a
  result the consumer to be a potential lending risk. As outstanding balances
  are paid down and the utilization rate decreases, creditworthiness rapidly
  improves so that traditional lending is more attainable.</p>

  <h2>Side by Side Comparison</h2>
  <table>
    <tr><th></th><th>Current Situation</th><th>Resolution Program</th></tr>
    <tr><td>Monthly Payment</td><td>${{.CurrentSituation.MonthlyPayment}}</td><td>${{.ModificationPlan.MonthlyPayment}}</td></tr>
    <tr><td>Payoff Time (months)</td><td>{{.CurrentSituation.PayoffTime}}</td><td>{{.ModificationPlan.PayoffTime}}</td></tr>
    <tr><td>Interest Cost</td><td>${{.CurrentSituation.InterestCost}}</td><td>${{.ModificationPlan.InterestCost}}</td></tr>
    <tr><td>Total Cost</td><td>${{.CurrentSituation.TotalCost}}</td><td>${{.ModificationPlan.TotalCost}}</td></tr>
  </table>
  <p>Estimated total savings: <strong>${{.ModificationPlan.TotalSavings}}</strong></p>
</body>
</html>
`

var reportTmpl = template.Must(template.New("financial-report").Parse(reportTemplate))

// Render produces the HTML financial analysis document for a payload.
func Render(payload models.ReportPayload) ([]byte, error) {
	var buf bytes.Buffer
	if err := reportTmpl.Execute(&buf, payload); err != nil {
		return nil, fmt.Errorf("failed to render report: %w", err)
	}
	return buf.Bytes(), nil
}
