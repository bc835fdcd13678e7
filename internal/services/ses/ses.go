// Package ses provides email delivery of report links via AWS SES.
package ses

import (
	"bytes"
	"context"
	"fmt"
	"html/template"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
	"go.uber.org/zap"

	"github.com/Loanify-Inc/Project-Loanify-Webhooks/internal/utils"
)

// Emailer sends report link emails through SES.
type Emailer struct {
	client    *ses.Client
	fromEmail string
}

// NewEmailer creates an SES emailer with the configured sender address.
func NewEmailer(ctx context.Context, region, fromEmail string) (*Emailer, error) {
	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}
	return &Emailer{
		client:    ses.NewFromConfig(cfg),
		fromEmail: fromEmail,
	}, nil
}

const reportLinkTemplate = `<html>
<body>
  <p>Hi {{.Name}},</p>
  <p>Your financial analysis report is ready. You can view it here:</p>
  <p><a href="{{.URL}}">{{.URL}}</a></p>
  <p>&mdash; The Loanify Team</p>
</body>
</html>`

var reportLinkTmpl = template.Must(template.New("report-link").Parse(reportLinkTemplate))

// SendReportLink emails a stored report's URL to a recipient.
func (e *Emailer) SendReportLink(ctx context.Context, to, name, url string) error {
	var buf bytes.Buffer
	if err := reportLinkTmpl.Execute(&buf, struct{ Name, URL string }{name, url}); err != nil {
		return fmt.Errorf("failed to render email body: %w", err)
	}

	_, err := e.client.SendEmail(ctx, &ses.SendEmailInput{
		Source: aws.String(e.fromEmail),
		Destination: &types.Destination{
			ToAddresses: []string{to},
		},
		Message: &types.Message{
			Subject: &types.Content{
				Data: aws.String("Your Financial Analysis Report"),
			},
			Body: &types.Body{
				Html: &types.Content{
					Data: aws.String(buf.String()),
				},
			},
		},
	})
	if err != nil {
		utils.GetLogger().Error("Failed to send report email",
			zap.String("to", to),
			zap.Error(err))
		return fmt.Errorf("failed to send report email: %w", err)
	}

	utils.GetLogger().Info("Report email sent", zap.String("to", to))
	return nil
}
