// Financial report Lambda entry point
package main

import (
	"context"
	"log"

	"github.com/aws/aws-lambda-go/lambda"

	"github.com/Loanify-Inc/Project-Loanify-Webhooks/internal/app"
	"github.com/Loanify-Inc/Project-Loanify-Webhooks/internal/handlers"
	"github.com/Loanify-Inc/Project-Loanify-Webhooks/internal/utils"
)

func main() {
	ctx := context.Background()

	a, err := app.New()
	if err != nil {
		log.Fatalf("Failed to initialize: %v", err)
	}
	defer utils.Sync()

	if _, err := a.WithStorage(ctx); err != nil {
		log.Fatalf("Failed to initialize storage: %v", err)
	}
	if _, err := a.WithEmailer(ctx); err != nil {
		log.Fatalf("Failed to initialize emailer: %v", err)
	}

	var emailer handlers.ReportEmailer
	if a.Emailer != nil {
		emailer = a.Emailer
	}

	handler := handlers.NewFinancialReportHandler(a.Builder, a.Storage, a.Notifier, emailer)
	lambda.Start(handler.Handle)
}
