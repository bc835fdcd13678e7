// Receive financial report Lambda entry point
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
	a, err := app.New()
	if err != nil {
		log.Fatalf("Failed to initialize: %v", err)
	}
	defer utils.Sync()

	if _, err := a.WithStorage(context.Background()); err != nil {
		log.Fatalf("Failed to initialize storage: %v", err)
	}

	handler := handlers.NewReceiveReportHandler(a.Storage)
	lambda.Start(handler.Handle)
}
