// Contact fetch Lambda entry point
package main

import (
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

	handler := handlers.NewGetContactHandler(a.CRM)
	lambda.Start(handler.Handle)
}
