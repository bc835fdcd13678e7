// Health check Lambda entry point
package main

import (
	"os"

	"github.com/aws/aws-lambda-go/lambda"

	"github.com/Loanify-Inc/Project-Loanify-Webhooks/internal/handlers"
	"github.com/Loanify-Inc/Project-Loanify-Webhooks/internal/utils"
)

func main() {
	_ = utils.InitLogger("info")
	defer utils.Sync()

	stage := os.Getenv("STAGE")
	if stage == "" {
		stage = "unknown"
	}

	handler := handlers.NewHealthHandler(stage)
	lambda.Start(handler.Handle)
}
