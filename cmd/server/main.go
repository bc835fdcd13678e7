// Package main provides a local HTTP server for development and
// testing. It mounts the same handlers the Lambda entrypoints use.
package main

import (
	"context"
	"io"
	"log"
	"net/http"
	"os"

	"github.com/aws/aws-lambda-go/events"
	"github.com/rs/cors"

	"github.com/Loanify-Inc/Project-Loanify-Webhooks/internal/app"
	"github.com/Loanify-Inc/Project-Loanify-Webhooks/internal/handlers"
	"github.com/Loanify-Inc/Project-Loanify-Webhooks/internal/utils"
)

// gatewayHandler is the common shape of all Lambda handlers.
type gatewayHandler func(ctx context.Context, request events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error)

// adapt bridges a Lambda-shaped handler onto net/http for local runs.
func adapt(handler gatewayHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		if err != nil {
			http.Error(w, "failed to read request body", http.StatusBadRequest)
			return
		}

		query := make(map[string]string)
		for k, v := range r.URL.Query() {
			if len(v) > 0 {
				query[k] = v[0]
			}
		}

		resp, err := handler(r.Context(), events.APIGatewayProxyRequest{
			HTTPMethod:            r.Method,
			Path:                  r.URL.Path,
			Body:                  string(body),
			QueryStringParameters: query,
		})
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		for k, v := range resp.Headers {
			w.Header().Set(k, v)
		}
		w.WriteHeader(resp.StatusCode)
		_, _ = w.Write([]byte(resp.Body))
	}
}

func main() {
	ctx := context.Background()

	a, err := app.New()
	if err != nil {
		log.Fatalf("Failed to initialize: %v", err)
	}
	defer utils.Sync()

	if _, err := a.WithStorage(ctx); err != nil {
		log.Printf("Warning: storage unavailable, report endpoints will fail: %v", err)
	}
	if _, err := a.WithEmailer(ctx); err != nil {
		log.Printf("Warning: emailer unavailable: %v", err)
	}

	var emailer handlers.ReportEmailer
	if a.Emailer != nil {
		emailer = a.Emailer
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/api/health", adapt(handlers.NewHealthHandler(a.Config.Stage).Handle))
	mux.HandleFunc("/api/qualification", adapt(handlers.NewQualificationHandler(a.CRM, a.Normalizer, a.Evaluator).Handle))
	mux.HandleFunc("/api/contacts", adapt(handlers.NewCreateContactHandler(a.CRM).Handle))
	mux.HandleFunc("/api/contacts/get", adapt(handlers.NewGetContactHandler(a.CRM).Handle))
	mux.HandleFunc("/api/contacts/search", adapt(handlers.NewSearchContactHandler(a.CRM).Handle))
	mux.HandleFunc("/api/contacts/reassign", adapt(handlers.NewReassignContactHandler(a.CRM).Handle))
	mux.HandleFunc("/api/credit/pull", adapt(handlers.NewRunCreditHandler(a.CRM).Handle))
	mux.HandleFunc("/api/notify", adapt(handlers.NewNotifyHandler(a.Notifier).Handle))
	mux.HandleFunc("/api/reports/preview", adapt(handlers.NewReportPreviewHandler(a.Builder).Handle))

	if a.Storage != nil {
		mux.HandleFunc("/api/reports", adapt(handlers.NewFinancialReportHandler(a.Builder, a.Storage, a.Notifier, emailer).Handle))
		mux.HandleFunc("/api/reports/receive", adapt(handlers.NewReceiveReportHandler(a.Storage).Handle))
		mux.HandleFunc("/api/reports/url", adapt(handlers.NewReportURLHandler(a.Storage).Handle))
	}

	corsHandler := cors.AllowAll().Handler(mux)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Local server listening on :%s", port)
	if err := http.ListenAndServe(":"+port, corsHandler); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
