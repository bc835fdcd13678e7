// Package app wires configuration into the service graph the handlers
// compose. Each Lambda entrypoint builds the slice of it that it needs.
package app

import (
	"context"
	"time"

	"github.com/Loanify-Inc/Project-Loanify-Webhooks/internal/config"
	"github.com/Loanify-Inc/Project-Loanify-Webhooks/internal/services/crm"
	"github.com/Loanify-Inc/Project-Loanify-Webhooks/internal/services/debt"
	"github.com/Loanify-Inc/Project-Loanify-Webhooks/internal/services/report"
	"github.com/Loanify-Inc/Project-Loanify-Webhooks/internal/services/ses"
	"github.com/Loanify-Inc/Project-Loanify-Webhooks/internal/services/slack"
	"github.com/Loanify-Inc/Project-Loanify-Webhooks/internal/services/storage"
	"github.com/Loanify-Inc/Project-Loanify-Webhooks/internal/utils"
)

// App holds the wired service graph.
type App struct {
	Config     *config.Config
	CRM        *crm.Client
	Normalizer *debt.Normalizer
	Evaluator  *debt.Evaluator
	Builder    *report.Builder
	Storage    *storage.Service
	Notifier   *slack.Notifier
	Emailer    *ses.Emailer
}

// New loads configuration and wires the core services. AWS-backed
// services (storage, email) are wired lazily via their own methods so
// handlers that never touch them don't pay for client setup.
func New() (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if err := utils.InitLogger(cfg.LogLevel); err != nil {
		return nil, err
	}

	var opts []crm.Option
	if cfg.RedisAddr != "" {
		cache := crm.NewCache(cfg.RedisAddr, time.Duration(cfg.CacheTTLSecs)*time.Second)
		opts = append(opts, crm.WithCache(cache))
	}

	crmClient := crm.NewClient(cfg.CRMBaseURL, cfg.CRMAPIKey, opts...)
	normalizer := debt.NewNormalizer(debt.NormalizerConfig{
		MinAmount: cfg.MinDebtAmount,
		Malformed: debt.MalformedPolicy(cfg.MalformedAmountPolicy),
	})
	evaluator := debt.NewEvaluator(debt.EvaluatorConfig{
		QualifyThreshold:   cfg.QualifyThreshold,
		DebtThreshold:      cfg.DebtThreshold,
		UnsecuredThreshold: cfg.UnsecuredThreshold,
	})

	return &App{
		Config:     cfg,
		CRM:        crmClient,
		Normalizer: normalizer,
		Evaluator:  evaluator,
		Builder:    report.NewBuilder(crmClient, normalizer, evaluator, cfg.PreparedBy),
		Notifier:   slack.NewNotifier(cfg.SlackWebhooks, cfg.SlackMentions),
	}, nil
}

// WithStorage attaches the S3 storage service.
func (a *App) WithStorage(ctx context.Context) (*App, error) {
	store, err := storage.NewService(ctx, a.Config.S3Bucket, a.Config.AWSRegion)
	if err != nil {
		return nil, err
	}
	a.Storage = store
	return a, nil
}

// WithEmailer attaches the SES emailer when a sender is configured.
func (a *App) WithEmailer(ctx context.Context) (*App, error) {
	if a.Config.SESSenderEmail == "" {
		return a, nil
	}
	emailer, err := ses.NewEmailer(ctx, a.Config.AWSRegion, a.Config.SESSenderEmail)
	if err != nil {
		return nil, err
	}
	a.Emailer = emailer
	return a, nil
}
