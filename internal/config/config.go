// Package config provides configuration management for the application.
package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all configuration values for the application.
type Config struct {
	// Forth CRM
	CRMBaseURL string
	CRMAPIKey  string

	// AWS
	AWSRegion string
	S3Bucket  string

	// Slack: rep CRM id -> webhook URL, and rep CRM id -> mention tag
	SlackWebhooks map[string]string
	SlackMentions map[string]string

	// SES
	SESSenderEmail string

	// Redis (optional CRM response cache)
	RedisAddr    string
	CacheTTLSecs int

	// Qualification thresholds
	MinDebtAmount      float64
	QualifyThreshold   float64
	DebtThreshold      float64
	UnsecuredThreshold float64

	// Report
	PreparedBy string

	// Malformed debt amount handling: "exclude" or "reject"
	MalformedAmountPolicy string

	// Application
	Stage    string
	LogLevel string
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	// Load .env file if it exists (for local development)
	_ = godotenv.Load()

	cfg := &Config{
		// Forth CRM
		CRMBaseURL: getEnv("CRM_BASE_URL", "https://api.forthcrm.com/v1"),
		CRMAPIKey:  getEnv("CRM_API_KEY", ""),

		// AWS
		AWSRegion: getEnv("AWS_REGION", "us-east-1"),
		S3Bucket:  getEnv("S3_BUCKET", "loanify-reports-dev"),

		// Slack
		SlackWebhooks: parsePairs(getEnv("SLACK_WEBHOOKS", "")),
		SlackMentions: parsePairs(getEnv("SLACK_MENTIONS", "")),

		// SES
		SESSenderEmail: getEnv("SES_SENDER_EMAIL", ""),

		// Redis
		RedisAddr:    getEnv("REDIS_ADDR", ""),
		CacheTTLSecs: getEnvInt("CACHE_TTL_SECONDS", 120),

		// Thresholds
		MinDebtAmount:      getEnvFloat("MIN_DEBT_AMOUNT", 500),
		QualifyThreshold:   getEnvFloat("QUALIFY_THRESHOLD", 10000),
		DebtThreshold:      getEnvFloat("DEBT_THRESHOLD", 35000),
		UnsecuredThreshold: getEnvFloat("UNSECURED_THRESHOLD", 10000),

		// Report
		PreparedBy: getEnv("REPORT_PREPARED_BY", "Kevin Kullins"),

		MalformedAmountPolicy: getEnv("MALFORMED_AMOUNT_POLICY", "exclude"),

		// Application
		Stage:    getEnv("STAGE", "dev"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}

	return cfg, nil
}

// parsePairs parses "id1=value1,id2=value2" into a map. Used for the
// per-rep Slack webhook and mention tables.
func parsePairs(s string) map[string]string {
	m := make(map[string]string)
	for _, pair := range strings.Split(s, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		if k, v, ok := strings.Cut(pair, "="); ok {
			m[strings.TrimSpace(k)] = strings.TrimSpace(v)
		}
	}
	return m
}

// getEnv retrieves an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt retrieves an environment variable as int or returns a default value.
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

// getEnvFloat retrieves an environment variable as float64 or returns a default value.
func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return defaultValue
}
