package notify

import (
	"os"
	"time"
)

// EnvProduction and EnvDevelopment are the two recognized environments.
// Development enables stderr diagnostics for swallowed failures.
const (
	EnvProduction  = "production"
	EnvDevelopment = "development"
)

// defaultWebhookURL is the stock ingestion endpoint. Override with
// BOLAND_WEBHOOK_URL; set it to the empty string to disable delivery.
const defaultWebhookURL = "https://hooks.zapier.com/hooks/catch/25753682/uar63c7/"

// Config holds webhook notifier configuration.
type Config struct {
	// WebhookURL is the delivery endpoint. Empty disables sending.
	WebhookURL string

	// Environment tags outbound payloads and gates diagnostics.
	// Values: "production", "development".
	Environment string

	// Timeout bounds a single delivery attempt. There are no retries.
	Timeout time.Duration

	// QueueSize bounds the in-flight event queue. When full, new events
	// are dropped (best-effort delivery, never backpressure).
	QueueSize int
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		WebhookURL:  defaultWebhookURL,
		Environment: EnvProduction,
		Timeout:     10 * time.Second,
		QueueSize:   16,
	}
}

// ConfigFromEnv builds a Config from environment variables, falling back
// to defaults for unset values.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()

	if u, ok := os.LookupEnv("BOLAND_WEBHOOK_URL"); ok {
		cfg.WebhookURL = u
	}
	if e := os.Getenv("BOLAND_ENV"); e != "" {
		cfg.Environment = e
	}

	return cfg
}

// Development reports whether diagnostics should be written to stderr.
func (c Config) Development() bool {
	return c.Environment == EnvDevelopment
}
