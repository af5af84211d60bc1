package config

import (
	"strings"

	"github.com/kelseyhightower/envconfig"
)

// Config is the full environment surface of the service. The three
// FIREBASE_API_KEY / FIREBASE_AUTH_DOMAIN / FIREBASE_PROJECT_ID values
// together decide whether the backend is used at all; the remaining
// Firebase values are passed through to the client bundle unvalidated.
type Config struct {
	APIKey            string `envconfig:"FIREBASE_API_KEY"`
	AuthDomain        string `envconfig:"FIREBASE_AUTH_DOMAIN"`
	ProjectID         string `envconfig:"FIREBASE_PROJECT_ID"`
	StorageBucket     string `envconfig:"FIREBASE_STORAGE_BUCKET"`
	MessagingSenderID string `envconfig:"FIREBASE_MESSAGING_SENDER_ID"`
	AppID             string `envconfig:"FIREBASE_APP_ID"`
	CredentialsFile   string `envconfig:"GOOGLE_APPLICATION_CREDENTIALS"`

	Port           string `envconfig:"PORT" default:"8080"`
	AllowedOrigins string `envconfig:"ALLOWED_ORIGINS" default:"http://localhost:3000"`

	// When true, order saves are best-effort: persistence failures are
	// logged and swallowed so order entry never halts on them.
	OrderSaveBestEffort bool `envconfig:"ORDER_SAVE_BEST_EFFORT" default:"true"`

	StripeSecretKey     string `envconfig:"STRIPE_SECRET_KEY"`
	StripeWebhookSecret string `envconfig:"STRIPE_WEBHOOK_SECRET"`

	// Service account used to sign GCS upload URLs for menu images.
	SignedURLServiceAccountEmail string `envconfig:"SIGNED_URL_SERVICE_ACCOUNT_EMAIL"`
}

func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, err
	}
	if cfg.StorageBucket == "" && cfg.ProjectID != "" {
		cfg.StorageBucket = cfg.ProjectID + ".appspot.com"
	}
	return cfg, nil
}

// BackendEnabled reports whether the managed backend is configured.
// All three of the API key, auth domain and project id must be present;
// anything less means the service runs in local-only mode where every
// data operation degrades to a no-op or empty result.
func (c Config) BackendEnabled() bool {
	return c.APIKey != "" && c.AuthDomain != "" && c.ProjectID != ""
}

// Origins splits ALLOWED_ORIGINS into a trimmed, non-empty list.
func (c Config) Origins() []string {
	out := []string{}
	for _, o := range strings.Split(c.AllowedOrigins, ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			out = append(out, o)
		}
	}
	return out
}
