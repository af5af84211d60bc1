package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBackendEnabledNeedsAllThree(t *testing.T) {
	cases := []struct {
		name    string
		cfg     Config
		enabled bool
	}{
		{"all present", Config{APIKey: "k", AuthDomain: "d", ProjectID: "p"}, true},
		{"missing api key", Config{AuthDomain: "d", ProjectID: "p"}, false},
		{"missing auth domain", Config{APIKey: "k", ProjectID: "p"}, false},
		{"missing project", Config{APIKey: "k", AuthDomain: "d"}, false},
		{"empty", Config{}, false},
		{"only pass-through values", Config{StorageBucket: "b", MessagingSenderID: "m", AppID: "a"}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.enabled, tc.cfg.BackendEnabled())
		})
	}
}

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{
		"FIREBASE_API_KEY", "FIREBASE_AUTH_DOMAIN", "FIREBASE_PROJECT_ID",
		"PORT", "ALLOWED_ORIGINS", "ORDER_SAVE_BEST_EFFORT",
	} {
		t.Setenv(key, "x") // register cleanup, then clear
		os.Unsetenv(key)
	}

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.True(t, cfg.OrderSaveBestEffort)
	assert.False(t, cfg.BackendEnabled())
}

func TestLoadDerivesBucketFromProject(t *testing.T) {
	t.Setenv("FIREBASE_PROJECT_ID", "tableside-demo")
	t.Setenv("FIREBASE_STORAGE_BUCKET", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "tableside-demo.appspot.com", cfg.StorageBucket)
}

func TestOrigins(t *testing.T) {
	cfg := Config{AllowedOrigins: " https://pos.example.com , http://localhost:3000 ,,"}
	assert.Equal(t,
		[]string{"https://pos.example.com", "http://localhost:3000"},
		cfg.Origins())
}
