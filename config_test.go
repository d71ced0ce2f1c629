package fleeks

import (
	"os"
	"testing"
	"time"
)

func TestLoadConfigFromEnvironment(t *testing.T) {
	t.Setenv("FLEEKS_API_KEY", "env-key")
	t.Setenv("FLEEKS_BASE_URL", "https://staging.fleeks.ai/api/v1/sdk/")
	t.Setenv("FLEEKS_TIMEOUT", "45s")
	t.Setenv("FLEEKS_MAX_RETRIES", "5")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error: %v", err)
	}

	if cfg.APIKey != "env-key" {
		t.Errorf("APIKey = %q", cfg.APIKey)
	}
	if cfg.BaseURL != "https://staging.fleeks.ai/api/v1/sdk/" {
		t.Errorf("BaseURL = %q", cfg.BaseURL)
	}
	if cfg.Timeout != 45*time.Second {
		t.Errorf("Timeout = %v", cfg.Timeout)
	}
	if cfg.MaxRetries != 5 {
		t.Errorf("MaxRetries = %d", cfg.MaxRetries)
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("FLEEKS_API_KEY", "env-key")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error: %v", err)
	}

	if cfg.Timeout != 30*time.Second {
		t.Errorf("Timeout = %v, want 30s", cfg.Timeout)
	}
	if cfg.MaxRetries != 3 {
		t.Errorf("MaxRetries = %d, want 3", cfg.MaxRetries)
	}
	if cfg.Debug {
		t.Error("Debug = true, want false")
	}
}

func TestLoadConfigRequiresAPIKey(t *testing.T) {
	// Setenv registers the restore; the variable itself must be absent.
	t.Setenv("FLEEKS_API_KEY", "placeholder")
	os.Unsetenv("FLEEKS_API_KEY")

	if _, err := LoadConfig(); err == nil {
		t.Fatal("expected error when FLEEKS_API_KEY is unset")
	}
}

func TestNewClientFromEnvNormalizesBaseURL(t *testing.T) {
	t.Setenv("FLEEKS_API_KEY", "env-key")
	t.Setenv("FLEEKS_BASE_URL", "https://staging.fleeks.ai/api/v1/sdk/")

	client, err := NewClientFromEnv()
	if err != nil {
		t.Fatalf("NewClientFromEnv() error: %v", err)
	}

	// The trailing slash from the environment must be stripped.
	if got := client.BaseURL(); got != "https://staging.fleeks.ai/api/v1/sdk" {
		t.Errorf("BaseURL() = %q", got)
	}
}
