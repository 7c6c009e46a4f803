package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}
	return path
}

func TestLoadConfigDefaultsWhenMissing(t *testing.T) {
	origDir, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd() failed: %v", err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatalf("Chdir() failed: %v", err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(origDir); err != nil {
			t.Fatalf("Chdir() back failed: %v", err)
		}
	})

	if err := LoadConfig(""); err != nil {
		t.Fatalf("LoadConfig() with no config file should not fail: %v", err)
	}

	if AppConfig.Webhook.TimeoutSeconds != 300 {
		t.Errorf("Default timeout = %d, want 300", AppConfig.Webhook.TimeoutSeconds)
	}
	if AppConfig.Examples.PauseSeconds != 2 {
		t.Errorf("Default pause = %d, want 2", AppConfig.Examples.PauseSeconds)
	}
	if AppConfig.Logging.Level != "info" {
		t.Errorf("Default log level = %q, want 'info'", AppConfig.Logging.Level)
	}
}

func TestLoadConfigExplicitMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope.yaml")
	if err := LoadConfig(path); err == nil {
		t.Error("LoadConfig() with an explicit missing file should fail")
	}
}

func TestLoadConfigMalformedFile(t *testing.T) {
	path := writeConfigFile(t, "webhook: [not: valid")
	if err := LoadConfig(path); err == nil {
		t.Error("LoadConfig() with malformed yaml should fail")
	}
}

func TestLoadConfigValues(t *testing.T) {
	path := writeConfigFile(t, `
webhook:
  url: "https://n8n.example.com/webhook/autonomous-programming"
  timeout_seconds: 60
logging:
  level: "debug"
`)

	if err := LoadConfig(path); err != nil {
		t.Fatalf("LoadConfig() failed: %v", err)
	}

	if AppConfig.Webhook.URL != "https://n8n.example.com/webhook/autonomous-programming" {
		t.Errorf("Webhook URL = %q", AppConfig.Webhook.URL)
	}
	if AppConfig.Webhook.TimeoutSeconds != 60 {
		t.Errorf("Timeout = %d, want 60", AppConfig.Webhook.TimeoutSeconds)
	}
	if AppConfig.Logging.Level != "debug" {
		t.Errorf("Log level = %q, want 'debug'", AppConfig.Logging.Level)
	}
	// Keys the file omits keep their defaults.
	if AppConfig.Examples.PauseSeconds != 2 {
		t.Errorf("Pause = %d, want default 2", AppConfig.Examples.PauseSeconds)
	}
}
