package config

import (
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Port != "8080" {
		t.Errorf("Expected port 8080, got %s", cfg.Port)
	}
	if cfg.StorageDriver != DriverSQLite {
		t.Errorf("Expected sqlite driver, got %s", cfg.StorageDriver)
	}
	if cfg.SessionTTL != 24*time.Hour {
		t.Errorf("Expected 24h session TTL, got %v", cfg.SessionTTL)
	}
	if cfg.DefaultLocale != "en" {
		t.Errorf("Expected default locale en, got %s", cfg.DefaultLocale)
	}
	if len(cfg.SupportedLocales) != 3 {
		t.Errorf("Expected 3 supported locales, got %v", cfg.SupportedLocales)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Expected defaults to validate, got %v", err)
	}
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("STORAGE_DRIVER", " Memory ")
	t.Setenv("SESSION_TTL", "2h")
	t.Setenv("SUPPORTED_LOCALES", "en, es ,,de")
	t.Setenv("DEFAULT_LOCALE", "es")
	t.Setenv("RATE_LIMIT_MUTATIONS", "2.5")
	t.Setenv("LOG_LEVEL", "SILENT")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Port != "9090" {
		t.Errorf("Expected port 9090, got %s", cfg.Port)
	}
	if cfg.StorageDriver != DriverMemory {
		t.Errorf("Expected memory driver, got %s", cfg.StorageDriver)
	}
	if cfg.SessionTTL != 2*time.Hour {
		t.Errorf("Expected 2h, got %v", cfg.SessionTTL)
	}
	want := []string{"en", "es", "de"}
	if len(cfg.SupportedLocales) != len(want) {
		t.Fatalf("Expected %v, got %v", want, cfg.SupportedLocales)
	}
	for i := range want {
		if cfg.SupportedLocales[i] != want[i] {
			t.Errorf("Expected %v, got %v", want, cfg.SupportedLocales)
		}
	}
	if cfg.MutationLimit() != 2.5 {
		t.Errorf("Expected rate 2.5, got %v", cfg.MutationLimit())
	}
	if !cfg.Silent() {
		t.Error("Expected silent logging")
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{"Unknown driver", "STORAGE_DRIVER", "postgres"},
		{"Default locale not supported", "DEFAULT_LOCALE", "fr"},
		{"Bad duration", "SESSION_TTL", "forever"},
		{"Zero burst", "RATE_LIMIT_BURST", "0"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv(tc.key, tc.val)
			if _, err := Load(); err == nil {
				t.Errorf("Expected error for %s=%s", tc.key, tc.val)
			}
		})
	}
}

func TestParseList(t *testing.T) {
	got := parseList([]string{" a ", "", "b", "  "})
	if len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Errorf("Expected [a b], got %v", got)
	}
}
