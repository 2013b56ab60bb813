package bistro

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Name != "Bistro" {
		t.Errorf("Name = %q", cfg.Name)
	}
	if cfg.Addr != ":3000" {
		t.Errorf("Addr = %q", cfg.Addr)
	}
	if !cfg.AnalyticsEnabled {
		t.Error("analytics should default to enabled")
	}
	if cfg.PageCacheTTL != 5*time.Minute {
		t.Errorf("PageCacheTTL = %v", cfg.PageCacheTTL)
	}
	if cfg.AdminEnabled() {
		t.Error("admin should be disabled without a password")
	}
}

func TestLoadConfigFileAndEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "site.yaml")
	yaml := "name: Le Bistro\nurl: https://bistro.example\npage_cache_ttl: 30s\nanalytics_enabled: false\n"
	if err := os.WriteFile(path, []byte(yaml), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("BISTRO_ADDR", ":8080")
	t.Setenv("BISTRO_URL", "https://www.bistro.example")

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Name != "Le Bistro" {
		t.Errorf("Name = %q", cfg.Name)
	}
	if cfg.URL != "https://www.bistro.example" {
		t.Errorf("URL = %q, env should win over the file", cfg.URL)
	}
	if cfg.Addr != ":8080" {
		t.Errorf("Addr = %q", cfg.Addr)
	}
	if cfg.PageCacheTTL != 30*time.Second {
		t.Errorf("PageCacheTTL = %v", cfg.PageCacheTTL)
	}
	if cfg.AnalyticsEnabled {
		t.Error("analytics_enabled: false was ignored")
	}
}

func TestLoadConfigMissingExplicitFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("expected error for a missing explicit config file")
	}
}

func TestValidateRejectsBadURL(t *testing.T) {
	cfg := SiteConfig{URL: "not a url"}
	cfg.setDefaults()

	err := cfg.Validate()
	var ce *ConfigError
	if !errors.As(err, &ce) {
		t.Fatalf("err = %v, want *ConfigError", err)
	}
	if ce.Field != "url" {
		t.Errorf("Field = %q, want url", ce.Field)
	}
}

func TestValidateRequiresSessionSecretWithPassword(t *testing.T) {
	cfg := SiteConfig{AdminPassword: "hunter2"}
	cfg.setDefaults()

	var ce *ConfigError
	if err := cfg.Validate(); !errors.As(err, &ce) || ce.Field != "session_secret" {
		t.Fatalf("err = %v, want session_secret ConfigError", err)
	}

	cfg.SessionSecret = "short"
	if err := cfg.Validate(); !errors.As(err, &ce) || ce.Field != "session_secret" {
		t.Fatalf("err = %v, want session_secret ConfigError for a short secret", err)
	}

	cfg.SessionSecret = testSessionSecret
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}

func TestValidateRejectsUnknownLogLevel(t *testing.T) {
	cfg := SiteConfig{LogLevel: "loud"}
	cfg.setDefaults()

	var ce *ConfigError
	if err := cfg.Validate(); !errors.As(err, &ce) || ce.Field != "log_level" {
		t.Fatalf("err = %v, want log_level ConfigError", err)
	}
}

func TestInitFailsOnInvalidConfig(t *testing.T) {
	app := New(SiteConfig{URL: "::bad"}, Views{})
	var ce *ConfigError
	if err := app.Init(); !errors.As(err, &ce) {
		t.Fatalf("Init err = %v, want *ConfigError", err)
	}
}
