package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

// chdirTemp moves the test into an empty directory so no stray .env is picked up.
func chdirTemp(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() { os.Chdir(wd) })
	return dir
}

func TestLoadDefaults(t *testing.T) {
	chdirTemp(t)
	for _, k := range []string{"APP_NAME", "PORT", "LOG_LEVEL", "LOG_FORMAT", "REDIS_URL", "DEFAULT_CURRENCY",
		shutdownSecondsEnvVar, shutdownDurationEnvVar, idemTTLSecondsEnvVar, idemTTLDurEnvVar, rateLimitEnvVar} {
		t.Setenv(k, "")
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.AppName != "WalletSim" || cfg.DefaultCurrency != "CLP" || cfg.LogFormat != "json" {
		t.Fatalf("unexpected defaults %+v", cfg)
	}
	if cfg.ShutdownPeriod != 10*time.Second || cfg.IdempotencyTTL != 24*time.Hour || cfg.RateLimit != 60 {
		t.Fatalf("unexpected durations %+v", cfg)
	}
	if cfg.RedisURL != "" {
		t.Fatalf("redis must be optional, got %q", cfg.RedisURL)
	}
	if cfg.Address() != ":8080" {
		t.Fatalf("unexpected address %s", cfg.Address())
	}
}

func TestLoadOverrides(t *testing.T) {
	chdirTemp(t)
	t.Setenv("PORT", ":9090")
	t.Setenv("DEFAULT_CURRENCY", "usd")
	t.Setenv("LOG_FORMAT", "TEXT")
	t.Setenv(shutdownSecondsEnvVar, "")
	t.Setenv(shutdownDurationEnvVar, "3s")
	t.Setenv(idemTTLSecondsEnvVar, "90")
	t.Setenv(rateLimitEnvVar, "5")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Address() != ":9090" || cfg.DefaultCurrency != "USD" || cfg.LogFormat != "text" {
		t.Fatalf("unexpected config %+v", cfg)
	}
	if cfg.ShutdownPeriod != 3*time.Second || cfg.IdempotencyTTL != 90*time.Second || cfg.RateLimit != 5 {
		t.Fatalf("unexpected durations %+v", cfg)
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	chdirTemp(t)
	cases := map[string]string{
		"DEFAULT_CURRENCY":   "EURO",
		"LOG_FORMAT":         "xml",
		idemTTLSecondsEnvVar: "soon",
		rateLimitEnvVar:      "-1",
	}
	for key, value := range cases {
		t.Run(key, func(t *testing.T) {
			t.Setenv(key, value)
			if _, err := Load(); err == nil {
				t.Fatalf("expected error for %s=%s", key, value)
			}
		})
	}
}

func TestLoadReadsDotEnv(t *testing.T) {
	dir := chdirTemp(t)
	t.Setenv("APP_NAME", "")
	os.Unsetenv("APP_NAME")
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte("APP_NAME=FromFile\n"), 0o600); err != nil {
		t.Fatalf("write .env: %v", err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.AppName != "FromFile" {
		t.Fatalf("expected app name from .env, got %q", cfg.AppName)
	}
}
