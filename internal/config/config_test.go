package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"SERVER_PORT", "MONGO_URI", "MONGO_DB", "JWT_ACCESS_TTL", "JWT_REFRESH_TTL", "TELEGRAM_BASE_URL"} {
		t.Setenv(key, "")
	}

	cfg := Load()

	if cfg.Server.Port != "8010" {
		t.Errorf("port = %q, want 8010", cfg.Server.Port)
	}
	if cfg.Mongo.URI != "mongodb://localhost:27017" {
		t.Errorf("mongo uri = %q", cfg.Mongo.URI)
	}
	if cfg.Mongo.Database != "cinema" {
		t.Errorf("mongo db = %q", cfg.Mongo.Database)
	}
	if cfg.JWT.AccessTTL != time.Hour {
		t.Errorf("access ttl = %v, want 1h", cfg.JWT.AccessTTL)
	}
	if cfg.JWT.RefreshTTL != 14*24*time.Hour {
		t.Errorf("refresh ttl = %v, want 336h", cfg.JWT.RefreshTTL)
	}
	if cfg.Telegram.BaseURL != "https://api.telegram.org" {
		t.Errorf("telegram base url = %q", cfg.Telegram.BaseURL)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("MONGO_DB", "cinema_test")
	t.Setenv("JWT_ACCESS_TTL", "15m")
	t.Setenv("AWS_USE_SSL", "false")

	cfg := Load()

	if cfg.Server.Port != "9090" {
		t.Errorf("port = %q, want 9090", cfg.Server.Port)
	}
	if cfg.Mongo.Database != "cinema_test" {
		t.Errorf("mongo db = %q", cfg.Mongo.Database)
	}
	if cfg.JWT.AccessTTL != 15*time.Minute {
		t.Errorf("access ttl = %v, want 15m", cfg.JWT.AccessTTL)
	}
	if cfg.MinIO.UseSSL {
		t.Error("AWS_USE_SSL=false not applied")
	}
}

func TestLoadIgnoresBadDuration(t *testing.T) {
	t.Setenv("JWT_ACCESS_TTL", "not-a-duration")

	cfg := Load()
	if cfg.JWT.AccessTTL != time.Hour {
		t.Errorf("access ttl = %v, want the 1h default", cfg.JWT.AccessTTL)
	}
}

func TestValidateRequiresSecrets(t *testing.T) {
	t.Setenv("MONGO_URI", "mongodb://localhost:27017")
	t.Setenv("JWT_SECRET", "")
	t.Setenv("TELEGRAM_BOT_TOKEN", "token")

	cfg := Load()
	if err := cfg.Validate(); err == nil {
		t.Fatal("missing JWT_SECRET accepted")
	}

	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("AWS_ACCESS_KEY_ID", "key")
	t.Setenv("AWS_SECRET_ACCESS_KEY", "secret")

	cfg = Load()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("fully configured Validate: %v", err)
	}
}
