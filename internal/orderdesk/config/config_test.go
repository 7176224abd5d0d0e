package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	// A bare environment must still yield a runnable config.
	for _, key := range []string{"PORT", "DB_PATH", "REDIS_ADDR", "TWILIO_ACCOUNT_SID", "TWILIO_AUTH_TOKEN", "TWILIO_FROM_NUMBER", "OWNER_PHONE_NUMBER"} {
		t.Setenv(key, "")
	}

	cfg := Load()
	if cfg.HTTP.Addr != ":3000" {
		t.Errorf("default addr: got %q", cfg.HTTP.Addr)
	}
	if cfg.Database.Path != "orders.db" {
		t.Errorf("default db path: got %q", cfg.Database.Path)
	}
	if cfg.Redis.Addr != "" {
		t.Errorf("redis must default to disabled, got %q", cfg.Redis.Addr)
	}
	if cfg.Twilio.AccountSID != "" || cfg.Twilio.AuthToken != "" {
		t.Error("twilio credentials must default to empty")
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("DB_PATH", "/data/orders.db")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("OWNER_PHONE_NUMBER", "+911234567890")

	cfg := Load()
	if cfg.HTTP.Addr != ":8080" {
		t.Errorf("addr: got %q", cfg.HTTP.Addr)
	}
	if cfg.Database.Path != "/data/orders.db" {
		t.Errorf("db path: got %q", cfg.Database.Path)
	}
	if cfg.Redis.Addr != "localhost:6379" {
		t.Errorf("redis addr: got %q", cfg.Redis.Addr)
	}
	if cfg.Twilio.To != "+911234567890" {
		t.Errorf("owner number: got %q", cfg.Twilio.To)
	}
}
