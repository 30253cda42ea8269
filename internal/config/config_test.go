package config

import (
	"testing"
	"time"
)

func lookupFrom(env map[string]string) envLookup {
	return func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := load(nil, lookupFrom(map[string]string{
		"DATABASE_URI": "postgres://localhost/configstore",
	}))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.RunAddress != defaultRunAddress {
		t.Fatalf("unexpected run address: %s", cfg.RunAddress)
	}
	if cfg.SessionTTL != time.Hour {
		t.Fatalf("unexpected session ttl: %s", cfg.SessionTTL)
	}
	if cfg.SessionSweep != defaultSessionSweep {
		t.Fatalf("unexpected sweep interval: %s", cfg.SessionSweep)
	}
	if cfg.ResetCodeTTL != defaultResetCodeTTL {
		t.Fatalf("unexpected reset code ttl: %s", cfg.ResetCodeTTL)
	}
}

func TestLoadMissingDatabase(t *testing.T) {
	if _, err := load(nil, lookupFrom(nil)); err == nil {
		t.Fatal("expected error without database URI")
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	cfg, err := load(nil, lookupFrom(map[string]string{
		"DATABASE_URI":         "postgres://localhost/configstore",
		"RUN_ADDRESS":          ":9090",
		"SESSION_TTL":          "30m",
		"MAIL_GATEWAY_ADDRESS": "http://mail.local",
	}))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.RunAddress != ":9090" {
		t.Fatalf("unexpected run address: %s", cfg.RunAddress)
	}
	if cfg.SessionTTL != 30*time.Minute {
		t.Fatalf("unexpected session ttl: %s", cfg.SessionTTL)
	}
	if cfg.MailGatewayAddress != "http://mail.local" {
		t.Fatalf("unexpected mail gateway: %s", cfg.MailGatewayAddress)
	}
}

func TestLoadFlagOverridesEnv(t *testing.T) {
	cfg, err := load([]string{"-a", ":7070", "-session-ttl", "2h"}, lookupFrom(map[string]string{
		"DATABASE_URI": "postgres://localhost/configstore",
		"RUN_ADDRESS":  ":9090",
	}))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.RunAddress != ":7070" {
		t.Fatalf("flag must win over env, got %s", cfg.RunAddress)
	}
	if cfg.SessionTTL != 2*time.Hour {
		t.Fatalf("unexpected session ttl: %s", cfg.SessionTTL)
	}
}

func TestLoadInvalidDuration(t *testing.T) {
	if _, err := load([]string{"-session-ttl", "soon"}, lookupFrom(map[string]string{
		"DATABASE_URI": "postgres://localhost/configstore",
	})); err == nil {
		t.Fatal("expected error for malformed duration")
	}
}

func TestLoadNonPositiveDurationsFallBack(t *testing.T) {
	cfg, err := load([]string{"-session-ttl", "-5m", "-shutdown-timeout", "0s"}, lookupFrom(map[string]string{
		"DATABASE_URI": "postgres://localhost/configstore",
	}))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.SessionTTL != defaultSessionTTL {
		t.Fatalf("unexpected session ttl: %s", cfg.SessionTTL)
	}
	if cfg.ShutdownTimeout != defaultShutdownTimeout {
		t.Fatalf("unexpected shutdown timeout: %s", cfg.ShutdownTimeout)
	}
}
