package config

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"
)

// Config holds application level configuration loaded from environment and flags.
type Config struct {
	RunAddress         string
	DatabaseURI        string
	SessionTTL         time.Duration
	SessionSweep       time.Duration
	ResetCodeTTL       time.Duration
	MailGatewayAddress string
	ShutdownTimeout    time.Duration
}

const (
	defaultRunAddress = ":8080"
	// Session expiry is extended by this window on every authorized call.
	defaultSessionTTL      = time.Hour
	defaultSessionSweep    = 10 * time.Minute
	defaultResetCodeTTL    = 15 * time.Minute
	defaultShutdownTimeout = 10 * time.Second
)

// Load parses configuration from flags and environment variables.
func Load() (*Config, error) {
	return load(os.Args[1:], os.LookupEnv)
}

type envLookup func(string) (string, bool)

func load(args []string, lookup envLookup) (*Config, error) {
	cfg := &Config{
		RunAddress:         getString(lookup, "RUN_ADDRESS", defaultRunAddress),
		DatabaseURI:        getString(lookup, "DATABASE_URI", ""),
		SessionTTL:         getDuration(lookup, "SESSION_TTL", defaultSessionTTL),
		SessionSweep:       getDuration(lookup, "SESSION_SWEEP_INTERVAL", defaultSessionSweep),
		ResetCodeTTL:       getDuration(lookup, "RESET_CODE_TTL", defaultResetCodeTTL),
		MailGatewayAddress: getString(lookup, "MAIL_GATEWAY_ADDRESS", ""),
		ShutdownTimeout:    getDuration(lookup, "SHUTDOWN_TIMEOUT", defaultShutdownTimeout),
	}

	fs := flag.NewFlagSet("configstore", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var (
		sessionTTLStr      = cfg.SessionTTL.String()
		sessionSweepStr    = cfg.SessionSweep.String()
		resetCodeTTLStr    = cfg.ResetCodeTTL.String()
		shutdownTimeoutStr = cfg.ShutdownTimeout.String()
	)

	fs.StringVar(&cfg.RunAddress, "a", cfg.RunAddress, "HTTP server listen address")
	fs.StringVar(&cfg.DatabaseURI, "d", cfg.DatabaseURI, "PostgreSQL DSN")
	fs.StringVar(&cfg.MailGatewayAddress, "m", cfg.MailGatewayAddress, "Mail gateway base URL")
	fs.StringVar(&sessionTTLStr, "session-ttl", sessionTTLStr, "Sliding session expiry window")
	fs.StringVar(&sessionSweepStr, "session-sweep", sessionSweepStr, "Interval between expired session purges")
	fs.StringVar(&resetCodeTTLStr, "reset-code-ttl", resetCodeTTLStr, "Password reset code lifetime")
	fs.StringVar(&shutdownTimeoutStr, "shutdown-timeout", shutdownTimeoutStr, "Graceful shutdown timeout")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	var err error

	if cfg.SessionTTL, err = time.ParseDuration(sessionTTLStr); err != nil {
		return nil, fmt.Errorf("invalid session ttl: %w", err)
	}

	if cfg.SessionSweep, err = time.ParseDuration(sessionSweepStr); err != nil {
		return nil, fmt.Errorf("invalid session sweep interval: %w", err)
	}

	if cfg.ResetCodeTTL, err = time.ParseDuration(resetCodeTTLStr); err != nil {
		return nil, fmt.Errorf("invalid reset code ttl: %w", err)
	}

	if cfg.ShutdownTimeout, err = time.ParseDuration(shutdownTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid shutdown timeout: %w", err)
	}

	if cfg.SessionTTL <= 0 {
		cfg.SessionTTL = defaultSessionTTL
	}

	if cfg.SessionSweep <= 0 {
		cfg.SessionSweep = defaultSessionSweep
	}

	if cfg.ResetCodeTTL <= 0 {
		cfg.ResetCodeTTL = defaultResetCodeTTL
	}

	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}

	if cfg.DatabaseURI == "" {
		return nil, fmt.Errorf("database URI must be provided")
	}

	return cfg, nil
}

func getString(lookup envLookup, key, def string) string {
	if v, ok := lookup(key); ok && v != "" {
		return v
	}
	return def
}

func getDuration(lookup envLookup, key string, def time.Duration) time.Duration {
	if v, ok := lookup(key); ok && v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
