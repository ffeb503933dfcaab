package app

import (
	"strings"
	"testing"
	"time"

	"github.com/caarlos0/env/v11"
)

func TestParseConfigDefaults(t *testing.T) {
	cfg, err := parseConfig(env.Options{Environment: map[string]string{
		"JWT_SECRET_KEY": "s3cret",
	}})
	if err != nil {
		t.Fatalf("parseConfig: %v", err)
	}
	if cfg.Address() != ":8080" {
		t.Fatalf("address=%q", cfg.Address())
	}
	if cfg.JWTExpiresIn != 24*time.Hour {
		t.Fatalf("JWTExpiresIn=%v", cfg.JWTExpiresIn)
	}
	if cfg.DBDriver != "postgres" || cfg.Postgres.Port != "5432" {
		t.Fatalf("db defaults: %+v", cfg)
	}
	if cfg.Redis.Addr != "" {
		t.Fatalf("redis should be off by default: %+v", cfg.Redis)
	}
	if !cfg.MetricsEnabled || cfg.Otel.Enabled {
		t.Fatalf("metrics=%v otel=%v", cfg.MetricsEnabled, cfg.Otel.Enabled)
	}
}

func TestParseConfigOverrides(t *testing.T) {
	cfg, err := parseConfig(env.Options{Environment: map[string]string{
		"JWT_SECRET_KEY":       "s3cret",
		"JWT_EXPIRES_IN":       "90m",
		"PORT":                 "9000",
		"DB_DRIVER":            " SQLite ",
		"SQLITE_PATH":          ":memory:",
		"REDIS_ADDR":           "redis:6379",
		"REDIS_DB":             "2",
		"CORS_ALLOWED_ORIGINS": "https://a.example.com,https://b.example.com",
		"OTEL_ENABLED":         "true",
		"OTEL_SAMPLE_RATIO":    "0.25",
	}})
	if err != nil {
		t.Fatalf("parseConfig: %v", err)
	}
	if cfg.JWTExpiresIn != 90*time.Minute || cfg.Address() != ":9000" {
		t.Fatalf("jwt/port: %v %q", cfg.JWTExpiresIn, cfg.Address())
	}
	if cfg.DBDriver != "sqlite" || cfg.SQLitePath != ":memory:" {
		t.Fatalf("sqlite: %q %q", cfg.DBDriver, cfg.SQLitePath)
	}
	if cfg.Redis.Addr != "redis:6379" || cfg.Redis.DB != 2 {
		t.Fatalf("redis: %+v", cfg.Redis)
	}
	if len(cfg.CORSAllowedOrigins) != 2 || cfg.CORSAllowedOrigins[1] != "https://b.example.com" {
		t.Fatalf("origins: %v", cfg.CORSAllowedOrigins)
	}
	if o := cfg.Otel.toObservability(); !o.Enabled || o.SampleRatio != 0.25 || o.ServiceName != "neurobridge-lms" {
		t.Fatalf("otel: %+v", o)
	}
}

func TestParseConfigRejects(t *testing.T) {
	cases := []struct {
		name string
		env  map[string]string
		want string
	}{
		{"missing secret", map[string]string{}, "JWT_SECRET_KEY"},
		{"bad driver", map[string]string{"JWT_SECRET_KEY": "x", "DB_DRIVER": "mongo"}, "DB_DRIVER"},
		{"negative ttl", map[string]string{"JWT_SECRET_KEY": "x", "JWT_EXPIRES_IN": "-1h"}, "JWT_EXPIRES_IN"},
		{"unparseable ttl", map[string]string{"JWT_SECRET_KEY": "x", "JWT_EXPIRES_IN": "soon"}, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := parseConfig(env.Options{Environment: tc.env})
			if err == nil {
				t.Fatalf("expected error")
			}
			if tc.want != "" && !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("error %q does not mention %s", err, tc.want)
			}
		})
	}
}

func TestNewWithConfigSQLite(t *testing.T) {
	cfg, err := parseConfig(env.Options{Environment: map[string]string{
		"JWT_SECRET_KEY": "s3cret",
		"DB_DRIVER":      "sqlite",
		"SQLITE_PATH":    ":memory:",
		"LOG_MODE":       "test",
	}})
	if err != nil {
		t.Fatalf("parseConfig: %v", err)
	}
	a, err := NewWithConfig(t.Context(), cfg)
	if err != nil {
		t.Fatalf("NewWithConfig: %v", err)
	}
	defer a.Close()

	if a.Server == nil || a.Services.Auth == nil || a.Metrics == nil {
		t.Fatalf("app not fully wired: %+v", a)
	}
	if a.Redis != nil {
		t.Fatalf("redis should be nil without REDIS_ADDR")
	}
}
