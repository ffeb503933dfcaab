package app

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/yungbote/neurobridge-lms/internal/data/db"
	"github.com/yungbote/neurobridge-lms/internal/observability"
)

type Config struct {
	Port            string        `env:"PORT" envDefault:"8080"`
	LogMode         string        `env:"LOG_MODE" envDefault:"development"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"15s"`

	DBDriver   string `env:"DB_DRIVER" envDefault:"postgres"`
	Postgres   PostgresConfig
	SQLitePath string `env:"SQLITE_PATH" envDefault:"neurobridge-lms.db"`

	JWTSecretKey string        `env:"JWT_SECRET_KEY"`
	JWTExpiresIn time.Duration `env:"JWT_EXPIRES_IN" envDefault:"24h"`

	Redis RedisConfig

	CORSAllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:","`

	MetricsEnabled bool `env:"METRICS_ENABLED" envDefault:"true"`
	Otel           OtelConfig
}

type PostgresConfig struct {
	Host     string `env:"POSTGRES_HOST" envDefault:"localhost"`
	Port     string `env:"POSTGRES_PORT" envDefault:"5432"`
	User     string `env:"POSTGRES_USER" envDefault:"postgres"`
	Password string `env:"POSTGRES_PASSWORD"`
	Name     string `env:"POSTGRES_NAME" envDefault:"neurobridge_lms"`
	SSLMode  string `env:"POSTGRES_SSLMODE" envDefault:"disable"`
}

type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB" envDefault:"0"`
}

type OtelConfig struct {
	Enabled     bool    `env:"OTEL_ENABLED" envDefault:"false"`
	ServiceName string  `env:"OTEL_SERVICE_NAME" envDefault:"neurobridge-lms"`
	Environment string  `env:"OTEL_ENV" envDefault:"development"`
	Version     string  `env:"OTEL_SERVICE_VERSION"`
	Endpoint    string  `env:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	Headers     string  `env:"OTEL_EXPORTER_OTLP_HEADERS"`
	Insecure    bool    `env:"OTEL_EXPORTER_OTLP_INSECURE" envDefault:"false"`
	SampleRatio float64 `env:"OTEL_SAMPLE_RATIO" envDefault:"1"`
}

// LoadConfig reads .env when present, then the process environment.
func LoadConfig() (Config, error) {
	_ = godotenv.Load()
	return parseConfig(env.Options{})
}

func parseConfig(opts env.Options) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	cfg.DBDriver = strings.ToLower(strings.TrimSpace(cfg.DBDriver))
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	var errs []error
	if strings.TrimSpace(c.JWTSecretKey) == "" {
		errs = append(errs, errors.New("JWT_SECRET_KEY is required"))
	}
	if c.JWTExpiresIn <= 0 {
		errs = append(errs, errors.New("JWT_EXPIRES_IN must be positive"))
	}
	switch c.DBDriver {
	case "postgres", "sqlite":
	default:
		errs = append(errs, fmt.Errorf("DB_DRIVER must be postgres or sqlite, got %q", c.DBDriver))
	}
	if c.ShutdownTimeout <= 0 {
		errs = append(errs, errors.New("SHUTDOWN_TIMEOUT must be positive"))
	}
	return errors.Join(errs...)
}

func (c Config) Address() string {
	return ":" + strings.TrimPrefix(strings.TrimSpace(c.Port), ":")
}

func (c PostgresConfig) toDB() db.PostgresConfig {
	return db.PostgresConfig{
		Host:     c.Host,
		Port:     c.Port,
		User:     c.User,
		Password: c.Password,
		Name:     c.Name,
		SSLMode:  c.SSLMode,
	}
}

func (c OtelConfig) toObservability() observability.OtelConfig {
	return observability.OtelConfig{
		Enabled:     c.Enabled,
		ServiceName: c.ServiceName,
		Environment: c.Environment,
		Version:     c.Version,
		Endpoint:    c.Endpoint,
		Insecure:    c.Insecure,
		Headers:     observability.ParseHeaders(c.Headers),
		SampleRatio: c.SampleRatio,
	}
}
