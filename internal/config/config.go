// Package config, servisin tüm ayarlarını environment variable'lardan ve
// (varsa) .env dosyasından okur. Değerler main'de bir kez yüklenir ve
// constructor'lara açıkça geçirilir.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Defaults DefaultsConfig
	Log      LogConfig
	Alerts   AlertsConfig
}

type ServerConfig struct {
	Host string
	Port int
}

type DatabaseConfig struct {
	Driver      string // "sqlite" | "postgres"
	Path        string // sqlite file (ör: ./data/ux_metrics.db)
	PostgresDSN string
}

// DefaultsConfig holds the metric name and scope used when a caller omits them.
type DefaultsConfig struct {
	MetricName string
	Scope      string
}

type LogConfig struct {
	Level  string // debug | info | warn | error
	Format string // json | console
}

// AlertsConfig controls the high-frustration email notification.
type AlertsConfig struct {
	Enabled      bool
	ResendAPIKey string
	From         string
	To           []string
	Threshold    float64 // percent of sessions
}

// Load builds a Config from the environment. A missing .env file is not an error.
func Load() (*Config, error) {
	_ = godotenv.Load()

	port, err := strconv.Atoi(getEnv("SERVER_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid SERVER_PORT: %w", err)
	}

	alertsEnabled, err := strconv.ParseBool(getEnv("ALERTS_ENABLED", "false"))
	if err != nil {
		return nil, fmt.Errorf("invalid ALERTS_ENABLED: %w", err)
	}

	threshold, err := strconv.ParseFloat(getEnv("FRUSTRATION_THRESHOLD", "20.0"), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid FRUSTRATION_THRESHOLD: %w", err)
	}

	cfg := &Config{
		Server: ServerConfig{
			Host: getEnv("SERVER_HOST", "0.0.0.0"),
			Port: port,
		},
		Database: DatabaseConfig{
			Driver:      strings.ToLower(getEnv("DATABASE_DRIVER", DriverSQLite)),
			Path:        getEnv("DATABASE_PATH", "./data/ux_metrics.db"),
			PostgresDSN: getEnv("POSTGRES_DSN", ""),
		},
		Defaults: DefaultsConfig{
			MetricName: getEnv("DEFAULT_METRIC_NAME", "Traffic"),
			Scope:      getEnv("DEFAULT_SCOPE", "general"),
		},
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
		Alerts: AlertsConfig{
			Enabled:      alertsEnabled,
			ResendAPIKey: getEnv("RESEND_API_KEY", ""),
			From:         getEnv("ALERT_FROM", ""),
			To:           splitList(getEnv("ALERT_TO", "")),
			Threshold:    threshold,
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.Database.Driver {
	case DriverSQLite:
		if c.Database.Path == "" {
			return errors.New("DATABASE_PATH is required for the sqlite driver")
		}
	case DriverPostgres:
		if c.Database.PostgresDSN == "" {
			return errors.New("POSTGRES_DSN is required for the postgres driver")
		}
	default:
		return fmt.Errorf("unsupported DATABASE_DRIVER %q", c.Database.Driver)
	}

	if c.Defaults.Scope != "general" && c.Defaults.Scope != "page" {
		return fmt.Errorf("invalid DEFAULT_SCOPE %q (expected general or page)", c.Defaults.Scope)
	}
	if c.Defaults.MetricName == "" {
		return errors.New("DEFAULT_METRIC_NAME must not be empty")
	}

	if c.Alerts.Threshold < 0 {
		return fmt.Errorf("FRUSTRATION_THRESHOLD must be >= 0, got %v", c.Alerts.Threshold)
	}
	if c.Alerts.Enabled {
		if c.Alerts.ResendAPIKey == "" {
			return errors.New("RESEND_API_KEY is required when ALERTS_ENABLED=true")
		}
		if c.Alerts.From == "" || len(c.Alerts.To) == 0 {
			return errors.New("ALERT_FROM and ALERT_TO are required when ALERTS_ENABLED=true")
		}
	}
	return nil
}

// Addr, HTTP server'ın dinleyeceği adres (ör: "0.0.0.0:8080").
func (c *ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

func getEnv(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok {
		return val
	}
	return fallback
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
