package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Execution modes accepted for APP_ENV.
const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
	EnvTest        = "test"
)

// Database clients accepted for DATABASE_CLIENT.
const (
	ClientSQLite   = "sqlite3"
	ClientPostgres = "pg"
)

// Config holds the application configuration, loaded from environment
// variables at startup.
type Config struct {
	AppEnv         string // Execution mode: development, production or test
	AppPort        string // HTTP listen port
	DatabaseClient string // Store driver selector: sqlite3 or pg
	DatabaseURL    string // SQLite file path or Postgres DSN
	RabbitMQURL    string // Optional; empty disables event publishing
	SessionSecret  string // Optional; non-empty enables signed session cookies
}

// Load reads configuration from the environment and validates it. The process
// is expected to fail fast on any error returned here.
func Load() (*Config, error) {
	v := viper.New()
	v.SetDefault("APP_ENV", EnvProduction)
	v.SetDefault("APP_PORT", "3333")
	v.SetDefault("DATABASE_CLIENT", ClientSQLite)
	v.AutomaticEnv()

	cfg := &Config{
		AppEnv:         v.GetString("APP_ENV"),
		AppPort:        v.GetString("APP_PORT"),
		DatabaseClient: v.GetString("DATABASE_CLIENT"),
		DatabaseURL:    v.GetString("DATABASE_URL"),
		RabbitMQURL:    v.GetString("RABBITMQ_URL"),
		SessionSecret:  v.GetString("SESSION_SECRET"),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.AppEnv {
	case EnvDevelopment, EnvProduction, EnvTest:
	default:
		return fmt.Errorf("invalid APP_ENV %q: must be one of %s, %s or %s",
			c.AppEnv, EnvDevelopment, EnvProduction, EnvTest)
	}

	switch c.DatabaseClient {
	case ClientSQLite, ClientPostgres:
	default:
		return fmt.Errorf("invalid DATABASE_CLIENT %q: must be %s or %s",
			c.DatabaseClient, ClientSQLite, ClientPostgres)
	}

	if c.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL is required")
	}

	if c.AppPort == "" {
		return fmt.Errorf("APP_PORT must not be empty")
	}

	return nil
}
