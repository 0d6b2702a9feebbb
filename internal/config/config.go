package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config structure represents the application configuration
type Config struct {
	Server struct {
		Port string `yaml:"port" env:"SERVER_PORT"`
		Mode string `yaml:"mode" env:"SERVER_MODE"`
	} `yaml:"server"`

	Database struct {
		Host            string `yaml:"host" env:"DB_HOST"`
		Port            string `yaml:"port" env:"DB_PORT"`
		User            string `yaml:"user" env:"DB_USER"`
		Password        string `yaml:"password" env:"DB_PASSWORD"`
		DBName          string `yaml:"dbname" env:"DB_NAME"`
		SSLMode         string `yaml:"sslmode" env:"DB_SSLMODE"`
		MaxIdleConns    int    `yaml:"max_idle_conns" env:"DB_MAX_IDLE_CONNS"`
		MaxOpenConns    int    `yaml:"max_open_conns" env:"DB_MAX_OPEN_CONNS"`
		ConnMaxLifetime string `yaml:"conn_max_lifetime" env:"DB_CONN_MAX_LIFETIME"`
	} `yaml:"database"`

	// Identity describes how tokens minted by the external identity provider
	// are verified. The API never issues tokens itself.
	Identity struct {
		JWTSecret string `yaml:"jwt_secret" env:"IDENTITY_JWT_SECRET"`
		Issuer    string `yaml:"issuer" env:"IDENTITY_ISSUER"`
		// WebhookSecret keys the HMAC signature on provider webhook
		// deliveries. Unset means the webhook endpoint rejects everything.
		WebhookSecret string `yaml:"webhook_secret" env:"IDENTITY_WEBHOOK_SECRET"`
	} `yaml:"identity"`

	Notification struct {
		SendGridKey string `yaml:"sendgrid_key" env:"SENDGRID_API_KEY"`
		FromName    string `yaml:"from_name" env:"NOTIFICATION_FROM_NAME"`
		FromEmail   string `yaml:"from_email" env:"NOTIFICATION_FROM_EMAIL"`
	} `yaml:"notification"`

	GenAI struct {
		APIKey  string `yaml:"api_key" env:"GEMINI_API_KEY"`
		Model   string `yaml:"model" env:"GEMINI_MODEL"`
		BaseURL string `yaml:"base_url" env:"GEMINI_BASE_URL"`
	} `yaml:"genai"`

	Logging struct {
		Level  string `yaml:"level" env:"LOG_LEVEL"`
		Format string `yaml:"format" env:"LOG_FORMAT"`
	} `yaml:"logging"`
}

// LoadConfig loads configuration from a file and environment variables
func LoadConfig(configPath string) (*Config, error) {
	config := &Config{}
	setDefaults(config)

	// Config file is optional; env vars can carry everything.
	if _, err := os.Stat(configPath); err == nil {
		file, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		if err := yaml.Unmarshal(file, config); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	if err := processStructFields(config); err != nil {
		return nil, fmt.Errorf("failed to load from environment: %w", err)
	}

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// setDefaults sets default values for the configuration
func setDefaults(config *Config) {
	config.Server.Port = "8080"
	config.Server.Mode = "development"

	config.Database.Host = "localhost"
	config.Database.Port = "5432"
	config.Database.User = "postgres"
	config.Database.Password = "postgres"
	config.Database.DBName = "skillbridge"
	config.Database.SSLMode = "disable"
	config.Database.MaxIdleConns = 5
	config.Database.MaxOpenConns = 20
	config.Database.ConnMaxLifetime = "1h"

	config.Identity.Issuer = "skillbridge.app"

	config.Notification.FromName = "SkillBridge"
	config.Notification.FromEmail = "no-reply@skillbridge.app"

	config.GenAI.Model = "gemini-2.5-flash"
	config.GenAI.BaseURL = "https://generativelanguage.googleapis.com"

	config.Logging.Level = "info"
	config.Logging.Format = "json"
}

// validateConfig ensures that the configuration is valid
func validateConfig(config *Config) error {
	if config.Database.Host == "" {
		return fmt.Errorf("database host is required")
	}

	if config.Database.DBName == "" {
		return fmt.Errorf("database name is required")
	}

	if config.Identity.JWTSecret == "" {
		return fmt.Errorf("identity JWT secret is required")
	}

	return nil
}

// GetPostgresConnectionString returns postgres connection string
func (c *Config) GetPostgresConnectionString() string {
	sslMode := c.Database.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}

	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.DBName,
		sslMode,
	)
}
