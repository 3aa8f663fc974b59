package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for our application
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Redis     RedisConfig     `mapstructure:"redis"`
	Gateway   GatewayConfig   `mapstructure:"gateway"`
	Scheduler SchedulerConfig `mapstructure:"scheduler"`
	Logging   LoggingConfig   `mapstructure:"logging"`
	Billing   BillingConfig   `mapstructure:"billing"`
	Health    HealthConfig    `mapstructure:"health"`
}

type ServerConfig struct {
	Port         string `mapstructure:"SERVER_PORT"`
	Host         string `mapstructure:"SERVER_HOST"`
	Env          string `mapstructure:"ENV"`
	ReadTimeout  string `mapstructure:"SERVER_READ_TIMEOUT"`
	WriteTimeout string `mapstructure:"SERVER_WRITE_TIMEOUT"`
}

type DatabaseConfig struct {
	Host            string `mapstructure:"DATABASE_HOST"`
	Port            string `mapstructure:"DATABASE_PORT"`
	Name            string `mapstructure:"DATABASE_NAME"`
	User            string `mapstructure:"DATABASE_USER"`
	Password        string `mapstructure:"DATABASE_PASSWORD"`
	SSLMode         string `mapstructure:"DATABASE_SSLMODE"`
	MaxOpenConns    int    `mapstructure:"DATABASE_MAX_OPEN_CONNS"`
	MaxIdleConns    int    `mapstructure:"DATABASE_MAX_IDLE_CONNS"`
	ConnMaxLifetime string `mapstructure:"DATABASE_CONN_MAX_LIFETIME"`
}

type RedisConfig struct {
	Host     string `mapstructure:"REDIS_HOST"`
	Port     string `mapstructure:"REDIS_PORT"`
	Password string `mapstructure:"REDIS_PASSWORD"`
	DB       int    `mapstructure:"REDIS_DB"`
}

// GatewayConfig carries the payment gateway credentials. KeyID is the public
// key handed to the checkout frontend; KeySecret signs webhook callbacks and
// must never leave the process.
type GatewayConfig struct {
	Provider  string `mapstructure:"GATEWAY_PROVIDER"`
	KeyID     string `mapstructure:"GATEWAY_KEY_ID"`
	KeySecret string `mapstructure:"GATEWAY_KEY_SECRET"`
	BaseURL   string `mapstructure:"GATEWAY_BASE_URL"`
	Timeout   string `mapstructure:"GATEWAY_TIMEOUT"`
}

type SchedulerConfig struct {
	ReminderSpec string `mapstructure:"SCHEDULER_REMINDER_SPEC"`
	Timezone     string `mapstructure:"SCHEDULER_TIMEZONE"`
}

type LoggingConfig struct {
	Level  string `mapstructure:"LOG_LEVEL"`
	Format string `mapstructure:"LOG_FORMAT"`
}

type BillingConfig struct {
	Currency       string `mapstructure:"BILLING_CURRENCY"`
	ReplayGuardTTL string `mapstructure:"BILLING_REPLAY_GUARD_TTL"`
}

type HealthConfig struct {
	Timeout string `mapstructure:"HEALTH_CHECK_TIMEOUT"`
}

// Load reads configuration from environment variables and files
func Load() (*Config, error) {
	// Set defaults
	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("SERVER_HOST", "0.0.0.0")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("SERVER_READ_TIMEOUT", "15s")
	viper.SetDefault("SERVER_WRITE_TIMEOUT", "15s")
	viper.SetDefault("DATABASE_HOST", "localhost")
	viper.SetDefault("DATABASE_PORT", "5432")
	viper.SetDefault("DATABASE_NAME", "societydb")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_SSLMODE", "disable")
	viper.SetDefault("DATABASE_MAX_OPEN_CONNS", 25)
	viper.SetDefault("DATABASE_MAX_IDLE_CONNS", 5)
	viper.SetDefault("DATABASE_CONN_MAX_LIFETIME", "5m")
	viper.SetDefault("REDIS_HOST", "localhost")
	viper.SetDefault("REDIS_PORT", "6379")
	viper.SetDefault("REDIS_DB", 0)
	viper.SetDefault("GATEWAY_PROVIDER", "razorpay")
	viper.SetDefault("GATEWAY_BASE_URL", "https://api.razorpay.com/v1")
	viper.SetDefault("GATEWAY_TIMEOUT", "30s")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("LOG_FORMAT", "json")
	viper.SetDefault("BILLING_CURRENCY", "INR")
	viper.SetDefault("BILLING_REPLAY_GUARD_TTL", "24h")
	viper.SetDefault("SCHEDULER_REMINDER_SPEC", "0 0 9 * * *")
	viper.SetDefault("SCHEDULER_TIMEZONE", "Asia/Kolkata")
	viper.SetDefault("HEALTH_CHECK_TIMEOUT", "5s")

	// Read from environment variables
	viper.AutomaticEnv()

	// Try to read from .env file (optional)
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./deployments")

	// Don't fail if .env file doesn't exist
	_ = viper.ReadInConfig()

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	// Validate configuration
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("SERVER_PORT is required")
	}

	if c.Database.Name == "" {
		return fmt.Errorf("DATABASE_NAME is required")
	}

	if c.Gateway.Provider == "razorpay" {
		if c.Gateway.KeyID == "" || c.Gateway.KeySecret == "" {
			return fmt.Errorf("GATEWAY_KEY_ID and GATEWAY_KEY_SECRET are required for the razorpay provider")
		}
	}

	if c.Billing.Currency == "" {
		return fmt.Errorf("BILLING_CURRENCY is required")
	}

	if _, err := time.ParseDuration(c.Gateway.Timeout); err != nil {
		return fmt.Errorf("GATEWAY_TIMEOUT must be a valid duration: %w", err)
	}

	if _, err := time.ParseDuration(c.Billing.ReplayGuardTTL); err != nil {
		return fmt.Errorf("BILLING_REPLAY_GUARD_TTL must be a valid duration: %w", err)
	}

	if _, err := time.ParseDuration(c.Health.Timeout); err != nil {
		return fmt.Errorf("HEALTH_CHECK_TIMEOUT must be a valid duration: %w", err)
	}

	return nil
}

// IsDevelopment returns true if running in development environment
func (c *Config) IsDevelopment() bool {
	return c.Server.Env == "development" || c.Server.Env == "dev"
}

// IsProduction returns true if running in production environment
func (c *Config) IsProduction() bool {
	return c.Server.Env == "production" || c.Server.Env == "prod"
}

// DSN returns the Postgres connection string
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
}

// GetConnMaxLifetime returns the connection max lifetime as duration
func (c *DatabaseConfig) GetConnMaxLifetime() time.Duration {
	d, _ := time.ParseDuration(c.ConnMaxLifetime)
	return d
}

// GetReadTimeout returns the server read timeout as duration
func (c *ServerConfig) GetReadTimeout() time.Duration {
	d, _ := time.ParseDuration(c.ReadTimeout)
	return d
}

// GetWriteTimeout returns the server write timeout as duration
func (c *ServerConfig) GetWriteTimeout() time.Duration {
	d, _ := time.ParseDuration(c.WriteTimeout)
	return d
}

// GetGatewayTimeout returns the gateway HTTP timeout as duration
func (c *Config) GetGatewayTimeout() time.Duration {
	d, _ := time.ParseDuration(c.Gateway.Timeout)
	return d
}

// GetReplayGuardTTL returns how long verified payment ids are remembered
func (c *Config) GetReplayGuardTTL() time.Duration {
	d, _ := time.ParseDuration(c.Billing.ReplayGuardTTL)
	return d
}

// GetHealthTimeout returns the health check timeout as duration
func (c *Config) GetHealthTimeout() time.Duration {
	d, _ := time.ParseDuration(c.Health.Timeout)
	return d
}
