// Package config provides configuration management for the application.
package config

import (
	"fmt"

	"github.com/spf13/viper"
)

type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	Database   DatabaseConfig   `mapstructure:"database"`
	Redis      RedisConfig      `mapstructure:"redis"`
	Transport  TransportConfig  `mapstructure:"transport"`
	Session    SessionConfig    `mapstructure:"session"`
	Campaign   CampaignConfig   `mapstructure:"campaign"`
	Dispatch   DispatchConfig   `mapstructure:"dispatch"`
	Middleware MiddlewareConfig `mapstructure:"middleware"`
	Auth       AuthConfig       `mapstructure:"auth"`
}

// AuthConfig holds the shared key the CRUD layer uses to call this service.
type AuthConfig struct {
	ServiceKey string `mapstructure:"service_key"`
}

type ServerConfig struct {
	Port         string `mapstructure:"port"`
	ReadTimeout  int    `mapstructure:"read_timeout"`
	WriteTimeout int    `mapstructure:"write_timeout"`
}

type DatabaseConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	DBName   string `mapstructure:"dbname"`
	SSLMode  string `mapstructure:"sslmode"`
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// TransportConfig selects and configures the messaging transport backend.
// Mode is either "relay" (external workflow webhook) or "direct" (embedded
// provider client).
type TransportConfig struct {
	Mode           string               `mapstructure:"mode"`
	Relay          RelayConfig          `mapstructure:"relay"`
	CircuitBreaker CircuitBreakerConfig `mapstructure:"circuit_breaker"`
}

type RelayConfig struct {
	URL     string `mapstructure:"url"`
	AuthKey string `mapstructure:"auth_key"`
	Timeout int    `mapstructure:"timeout"`
}

type CircuitBreakerConfig struct {
	MaxRequests      uint32  `mapstructure:"max_requests"`
	Interval         int     `mapstructure:"interval"`
	Timeout          int     `mapstructure:"timeout"`
	FailureRatio     float64 `mapstructure:"failure_ratio"`
	ConsecutiveFails uint32  `mapstructure:"consecutive_fails"`
}

type SessionConfig struct {
	// QRTimeoutMinutes expires a session stuck in qr_needed/authenticating
	// back to disconnected.
	QRTimeoutMinutes int    `mapstructure:"qr_timeout_minutes"`
	StoreDSN         string `mapstructure:"store_dsn"`
	StatusCacheTTL   int    `mapstructure:"status_cache_ttl"`
}

type CampaignConfig struct {
	DefaultIntervalMin int `mapstructure:"default_interval_min"`
	DefaultIntervalMax int `mapstructure:"default_interval_max"`
}

type DispatchConfig struct {
	IntervalMinutes int `mapstructure:"interval_minutes"`
	BatchSize       int `mapstructure:"batch_size"`
}

type MiddlewareConfig struct {
	RateLimit      int      `mapstructure:"rate_limit"`
	RateLimitBurst int      `mapstructure:"rate_limit_burst"`
	EnableCORS     bool     `mapstructure:"enable_cors"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

func LoadConfig(configPath string) (*Config, error) {
	viper.SetConfigFile(configPath)
	viper.SetConfigType("yaml")

	viper.SetDefault("server.port", "8080")
	viper.SetDefault("server.read_timeout", 10)
	viper.SetDefault("server.write_timeout", 10)
	viper.SetDefault("database.sslmode", "disable")
	viper.SetDefault("redis.db", 0)
	viper.SetDefault("transport.mode", "relay")
	viper.SetDefault("transport.relay.timeout", 30)
	viper.SetDefault("transport.circuit_breaker.max_requests", 3)
	viper.SetDefault("transport.circuit_breaker.interval", 60)
	viper.SetDefault("transport.circuit_breaker.timeout", 60)
	viper.SetDefault("transport.circuit_breaker.failure_ratio", 0.6)
	viper.SetDefault("transport.circuit_breaker.consecutive_fails", 5)
	viper.SetDefault("session.qr_timeout_minutes", 5)
	viper.SetDefault("session.status_cache_ttl", 10)
	viper.SetDefault("campaign.default_interval_min", 30)
	viper.SetDefault("campaign.default_interval_max", 90)
	viper.SetDefault("dispatch.interval_minutes", 2)
	viper.SetDefault("dispatch.batch_size", 50)
	viper.SetDefault("middleware.rate_limit", 100)
	viper.SetDefault("middleware.rate_limit_burst", 1000)
	viper.SetDefault("middleware.enable_cors", true)
	viper.SetDefault("middleware.allowed_origins", []string{"*"})

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	viper.AutomaticEnv()

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &config, nil
}

// GetDSN returns PostgreSQL connection string.
func (d *DatabaseConfig) GetDSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}
