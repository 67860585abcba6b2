package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the root configuration structure for AccessHub Core.
// All configuration is loaded from YAML and can be overridden by environment variables.
type Config struct {
	Hotel      HotelConfig      `yaml:"hotel"`
	API        APIConfig        `yaml:"api"`
	WebSocket  WebSocketConfig  `yaml:"websocket"`
	DeviceLink DeviceLinkConfig `yaml:"devicelink"`
	Advisor    AdvisorConfig    `yaml:"advisor"`
	Logging    LoggingConfig    `yaml:"logging"`
	Security   SecurityConfig   `yaml:"security"`
}

// HotelConfig contains property-level information.
type HotelConfig struct {
	ID       string `yaml:"id"`
	Name     string `yaml:"name"`
	Timezone string `yaml:"timezone"`
}

// APIConfig contains HTTP API server settings.
type APIConfig struct {
	Host     string           `yaml:"host"`
	Port     int              `yaml:"port"`
	Timeouts APITimeoutConfig `yaml:"timeouts"`
	CORS     CORSConfig       `yaml:"cors"`
}

// APITimeoutConfig contains HTTP timeout settings in seconds.
type APITimeoutConfig struct {
	Read  int `yaml:"read"`
	Write int `yaml:"write"`
	Idle  int `yaml:"idle"`
}

// CORSConfig contains Cross-Origin Resource Sharing settings.
type CORSConfig struct {
	AllowedOrigins []string `yaml:"allowed_origins"`
	AllowedMethods []string `yaml:"allowed_methods"`
	AllowedHeaders []string `yaml:"allowed_headers"`
}

// WebSocketConfig contains WebSocket server settings.
type WebSocketConfig struct {
	Path           string `yaml:"path"`
	MaxMessageSize int    `yaml:"max_message_size"`
	PingInterval   int    `yaml:"ping_interval"`
	PongTimeout    int    `yaml:"pong_timeout"`
}

// DeviceLinkConfig contains the simulated in-room controller link timings.
// All values are in milliseconds so tests can run with short delays.
type DeviceLinkConfig struct {
	ConnectDelayMS    int `yaml:"connect_delay_ms"`
	DisconnectDelayMS int `yaml:"disconnect_delay_ms"`
	CommandDelayMS    int `yaml:"command_delay_ms"`
}

// AdvisorConfig contains the external room-suggestion service settings.
type AdvisorConfig struct {
	Enabled bool   `yaml:"enabled"`
	URL     string `yaml:"url"`
	APIKey  string `yaml:"api_key"`
	Model   string `yaml:"model"`
	Timeout int    `yaml:"timeout"` // seconds
}

// LoggingConfig contains logging settings.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	Output string `yaml:"output"`
}

// SecurityConfig contains authentication settings.
type SecurityConfig struct {
	JWT JWTConfig `yaml:"jwt"`
}

// JWTConfig contains JWT token settings.
type JWTConfig struct {
	Secret         string `yaml:"secret"`
	AccessTokenTTL int    `yaml:"access_token_ttl"` // minutes
}

// Load reads the configuration from a YAML file, applies environment
// variable overrides, and validates the result.
//
// Environment variables follow the pattern ACCESSHUB_SECTION_KEY.
// For example: ACCESSHUB_API_HOST, ACCESSHUB_JWT_SECRET
//
// Parameters:
//   - path: Path to the YAML configuration file
//
// Returns:
//   - *Config: Loaded and validated configuration
//   - error: If file cannot be read, parsed, or validation fails
func Load(path string) (*Config, error) {
	// Start with defaults
	cfg := defaultConfig()

	// Read and parse YAML file
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	// Apply environment variable overrides
	applyEnvOverrides(cfg)

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// defaultConfig returns a Config with sensible defaults.
func defaultConfig() *Config {
	return &Config{
		Hotel: HotelConfig{
			ID:       "hotel-001",
			Name:     "AccessHub",
			Timezone: "UTC",
		},
		API: APIConfig{
			Host: "0.0.0.0",
			Port: 8080,
			Timeouts: APITimeoutConfig{
				Read:  30,
				Write: 30,
				Idle:  60,
			},
		},
		WebSocket: WebSocketConfig{
			Path:           "/ws",
			MaxMessageSize: 8192,
			PingInterval:   30,
			PongTimeout:    10,
		},
		DeviceLink: DeviceLinkConfig{
			ConnectDelayMS:    1000,
			DisconnectDelayMS: 500,
			CommandDelayMS:    700,
		},
		Advisor: AdvisorConfig{
			Enabled: false,
			Model:   "text-bison-001",
			Timeout: 30,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Output: "stdout",
		},
		Security: SecurityConfig{
			JWT: JWTConfig{
				AccessTokenTTL: 15,
			},
		},
	}
}

// applyEnvOverrides applies environment variable overrides to the configuration.
// Environment variables follow the pattern ACCESSHUB_SECTION_KEY; the supported
// set is ACCESSHUB_API_HOST, ACCESSHUB_API_PORT, ACCESSHUB_LOG_LEVEL,
// ACCESSHUB_ADVISOR_URL, ACCESSHUB_ADVISOR_API_KEY, and ACCESSHUB_JWT_SECRET.
func applyEnvOverrides(cfg *Config) {
	// API
	if v := os.Getenv("ACCESSHUB_API_HOST"); v != "" {
		cfg.API.Host = v
	}
	if v := os.Getenv("ACCESSHUB_API_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.API.Port = port
		}
	}

	// Logging
	if v := os.Getenv("ACCESSHUB_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}

	// Advisor
	if v := os.Getenv("ACCESSHUB_ADVISOR_URL"); v != "" {
		cfg.Advisor.URL = v
	}
	if v := os.Getenv("ACCESSHUB_ADVISOR_API_KEY"); v != "" {
		cfg.Advisor.APIKey = v
	}

	// Security - JWT secret (IMPORTANT: always override in production)
	if v := os.Getenv("ACCESSHUB_JWT_SECRET"); v != "" {
		cfg.Security.JWT.Secret = v
	}
}

// Validate checks the configuration for errors and security issues.
//
// Returns:
//   - error: Description of validation failure, or nil if valid
func (c *Config) Validate() error {
	var errs []string

	// Hotel validation
	if c.Hotel.ID == "" {
		errs = append(errs, "hotel.id is required")
	}

	// API validation
	if c.API.Port < 1 || c.API.Port > 65535 {
		errs = append(errs, "api.port must be between 1 and 65535")
	}

	// Device link validation — zero or negative delays break the simulated
	// transition windows that the UI renders.
	if c.DeviceLink.ConnectDelayMS <= 0 {
		errs = append(errs, "devicelink.connect_delay_ms must be positive")
	}
	if c.DeviceLink.DisconnectDelayMS <= 0 {
		errs = append(errs, "devicelink.disconnect_delay_ms must be positive")
	}
	if c.DeviceLink.CommandDelayMS <= 0 {
		errs = append(errs, "devicelink.command_delay_ms must be positive")
	}

	// Advisor validation — URL is only required when the advisor is enabled.
	if c.Advisor.Enabled && c.Advisor.URL == "" {
		errs = append(errs, "advisor.url is required when advisor.enabled is true")
	}

	// Security validation - JWT secret is REQUIRED
	// Room controls include the door lock; a forged token would let an
	// attacker open doors, so weak secrets are rejected outright.
	const minJWTSecretLength = 32
	if c.Security.JWT.Secret == "" {
		errs = append(errs, "security.jwt.secret is required (set ACCESSHUB_JWT_SECRET environment variable)")
	} else if len(c.Security.JWT.Secret) < minJWTSecretLength {
		errs = append(errs, "security.jwt.secret must be at least 32 characters for adequate security")
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration errors: %s", strings.Join(errs, "; "))
	}

	return nil
}

// GetReadTimeout returns the API read timeout as a Duration.
func (c *APIConfig) GetReadTimeout() time.Duration {
	return time.Duration(c.Timeouts.Read) * time.Second
}

// GetWriteTimeout returns the API write timeout as a Duration.
func (c *APIConfig) GetWriteTimeout() time.Duration {
	return time.Duration(c.Timeouts.Write) * time.Second
}

// GetIdleTimeout returns the API idle timeout as a Duration.
func (c *APIConfig) GetIdleTimeout() time.Duration {
	return time.Duration(c.Timeouts.Idle) * time.Second
}

// GetTimeout returns the advisor request timeout as a Duration.
func (c *AdvisorConfig) GetTimeout() time.Duration {
	return time.Duration(c.Timeout) * time.Second
}

// ConnectDelay returns the simulated link connect delay as a Duration.
func (c *DeviceLinkConfig) ConnectDelay() time.Duration {
	return time.Duration(c.ConnectDelayMS) * time.Millisecond
}

// DisconnectDelay returns the simulated link disconnect delay as a Duration.
func (c *DeviceLinkConfig) DisconnectDelay() time.Duration {
	return time.Duration(c.DisconnectDelayMS) * time.Millisecond
}

// CommandDelay returns the simulated command round-trip delay as a Duration.
func (c *DeviceLinkConfig) CommandDelay() time.Duration {
	return time.Duration(c.CommandDelayMS) * time.Millisecond
}
