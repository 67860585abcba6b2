package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestLoad_ValidConfig(t *testing.T) {
	content := `
hotel:
  id: "test-hotel"
  name: "Test Hotel"
api:
  host: "0.0.0.0"
  port: 8080
devicelink:
  connect_delay_ms: 1000
  disconnect_delay_ms: 500
  command_delay_ms: 700
security:
  jwt:
    secret: "test-secret-key-at-least-32-chars!"
`
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte(content), 0600); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Hotel.ID != "test-hotel" {
		t.Errorf("Hotel.ID = %q, want %q", cfg.Hotel.ID, "test-hotel")
	}
	if cfg.API.Port != 8080 {
		t.Errorf("API.Port = %d, want 8080", cfg.API.Port)
	}
	if got := cfg.DeviceLink.ConnectDelay(); got != time.Second {
		t.Errorf("ConnectDelay() = %v, want 1s", got)
	}
	// Defaults should fill unspecified sections
	if cfg.Logging.Level != "info" {
		t.Errorf("Logging.Level = %q, want default %q", cfg.Logging.Level, "info")
	}
	if cfg.Security.JWT.AccessTokenTTL != 15 {
		t.Errorf("JWT.AccessTokenTTL = %d, want default 15", cfg.Security.JWT.AccessTokenTTL)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load("/nonexistent/config.yaml")
	if err == nil {
		t.Fatal("Load() expected error for missing file, got nil")
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte("hotel: [unclosed"), 0600); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	_, err := Load(configPath)
	if err == nil {
		t.Fatal("Load() expected error for invalid YAML, got nil")
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	content := `
hotel:
  id: "test-hotel"
security:
  jwt:
    secret: "file-secret-that-is-long-enough-0000"
`
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte(content), 0600); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	t.Setenv("ACCESSHUB_API_HOST", "127.0.0.1")
	t.Setenv("ACCESSHUB_API_PORT", "9090")
	t.Setenv("ACCESSHUB_LOG_LEVEL", "debug")
	t.Setenv("ACCESSHUB_JWT_SECRET", "env-secret-that-is-long-enough-00000")
	t.Setenv("ACCESSHUB_ADVISOR_API_KEY", "env-api-key")

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.API.Host != "127.0.0.1" {
		t.Errorf("API.Host = %q, want env override %q", cfg.API.Host, "127.0.0.1")
	}
	if cfg.API.Port != 9090 {
		t.Errorf("API.Port = %d, want env override 9090", cfg.API.Port)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, want env override debug", cfg.Logging.Level)
	}
	if cfg.Security.JWT.Secret != "env-secret-that-is-long-enough-00000" {
		t.Errorf("JWT.Secret not overridden by environment")
	}
	if cfg.Advisor.APIKey != "env-api-key" {
		t.Errorf("Advisor.APIKey not overridden by environment")
	}
}

func TestLoad_EnvOverrides_BadPortIgnored(t *testing.T) {
	content := `
hotel:
  id: "test-hotel"
api:
  port: 8081
security:
  jwt:
    secret: "file-secret-that-is-long-enough-0000"
`
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte(content), 0600); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	t.Setenv("ACCESSHUB_API_PORT", "not-a-port")

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.API.Port != 8081 {
		t.Errorf("API.Port = %d, want file value 8081 when override is unparsable", cfg.API.Port)
	}
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		cfg := defaultConfig()
		cfg.Security.JWT.Secret = "test-secret-key-at-least-32-chars!"
		return cfg
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:    "valid config",
			mutate:  func(*Config) {},
			wantErr: "",
		},
		{
			name:    "missing hotel id",
			mutate:  func(c *Config) { c.Hotel.ID = "" },
			wantErr: "hotel.id",
		},
		{
			name:    "port out of range",
			mutate:  func(c *Config) { c.API.Port = 70000 },
			wantErr: "api.port",
		},
		{
			name:    "zero connect delay",
			mutate:  func(c *Config) { c.DeviceLink.ConnectDelayMS = 0 },
			wantErr: "connect_delay_ms",
		},
		{
			name:    "negative command delay",
			mutate:  func(c *Config) { c.DeviceLink.CommandDelayMS = -1 },
			wantErr: "command_delay_ms",
		},
		{
			name:    "advisor enabled without url",
			mutate:  func(c *Config) { c.Advisor.Enabled = true; c.Advisor.URL = "" },
			wantErr: "advisor.url",
		},
		{
			name:    "missing jwt secret",
			mutate:  func(c *Config) { c.Security.JWT.Secret = "" },
			wantErr: "security.jwt.secret is required",
		},
		{
			name:    "short jwt secret",
			mutate:  func(c *Config) { c.Security.JWT.Secret = "too-short" },
			wantErr: "at least 32 characters",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("Validate() error = %v, want nil", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("Validate() = nil, want error containing %q", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() error = %v, want it to contain %q", err, tt.wantErr)
			}
		})
	}
}
