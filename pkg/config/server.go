package config

import (
	"fmt"
	"log/slog"
	"net"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Server configuration defaults.
const (
	DefaultPort            = 3000
	DefaultLogLevel        = "info"
	DefaultShutdownTimeout = 5 * time.Second

	// ListenHost binds every interface.
	ListenHost = "0.0.0.0"

	minShutdownTimeout = 100 * time.Millisecond
	maxShutdownTimeout = 5 * time.Minute
)

// DefaultAllowedOrigins is the CORS allow list used when nothing is configured.
var DefaultAllowedOrigins = []string{"http://localhost:3000"}

// ServerConfig holds the runtime configuration of the API server.
type ServerConfig struct {
	Port            int           `yaml:"port"`
	AllowedOrigins  []string      `yaml:"allowed_origins"`
	PublicDir       string        `yaml:"public_dir"`
	LogLevel        string        `yaml:"log_level"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

// DefaultServerConfig returns the configuration used when neither a config
// file nor environment variables are present.
func DefaultServerConfig() ServerConfig {
	return ServerConfig{
		Port:            DefaultPort,
		AllowedOrigins:  append([]string(nil), DefaultAllowedOrigins...),
		LogLevel:        DefaultLogLevel,
		ShutdownTimeout: DefaultShutdownTimeout,
	}
}

// LoadServerConfig builds the server configuration in three layers:
// defaults, then the optional YAML file named by CONFIG_FILE, then
// environment variables (PORT, ALLOWED_ORIGINS, PUBLIC_DIR, LOG_LEVEL,
// SHUTDOWN_TIMEOUT). Out-of-range values fall back to defaults with a warning.
//
// An unreadable or malformed CONFIG_FILE is an error: the operator asked for it.
func LoadServerConfig() (*ServerConfig, error) {
	cfg := DefaultServerConfig()

	if path := GetEnvString("CONFIG_FILE", ""); path != "" {
		if err := cfg.mergeFile(path); err != nil {
			return nil, err
		}
	}

	cfg.Port = GetEnvInt("PORT", cfg.Port)
	cfg.AllowedOrigins = GetEnvStringList("ALLOWED_ORIGINS", cfg.AllowedOrigins)
	cfg.PublicDir = GetEnvString("PUBLIC_DIR", cfg.PublicDir)
	cfg.LogLevel = GetEnvString("LOG_LEVEL", cfg.LogLevel)
	cfg.ShutdownTimeout = GetEnvDuration("SHUTDOWN_TIMEOUT", cfg.ShutdownTimeout)

	cfg.applyFallbacks()
	return &cfg, nil
}

// mergeFile overlays the keys present in a YAML file onto cfg.
func (c *ServerConfig) mergeFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}
	return nil
}

func (c *ServerConfig) applyFallbacks() {
	if err := ValidatePort(c.Port); err != nil {
		slog.Warn("invalid port, using default",
			slog.Int("value", c.Port),
			slog.Int("default", DefaultPort),
			slog.String("error", err.Error()))
		c.Port = DefaultPort
	}
	if err := ValidateDurationRange(c.ShutdownTimeout, minShutdownTimeout, maxShutdownTimeout); err != nil {
		slog.Warn("invalid shutdown timeout, using default",
			slog.String("value", c.ShutdownTimeout.String()),
			slog.String("default", DefaultShutdownTimeout.String()),
			slog.String("error", err.Error()))
		c.ShutdownTimeout = DefaultShutdownTimeout
	}
	if len(c.AllowedOrigins) == 0 {
		c.AllowedOrigins = append([]string(nil), DefaultAllowedOrigins...)
	}
	if c.LogLevel == "" {
		c.LogLevel = DefaultLogLevel
	}
}

// ValidatePort checks that p is a usable TCP port.
func ValidatePort(p int) error {
	if p < 1 || p > 65535 {
		return fmt.Errorf("port must be between 1 and 65535, got %d", p)
	}
	return nil
}

// Addr returns the listen address, e.g. "0.0.0.0:3000".
func (c *ServerConfig) Addr() string {
	return net.JoinHostPort(ListenHost, strconv.Itoa(c.Port))
}

// BaseURL returns the URL printed in startup logs, e.g. "http://localhost:3000".
func (c *ServerConfig) BaseURL() string {
	return "http://" + net.JoinHostPort("localhost", strconv.Itoa(c.Port))
}
