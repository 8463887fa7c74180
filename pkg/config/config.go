// Package config loads the service configuration from an optional YAML file,
// a .env file and the process environment, in that order of precedence
// (environment wins).
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Configuration validation errors.
var (
	ErrInvalidPort      = errors.New("server.port must be a number between 1 and 65535")
	ErrInvalidMode      = errors.New("server.mode must be one of: debug, release, test")
	ErrInvalidTimeout   = errors.New("whois.timeout_sec must be at least 1")
	ErrMissingEndpoint  = errors.New("whois.endpoint is required")
	ErrInvalidLogLevel  = errors.New("logging.level must be one of: debug, info, warn, error")
	ErrInvalidLogFormat = errors.New("logging.format must be 'text' or 'json'")
	ErrInvalidOrigin    = errors.New("server.allowed_origins entries must be \"*\" or start with http:// or https://")
)

const (
	DefaultPort          = "8080"
	DefaultEndpoint      = "https://www.whoisxmlapi.com/whoisserver/WhoisService"
	DefaultTimeoutSec    = 30
	DefaultConfigEnvName = "WHOIS_API_CONFIG"
)

// Config represents the complete service configuration.
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Whois   WhoisConfig   `yaml:"whois"`
	Logging LoggingConfig `yaml:"logging"`
}

// ServerConfig contains HTTP listener settings.
type ServerConfig struct {
	Port           string   `yaml:"port"`
	Mode           string   `yaml:"mode"`
	AllowedOrigins []string `yaml:"allowed_origins"`
}

// WhoisConfig contains upstream provider settings.
type WhoisConfig struct {
	APIKey     string `yaml:"api_key"`
	Endpoint   string `yaml:"endpoint"`
	TimeoutSec int    `yaml:"timeout_sec"`
}

// LoggingConfig defines logging behavior.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Default returns the configuration used when nothing is set.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port:           DefaultPort,
			Mode:           "release",
			AllowedOrigins: []string{"*"},
		},
		Whois: WhoisConfig{
			Endpoint:   DefaultEndpoint,
			TimeoutSec: DefaultTimeoutSec,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load builds the configuration. A .env file in the working directory is read
// if present. path may be empty, in which case WHOIS_API_CONFIG is consulted.
func Load(path string) (*Config, error) {
	// .env is optional; the system environment is used when it is missing.
	_ = godotenv.Load()

	cfg := Default()

	if path == "" {
		path = os.Getenv(DefaultConfigEnvName)
	}
	if path != "" {
		if err := cfg.loadFile(path); err != nil {
			return nil, err
		}
	}

	cfg.applyEnv(os.LookupEnv)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse config file: %w", err)
	}

	return nil
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) {
	if v, ok := lookup("WHOIS_API_KEY"); ok {
		c.Whois.APIKey = strings.TrimSpace(v)
	}
	if v, ok := lookup("WHOIS_API_URL"); ok && v != "" {
		c.Whois.Endpoint = v
	}
	if v, ok := lookup("WHOIS_TIMEOUT_SEC"); ok && v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Whois.TimeoutSec = n
		} else {
			c.Whois.TimeoutSec = -1
		}
	}
	if v, ok := lookup("PORT"); ok && v != "" {
		c.Server.Port = v
	}
	if v, ok := lookup("GIN_MODE"); ok && v != "" {
		c.Server.Mode = v
	}
	if v, ok := lookup("CORS_ALLOWED_ORIGINS"); ok && v != "" {
		c.Server.AllowedOrigins = splitList(v)
	}
	if v, ok := lookup("LOG_LEVEL"); ok && v != "" {
		c.Logging.Level = v
	}
	if v, ok := lookup("LOG_FORMAT"); ok && v != "" {
		c.Logging.Format = v
	}
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// Validate checks the configuration for errors. A missing API key is not an
// error here; lookups report it per request.
func (c *Config) Validate() error {
	port, err := strconv.Atoi(c.Server.Port)
	if err != nil || port < 1 || port > 65535 {
		return ErrInvalidPort
	}

	switch c.Server.Mode {
	case "debug", "release", "test":
	default:
		return ErrInvalidMode
	}

	for _, o := range c.Server.AllowedOrigins {
		if o != "*" && !strings.HasPrefix(o, "http://") && !strings.HasPrefix(o, "https://") {
			return fmt.Errorf("%w: %q", ErrInvalidOrigin, o)
		}
	}

	if c.Whois.Endpoint == "" {
		return ErrMissingEndpoint
	}
	if c.Whois.TimeoutSec < 1 {
		return ErrInvalidTimeout
	}

	switch strings.ToLower(c.Logging.Level) {
	case "debug", "info", "warn", "error":
	default:
		return ErrInvalidLogLevel
	}

	switch strings.ToLower(c.Logging.Format) {
	case "text", "json":
	default:
		return ErrInvalidLogFormat
	}

	return nil
}

// Addr returns the listen address.
func (c *Config) Addr() string {
	return ":" + c.Server.Port
}

// HasAPIKey reports whether an upstream credential is configured.
func (c *Config) HasAPIKey() bool {
	return c.Whois.APIKey != ""
}
