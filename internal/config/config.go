// Package config loads driver settings from defaults, an optional YAML file
// and the environment, in that order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds settings shared by the CLI and the HTTP server.
type Config struct {
	// Threshold at or above which a pair is flagged.
	Threshold float64 `yaml:"threshold"`
	// MaxDocumentRunes caps each input document. Zero means unlimited.
	MaxDocumentRunes int  `yaml:"max_document_runes"`
	FastNormalizer   bool `yaml:"fast_normalizer"`

	Log    LogConfig    `yaml:"log"`
	Server ServerConfig `yaml:"server"`
}

// LogConfig controls where and how logs are written.
type LogConfig struct {
	File string `yaml:"file"`
	JSON bool   `yaml:"json"`
	// Backend selects the server's logging library: "l" (default) or "zerolog".
	Backend string `yaml:"backend"`
}

// Logging backends accepted in LogConfig.Backend.
const (
	LogBackendL       = "l"
	LogBackendZerolog = "zerolog"
)

// ServerConfig is only read by cmd/server.
type ServerConfig struct {
	Port           int     `yaml:"port"`
	RateLimitRPS   float64 `yaml:"rate_limit_rps"`
	RateLimitBurst int     `yaml:"rate_limit_burst"`
	WarmUp         bool    `yaml:"warm_up"`
	// MaxDocumentRunes overrides the top-level cap for HTTP requests.
	MaxDocumentRunes int `yaml:"max_document_runes"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Threshold:        0.5,
		MaxDocumentRunes: 0,
		Log: LogConfig{
			Backend: LogBackendL,
		},
		Server: ServerConfig{
			Port:             8080,
			RateLimitRPS:     20,
			RateLimitBurst:   40,
			WarmUp:           false,
			MaxDocumentRunes: 20000,
		},
	}
}

// Load builds a Config from defaults, the YAML file at path (skipped when
// path is empty) and LCS_* environment variables.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	cfg.applyEnv()
	return cfg, nil
}

func (c *Config) applyEnv() {
	c.Threshold = GetEnvFloat("LCS_THRESHOLD", c.Threshold)
	c.MaxDocumentRunes = GetEnvInt("LCS_MAX_DOCUMENT_RUNES", c.MaxDocumentRunes)
	c.FastNormalizer = GetEnvBool("LCS_FAST_NORMALIZER", c.FastNormalizer)

	c.Log.File = GetEnv("LCS_LOG_FILE", c.Log.File)
	c.Log.JSON = GetEnvBool("LCS_LOG_JSON", c.Log.JSON)
	c.Log.Backend = GetEnv("LCS_LOG_BACKEND", c.Log.Backend)

	c.Server.Port = GetEnvInt("LCS_SERVER_PORT", c.Server.Port)
	c.Server.RateLimitRPS = GetEnvFloat("LCS_RATE_LIMIT_RPS", c.Server.RateLimitRPS)
	c.Server.RateLimitBurst = GetEnvInt("LCS_RATE_LIMIT_BURST", c.Server.RateLimitBurst)
	c.Server.WarmUp = GetEnvBool("LCS_WARM_UP", c.Server.WarmUp)
	c.Server.MaxDocumentRunes = GetEnvInt("LCS_SERVER_MAX_DOCUMENT_RUNES", c.Server.MaxDocumentRunes)
}

// Validate checks every section. The HTTP server uses it.
func (c *Config) Validate() error {
	if err := c.ValidateCore(); err != nil {
		return err
	}
	return c.validateServer()
}

// ValidateCore checks the settings shared by all drivers and ignores the
// server section. The CLI uses it.
func (c *Config) ValidateCore() error {
	if c.Threshold < 0 || c.Threshold > 1 {
		return errors.New("threshold must be between 0 and 1")
	}
	if c.MaxDocumentRunes < 0 {
		return errors.New("max_document_runes must not be negative")
	}
	return c.validateLog()
}

func (c *Config) validateLog() error {
	switch c.Log.Backend {
	case LogBackendL, LogBackendZerolog:
		return nil
	default:
		return fmt.Errorf("log.backend %q is not supported", c.Log.Backend)
	}
}

func (c *Config) validateServer() error {
	if c.Server.MaxDocumentRunes < 0 {
		return errors.New("server.max_document_runes must not be negative")
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port %d is out of range", c.Server.Port)
	}
	if c.Server.RateLimitRPS <= 0 {
		return errors.New("server.rate_limit_rps must be greater than 0")
	}
	if c.Server.RateLimitBurst <= 0 {
		return errors.New("server.rate_limit_burst must be greater than 0")
	}
	return nil
}
