package pptx

import (
	"errors"
	"os"
	"sync"

	"github.com/BurntSushi/toml"
)

// Config contains all configuration options for the package model
type Config struct {
	// LogLevel controls the verbosity of logging (debug, info, warn, error)
	LogLevel string `toml:"log_level"`
	// StrictContentTypes makes unknown content types a load failure
	// instead of falling back to a generic opaque-blob part.
	StrictContentTypes bool `toml:"strict_content_types"`
}

var (
	globalConfig      *Config
	globalConfigMutex sync.RWMutex
	configOnce        sync.Once
)

func init() {
	// Initialize global config from environment on first use
	configOnce.Do(func() {
		globalConfig = ConfigFromEnvironment()
	})
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		LogLevel:           "warn",
		StrictContentTypes: false,
	}
}

// ConfigFromEnvironment creates a configuration from environment variables
func ConfigFromEnvironment() *Config {
	config := DefaultConfig()

	// PPTX_LOG_LEVEL
	if val := os.Getenv("PPTX_LOG_LEVEL"); val != "" {
		config.LogLevel = val
	}

	// PPTX_STRICT_CONTENT_TYPES
	if val := os.Getenv("PPTX_STRICT_CONTENT_TYPES"); val != "" {
		config.StrictContentTypes = parseBool(val)
	}

	return config
}

// LoadConfigFile reads a TOML configuration file, applying defaults to
// fields the file leaves unset.
func LoadConfigFile(path string) (*Config, error) {
	config := DefaultConfig()
	if _, err := toml.DecodeFile(path, config); err != nil {
		return nil, NewPackageError("config load", path, err)
	}
	if err := config.Validate(); err != nil {
		return nil, NewPackageError("config load", path, err)
	}
	return config, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}

	if !validLogLevels[c.LogLevel] {
		return errors.New("invalid log level: " + c.LogLevel)
	}

	return nil
}

// GetGlobalConfig returns the global configuration
func GetGlobalConfig() *Config {
	globalConfigMutex.RLock()
	defer globalConfigMutex.RUnlock()

	if globalConfig == nil {
		return DefaultConfig()
	}

	// Return a copy to prevent modification
	configCopy := *globalConfig
	return &configCopy
}

// SetGlobalConfig sets the global configuration
func SetGlobalConfig(config *Config) {
	globalConfigMutex.Lock()
	globalConfig = config
	globalConfigMutex.Unlock()

	// Update logger level outside the lock to avoid deadlock
	logger.SetLevel(parseLogLevel(config.LogLevel))
}

// parseBool parses a boolean value from a string
func parseBool(s string) bool {
	switch s {
	case "true", "1", "yes", "on", "TRUE", "True":
		return true
	}
	return false
}
