package wordml

import (
	"os"
	"strconv"
	"sync"
	"time"

	"gopkg.in/yaml.v3"
)

// Config contains the configuration options for the conversion layer
type Config struct {
	// CacheMaxSize is the maximum number of prepared packages to cache.
	// 0 disables caching.
	CacheMaxSize int `yaml:"cache_max_size"`
	// CacheTTL is the time-to-live for cached packages. 0 means no
	// expiration.
	CacheTTL time.Duration `yaml:"cache_ttl"`
	// LogLevel controls the verbosity of logging (debug, info, warn, error, off)
	LogLevel string `yaml:"log_level"`
	// StrictMode makes ConvertParts abort on a part that fails to parse
	// or convert instead of logging and skipping it.
	StrictMode bool `yaml:"strict_mode"`
}

var (
	globalConfig      *Config
	globalConfigMutex sync.RWMutex
	configOnce        sync.Once
)

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		CacheMaxSize: 100,
		CacheTTL:     0,
		LogLevel:     "info",
		StrictMode:   false,
	}
}

// ConfigFromEnvironment creates a configuration from environment variables.
// WORDML_CONFIG_FILE points at a YAML file applied first; individual
// variables override it.
func ConfigFromEnvironment() *Config {
	config := DefaultConfig()

	if path := os.Getenv("WORDML_CONFIG_FILE"); path != "" {
		if fileConfig, err := LoadConfigFile(path); err == nil {
			config = fileConfig
		}
	}

	if val := os.Getenv("WORDML_CACHE_MAX_SIZE"); val != "" {
		if size, err := strconv.Atoi(val); err == nil {
			config.CacheMaxSize = size
		}
	}

	if val := os.Getenv("WORDML_CACHE_TTL"); val != "" {
		if duration, err := time.ParseDuration(val); err == nil {
			config.CacheTTL = duration
		}
	}

	if val := os.Getenv("WORDML_LOG_LEVEL"); val != "" {
		config.LogLevel = val
	}

	if val := os.Getenv("WORDML_STRICT_MODE"); val != "" {
		if strict, err := strconv.ParseBool(val); err == nil {
			config.StrictMode = strict
		}
	}

	return config
}

// LoadConfigFile reads a YAML configuration file.
func LoadConfigFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, err
	}
	return config, nil
}

// GetGlobalConfig returns the global configuration, initializing it from
// the environment on first use.
func GetGlobalConfig() *Config {
	configOnce.Do(func() {
		globalConfigMutex.Lock()
		defer globalConfigMutex.Unlock()
		if globalConfig == nil {
			globalConfig = ConfigFromEnvironment()
		}
	})
	globalConfigMutex.RLock()
	defer globalConfigMutex.RUnlock()
	return globalConfig
}

// SetGlobalConfig replaces the global configuration.
func SetGlobalConfig(config *Config) {
	globalConfigMutex.Lock()
	defer globalConfigMutex.Unlock()
	if config == nil {
		config = DefaultConfig()
	}
	globalConfig = config
}
