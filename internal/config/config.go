// Package config provides configuration loading and validation for the skyline server.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/labstack/gommon/log"
	"github.com/spf13/viper"
)

// Sentinel validation errors.
var (
	ErrInvalidPort         = errors.New("invalid server port")
	ErrInvalidRateLimit    = errors.New("rate limit must not be negative")
	ErrInvalidWorkers      = errors.New("engine workers must not be negative")
	ErrInvalidMaxBuildings = errors.New("max buildings must be positive")
	ErrInvalidLogLevel     = errors.New("unknown log level")
)

// Default configuration values.
const (
	defaultPort            = 8080
	defaultHost            = "0.0.0.0"
	defaultBodyLimit       = "2M"
	defaultRateLimit       = 50
	defaultShutdownTimeout = 10 * time.Second
	defaultLogLevel        = "info"
	defaultMaxBuildings    = 100000
	maxPort                = 65535
)

// Config holds all configuration for the skyline server.
type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Logging LoggingConfig `mapstructure:"logging"`
	Engine  EngineConfig  `mapstructure:"engine"`
}

// ServerConfig holds server-specific configuration.
type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	BodyLimit       string        `mapstructure:"body_limit"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	RateLimit       float64       `mapstructure:"rate_limit"`
	Port            int           `mapstructure:"port"`
}

// Address is the listen address in host:port form.
func (s ServerConfig) Address() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// LoggingConfig holds logging-specific configuration.
type LoggingConfig struct {
	Level string `mapstructure:"level"`
}

// EngineConfig bounds the work a single request may cause.
type EngineConfig struct {
	Workers      int `mapstructure:"workers"`
	MaxBuildings int `mapstructure:"max_buildings"`
}

var logLevels = map[string]log.Lvl{
	"debug": log.DEBUG,
	"info":  log.INFO,
	"warn":  log.WARN,
	"error": log.ERROR,
	"off":   log.OFF,
}

// Lvl maps the configured level name to a gommon level.
func (l LoggingConfig) Lvl() log.Lvl {
	if lvl, ok := logLevels[strings.ToLower(l.Level)]; ok {
		return lvl
	}
	return log.INFO
}

// LoadConfig loads configuration from file and environment variables.
func LoadConfig(configPath string) (*Config, error) {
	viperCfg := viper.New()

	setDefaults(viperCfg)

	if configPath != "" {
		viperCfg.SetConfigFile(configPath)
	} else {
		viperCfg.SetConfigName("config")
		viperCfg.SetConfigType("yaml")
		viperCfg.AddConfigPath(".")
		viperCfg.AddConfigPath("./config")
		viperCfg.AddConfigPath("/etc/skyline")
	}

	viperCfg.SetEnvPrefix("SKYLINE")
	viperCfg.AutomaticEnv()
	viperCfg.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	readErr := viperCfg.ReadInConfig()
	if readErr != nil {
		var notFoundErr viper.ConfigFileNotFoundError
		if !errors.As(readErr, &notFoundErr) {
			return nil, fmt.Errorf("failed to read config file: %w", readErr)
		}
	}

	var config Config

	unmarshalErr := viperCfg.Unmarshal(&config)
	if unmarshalErr != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", unmarshalErr)
	}

	validateErr := validateConfig(&config)
	if validateErr != nil {
		return nil, fmt.Errorf("invalid configuration: %w", validateErr)
	}

	return &config, nil
}

func setDefaults(viperCfg *viper.Viper) {
	viperCfg.SetDefault("server.host", defaultHost)
	viperCfg.SetDefault("server.port", defaultPort)
	viperCfg.SetDefault("server.body_limit", defaultBodyLimit)
	viperCfg.SetDefault("server.rate_limit", defaultRateLimit)
	viperCfg.SetDefault("server.shutdown_timeout", defaultShutdownTimeout)

	viperCfg.SetDefault("logging.level", defaultLogLevel)

	viperCfg.SetDefault("engine.workers", 0)
	viperCfg.SetDefault("engine.max_buildings", defaultMaxBuildings)
}

func validateConfig(config *Config) error {
	if config.Server.Port <= 0 || config.Server.Port > maxPort {
		return fmt.Errorf("%w: %d", ErrInvalidPort, config.Server.Port)
	}

	if config.Server.RateLimit < 0 {
		return ErrInvalidRateLimit
	}

	if config.Engine.Workers < 0 {
		return ErrInvalidWorkers
	}

	if config.Engine.MaxBuildings <= 0 {
		return ErrInvalidMaxBuildings
	}

	if _, ok := logLevels[strings.ToLower(config.Logging.Level)]; !ok {
		return fmt.Errorf("%w: %q", ErrInvalidLogLevel, config.Logging.Level)
	}

	return nil
}
