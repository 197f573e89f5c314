// Package config loads the application configuration from environment
// variables (MACROLENS_ prefix) and an optional YAML file, with environment
// values taking precedence over the file and the file over built-in
// defaults.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// Config represents the complete application configuration
type Config struct {
	Server     ServerConfig     `yaml:"server" envconfig:"SERVER"`
	Logging    LoggingConfig    `yaml:"logging" envconfig:"LOGGING"`
	Paths      PathsConfig      `yaml:"paths" envconfig:"PATHS"`
	TextMining TextMiningConfig `yaml:"textmining" envconfig:"TEXTMINING"`
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Port            int           `yaml:"port" envconfig:"PORT"`
	ReadTimeout     time.Duration `yaml:"read_timeout" envconfig:"READ_TIMEOUT"`
	WriteTimeout    time.Duration `yaml:"write_timeout" envconfig:"WRITE_TIMEOUT"`
	IdleTimeout     time.Duration `yaml:"idle_timeout" envconfig:"IDLE_TIMEOUT"`
	RequestTimeout  time.Duration `yaml:"request_timeout" envconfig:"REQUEST_TIMEOUT"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" envconfig:"SHUTDOWN_TIMEOUT"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level    string `yaml:"level" envconfig:"LEVEL"`
	Output   string `yaml:"output" envconfig:"OUTPUT"`
	FilePath string `yaml:"file_path" envconfig:"FILE_PATH"`
}

// PathsConfig locates the two prepared source tables.
type PathsConfig struct {
	EquitiesFile string `yaml:"equities_file" envconfig:"EQUITIES_FILE"`
	MacrosFile   string `yaml:"macros_file" envconfig:"MACROS_FILE"`
}

// TextMiningConfig contains the tunables of the article word-cloud path.
type TextMiningConfig struct {
	FetchTimeout     time.Duration `yaml:"fetch_timeout" envconfig:"FETCH_TIMEOUT"`
	UserAgent        string        `yaml:"user_agent" envconfig:"USER_AGENT"`
	MaxWords         int           `yaml:"max_words" envconfig:"MAX_WORDS"`
	FetchesPerMinute float64       `yaml:"fetches_per_minute" envconfig:"FETCHES_PER_MINUTE"`
}

// envPrefix is the prefix of all environment overrides.
const envPrefix = "MACROLENS"

// configFileEnv names the environment variable pointing at an optional
// YAML configuration file.
const configFileEnv = "MACROLENS_CONFIG_FILE"

// defaultConfig is the built-in baseline. Defaults live here rather than in
// envconfig tags: envconfig reapplies tag defaults for every unset variable,
// which would silently overwrite values read from the config file.
func defaultConfig() Config {
	return Config{
		Server: ServerConfig{
			Port:            8080,
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    15 * time.Second,
			IdleTimeout:     60 * time.Second,
			RequestTimeout:  30 * time.Second,
			ShutdownTimeout: 30 * time.Second,
		},
		Logging: LoggingConfig{
			Level:    "info",
			Output:   "console",
			FilePath: "logs/macrolens.log",
		},
		Paths: PathsConfig{
			EquitiesFile: "data/cac40_final.csv",
			MacrosFile:   "data/macros_final.csv",
		},
		TextMining: TextMiningConfig{
			FetchTimeout:     15 * time.Second,
			UserAgent:        "Mozilla/5.0 (compatible; macrolens/1.0)",
			MaxWords:         50,
			FetchesPerMinute: 10,
		},
	}
}

// Load loads configuration from the optional YAML file and environment
// variables, environment taking precedence over the file, then validates
// the result.
func Load() (*Config, error) {
	cfg := defaultConfig()

	if path := os.Getenv(configFileEnv); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config file %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parse config file %s: %w", path, err)
		}
	}

	// Only explicitly set environment variables override at this point.
	if err := envconfig.Process(envPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("load config from env: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}
	if c.Paths.EquitiesFile == "" {
		return fmt.Errorf("equities file path must not be empty")
	}
	if c.Paths.MacrosFile == "" {
		return fmt.Errorf("macros file path must not be empty")
	}
	if c.TextMining.FetchTimeout <= 0 {
		return fmt.Errorf("textmining fetch timeout must be positive")
	}
	if c.TextMining.MaxWords < 1 {
		return fmt.Errorf("textmining max words must be at least 1")
	}
	switch c.Logging.Output {
	case "console", "file", "both":
	default:
		return fmt.Errorf("invalid logging output %q (console, file or both)", c.Logging.Output)
	}
	return nil
}
