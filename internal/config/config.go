// Package config loads tool configuration from environment variables and an
// optional YAML file. Environment values take precedence over file values;
// anything left unset falls back to documented defaults.
package config

import (
	"fmt"
	"os"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// DefaultReportFile is the report processed when no path argument is given.
const DefaultReportFile = "FileCreationTime_Report.csv"

// envPrefix namespaces all environment variables, e.g. PXM_LOGGING_LEVEL.
const envPrefix = "PXM"

// configFileEnv overrides the config file location.
const configFileEnv = "PXM_CONFIG_FILE"

// defaultConfigFile is looked up in the current directory when no override
// is set. The file is optional.
const defaultConfigFile = "config.yaml"

// Config is the complete tool configuration. Only ambient concerns are
// configurable here; the report path itself is a command argument.
type Config struct {
	Logging LoggingConfig `yaml:"logging" envconfig:"LOGGING"`
}

// LoggingConfig controls the structured logger.
type LoggingConfig struct {
	Level    string `yaml:"level" envconfig:"LEVEL"`
	Output   string `yaml:"output" envconfig:"OUTPUT"`
	FilePath string `yaml:"file_path" envconfig:"FILE_PATH"`
}

// Default returns the configuration used when loading fails or no sources
// are present.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load builds the configuration from the environment and the optional
// config file, then normalizes it.
func Load() (*Config, error) {
	var cfg Config

	if err := envconfig.Process(envPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	configFile := configFilePath()
	if _, err := os.Stat(configFile); err == nil {
		fileCfg, err := loadFromFile(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config from file: %w", err)
		}
		cfg = merge(*fileCfg, cfg)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// loadFromFile reads configuration from a YAML file.
func loadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// merge overlays env config on top of file config; env wins where set.
func merge(fileCfg, envCfg Config) Config {
	if envCfg.Logging.Level == "" {
		envCfg.Logging.Level = fileCfg.Logging.Level
	}
	if envCfg.Logging.Output == "" {
		envCfg.Logging.Output = fileCfg.Logging.Output
	}
	if envCfg.Logging.FilePath == "" {
		envCfg.Logging.FilePath = fileCfg.Logging.FilePath
	}
	return envCfg
}

// validate normalizes the configuration, filling defaults and rejecting
// values that cannot be honored.
func (c *Config) validate() error {
	c.applyDefaults()

	switch c.Logging.Output {
	case "console", "file", "both":
	default:
		return fmt.Errorf("invalid logging output %q", c.Logging.Output)
	}

	switch c.Logging.Level {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("invalid logging level %q", c.Logging.Level)
	}

	return nil
}

func (c *Config) applyDefaults() {
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Logging.Output == "" {
		c.Logging.Output = "console"
	}
	if c.Logging.FilePath == "" {
		c.Logging.FilePath = "logs/intervalreport.log"
	}
}

func configFilePath() string {
	if path := os.Getenv(configFileEnv); path != "" {
		return path
	}
	return defaultConfigFile
}
