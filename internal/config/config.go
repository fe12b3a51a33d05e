package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// Config represents the complete application configuration
type Config struct {
	Logging LoggingConfig `yaml:"logging" envconfig:"LOGGING"`
	Paths   PathsConfig   `yaml:"paths" envconfig:"PATHS"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level    string `yaml:"level" envconfig:"LEVEL" default:"info"`
	Output   string `yaml:"output" envconfig:"OUTPUT" default:"console"`
	FilePath string `yaml:"file_path" envconfig:"FILE_PATH" default:"logs/calccli.log"`
}

// PathsConfig contains file system paths configuration
type PathsConfig struct {
	ResultsDir string `yaml:"results_dir" envconfig:"RESULTS_DIR" default:"results"`
	DataDir    string `yaml:"data_dir" envconfig:"DATA_DIR" default:"data"`
}

// Load loads configuration from environment variables and, if present,
// a calccli.yaml file in the working directory. Environment values win.
func Load() (*Config, error) {
	var cfg Config

	if err := envconfig.Process("CALC", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	configFile := configFilePath()
	if _, err := os.Stat(configFile); err == nil {
		fileCfg, err := loadFromFile(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config from file: %w", err)
		}
		cfg = mergeConfigs(*fileCfg, cfg)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// loadFromFile loads configuration from a YAML file
func loadFromFile(filePath string) (*Config, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// mergeConfigs merges file config under env config (env takes precedence).
// envconfig fills defaults, so only explicitly set env values differ from
// the defaults; a non-empty file value replaces a defaulted env value.
func mergeConfigs(fileConfig, envConfig Config) Config {
	if fileConfig.Logging.Level != "" && envConfig.Logging.Level == "info" {
		envConfig.Logging.Level = fileConfig.Logging.Level
	}
	if fileConfig.Logging.Output != "" && envConfig.Logging.Output == "console" {
		envConfig.Logging.Output = fileConfig.Logging.Output
	}
	if fileConfig.Logging.FilePath != "" && envConfig.Logging.FilePath == "logs/calccli.log" {
		envConfig.Logging.FilePath = fileConfig.Logging.FilePath
	}
	if fileConfig.Paths.ResultsDir != "" && envConfig.Paths.ResultsDir == "results" {
		envConfig.Paths.ResultsDir = fileConfig.Paths.ResultsDir
	}
	if fileConfig.Paths.DataDir != "" && envConfig.Paths.DataDir == "data" {
		envConfig.Paths.DataDir = fileConfig.Paths.DataDir
	}
	return envConfig
}

// validate checks the configuration for invalid values
func (c *Config) validate() error {
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level: %s", c.Logging.Level)
	}
	switch c.Logging.Output {
	case "console", "file", "both":
	default:
		return fmt.Errorf("invalid log output: %s", c.Logging.Output)
	}
	if c.Paths.ResultsDir == "" {
		return fmt.Errorf("results directory must not be empty")
	}
	return nil
}

// EnsureDirectories creates the configured directories if missing
func (c *Config) EnsureDirectories() error {
	for _, dir := range []string{c.Paths.ResultsDir, c.Paths.DataDir, filepath.Dir(c.Logging.FilePath)} {
		if dir == "" || dir == "." {
			continue
		}
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	return nil
}

// ResultsPath returns the path of a named results file inside the results dir
func (c *Config) ResultsPath(name string) string {
	return filepath.Join(c.Paths.ResultsDir, name)
}

// Default returns the configuration used when no environment or file
// overrides are present. Useful for the cmd mains and tests.
func Default() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:    "info",
			Output:   "console",
			FilePath: "logs/calccli.log",
		},
		Paths: PathsConfig{
			ResultsDir: "results",
			DataDir:    "data",
		},
	}
}

// configFilePath returns the config file location, overridable for tests
// via CALC_CONFIG_FILE.
func configFilePath() string {
	if p := os.Getenv("CALC_CONFIG_FILE"); p != "" {
		return p
	}
	return "calccli.yaml"
}
