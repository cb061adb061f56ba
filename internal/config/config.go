package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds the client configuration
type Config struct {
	EngineURL           string        `yaml:"engine_url"`
	RequestTimeout      time.Duration `yaml:"request_timeout"`
	RequestsPerSecond   float64       `yaml:"requests_per_second"`
	ComputerSimulations int           `yaml:"computer_simulations"`
	LogFile             string        `yaml:"log_file"`
	LogLevel            string        `yaml:"log_level"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		EngineURL:           "http://localhost:8000",
		RequestTimeout:      10 * time.Second,
		ComputerSimulations: 100,
		LogLevel:            "info",
	}
}

// configPath returns the path to the config file
func configPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		homeDir, _ := os.UserHomeDir()
		configDir = filepath.Join(homeDir, ".config")
	}
	return filepath.Join(configDir, "freecell", "config.yaml")
}

// ConfigPath returns the path where the config file should be located
func ConfigPath() string {
	return configPath()
}

// Load reads the config file at path (the default location when empty),
// then a .env file in the working directory, then FREECELL_* variables.
// A missing file falls back to defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path == "" {
		path = configPath()
	}
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	case os.IsNotExist(err):
	default:
		return nil, err
	}

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("load .env: %w", err)
	}
	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return nil, err
	}

	cfg.LogFile = expandPath(cfg.LogFile)

	// Ensure reasonable defaults
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = 10 * time.Second
	}
	if cfg.ComputerSimulations <= 0 {
		cfg.ComputerSimulations = 100
	}
	if cfg.RequestsPerSecond < 0 {
		cfg.RequestsPerSecond = 0
	}

	return cfg, nil
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup("FREECELL_ENGINE_URL"); ok && v != "" {
		c.EngineURL = v
	}
	if v, ok := lookup("FREECELL_REQUEST_TIMEOUT"); ok && v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("FREECELL_REQUEST_TIMEOUT: %w", err)
		}
		c.RequestTimeout = d
	}
	if v, ok := lookup("FREECELL_REQUESTS_PER_SECOND"); ok && v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("FREECELL_REQUESTS_PER_SECOND: %w", err)
		}
		c.RequestsPerSecond = f
	}
	if v, ok := lookup("FREECELL_COMPUTER_SIMULATIONS"); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("FREECELL_COMPUTER_SIMULATIONS: %w", err)
		}
		c.ComputerSimulations = n
	}
	if v, ok := lookup("FREECELL_LOG_FILE"); ok {
		c.LogFile = v
	}
	if v, ok := lookup("FREECELL_LOG_LEVEL"); ok && v != "" {
		c.LogLevel = v
	}
	return nil
}

// expandPath expands ~ to the user's home directory
func expandPath(path string) string {
	if len(path) == 0 {
		return path
	}
	if path[0] == '~' {
		homeDir, _ := os.UserHomeDir()
		return filepath.Join(homeDir, path[1:])
	}
	return path
}
