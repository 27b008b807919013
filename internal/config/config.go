package config

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	RunAddress      string
	SheetURL        string
	RefreshInterval time.Duration
	StaleTime       time.Duration
	MaxRetries      int
	RetryDelay      time.Duration
}

// New builds the configuration. Precedence, lowest to highest: flag
// defaults, the optional YAML file, environment variables. A .env file in
// the working directory is loaded first so local runs can keep SHEET_URL
// out of the shell.
func New() *Config {
	_ = godotenv.Load()

	cfg := &Config{}
	var configPath string

	flag.StringVar(&cfg.RunAddress, "a", "localhost:8080", "server address and port")
	flag.StringVar(&cfg.SheetURL, "u", "", "published CSV url of the tracking sheet")
	flag.DurationVar(&cfg.RefreshInterval, "r", 30*time.Second, "snapshot revalidation interval")
	flag.DurationVar(&cfg.StaleTime, "s", 10*time.Second, "age a snapshot is served without refetching")
	flag.IntVar(&cfg.MaxRetries, "retries", 2, "retries after a failed refresh attempt")
	flag.DurationVar(&cfg.RetryDelay, "retry-delay", 500*time.Millisecond, "wait between refresh retries")
	flag.StringVar(&configPath, "c", "", "optional yaml config file")
	flag.Parse()

	if configPath != "" {
		if err := cfg.loadFile(configPath); err != nil {
			fmt.Fprintf(os.Stderr, "config file %s: %v\n", configPath, err)
			os.Exit(1)
		}
	}
	cfg.applyEnv()

	return cfg
}

// fileConfig mirrors Config for the YAML file, with durations as strings
// so "30s" works.
type fileConfig struct {
	RunAddress      string `yaml:"run_address"`
	SheetURL        string `yaml:"sheet_url"`
	RefreshInterval string `yaml:"refresh_interval"`
	StaleTime       string `yaml:"stale_time"`
	MaxRetries      *int   `yaml:"max_retries"`
	RetryDelay      string `yaml:"retry_delay"`
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("parse yaml: %w", err)
	}

	if fc.RunAddress != "" {
		c.RunAddress = fc.RunAddress
	}
	if fc.SheetURL != "" {
		c.SheetURL = fc.SheetURL
	}
	if fc.MaxRetries != nil {
		c.MaxRetries = *fc.MaxRetries
	}
	for _, d := range []struct {
		raw string
		dst *time.Duration
	}{
		{fc.RefreshInterval, &c.RefreshInterval},
		{fc.StaleTime, &c.StaleTime},
		{fc.RetryDelay, &c.RetryDelay},
	} {
		if d.raw == "" {
			continue
		}
		parsed, err := time.ParseDuration(d.raw)
		if err != nil {
			return fmt.Errorf("parse duration %q: %w", d.raw, err)
		}
		*d.dst = parsed
	}

	return nil
}

func (c *Config) applyEnv() {
	c.RunAddress = getEnv("RUN_ADDRESS", c.RunAddress)
	c.SheetURL = getEnv("SHEET_URL", c.SheetURL)
	c.RefreshInterval = getDuration("REFRESH_INTERVAL", c.RefreshInterval)
	c.StaleTime = getDuration("STALE_TIME", c.StaleTime)
	c.MaxRetries = getInt("MAX_RETRIES", c.MaxRetries)
	c.RetryDelay = getDuration("RETRY_DELAY", c.RetryDelay)
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getInt(key string, fallback int) int {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	var parsed int
	if _, err := fmt.Sscanf(value, "%d", &parsed); err != nil {
		return fallback
	}
	return parsed
}
