package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/ilyakaznacheev/cleanenv"
)

const defaultPath = "./config.yaml"

// Load reads the file named by CONFIG_PATH, or ./config.yaml when the
// variable is unset, and overlays the environment. Values resolve as
// ENV > YAML > env-default tags. A missing default file is not an error.
func Load() (*Config, error) {
	if path := os.Getenv("CONFIG_PATH"); path != "" {
		return LoadFile(path)
	}

	cfg, err := LoadFile(defaultPath)
	if errors.Is(err, fs.ErrNotExist) {
		return LoadEnv()
	}
	return cfg, err
}

// LoadFile reads a YAML file overlaid with the environment.
func LoadFile(path string) (*Config, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("config: file %s: %w", path, err)
	}

	var cfg Config
	if err := cleanenv.ReadConfig(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	return finish(&cfg)
}

// LoadEnv builds the configuration from the environment and defaults only.
func LoadEnv() (*Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("config: read env: %w", err)
	}
	return finish(&cfg)
}

func finish(cfg *Config) (*Config, error) {
	cfg.normalize()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}
	return cfg, nil
}

// normalize trims list-valued settings so later comparisons are exact.
func (c *Config) normalize() {
	c.CORS.AllowedOrigins = trimList(c.CORS.AllowedOrigins)
	c.CORS.AllowedMethods = strings.ToUpper(trimList(c.CORS.AllowedMethods))
	c.CORS.AllowedHeaders = trimList(c.CORS.AllowedHeaders)
	c.Redis.KeyPrefix = strings.TrimSuffix(strings.TrimSpace(c.Redis.KeyPrefix), ":")
	c.Log.Format = strings.ToLower(strings.TrimSpace(c.Log.Format))
}

func trimList(s string) string {
	parts := strings.Split(s, ",")
	out := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, ",")
}
