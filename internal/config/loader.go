package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	pathEnv     = "CONFIG_PATH"
	defaultPath = "./config.yaml"
)

// Load reads the YAML file named by CONFIG_PATH (./config.yaml when unset),
// overlays environment variables and validates the result. A missing default
// file is not an error: the service is then configured from ENV alone.
func Load() (*Config, error) {
	path, explicit := os.LookupEnv(pathEnv)
	if !explicit || path == "" {
		path, explicit = defaultPath, false
	}

	var cfg Config
	switch _, err := os.Stat(path); {
	case err == nil:
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	case explicit || !errors.Is(err, fs.ErrNotExist):
		return nil, fmt.Errorf("config: file %s: %w", path, err)
	default:
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("config: read env: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}
	return &cfg, nil
}

// Describe lists every environment variable the service reads, with defaults.
func Describe() (string, error) {
	header := fmt.Sprintf("Configuration is read from $%s (default %s) and these variables:", pathEnv, defaultPath)
	return cleanenv.GetDescription(&Config{}, &header)
}
