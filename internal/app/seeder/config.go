package seeder

import (
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// DefaultCategories is the catalogue seeded when no list is configured.
var DefaultCategories = []string{
	"Plástico",
	"Papel",
	"Vidro",
	"Metal",
	"Pilhas e Baterias",
	"Óleo de Cozinha",
	"Eletrônicos",
	"Orgânico",
}

// Config holds seeder settings.
type Config struct {
	Categories []string `yaml:"categories" env:"SEEDER_CATEGORIES" env-separator:","`
	DryRun     bool     `yaml:"dry_run"    env:"SEEDER_DRY_RUN"`
}

// LoadConfig reads seeder configuration from a YAML file and environment variables.
// Priority: ENV > YAML > defaults. An empty category list falls back to
// DefaultCategories.
func LoadConfig(path string) (*Config, error) {
	var cfg Config

	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("seeder config: file %s not found", path)
		}
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("seeder config: read %s: %w", path, err)
		}
	} else if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("seeder config: read env: %w", err)
	}

	if len(cfg.Categories) == 0 {
		cfg.Categories = append([]string(nil), DefaultCategories...)
	}
	return &cfg, nil
}
