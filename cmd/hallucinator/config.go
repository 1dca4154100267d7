package main

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// envConfig carries environment defaults shared by subcommands. Flags
// always win; the environment only moves a flag's default.
type envConfig struct {
	OutputDir string `env:"HALLUCINATOR_OUTPUT_DIR" envDefault:"hallucinated_spectra"`
	DB        string `env:"HALLUCINATOR_DB"`
}

func parseEnv() (envConfig, error) {
	var cfg envConfig
	if err := env.Parse(&cfg); err != nil {
		return envConfig{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
