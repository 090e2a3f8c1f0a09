// Package config loads the dbudgeteer settings from the environment and an optional .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const (
	DefaultSpreadsheet = "1GMYHwNHrFYrpwsmfaSX0UjlH-eZjppRsOyEMzIEfwXU"
	DefaultRange       = "Savings!B1:C11"
)

type Config struct {
	Credentials     string        `env:"DBUDGETEER_CREDENTIALS"`
	Tokens          string        `env:"DBUDGETEER_TOKENS"`
	User            string        `env:"DBUDGETEER_USER"             envDefault:"user"`
	HTTPAddress     string        `env:"DBUDGETEER_HTTP_ADDR"        envDefault:":8080"`
	RedirectHost    string        `env:"DBUDGETEER_REDIRECT_HOST"    envDefault:"localhost"`
	RedirectPort    int           `env:"DBUDGETEER_REDIRECT_PORT"    envDefault:"8090"`
	RedirectTimeout time.Duration `env:"DBUDGETEER_REDIRECT_TIMEOUT" envDefault:"5m"`
	Spreadsheet     string        `env:"DBUDGETEER_SPREADSHEET"`
	Range           string        `env:"DBUDGETEER_RANGE"`
	Scopes          []string      `env:"DBUDGETEER_SCOPES"           envDefault:"https://www.googleapis.com/auth/spreadsheets.readonly" envSeparator:","`
	NoBrowser       bool          `env:"DBUDGETEER_NO_BROWSER"       envDefault:"false"`
}

// Load reads the .env files (if present) into the process environment and then parses the
// DBUDGETEER_* variables. Variables already set in the environment take precedence.
func Load(dotenv ...string) (*Config, error) {
	for _, file := range dotenv {
		if err := godotenv.Load(file); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("error loading %v (%w)", file, err)
		}
	}

	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if cfg.Spreadsheet == "" {
		cfg.Spreadsheet = DefaultSpreadsheet
	}

	if cfg.Range == "" {
		cfg.Range = DefaultRange
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c Config) validate() error {
	if c.RedirectPort < 0 || c.RedirectPort > 65535 {
		return fmt.Errorf("invalid redirect port %v", c.RedirectPort)
	}

	if c.RedirectTimeout < 0 {
		return fmt.Errorf("invalid redirect timeout %v", c.RedirectTimeout)
	}

	if len(c.Scopes) == 0 {
		return fmt.Errorf("no OAuth scopes configured")
	}

	return nil
}
