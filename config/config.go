// Package config holds the fbd configuration.
//
// Values are resolved in order: built-in defaults, TOML files, the .env file,
// FINBOARD_* environment variables. Command line flags override them last.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/etnz/finboard/date"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
)

// DefaultFile is the configuration file read when none is given and it exists.
const DefaultFile = "finboard.toml"

// DotEnvFile is the dotenv file loaded into the environment, if it exists.
const DotEnvFile = ".env"

// Environment variables overriding the configuration files.
const (
	EnvCurrency      = "FINBOARD_CURRENCY"
	EnvWindow        = "FINBOARD_WINDOW"
	EnvLastMonths    = "FINBOARD_LAST_MONTHS"
	EnvPricesFile    = "FINBOARD_PRICES_FILE"
	EnvPricesPath    = "FINBOARD_PRICES_PATH"
	EnvDividendsFile = "FINBOARD_DIVIDENDS_FILE"
	EnvDividendsPath = "FINBOARD_DIVIDENDS_PATH"
	EnvLogLevel      = "FINBOARD_LOG_LEVEL"
)

// Config is the application configuration.
type Config struct {
	Currency   string `toml:"currency" validate:"required,iso4217"` // reporting currency
	Window     string `toml:"window" validate:"required"`           // default chart window token
	LastMonths int    `toml:"last_months" validate:"gte=0"`         // length of the trailing dividend series
	Prices     Source `toml:"prices"`
	Dividends  Source `toml:"dividends"`
	Log        Log    `toml:"log"`
}

// Source locates records in a JSON document.
type Source struct {
	File string `toml:"file" validate:"required"` // "-" for stdin
	Path string `toml:"path"`                     // JSONPath to the record array
}

// Log configures the CLI logger.
type Log struct {
	Level string `toml:"level" validate:"oneof=trace debug info warn error"`
}

// NewDefaultConfig returns the built-in configuration.
func NewDefaultConfig() *Config {
	return &Config{
		Currency:   "USD",
		Window:     string(date.OneMonth),
		LastMonths: 12,
		Prices:     Source{File: "prices.json", Path: "$"},
		Dividends:  Source{File: "dividends.json", Path: "$"},
		Log:        Log{Level: "info"},
	}
}

// Load returns the default configuration overridden by each file in paths,
// later files taking precedence, then by the .env file and the environment.
func Load(paths ...string) (*Config, error) {
	return load(DotEnvFile, paths...)
}

func load(dotenv string, paths ...string) (*Config, error) {
	cfg := NewDefaultConfig()
	for _, path := range paths {
		if path == "" {
			continue
		}
		if err := decodeFile(path, cfg); err != nil {
			return nil, err
		}
	}

	// godotenv never overrides a variable already set in the environment.
	if err := godotenv.Load(dotenv); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("cannot load %s: %w", dotenv, err)
	}
	if err := applyEnvOverrides(cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func decodeFile(path string, cfg *Config) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("cannot read config file %s: %w", path, err)
	}
	defer f.Close()
	if err := toml.NewDecoder(f).DisallowUnknownFields().Decode(cfg); err != nil {
		return fmt.Errorf("cannot parse config file %s: %w", path, err)
	}
	return nil
}

// applyEnvOverrides applies the FINBOARD_* environment variables to cfg.
func applyEnvOverrides(cfg *Config) error {
	if v := os.Getenv(EnvCurrency); v != "" {
		cfg.Currency = v
	}
	if v := os.Getenv(EnvWindow); v != "" {
		cfg.Window = v
	}
	if v := os.Getenv(EnvLastMonths); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %s=%q: %w", EnvLastMonths, v, err)
		}
		cfg.LastMonths = n
	}
	if v := os.Getenv(EnvPricesFile); v != "" {
		cfg.Prices.File = v
	}
	if v := os.Getenv(EnvPricesPath); v != "" {
		cfg.Prices.Path = v
	}
	if v := os.Getenv(EnvDividendsFile); v != "" {
		cfg.Dividends.File = v
	}
	if v := os.Getenv(EnvDividendsPath); v != "" {
		cfg.Dividends.Path = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.Log.Level = v
	}
	return nil
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks that every value of cfg is usable.
func (cfg *Config) Validate() error {
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if _, err := date.ParseWindow(cfg.Window); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// ChartWindow returns the default chart window.
func (cfg *Config) ChartWindow() date.Window {
	w, _ := date.ParseWindow(cfg.Window)
	return w
}
