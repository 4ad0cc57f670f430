// Package config loads tableshell settings from flags, environment variables,
// an optional .env file and an optional config file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"tableshell/internal/output"
)

// EnvPrefix prefixes every environment variable, e.g. TABLESHELL_MENU_FILE.
const EnvPrefix = "TABLESHELL"

// Setting keys shared by flags, environment variables and config files.
const (
	KeyMenuFile             = "menu_file"
	KeyInvoiceFile          = "invoice_file"
	KeyCurrency             = "currency"
	KeySpecialRequestCharge = "special_request_charge"
	KeyHistoryFile          = "history_file"
	KeyColor                = "color"
	KeyLogLevel             = "log_level"
	KeyLogFile              = "log_file"
	KeyTestMode             = "test_mode"
)

// Config holds the resolved settings.
type Config struct {
	MenuFile             string
	InvoiceFile          string
	Currency             string
	SpecialRequestCharge int // in cents
	HistoryFile          string
	Color                output.Mode
	LogLevel             string
	LogFile              string
	TestMode             bool
}

// NewViper returns a viper instance with defaults and environment binding.
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetDefault(KeyMenuFile, "food.csv")
	v.SetDefault(KeyInvoiceFile, "invoices.txt")
	v.SetDefault(KeyCurrency, "€")
	v.SetDefault(KeySpecialRequestCharge, 100)
	v.SetDefault(KeyHistoryFile, "")
	v.SetDefault(KeyColor, "auto")
	v.SetDefault(KeyLogLevel, "")
	v.SetDefault(KeyLogFile, "")
	v.SetDefault(KeyTestMode, false)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

// LoadDotEnv loads variables from path into the process environment without
// overriding variables that are already set. A missing file is not an error.
func LoadDotEnv(path string) error {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

// ReadConfigFile reads explicit if given, otherwise looks for tableshell.{yaml,toml,json}
// in the working directory and in $HOME/.config/tableshell. Only an explicit
// file is required to exist.
func ReadConfigFile(v *viper.Viper, explicit string) error {
	if explicit != "" {
		v.SetConfigFile(explicit)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("read config %s: %w", explicit, err)
		}
		return nil
	}

	v.SetConfigName("tableshell")
	v.AddConfigPath(".")
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(filepath.Join(home, ".config", "tableshell"))
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("read config: %w", err)
	}
	return nil
}

// Load resolves and validates the settings held by v.
func Load(v *viper.Viper) (*Config, error) {
	mode, ok := output.ParseMode(strings.ToLower(v.GetString(KeyColor)))
	if !ok {
		return nil, fmt.Errorf("invalid %s %q: expected auto, always or never", KeyColor, v.GetString(KeyColor))
	}

	cfg := &Config{
		MenuFile:             strings.TrimSpace(v.GetString(KeyMenuFile)),
		InvoiceFile:          strings.TrimSpace(v.GetString(KeyInvoiceFile)),
		Currency:             v.GetString(KeyCurrency),
		SpecialRequestCharge: v.GetInt(KeySpecialRequestCharge),
		HistoryFile:          v.GetString(KeyHistoryFile),
		Color:                mode,
		LogLevel:             v.GetString(KeyLogLevel),
		LogFile:              v.GetString(KeyLogFile),
		TestMode:             v.GetBool(KeyTestMode),
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks settings that would otherwise fail late, inside a command.
func (c *Config) Validate() error {
	if c.MenuFile == "" {
		return fmt.Errorf("%s must not be empty", KeyMenuFile)
	}
	if c.InvoiceFile == "" {
		return fmt.Errorf("%s must not be empty", KeyInvoiceFile)
	}
	if c.SpecialRequestCharge <= 0 {
		return fmt.Errorf("%s must be positive, got %d", KeySpecialRequestCharge, c.SpecialRequestCharge)
	}
	return nil
}
