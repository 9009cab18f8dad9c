// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the fx-convert CLI.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/pdiddy/fx-convert/internal/converter"
	"github.com/pdiddy/fx-convert/internal/currency"
	"github.com/pdiddy/fx-convert/internal/logger"
	"github.com/pdiddy/fx-convert/internal/rates"
	"github.com/pdiddy/fx-convert/internal/secrets"
	"github.com/pdiddy/fx-convert/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

var (
	// loadedSecrets holds credentials loaded from the secrets directory.
	loadedSecrets map[string]string

	// log is built in PersistentPreRunE from --log-level and --log-format.
	log = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "fx-convert",
	Short: "Convert amounts between currencies using live exchange rates",
	Long: `fx-convert converts an amount from one currency to another. Each
conversion fetches the latest rate table for the source currency from
exchangerate-api.com; converting a currency into itself needs no network.

Use "convert" for a single conversion or "interactive" for a session with
amount, currency selection, convert and swap commands.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		l, err := logger.New(viper.GetString("log_level"), logger.Format(viper.GetString("log_format")))
		if err != nil {
			return err
		}
		log = l

		s, err := secrets.Load(viper.GetString("secrets_dir"), cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		loadedSecrets = s
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	defaults := types.DefaultConfig()
	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "config file (default: ./fx-convert.yaml or ~/.config/fx-convert/config.yaml)")
	flags.String("base-url", defaults.BaseURL, "exchange-rate endpoint; the source currency code is appended")
	flags.Duration("timeout", defaults.Timeout, "HTTP request timeout (0 waits indefinitely)")
	flags.String("locale", defaults.Locale, "BCP 47 locale used to format amounts")
	flags.String("currency-display", defaults.CurrencyDisplay, "tag amounts with the currency code or symbol (code|symbol)")
	flags.String("color", "auto", "colour the result (auto|always|never)")
	flags.String("log-level", "warn", "diagnostic log level (debug|info|warn|error)")
	flags.String("log-format", string(logger.FormatConsole), "diagnostic log format (console|json)")
	flags.String("secrets-dir", secrets.DefaultDir, "directory holding the exchange-rate-api-key file")

	for key, flag := range map[string]string{
		"base_url":         "base-url",
		"timeout":          "timeout",
		"locale":           "locale",
		"currency_display": "currency-display",
		"color":            "color",
		"log_level":        "log-level",
		"log_format":       "log-format",
		"secrets_dir":      "secrets-dir",
	} {
		viper.BindPFlag(key, flags.Lookup(flag))
	}
	viper.SetDefault("user_agent", defaults.UserAgent)
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("fx-convert")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "fx-convert"))
		}
	}

	viper.SetEnvPrefix("FX_CONVERT")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// loadConfig assembles the converter configuration from flags, environment,
// config file and the secrets directory, in that order of precedence.
func loadConfig() (types.Config, error) {
	cfg := types.Config{
		HTTPConfig: types.HTTPConfig{
			Timeout:   viper.GetDuration("timeout"),
			UserAgent: viper.GetString("user_agent"),
		},
		BaseURL:         viper.GetString("base_url"),
		APIKey:          secrets.Resolve(viper.GetString("api_key"), loadedSecrets, secrets.ExchangeRateAPIKey, types.DefaultAPIKey),
		Locale:          viper.GetString("locale"),
		CurrencyDisplay: viper.GetString("currency_display"),
	}
	if err := cfg.Validate(); err != nil {
		return types.Config{}, err
	}
	return cfg, nil
}

// useColor resolves --color against whether f is a terminal.
func useColor(f *os.File) (bool, error) {
	switch mode := viper.GetString("color"); mode {
	case "always":
		return true, nil
	case "never":
		return false, nil
	case "auto", "":
		return term.IsTerminal(int(f.Fd())), nil
	default:
		return false, fmt.Errorf("unknown --color mode %q", mode)
	}
}

// newController wires a controller to ui with the exchangerate-api provider.
func newController(cfg types.Config, ui converter.UI) (*converter.Controller, error) {
	format, err := currency.NewFormatter(cfg.Locale, currency.Display(cfg.CurrencyDisplay))
	if err != nil {
		return nil, err
	}
	log.Debug("converter configured",
		zap.String("base_url", cfg.BaseURL),
		zap.Duration("timeout", cfg.Timeout),
		zap.String("locale", cfg.Locale))
	return converter.New(ui, rates.NewExchangeRateAPI(cfg), format, log), nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	log.Sync()
	if err != nil {
		os.Exit(1)
	}
}
