// Copyright 2026 The Meridian Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

// Meridian is a tool for signing, verifying, and inspecting signed
// envelopes.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"gitlab.com/meridiannetwork/meridian/pkg/config"
)

var flagRoot = struct {
	Config   string
	LogLevel string
	NoColor  bool
}{}

var log = zerolog.Nop()

var rootCmd = &cobra.Command{
	Use:           "meridian",
	Short:         "Sign, verify, and inspect signed envelopes",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if flagRoot.NoColor {
			color.NoColor = true
		}
		level, err := zerolog.ParseLevel(flagRoot.LogLevel)
		if err != nil {
			return fmt.Errorf("log level %q is not supported", flagRoot.LogLevel)
		}
		log = zerolog.New(zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: time.RFC3339,
		}).Level(level).With().Timestamp().Logger()
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagRoot.Config, "config", "c", "", "Path to the configuration file")
	rootCmd.PersistentFlags().StringVar(&flagRoot.LogLevel, "log-level", "warn", "Log level (trace|debug|info|warn|error)")
	rootCmd.PersistentFlags().BoolVar(&flagRoot.NoColor, "no-color", false, "Disable colored output")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("Error:"), err)
		os.Exit(1)
	}
}

// configViper locates the configuration file: --config if given, otherwise
// ~/.meridian/config.yaml. A missing file is fine; it appears on first save.
func configViper() (*viper.Viper, error) {
	v := viper.New()
	if flagRoot.Config != "" {
		v.SetConfigFile(flagRoot.Config)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		dir := filepath.Join(home, ".meridian")
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return nil, err
		}
		v.SetConfigFile(filepath.Join(dir, "config.yaml"))
	}
	if err := v.ReadInConfig(); err != nil && !os.IsNotExist(err) {
		return nil, err
	}
	log.Debug().Str("file", v.ConfigFileUsed()).Msg("configuration loaded")
	return v, nil
}

func loadConfig() (*config.Config, error) {
	v, err := configViper()
	if err != nil {
		return nil, err
	}
	return config.Load(v)
}

// resolveChainContext returns the chain context to bind signatures to, or ""
// for a bare context. An explicit --chain-context wins over --network, which
// wins over the configured default network; --bare disables chain binding
// entirely.
func resolveChainContext(network, chainContext string, bare bool) (string, error) {
	switch {
	case bare:
		if network != "" || chainContext != "" {
			return "", fmt.Errorf("--bare conflicts with --network and --chain-context")
		}
		return "", nil
	case chainContext != "":
		return chainContext, nil
	}

	cfg, err := loadConfig()
	if err != nil {
		return "", err
	}
	name := network
	if name == "" {
		name = cfg.Networks.Default
		if name == "" {
			return "", fmt.Errorf("no default network configured; use --network, --chain-context, or --bare")
		}
	}
	net, ok := cfg.Networks.All[name]
	if !ok {
		return "", fmt.Errorf("network %q is not configured", name)
	}
	return net.ChainContext, nil
}
