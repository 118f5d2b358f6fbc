package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/wetlandworld/frogquiz/internal/logging"
)

// Config keys shared by flags, env (FROGQUIZ_*) and the config file
const (
	keyRegistry = "registry"
	keyAssets   = "assets"
	keyLogLevel = "log-level"
	keyStart    = "start"
	keyMetrics  = "metrics-addr"
)

var rootCmd = &cobra.Command{
	Use:           "frogquiz",
	Short:         "Frog call quiz for Litoria's Wetland World",
	Long:          "frogquiz shows frog photos, spectrograms and calls, and quizzes visitors on a mystery frog.",
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runGUI,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "config file (default .frogquiz.toml)")
	flags.String(keyRegistry, "", "screen registry file (.json, .toml or .yaml); embedded registry when empty")
	flags.String(keyAssets, "", "directory asset paths are resolved against")
	flags.String(keyLogLevel, "info", "log level: debug, info, warn, error")

	for _, key := range []string{keyRegistry, keyAssets, keyLogLevel} {
		_ = viper.BindPFlag(key, flags.Lookup(key))
	}
}

func initConfig() {
	if cfgFile, _ := rootCmd.Flags().GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName(".frogquiz")
		viper.SetConfigType("toml")
		viper.AddConfigPath(".")
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
		}
	}

	viper.SetEnvPrefix("FROGQUIZ")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	// No config file is fine; flags and defaults apply.
	_ = viper.ReadInConfig()
}

// newLogger builds the logger for the configured level
func newLogger() (*slog.Logger, error) {
	level, err := logging.ParseLevel(viper.GetString(keyLogLevel))
	if err != nil {
		return nil, err
	}
	return logging.New(level), nil
}
