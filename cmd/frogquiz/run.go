package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/wetlandworld/frogquiz/internal/app"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Open the quiz window",
	RunE:  runGUI,
}

func init() {
	runCmd.Flags().String(keyStart, "", "screen to show first (default home)")
	runCmd.Flags().String(keyMetrics, "", "serve prometheus metrics on this address, e.g. :9090")
	for _, key := range []string{keyStart, keyMetrics} {
		_ = viper.BindPFlag(key, runCmd.Flags().Lookup(key))
	}
	rootCmd.AddCommand(runCmd)
}

func runGUI(cmd *cobra.Command, args []string) error {
	logger, err := newLogger()
	if err != nil {
		return err
	}

	return app.Run(app.Options{
		RegistryPath: viper.GetString(keyRegistry),
		AssetsDir:    viper.GetString(keyAssets),
		StartScreen:  viper.GetString(keyStart),
		MetricsAddr:  viper.GetString(keyMetrics),
		Version:      version,
		Logger:       logger,
	})
}
