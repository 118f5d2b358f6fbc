package main

import (
	"errors"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/wetlandworld/frogquiz/internal/app"
	"github.com/wetlandworld/frogquiz/internal/screen"
)

var errRegistryCheck = errors.New("screen registry check failed")

var screensCmd = &cobra.Command{
	Use:   "screens",
	Short: "List registry entries and whether each can be built",
	RunE: func(cmd *cobra.Command, args []string) error {
		logger, err := newLogger()
		if err != nil {
			return err
		}

		path := viper.GetString(keyRegistry)
		registry, loadErr := app.LoadRegistry(path, logger)

		statuses, err := app.CheckRegistry(registry)
		if err != nil {
			return err
		}

		ok := writeScreenReport(cmd.OutOrStdout(), registry, statuses)
		check, _ := cmd.Flags().GetBool("check")
		if !check {
			return loadErr
		}
		if loadErr != nil {
			return fmt.Errorf("%w: %w", errRegistryCheck, loadErr)
		}
		if !ok {
			return errRegistryCheck
		}
		return nil
	},
}

func init() {
	screensCmd.Flags().Bool("check", false, "exit non-zero when an entry is skipped or cannot be built")
	rootCmd.AddCommand(screensCmd)
}

// writeScreenReport prints one line per entry followed by skipped entries. It
// reports whether every entry is usable.
func writeScreenReport(w io.Writer, registry *screen.Registry, statuses []app.ScreenStatus) bool {
	ok := true
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "SCREEN\tREFERENCE\tSTATUS")
	for _, s := range statuses {
		status := "ok"
		if !s.Resolvable {
			status = "unknown constructor"
			if s.Suggestion != "" {
				status += fmt.Sprintf(" (did you mean %s?)", s.Suggestion)
			}
			ok = false
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n", s.Name, s.Reference, status)
	}
	for _, name := range registry.Skipped() {
		fmt.Fprintf(tw, "%s\t-\tskipped\n", name)
		ok = false
	}
	_ = tw.Flush()
	return ok
}
