package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/wetlandworld/frogquiz/internal/model"
	"github.com/wetlandworld/frogquiz/internal/platform"
)

var frogsCmd = &cobra.Command{
	Use:   "frogs",
	Short: "List the frogs and check their assets exist",
	RunE: func(cmd *cobra.Command, args []string) error {
		assetsDir := viper.GetString(keyAssets)
		if assetsDir == "" {
			assetsDir = "."
		}

		missing := writeFrogReport(cmd.OutOrStdout(), model.Frogs(), assetsDir)
		if missing > 0 {
			return fmt.Errorf("%d asset(s) missing under %s", missing, assetsDir)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(frogsCmd)
}

// writeFrogReport prints each frog with its missing assets and returns the
// number of missing assets
func writeFrogReport(w io.Writer, frogs []model.Frog, assetsDir string) int {
	total := 0
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tSPECIES\tASSETS")
	for _, f := range frogs {
		missing := platform.MissingAssets(assetsDir, f.Assets())
		total += len(missing)

		status := "ok"
		if len(missing) > 0 {
			status = "missing: " + strings.Join(missing, ", ")
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", f.ID, f.DisplayName(), f.Species, status)
	}
	_ = tw.Flush()
	return total
}
