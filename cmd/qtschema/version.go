package main

import (
	"fmt"

	json "github.com/goccy/go-json"
	"github.com/grovetools/core/version"
	"github.com/spf13/cobra"
)

var versionFormat struct {
	json  bool
	short bool
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show qtschema build information",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		info := version.GetInfo()
		out := cmd.OutOrStdout()

		switch {
		case versionFormat.short:
			fmt.Fprintln(out, info.Version)
		case versionFormat.json:
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			if err := enc.Encode(info); err != nil {
				return fmt.Errorf("failed to encode build information: %w", err)
			}
		default:
			fmt.Fprintf(out, "%s\n%s\n", langStyle.Render("qtschema"), info.String())
		}
		return nil
	},
}

func init() {
	versionCmd.Flags().BoolVar(&versionFormat.json, "json", false, "Print build information as JSON")
	versionCmd.Flags().BoolVar(&versionFormat.short, "short", false, "Print only the version string")
	versionCmd.MarkFlagsMutuallyExclusive("json", "short")
}
