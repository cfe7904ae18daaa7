package commands

import (
	"github.com/spf13/cobra"

	"github.com/erraggy/oastsgen"
	"github.com/erraggy/oastsgen/internal/cliutil"
)

func newVersionCommand() *cobra.Command {
	var full bool
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			if full {
				cliutil.Writef(cmd.OutOrStdout(), "%s\n", oastsgen.BuildInfo())
				return
			}
			cliutil.Writef(cmd.OutOrStdout(), "oastsgen %s\n", oastsgen.Version())
		},
	}
	cmd.Flags().BoolVar(&full, "full", false, "include commit, build time and Go version")
	return cmd
}
