package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/livp123/logscope/internal/version"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:               "version",
		Short:             "Show version information",
		Long:              `Show the current version of logscope`,
		Args:              cobra.NoArgs,
		PersistentPreRunE: skipSetup,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.String())
		},
	}
}
