package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msto63/strx/pkg/core/version"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprint(cmd.OutOrStdout(), version.Get("strx"))
			return err
		},
	}
}
