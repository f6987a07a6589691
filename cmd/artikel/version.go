package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cognicore/artikel/pkg/artikel/config"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		// no settings needed
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), config.VersionString)
		},
	}
}
