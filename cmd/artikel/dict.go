package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newDictCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "dict",
		Short: "Print the sizes of the loaded dictionaries",
		RunE: func(cmd *cobra.Command, args []string) error {
			dict, err := opts.settings.Loader().Load()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "contractions: %d\n", len(dict.Contractions))
			fmt.Fprintf(out, "tag rules:    %d\n", len(dict.TagRules))
			fmt.Fprintf(out, "uncountable:  %d\n", len(dict.Uncountable))
			return nil
		},
	}
}
