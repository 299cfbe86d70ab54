package main

import (
	"fmt"
	"strings"

	"github.com/aretw0/strata"
	"github.com/spf13/cobra"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of strata",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "strata version %s\n", strings.TrimSpace(strata.Version))
		},
	}
}
