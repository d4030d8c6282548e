package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/wifiqr/wifiqr-go/pkg/version"
)

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s (network file format %s)\n", AppName, Version, version.Current)
		},
	}
}
