package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/wifiqr/wifiqr-go/cmd/wifiqr/commands"
	"github.com/wifiqr/wifiqr-go/pkg/log"
)

func logCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "log",
		Short: "View, export and summarize payload event logs",
	}
	cmd.AddCommand(logViewCmd(), logExportCmd(), logStatsCmd())
	return cmd
}

func addFilterFlags(cmd *cobra.Command, opts *commands.FilterOptions) {
	f := cmd.Flags()
	f.StringVar(&opts.Scheme, "scheme", "", "filter by scheme (nopass, WEP, WPA, WPA2-EAP)")
	f.StringVar(&opts.Outcome, "outcome", "", "filter by outcome (encoded, rejected)")
	f.StringVar(&opts.SSID, "ssid", "", "filter by SSID")
	f.StringVar(&opts.Source, "source", "", "filter by source (file path, cli, shell)")
	f.StringVar(&opts.TimeStart, "since", "", "only events at or after this RFC3339 time")
	f.StringVar(&opts.TimeEnd, "until", "", "only events before this RFC3339 time")
}

func logViewCmd() *cobra.Command {
	var opts commands.FilterOptions
	cmd := &cobra.Command{
		Use:   "view <file>",
		Short: "View log file in human-readable format",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filter, err := commands.BuildFilter(opts)
			if err != nil {
				return err
			}
			return commands.RunView(args[0], filter, cmd.OutOrStdout())
		},
	}
	addFilterFlags(cmd, &opts)
	return cmd
}

func logExportCmd() *cobra.Command {
	var (
		opts   commands.FilterOptions
		format string
		output string
	)
	cmd := &cobra.Command{
		Use:   "export <file>",
		Short: "Export log file to JSON lines or CSV",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filter, err := commands.BuildFilter(opts)
			if err != nil {
				return err
			}

			if output == "" {
				return commands.RunExport(args[0], format, filter, cmd.OutOrStdout())
			}
			return exportToFile(args[0], format, filter, output)
		},
	}
	addFilterFlags(cmd, &opts)
	cmd.Flags().StringVar(&format, "format", "jsonl", "output format (jsonl, csv)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: stdout)")
	return cmd
}

// exportToFile runs the export into output. A failure to close the file is
// reported when the export itself succeeded.
func exportToFile(path, format string, filter log.Filter, output string) (err error) {
	f, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close output file: %w", cerr)
		}
	}()
	return commands.RunExport(path, format, filter, f)
}

func logStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats <file>",
		Short: "Show statistics about the log file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return commands.RunStats(args[0], cmd.OutOrStdout())
		},
	}
}
