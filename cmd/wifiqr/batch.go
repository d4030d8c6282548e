package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/wifiqr/wifiqr-go/pkg/network"
	"gopkg.in/yaml.v3"
)

// batchEntry is one network in the yaml batch output.
type batchEntry struct {
	Name    string `yaml:"name"`
	Scheme  string `yaml:"scheme"`
	Payload string `yaml:"payload,omitempty"`
	Error   string `yaml:"error,omitempty"`
}

func (a *app) batchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "batch <file>",
		Short: "Encode every network in a YAML or CBOR file",
		Long: `Encode every network in a network file (.yaml, .yml or .cbor).

A network that fails validation is reported and the rest are still encoded.
The command exits non-zero if any network failed.`,
		Args: cobra.ExactArgs(1),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return a.v.BindPFlag("format", cmd.Flags().Lookup("format"))
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			format := a.v.GetString("format")
			if err := checkFormat(format); err != nil {
				return err
			}

			path := args[0]
			file, err := network.Load(path)
			if err != nil {
				return err
			}

			events, err := a.eventLogger()
			if err != nil {
				return err
			}
			results := network.NewEncoder(path, events).EncodeFile(file)
			a.logger.Info("batch encoded", "file", path, "networks", len(results), "failed", network.Failed(results))

			if err := writeResults(cmd.OutOrStdout(), results, format); err != nil {
				return err
			}
			if failed := network.Failed(results); failed > 0 {
				return fmt.Errorf("%d of %d networks failed", failed, len(results))
			}
			return nil
		},
	}

	cmd.Flags().String("format", "", "output format (text, yaml)")
	return cmd
}

func writeResults(w io.Writer, results []network.Result, format string) error {
	if format == "yaml" {
		entries := make([]batchEntry, 0, len(results))
		for _, r := range results {
			e := batchEntry{Name: r.Name, Scheme: r.Scheme, Payload: r.Payload}
			if r.Err != nil {
				e.Error = r.Err.Error()
			}
			entries = append(entries, e)
		}
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(entries); err != nil {
			return fmt.Errorf("failed to write results: %w", err)
		}
		return enc.Close()
	}

	for _, r := range results {
		if r.OK() {
			fmt.Fprintf(w, "%s\t%s\n", r.Name, r.Payload)
		} else {
			fmt.Fprintf(w, "%s\terror: %v\n", r.Name, r.Err)
		}
	}
	return nil
}
