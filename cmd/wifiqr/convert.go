package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/wifiqr/wifiqr-go/pkg/network"
)

func (a *app) convertCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "convert <in> <out>",
		Short: "Convert a network file between YAML and CBOR",
		Long: `Convert a network file. Formats are chosen by extension
(.yaml, .yml or .cbor). The input is validated but not encoded.`,
		Example: "  wifiqr convert networks.yaml networks.cbor",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, out := args[0], args[1]

			file, err := network.Load(in)
			if err != nil {
				return err
			}
			format, err := network.FormatFromPath(out)
			if err != nil {
				return err
			}
			data, err := file.Encode(format)
			if err != nil {
				return err
			}
			if err := os.WriteFile(out, data, 0600); err != nil {
				return fmt.Errorf("failed to write %s: %w", out, err)
			}

			a.logger.Info("converted", "in", in, "out", out, "format", format, "networks", len(file.Networks))
			return nil
		},
	}
}
