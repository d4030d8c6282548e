package main

import (
	"github.com/spf13/cobra"
	"github.com/wifiqr/wifiqr-go/cmd/wifiqr/interactive"
	"github.com/wifiqr/wifiqr-go/pkg/network"
)

func (a *app) shellCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Edit and encode networks interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			events, err := a.eventLogger()
			if err != nil {
				return err
			}
			sh, err := interactive.New(network.NewEncoder("shell", events))
			if err != nil {
				return err
			}
			sh.Run(cmd.Context())
			return nil
		},
	}
}
