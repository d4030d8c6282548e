// Command wifiqr builds the WIFI: payloads carried by Wi-Fi QR codes.
//
// Usage:
//
//	wifiqr <command> [flags]
//
// Commands:
//
//	encode   Encode one network given on the command line
//	batch    Encode every network in a YAML or CBOR file
//	convert  Convert a network file between YAML and CBOR
//	shell    Edit and encode networks interactively
//	log      View, export and summarize payload event logs
//	version  Print the version
//
// Examples:
//
//	# WPA network
//	wifiqr encode wpa --ssid HomeNetwork --password 'P@ss;word'
//
//	# Enterprise network
//	wifiqr encode wpa2-eap --ssid corp --identity alice --anonymous-identity anon \
//	    --password secret --eap peap --phase2 mschapv2
//
//	# Encode a file, recording events
//	wifiqr batch --log-file payloads.wqlog networks.yaml
//
//	# Summarize the event log
//	wifiqr log stats payloads.wqlog
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
)

// Version is set at build time with -ldflags "-X main.Version=...".
var Version = "dev"

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := execute(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		cancel()
		os.Exit(1)
	}
}

// execute runs the command line args against a fresh command tree.
func execute(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	a := &app{}
	defer a.close()

	cmd := a.rootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	return cmd.ExecuteContext(ctx)
}
