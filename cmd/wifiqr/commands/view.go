// Package commands implements the wifiqr log commands.
package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/wifiqr/wifiqr-go/pkg/log"
)

// RunView prints every event in the log file that matches filter.
func RunView(path string, filter log.Filter, w io.Writer) error {
	reader, err := log.NewFilteredReader(path, filter)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer reader.Close()

	for {
		event, err := reader.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}
		formatEvent(w, event)
	}
}

// formatEvent writes a one-line representation of the event to w.
//
//	2026-01-28T10:15:32.123Z ENCODED  WPA      home [networks.yaml] 38 bytes
//	2026-01-28T10:15:33.000Z REJECTED WEP      lab  [cli] missing: password
func formatEvent(w io.Writer, event log.Event) {
	ts := event.Timestamp.UTC().Format("2006-01-02T15:04:05.000Z")

	label := event.SSID
	if event.Network != "" && event.Network != event.SSID {
		if event.SSID == "" {
			label = event.Network
		} else {
			label = fmt.Sprintf("%s (%s)", event.Network, event.SSID)
		}
	}
	if label == "" {
		label = "-"
	}

	fmt.Fprintf(w, "%s %-8s %-8s %s", ts, event.Outcome, event.Scheme, label)
	if event.Source != "" {
		fmt.Fprintf(w, " [%s]", event.Source)
	}

	switch event.Outcome {
	case log.OutcomeEncoded:
		fmt.Fprintf(w, " %d bytes", event.PayloadLen)
	case log.OutcomeRejected:
		if len(event.Missing) > 0 {
			fmt.Fprintf(w, " missing: %s", strings.Join(event.Missing, ", "))
		} else if event.Error != "" {
			fmt.Fprintf(w, " error: %s", event.Error)
		}
	}
	fmt.Fprintln(w)
}
