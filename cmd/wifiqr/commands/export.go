package commands

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/wifiqr/wifiqr-go/pkg/log"
)

type exportRecord struct {
	Timestamp  string   `json:"timestamp"`
	Source     string   `json:"source,omitempty"`
	Network    string   `json:"network,omitempty"`
	Scheme     string   `json:"scheme"`
	Outcome    string   `json:"outcome"`
	SSID       string   `json:"ssid,omitempty"`
	Missing    []string `json:"missing,omitempty"`
	Error      string   `json:"error,omitempty"`
	PayloadLen int      `json:"payload_len,omitempty"`
}

func newExportRecord(event log.Event) exportRecord {
	return exportRecord{
		Timestamp:  event.Timestamp.UTC().Format("2006-01-02T15:04:05.000000Z"),
		Source:     event.Source,
		Network:    event.Network,
		Scheme:     event.Scheme,
		Outcome:    strings.ToLower(event.Outcome.String()),
		SSID:       event.SSID,
		Missing:    event.Missing,
		Error:      event.Error,
		PayloadLen: event.PayloadLen,
	}
}

// RunExport writes the events matching filter to w as JSON lines or CSV.
func RunExport(path, format string, filter log.Filter, w io.Writer) error {
	if format != "jsonl" && format != "csv" {
		return fmt.Errorf("unknown format: %s (supported: jsonl, csv)", format)
	}

	reader, err := log.NewFilteredReader(path, filter)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer reader.Close()

	if format == "csv" {
		return exportCSV(reader, w)
	}
	return exportJSONL(reader, w)
}

func exportJSONL(reader *log.Reader, w io.Writer) error {
	encoder := json.NewEncoder(w)
	for {
		event, err := reader.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}
		if err := encoder.Encode(newExportRecord(event)); err != nil {
			return fmt.Errorf("failed to encode event: %w", err)
		}
	}
}

func exportCSV(reader *log.Reader, w io.Writer) error {
	cw := csv.NewWriter(w)

	header := []string{"timestamp", "source", "network", "scheme", "outcome", "ssid", "missing", "error", "payload_len"}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for {
		event, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}

		r := newExportRecord(event)
		row := []string{
			r.Timestamp,
			r.Source,
			r.Network,
			r.Scheme,
			r.Outcome,
			r.SSID,
			strings.Join(r.Missing, ";"),
			r.Error,
			strconv.Itoa(r.PayloadLen),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("failed to flush csv: %w", err)
	}
	return nil
}
