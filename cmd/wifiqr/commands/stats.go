package commands

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/wifiqr/wifiqr-go/pkg/log"
)

// Stats holds aggregate statistics about a log file.
type Stats struct {
	TotalEvents      int
	EventsByOutcome  map[log.Outcome]int
	EventsByScheme   map[string]int
	MissingByField   map[string]int
	DistinctNetworks map[string]bool
	TimeRange        struct {
		Start time.Time
		End   time.Time
	}
}

// CollectStats reads the whole log file and aggregates it.
func CollectStats(path string) (*Stats, error) {
	reader, err := log.NewReader(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	defer reader.Close()

	stats := &Stats{
		EventsByOutcome:  make(map[log.Outcome]int),
		EventsByScheme:   make(map[string]int),
		MissingByField:   make(map[string]int),
		DistinctNetworks: make(map[string]bool),
	}

	for {
		event, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read event: %w", err)
		}

		stats.TotalEvents++
		stats.EventsByOutcome[event.Outcome]++
		scheme := strings.ToUpper(event.Scheme)
		stats.EventsByScheme[scheme]++
		for _, f := range event.Missing {
			stats.MissingByField[f]++
		}
		if event.SSID != "" {
			stats.DistinctNetworks[scheme+"/"+event.SSID] = true
		}

		if stats.TimeRange.Start.IsZero() || event.Timestamp.Before(stats.TimeRange.Start) {
			stats.TimeRange.Start = event.Timestamp
		}
		if event.Timestamp.After(stats.TimeRange.End) {
			stats.TimeRange.End = event.Timestamp
		}
	}

	return stats, nil
}

// RunStats analyzes the log file and prints statistics.
func RunStats(path string, w io.Writer) error {
	stats, err := CollectStats(path)
	if err != nil {
		return err
	}
	printStats(w, stats)
	return nil
}

func printStats(w io.Writer, stats *Stats) {
	fmt.Fprintln(w, "=== wifiqr Payload Log Statistics ===")
	fmt.Fprintln(w)

	if stats.TotalEvents > 0 {
		fmt.Fprintf(w, "Time Range: %s to %s\n",
			stats.TimeRange.Start.Format(time.RFC3339),
			stats.TimeRange.End.Format(time.RFC3339))
		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "Total Events: %d\n", stats.TotalEvents)
	fmt.Fprintf(w, "Networks:     %d\n", len(stats.DistinctNetworks))
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Events by Outcome:")
	for _, o := range []log.Outcome{log.OutcomeEncoded, log.OutcomeRejected} {
		if count := stats.EventsByOutcome[o]; count > 0 {
			fmt.Fprintf(w, "  %-12s %d\n", o.String()+":", count)
		}
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Events by Scheme:")
	for _, s := range sortedKeys(stats.EventsByScheme) {
		fmt.Fprintf(w, "  %-12s %d\n", s+":", stats.EventsByScheme[s])
	}

	if len(stats.MissingByField) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Missing Fields:")
		for _, f := range sortedKeys(stats.MissingByField) {
			fmt.Fprintf(w, "  %-20s %d\n", f+":", stats.MissingByField[f])
		}
	}
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
