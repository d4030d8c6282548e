package commands

import (
	"fmt"
	"time"

	"github.com/wifiqr/wifiqr-go/pkg/log"
)

// FilterOptions holds the raw filter flags shared by view and export.
type FilterOptions struct {
	Scheme    string
	Outcome   string
	SSID      string
	Source    string
	TimeStart string
	TimeEnd   string
}

// BuildFilter converts flag values into a log.Filter.
func BuildFilter(opts FilterOptions) (log.Filter, error) {
	filter := log.Filter{
		Scheme: opts.Scheme,
		SSID:   opts.SSID,
		Source: opts.Source,
	}

	if opts.Outcome != "" {
		o, ok := log.ParseOutcome(opts.Outcome)
		if !ok {
			return log.Filter{}, fmt.Errorf("unknown outcome: %s (valid: encoded, rejected)", opts.Outcome)
		}
		filter.Outcome = &o
	}

	if opts.TimeStart != "" {
		t, err := time.Parse(time.RFC3339, opts.TimeStart)
		if err != nil {
			return log.Filter{}, fmt.Errorf("invalid since format: %w", err)
		}
		filter.TimeStart = &t
	}

	if opts.TimeEnd != "" {
		t, err := time.Parse(time.RFC3339, opts.TimeEnd)
		if err != nil {
			return log.Filter{}, fmt.Errorf("invalid until format: %w", err)
		}
		filter.TimeEnd = &t
	}

	return filter, nil
}
