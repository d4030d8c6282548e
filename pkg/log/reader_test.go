package log

import (
	"io"
	"path/filepath"
	"testing"
	"time"
)

func writeEvents(t *testing.T, events ...Event) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "events.wqlog")
	logger, err := NewFileLogger(path)
	if err != nil {
		t.Fatalf("NewFileLogger failed: %v", err)
	}
	for _, e := range events {
		logger.Log(e)
	}
	if err := logger.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	return path
}

func sampleEvents() []Event {
	base := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	return []Event{
		{Timestamp: base, Source: "cli", Scheme: "WPA", Outcome: OutcomeEncoded, SSID: "home"},
		{Timestamp: base.Add(time.Minute), Source: "nets.yaml", Scheme: "WEP", Outcome: OutcomeRejected, SSID: "lab", Missing: []string{"password"}},
		{Timestamp: base.Add(2 * time.Minute), Source: "nets.yaml", Scheme: "WPA2-EAP", Outcome: OutcomeEncoded, SSID: "corp"},
		{Timestamp: base.Add(3 * time.Minute), Source: "nets.yaml", Scheme: "wpa", Outcome: OutcomeEncoded, SSID: "guest"},
	}
}

func TestReaderReadsAllEvents(t *testing.T) {
	path := writeEvents(t, sampleEvents()...)

	reader, err := NewReader(path)
	if err != nil {
		t.Fatalf("NewReader failed: %v", err)
	}
	defer reader.Close()

	var ssids []string
	for {
		event, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("Next failed: %v", err)
		}
		ssids = append(ssids, event.SSID)
	}

	want := []string{"home", "lab", "corp", "guest"}
	if len(ssids) != len(want) {
		t.Fatalf("got %v, want %v", ssids, want)
	}
	for i := range want {
		if ssids[i] != want[i] {
			t.Errorf("event %d: got %q, want %q", i, ssids[i], want[i])
		}
	}
}

func TestReaderFilters(t *testing.T) {
	base := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	rejected := OutcomeRejected
	encoded := OutcomeEncoded
	start := base.Add(time.Minute)
	end := base.Add(3 * time.Minute)

	tests := []struct {
		name   string
		filter Filter
		want   []string
	}{
		{"All", Filter{}, []string{"home", "lab", "corp", "guest"}},
		{"SchemeIgnoresCase", Filter{Scheme: "WPA"}, []string{"home", "guest"}},
		{"Rejected", Filter{Outcome: &rejected}, []string{"lab"}},
		{"EncodedFromFile", Filter{Outcome: &encoded, Source: "nets.yaml"}, []string{"corp", "guest"}},
		{"SSID", Filter{SSID: "corp"}, []string{"corp"}},
		{"TimeWindow", Filter{TimeStart: &start, TimeEnd: &end}, []string{"lab", "corp"}},
		{"NoMatch", Filter{SSID: "nowhere"}, nil},
	}

	path := writeEvents(t, sampleEvents()...)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reader, err := NewFilteredReader(path, tt.filter)
			if err != nil {
				t.Fatalf("NewFilteredReader failed: %v", err)
			}
			defer reader.Close()

			events, err := reader.ReadAll()
			if err != nil {
				t.Fatalf("ReadAll failed: %v", err)
			}

			var got []string
			for _, e := range events {
				got = append(got, e.SSID)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("event %d: got %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestNewReaderMissingFile(t *testing.T) {
	if _, err := NewReader(filepath.Join(t.TempDir(), "absent.wqlog")); err == nil {
		t.Error("NewReader should fail for a missing file")
	}
}
