package log

import (
	"strings"
	"time"
)

// Event records the outcome of encoding one network.
// CBOR encoding uses integer keys for compactness.
type Event struct {
	// Timestamp when the network was processed.
	Timestamp time.Time `cbor:"1,keyasint"`

	// Source names where the network came from (file path, "cli", "shell").
	Source string `cbor:"2,keyasint,omitempty"`

	// Network is the descriptor name, if any.
	Network string `cbor:"3,keyasint,omitempty"`

	// Scheme is the scheme token, or the raw input if it did not parse.
	Scheme string `cbor:"4,keyasint"`

	// Outcome of the build.
	Outcome Outcome `cbor:"5,keyasint"`

	// SSID of the network, unescaped.
	SSID string `cbor:"6,keyasint,omitempty"`

	// Missing lists the required fields that were absent.
	Missing []string `cbor:"7,keyasint,omitempty"`

	// Error is the failure message for rejected networks.
	Error string `cbor:"8,keyasint,omitempty"`

	// PayloadLen is the length of the encoded payload in bytes.
	PayloadLen int `cbor:"9,keyasint,omitempty"`
}

// Outcome classifies the result of encoding a network.
type Outcome uint8

const (
	// OutcomeEncoded indicates a payload was produced.
	OutcomeEncoded Outcome = 0
	// OutcomeRejected indicates validation failed and no payload was produced.
	OutcomeRejected Outcome = 1
)

// String returns the outcome name.
func (o Outcome) String() string {
	switch o {
	case OutcomeEncoded:
		return "ENCODED"
	case OutcomeRejected:
		return "REJECTED"
	default:
		return "UNKNOWN"
	}
}

// ParseOutcome parses an outcome name, ignoring case.
func ParseOutcome(s string) (Outcome, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "encoded", "ok":
		return OutcomeEncoded, true
	case "rejected", "failed":
		return OutcomeRejected, true
	default:
		return 0, false
	}
}
