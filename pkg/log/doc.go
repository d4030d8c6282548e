// Package log records payload events for wifiqr tools.
//
// Every network a tool encodes, successfully or not, can be recorded as an
// Event. The trail is separate from operational logging (slog): it is a
// machine-readable record of which networks were turned into QR payloads.
// Events never contain passwords or the payload itself, only its length.
//
// # Basic Usage
//
//	// For development: log to console via slog
//	logger := log.NewSlogAdapter(slog.Default())
//
//	// For audit trails: append to a CBOR file
//	logger, _ := log.NewFileLogger("payloads.wqlog")
//
//	// Both
//	logger := log.NewMultiLogger(
//	    log.NewSlogAdapter(slog.Default()),
//	    fileLogger,
//	)
//
// # File Format
//
// Log files are a sequence of CBOR-encoded events with integer keys. The
// `wifiqr log` commands view and summarize them.
package log
