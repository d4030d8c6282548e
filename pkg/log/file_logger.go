package log

import (
	"errors"
	"os"
	"sync"

	"github.com/fxamacker/cbor/v2"
)

// FileLogger appends events to a CBOR log file. Log never fails; the first
// write error is kept and reported by Close.
type FileLogger struct {
	mu   sync.Mutex
	f    *os.File // nil once closed
	enc  *cbor.Encoder
	werr error
}

// NewFileLogger opens path for appending, creating it with mode 0600.
func NewFileLogger(path string) (*FileLogger, error) {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o600)
	if err != nil {
		return nil, err
	}
	return &FileLogger{f: f, enc: NewEncoder(f)}, nil
}

// Log appends event. It is a no-op after Close.
func (l *FileLogger) Log(event Event) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.f == nil {
		return
	}
	if err := l.enc.Encode(event); err != nil && l.werr == nil {
		l.werr = err
	}
}

// Close closes the file and returns the first write error, if any.
// Later calls return nil.
func (l *FileLogger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.f == nil {
		return nil
	}
	err := errors.Join(l.werr, l.f.Close())
	l.f, l.enc, l.werr = nil, nil, nil
	return err
}
