package log

import (
	"io"
	"os"
	"sync"

	"github.com/fxamacker/cbor/v2"
)

// FileLogger appends events to a capture file. It is safe for concurrent use.
type FileLogger struct {
	mu      sync.Mutex
	w       io.WriteCloser
	encoder *cbor.Encoder
	closed  bool

	// failed counts events that could not be encoded
	failed int
}

// NewFileLogger opens path for appending, creating it with mode 0644.
func NewFileLogger(path string) (*FileLogger, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, err
	}
	return NewStreamLogger(f), nil
}

// NewStreamLogger writes events to w. Close closes w.
func NewStreamLogger(w io.WriteCloser) *FileLogger {
	return &FileLogger{w: w, encoder: NewEncoder(w)}
}

// Log appends event. Events logged after Close are dropped.
func (l *FileLogger) Log(event Event) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.closed {
		return
	}
	if err := l.encoder.Encode(event); err != nil {
		l.failed++
	}
}

// Failed returns the number of events that could not be written.
func (l *FileLogger) Failed() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.failed
}

// Close closes the underlying writer. Further calls are no-ops.
func (l *FileLogger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.closed {
		return nil
	}
	l.closed = true
	return l.w.Close()
}

var _ Logger = (*FileLogger)(nil)
