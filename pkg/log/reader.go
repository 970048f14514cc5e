package log

import (
	"errors"
	"io"
	"os"
	"time"

	"github.com/fxamacker/cbor/v2"

	"github.com/arsdk-protocol/arsdk-go/pkg/desc"
)

// Filter selects events. Zero fields match everything.
type Filter struct {
	SessionID string
	Direction *Direction
	Layer     *Layer
	Category  *Category

	// Feature keeps only command and send status events of this feature.
	Feature *uint8

	// Command keeps only events of this identity.
	Command *desc.ID

	// TimeStart keeps events at or after this time.
	TimeStart *time.Time
	// TimeEnd keeps events strictly before this time.
	TimeEnd *time.Time
}

func (f *Filter) matches(event Event) bool {
	if f.SessionID != "" && event.SessionID != f.SessionID {
		return false
	}
	if f.Direction != nil && event.Direction != *f.Direction {
		return false
	}
	if f.Layer != nil && event.Layer != *f.Layer {
		return false
	}
	if f.Category != nil && event.Category != *f.Category {
		return false
	}
	if f.TimeStart != nil && event.Timestamp.Before(*f.TimeStart) {
		return false
	}
	if f.TimeEnd != nil && !event.Timestamp.Before(*f.TimeEnd) {
		return false
	}
	if f.Feature != nil || f.Command != nil {
		id, ok := event.commandID()
		if !ok {
			return false
		}
		if f.Feature != nil && id.Feature() != *f.Feature {
			return false
		}
		if f.Command != nil && id != *f.Command {
			return false
		}
	}
	return true
}

func (e Event) commandID() (desc.ID, bool) {
	switch {
	case e.Command != nil:
		return e.Command.ID, true
	case e.SendStatus != nil:
		return e.SendStatus.ID, true
	}
	return 0, false
}

// Reader streams events from a capture file.
type Reader struct {
	file    *os.File
	decoder *cbor.Decoder
	filter  Filter
}

// NewReader reads every event of the file at path.
func NewReader(path string) (*Reader, error) {
	return NewFilteredReader(path, Filter{})
}

// NewFilteredReader reads the events of the file at path that match filter.
func NewFilteredReader(path string, filter Filter) (*Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	return &Reader{file: f, decoder: NewDecoder(f), filter: filter}, nil
}

// Next returns the next matching event, or io.EOF at the end of the file.
func (r *Reader) Next() (Event, error) {
	for {
		var event Event
		if err := r.decoder.Decode(&event); err != nil {
			if errors.Is(err, io.EOF) {
				return Event{}, io.EOF
			}
			return Event{}, err
		}
		if r.filter.matches(event) {
			return event, nil
		}
	}
}

// ReadAll returns the remaining matching events.
func (r *Reader) ReadAll() ([]Event, error) {
	var events []Event
	for {
		ev, err := r.Next()
		if err == io.EOF {
			return events, nil
		}
		if err != nil {
			return events, err
		}
		events = append(events, ev)
	}
}

// Close closes the file.
func (r *Reader) Close() error {
	return r.file.Close()
}
