package log

import (
	"time"

	"github.com/arsdk-protocol/arsdk-go/pkg/desc"
	"github.com/arsdk-protocol/arsdk-go/pkg/wire"
)

// DefaultMaxPayload is the number of payload bytes kept by NewCommandEvent
// when no limit is given.
const DefaultMaxPayload = 256

// Event is one captured occurrence. CBOR encoding uses integer keys.
type Event struct {
	Timestamp time.Time `cbor:"1,keyasint"`

	// SessionID identifies the command interface that captured the event.
	SessionID string `cbor:"2,keyasint"`

	Direction Direction `cbor:"3,keyasint"`
	Layer     Layer     `cbor:"4,keyasint"`
	Category  Category  `cbor:"5,keyasint"`

	// Exactly one of these is set, matching Category.
	Command    *CommandEvent    `cbor:"6,keyasint,omitempty"`
	SendStatus *SendStatusEvent `cbor:"7,keyasint,omitempty"`
	Error      *ErrorEventData  `cbor:"8,keyasint,omitempty"`
}

// Direction of a captured command.
type Direction uint8

const (
	// DirectionRX is a command received from the peer.
	DirectionRX Direction = 0
	// DirectionTX is a command sent to the peer.
	DirectionTX Direction = 1
)

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case DirectionRX:
		return "RX"
	case DirectionTX:
		return "TX"
	default:
		return "UNKNOWN"
	}
}

// Layer is where the event was captured.
type Layer uint8

const (
	// LayerTransport is the raw frame as handed to or received from the transport.
	LayerTransport Layer = 0
	// LayerCodec is encoding or decoding.
	LayerCodec Layer = 1
	// LayerDispatch is observer delivery.
	LayerDispatch Layer = 2
)

// String returns the layer name.
func (l Layer) String() string {
	switch l {
	case LayerTransport:
		return "TRANSPORT"
	case LayerCodec:
		return "CODEC"
	case LayerDispatch:
		return "DISPATCH"
	default:
		return "UNKNOWN"
	}
}

// Category classifies the event.
type Category uint8

const (
	CategoryCommand    Category = 0
	CategorySendStatus Category = 1
	CategoryError      Category = 2
)

// String returns the category name.
func (c Category) String() string {
	switch c {
	case CategoryCommand:
		return "COMMAND"
	case CategorySendStatus:
		return "SEND_STATUS"
	case CategoryError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// CommandEvent is a captured command frame.
type CommandEvent struct {
	// ID is the command identity.
	ID desc.ID `cbor:"1,keyasint"`

	// Name is the full command name, empty when the identity is unknown.
	Name string `cbor:"2,keyasint,omitempty"`

	// Size is the frame size in bytes, header included.
	Size int `cbor:"3,keyasint"`

	// Payload holds the argument bytes, possibly truncated.
	Payload   []byte `cbor:"4,keyasint,omitempty"`
	Truncated bool   `cbor:"5,keyasint,omitempty"`

	BufferType desc.BufferType `cbor:"6,keyasint,omitempty"`

	// Text is the formatted command, when the capturing side formats.
	Text string `cbor:"7,keyasint,omitempty"`
}

// NewCommandEvent captures frame, keeping at most max payload bytes.
// A max of 0 means DefaultMaxPayload, a negative max keeps everything.
func NewCommandEvent(frame wire.Frame, cmd *desc.Command, max int) *CommandEvent {
	if max == 0 {
		max = DefaultMaxPayload
	}
	ev := &CommandEvent{
		ID:      frame.ID,
		Size:    frame.Len(),
		Payload: frame.Payload,
	}
	if cmd != nil {
		ev.Name = cmd.Name
		ev.BufferType = cmd.BufferType
	}
	if max > 0 && len(ev.Payload) > max {
		ev.Payload = ev.Payload[:max]
		ev.Truncated = true
	}
	ev.Payload = append([]byte(nil), ev.Payload...)
	return ev
}

// SendStatusEvent captures a transport status callback for a sent command.
type SendStatusEvent struct {
	ID     desc.ID `cbor:"1,keyasint"`
	Name   string  `cbor:"2,keyasint,omitempty"`
	Status string  `cbor:"3,keyasint"`

	// Done is true for the final status of the command.
	Done bool `cbor:"4,keyasint,omitempty"`
}

// ErrorEventData captures a failure at any layer.
type ErrorEventData struct {
	Layer   Layer  `cbor:"1,keyasint"`
	Message string `cbor:"2,keyasint"`

	// Command is the name of the command involved, if known.
	Command string `cbor:"3,keyasint,omitempty"`

	// Context describes what was being done.
	Context string `cbor:"4,keyasint,omitempty"`
}
