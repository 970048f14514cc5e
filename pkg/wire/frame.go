package wire

import (
	"encoding/binary"
	"fmt"

	"github.com/arsdk-protocol/arsdk-go/pkg/desc"
)

// HeaderSize is the size of the frame header carrying the command identity.
const HeaderSize = 4

// Frame is a command identity with its encoded argument payload. It is the
// unit exchanged with the transport.
type Frame struct {
	ID      desc.ID
	Payload []byte
}

// Len returns the encoded size of the frame.
func (f Frame) Len() int {
	return HeaderSize + len(f.Payload)
}

// Bytes returns the header followed by the payload.
func (f Frame) Bytes() []byte {
	return f.AppendTo(make([]byte, 0, f.Len()))
}

// AppendTo appends the encoded frame to b.
func (f Frame) AppendTo(b []byte) []byte {
	b = appendHeader(b, f.ID)
	return append(b, f.Payload...)
}

func appendHeader(b []byte, id desc.ID) []byte {
	b = append(b, id.Feature(), id.Class())
	return binary.LittleEndian.AppendUint16(b, id.Command())
}

// DecodeHeader returns the command identity of an encoded frame without
// decoding its arguments.
func DecodeHeader(data []byte) (desc.ID, error) {
	if len(data) < HeaderSize {
		return 0, fmt.Errorf("%w: header needs %d bytes, have %d", ErrShortPayload, HeaderSize, len(data))
	}
	return desc.MakeID(data[0], data[1], binary.LittleEndian.Uint16(data[2:4])), nil
}

// ParseFrame splits an encoded frame into identity and payload. The payload
// aliases data.
func ParseFrame(data []byte) (Frame, error) {
	id, err := DecodeHeader(data)
	if err != nil {
		return Frame{}, err
	}
	return Frame{ID: id, Payload: data[HeaderSize:]}, nil
}
