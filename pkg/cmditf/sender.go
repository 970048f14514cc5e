package cmditf

import (
	"github.com/arsdk-protocol/arsdk-go/pkg/desc"
	"github.com/arsdk-protocol/arsdk-go/pkg/wire"
)

// Sender is the transport side of a link.
type Sender interface {
	// Send queues frame for delivery with the given buffer class. An error
	// means the frame was rejected and status will never be called.
	// Otherwise status is called at least once, the last time with done set.
	Send(frame wire.Frame, buffer desc.BufferType, status StatusFunc) error
}
