package cmditf

// SendStatus is the progress of a sent command as reported by the transport.
type SendStatus uint8

const (
	// StatusSent means the frame went out on the link.
	StatusSent SendStatus = iota
	// StatusAckReceived means the peer acknowledged the frame.
	StatusAckReceived
	// StatusTimeout means no acknowledgement arrived in time.
	StatusTimeout
	// StatusCanceled means the frame was dropped before being sent.
	StatusCanceled
)

// String returns the status name.
func (s SendStatus) String() string {
	switch s {
	case StatusSent:
		return "SENT"
	case StatusAckReceived:
		return "ACK_RECEIVED"
	case StatusTimeout:
		return "TIMEOUT"
	case StatusCanceled:
		return "CANCELED"
	default:
		return "UNKNOWN"
	}
}

// Failed reports whether the status means the command did not reach the peer.
func (s SendStatus) Failed() bool {
	return s == StatusTimeout || s == StatusCanceled
}

// StatusFunc receives send status updates. done is true for the last update
// of a command.
type StatusFunc func(status SendStatus, done bool)
