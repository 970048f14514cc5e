package cmditf

import "errors"

var (
	// ErrNoTable is returned by New without a descriptor table.
	ErrNoTable = errors.New("cmditf: no descriptor table")

	// ErrNoSender is returned by New without a sender.
	ErrNoSender = errors.New("cmditf: no sender")

	// ErrRejected wraps the error of a sender that refused a frame.
	ErrRejected = errors.New("cmditf: frame rejected by transport")

	// ErrUnknownCommand is returned when sending a command the table does
	// not contain.
	ErrUnknownCommand = errors.New("cmditf: command not in table")
)
