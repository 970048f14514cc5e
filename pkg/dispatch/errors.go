package dispatch

import (
	"fmt"

	"github.com/arsdk-protocol/arsdk-go/pkg/desc"
)

// DeliveryError reports an observed command that could not be delivered.
type DeliveryError struct {
	ID      desc.ID
	Command string
	Err     error
}

func (e *DeliveryError) Error() string {
	name := e.Command
	if name == "" {
		name = e.ID.String()
	}
	return fmt.Sprintf("dispatch %s: %v", name, e.Err)
}

func (e *DeliveryError) Unwrap() error { return e.Err }

// CallbackError reports an observer callback that returned an error or
// panicked.
type CallbackError struct {
	ID      desc.ID
	Command string
	Panic   bool
	Err     error
}

func (e *CallbackError) Error() string {
	if e.Panic {
		return fmt.Sprintf("callback for %s panicked: %v", e.Command, e.Err)
	}
	return fmt.Sprintf("callback for %s: %v", e.Command, e.Err)
}

func (e *CallbackError) Unwrap() error { return e.Err }
