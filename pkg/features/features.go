package features

import (
	"fmt"

	"github.com/arsdk-protocol/arsdk-go/pkg/desc"
	"github.com/arsdk-protocol/arsdk-go/pkg/wire"
)

// MustTable is like NewTable but panics on error. The generated schema is
// validated at generation time, so it only fails when descriptors were
// modified at run time.
func MustTable() *desc.Table {
	t, err := NewTable()
	if err != nil {
		panic(fmt.Sprintf("features: %v", err))
	}
	return t
}

// checkMessage verifies that msg was decoded against cmd. Decode helpers
// rely on the codec's canonical argument types after this check.
func checkMessage(msg *wire.Message, cmd *desc.Command) error {
	if msg == nil || msg.Desc == nil {
		return fmt.Errorf("%w: message has no descriptor, want %s", wire.ErrIdentityMismatch, cmd.Name)
	}
	if msg.Desc.Identity() != cmd.Identity() {
		return fmt.Errorf("%w: got %s, want %s", wire.ErrIdentityMismatch, msg.Desc.Name, cmd.Name)
	}
	if len(msg.Args) != len(cmd.Args) {
		return fmt.Errorf("%w: %s has %d arguments, want %d", wire.ErrArgCount, cmd.Name, len(msg.Args), len(cmd.Args))
	}
	return nil
}
