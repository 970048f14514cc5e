package wire

import "github.com/arsdk-protocol/arsdk-go/pkg/desc"

// Message is a decoded command.
type Message struct {
	Desc *desc.Command
	// Args holds one canonical value per declared argument.
	Args []any
}

// ID returns the command identity.
func (m *Message) ID() desc.ID {
	return m.Desc.Identity()
}

// Name returns the full command name.
func (m *Message) Name() string {
	return m.Desc.Name
}

// Arg returns the value of the named argument.
func (m *Message) Arg(name string) (any, bool) {
	i, _, ok := m.Desc.Arg(name)
	if !ok || i >= len(m.Args) {
		return nil, false
	}
	return m.Args[i], true
}

// Enum returns the value of the named ENUM argument.
func (m *Message) Enum(name string) (desc.EnumValue, bool) {
	v, ok := m.Arg(name)
	if !ok {
		return desc.EnumValue{}, false
	}
	ev, ok := v.(desc.EnumValue)
	return ev, ok
}

// Multiset returns the value of the named MULTISET argument.
func (m *Message) Multiset(name string) (*Multiset, bool) {
	v, ok := m.Arg(name)
	if !ok {
		return nil, false
	}
	ms, ok := v.(*Multiset)
	return ms, ok
}

// Encode re-encodes the message with the default codec.
func (m *Message) Encode() (Frame, error) {
	return Encode(m.Desc, m.Args...)
}
