package desc

import (
	"fmt"
	"strings"
)

// ID is the 32-bit identity of a command: (feature<<24)|(class<<16)|command.
type ID uint32

// MakeID builds a command identity from its three components.
func MakeID(feature, class uint8, command uint16) ID {
	return ID(uint32(feature)<<24 | uint32(class)<<16 | uint32(command))
}

// Feature returns the feature id.
func (id ID) Feature() uint8 { return uint8(id >> 24) }

// Class returns the class id.
func (id ID) Class() uint8 { return uint8(id >> 16) }

// Command returns the command id.
func (id ID) Command() uint16 { return uint16(id) }

// String returns the identity in hex, e.g. "0x01020003".
func (id ID) String() string {
	return fmt.Sprintf("0x%08X", uint32(id))
}

// ListType describes whether a command is an element of a collection kept on
// the device side.
type ListType uint8

const (
	// ListNone is a plain command.
	ListNone ListType = iota
	// ListItem is an element of a list.
	ListItem
	// ListMapItem is an element of a map keyed by its first argument.
	ListMapItem
)

// String returns the list type name.
func (l ListType) String() string {
	switch l {
	case ListNone:
		return "NONE"
	case ListItem:
		return "LIST_ITEM"
	case ListMapItem:
		return "MAP_ITEM"
	default:
		return "UNKNOWN"
	}
}

// BufferType is the delivery class of a command. It is consumed by the
// transport.
type BufferType uint8

const (
	// BufferNonAck is best-effort delivery.
	BufferNonAck BufferType = iota
	// BufferAck is acknowledged delivery.
	BufferAck
	// BufferHighPrio is acknowledged, high-priority delivery.
	BufferHighPrio
)

// String returns the buffer type name.
func (b BufferType) String() string {
	switch b {
	case BufferNonAck:
		return "NON_ACK"
	case BufferAck:
		return "ACK"
	case BufferHighPrio:
		return "HIGH_PRIO"
	default:
		return "UNKNOWN"
	}
}

// TimeoutPolicy tells the transport what to do when an acknowledged command
// times out.
type TimeoutPolicy uint8

const (
	// TimeoutPop drops the command.
	TimeoutPop TimeoutPolicy = iota
	// TimeoutRetry retries the command.
	TimeoutRetry
	// TimeoutFlush drops the command and every queued command behind it.
	TimeoutFlush
)

// String returns the timeout policy name.
func (p TimeoutPolicy) String() string {
	switch p {
	case TimeoutPop:
		return "POP"
	case TimeoutRetry:
		return "RETRY"
	case TimeoutFlush:
		return "FLUSH"
	default:
		return "UNKNOWN"
	}
}

// Arg describes a command argument.
type Arg struct {
	Name string
	Type ArgType

	// Enum is the value table of ENUM and BITFIELD arguments.
	Enum *EnumTable

	// BitfieldBase is the unsigned integer type carrying a BITFIELD.
	BitfieldBase ArgType

	// Multiset is the descriptor of a MULTISET argument.
	Multiset *Multiset
}

// WireType returns the type that determines the encoded width of the
// argument. It differs from Type only for bitfields.
func (a *Arg) WireType() ArgType {
	if a.Type == Bitfield {
		return a.BitfieldBase
	}
	return a.Type
}

// Command describes a command: its identity, arguments and delivery hints.
type Command struct {
	// Name is the full path, "feature.class.command" or "feature.command".
	Name string

	Feature uint8
	Class   uint8
	ID      uint16

	Args []Arg

	ListType      ListType
	BufferType    BufferType
	TimeoutPolicy TimeoutPolicy
}

// Identity returns the command identity.
func (c *Command) Identity() ID {
	return MakeID(c.Feature, c.Class, c.ID)
}

// Path splits the full name into its components. For classless commands the
// class is DefaultClassName.
func (c *Command) Path() (feature, class, command string) {
	parts := strings.Split(c.Name, ".")
	switch len(parts) {
	case 2:
		return parts[0], DefaultClassName, parts[1]
	case 3:
		return parts[0], parts[1], parts[2]
	default:
		return "", "", c.Name
	}
}

// ShortName returns the last component of the name.
func (c *Command) ShortName() string {
	_, _, name := c.Path()
	return name
}

// Arg returns the index and descriptor of the named argument.
func (c *Command) Arg(name string) (int, *Arg, bool) {
	for i := range c.Args {
		if c.Args[i].Name == name {
			return i, &c.Args[i], true
		}
	}
	return -1, nil, false
}

// String returns the full name of the command.
func (c *Command) String() string {
	return c.Name
}

// Multiset describes a bundle of independently optional sub-commands.
type Multiset struct {
	Name    string
	Members []*Command
}

// Member returns the slot index and descriptor of the member with identity id.
func (m *Multiset) Member(id ID) (int, *Command, bool) {
	for i, c := range m.Members {
		if c.Identity() == id {
			return i, c, true
		}
	}
	return -1, nil, false
}
