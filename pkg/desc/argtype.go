package desc

import "fmt"

// ArgType is the type tag of a command argument.
type ArgType uint8

// Argument types.
const (
	I8 ArgType = iota
	U8
	I16
	U16
	I32
	U32
	I64
	U64
	Float
	Double
	String
	Binary
	Enum
	Bitfield
	MultisetArg
)

var argTypeNames = [...]string{
	I8:          "i8",
	U8:          "u8",
	I16:         "i16",
	U16:         "u16",
	I32:         "i32",
	U32:         "u32",
	I64:         "i64",
	U64:         "u64",
	Float:       "float",
	Double:      "double",
	String:      "string",
	Binary:      "binary",
	Enum:        "enum",
	Bitfield:    "bitfield",
	MultisetArg: "multiset",
}

// String returns the schema name of the type.
func (t ArgType) String() string {
	if int(t) < len(argTypeNames) {
		return argTypeNames[t]
	}
	return fmt.Sprintf("ArgType(%d)", uint8(t))
}

// ParseArgType returns the ArgType for a schema type name.
func ParseArgType(s string) (ArgType, error) {
	for i, name := range argTypeNames {
		if name == s {
			return ArgType(i), nil
		}
	}
	return 0, fmt.Errorf("unknown argument type %q", s)
}

// Size returns the encoded width in bytes of a fixed-width type, or 0 for
// variable-length types.
func (t ArgType) Size() int {
	switch t {
	case I8, U8:
		return 1
	case I16, U16:
		return 2
	case I32, U32, Float, Enum:
		return 4
	case I64, U64, Double:
		return 8
	default:
		return 0
	}
}

// IsUnsigned reports whether t is an unsigned integer type.
func (t ArgType) IsUnsigned() bool {
	switch t {
	case U8, U16, U32, U64:
		return true
	}
	return false
}
