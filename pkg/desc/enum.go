package desc

// EnumValue is a named integer value of an EnumTable.
type EnumValue struct {
	Name  string
	Value int32
}

// EnumTable is an ordered set of named values used by ENUM and BITFIELD
// arguments. Values need not be contiguous. For bitfields each value is the
// bit index of a flag.
type EnumTable struct {
	Name   string
	Values []EnumValue
}

// ByValue returns the entry with the given integer value.
func (e *EnumTable) ByValue(v int32) (EnumValue, bool) {
	for _, ev := range e.Values {
		if ev.Value == v {
			return ev, true
		}
	}
	return EnumValue{}, false
}

// ByName returns the entry with the given symbolic name.
func (e *EnumTable) ByName(name string) (EnumValue, bool) {
	for _, ev := range e.Values {
		if ev.Name == name {
			return ev, true
		}
	}
	return EnumValue{}, false
}

// Contains reports whether v is a value of the table.
func (e *EnumTable) Contains(v int32) bool {
	_, ok := e.ByValue(v)
	return ok
}

// Names returns the symbolic names in declaration order.
func (e *EnumTable) Names() []string {
	names := make([]string, len(e.Values))
	for i, ev := range e.Values {
		names[i] = ev.Name
	}
	return names
}

// Bit returns the bitfield mask of a flag. Values outside [0, 63] have no bit.
func Bit(v EnumValue) uint64 {
	if v.Value < 0 || v.Value > 63 {
		return 0
	}
	return 1 << uint(v.Value)
}

// Flags returns the known flags set in bits, in declaration order.
func (e *EnumTable) Flags(bits uint64) []EnumValue {
	var out []EnumValue
	for _, ev := range e.Values {
		if m := Bit(ev); m != 0 && bits&m != 0 {
			out = append(out, ev)
		}
	}
	return out
}

// Unknown returns the bits of a bitfield that have no entry in the table.
func (e *EnumTable) Unknown(bits uint64) uint64 {
	for _, ev := range e.Values {
		bits &^= Bit(ev)
	}
	return bits
}

// Mask returns the bitfield value with the named flags set.
// Unknown names are ignored.
func (e *EnumTable) Mask(names ...string) uint64 {
	var bits uint64
	for _, n := range names {
		if ev, ok := e.ByName(n); ok {
			bits |= Bit(ev)
		}
	}
	return bits
}
