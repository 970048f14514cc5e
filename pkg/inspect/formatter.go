// Package inspect renders protocol commands in human-readable form.
package inspect

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/arsdk-protocol/arsdk-go/pkg/desc"
	"github.com/arsdk-protocol/arsdk-go/pkg/wire"
)

// Formatter formats commands as single lines:
//
//	ardrone3.PilotingState.FlyingStateChanged | state=hovering
type Formatter struct {
	// Resolver looks up frames passed to FormatFrame. May be nil.
	Resolver wire.Resolver

	// Codec decodes frames passed to FormatFrame. If nil, wire.Default() is used.
	Codec *wire.Codec

	// MaxBinary limits the number of binary bytes shown (0 = all).
	MaxBinary int
}

// NewFormatter creates a Formatter resolving frames against r.
func NewFormatter(r wire.Resolver) *Formatter {
	return &Formatter{Resolver: r, MaxBinary: 32}
}

// Format renders a decoded command.
func (f *Formatter) Format(msg *wire.Message) string {
	var b strings.Builder
	f.writeMessage(&b, msg.Desc, msg.Args)
	return b.String()
}

func (f *Formatter) writeMessage(b *strings.Builder, cmd *desc.Command, args []any) {
	b.WriteString(cmd.Name)
	for i := range cmd.Args {
		if i >= len(args) {
			break
		}
		fmt.Fprintf(b, " | %s=%s", cmd.Args[i].Name, f.FormatValue(&cmd.Args[i], args[i]))
	}
}

// FormatFrame decodes and renders an encoded command. Frames the resolver
// does not know render as "Unknown f.c.c".
func (f *Formatter) FormatFrame(frame wire.Frame) string {
	var cmd *desc.Command
	if f.Resolver != nil {
		cmd, _ = f.Resolver.FindByIdentity(frame.ID)
	}
	if cmd == nil {
		return fmt.Sprintf("Unknown %d.%d.%d", frame.ID.Feature(), frame.ID.Class(), frame.ID.Command())
	}
	codec := f.Codec
	if codec == nil {
		codec = wire.Default()
	}
	msg, err := codec.Decode(cmd, frame)
	if err != nil {
		return fmt.Sprintf("%s | <%v>", cmd.Name, err)
	}
	return f.Format(msg)
}

// FormatValue renders a single argument value.
func (f *Formatter) FormatValue(arg *desc.Arg, v any) string {
	switch x := v.(type) {
	case float32:
		return fmt.Sprintf("%f", x)
	case float64:
		return fmt.Sprintf("%f", x)
	case string:
		return "'" + x + "'"
	case []byte:
		return f.formatBinary(x)
	case desc.EnumValue:
		if x.Name == "" {
			return fmt.Sprintf("UNKNOWN(%d)", x.Value)
		}
		return x.Name
	case *wire.Multiset:
		return f.formatMultiset(x)
	}

	if arg != nil && arg.Type == desc.Bitfield && arg.Enum != nil {
		if bits, ok := toUint64(v); ok {
			return FormatBitfield(arg.Enum, bits)
		}
	}
	if arg != nil && arg.Type == desc.Enum && arg.Enum != nil {
		if n, ok := v.(int32); ok {
			if ev, found := arg.Enum.ByValue(n); found {
				return ev.Name
			}
			return fmt.Sprintf("UNKNOWN(%d)", n)
		}
	}
	return fmt.Sprintf("%v", v)
}

func toUint64(v any) (uint64, bool) {
	switch x := v.(type) {
	case uint8:
		return uint64(x), true
	case uint16:
		return uint64(x), true
	case uint32:
		return uint64(x), true
	case uint64:
		return x, true
	}
	return 0, false
}

// FormatBitfield renders the flags set in bits as "A|B". Bits without a flag
// render as UNKNOWN(index); an empty bitfield renders as "0".
func FormatBitfield(table *desc.EnumTable, bits uint64) string {
	if bits == 0 {
		return "0"
	}
	var parts []string
	for i := 0; i < 64; i++ {
		if bits&(1<<uint(i)) == 0 {
			continue
		}
		if ev, ok := table.ByValue(int32(i)); ok {
			parts = append(parts, ev.Name)
		} else {
			parts = append(parts, fmt.Sprintf("UNKNOWN(%d)", i))
		}
	}
	return strings.Join(parts, "|")
}

func (f *Formatter) formatBinary(data []byte) string {
	if f.MaxBinary > 0 && len(data) > f.MaxBinary {
		return fmt.Sprintf("[%d]%s...", len(data), hex.EncodeToString(data[:f.MaxBinary]))
	}
	return fmt.Sprintf("[%d]%s", len(data), hex.EncodeToString(data))
}

func (f *Formatter) formatMultiset(ms *wire.Multiset) string {
	var b strings.Builder
	b.WriteByte('{')
	first := true
	for i, slot := range ms.Slots {
		if !slot.IsSet {
			continue
		}
		if !first {
			b.WriteString(", ")
		}
		first = false
		b.WriteByte('(')
		f.writeMessage(&b, ms.Desc.Members[i], slot.Args)
		b.WriteByte(')')
	}
	b.WriteByte('}')
	return b.String()
}
