package wire

import (
	"bytes"
	"fmt"
	"math"
	"unicode/utf8"

	"github.com/arsdk-protocol/arsdk-go/pkg/desc"
)

// StringEncoding selects the wire layout of STRING arguments.
type StringEncoding uint8

const (
	// StringLengthPrefixed encodes a u16 length followed by the bytes.
	StringLengthPrefixed StringEncoding = iota
	// StringNulTerminated encodes the bytes followed by a 0x00 terminator.
	StringNulTerminated
)

// String returns the configuration name of the encoding.
func (s StringEncoding) String() string {
	switch s {
	case StringLengthPrefixed:
		return "length-prefixed"
	case StringNulTerminated:
		return "nul-terminated"
	default:
		return "unknown"
	}
}

// ParseStringEncoding parses a configuration name.
func ParseStringEncoding(s string) (StringEncoding, error) {
	switch s {
	case "", "length-prefixed":
		return StringLengthPrefixed, nil
	case "nul-terminated":
		return StringNulTerminated, nil
	default:
		return 0, fmt.Errorf("unknown string encoding %q", s)
	}
}

// Options configures a Codec.
type Options struct {
	// Strings selects the STRING layout. Both peers must agree.
	Strings StringEncoding

	// MaxPayloadSize bounds the encoded payload of a command (0 = unlimited).
	MaxPayloadSize int

	// StrictMultiset makes a failing multiset member fail the whole
	// enclosing command instead of leaving its slot unset.
	StrictMultiset bool
}

// DefaultOptions returns the default codec options.
func DefaultOptions() Options {
	return Options{Strings: StringLengthPrefixed}
}

// Codec encodes and decodes commands according to their descriptors.
// A Codec is immutable and safe for concurrent use.
type Codec struct {
	opts Options
}

// NewCodec creates a Codec with the given options.
func NewCodec(opts Options) *Codec {
	return &Codec{opts: opts}
}

// Options returns the codec options.
func (c *Codec) Options() Options {
	return c.opts
}

var defaultCodec = NewCodec(DefaultOptions())

// Default returns the codec used by the package-level functions.
func Default() *Codec {
	return defaultCodec
}

// Encode encodes cmd with args using the default codec.
func Encode(cmd *desc.Command, args ...any) (Frame, error) {
	return defaultCodec.Encode(cmd, args...)
}

// Decode decodes frame against cmd using the default codec.
func Decode(cmd *desc.Command, frame Frame) (*Message, error) {
	return defaultCodec.Decode(cmd, frame)
}

// EncodeArgs encodes the arguments of cmd using the default codec.
func EncodeArgs(cmd *desc.Command, args ...any) ([]byte, error) {
	return defaultCodec.EncodeArgs(cmd, args...)
}

// DecodeArgs decodes an argument payload of cmd using the default codec.
func DecodeArgs(cmd *desc.Command, payload []byte) ([]any, error) {
	return defaultCodec.DecodeArgs(cmd, payload)
}

// Encode validates args against cmd and returns the encoded frame.
func (c *Codec) Encode(cmd *desc.Command, args ...any) (Frame, error) {
	payload, err := c.EncodeArgs(cmd, args...)
	if err != nil {
		return Frame{}, err
	}
	return Frame{ID: cmd.Identity(), Payload: payload}, nil
}

// EncodeArgs validates args against cmd and returns the argument payload.
func (c *Codec) EncodeArgs(cmd *desc.Command, args ...any) ([]byte, error) {
	if len(args) != len(cmd.Args) {
		return nil, encodeErr(cmd, -1, fmt.Errorf("%w: want %d, got %d", ErrArgCount, len(cmd.Args), len(args)))
	}
	w := &writer{}
	for i := range cmd.Args {
		if err := c.encodeArg(w, &cmd.Args[i], args[i]); err != nil {
			return nil, encodeErr(cmd, i, err)
		}
	}
	if c.opts.MaxPayloadSize > 0 && len(w.buf) > c.opts.MaxPayloadSize {
		return nil, encodeErr(cmd, -1, fmt.Errorf("%w: payload of %d bytes exceeds %d", ErrTooLarge, len(w.buf), c.opts.MaxPayloadSize))
	}
	return w.buf, nil
}

func typeErr(a *desc.Arg, v any) error {
	return fmt.Errorf("%w: %s wants %s, got %T", ErrArgType, a.Name, a.Type, v)
}

func (c *Codec) encodeArg(w *writer, a *desc.Arg, v any) error {
	switch a.Type {
	case desc.I8:
		x, ok := v.(int8)
		if !ok {
			return typeErr(a, v)
		}
		w.u8(uint8(x))
	case desc.U8:
		x, ok := v.(uint8)
		if !ok {
			return typeErr(a, v)
		}
		w.u8(x)
	case desc.I16:
		x, ok := v.(int16)
		if !ok {
			return typeErr(a, v)
		}
		w.u16(uint16(x))
	case desc.U16:
		x, ok := v.(uint16)
		if !ok {
			return typeErr(a, v)
		}
		w.u16(x)
	case desc.I32:
		x, ok := v.(int32)
		if !ok {
			return typeErr(a, v)
		}
		w.u32(uint32(x))
	case desc.U32:
		x, ok := v.(uint32)
		if !ok {
			return typeErr(a, v)
		}
		w.u32(x)
	case desc.I64:
		x, ok := v.(int64)
		if !ok {
			return typeErr(a, v)
		}
		w.u64(uint64(x))
	case desc.U64:
		x, ok := v.(uint64)
		if !ok {
			return typeErr(a, v)
		}
		w.u64(x)
	case desc.Float:
		x, ok := v.(float32)
		if !ok {
			return typeErr(a, v)
		}
		w.f32(x)
	case desc.Double:
		x, ok := v.(float64)
		if !ok {
			return typeErr(a, v)
		}
		w.f64(x)
	case desc.String:
		s, ok := v.(string)
		if !ok {
			return typeErr(a, v)
		}
		return c.encodeString(w, s)
	case desc.Binary:
		b, ok := v.([]byte)
		if !ok {
			return typeErr(a, v)
		}
		if uint64(len(b)) > math.MaxUint32 {
			return fmt.Errorf("%w: binary of %d bytes", ErrTooLarge, len(b))
		}
		w.u32(uint32(len(b)))
		w.raw(b)
	case desc.Enum:
		ev, err := enumValue(a, v)
		if err != nil {
			return err
		}
		w.u32(uint32(ev.Value))
	case desc.Bitfield:
		return encodeBitfield(w, a, v)
	case desc.MultisetArg:
		ms, ok := v.(*Multiset)
		if !ok || ms == nil {
			return typeErr(a, v)
		}
		if ms.Desc != a.Multiset {
			return fmt.Errorf("%w: %s wants multiset %s", ErrArgType, a.Name, a.Multiset.Name)
		}
		region, err := c.EncodeMultiset(a.Multiset, ms)
		if err != nil {
			return err
		}
		w.raw(region)
	default:
		return fmt.Errorf("%w: unsupported type %s", ErrArgType, a.Type)
	}
	return nil
}

func checkString(s string) error {
	if !utf8.ValidString(s) {
		return fmt.Errorf("%w: not valid UTF-8", ErrInvalidString)
	}
	if i := indexNul(s); i >= 0 {
		return fmt.Errorf("%w: NUL byte at offset %d", ErrInvalidString, i)
	}
	return nil
}

func indexNul(s string) int {
	for i := 0; i < len(s); i++ {
		if s[i] == 0 {
			return i
		}
	}
	return -1
}

func (c *Codec) encodeString(w *writer, s string) error {
	if err := checkString(s); err != nil {
		return err
	}
	if c.opts.Strings == StringNulTerminated {
		w.raw([]byte(s))
		w.u8(0)
		return nil
	}
	if len(s) > math.MaxUint16 {
		return fmt.Errorf("%w: string of %d bytes", ErrTooLarge, len(s))
	}
	w.u16(uint16(len(s)))
	w.raw([]byte(s))
	return nil
}

// enumValue resolves an ENUM argument value against its table.
func enumValue(a *desc.Arg, v any) (desc.EnumValue, error) {
	switch x := v.(type) {
	case desc.EnumValue:
		ev, ok := a.Enum.ByValue(x.Value)
		if !ok || (x.Name != "" && x.Name != ev.Name) {
			return desc.EnumValue{}, fmt.Errorf("%w: %s(%d) not in %s", ErrEnumValue, x.Name, x.Value, a.Enum.Name)
		}
		return ev, nil
	case int32:
		ev, ok := a.Enum.ByValue(x)
		if !ok {
			return desc.EnumValue{}, fmt.Errorf("%w: %d not in %s", ErrEnumValue, x, a.Enum.Name)
		}
		return ev, nil
	case string:
		ev, ok := a.Enum.ByName(x)
		if !ok {
			return desc.EnumValue{}, fmt.Errorf("%w: %q not in %s", ErrEnumValue, x, a.Enum.Name)
		}
		return ev, nil
	default:
		return desc.EnumValue{}, typeErr(a, v)
	}
}

// encodeBitfield writes a bitfield at its base width. Bits without a flag in
// the table are written unchanged.
func encodeBitfield(w *writer, a *desc.Arg, v any) error {
	var bits uint64
	switch x := v.(type) {
	case uint8:
		if a.BitfieldBase != desc.U8 {
			return typeErr(a, v)
		}
		bits = uint64(x)
	case uint16:
		if a.BitfieldBase != desc.U16 {
			return typeErr(a, v)
		}
		bits = uint64(x)
	case uint32:
		if a.BitfieldBase != desc.U32 {
			return typeErr(a, v)
		}
		bits = uint64(x)
	case uint64:
		bits = x
		if width := a.BitfieldBase.Size() * 8; width < 64 && bits>>uint(width) != 0 {
			return fmt.Errorf("%w: %#x exceeds %s", ErrTooLarge, bits, a.BitfieldBase)
		}
	default:
		return typeErr(a, v)
	}
	switch a.BitfieldBase {
	case desc.U8:
		w.u8(uint8(bits))
	case desc.U16:
		w.u16(uint16(bits))
	case desc.U32:
		w.u32(uint32(bits))
	default:
		w.u64(bits)
	}
	return nil
}

// Decode decodes frame against cmd. Decoding is all-or-nothing: on error no
// Message is returned.
func (c *Codec) Decode(cmd *desc.Command, frame Frame) (*Message, error) {
	if frame.ID != cmd.Identity() {
		return nil, decodeErr(cmd, -1, fmt.Errorf("%w: frame %s, descriptor %s", ErrIdentityMismatch, frame.ID, cmd.Identity()))
	}
	args, err := c.DecodeArgs(cmd, frame.Payload)
	if err != nil {
		return nil, err
	}
	return &Message{Desc: cmd, Args: args}, nil
}

// DecodeArgs decodes the argument payload of cmd.
func (c *Codec) DecodeArgs(cmd *desc.Command, payload []byte) ([]any, error) {
	r := &reader{data: payload}
	args := make([]any, len(cmd.Args))
	for i := range cmd.Args {
		v, err := c.decodeArg(r, &cmd.Args[i])
		if err != nil {
			return nil, decodeErr(cmd, i, err)
		}
		args[i] = v
	}
	if r.remaining() != 0 {
		return nil, decodeErr(cmd, -1, fmt.Errorf("%w: %d bytes after %d arguments", ErrTrailingBytes, r.remaining(), len(cmd.Args)))
	}
	return args, nil
}

func (c *Codec) decodeArg(r *reader, a *desc.Arg) (any, error) {
	switch a.Type {
	case desc.I8:
		x, err := r.u8()
		return int8(x), err
	case desc.U8:
		return r.u8()
	case desc.I16:
		x, err := r.u16()
		return int16(x), err
	case desc.U16:
		return r.u16()
	case desc.I32:
		x, err := r.u32()
		return int32(x), err
	case desc.U32:
		return r.u32()
	case desc.I64:
		x, err := r.u64()
		return int64(x), err
	case desc.U64:
		return r.u64()
	case desc.Float:
		x, err := r.u32()
		return math.Float32frombits(x), err
	case desc.Double:
		x, err := r.u64()
		return math.Float64frombits(x), err
	case desc.String:
		return c.decodeString(r)
	case desc.Binary:
		n, err := r.u32()
		if err != nil {
			return nil, err
		}
		if uint64(n) > uint64(r.remaining()) {
			return nil, fmt.Errorf("%w: binary of %d bytes, have %d", ErrShortPayload, n, r.remaining())
		}
		b, _ := r.next(int(n))
		return bytes.Clone(b), nil
	case desc.Enum:
		x, err := r.u32()
		if err != nil {
			return nil, err
		}
		ev, ok := a.Enum.ByValue(int32(x))
		if !ok {
			return nil, fmt.Errorf("%w: %d not in %s", ErrEnumValue, int32(x), a.Enum.Name)
		}
		return ev, nil
	case desc.Bitfield:
		switch a.BitfieldBase {
		case desc.U8:
			return r.u8()
		case desc.U16:
			return r.u16()
		case desc.U32:
			return r.u32()
		default:
			return r.u64()
		}
	case desc.MultisetArg:
		n, err := r.u16()
		if err != nil {
			return nil, err
		}
		body, err := r.next(int(n))
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrMalformedMultiset, err)
		}
		ms, err := c.decodeMultisetBody(a.Multiset, body)
		if err != nil {
			return nil, err
		}
		if c.opts.StrictMultiset && len(ms.Errors) > 0 {
			return nil, ms.Errors[0]
		}
		return ms, nil
	default:
		return nil, fmt.Errorf("%w: unsupported type %s", ErrArgType, a.Type)
	}
}

func (c *Codec) decodeString(r *reader) (string, error) {
	var b []byte
	if c.opts.Strings == StringNulTerminated {
		rest := r.data[r.off:]
		i := bytes.IndexByte(rest, 0)
		if i < 0 {
			return "", fmt.Errorf("%w: unterminated string", ErrShortPayload)
		}
		b, _ = r.next(i + 1)
		b = b[:i]
	} else {
		n, err := r.u16()
		if err != nil {
			return "", err
		}
		if b, err = r.next(int(n)); err != nil {
			return "", err
		}
	}
	s := string(b)
	if err := checkString(s); err != nil {
		return "", err
	}
	return s, nil
}
