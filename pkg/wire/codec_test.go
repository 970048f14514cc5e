package wire

import (
	"bytes"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arsdk-protocol/arsdk-go/pkg/desc"
)

var (
	stateEnum = &desc.EnumTable{Name: "State", Values: []desc.EnumValue{
		{Name: "landed", Value: 0},
		{Name: "flying", Value: 1},
		{Name: "emergency", Value: 5},
	}}
	flagsEnum = &desc.EnumTable{Name: "Flags", Values: []desc.EnumValue{
		{Name: "first", Value: 0},
		{Name: "last", Value: 1},
	}}

	cmdAll = &desc.Command{Name: "test.Types.All", Feature: 7, Class: 1, ID: 0x0102, Args: []desc.Arg{
		{Name: "i8", Type: desc.I8},
		{Name: "u8", Type: desc.U8},
		{Name: "i16", Type: desc.I16},
		{Name: "u16", Type: desc.U16},
		{Name: "i32", Type: desc.I32},
		{Name: "u32", Type: desc.U32},
		{Name: "i64", Type: desc.I64},
		{Name: "u64", Type: desc.U64},
		{Name: "f", Type: desc.Float},
		{Name: "d", Type: desc.Double},
		{Name: "s", Type: desc.String},
		{Name: "b", Type: desc.Binary},
		{Name: "e", Type: desc.Enum, Enum: stateEnum},
		{Name: "flags", Type: desc.Bitfield, Enum: flagsEnum, BitfieldBase: desc.U16},
	}}

	cmdPCMD = &desc.Command{Name: "test.Piloting.PCMD", Feature: 1, Class: 0, ID: 2, Args: []desc.Arg{
		{Name: "flag", Type: desc.U8},
		{Name: "roll", Type: desc.I8},
		{Name: "pitch", Type: desc.I8},
		{Name: "yaw", Type: desc.I8},
		{Name: "gaz", Type: desc.I8},
		{Name: "timestampAndSeqNum", Type: desc.U32},
	}}

	cmdName = &desc.Command{Name: "test.Settings.Name", Feature: 7, Class: 2, ID: 7, Args: []desc.Arg{
		{Name: "name", Type: desc.String},
	}}
)

func allValues() []any {
	return []any{
		int8(-8), uint8(8), int16(-1600), uint16(1600),
		int32(-320000), uint32(320000), int64(-6400000000), uint64(6400000000),
		float32(1.5), float64(-2.25),
		"héllo", []byte{0xDE, 0xAD},
		desc.EnumValue{Name: "emergency", Value: 5},
		uint16(0b11 | 1<<9),
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	values := allValues()

	frame, err := Encode(cmdAll, values...)
	require.NoError(t, err)
	assert.Equal(t, desc.MakeID(7, 1, 0x0102), frame.ID)

	msg, err := Decode(cmdAll, frame)
	require.NoError(t, err)
	if diff := cmp.Diff(values, msg.Args); diff != "" {
		t.Errorf("decoded args mismatch (-want +got):\n%s", diff)
	}

	again, err := msg.Encode()
	require.NoError(t, err)
	if !bytes.Equal(frame.Bytes(), again.Bytes()) {
		t.Errorf("re-encoded frame differs:\n got %x\nwant %x", again.Bytes(), frame.Bytes())
	}
}

func TestEncodeLayout(t *testing.T) {
	frame, err := Encode(cmdPCMD, uint8(1), int8(-1), int8(2), int8(0), int8(10), uint32(0x01020304))
	require.NoError(t, err)

	want := []byte{
		0x01, 0x00, 0x02, 0x00, // feature, class, command (LE)
		0x01, 0xFF, 0x02, 0x00, 0x0A,
		0x04, 0x03, 0x02, 0x01,
	}
	assert.Equal(t, want, frame.Bytes())

	parsed, err := ParseFrame(want)
	require.NoError(t, err)
	assert.Equal(t, cmdPCMD.Identity(), parsed.ID)
	assert.Equal(t, want[HeaderSize:], parsed.Payload)
}

func TestEncodeStringLayout(t *testing.T) {
	payload, err := EncodeArgs(cmdName, "foo")
	require.NoError(t, err)
	assert.Equal(t, []byte{3, 0, 'f', 'o', 'o'}, payload)

	nul := NewCodec(Options{Strings: StringNulTerminated})
	payload, err = nul.EncodeArgs(cmdName, "foo")
	require.NoError(t, err)
	assert.Equal(t, []byte{'f', 'o', 'o', 0}, payload)

	args, err := nul.DecodeArgs(cmdName, payload)
	require.NoError(t, err)
	assert.Equal(t, []any{"foo"}, args)

	_, err = nul.DecodeArgs(cmdName, []byte{'f', 'o'})
	assert.ErrorIs(t, err, ErrShortPayload)
}

func TestEncodeErrors(t *testing.T) {
	valid := allValues()
	with := func(i int, v any) []any {
		out := append([]any(nil), valid...)
		out[i] = v
		return out
	}

	tests := []struct {
		name string
		args []any
		want error
	}{
		{"too few args", valid[:3], ErrArgCount},
		{"too many args", append(append([]any(nil), valid...), uint8(1)), ErrArgCount},
		{"wrong int type", with(0, 8), ErrArgType},
		{"wrong float type", with(8, float64(1)), ErrArgType},
		{"enum not in table", with(12, int32(3)), ErrEnumValue},
		{"enum name mismatch", with(12, desc.EnumValue{Name: "landed", Value: 5}), ErrEnumValue},
		{"enum unknown name", with(12, "crashed"), ErrEnumValue},
		{"string with NUL", with(10, "a\x00b"), ErrInvalidString},
		{"string not utf8", with(10, "\xff\xfe"), ErrInvalidString},
		{"bitfield wrong width", with(13, uint8(1)), ErrArgType},
		{"bitfield overflow", with(13, uint64(1<<16)), ErrTooLarge},
		{"binary as string", with(11, "raw"), ErrArgType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			frame, err := Encode(cmdAll, tt.args...)
			if !errors.Is(err, tt.want) {
				t.Fatalf("Encode error = %v, want %v", err, tt.want)
			}
			var ee *EncodeError
			if !errors.As(err, &ee) {
				t.Fatalf("error %T is not an *EncodeError", err)
			}
			if frame.Payload != nil {
				t.Errorf("partial payload returned: %x", frame.Payload)
			}
		})
	}
}

func TestEncodeEnumAlternatives(t *testing.T) {
	cmd := &desc.Command{Name: "test.X.E", Feature: 7, Class: 3, ID: 1, Args: []desc.Arg{
		{Name: "e", Type: desc.Enum, Enum: stateEnum},
	}}
	for _, v := range []any{desc.EnumValue{Value: 1}, int32(1), "flying"} {
		payload, err := EncodeArgs(cmd, v)
		require.NoError(t, err, "value %v", v)
		assert.Equal(t, []byte{1, 0, 0, 0}, payload)

		args, err := DecodeArgs(cmd, payload)
		require.NoError(t, err)
		assert.Equal(t, desc.EnumValue{Name: "flying", Value: 1}, args[0])
	}
}

func TestBitfieldPreservesUnknownBits(t *testing.T) {
	cmd := &desc.Command{Name: "test.X.B", Feature: 7, Class: 3, ID: 2, Args: []desc.Arg{
		{Name: "b", Type: desc.Bitfield, Enum: flagsEnum, BitfieldBase: desc.U8},
	}}
	payload, err := EncodeArgs(cmd, uint8(0b1000_0010))
	require.NoError(t, err)
	assert.Equal(t, []byte{0x82}, payload)

	args, err := DecodeArgs(cmd, payload)
	require.NoError(t, err)
	assert.Equal(t, uint8(0x82), args[0])

	payload, err = EncodeArgs(cmd, uint64(0x81))
	require.NoError(t, err)
	assert.Equal(t, []byte{0x81}, payload)
}

func TestDecodeErrors(t *testing.T) {
	good, err := EncodeArgs(cmdAll, allValues()...)
	require.NoError(t, err)

	unknownEnum := bytes.Clone(good)
	// enum follows 42 bytes of fixed-width values, the string and the binary
	enumOff := 42 + 2 + len("héllo") + 4 + 2
	unknownEnum[enumOff] = 3

	tests := []struct {
		name    string
		payload []byte
		want    error
	}{
		{"empty", nil, ErrShortPayload},
		{"truncated", good[:len(good)-1], ErrShortPayload},
		{"trailing", append(bytes.Clone(good), 0), ErrTrailingBytes},
		{"unknown enum", unknownEnum, ErrEnumValue},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args, err := DecodeArgs(cmdAll, tt.payload)
			if !errors.Is(err, tt.want) {
				t.Fatalf("DecodeArgs error = %v, want %v", err, tt.want)
			}
			if args != nil {
				t.Errorf("partial args returned: %v", args)
			}
			var de *DecodeError
			if !errors.As(err, &de) {
				t.Fatalf("error %T is not a *DecodeError", err)
			}
		})
	}
}

func TestDecodeInvalidString(t *testing.T) {
	_, err := DecodeArgs(cmdName, []byte{3, 0, 'a', 0, 'b'})
	assert.ErrorIs(t, err, ErrInvalidString)

	_, err = DecodeArgs(cmdName, []byte{2, 0, 0xff, 0xfe})
	assert.ErrorIs(t, err, ErrInvalidString)

	_, err = DecodeArgs(cmdName, []byte{9, 0, 'a'})
	assert.ErrorIs(t, err, ErrShortPayload)
}

func TestDecodeIdentityMismatch(t *testing.T) {
	frame, err := Encode(cmdName, "x")
	require.NoError(t, err)
	_, err = Decode(cmdPCMD, frame)
	assert.ErrorIs(t, err, ErrIdentityMismatch)
}

func TestDecodeHeader(t *testing.T) {
	id, err := DecodeHeader([]byte{0x01, 0x02, 0x03, 0x00, 0xAA})
	require.NoError(t, err)
	assert.Equal(t, desc.ID(0x01020003), id)

	_, err = DecodeHeader([]byte{1, 2, 3})
	assert.ErrorIs(t, err, ErrShortPayload)
}

func TestMaxPayloadSize(t *testing.T) {
	c := NewCodec(Options{MaxPayloadSize: 4})
	_, err := c.EncodeArgs(cmdName, "toolong")
	assert.ErrorIs(t, err, ErrTooLarge)

	_, err = c.EncodeArgs(cmdName, "ab")
	assert.NoError(t, err)
}

func TestMessageAccessors(t *testing.T) {
	frame, err := Encode(cmdAll, allValues()...)
	require.NoError(t, err)
	msg, err := Decode(cmdAll, frame)
	require.NoError(t, err)

	v, ok := msg.Arg("u16")
	require.True(t, ok)
	assert.Equal(t, uint16(1600), v)

	ev, ok := msg.Enum("e")
	require.True(t, ok)
	assert.Equal(t, "emergency", ev.Name)

	_, ok = msg.Arg("missing")
	assert.False(t, ok)
	assert.Equal(t, "test.Types.All", msg.Name())
}

func TestParseStringEncoding(t *testing.T) {
	for _, enc := range []StringEncoding{StringLengthPrefixed, StringNulTerminated} {
		got, err := ParseStringEncoding(enc.String())
		require.NoError(t, err)
		assert.Equal(t, enc, got)
	}
	_, err := ParseStringEncoding("utf16")
	assert.Error(t, err)
}
