package wire

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arsdk-protocol/arsdk-go/pkg/desc"
)

var (
	memberA = &desc.Command{Name: "test.Settings.A", Feature: 7, Class: 2, ID: 0, Args: []desc.Arg{
		{Name: "x", Type: desc.I32},
	}}
	memberB = &desc.Command{Name: "test.Settings.B", Feature: 7, Class: 2, ID: 1, Args: []desc.Arg{
		{Name: "y", Type: desc.String},
	}}
	notMember = &desc.Command{Name: "test.Settings.C", Feature: 7, Class: 2, ID: 2, Args: []desc.Arg{
		{Name: "z", Type: desc.U8},
	}}

	settings = &desc.Multiset{Name: "settings", Members: []*desc.Command{memberA, memberB}}

	cmdSet = &desc.Command{Name: "test.SetSettings", Feature: 7, ID: 9, Args: []desc.Arg{
		{Name: "settings", Type: desc.MultisetArg, Multiset: settings},
	}}
)

// subframe returns a size-prefixed sub-frame.
func subframe(t *testing.T, cmd *desc.Command, args ...any) []byte {
	t.Helper()
	frame, err := Encode(cmd, args...)
	require.NoError(t, err)
	b := frame.Bytes()
	return append([]byte{byte(len(b)), byte(len(b) >> 8)}, b...)
}

// region wraps sub-frames into a multiset region.
func region(subs ...[]byte) []byte {
	var body []byte
	for _, s := range subs {
		body = append(body, s...)
	}
	return append([]byte{byte(len(body)), byte(len(body) >> 8)}, body...)
}

func TestMultisetPartialAggregation(t *testing.T) {
	data := region(subframe(t, memberB, "foo"))

	ms, err := DecodeMultiset(settings, data)
	require.NoError(t, err)
	require.Len(t, ms.Slots, 2)

	assert.False(t, ms.Slots[0].IsSet)
	assert.Nil(t, ms.Slots[0].Args)
	assert.True(t, ms.Slots[1].IsSet)
	assert.Equal(t, []any{"foo"}, ms.Slots[1].Args)
	assert.True(t, ms.IsSet(memberB))
	assert.False(t, ms.IsSet(memberA))
}

func TestMultisetEncodeLayout(t *testing.T) {
	ms := NewMultiset(settings)
	require.NoError(t, ms.Set(memberB, "foo"))

	data, err := EncodeMultiset(settings, ms)
	require.NoError(t, err)

	want := []byte{
		11, 0, // region size
		9, 0, // sub-frame size
		7, 2, 1, 0, // test.Settings.B header
		3, 0, 'f', 'o', 'o',
	}
	assert.Equal(t, want, data)
}

func TestMultisetRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		set  func(ms *Multiset)
	}{
		{"empty", func(*Multiset) {}},
		{"only A", func(ms *Multiset) { _ = ms.Set(memberA, int32(-7)) }},
		{"only B", func(ms *Multiset) { _ = ms.Set(memberB, "bar") }},
		{"both", func(ms *Multiset) {
			_ = ms.Set(memberB, "bar")
			_ = ms.Set(memberA, int32(42))
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := NewMultiset(settings)
			tt.set(in)

			data, err := EncodeMultiset(settings, in)
			require.NoError(t, err)

			out, err := DecodeMultiset(settings, data)
			require.NoError(t, err)
			assert.Equal(t, in.Slots, out.Slots)

			again, err := EncodeMultiset(settings, out)
			require.NoError(t, err)
			assert.Equal(t, data, again)
		})
	}
}

func TestMultisetEmptyRegion(t *testing.T) {
	data, err := EncodeMultiset(settings, NewMultiset(settings))
	require.NoError(t, err)
	assert.Equal(t, []byte{0, 0}, data)
}

func TestMultisetUnsetSlotsContributeNothing(t *testing.T) {
	onlyA := NewMultiset(settings)
	require.NoError(t, onlyA.Set(memberA, int32(1)))
	a, err := EncodeMultiset(settings, onlyA)
	require.NoError(t, err)

	both := NewMultiset(settings)
	require.NoError(t, both.Set(memberA, int32(1)))
	require.NoError(t, both.Set(memberB, "x"))
	ab, err := EncodeMultiset(settings, both)
	require.NoError(t, err)

	// A: 2 + 4 + 4 bytes; B adds 2 + 4 + 3 bytes
	assert.Len(t, a, 2+10)
	assert.Len(t, ab, 2+10+9)
}

func TestMultisetLaterOccurrenceWins(t *testing.T) {
	data := region(
		subframe(t, memberA, int32(1)),
		subframe(t, memberA, int32(2)),
	)
	ms, err := DecodeMultiset(settings, data)
	require.NoError(t, err)
	assert.Equal(t, []any{int32(2)}, ms.Slots[0].Args)
}

func TestMultisetUnmatchedSkipped(t *testing.T) {
	data := region(
		subframe(t, notMember, uint8(42)),
		subframe(t, memberB, "foo"),
	)

	ms, err := DecodeMultiset(settings, data)
	require.NoError(t, err)
	assert.Equal(t, 1, ms.Unmatched)
	assert.Equal(t, 1, ms.Count())
	assert.True(t, ms.IsSet(memberB))

	table, err := desc.NewTable([]*desc.Command{memberA, memberB, notMember, cmdSet})
	require.NoError(t, err)

	var visited []*SubFrame
	err = ForEachSubmessage(settings, data, func(sf *SubFrame) error {
		visited = append(visited, sf)
		return nil
	})
	require.NoError(t, err)
	require.Len(t, visited, 2)

	first := visited[0]
	assert.False(t, first.Matched())
	assert.Equal(t, -1, first.Slot)
	assert.ErrorIs(t, first.Err(), ErrUnmatchedMember)
	msg, err := first.Decode(table)
	require.NoError(t, err)
	assert.Equal(t, []any{uint8(42)}, msg.Args)

	_, err = first.Decode(nil)
	assert.ErrorIs(t, err, ErrUnknownCommand)

	second := visited[1]
	assert.True(t, second.Matched())
	assert.Equal(t, 1, second.Slot)
	assert.NoError(t, second.Err())
	msg, err = second.Decode(nil)
	require.NoError(t, err)
	assert.Equal(t, "test.Settings.B", msg.Name())
}

func TestForEachSubmessageStops(t *testing.T) {
	data := region(
		subframe(t, memberA, int32(1)),
		subframe(t, memberB, "foo"),
	)
	stop := errors.New("stop")
	calls := 0
	err := ForEachSubmessage(settings, data, func(*SubFrame) error {
		calls++
		return stop
	})
	assert.ErrorIs(t, err, stop)
	assert.Equal(t, 1, calls)
}

func TestMultisetMemberFailureContinues(t *testing.T) {
	badA := []byte{6, 0, 7, 2, 0, 0, 1, 2} // x needs 4 bytes, has 2
	data := region(badA, subframe(t, memberB, "foo"))

	ms, err := DecodeMultiset(settings, data)
	require.NotNil(t, ms)
	assert.ErrorIs(t, err, ErrShortPayload)
	require.Len(t, ms.Errors, 1)
	assert.False(t, ms.IsSet(memberA))
	assert.True(t, ms.IsSet(memberB))
}

func TestMultisetStructuralErrors(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"no size", []byte{1}},
		{"region overrun", []byte{10, 0, 1, 2}},
		{"sub-frame overrun", []byte{4, 0, 9, 0, 7, 2}},
		{"trailing", append(region(), 0xFF)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ms, err := DecodeMultiset(settings, tt.data)
			assert.Nil(t, ms)
			assert.ErrorIs(t, err, ErrMalformedMultiset)
		})
	}
}

func TestMultisetArgument(t *testing.T) {
	ms := NewMultiset(settings)
	require.NoError(t, ms.Set(memberA, int32(5)))

	frame, err := Encode(cmdSet, ms)
	require.NoError(t, err)

	msg, err := Decode(cmdSet, frame)
	require.NoError(t, err)
	got, ok := msg.Multiset("settings")
	require.True(t, ok)
	assert.Equal(t, ms.Slots, got.Slots)

	_, err = Encode(cmdSet, NewMultiset(&desc.Multiset{Name: "other"}))
	assert.ErrorIs(t, err, ErrArgType)
}

func TestMultisetArgumentStrict(t *testing.T) {
	badA := []byte{6, 0, 7, 2, 0, 0, 1, 2}
	payload := region(badA)
	frame := Frame{ID: cmdSet.Identity(), Payload: payload}

	msg, err := Decode(cmdSet, frame)
	require.NoError(t, err)
	ms, _ := msg.Multiset("settings")
	assert.Len(t, ms.Errors, 1)

	strict := NewCodec(Options{StrictMultiset: true})
	_, err = strict.Decode(cmdSet, frame)
	assert.ErrorIs(t, err, ErrShortPayload)
}

func TestMultisetSet(t *testing.T) {
	ms := NewMultiset(settings)
	assert.ErrorIs(t, ms.Set(notMember, uint8(1)), ErrUnmatchedMember)
	assert.ErrorIs(t, ms.Set(memberA), ErrArgCount)

	require.NoError(t, ms.Set(memberB, "kept"))
	err := ms.Set(memberB, 42)
	require.ErrorIs(t, err, ErrArgType)
	var encErr *EncodeError
	require.ErrorAs(t, err, &encErr)
	assert.Equal(t, memberB.Name, encErr.Command)
	slot, _ := ms.Get(memberB)
	assert.Equal(t, []any{"kept"}, slot.Args)
	ms.Clear(memberB)

	require.NoError(t, ms.Set(memberA, int32(3)))
	msgs := ms.Messages()
	require.Len(t, msgs, 1)
	assert.Equal(t, memberA, msgs[0].Desc)

	ms.Clear(memberA)
	assert.Zero(t, ms.Count())
}
