package desc

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var flyingState = &EnumTable{
	Name: "FlyingState",
	Values: []EnumValue{
		{Name: "landed", Value: 0},
		{Name: "takingoff", Value: 1},
		{Name: "hovering", Value: 2},
		{Name: "emergency", Value: 5},
	},
}

func testCommands() []*Command {
	return []*Command{
		{Name: "ardrone3.Piloting.TakeOff", Feature: 1, Class: 0, ID: 1, BufferType: BufferAck},
		{Name: "ardrone3.Piloting.PCMD", Feature: 1, Class: 0, ID: 2, Args: []Arg{
			{Name: "flag", Type: U8},
			{Name: "roll", Type: I8},
		}},
		{Name: "ardrone3.PilotingState.FlyingStateChanged", Feature: 1, Class: 4, ID: 1, Args: []Arg{
			{Name: "state", Type: Enum, Enum: flyingState},
		}},
		{Name: "generic.Default", Feature: 149, ID: 0},
		{Name: "generic.SetDroneSettings", Feature: 149, ID: 1},
	}
}

func TestMakeID(t *testing.T) {
	id := MakeID(1, 2, 3)
	if id != 0x01020003 {
		t.Fatalf("MakeID(1, 2, 3) = %s, want 0x01020003", id)
	}
	if id.Feature() != 1 || id.Class() != 2 || id.Command() != 3 {
		t.Errorf("components = %d.%d.%d, want 1.2.3", id.Feature(), id.Class(), id.Command())
	}
	if got := id.String(); got != "0x01020003" {
		t.Errorf("String() = %q", got)
	}
	if got := MakeID(0xFF, 0xFF, 0xFFFF); got != 0xFFFFFFFF {
		t.Errorf("MakeID(max) = %s", got)
	}
}

func TestNewTableLookup(t *testing.T) {
	table, err := NewTable(testCommands())
	require.NoError(t, err)
	assert.Equal(t, 5, table.Len())

	cmd, ok := table.FindByName("ardrone3.Piloting.PCMD")
	require.True(t, ok)
	assert.Equal(t, MakeID(1, 0, 2), cmd.Identity())

	byID, ok := table.FindByIdentity(cmd.Identity())
	require.True(t, ok)
	assert.Same(t, cmd, byID)

	_, ok = table.FindByName("ardrone3.Piloting.Land")
	assert.False(t, ok)
	_, ok = table.FindByIdentity(0x7F000000)
	assert.False(t, ok)
	_, ok = table.FindByName("ardrone3")
	assert.False(t, ok)
}

func TestNewTableClasslessFeature(t *testing.T) {
	table, err := NewTable(testCommands())
	require.NoError(t, err)

	cmd, ok := table.FindByName("generic.SetDroneSettings")
	require.True(t, ok)
	assert.Equal(t, uint8(0), cmd.Class)

	f, ok := table.Feature("generic")
	require.True(t, ok)
	assert.True(t, f.Classless())

	c, ok := f.Class(DefaultClassName)
	require.True(t, ok)
	assert.Equal(t, uint8(0), c.ID)
	assert.Len(t, c.Commands, 2)

	feat, class, name := cmd.Path()
	assert.Equal(t, []string{"generic", DefaultClassName, "SetDroneSettings"}, []string{feat, class, name})
}

func TestNewTableOrdering(t *testing.T) {
	cmds := testCommands()
	// reverse input order
	for i, j := 0, len(cmds)-1; i < j; i, j = i+1, j-1 {
		cmds[i], cmds[j] = cmds[j], cmds[i]
	}
	table, err := NewTable(cmds)
	require.NoError(t, err)

	all := table.Commands()
	for i := 1; i < len(all); i++ {
		if all[i-1].Identity() >= all[i].Identity() {
			t.Fatalf("commands not sorted: %s before %s", all[i-1].Identity(), all[i].Identity())
		}
	}
	features := table.Features()
	require.Len(t, features, 2)
	assert.Equal(t, "ardrone3", features[0].Name)
	assert.Equal(t, "generic", features[1].Name)
}

func TestNewTableSchemaErrors(t *testing.T) {
	tests := []struct {
		name string
		cmds []*Command
		want error
	}{
		{
			name: "duplicate identity",
			cmds: []*Command{
				{Name: "a.X.One", Feature: 1, Class: 1, ID: 1},
				{Name: "a.X.Two", Feature: 1, Class: 1, ID: 1},
			},
			want: ErrDuplicateIdentity,
		},
		{
			name: "duplicate name",
			cmds: []*Command{
				{Name: "a.X.One", Feature: 1, Class: 1, ID: 1},
				{Name: "a.X.One", Feature: 1, Class: 1, ID: 2},
			},
			want: ErrDuplicateName,
		},
		{
			name: "malformed name",
			cmds: []*Command{{Name: "a.b.c.d", Feature: 1, ID: 1}},
			want: ErrMalformedName,
		},
		{
			name: "empty component",
			cmds: []*Command{{Name: "a..c", Feature: 1, ID: 1}},
			want: ErrMalformedName,
		},
		{
			name: "classless with class id",
			cmds: []*Command{{Name: "a.One", Feature: 1, Class: 3, ID: 1}},
			want: ErrInconsistentID,
		},
		{
			name: "feature id mismatch",
			cmds: []*Command{
				{Name: "a.X.One", Feature: 1, Class: 1, ID: 1},
				{Name: "a.X.Two", Feature: 2, Class: 1, ID: 2},
			},
			want: ErrInconsistentID,
		},
		{
			name: "feature id reused",
			cmds: []*Command{
				{Name: "a.X.One", Feature: 1, Class: 1, ID: 1},
				{Name: "b.X.One", Feature: 1, Class: 2, ID: 1},
			},
			want: ErrInconsistentID,
		},
		{
			name: "enum without table",
			cmds: []*Command{{Name: "a.X.One", Feature: 1, ID: 1, Class: 1, Args: []Arg{{Name: "e", Type: Enum}}}},
			want: ErrInvalidArg,
		},
		{
			name: "bitfield with signed base",
			cmds: []*Command{{Name: "a.X.One", Feature: 1, ID: 1, Class: 1, Args: []Arg{
				{Name: "b", Type: Bitfield, Enum: flyingState, BitfieldBase: I32},
			}}},
			want: ErrInvalidArg,
		},
		{
			name: "bitfield flag out of range",
			cmds: []*Command{{Name: "a.X.One", Feature: 1, ID: 1, Class: 1, Args: []Arg{
				{Name: "b", Type: Bitfield, BitfieldBase: U8, Enum: &EnumTable{Name: "Wide", Values: []EnumValue{{Name: "high", Value: 8}}}},
			}}},
			want: ErrInvalidEnum,
		},
		{
			name: "enum duplicate value",
			cmds: []*Command{{Name: "a.X.One", Feature: 1, ID: 1, Class: 1, Args: []Arg{
				{Name: "e", Type: Enum, Enum: &EnumTable{Name: "Dup", Values: []EnumValue{{Name: "a", Value: 1}, {Name: "b", Value: 1}}}},
			}}},
			want: ErrInvalidEnum,
		},
		{
			name: "duplicate argument",
			cmds: []*Command{{Name: "a.X.One", Feature: 1, ID: 1, Class: 1, Args: []Arg{
				{Name: "v", Type: U8}, {Name: "v", Type: U16},
			}}},
			want: ErrDuplicateName,
		},
		{
			name: "multiset without descriptor",
			cmds: []*Command{{Name: "a.X.One", Feature: 1, ID: 1, Class: 1, Args: []Arg{{Name: "m", Type: MultisetArg}}}},
			want: ErrInvalidArg,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewTable(tt.cmds)
			if !errors.Is(err, tt.want) {
				t.Fatalf("NewTable error = %v, want %v", err, tt.want)
			}
			var se *SchemaError
			if !errors.As(err, &se) {
				t.Fatalf("error %T is not a *SchemaError", err)
			}
		})
	}
}

func TestNewTableMultisetMembers(t *testing.T) {
	a := &Command{Name: "a.X.A", Feature: 1, Class: 1, ID: 1, Args: []Arg{{Name: "x", Type: I32}}}
	b := &Command{Name: "a.X.B", Feature: 1, Class: 1, ID: 2, Args: []Arg{{Name: "y", Type: String}}}
	ms := &Multiset{Name: "settings", Members: []*Command{a, b}}
	set := &Command{Name: "a.Set", Feature: 1, ID: 9, Args: []Arg{{Name: "settings", Type: MultisetArg, Multiset: ms}}}

	table, err := NewTable([]*Command{a, b, set})
	require.NoError(t, err)

	got, ok := table.Multiset("settings")
	require.True(t, ok)
	assert.Same(t, ms, got)

	idx, member, ok := ms.Member(b.Identity())
	require.True(t, ok)
	assert.Equal(t, 1, idx)
	assert.Same(t, b, member)

	dup := &Multiset{Name: "dup", Members: []*Command{a, a}}
	_, err = NewTable([]*Command{a, b}, dup)
	assert.ErrorIs(t, err, ErrDuplicateIdentity)
}

func TestNewTableValidatesMultisetOnlyMembers(t *testing.T) {
	// The member is not listed as a table command, so only the multiset
	// reaches it.
	bare := &Command{Name: "a.X.Bare", Feature: 1, Class: 1, ID: 1, Args: []Arg{{Name: "mode", Type: Enum}}}
	ms := &Multiset{Name: "settings", Members: []*Command{bare}}
	set := &Command{Name: "a.Set", Feature: 1, ID: 9, Args: []Arg{{Name: "settings", Type: MultisetArg, Multiset: ms}}}

	_, err := NewTable([]*Command{set})
	require.ErrorIs(t, err, ErrInvalidArg)
	var se *SchemaError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, "a.X.Bare", se.Name)

	_, err = NewTable(nil, ms)
	assert.ErrorIs(t, err, ErrInvalidArg)
}

func TestLookupResolve(t *testing.T) {
	table, err := NewTable(testCommands())
	require.NoError(t, err)

	_, err = table.Lookup("ardrone3.Piloting.Nope")
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = table.Resolve(0x01FF0000)
	assert.ErrorIs(t, err, ErrNotFound)

	cmd, err := table.Lookup("ardrone3.Piloting.TakeOff")
	require.NoError(t, err)
	assert.Equal(t, BufferAck, cmd.BufferType)
}
