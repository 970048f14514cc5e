package schema

import (
	"errors"
	"fmt"
	"strings"

	"github.com/arsdk-protocol/arsdk-go/pkg/desc"
)

var (
	ErrUnknownType     = errors.New("schema: unknown argument type")
	ErrUnknownEnum     = errors.New("schema: unknown enum")
	ErrUnknownMultiset = errors.New("schema: unknown multiset")
	ErrUnknownMember   = errors.New("schema: unknown multiset member")
	ErrMixedLayout     = errors.New("schema: feature has both classes and classless commands")
	ErrInvalidOption   = errors.New("schema: invalid command option")
	ErrDuplicateEnum   = errors.New("schema: duplicate enum")
	ErrDuplicate       = errors.New("schema: duplicate feature")
)

// Schema is the compiled form of a set of feature definitions.
type Schema struct {
	Table    *desc.Table
	Features []*Feature

	multisets map[string]*Multiset
}

// Feature is a compiled feature, in declaration order.
type Feature struct {
	Def      *RawFeatureDef
	Enums    []*Enum
	Commands []*Command
}

// Enum is a compiled value table.
type Enum struct {
	Def   *RawEnumDef
	Table *desc.EnumTable

	// Bitfield is true when some argument uses the table as a bitfield.
	Bitfield bool
}

// Command is a compiled command with its source definition.
type Command struct {
	Def  *RawCommandDef
	Desc *desc.Command

	// Class is empty for classless commands.
	Class string
}

// Multiset is a compiled multiset.
type Multiset struct {
	Def  *RawMultisetDef
	Desc *desc.Multiset

	// Owner is the feature that declares the multiset.
	Owner string
}

// Multiset returns the compiled multiset with the given name.
func (s *Schema) Multiset(name string) (*Multiset, bool) {
	ms, ok := s.multisets[name]
	return ms, ok
}

// Multisets returns the multisets declared by feature, in declaration order.
func (s *Schema) Multisets(feature string) []*Multiset {
	var out []*Multiset
	for _, f := range s.Features {
		if f.Def.Name != feature {
			continue
		}
		for _, d := range f.Def.Multisets {
			out = append(out, s.multisets[d.Name])
		}
	}
	return out
}

// Compile resolves enum and multiset references across defs, builds the
// descriptors and validates them as a desc.Table. Duplicate identities and
// names fail with the underlying *desc.SchemaError.
func Compile(defs []*RawFeatureDef) (*Schema, error) {
	c := &compiler{
		schema: &Schema{multisets: make(map[string]*Multiset)},
		enums:  make(map[string]*Enum),
		byName: make(map[string]*Command),
	}
	if err := c.declare(defs); err != nil {
		return nil, err
	}
	for i, def := range defs {
		if err := c.compileFeature(def, c.schema.Features[i]); err != nil {
			return nil, err
		}
	}
	if err := c.resolveMembers(); err != nil {
		return nil, err
	}

	var cmds []*desc.Command
	for _, f := range c.schema.Features {
		for _, cmd := range f.Commands {
			cmds = append(cmds, cmd.Desc)
		}
	}
	var multisets []*desc.Multiset
	for _, f := range defs {
		for _, d := range f.Multisets {
			multisets = append(multisets, c.schema.multisets[d.Name].Desc)
		}
	}
	table, err := desc.NewTable(cmds, multisets...)
	if err != nil {
		return nil, err
	}
	c.schema.Table = table
	return c.schema, nil
}

type compiler struct {
	schema *Schema
	enums  map[string]*Enum // "feature.Enum"
	byName map[string]*Command
}

// declare registers features, enums and multisets so that references can
// point forward and across files.
func (c *compiler) declare(defs []*RawFeatureDef) error {
	seen := make(map[string]bool, len(defs))
	for _, def := range defs {
		if seen[def.Name] {
			return fmt.Errorf("%w: %s", ErrDuplicate, def.Name)
		}
		seen[def.Name] = true

		f := &Feature{Def: def}
		for i := range def.Enums {
			ed := &def.Enums[i]
			key := def.Name + "." + ed.Name
			if _, dup := c.enums[key]; dup {
				return fmt.Errorf("%w: %s", ErrDuplicateEnum, key)
			}
			values := make([]desc.EnumValue, len(ed.Values))
			for j, v := range ed.Values {
				values[j] = desc.EnumValue{Name: v.Name, Value: v.Value}
			}
			e := &Enum{Def: ed, Table: &desc.EnumTable{Name: ed.Name, Values: values}}
			c.enums[key] = e
			f.Enums = append(f.Enums, e)
		}
		for i := range def.Multisets {
			md := &def.Multisets[i]
			if _, dup := c.schema.multisets[md.Name]; dup {
				return &desc.SchemaError{Name: md.Name, Err: desc.ErrDuplicateName, Detail: "multiset declared twice"}
			}
			c.schema.multisets[md.Name] = &Multiset{
				Def:   md,
				Desc:  &desc.Multiset{Name: md.Name},
				Owner: def.Name,
			}
		}
		c.schema.Features = append(c.schema.Features, f)
	}
	return nil
}

func (c *compiler) compileFeature(def *RawFeatureDef, f *Feature) error {
	if len(def.Classes) > 0 && len(def.Commands) > 0 {
		return fmt.Errorf("%w: %s", ErrMixedLayout, def.Name)
	}
	for i := range def.Commands {
		cd := &def.Commands[i]
		if err := c.compileCommand(def, f, "", 0, cd); err != nil {
			return err
		}
	}
	for _, cls := range def.Classes {
		for i := range cls.Commands {
			if err := c.compileCommand(def, f, cls.Name, cls.ID, &cls.Commands[i]); err != nil {
				return err
			}
		}
	}
	return nil
}

func (c *compiler) compileCommand(def *RawFeatureDef, f *Feature, class string, classID uint8, cd *RawCommandDef) error {
	name := def.Name + "." + cd.Name
	if class != "" {
		name = def.Name + "." + class + "." + cd.Name
	}

	cmd := &desc.Command{
		Name:    name,
		Feature: def.ID,
		Class:   classID,
		ID:      cd.ID,
	}
	var err error
	if cmd.BufferType, err = parseBuffer(cd.Buffer); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	if cmd.TimeoutPolicy, err = parseTimeout(cd.Timeout); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	if cmd.ListType, err = parseList(cd.List); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}

	for _, ad := range cd.Args {
		arg, err := c.compileArg(def.Name, ad)
		if err != nil {
			return fmt.Errorf("%s.%s: %w", name, ad.Name, err)
		}
		cmd.Args = append(cmd.Args, arg)
	}

	compiled := &Command{Def: cd, Desc: cmd, Class: class}
	// duplicates are reported by desc.NewTable
	if _, dup := c.byName[name]; !dup {
		c.byName[name] = compiled
	}
	f.Commands = append(f.Commands, compiled)
	return nil
}

func (c *compiler) compileArg(feature string, ad RawArgDef) (desc.Arg, error) {
	t, err := desc.ParseArgType(ad.Type)
	if err != nil {
		return desc.Arg{}, fmt.Errorf("%w: %q", ErrUnknownType, ad.Type)
	}
	arg := desc.Arg{Name: ad.Name, Type: t}

	switch t {
	case desc.Enum, desc.Bitfield:
		e, err := c.lookupEnum(feature, ad.Enum)
		if err != nil {
			return desc.Arg{}, err
		}
		arg.Enum = e.Table
		if t == desc.Bitfield {
			e.Bitfield = true
			base := ad.Base
			if base == "" {
				base = "u32"
			}
			if arg.BitfieldBase, err = desc.ParseArgType(base); err != nil {
				return desc.Arg{}, fmt.Errorf("%w: bitfield base %q", ErrUnknownType, ad.Base)
			}
		}
	case desc.MultisetArg:
		ms, ok := c.schema.multisets[ad.Multiset]
		if !ok {
			return desc.Arg{}, fmt.Errorf("%w: %q", ErrUnknownMultiset, ad.Multiset)
		}
		arg.Multiset = ms.Desc
	}
	return arg, nil
}

func (c *compiler) lookupEnum(feature, ref string) (*Enum, error) {
	key := ref
	if !strings.Contains(ref, ".") {
		key = feature + "." + ref
	}
	e, ok := c.enums[key]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownEnum, ref)
	}
	return e, nil
}

func (c *compiler) resolveMembers() error {
	for _, f := range c.schema.Features {
		for _, md := range f.Def.Multisets {
			ms := c.schema.multisets[md.Name]
			for _, member := range md.Members {
				cmd, ok := c.byName[member]
				if !ok {
					return fmt.Errorf("%w: %s in %s", ErrUnknownMember, member, md.Name)
				}
				ms.Desc.Members = append(ms.Desc.Members, cmd.Desc)
			}
		}
	}
	return nil
}

func parseBuffer(s string) (desc.BufferType, error) {
	switch s {
	case "", "ack":
		return desc.BufferAck, nil
	case "non_ack":
		return desc.BufferNonAck, nil
	case "high_prio":
		return desc.BufferHighPrio, nil
	}
	return 0, fmt.Errorf("%w: buffer %q", ErrInvalidOption, s)
}

func parseTimeout(s string) (desc.TimeoutPolicy, error) {
	switch s {
	case "", "pop":
		return desc.TimeoutPop, nil
	case "retry":
		return desc.TimeoutRetry, nil
	case "flush":
		return desc.TimeoutFlush, nil
	}
	return 0, fmt.Errorf("%w: timeout %q", ErrInvalidOption, s)
}

func parseList(s string) (desc.ListType, error) {
	switch s {
	case "", "none":
		return desc.ListNone, nil
	case "list_item":
		return desc.ListItem, nil
	case "map_item":
		return desc.ListMapItem, nil
	}
	return 0, fmt.Errorf("%w: list %q", ErrInvalidOption, s)
}
