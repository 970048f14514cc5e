package desc

import (
	"fmt"
	"sort"
	"strings"
)

// DefaultClassName is the name of the synthetic class holding the commands of
// a feature that declares no classes. Its id is always 0.
const DefaultClassName = "default"

// FeatureInfo groups the classes of a feature.
type FeatureInfo struct {
	Name    string
	ID      uint8
	Classes []*ClassInfo

	classes map[string]*ClassInfo
}

// Class returns the named class. For classless features use DefaultClassName.
func (f *FeatureInfo) Class(name string) (*ClassInfo, bool) {
	c, ok := f.classes[name]
	return c, ok
}

// Classless reports whether the feature declares no classes.
func (f *FeatureInfo) Classless() bool {
	return len(f.Classes) == 1 && f.Classes[0].Default
}

// ClassInfo groups the commands of a class.
type ClassInfo struct {
	Name     string
	ID       uint8
	Default  bool
	Commands []*Command

	commands map[string]*Command
}

// Command returns the command with the given short name.
func (c *ClassInfo) Command(name string) (*Command, bool) {
	cmd, ok := c.commands[name]
	return cmd, ok
}

// Table is a validated, immutable set of command descriptors.
type Table struct {
	cmds        []*Command
	byID        map[ID]*Command
	features    []*FeatureInfo
	byFeature   map[string]*FeatureInfo
	featureByID map[uint8]*FeatureInfo
	multisets   map[string]*Multiset
}

// NewTable validates cmds and builds a Table. Multisets referenced by MULTISET
// arguments are registered automatically; multisets may also be passed
// explicitly. Any schema violation is returned as a *SchemaError.
func NewTable(cmds []*Command, multisets ...*Multiset) (*Table, error) {
	t := &Table{
		byID:        make(map[ID]*Command, len(cmds)),
		byFeature:   make(map[string]*FeatureInfo),
		featureByID: make(map[uint8]*FeatureInfo),
		multisets:   make(map[string]*Multiset),
	}
	enums := make(map[*EnumTable]bool)

	for _, cmd := range cmds {
		if cmd == nil {
			return nil, &SchemaError{Name: "<nil>", Err: ErrInvalidArg, Detail: "nil command"}
		}
		if err := t.add(cmd); err != nil {
			return nil, err
		}
		if err := validateArgs(cmd, enums); err != nil {
			return nil, err
		}
		for i := range cmd.Args {
			if ms := cmd.Args[i].Multiset; ms != nil {
				if err := t.addMultiset(ms, enums); err != nil {
					return nil, err
				}
			}
		}
	}
	for _, ms := range multisets {
		if err := t.addMultiset(ms, enums); err != nil {
			return nil, err
		}
	}

	sort.Slice(t.cmds, func(i, j int) bool {
		return t.cmds[i].Identity() < t.cmds[j].Identity()
	})
	sort.Slice(t.features, func(i, j int) bool {
		return t.features[i].ID < t.features[j].ID
	})
	for _, f := range t.features {
		sort.Slice(f.Classes, func(i, j int) bool {
			return f.Classes[i].ID < f.Classes[j].ID
		})
		for _, c := range f.Classes {
			sort.Slice(c.Commands, func(i, j int) bool {
				return c.Commands[i].ID < c.Commands[j].ID
			})
		}
	}
	return t, nil
}

func (t *Table) add(cmd *Command) error {
	id := cmd.Identity()
	if prev, ok := t.byID[id]; ok {
		return schemaErr(cmd.Name, ErrDuplicateIdentity, "%s already used by %s", id, prev.Name)
	}

	parts := strings.Split(cmd.Name, ".")
	for _, p := range parts {
		if p == "" {
			return schemaErr(cmd.Name, ErrMalformedName, "empty path component")
		}
	}
	var featName, className, cmdName string
	switch len(parts) {
	case 2:
		if cmd.Class != 0 {
			return schemaErr(cmd.Name, ErrInconsistentID, "classless command with class id %d", cmd.Class)
		}
		featName, className, cmdName = parts[0], DefaultClassName, parts[1]
	case 3:
		featName, className, cmdName = parts[0], parts[1], parts[2]
	default:
		return schemaErr(cmd.Name, ErrMalformedName, "want feature.class.command or feature.command")
	}

	f, ok := t.byFeature[featName]
	if !ok {
		if other, dup := t.featureByID[cmd.Feature]; dup {
			return schemaErr(cmd.Name, ErrInconsistentID, "feature id %d already used by %s", cmd.Feature, other.Name)
		}
		f = &FeatureInfo{Name: featName, ID: cmd.Feature, classes: make(map[string]*ClassInfo)}
		t.byFeature[featName] = f
		t.featureByID[cmd.Feature] = f
		t.features = append(t.features, f)
	} else if f.ID != cmd.Feature {
		return schemaErr(cmd.Name, ErrInconsistentID, "feature %s has id %d, command uses %d", featName, f.ID, cmd.Feature)
	}

	isDefault := len(parts) == 2
	c, ok := f.classes[className]
	if !ok {
		for _, other := range f.Classes {
			if other.ID == cmd.Class {
				return schemaErr(cmd.Name, ErrInconsistentID, "class id %d already used by %s.%s", cmd.Class, featName, other.Name)
			}
		}
		c = &ClassInfo{Name: className, ID: cmd.Class, Default: isDefault, commands: make(map[string]*Command)}
		f.classes[className] = c
		f.Classes = append(f.Classes, c)
	} else if c.ID != cmd.Class || c.Default != isDefault {
		return schemaErr(cmd.Name, ErrInconsistentID, "class %s.%s has id %d, command uses %d", featName, className, c.ID, cmd.Class)
	}

	if _, dup := c.commands[cmdName]; dup {
		return schemaErr(cmd.Name, ErrDuplicateName, "")
	}
	c.commands[cmdName] = cmd
	c.Commands = append(c.Commands, cmd)
	t.byID[id] = cmd
	t.cmds = append(t.cmds, cmd)
	return nil
}

func (t *Table) addMultiset(ms *Multiset, enums map[*EnumTable]bool) error {
	if ms == nil {
		return &SchemaError{Name: "<nil>", Err: ErrInvalidMultiset, Detail: "nil multiset"}
	}
	if prev, ok := t.multisets[ms.Name]; ok {
		if prev == ms {
			return nil
		}
		return schemaErr(ms.Name, ErrDuplicateName, "multiset declared twice")
	}
	if ms.Name == "" {
		return &SchemaError{Name: "<multiset>", Err: ErrInvalidMultiset, Detail: "missing name"}
	}
	seen := make(map[ID]string, len(ms.Members))
	for _, m := range ms.Members {
		if m == nil {
			return schemaErr(ms.Name, ErrInvalidMultiset, "nil member")
		}
		id := m.Identity()
		if prev, dup := seen[id]; dup {
			return schemaErr(ms.Name, ErrDuplicateIdentity, "members %s and %s share %s", prev, m.Name, id)
		}
		seen[id] = m.Name
		if err := validateArgs(m, enums); err != nil {
			return err
		}
	}
	t.multisets[ms.Name] = ms
	return nil
}

func validateArgs(cmd *Command, enums map[*EnumTable]bool) error {
	names := make(map[string]bool, len(cmd.Args))
	for i := range cmd.Args {
		a := &cmd.Args[i]
		if a.Name == "" {
			return schemaErr(cmd.Name, ErrInvalidArg, "argument %d has no name", i)
		}
		if names[a.Name] {
			return schemaErr(cmd.Name, ErrDuplicateName, "argument %s", a.Name)
		}
		names[a.Name] = true
		if a.Type > MultisetArg {
			return schemaErr(cmd.Name, ErrInvalidArg, "argument %s has unknown type %d", a.Name, a.Type)
		}

		switch a.Type {
		case Enum:
			if a.Enum == nil {
				return schemaErr(cmd.Name, ErrInvalidArg, "enum argument %s has no table", a.Name)
			}
			if err := validateEnum(a.Enum, 0, enums); err != nil {
				return err
			}
		case Bitfield:
			if a.Enum == nil {
				return schemaErr(cmd.Name, ErrInvalidArg, "bitfield argument %s has no table", a.Name)
			}
			if !a.BitfieldBase.IsUnsigned() {
				return schemaErr(cmd.Name, ErrInvalidArg, "bitfield argument %s has base %s", a.Name, a.BitfieldBase)
			}
			if err := validateEnum(a.Enum, a.BitfieldBase.Size()*8, enums); err != nil {
				return err
			}
		case MultisetArg:
			if a.Multiset == nil {
				return schemaErr(cmd.Name, ErrInvalidArg, "multiset argument %s has no descriptor", a.Name)
			}
		}
	}
	return nil
}

// validateEnum checks names and values are unique. With bits > 0 every value
// must be a bit index below bits.
func validateEnum(e *EnumTable, bits int, seen map[*EnumTable]bool) error {
	if seen[e] && bits == 0 {
		return nil
	}
	names := make(map[string]bool, len(e.Values))
	values := make(map[int32]bool, len(e.Values))
	for _, v := range e.Values {
		if v.Name == "" {
			return schemaErr(e.Name, ErrInvalidEnum, "value %d has no name", v.Value)
		}
		if names[v.Name] {
			return schemaErr(e.Name, ErrInvalidEnum, "duplicate name %s", v.Name)
		}
		if values[v.Value] {
			return schemaErr(e.Name, ErrInvalidEnum, "duplicate value %d", v.Value)
		}
		if bits > 0 && (v.Value < 0 || int(v.Value) >= bits) {
			return schemaErr(e.Name, ErrInvalidEnum, "flag %s is not a bit index below %d", v.Name, bits)
		}
		names[v.Name] = true
		values[v.Value] = true
	}
	seen[e] = true
	return nil
}

// FindByName returns the command with the given name path.
func (t *Table) FindByName(path string) (*Command, bool) {
	parts := strings.Split(path, ".")
	var featName, className, cmdName string
	switch len(parts) {
	case 2:
		featName, className, cmdName = parts[0], DefaultClassName, parts[1]
	case 3:
		featName, className, cmdName = parts[0], parts[1], parts[2]
	default:
		return nil, false
	}
	f, ok := t.byFeature[featName]
	if !ok {
		return nil, false
	}
	c, ok := f.classes[className]
	if !ok {
		return nil, false
	}
	return c.Command(cmdName)
}

// FindByIdentity returns the command with the given identity.
func (t *Table) FindByIdentity(id ID) (*Command, bool) {
	cmd, ok := t.byID[id]
	return cmd, ok
}

// Lookup is FindByName returning ErrNotFound for unknown paths.
func (t *Table) Lookup(path string) (*Command, error) {
	if cmd, ok := t.FindByName(path); ok {
		return cmd, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
}

// Resolve is FindByIdentity returning ErrNotFound for unknown identities.
func (t *Table) Resolve(id ID) (*Command, error) {
	if cmd, ok := t.byID[id]; ok {
		return cmd, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
}

// Feature returns the named feature.
func (t *Table) Feature(name string) (*FeatureInfo, bool) {
	f, ok := t.byFeature[name]
	return f, ok
}

// FeatureByID returns the feature with the given id.
func (t *Table) FeatureByID(id uint8) (*FeatureInfo, bool) {
	f, ok := t.featureByID[id]
	return f, ok
}

// Features returns all features ordered by id.
func (t *Table) Features() []*FeatureInfo {
	return t.features
}

// Commands returns all commands ordered by identity.
func (t *Table) Commands() []*Command {
	return t.cmds
}

// Multiset returns the named multiset descriptor.
func (t *Table) Multiset(name string) (*Multiset, bool) {
	ms, ok := t.multisets[name]
	return ms, ok
}

// Multisets returns all multiset descriptors ordered by name.
func (t *Table) Multisets() []*Multiset {
	out := make([]*Multiset, 0, len(t.multisets))
	for _, ms := range t.multisets {
		out = append(out, ms)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Len returns the number of commands.
func (t *Table) Len() int {
	return len(t.cmds)
}
