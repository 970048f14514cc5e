// Package schema loads protocol schema files and compiles them into
// descriptor tables.
//
// A schema file describes one feature:
//
//	name: ardrone3
//	id: 1
//	enums:
//	  - name: FlyingState
//	    values:
//	      - {name: landed, value: 0}
//	      - {name: hovering, value: 2}
//	classes:
//	  - name: PilotingState
//	    id: 4
//	    commands:
//	      - name: FlyingStateChanged
//	        id: 1
//	        args:
//	          - {name: state, type: enum, enum: FlyingState}
//
// Features without classes list their commands at the top level instead.
// Enum references may be qualified with another feature ("generic.ListFlags").
// Multisets are declared by any feature and list their members by full name.
package schema

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"
)

// RawFeatureDef is a feature as written in a schema file.
type RawFeatureDef struct {
	Name        string           `yaml:"name"`
	ID          uint8            `yaml:"id"`
	Description string           `yaml:"description"`
	Enums       []RawEnumDef     `yaml:"enums"`
	Classes     []RawClassDef    `yaml:"classes"`
	Commands    []RawCommandDef  `yaml:"commands"`
	Multisets   []RawMultisetDef `yaml:"multisets"`

	// Source is the file the definition was loaded from, if any.
	Source string `yaml:"-"`
}

// RawEnumDef is an enum or bitfield value table.
type RawEnumDef struct {
	Name        string         `yaml:"name"`
	Description string         `yaml:"description"`
	Values      []RawEnumValue `yaml:"values"`
}

// RawEnumValue is one named value. For bitfield tables the value is the bit
// index.
type RawEnumValue struct {
	Name        string `yaml:"name"`
	Value       int32  `yaml:"value"`
	Description string `yaml:"description"`
}

// RawClassDef groups commands.
type RawClassDef struct {
	Name        string          `yaml:"name"`
	ID          uint8           `yaml:"id"`
	Description string          `yaml:"description"`
	Commands    []RawCommandDef `yaml:"commands"`
}

// RawCommandDef is a command.
type RawCommandDef struct {
	Name        string      `yaml:"name"`
	ID          uint16      `yaml:"id"`
	Description string      `yaml:"description"`
	Buffer      string      `yaml:"buffer"`  // "non_ack", "ack" (default), "high_prio"
	Timeout     string      `yaml:"timeout"` // "pop" (default), "retry", "flush"
	List        string      `yaml:"list"`    // "none" (default), "list_item", "map_item"
	Deprecated  bool        `yaml:"deprecated"`
	Args        []RawArgDef `yaml:"args"`
}

// RawArgDef is a command argument.
type RawArgDef struct {
	Name        string `yaml:"name"`
	Type        string `yaml:"type"`     // "u8", "i32", "string", "enum", "bitfield", "multiset", ...
	Enum        string `yaml:"enum"`     // enum and bitfield
	Base        string `yaml:"base"`     // bitfield carrier: u8, u16, u32 or u64
	Multiset    string `yaml:"multiset"` // multiset
	Description string `yaml:"description"`
}

// RawMultisetDef is a multiset and its members.
type RawMultisetDef struct {
	Name        string   `yaml:"name"`
	Description string   `yaml:"description"`
	Members     []string `yaml:"members"`
}

// ParseFeatureDef parses a feature definition from YAML bytes.
func ParseFeatureDef(data []byte) (*RawFeatureDef, error) {
	var def RawFeatureDef
	if err := yaml.Unmarshal(data, &def); err != nil {
		return nil, fmt.Errorf("parsing feature def: %w", err)
	}
	if def.Name == "" {
		return nil, fmt.Errorf("feature definition missing name")
	}
	return &def, nil
}

// LoadFeatureDef loads and parses a feature definition from a file.
func LoadFeatureDef(path string) (*RawFeatureDef, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	def, err := ParseFeatureDef(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	def.Source = path
	return def, nil
}

// LoadDir loads every *.yaml file of dir, sorted by feature id.
func LoadDir(dir string) ([]*RawFeatureDef, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.yaml"))
	if err != nil {
		return nil, err
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no schema files in %s", dir)
	}
	defs := make([]*RawFeatureDef, 0, len(paths))
	for _, p := range paths {
		def, err := LoadFeatureDef(p)
		if err != nil {
			return nil, err
		}
		defs = append(defs, def)
	}
	sort.SliceStable(defs, func(i, j int) bool { return defs[i].ID < defs[j].ID })
	return defs, nil
}

// LoadFS loads every *.yaml file at the root of fsys, sorted by feature id.
// Source is set to the file name within fsys.
func LoadFS(fsys fs.FS) ([]*RawFeatureDef, error) {
	names, err := fs.Glob(fsys, "*.yaml")
	if err != nil {
		return nil, err
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("no schema files in file system")
	}
	defs := make([]*RawFeatureDef, 0, len(names))
	for _, name := range names {
		data, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", name, err)
		}
		def, err := ParseFeatureDef(data)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		def.Source = name
		defs = append(defs, def)
	}
	sort.SliceStable(defs, func(i, j int) bool { return defs[i].ID < defs[j].ID })
	return defs, nil
}
