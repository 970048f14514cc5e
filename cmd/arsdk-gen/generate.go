package main

import (
	"errors"
	"fmt"
	"go/token"
	"strings"

	"github.com/arsdk-protocol/arsdk-go/pkg/desc"
	"github.com/arsdk-protocol/arsdk-go/pkg/schema"
)

var (
	errNameClash         = errors.New("generated identifier clash")
	errRecursiveMultiset = errors.New("multiset member carries its own multiset")
)

// GeneratedFile is one Go source file produced by Generate.
type GeneratedFile struct {
	Name string
	Code string
}

// Generate renders one file per feature of s plus the registry file listing
// every descriptor.
func Generate(s *schema.Schema, pkg string) ([]GeneratedFile, error) {
	n, err := newNamer(s)
	if err != nil {
		return nil, err
	}

	var files []GeneratedFile
	reg := registryData{Package: pkg}
	for _, f := range s.Features {
		data, err := n.feature(s, f, pkg)
		if err != nil {
			return nil, err
		}
		code, err := GenerateFeature(data)
		if err != nil {
			return nil, err
		}
		files = append(files, GeneratedFile{Name: schema.FileName(f.Def.Name) + "_gen.go", Code: code})

		reg.CommandLists = append(reg.CommandLists, data.CommandList)
		if len(data.Multisets) > 0 {
			reg.MultisetLists = append(reg.MultisetLists, data.MultisetList)
		}
	}

	var b strings.Builder
	renderTemplate(&b, "registry", reg)
	files = append(files, GeneratedFile{Name: "registry_gen.go", Code: b.String()})
	return files, nil
}

// GenerateFeature renders the source of one feature.
func GenerateFeature(data featureData) (code string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("feature %s: %v", data.Name, r)
		}
	}()
	var b strings.Builder
	renderTemplate(&b, "feature", data)
	return b.String(), nil
}

// --- Naming ---

// namer assigns Go identifiers to every schema object and rejects clashes
// before any code is rendered.
type namer struct {
	enums     map[*desc.EnumTable]string
	commands  map[*desc.Command]string
	multisets map[*desc.Multiset]string
	taken     map[string]string
}

func newNamer(s *schema.Schema) (*namer, error) {
	n := &namer{
		enums:     make(map[*desc.EnumTable]string),
		commands:  make(map[*desc.Command]string),
		multisets: make(map[*desc.Multiset]string),
		taken:     make(map[string]string),
	}
	for _, f := range s.Features {
		prefix := schema.GoName(f.Def.Name)
		if err := n.take(prefix+"ID", f.Def.Name); err != nil {
			return nil, err
		}
		for _, e := range f.Enums {
			base := prefix + schema.GoName(e.Def.Name)
			if err := n.take(base+"Enum", f.Def.Name+"."+e.Def.Name); err != nil {
				return nil, err
			}
			n.enums[e.Table] = base + "Enum"
			for _, v := range e.Def.Values {
				if err := n.take(base+schema.GoName(v.Name), f.Def.Name+"."+e.Def.Name+"."+v.Name); err != nil {
					return nil, err
				}
			}
		}
		for _, c := range f.Commands {
			name := prefix + schema.GoName(c.Def.Name)
			if c.Class != "" {
				name = prefix + schema.GoName(c.Class) + schema.GoName(c.Def.Name)
			}
			for _, id := range []string{name, "ID" + name, "Encode" + name, "Send" + name, "Decode" + name, "On" + name, name + "Args"} {
				if err := n.take(id, c.Desc.Name); err != nil {
					return nil, err
				}
			}
			n.commands[c.Desc] = name
		}
		for _, ms := range s.Multisets(f.Def.Name) {
			name := prefix + schema.GoName(ms.Def.Name) + "Multiset"
			if err := n.take(name, ms.Def.Name); err != nil {
				return nil, err
			}
			n.multisets[ms.Desc] = name
		}
	}
	return n, nil
}

func (n *namer) take(ident, owner string) error {
	if prev, ok := n.taken[ident]; ok {
		return fmt.Errorf("%w: %s is used by %s and %s", errNameClash, ident, prev, owner)
	}
	n.taken[ident] = owner
	return nil
}

// paramName returns the parameter name of an argument, escaped when it
// would shadow a keyword or a name the helpers use.
func paramName(name string) string {
	p := firstLower(schema.GoName(name))
	if token.IsKeyword(p) || reservedParams[p] {
		return p + "Arg"
	}
	return p
}

var reservedParams = map[string]bool{
	"cb": true, "cmditf": true, "desc": true, "dispatch": true,
	"err": true, "itf": true, "msg": true, "status": true, "wire": true,
}

func firstLower(s string) string {
	if s == "" {
		return s
	}
	// keep acronyms readable: "DX" -> "dX", "PCMD" -> "pCMD"
	return strings.ToLower(s[:1]) + s[1:]
}

// --- Template data ---

type featureData struct {
	Package      string
	Name         string
	GoName       string
	ID           uint8
	Description  string
	Enums        []enumData
	Commands     []commandData
	Multisets    []multisetData
	CommandList  string
	MultisetList string
}

type enumData struct {
	Var         string
	Name        string
	Description string
	Bitfield    bool
	Values      []enumValueData
}

type enumValueData struct {
	Const string
	Name  string
	Value int32
}

type commandData struct {
	Var         string
	IDConst     string
	Name        string
	Description string
	Deprecated  bool
	Identity    string
	Feature     uint8
	Class       uint8
	ID          uint16
	List        string
	Buffer      string
	Timeout     string
	Args        []argData
}

type argData struct {
	Name      string
	Field     string
	Param     string
	Type      string
	ParamType string
	FieldType string
	Enum      string
	Base      string
	Multiset  string
	Index     int
}

type multisetData struct {
	Var         string
	Name        string
	Description string
	Members     []string
}

type registryData struct {
	Package       string
	CommandLists  []string
	MultisetLists []string
}

func (n *namer) feature(s *schema.Schema, f *schema.Feature, pkg string) (featureData, error) {
	prefix := schema.GoName(f.Def.Name)
	data := featureData{
		Package:      pkg,
		Name:         f.Def.Name,
		GoName:       prefix,
		ID:           f.Def.ID,
		Description:  f.Def.Description,
		CommandList:  firstLower(prefix) + "Commands",
		MultisetList: firstLower(prefix) + "Multisets",
	}

	for _, e := range f.Enums {
		ed := enumData{
			Var:         n.enums[e.Table],
			Name:        e.Def.Name,
			Description: e.Def.Description,
			Bitfield:    e.Bitfield,
		}
		base := prefix + schema.GoName(e.Def.Name)
		for _, v := range e.Def.Values {
			ed.Values = append(ed.Values, enumValueData{Const: base + schema.GoName(v.Name), Name: v.Name, Value: v.Value})
		}
		data.Enums = append(data.Enums, ed)
	}

	for _, ms := range s.Multisets(f.Def.Name) {
		md := multisetData{Var: n.multisets[ms.Desc], Name: ms.Def.Name, Description: ms.Def.Description}
		for _, member := range ms.Desc.Members {
			for _, a := range member.Args {
				if a.Multiset == ms.Desc {
					return data, fmt.Errorf("%w: %s in %s", errRecursiveMultiset, member.Name, ms.Def.Name)
				}
			}
			md.Members = append(md.Members, n.commands[member])
		}
		data.Multisets = append(data.Multisets, md)
	}

	for _, c := range f.Commands {
		cd, err := n.command(c)
		if err != nil {
			return data, err
		}
		data.Commands = append(data.Commands, cd)
	}
	return data, nil
}

func (n *namer) command(c *schema.Command) (commandData, error) {
	cmd := c.Desc
	name := n.commands[cmd]
	cd := commandData{
		Var:         name,
		IDConst:     "ID" + name,
		Name:        cmd.Name,
		Description: c.Def.Description,
		Deprecated:  c.Def.Deprecated,
		Identity:    fmt.Sprintf("0x%08X", uint32(cmd.Identity())),
		Feature:     cmd.Feature,
		Class:       cmd.Class,
		ID:          cmd.ID,
		List:        listConst(cmd.ListType),
		Buffer:      bufferConst(cmd.BufferType),
		Timeout:     timeoutConst(cmd.TimeoutPolicy),
	}
	for i, a := range cmd.Args {
		ad := argData{
			Name:  a.Name,
			Field: schema.GoName(a.Name),
			Param: paramName(a.Name),
			Type:  "desc." + typeConst(a.Type),
			Index: i,
		}
		switch a.Type {
		case desc.Enum:
			ad.Enum = n.enums[a.Enum]
			ad.ParamType, ad.FieldType = "int32", "desc.EnumValue"
		case desc.Bitfield:
			ad.Enum = n.enums[a.Enum]
			ad.Base = "desc." + typeConst(a.BitfieldBase)
			ad.ParamType = goType(a.BitfieldBase)
			ad.FieldType = ad.ParamType
		case desc.MultisetArg:
			ad.Multiset = n.multisets[a.Multiset]
			ad.ParamType, ad.FieldType = "*wire.Multiset", "*wire.Multiset"
		default:
			ad.ParamType = goType(a.Type)
			ad.FieldType = ad.ParamType
		}
		if (ad.Enum == "" && a.Enum != nil) || (ad.Multiset == "" && a.Multiset != nil) {
			return cd, fmt.Errorf("%s.%s: reference without a generated name", cmd.Name, a.Name)
		}
		cd.Args = append(cd.Args, ad)
	}
	return cd, nil
}

// typeConst returns the desc constant name of t.
func typeConst(t desc.ArgType) string {
	switch t {
	case desc.Float:
		return "Float"
	case desc.Double:
		return "Double"
	case desc.String:
		return "String"
	case desc.Binary:
		return "Binary"
	case desc.Enum:
		return "Enum"
	case desc.Bitfield:
		return "Bitfield"
	case desc.MultisetArg:
		return "MultisetArg"
	}
	return strings.ToUpper(t.String())
}

// goType returns the canonical Go type of a scalar argument type.
func goType(t desc.ArgType) string {
	switch t {
	case desc.I8:
		return "int8"
	case desc.U8:
		return "uint8"
	case desc.I16:
		return "int16"
	case desc.U16:
		return "uint16"
	case desc.I32:
		return "int32"
	case desc.U32:
		return "uint32"
	case desc.I64:
		return "int64"
	case desc.U64:
		return "uint64"
	case desc.Float:
		return "float32"
	case desc.Double:
		return "float64"
	case desc.String:
		return "string"
	case desc.Binary:
		return "[]byte"
	}
	return "any"
}

func listConst(l desc.ListType) string {
	switch l {
	case desc.ListItem:
		return "desc.ListItem"
	case desc.ListMapItem:
		return "desc.ListMapItem"
	}
	return "desc.ListNone"
}

func bufferConst(b desc.BufferType) string {
	switch b {
	case desc.BufferNonAck:
		return "desc.BufferNonAck"
	case desc.BufferHighPrio:
		return "desc.BufferHighPrio"
	}
	return "desc.BufferAck"
}

func timeoutConst(p desc.TimeoutPolicy) string {
	switch p {
	case desc.TimeoutRetry:
		return "desc.TimeoutRetry"
	case desc.TimeoutFlush:
		return "desc.TimeoutFlush"
	}
	return "desc.TimeoutPop"
}
