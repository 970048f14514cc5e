package main

import (
	"fmt"
	"strings"
	"text/template"
)

// funcMap provides helper functions available to all templates.
var funcMap = template.FuncMap{
	"comment": comment,
	"quote":   func(s string) string { return fmt.Sprintf("%q", s) },
	"params":  params,
	"values":  values,
}

// templates holds all parsed code generation templates.
var templates = template.Must(template.New("").Funcs(funcMap).Parse(
	featureTmpl +
		enumsTmpl +
		identitiesTmpl +
		multisetsTmpl +
		commandTmpl +
		registryTmpl,
))

// renderTemplate executes a named template into the builder.
func renderTemplate(b *strings.Builder, name string, data any) {
	if err := templates.ExecuteTemplate(b, name, data); err != nil {
		panic(fmt.Sprintf("template %s: %v", name, err))
	}
}

// comment turns free text into // lines. Empty text renders nothing.
func comment(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}
	var b strings.Builder
	for _, line := range strings.Split(text, "\n") {
		b.WriteString("// ")
		b.WriteString(strings.TrimSpace(line))
		b.WriteByte('\n')
	}
	return b.String()
}

// params renders the typed parameter list of a helper.
func params(args []argData) string {
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = a.Param + " " + a.ParamType
	}
	return strings.Join(parts, ", ")
}

// values renders the argument list forwarded to the codec, with a leading
// comma when not empty.
func values(args []argData) string {
	var b strings.Builder
	for _, a := range args {
		b.WriteString(", ")
		b.WriteString(a.Param)
	}
	return b.String()
}

// --- Template definitions ---

const featureTmpl = `{{define "feature"}}// Code generated by arsdk-gen. DO NOT EDIT.

package {{.Package}}

import (
	"github.com/arsdk-protocol/arsdk-go/pkg/cmditf"
	"github.com/arsdk-protocol/arsdk-go/pkg/desc"
	"github.com/arsdk-protocol/arsdk-go/pkg/dispatch"
	"github.com/arsdk-protocol/arsdk-go/pkg/wire"
)

// {{.GoName}}ID is the feature id of {{.Name}}.
{{comment .Description}}const {{.GoName}}ID uint8 = {{.ID}}
{{template "enums" .}}{{template "identities" .}}{{template "multisets" .}}
{{- range .Commands}}{{template "command" .}}{{end}}
// {{.CommandList}} lists the {{.Name}} descriptors in schema order.
var {{.CommandList}} = []*desc.Command{
{{- range .Commands}}
	{{.Var}},
{{- end}}
}
{{- if .Multisets}}

// {{.MultisetList}} lists the multisets declared by {{.Name}}.
var {{.MultisetList}} = []*desc.Multiset{
{{- range .Multisets}}
	{{.Var}},
{{- end}}
}
{{- end}}
{{end}}`

const enumsTmpl = `{{define "enums"}}{{range .Enums}}
// {{.Var}} is the {{if .Bitfield}}bitfield{{else}}enum{{end}} table {{.Name}}.
{{comment .Description}}var {{.Var}} = &desc.EnumTable{Name: {{quote .Name}}, Values: []desc.EnumValue{
{{- range .Values}}
	{Name: {{quote .Name}}, Value: {{.Value}}},
{{- end}}
}}

// {{.Name}} {{if .Bitfield}}bit indexes{{else}}values{{end}}.
const (
{{- range .Values}}
	{{.Const}} int32 = {{.Value}}
{{- end}}
)
{{end}}{{end}}`

const identitiesTmpl = `{{define "identities"}}{{if .Commands}}
// {{.Name}} command identities.
const (
{{- range .Commands}}
	{{.IDConst}} desc.ID = {{.Identity}}
{{- end}}
)
{{end}}{{end}}`

const multisetsTmpl = `{{define "multisets"}}{{range .Multisets}}
// {{.Var}} is the {{.Name}} multiset.
{{comment .Description}}var {{.Var}} = &desc.Multiset{Name: {{quote .Name}}, Members: []*desc.Command{
{{- range .Members}}
	{{.}},
{{- end}}
}}
{{end}}{{end}}`

const commandTmpl = `{{define "command"}}
// {{.Var}} is the descriptor of {{.Name}}.
{{if .Description}}//
{{comment .Description}}{{end}}{{if .Deprecated}}//
// Deprecated: {{.Name}} is kept for older peers.
{{end}}var {{.Var}} = &desc.Command{
	Name: {{quote .Name}},
	Feature: {{.Feature}},
	Class: {{.Class}},
	ID: {{.ID}},
	ListType: {{.List}},
	BufferType: {{.Buffer}},
	TimeoutPolicy: {{.Timeout}},
{{- if .Args}}
	Args: []desc.Arg{
{{- range .Args}}
		{Name: {{quote .Name}}, Type: {{.Type}}{{if .Enum}}, Enum: {{.Enum}}{{end}}{{if .Base}}, BitfieldBase: {{.Base}}{{end}}{{if .Multiset}}, Multiset: {{.Multiset}}{{end}}},
{{- end}}
	},
{{- end}}
}

// Encode{{.Var}} encodes {{.Name}} with the default codec.
func Encode{{.Var}}({{params .Args}}) (wire.Frame, error) {
	return wire.Encode({{.Var}}{{values .Args}})
}

// Send{{.Var}} sends {{.Name}} through itf.
func Send{{.Var}}(itf *cmditf.Interface, status cmditf.StatusFunc{{if .Args}}, {{params .Args}}{{end}}) error {
	return itf.Send({{.Var}}, status{{values .Args}})
}
{{- if .Args}}

// {{.Var}}Args holds the decoded arguments of {{.Name}}.
type {{.Var}}Args struct {
{{- range .Args}}
	{{.Field}} {{.FieldType}}
{{- end}}
}

// Decode{{.Var}} extracts the arguments of a decoded {{.Name}} message.
func Decode{{.Var}}(msg *wire.Message) ({{.Var}}Args, error) {
	var a {{.Var}}Args
	if err := checkMessage(msg, {{.Var}}); err != nil {
		return a, err
	}
{{- range .Args}}
	a.{{.Field}} = msg.Args[{{.Index}}].({{.FieldType}})
{{- end}}
	return a, nil
}

// On{{.Var}} binds cb to {{.Name}}.
func On{{.Var}}(cb func({{.Var}}Args) error) dispatch.Entry {
	return dispatch.OnCommand(func(msg *wire.Message) error {
		a, err := Decode{{.Var}}(msg)
		if err != nil {
			return err
		}
		return cb(a)
	}, {{.Var}})
}
{{- else}}

// On{{.Var}} binds cb to {{.Name}}.
func On{{.Var}}(cb func() error) dispatch.Entry {
	return dispatch.OnCommand(func(*wire.Message) error { return cb() }, {{.Var}})
}
{{- end}}
{{end}}`

const registryTmpl = `{{define "registry"}}// Code generated by arsdk-gen. DO NOT EDIT.

package {{.Package}}

import (
	"slices"

	"github.com/arsdk-protocol/arsdk-go/pkg/desc"
)

// Commands returns every generated command descriptor, feature by feature in
// schema order.
func Commands() []*desc.Command {
	return slices.Concat({{range $i, $l := .CommandLists}}{{if $i}}, {{end}}{{$l}}{{end}})
}

// Multisets returns every generated multiset descriptor.
func Multisets() []*desc.Multiset {
{{- if .MultisetLists}}
	return slices.Concat({{range $i, $l := .MultisetLists}}{{if $i}}, {{end}}{{$l}}{{end}})
{{- else}}
	return nil
{{- end}}
}

// NewTable builds the descriptor table of the generated features.
func NewTable() (*desc.Table, error) {
	return desc.NewTable(Commands(), Multisets()...)
}
{{end}}`
