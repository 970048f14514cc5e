package main

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/arsdk-protocol/arsdk-go/pkg/schema"
)

const demoYAML = `
name: demo
id: 7
description: Demo feature.
enums:
  - name: Mode
    values:
      - {name: idle, value: 0}
      - {name: busy, value: 3}
  - name: Flags
    values:
      - {name: first, value: 0}
      - {name: last, value: 1}
classes:
  - name: Piloting
    id: 0
    commands:
      - name: TakeOff
        id: 1
      - name: Move
        id: 2
        buffer: non_ack
        description: Move the device.
        args:
          - {name: dX, type: float}
          - {name: type, type: u8}
          - {name: status, type: string}
  - name: State
    id: 1
    commands:
      - name: ModeChanged
        id: 1
        list: map_item
        args:
          - {name: mode, type: enum, enum: Mode}
          - {name: list_flags, type: bitfield, enum: Flags, base: u8}
      - name: Legacy
        id: 2
        deprecated: true
        timeout: retry
`

const bundleYAML = `
name: bundle
id: 8
commands:
  - name: Apply
    id: 0
    args:
      - {name: settings, type: multiset, multiset: settings}
multisets:
  - name: settings
    description: Demo settings.
    members:
      - demo.Piloting.Move
      - demo.Piloting.TakeOff
`

func compileDemo(t *testing.T, docs ...string) *schema.Schema {
	t.Helper()
	var defs []*schema.RawFeatureDef
	for _, doc := range docs {
		def, err := schema.ParseFeatureDef([]byte(doc))
		if err != nil {
			t.Fatalf("ParseFeatureDef failed: %v", err)
		}
		defs = append(defs, def)
	}
	s, err := schema.Compile(defs)
	if err != nil {
		t.Fatalf("Compile failed: %v", err)
	}
	return s
}

func generateDemo(t *testing.T) map[string]string {
	t.Helper()
	files, err := Generate(compileDemo(t, demoYAML, bundleYAML), "features")
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	out := make(map[string]string, len(files))
	for _, f := range files {
		out[f.Name] = f.Code
	}
	return out
}

func TestGenerateFiles(t *testing.T) {
	files := generateDemo(t)
	for _, name := range []string{"demo_gen.go", "bundle_gen.go", "registry_gen.go"} {
		if _, ok := files[name]; !ok {
			t.Errorf("missing generated file %s", name)
		}
	}
	if len(files) != 3 {
		t.Errorf("generated %d files, want 3", len(files))
	}
}

func TestGenerateHeader(t *testing.T) {
	for name, code := range generateDemo(t) {
		if !strings.HasPrefix(code, "// Code generated by arsdk-gen. DO NOT EDIT.\n\npackage features\n") {
			t.Errorf("%s: missing generated header:\n%s", name, truncate(code, 200))
		}
	}
}

func TestGenerateFeatureID(t *testing.T) {
	output := generateDemo(t)["demo_gen.go"]
	mustContain(t, output, "// DemoID is the feature id of demo.\n// Demo feature.\nconst DemoID uint8 = 7")
}

func TestGenerateEnums(t *testing.T) {
	output := generateDemo(t)["demo_gen.go"]

	mustContain(t, output, "// DemoModeEnum is the enum table Mode.")
	mustContain(t, output, `var DemoModeEnum = &desc.EnumTable{Name: "Mode", Values: []desc.EnumValue{`)
	mustContain(t, output, `{Name: "busy", Value: 3},`)
	mustContain(t, output, "DemoModeIdle int32 = 0")
	mustContain(t, output, "DemoModeBusy int32 = 3")

	mustContain(t, output, "// DemoFlagsEnum is the bitfield table Flags.")
	mustContain(t, output, "// Flags bit indexes.")
	mustContain(t, output, "DemoFlagsLast int32 = 1")
}

func TestGenerateIdentities(t *testing.T) {
	output := generateDemo(t)["demo_gen.go"]

	mustContain(t, output, "IDDemoPilotingTakeOff desc.ID = 0x07000001")
	mustContain(t, output, "IDDemoPilotingMove desc.ID = 0x07000002")
	mustContain(t, output, "IDDemoStateModeChanged desc.ID = 0x07010001")
}

func TestGenerateDescriptor(t *testing.T) {
	output := generateDemo(t)["demo_gen.go"]

	mustContain(t, output, "// DemoPilotingMove is the descriptor of demo.Piloting.Move.\n//\n// Move the device.\nvar DemoPilotingMove = &desc.Command{")
	mustContain(t, output, `Name: "demo.Piloting.Move",`)
	mustContain(t, output, "BufferType: desc.BufferNonAck,")
	mustContain(t, output, "TimeoutPolicy: desc.TimeoutPop,")
	mustContain(t, output, `{Name: "dX", Type: desc.Float},`)

	mustContain(t, output, "ListType: desc.ListMapItem,")
	mustContain(t, output, `{Name: "mode", Type: desc.Enum, Enum: DemoModeEnum},`)
	mustContain(t, output, `{Name: "list_flags", Type: desc.Bitfield, Enum: DemoFlagsEnum, BitfieldBase: desc.U8},`)
}

func TestGenerateDeprecated(t *testing.T) {
	output := generateDemo(t)["demo_gen.go"]
	mustContain(t, output, "//\n// Deprecated: demo.State.Legacy is kept for older peers.\nvar DemoStateLegacy")
	mustContain(t, output, "TimeoutPolicy: desc.TimeoutRetry,")
}

func TestGenerateEncodeAndSend(t *testing.T) {
	output := generateDemo(t)["demo_gen.go"]

	// keywords and helper names are escaped
	mustContain(t, output, "func EncodeDemoPilotingMove(dX float32, typeArg uint8, statusArg string) (wire.Frame, error) {")
	mustContain(t, output, "return wire.Encode(DemoPilotingMove, dX, typeArg, statusArg)")
	mustContain(t, output, "func SendDemoPilotingMove(itf *cmditf.Interface, status cmditf.StatusFunc, dX float32, typeArg uint8, statusArg string) error {")

	mustContain(t, output, "func EncodeDemoPilotingTakeOff() (wire.Frame, error) {")
	mustContain(t, output, "return wire.Encode(DemoPilotingTakeOff)")
	mustContain(t, output, "func SendDemoPilotingTakeOff(itf *cmditf.Interface, status cmditf.StatusFunc) error {")

	mustContain(t, output, "func EncodeDemoStateModeChanged(mode int32, listFlags uint8) (wire.Frame, error) {")
}

func TestGenerateDecode(t *testing.T) {
	output := generateDemo(t)["demo_gen.go"]

	mustContain(t, output, "type DemoStateModeChangedArgs struct {")
	mustContain(t, output, "Mode desc.EnumValue")
	mustContain(t, output, "ListFlags uint8")
	mustContain(t, output, "a.Mode = msg.Args[0].(desc.EnumValue)")
	mustContain(t, output, "a.ListFlags = msg.Args[1].(uint8)")
	mustContain(t, output, "func OnDemoStateModeChanged(cb func(DemoStateModeChangedArgs) error) dispatch.Entry {")

	// argument-less commands get no Args struct
	mustNotContain(t, output, "DemoPilotingTakeOffArgs")
	mustContain(t, output, "func OnDemoPilotingTakeOff(cb func() error) dispatch.Entry {")
}

func TestGenerateMultiset(t *testing.T) {
	files := generateDemo(t)
	output := files["bundle_gen.go"]

	mustContain(t, output, "// BundleSettingsMultiset is the settings multiset.\n// Demo settings.")
	mustContain(t, output, `var BundleSettingsMultiset = &desc.Multiset{Name: "settings", Members: []*desc.Command{`)
	mustContain(t, output, "\tDemoPilotingMove,\n\tDemoPilotingTakeOff,\n}}")
	mustContain(t, output, `{Name: "settings", Type: desc.MultisetArg, Multiset: BundleSettingsMultiset},`)
	mustContain(t, output, "settings *wire.Multiset")
	mustContain(t, output, "var bundleMultisets = []*desc.Multiset{")

	mustNotContain(t, files["demo_gen.go"], "demoMultisets")
}

func TestGenerateClasslessCommand(t *testing.T) {
	output := generateDemo(t)["bundle_gen.go"]

	mustContain(t, output, "IDBundleApply desc.ID = 0x08000000")
	mustContain(t, output, "var BundleApply = &desc.Command{")
	mustContain(t, output, "func EncodeBundleApply(")
	mustContain(t, output, "func OnBundleApply(")
	mustNotContain(t, output, "BundleXApply")
}

func TestGenerateRegistry(t *testing.T) {
	output := generateDemo(t)["registry_gen.go"]

	mustContain(t, output, "return slices.Concat(demoCommands, bundleCommands)")
	mustContain(t, output, "return slices.Concat(bundleMultisets)")
	mustContain(t, output, "return desc.NewTable(Commands(), Multisets()...)")
}

func TestGenerateRegistryWithoutMultisets(t *testing.T) {
	files, err := Generate(compileDemo(t, demoYAML), "features")
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	output := files[len(files)-1].Code
	mustContain(t, output, "func Multisets() []*desc.Multiset {\n\treturn nil\n}")
}

func TestGenerateNameClash(t *testing.T) {
	clash := `
name: clash
id: 9
enums:
  - name: A
    values:
      - {name: b, value: 0}
classes:
  - name: A
    id: 0
    commands:
      - name: B
        id: 0
      - name: Enum
        id: 1
`
	// enum A value b and command A.B both map to ClashAB
	_, err := Generate(compileDemo(t, clash), "features")
	if !errors.Is(err, errNameClash) {
		t.Fatalf("Generate error = %v, want %v", err, errNameClash)
	}
}

func TestGenerateRecursiveMultiset(t *testing.T) {
	loop := `
name: loop
id: 10
commands:
  - name: Set
    id: 0
    args:
      - {name: s, type: multiset, multiset: self}
multisets:
  - name: self
    members: [loop.Set]
`
	_, err := Generate(compileDemo(t, loop), "features")
	if !errors.Is(err, errRecursiveMultiset) {
		t.Fatalf("Generate error = %v, want %v", err, errRecursiveMultiset)
	}
}

func TestRunBundledSchema(t *testing.T) {
	out := t.TempDir()
	if err := run(filepath.Join("..", "..", "schema"), out, "features"); err != nil {
		t.Fatalf("run failed: %v", err)
	}
	for _, name := range []string{"common_gen.go", "ardrone3_gen.go", "generic_gen.go", "registry_gen.go"} {
		data, err := os.ReadFile(filepath.Join(out, name))
		if err != nil {
			t.Fatalf("reading %s: %v", name, err)
		}
		if strings.Contains(string(data), "\n\n\n") {
			t.Errorf("%s is not gofmt'ed", name)
		}
	}
	broken, _ := filepath.Glob(filepath.Join(out, "*.broken"))
	if len(broken) > 0 {
		t.Errorf("unformattable output: %v", broken)
	}
}

func TestParamName(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"current", "current"},
		{"list_flags", "listFlags"},
		{"dX", "dX"},
		{"timestampAndSeqNum", "timestampAndSeqNum"},
		{"type", "typeArg"},
		{"range", "rangeArg"},
		{"status", "statusArg"},
		{"itf", "itfArg"},
	}
	for _, tt := range tests {
		if got := paramName(tt.in); got != tt.want {
			t.Errorf("paramName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestComment(t *testing.T) {
	if got := comment(""); got != "" {
		t.Errorf("comment(\"\") = %q", got)
	}
	if got := comment(" one\ntwo "); got != "// one\n// two\n" {
		t.Errorf("comment = %q", got)
	}
}

func mustContain(t *testing.T, output, substr string) {
	t.Helper()
	if !strings.Contains(output, substr) {
		t.Errorf("output does not contain %q\nOutput (first 3000 chars):\n%s", substr, truncate(output, 3000))
	}
}

func mustNotContain(t *testing.T, output, substr string) {
	t.Helper()
	if strings.Contains(output, substr) {
		t.Errorf("output should not contain %q", substr)
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}

func TestRunEmbeddedSchema(t *testing.T) {
	out := t.TempDir()
	if err := run("", out, "features"); err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if _, err := os.Stat(filepath.Join(out, "generic_gen.go")); err != nil {
		t.Errorf("generic_gen.go not generated: %v", err)
	}
}

func TestRunMissingSchema(t *testing.T) {
	if err := run(t.TempDir(), t.TempDir(), "features"); err == nil {
		t.Fatal("run succeeded on an empty schema directory")
	}
}
