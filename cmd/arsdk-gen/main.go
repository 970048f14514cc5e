// Command arsdk-gen generates Go descriptor tables and typed helpers from
// protocol schema files.
//
// Usage:
//
//	arsdk-gen -output ./pkg/features [-schema ./schema] [-package features]
//
// Without -schema the schema files embedded in the binary are used.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/tools/imports"

	"github.com/arsdk-protocol/arsdk-go/pkg/schema"
	bundled "github.com/arsdk-protocol/arsdk-go/schema"
)

func main() {
	schemaDir := flag.String("schema", "", "Directory holding the schema YAML files (default: bundled schema)")
	outputDir := flag.String("output", "", "Output directory for generated Go files")
	pkgName := flag.String("package", "features", "Package name of the generated files")
	flag.Parse()

	if *outputDir == "" {
		fmt.Fprintln(os.Stderr, "Usage: arsdk-gen -output <dir> [-schema <dir>] [-package <name>]")
		flag.PrintDefaults()
		os.Exit(1)
	}

	if err := run(*schemaDir, *outputDir, *pkgName); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(schemaDir, outputDir, pkgName string) error {
	var defs []*schema.RawFeatureDef
	var err error
	if schemaDir == "" {
		defs, err = schema.LoadFS(bundled.Files)
	} else {
		defs, err = schema.LoadDir(schemaDir)
	}
	if err != nil {
		return fmt.Errorf("loading schema: %w", err)
	}

	// duplicate identities and broken references fail here, before any
	// file is written
	s, err := schema.Compile(defs)
	if err != nil {
		return fmt.Errorf("compiling schema: %w", err)
	}

	files, err := Generate(s, pkgName)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return fmt.Errorf("creating output dir: %w", err)
	}
	for _, f := range files {
		outPath := filepath.Join(outputDir, f.Name)
		if err := writeFormatted(outPath, f.Code); err != nil {
			return fmt.Errorf("writing %s: %w", f.Name, err)
		}
		fmt.Printf("  generated %s\n", outPath)
	}
	return nil
}

// writeFormatted formats Go source code with goimports and writes it to a file.
func writeFormatted(path string, code string) error {
	formatted, err := imports.Process(path, []byte(code), nil)
	if err != nil {
		// keep the raw output around for debugging the templates
		_ = os.WriteFile(path+".broken", []byte(code), 0o644)
		return fmt.Errorf("goimports %s: %w", filepath.Base(path), err)
	}
	return os.WriteFile(path, formatted, 0o644)
}
