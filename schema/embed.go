// Package schema embeds the bundled protocol schema files. Load them with
// the schema compiler:
//
//	defs, err := schema.LoadFS(bundled.Files)
package schema

import "embed"

// Files holds the bundled feature definitions.
//
//go:embed *.yaml
var Files embed.FS
