// Package migrations embeds the SQL schema migrations so the binaries
// can apply them at startup.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS

// Dir is the directory goose reads within the embedded filesystem.
const Dir = "."
