package migrations

import "embed"

// FS contains embedded SQLite migrations for the demo database.
//
//go:embed *.sql
var FS embed.FS
