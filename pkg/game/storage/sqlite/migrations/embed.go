package migrations

import "embed"

// FS contains embedded SQLite migrations for maze storage.
//
//go:embed *.sql
var FS embed.FS
