// Package migrations embeds the catalog schema files at compile time so a
// single binary can migrate any target database.
package migrations

import "embed"

//go:embed sqlite/*.sql
var SqliteMigrations embed.FS

//go:embed postgres/*.sql
var PostgresMigrations embed.FS
