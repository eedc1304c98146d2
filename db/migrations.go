// Package db embeds the SQL migrations of the analysis profile table.
package db

import "embed"

// MigrationsDir is the directory of Migrations holding the migration files.
const MigrationsDir = "migrations"

// Migrations holds the golang-migrate files, NNNNNN_name.up.sql and .down.sql.
//
//go:embed migrations/*.sql
var Migrations embed.FS
