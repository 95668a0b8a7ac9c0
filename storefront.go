// Package storefront exposes files that ship inside the binary.
package storefront

import "embed"

// Migrations holds the goose SQL migrations.
//
//go:embed migrations/*.sql
var Migrations embed.FS
