// Package phishsniper holds repository-level assets shared by the commands and tests.
package phishsniper

import "embed"

// Migrations contains the goose SQL migrations of the registration store.
//
//go:embed migrations/*.sql
var Migrations embed.FS
