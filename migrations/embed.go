// Package migrations embeds the goose SQL migration files so that both the
// server binary and the test helpers can apply them without relying on the
// working directory.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
