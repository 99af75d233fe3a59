// Package migrations embeds the SQL schema migrations applied by the
// migration runner at init time.
package migrations

import "embed"

//go:embed sqlite/*.sql
var FS embed.FS
