package migrations

import "embed"

// FS embeds the SQL migration files of both SQL backends. Each backend has
// its own directory; golang-migrate reads them through the iofs driver.
//
//go:embed postgres/*.sql sqlite/*.sql
var FS embed.FS

const (
	Version = 1

	PostgresDir = "postgres"
	SQLiteDir   = "sqlite"
)
