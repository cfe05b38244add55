package migrations

import "embed"

// FS holds the SQL migrations for the advertisements schema, read by
// golang-migrate through its iofs source driver.
//
//go:embed *.sql
var FS embed.FS

// Version is the schema version Migrate brings the database to.
const Version = 1
