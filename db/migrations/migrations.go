package migrations

import "embed"

// FS holds the campaign schema migrations, read through the golang-migrate
// iofs driver at startup.
//
//go:embed *.sql
var FS embed.FS

// Version is the schema revision the service expects.
const Version = 1
