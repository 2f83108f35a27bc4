package database

import (
	"embed"
	"fmt"
	"io/fs"
	"strconv"
	"strings"
)

// Dialect names the SQL flavour of the connected store.
type Dialect string

const (
	SQLite   Dialect = "sqlite"
	Postgres Dialect = "postgres"
)

// Rebind rewrites '?' placeholders into '$1, $2, ...' for postgres. Queries
// are written once with '?' and rebound at execution time. Question marks
// inside single-quoted literals are left alone.
func (d Dialect) Rebind(query string) string {
	if d != Postgres || !strings.Contains(query, "?") {
		return query
	}

	var (
		b        strings.Builder
		n        int
		inString bool
	)
	b.Grow(len(query) + 8)

	for i := 0; i < len(query); i++ {
		ch := query[i]
		switch {
		case ch == '\'':
			inString = !inString
			b.WriteByte(ch)
		case ch == '?' && !inString:
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
		default:
			b.WriteByte(ch)
		}
	}
	return b.String()
}

//go:embed migrations/sqlite/*.sql migrations/postgres/*.sql
var embeddedMigrations embed.FS

// MigrationsFor returns the migration directory for d as an fs.FS rooted at
// the .sql files.
func MigrationsFor(d Dialect) (fs.FS, error) {
	switch d {
	case SQLite, Postgres:
		return fs.Sub(embeddedMigrations, "migrations/"+string(d))
	default:
		return nil, fmt.Errorf("no migrations for dialect %q", d)
	}
}
