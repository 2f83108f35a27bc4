// Package testutil provides a throwaway SQLite store for integration tests.
package testutil

import (
	"path/filepath"
	"testing"

	"go.uber.org/zap"

	"ux-metrics-service/internal/config"
	"ux-metrics-service/internal/database"
)

// SetupTestDB opens a fresh file-backed SQLite database under t.TempDir()
// with every migration applied. The connection is closed via t.Cleanup.
func SetupTestDB(t *testing.T) *database.DB {
	t.Helper()

	cfg := config.DatabaseConfig{
		Driver: config.DriverSQLite,
		Path:   filepath.Join(t.TempDir(), "ux_metrics_test.db"),
	}

	db, err := database.Open(cfg, zap.NewNop())
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	t.Cleanup(func() {
		_ = db.Close()
	})
	return db
}

// Exec runs a raw statement against the test database, failing the test on error.
func Exec(t *testing.T, db *database.DB, query string, args ...any) {
	t.Helper()
	if _, err := db.Conn.Exec(db.Dialect.Rebind(query), args...); err != nil {
		t.Fatalf("exec %q: %v", query, err)
	}
}

// Count returns SELECT COUNT(*) FROM table.
func Count(t *testing.T, db *database.DB, table string) int {
	t.Helper()
	var n int
	if err := db.Conn.QueryRow("SELECT COUNT(*) FROM " + table).Scan(&n); err != nil {
		t.Fatalf("count %s: %v", table, err)
	}
	return n
}
