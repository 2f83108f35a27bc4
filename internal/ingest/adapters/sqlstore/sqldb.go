package sqlstore

import (
	"context"
	"database/sql"

	"ux-metrics-service/internal/database"
)

type sqlDB struct {
	db      *sql.DB
	dialect database.Dialect
}

func NewSQLDB(db *database.DB) DB {
	return &sqlDB{db: db.Conn, dialect: db.Dialect}
}

func (s *sqlDB) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	return s.db.ExecContext(ctx, s.dialect.Rebind(query), args...)
}

func (s *sqlDB) InTx(ctx context.Context, fn func(tx DB) error) error {
	return database.WithTx(ctx, s.db, func(tx *sql.Tx) error {
		return fn(&txDB{tx: tx, dialect: s.dialect})
	})
}

type txDB struct {
	tx      *sql.Tx
	dialect database.Dialect
}

func (t *txDB) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	return t.tx.ExecContext(ctx, t.dialect.Rebind(query), args...)
}

// zaten transaction içindeyiz
func (t *txDB) InTx(ctx context.Context, fn func(tx DB) error) error {
	return fn(t)
}
