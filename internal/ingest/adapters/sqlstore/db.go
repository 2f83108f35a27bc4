package sqlstore

import (
	"context"
	"database/sql"
)

type DB interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	// InTx runs fn against a transaction-scoped DB; fn returning an error rolls back.
	InTx(ctx context.Context, fn func(tx DB) error) error
}
