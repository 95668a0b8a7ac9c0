package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/nikolayk812/storefront/internal/db"
)

// conn is satisfied by both *pgxpool.Pool and pgx.Tx. Begin on a pgx.Tx opens a
// savepoint, so repositories built on a caller's transaction still get an
// all-or-nothing write that the caller can roll back as a whole.
type conn interface {
	db.DBTX
	Begin(ctx context.Context) (pgx.Tx, error)
}

// withTx runs fn on queries bound to a transaction (or savepoint) of c.
// fn's error is returned as is; a failed rollback is joined to it.
func withTx[T any](ctx context.Context, c conn, fn func(q *db.Queries) (T, error)) (_ T, txErr error) {
	var zero T

	tx, err := c.Begin(ctx)
	if err != nil {
		return zero, fmt.Errorf("c.Begin: %w", err)
	}

	defer func() {
		if txErr == nil {
			return
		}
		if rbErr := tx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
			txErr = errors.Join(txErr, fmt.Errorf("tx.Rollback: %w", rbErr))
		}
	}()

	result, err := fn(db.New(tx))
	if err != nil {
		return zero, err
	}

	if err := tx.Commit(ctx); err != nil {
		return zero, fmt.Errorf("tx.Commit: %w", err)
	}

	return result, nil
}
