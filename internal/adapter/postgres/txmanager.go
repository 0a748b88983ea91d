package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
)

// TxManager runs service operations in one transaction carried by ctx.
// Repositories pick it up through QuerierFromCtx.
type TxManager struct {
	db DB
}

// NewTxManager creates a TxManager on db.
func NewTxManager(db DB) *TxManager {
	return &TxManager{db: db}
}

// RunInTx calls fn inside a read-committed transaction and commits when fn
// returns nil. A nested call joins the outer transaction. If fn fails or
// panics the transaction is rolled back; a failed rollback is joined to fn's
// error so callers can still match either one.
func (m *TxManager) RunInTx(ctx context.Context, fn func(ctx context.Context) error) (err error) {
	if InTx(ctx) {
		return fn(ctx)
	}

	tx, err := m.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	defer func() {
		if r := recover(); r != nil {
			_ = tx.Rollback(ctx)
			panic(r)
		}
	}()

	if err := fn(withTx(ctx, tx)); err != nil {
		return rollback(ctx, tx, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

func rollback(ctx context.Context, tx pgx.Tx, cause error) error {
	if rbErr := tx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
		return errors.Join(cause, fmt.Errorf("rollback transaction: %w", rbErr))
	}
	return cause
}
