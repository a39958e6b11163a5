package pg

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type TransactionalFn func(ctx context.Context) error

type TXManager interface {
	Begin(ctx context.Context, fn TransactionalFn) error
	Snapshot(ctx context.Context, fn TransactionalFn) error
}

type Beginner interface {
	BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error)
}

type txKey struct{}

// TxFromContext returns the transaction opened by TXManager.Begin, if any.
func TxFromContext(ctx context.Context) (pgx.Tx, bool) {
	tx, ok := ctx.Value(txKey{}).(pgx.Tx)
	return tx, ok
}

type Manager struct {
	db       Beginner
	opts     pgx.TxOptions
	readOpts pgx.TxOptions
}

func NewTXManager(db Beginner) *Manager {
	return &Manager{
		db:       db,
		opts:     pgx.TxOptions{IsoLevel: pgx.ReadCommitted},
		readOpts: pgx.TxOptions{IsoLevel: pgx.RepeatableRead, AccessMode: pgx.ReadOnly},
	}
}

// Begin runs fn inside a transaction and commits when fn returns nil.
// Any error or panic rolls the transaction back, so none of fn's writes
// become visible. A Begin nested in another one joins the outer transaction.
func (m *Manager) Begin(ctx context.Context, fn TransactionalFn) error {
	return m.run(ctx, m.opts, fn)
}

// Snapshot runs fn in a read-only REPEATABLE READ transaction, so every
// statement in fn sees the same committed state.
func (m *Manager) Snapshot(ctx context.Context, fn TransactionalFn) error {
	return m.run(ctx, m.readOpts, fn)
}

func (m *Manager) run(ctx context.Context, opts pgx.TxOptions, fn TransactionalFn) (err error) {
	if _, ok := TxFromContext(ctx); ok {
		return fn(ctx)
	}

	tx, err := m.db.BeginTx(ctx, opts)
	if err != nil {
		zap.L().Error("failed to begin transaction", zap.Error(err))
		return fmt.Errorf("begin transaction: %w", err)
	}

	defer func() {
		// rollback must reach the server even when ctx has already expired
		rbCtx := context.WithoutCancel(ctx)
		if p := recover(); p != nil {
			_ = tx.Rollback(rbCtx)
			panic(p)
		}
		if err != nil {
			if rbErr := tx.Rollback(rbCtx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
				zap.L().Error("failed to rollback transaction", zap.Error(rbErr))
			}
			return
		}
		if cErr := tx.Commit(ctx); cErr != nil {
			zap.L().Error("failed to commit transaction", zap.Error(cErr))
			err = fmt.Errorf("commit transaction: %w", cErr)
		}
	}()

	return fn(context.WithValue(ctx, txKey{}, tx))
}
