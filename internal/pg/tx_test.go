package pg

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	readCommitted = pgx.TxOptions{IsoLevel: pgx.ReadCommitted}
	readSnapshot  = pgx.TxOptions{IsoLevel: pgx.RepeatableRead, AccessMode: pgx.ReadOnly}
)

func TestManager_Begin(t *testing.T) {
	errFn := errors.New("fn failed")

	tests := []struct {
		name        string
		fn          TransactionalFn
		prepareMock func(mock pgxmock.PgxPoolIface)
		wantErr     error
	}{
		{
			name: "commit on success",
			fn: func(ctx context.Context) error {
				_, err := New(nil).Exec(ctx, "UPDATE users SET coins = coins - 1")
				return err
			},
			prepareMock: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectBeginTx(readCommitted)
				mock.ExpectExec("UPDATE users").WillReturnResult(pgxmock.NewResult("UPDATE", 1))
				mock.ExpectCommit()
			},
		},
		{
			name: "rollback on error",
			fn: func(ctx context.Context) error {
				return errFn
			},
			prepareMock: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectBeginTx(readCommitted)
				mock.ExpectRollback()
			},
			wantErr: errFn,
		},
		{
			name: "begin fails",
			fn: func(ctx context.Context) error {
				t.Fatal("fn must not run")
				return nil
			},
			prepareMock: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectBeginTx(readCommitted).WillReturnError(errors.New("conn refused"))
			},
			wantErr: errors.New("begin transaction: conn refused"),
		},
		{
			name: "commit fails",
			fn: func(ctx context.Context) error {
				return nil
			},
			prepareMock: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectBeginTx(readCommitted)
				mock.ExpectCommit().WillReturnError(errors.New("conn reset"))
			},
			wantErr: errors.New("commit transaction: conn reset"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock, err := pgxmock.NewPool()
			require.NoError(t, err)
			defer mock.Close()

			tt.prepareMock(mock)
			err = NewTXManager(mock).Begin(context.Background(), tt.fn)

			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestManager_BeginNested(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectBeginTx(readCommitted)
	mock.ExpectCommit()

	m := NewTXManager(mock)
	err = m.Begin(context.Background(), func(ctx context.Context) error {
		outer, ok := TxFromContext(ctx)
		require.True(t, ok)
		return m.Begin(ctx, func(ctx context.Context) error {
			inner, ok := TxFromContext(ctx)
			require.True(t, ok)
			assert.Equal(t, outer, inner)
			return nil
		})
	})

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestManager_Snapshot(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectBeginTx(readSnapshot)
	mock.ExpectQuery("SELECT coins FROM users").
		WillReturnRows(pgxmock.NewRows([]string{"coins"}).AddRow(int64(60)))
	mock.ExpectQuery("SELECT book_id FROM purchases").
		WillReturnRows(pgxmock.NewRows([]string{"book_id"}))
	mock.ExpectCommit()

	conn := New(mock)
	err = NewTXManager(mock).Snapshot(context.Background(), func(ctx context.Context) error {
		var coins int64
		if err := conn.QueryRow(ctx, "SELECT coins FROM users").Scan(&coins); err != nil {
			return err
		}
		rows, err := conn.Query(ctx, "SELECT book_id FROM purchases")
		if err != nil {
			return err
		}
		rows.Close()
		return nil
	})

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestManager_BeginPanic(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectBeginTx(readCommitted)
	mock.ExpectRollback()

	assert.PanicsWithValue(t, "boom", func() {
		_ = NewTXManager(mock).Begin(context.Background(), func(ctx context.Context) error {
			panic("boom")
		})
	})
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestConn_UsesPoolOutsideTx(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectExec("DELETE FROM topups").WillReturnResult(pgxmock.NewResult("DELETE", 0))

	_, err = New(mock).Exec(context.Background(), "DELETE FROM topups")
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
