package pg

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"github.com/GlebRadaev/bookstore/internal/domain"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		wantIs  error
		wantNil bool
	}{
		{name: "nil", err: nil, wantNil: true},
		{name: "domain sentinel passes through", err: domain.ErrAlreadyOwned, wantIs: domain.ErrAlreadyOwned},
		{name: "check violation", err: &pgconn.PgError{Code: "23514"}, wantIs: domain.ErrInvariantViolation},
		{name: "numeric value out of range", err: &pgconn.PgError{Code: "22003"}, wantIs: domain.ErrInvalidInput},
		{name: "serialization failure", err: &pgconn.PgError{Code: "40001"}, wantIs: domain.ErrTransientStoreFailure},
		{name: "deadlock", err: &pgconn.PgError{Code: "40P01"}, wantIs: domain.ErrTransientStoreFailure},
		{name: "connection exception", err: &pgconn.PgError{Code: "08006"}, wantIs: domain.ErrTransientStoreFailure},
		{name: "deadline", err: fmt.Errorf("query: %w", context.DeadlineExceeded), wantIs: domain.ErrTransientStoreFailure},
		{name: "already transient", err: domain.ErrTransientStoreFailure, wantIs: domain.ErrTransientStoreFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.err)
			if tt.wantNil {
				assert.NoError(t, got)
				return
			}
			assert.ErrorIs(t, got, tt.wantIs)
		})
	}
}

func TestClassify_KeepsUnknownErrors(t *testing.T) {
	err := errors.New("syntax error")
	assert.Same(t, err, Classify(err))
	assert.False(t, errors.Is(Classify(err), domain.ErrTransientStoreFailure))
}

func TestIsUniqueViolation(t *testing.T) {
	assert.True(t, IsUniqueViolation(fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505"})))
	assert.False(t, IsUniqueViolation(&pgconn.PgError{Code: "23514"}))
	assert.False(t, IsUniqueViolation(errors.New("other")))
}
