package pg

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRunMigrations_Error(t *testing.T) {
	orig := gooseUp
	defer func() { gooseUp = orig }()

	gooseUp = func(ctx context.Context, db *sql.DB, dir string) error {
		return errors.New("dirty database")
	}

	err := runMigrations(context.Background(), &sql.DB{})
	assert.EqualError(t, err, "failed to run migrations: dirty database")
}
