package db_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/alexanderramin/tabgroups/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *db.SQLiteUnitOfWork {
	t.Helper()
	database, err := db.OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })

	return db.NewSQLiteUnitOfWork(database)
}

const insertNode = `INSERT INTO nodes (id, title, position, created_at, updated_at)
	VALUES (?, ?, 0, '2025-01-01T00:00:00Z', '2025-01-01T00:00:00Z')`

// readTitle reads a node title through a read-only transaction.
func readTitle(uow *db.SQLiteUnitOfWork, id string) (string, bool) {
	var title string
	var found bool
	_ = uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		row := tx.QueryRowContext(ctx, `SELECT title FROM nodes WHERE id = ?`, id)
		if err := row.Scan(&title); err != nil {
			return nil
		}
		found = true
		return nil
	})
	return title, found
}

func TestWithinTx_CommitOnSuccess(t *testing.T) {
	uow := openTestDB(t)

	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		_, err := tx.ExecContext(ctx, insertNode, "k1", "Reading")
		return err
	})
	require.NoError(t, err)

	title, found := readTitle(uow, "k1")
	assert.True(t, found, "row should exist after commit")
	assert.Equal(t, "Reading", title)
}

func TestWithinTx_RollbackOnError(t *testing.T) {
	uow := openTestDB(t)

	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		_, err := tx.ExecContext(ctx, insertNode, "k2", "Work")
		if err != nil {
			return err
		}
		return fmt.Errorf("deliberate failure")
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "deliberate failure")

	_, found := readTitle(uow, "k2")
	assert.False(t, found, "row should not exist after rollback")
}

func TestWithinTx_RollbackOnPanic(t *testing.T) {
	uow := openTestDB(t)

	assert.Panics(t, func() {
		_ = uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
			_, _ = tx.ExecContext(ctx, insertNode, "k3", "News")
			panic("boom")
		})
	})

	_, found := readTitle(uow, "k3")
	assert.False(t, found, "row should not exist after panic rollback")
}

func TestWithinTx_ReturnsCallbackErrorUnwrapped(t *testing.T) {
	uow := openTestDB(t)
	errStop := errors.New("stop")

	err := uow.WithinTx(context.Background(), func(context.Context, db.DBTX) error {
		return errStop
	})

	assert.ErrorIs(t, err, errStop)
}
