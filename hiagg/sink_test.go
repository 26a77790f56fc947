// SPDX-License-Identifier: MIT

package hiagg_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/katalvlaran/codeclust/hiagg"
)

// openSQLite returns a private in-memory database. One connection keeps
// every statement on the same :memory: instance.
func openSQLite(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	return db
}

func TestSQLSink_MirrorsLiveMatrix(t *testing.T) {
	ctx := context.Background()
	sink := hiagg.NewSQLSink(openSQLite(t))

	c := hiagg.New(fourPoints(t), hiagg.WithSink(sink))
	require.NoError(t, c.Seed(ctx))

	n, err := sink.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 16, n)

	// the table proposes the same pair as the in-memory scan before every merge
	for {
		i, j, ok := c.Next()
		si, sj, sok, err := sink.CohesivePair(ctx)
		require.NoError(t, err)
		require.Equal(t, ok, sok)
		if !ok {
			break
		}
		assert.Equal(t, [2]int{i, j}, [2]int{si, sj})

		merged, err := c.Step(ctx)
		require.NoError(t, err)
		require.True(t, merged)
	}

	// only the live slots 4 and 5 remain, in both orientations
	n, err = sink.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 4, n)

	for _, pair := range [][2]int{{4, 4}, {4, 5}, {5, 4}, {5, 5}} {
		got, ok, err := sink.Get(ctx, pair[0], pair[1])
		require.NoError(t, err)
		require.True(t, ok, "%v", pair)
		want, _ := c.Cohesion(pair[0], pair[1])
		assert.InDelta(t, want, got, 1e-9)
	}

	_, ok, err := sink.Get(ctx, 0, 1)
	require.NoError(t, err)
	assert.False(t, ok, "retired slots are deleted")
}

func TestSQLSink_ResetClearsPreviousRun(t *testing.T) {
	ctx := context.Background()
	db := openSQLite(t)
	sink := hiagg.NewSQLSink(db)

	_, err := hiagg.New(fourPoints(t), hiagg.WithSink(sink)).Run(ctx)
	require.NoError(t, err)
	_, err = hiagg.New(fourPoints(t), hiagg.WithSink(sink)).Run(ctx)
	require.NoError(t, err)

	n, err := sink.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 4, n)
}

func TestSQLSink_FailureAbortsRun(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(`CREATE TABLE IF NOT EXISTS cluster_cohesion`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`DELETE FROM cluster_cohesion`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`INSERT INTO cluster_cohesion`).
		WithArgs(0, 0, sqlmock.AnyArg()).
		WillReturnError(sql.ErrConnDone)

	c := hiagg.New(fourPoints(t), hiagg.WithSink(hiagg.NewSQLSink(db)))
	_, err = c.Run(context.Background())
	assert.ErrorIs(t, err, sql.ErrConnDone)

	_, err = c.Step(context.Background())
	assert.ErrorIs(t, err, hiagg.ErrAborted)
	assert.NoError(t, mock.ExpectationsWereMet())
}
