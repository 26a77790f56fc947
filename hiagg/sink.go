// SPDX-License-Identifier: MIT
//
// File: sink.go
// Role: Optional external mirror of the live cohesion matrix, keyed by
//       stable slot indices (the cluster_cohesion table).

package hiagg

import (
	"context"
	"database/sql"

	"github.com/cockroachdb/errors"
)

// Sink receives every change to the live cohesion matrix.
//
// Reset is called once before seeding. Put upserts the entry (i, j); the
// clusterer writes both orientations of off-diagonal entries. Retire drops
// every entry that mentions slot.
type Sink interface {
	Reset(ctx context.Context) error
	Put(ctx context.Context, i, j int, cohesion float64) error
	Retire(ctx context.Context, slot int) error
}

const (
	createCohesionTable = `
		CREATE TABLE IF NOT EXISTS cluster_cohesion (
			cluster1 INTEGER NOT NULL,
			cluster2 INTEGER NOT NULL,
			cohesion REAL NOT NULL,
			PRIMARY KEY (cluster1, cluster2)
		)`

	upsertCohesion = `
		INSERT INTO cluster_cohesion (cluster1, cluster2, cohesion)
		VALUES (?, ?, ?)
		ON CONFLICT (cluster1, cluster2) DO UPDATE SET cohesion = excluded.cohesion`

	selectCohesion = `SELECT cohesion FROM cluster_cohesion WHERE cluster1 = ? AND cluster2 = ?`

	selectCohesivePair = `
		SELECT cluster1, cluster2 FROM cluster_cohesion
		WHERE cohesion > 0 AND cluster1 < cluster2
		ORDER BY cluster1, cluster2
		LIMIT 1`
)

// SQLSink stores the cohesion matrix in a cluster_cohesion table through
// database/sql. Statements use '?' placeholders (SQLite, MySQL).
type SQLSink struct {
	db *sql.DB
}

// NewSQLSink returns a sink over db. The table is created on Reset.
func NewSQLSink(db *sql.DB) *SQLSink {
	return &SQLSink{db: db}
}

// Reset creates the table if needed and empties it.
func (s *SQLSink) Reset(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, createCohesionTable); err != nil {
		return errors.Wrap(err, "hiagg: create cluster_cohesion")
	}
	if _, err := s.db.ExecContext(ctx, `DELETE FROM cluster_cohesion`); err != nil {
		return errors.Wrap(err, "hiagg: clear cluster_cohesion")
	}

	return nil
}

// Put upserts the (i, j) entry.
func (s *SQLSink) Put(ctx context.Context, i, j int, cohesion float64) error {
	if _, err := s.db.ExecContext(ctx, upsertCohesion, i, j, cohesion); err != nil {
		return errors.Wrapf(err, "hiagg: upsert cohesion (%d, %d)", i, j)
	}

	return nil
}

// Retire deletes every entry of slot.
func (s *SQLSink) Retire(ctx context.Context, slot int) error {
	_, err := s.db.ExecContext(ctx,
		`DELETE FROM cluster_cohesion WHERE cluster1 = ? OR cluster2 = ?`, slot, slot)
	if err != nil {
		return errors.Wrapf(err, "hiagg: retire slot %d", slot)
	}

	return nil
}

// Get returns the stored (i, j) entry; ok is false when absent.
func (s *SQLSink) Get(ctx context.Context, i, j int) (cohesion float64, ok bool, err error) {
	err = s.db.QueryRowContext(ctx, selectCohesion, i, j).Scan(&cohesion)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, errors.Wrapf(err, "hiagg: get cohesion (%d, %d)", i, j)
	}

	return cohesion, true, nil
}

// CohesivePair returns the smallest (i, j), i < j, stored with positive
// cohesion, matching Clusterer.Next.
func (s *SQLSink) CohesivePair(ctx context.Context) (i, j int, ok bool, err error) {
	err = s.db.QueryRowContext(ctx, selectCohesivePair).Scan(&i, &j)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, 0, false, nil
	}
	if err != nil {
		return 0, 0, false, errors.Wrap(err, "hiagg: find cohesive pair")
	}

	return i, j, true, nil
}

// Count returns the number of stored entries.
func (s *SQLSink) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM cluster_cohesion`).Scan(&n); err != nil {
		return 0, errors.Wrap(err, "hiagg: count cohesion rows")
	}

	return n, nil
}
