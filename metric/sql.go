// SPDX-License-Identifier: MIT
//
// File: sql.go
// Role: Distance computed by a relational store (for example a Postgres
//       function over a vector extension).

package metric

import (
	"context"
	"database/sql"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
)

// DefaultDistanceQuery calls a store-side dist(a, b) function.
const DefaultDistanceQuery = "SELECT dist($1, $2)"

// SQLDistance evaluates distances between string IDs with one query per pair.
type SQLDistance struct {
	db     *sql.DB
	query  string
	logger *zap.Logger
}

// NewSQLDistance returns a provider running query with (a, b) as arguments.
// An empty query selects DefaultDistanceQuery; a nil logger discards output.
func NewSQLDistance(db *sql.DB, query string, logger *zap.Logger) *SQLDistance {
	if query == "" {
		query = DefaultDistanceQuery
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &SQLDistance{db: db, query: query, logger: logger}
}

// Distance returns 0 for identical IDs without touching the store.
//
// Errors:
//   - ErrNoRows when the query yields nothing; wrapped driver errors otherwise.
func (s *SQLDistance) Distance(ctx context.Context, a, b string) (float64, error) {
	if a == b {
		return 0, nil
	}

	var d float64
	err := s.db.QueryRowContext(ctx, s.query, a, b).Scan(&d)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, errors.Wrapf(ErrNoRows, "metric: dist(%s, %s)", a, b)
	}
	if err != nil {
		s.logger.Warn("distance query failed",
			zap.String("a", a),
			zap.String("b", b),
			zap.Error(err))
		return 0, errors.Wrapf(err, "metric: dist(%s, %s)", a, b)
	}

	return d, nil
}
