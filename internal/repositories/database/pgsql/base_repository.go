package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/finance_dashboard/internal/core/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// BaseRepository provides common functionality for all repositories
type BaseRepository struct {
	Pool *pgxpool.Pool
}

// ownerArg is the value bound to the owner filter; an empty string disables it.
func ownerArg(scope domain.Scope) string {
	if scope.IsAll() {
		return ""
	}
	return string(scope)
}

// listRows runs a scoped list query and scans every row with scan.
// Queries take the owner filter as $1 and the limit as $2.
func listRows[M any](ctx context.Context, r *BaseRepository, what, query string, scope domain.Scope, limit int, scan func(pgx.CollectableRow) (M, error)) ([]M, error) {
	rows, err := r.Pool.Query(ctx, query, ownerArg(scope), limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", what, err)
	}
	defer rows.Close()

	out, err := pgx.CollectRows(rows, scan)
	if err != nil {
		return nil, fmt.Errorf("failed to scan %s: %w", what, err)
	}
	if out == nil {
		return []M{}, nil
	}
	return out, nil
}
