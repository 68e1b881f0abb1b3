// Package repo contains the persistence interfaces for the TripLedger API
// and their Postgres implementations. Each resource has its own file with an
// interface and a Postgres implementation. No business logic lives here —
// only SQL and type mapping. The default in-memory implementation lives in
// the mem subpackage.
package repo

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// db is the minimal interface satisfied by *pgxpool.Pool, pgx.Conn, and pgx.Tx.
// Accepting this interface instead of *pgxpool.Pool directly allows integration
// tests to pass a transaction that is rolled back after each test, giving free
// per-test isolation without any manual cleanup.
type db interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// scanner is satisfied by both pgx.Row and pgx.Rows, so the same scan helper
// works for single-row and multi-row queries.
type scanner interface {
	Scan(dest ...any) error
}
