package pgxpool

import (
	"context"

	"github.com/aatuh/ulid-toolkit/ports"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Adapter wraps pgxpool.Pool to implement ports.DatabasePool.
type Adapter struct {
	*pgxpool.Pool
}

// New creates a new database pool adapter.
func New(dsn string) (ports.DatabasePool, error) {
	pool, err := pgxpool.New(context.Background(), dsn)
	if err != nil {
		return nil, err
	}
	return &Adapter{Pool: pool}, nil
}

// Acquire gets a connection from the pool.
func (a *Adapter) Acquire(ctx context.Context) (ports.DatabaseConnection, error) {
	conn, err := a.Pool.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	return &Connection{Conn: conn}, nil
}

// Connection wraps pgxpool.Conn to implement ports.DatabaseConnection.
type Connection struct {
	*pgxpool.Conn
}

// Query executes a query and returns rows.
func (c *Connection) Query(ctx context.Context, sql string, args ...any) (ports.DatabaseRows, error) {
	rows, err := c.Conn.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	return &Rows{Rows: rows}, nil
}

// QueryRow executes a query and returns a single row.
func (c *Connection) QueryRow(ctx context.Context, sql string, args ...any) ports.DatabaseRow {
	return &Row{Row: c.Conn.QueryRow(ctx, sql, args...)}
}

// Exec executes a query without returning rows.
func (c *Connection) Exec(ctx context.Context, sql string, args ...any) (ports.DatabaseResult, error) {
	result, err := c.Conn.Exec(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	return &Result{CommandTag: result}, nil
}

// Rows wraps pgx.Rows to implement ports.DatabaseRows.
type Rows struct {
	pgx.Rows
}

// Row wraps pgx.Row to implement ports.DatabaseRow.
type Row struct {
	pgx.Row
}

// Result wraps pgconn.CommandTag to implement ports.DatabaseResult.
type Result struct {
	pgconn.CommandTag
}
