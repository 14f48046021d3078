// Package postgres stores saved games in PostgreSQL using pgx v5.
package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/cory-johannsen/escapegame/internal/config"
)

// DefaultHealthTimeout bounds the reachability check made by Connect.
const DefaultHealthTimeout = 5 * time.Second

// Pool wraps the pgx pool shared by save repositories.
type Pool struct {
	pool *pgxpool.Pool
}

// NewPool builds a connection pool from cfg without contacting the server.
// Connections are opened lazily; call Health to confirm reachability.
//
// Precondition: cfg must contain valid database connection parameters.
// Postcondition: Returns an unverified Pool or a non-nil error for bad settings.
func NewPool(ctx context.Context, cfg config.DatabaseConfig) (*Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("parsing database config: %w", err)
	}

	poolCfg.MaxConns = cfg.MaxConns
	poolCfg.MinConns = cfg.MinConns
	poolCfg.MaxConnLifetime = cfg.MaxConnLifetime

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("creating connection pool: %w", err)
	}
	return &Pool{pool: pool}, nil
}

// Connect builds a pool and verifies the server answers within timeout.
//
// Postcondition: Returns a reachable Pool, or a non-nil error with nothing left open.
func Connect(ctx context.Context, cfg config.DatabaseConfig, timeout time.Duration) (*Pool, error) {
	p, err := NewPool(ctx, cfg)
	if err != nil {
		return nil, err
	}
	if err := p.Health(ctx, timeout); err != nil {
		p.Close()
		return nil, fmt.Errorf("pinging database %s:%d: %w", cfg.Host, cfg.Port, err)
	}
	return p, nil
}

// Health checks that the database is reachable within the given timeout.
//
// Precondition: The pool must not be closed.
// Postcondition: Returns nil if the database responds within the timeout.
func (p *Pool) Health(ctx context.Context, timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	return p.pool.Ping(ctx)
}

// Close releases all pool resources.
func (p *Pool) Close() {
	p.pool.Close()
}

// DB returns the underlying pgxpool.Pool for use by repositories.
func (p *Pool) DB() *pgxpool.Pool {
	return p.pool
}
