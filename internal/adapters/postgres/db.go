package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// DB is the store handle shared by the queue, result and job repositories.
// It is opened once at process start and closed at shutdown.
type DB struct {
	Pool *pgxpool.Pool
}

type Options struct {
	MaxConns int32
}

func Connect(ctx context.Context, url string, opts ...func(*Options)) (*DB, error) {
	o := Options{MaxConns: 10}
	for _, fn := range opts {
		fn(&o)
	}
	cfg, err := pgxpool.ParseConfig(url)
	if err != nil {
		return nil, err
	}
	cfg.MaxConns = o.MaxConns
	cfg.HealthCheckPeriod = 30 * time.Second
	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, err
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return &DB{Pool: pool}, nil
}

func WithMaxConns(n int32) func(*Options) {
	return func(o *Options) {
		if n > 0 {
			o.MaxConns = n
		}
	}
}

func (db *DB) Ping(ctx context.Context) error { return db.Pool.Ping(ctx) }

func (db *DB) Close() { db.Pool.Close() }
