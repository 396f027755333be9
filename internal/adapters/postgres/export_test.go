package postgres

import "context"

// PendingCount reports how many unprocessed requests exist for domain.
func (db *DB) PendingCount(ctx context.Context, domain string) (int, error) {
	var n int
	err := db.Pool.QueryRow(ctx, `
        SELECT count(*) FROM scan_queue WHERE lower(domain) = lower($1) AND NOT processed
    `, domain).Scan(&n)
	return n, err
}
