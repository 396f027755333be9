package postgres

import (
	"context"
	"strings"

	"github.com/google/uuid"
)

// EnqueueIfAbsent inserts a pending scan request. The partial unique index on
// lower(domain) makes the existence check and the insert a single atomic
// statement, so concurrent callers for the same domain leave one pending row.
func (db *DB) EnqueueIfAbsent(ctx context.Context, domain string) (bool, error) {
	tag, err := db.Pool.Exec(ctx, `
        INSERT INTO scan_queue (id, domain)
        VALUES ($1, $2)
        ON CONFLICT (lower(domain)) WHERE NOT processed DO NOTHING
    `, uuid.New(), strings.ToLower(domain))
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}
