package postgres

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"techsnap/internal/domain"
	"techsnap/internal/ports"
)

// ClaimNext selects the oldest pending request using SKIP LOCKED and leases it.
func (db *DB) ClaimNext(ctx context.Context, lease time.Duration) (job ports.ScanJob, found bool, err error) {
	tx, err := db.Pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return job, false, err
	}
	defer func() {
		if err != nil || !found {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	err = tx.QueryRow(ctx, `
        SELECT id, domain FROM scan_queue
        WHERE NOT processed
          AND (claimed_at IS NULL OR claimed_at < now() - make_interval(secs => $1))
        ORDER BY created_at
        FOR UPDATE SKIP LOCKED
        LIMIT 1
    `, lease.Seconds()).Scan(&job.ID, &job.Domain)
	if errors.Is(err, pgx.ErrNoRows) {
		return job, false, nil
	}
	if err != nil {
		return job, false, err
	}

	if err = tx.QueryRow(ctx, `
        UPDATE scan_queue SET claimed_at = now(), attempts = attempts + 1 WHERE id = $1
        RETURNING attempts
    `, job.ID).Scan(&job.Attempts); err != nil {
		return job, false, err
	}
	return job, true, nil
}

// Complete upserts the website row unconditionally, replaces its technology
// set and marks the request processed, all in one transaction.
func (db *DB) Complete(ctx context.Context, jobID string, obs domain.Observation) (err error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	tx, err := db.Pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	websiteID, err := upsertWebsite(ctx, tx, obs)
	if err != nil {
		return err
	}
	if _, err = tx.Exec(ctx, `DELETE FROM website_technologies WHERE website_id = $1`, websiteID); err != nil {
		return err
	}
	for _, t := range obs.Technologies {
		var techID int64
		if err = tx.QueryRow(ctx, `
            INSERT INTO technologies (name, category) VALUES ($1, $2)
            ON CONFLICT (name) DO UPDATE SET category = COALESCE(EXCLUDED.category, technologies.category)
            RETURNING id
        `, t.Name, nullable(t.Category)).Scan(&techID); err != nil {
			return err
		}
		if _, err = tx.Exec(ctx, `
            INSERT INTO website_technologies (website_id, technology_id) VALUES ($1, $2)
            ON CONFLICT DO NOTHING
        `, websiteID, techID); err != nil {
			return err
		}
	}
	return markProcessed(ctx, tx, jobID, nil)
}

// Release records why an attempt failed. The request stays pending and is
// claimable again once its lease, restarted here, expires.
func (db *DB) Release(ctx context.Context, jobID string, reason string) error {
	_, err := db.Pool.Exec(ctx, `
        UPDATE scan_queue SET claimed_at = now(), last_error = $2 WHERE id = $1 AND NOT processed
    `, jobID, reason)
	return err
}

// Fail terminally processes the request. The website row is still written so
// clients polling for the domain observe completion; previously detected
// technologies are left untouched.
func (db *DB) Fail(ctx context.Context, jobID string, obs domain.Observation, reason string) (err error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	tx, err := db.Pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	obs.Status = domain.ScanStatusError
	if _, err = upsertWebsite(ctx, tx, obs); err != nil {
		return err
	}
	return markProcessed(ctx, tx, jobID, &reason)
}

func upsertWebsite(ctx context.Context, tx pgx.Tx, obs domain.Observation) (int64, error) {
	status := obs.Status
	if status == "" {
		status = domain.ScanStatusOK
	}
	url := obs.URL
	if url == "" {
		url = "https://" + obs.Domain
	}
	var id int64
	err := tx.QueryRow(ctx, `
        INSERT INTO websites (domain, url, status, http_status, title, company_name, hosting, last_scanned)
        VALUES ($1, $2, $3, $4, $5, $6, $7, now())
        ON CONFLICT (domain) DO UPDATE SET
            url = EXCLUDED.url,
            status = EXCLUDED.status,
            http_status = EXCLUDED.http_status,
            title = COALESCE(EXCLUDED.title, websites.title),
            company_name = COALESCE(EXCLUDED.company_name, websites.company_name),
            hosting = COALESCE(EXCLUDED.hosting, websites.hosting),
            last_scanned = now()
        RETURNING id
    `, strings.ToLower(obs.Domain), url, status, obs.HTTPStatus, obs.Title, obs.Company, obs.Hosting).Scan(&id)
	return id, err
}

func markProcessed(ctx context.Context, tx pgx.Tx, jobID string, reason *string) error {
	tag, err := tx.Exec(ctx, `
        UPDATE scan_queue
        SET processed = true, processed_at = now(), claimed_at = NULL, last_error = $2
        WHERE id = $1 AND NOT processed
    `, jobID, reason)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
