package postgres

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"techsnap/internal/domain"
)

func (db *DB) TechnologyCounts(ctx context.Context, limit int) ([]domain.TechnologyCount, error) {
	rows, err := db.Pool.Query(ctx, `
        SELECT t.name, COALESCE(t.category, 'Other') AS category, count(*) AS cnt
        FROM website_technologies wt
        JOIN technologies t ON t.id = wt.technology_id
        GROUP BY t.name, t.category
        ORDER BY cnt DESC, t.name
        LIMIT $1
    `, limit)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.TechnologyCount, error) {
		var tc domain.TechnologyCount
		err := row.Scan(&tc.Name, &tc.Category, &tc.Count)
		return tc, err
	})
}

// Domains lists every website row, including those without technologies.
func (db *DB) Domains(ctx context.Context, limit int) ([]domain.DomainSummary, error) {
	rows, err := db.Pool.Query(ctx, `
        SELECT w.domain, w.company_name, w.hosting, w.status,
               array_remove(array_agg(t.name ORDER BY t.name), NULL) AS techs
        FROM websites w
        LEFT JOIN website_technologies wt ON wt.website_id = w.id
        LEFT JOIN technologies t ON t.id = wt.technology_id
        GROUP BY w.id, w.domain, w.company_name, w.hosting, w.status
        ORDER BY w.domain
        LIMIT $1
    `, limit)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.DomainSummary, error) {
		var d domain.DomainSummary
		err := row.Scan(&d.Domain, &d.Company, &d.Hosting, &d.Status, &d.Technologies)
		if d.Technologies == nil {
			d.Technologies = []string{}
		}
		return d, err
	})
}

const websiteColumns = `
        SELECT w.domain, w.url, w.company_name, w.hosting, w.status, w.http_status, w.title, w.last_scanned,
               array_remove(array_agg(t.name ORDER BY t.name), NULL) AS techs
        FROM websites w
        LEFT JOIN website_technologies wt ON wt.website_id = w.id
        LEFT JOIN technologies t ON t.id = wt.technology_id`

func scanWebsite(row pgx.Row) (domain.WebsiteDetail, error) {
	var (
		out         domain.WebsiteDetail
		lastScanned time.Time
	)
	err := row.Scan(&out.Domain, &out.URL, &out.Company, &out.Hosting, &out.Status,
		&out.HTTPStatus, &out.Title, &lastScanned, &out.Technologies)
	out.LastScanned = lastScanned
	if out.Technologies == nil {
		out.Technologies = []string{}
	}
	return out, err
}

func (db *DB) Website(ctx context.Context, name string) (domain.WebsiteDetail, bool, error) {
	out, err := scanWebsite(db.Pool.QueryRow(ctx, websiteColumns+`
        WHERE w.domain = lower($1)
        GROUP BY w.id
    `, name))
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.WebsiteDetail{}, false, nil
	}
	if err != nil {
		return domain.WebsiteDetail{}, false, err
	}
	return out, true, nil
}

func (db *DB) Websites(ctx context.Context, techs []string, limit, offset int) ([]domain.WebsiteDetail, error) {
	folded := make([]string, 0, len(techs))
	for _, t := range techs {
		folded = append(folded, strings.ToLower(t))
	}
	rows, err := db.Pool.Query(ctx, websiteColumns+`
        GROUP BY w.id
        HAVING cardinality($1::text[]) = 0
            OR array_agg(lower(t.name)) FILTER (WHERE t.name IS NOT NULL) @> $1::text[]
        ORDER BY w.last_scanned DESC, w.domain
        LIMIT $2 OFFSET $3
    `, folded, limit, offset)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.WebsiteDetail, error) {
		return scanWebsite(row)
	})
}

// LatestWebsites lists websites by when they were first recorded, newest first.
func (db *DB) LatestWebsites(ctx context.Context, limit int) ([]domain.WebsiteDetail, error) {
	rows, err := db.Pool.Query(ctx, websiteColumns+`
        GROUP BY w.id
        ORDER BY w.first_seen DESC, w.domain
        LIMIT $1
    `, limit)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.WebsiteDetail, error) {
		return scanWebsite(row)
	})
}

func (db *DB) CategoryCounts(ctx context.Context, topN int) ([]domain.CategoryStats, error) {
	rows, err := db.Pool.Query(ctx, `
        SELECT category, name, cnt FROM (
            SELECT COALESCE(t.category, 'Other') AS category, t.name, count(*) AS cnt,
                   row_number() OVER (PARTITION BY COALESCE(t.category, 'Other')
                                      ORDER BY count(*) DESC, t.name) AS rn
            FROM website_technologies wt
            JOIN technologies t ON t.id = wt.technology_id
            GROUP BY t.name, t.category
        ) ranked
        WHERE rn <= $1
        ORDER BY category, rn
    `, topN)
	if err != nil {
		return nil, err
	}
	counts, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.TechnologyCount, error) {
		var tc domain.TechnologyCount
		err := row.Scan(&tc.Category, &tc.Name, &tc.Count)
		return tc, err
	})
	if err != nil {
		return nil, err
	}
	out := []domain.CategoryStats{}
	for _, tc := range counts {
		if n := len(out); n == 0 || out[n-1].Category != tc.Category {
			out = append(out, domain.CategoryStats{Category: tc.Category})
		}
		last := &out[len(out)-1]
		last.Technologies = append(last.Technologies, tc)
	}
	return out, nil
}
