package ports

import (
	"context"

	"techsnap/internal/domain"
)

// Scanner accepts scan requests.
type Scanner interface {
	Enqueue(ctx context.Context, domain string) error
}

// Results serves read-only aggregated views of completed scans.
type Results interface {
	Snapshot(ctx context.Context) (domain.Snapshot, error)
	Website(ctx context.Context, domain string) (domain.WebsiteDetail, error)
	Websites(ctx context.Context, f domain.WebsiteFilter) (domain.WebsitePage, error)
	Latest(ctx context.Context, limit int) ([]domain.WebsiteDetail, error)
	Stats(ctx context.Context) ([]domain.CategoryStats, error)
}
