package ports

import (
	"context"

	"techsnap/internal/domain"
)

// QueueRepository persists scan requests.
type QueueRepository interface {
	// EnqueueIfAbsent inserts a pending request unless one already exists for
	// the same case-folded domain. inserted is false for the no-op case.
	EnqueueIfAbsent(ctx context.Context, domain string) (inserted bool, err error)
}

// ResultRepository reads analyzer output.
type ResultRepository interface {
	TechnologyCounts(ctx context.Context, limit int) ([]domain.TechnologyCount, error)
	Domains(ctx context.Context, limit int) ([]domain.DomainSummary, error)
	Website(ctx context.Context, domain string) (detail domain.WebsiteDetail, found bool, err error)
	// Websites lists websites by last scan, newest first. Filter technologies
	// are matched case-insensitively and must all be present.
	Websites(ctx context.Context, techs []string, limit, offset int) ([]domain.WebsiteDetail, error)
	// LatestWebsites lists websites by first appearance, newest first.
	LatestWebsites(ctx context.Context, limit int) ([]domain.WebsiteDetail, error)
	// CategoryCounts returns the topN technologies of every category.
	CategoryCounts(ctx context.Context, topN int) ([]domain.CategoryStats, error)
}
