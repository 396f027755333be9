package results

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"techsnap/internal/domain"
	"techsnap/internal/metrics"
	"techsnap/internal/ports"
)

type Service struct {
	repo     ports.ResultRepository
	log      logrus.FieldLogger
	metrics  *metrics.Metrics
	maxTechs int
	maxDoms  int
}

type Option func(*Service)

// WithLimits lowers the snapshot bounds. Values outside (0, default] are ignored.
func WithLimits(techs, domains int) Option {
	return func(s *Service) {
		if techs > 0 && techs < domain.MaxTechnologies {
			s.maxTechs = techs
		}
		if domains > 0 && domains < domain.MaxDomains {
			s.maxDoms = domains
		}
	}
}

func New(repo ports.ResultRepository, log logrus.FieldLogger, m *metrics.Metrics, opts ...Option) *Service {
	if log == nil {
		log = logrus.StandardLogger()
	}
	s := &Service{
		repo:     repo,
		log:      log,
		metrics:  m,
		maxTechs: domain.MaxTechnologies,
		maxDoms:  domain.MaxDomains,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Snapshot returns technology usage counts and the known domains. Either
// query failing fails the whole snapshot.
func (s *Service) Snapshot(ctx context.Context) (domain.Snapshot, error) {
	start := time.Now()
	defer func() { s.metrics.ObserveSnapshot(time.Since(start)) }()

	techs, err := s.repo.TechnologyCounts(ctx, s.maxTechs)
	if err != nil {
		s.log.WithError(err).Error("technology counts")
		return domain.Snapshot{}, domain.NewStorageError("technology counts", err)
	}
	doms, err := s.repo.Domains(ctx, s.maxDoms)
	if err != nil {
		s.log.WithError(err).Error("domains")
		return domain.Snapshot{}, domain.NewStorageError("domains", err)
	}
	// bounds hold regardless of the repository
	if len(techs) > s.maxTechs {
		techs = techs[:s.maxTechs]
	}
	if len(doms) > s.maxDoms {
		doms = doms[:s.maxDoms]
	}
	return domain.Snapshot{Technologies: techs, Domains: doms}, nil
}

func (s *Service) Website(ctx context.Context, name string) (domain.WebsiteDetail, error) {
	detail, found, err := s.repo.Website(ctx, name)
	if err != nil {
		return domain.WebsiteDetail{}, domain.NewStorageError("website", err)
	}
	if !found {
		return domain.WebsiteDetail{}, domain.ErrNotFound
	}
	return detail, nil
}

// Websites returns one page of websites, most recently scanned first.
func (s *Service) Websites(ctx context.Context, f domain.WebsiteFilter) (domain.WebsitePage, error) {
	page, err := bounded("page", f.Page, 1, 0)
	if err != nil {
		return domain.WebsitePage{}, err
	}
	perPage, err := bounded("per_page", f.PerPage, domain.DefaultPerPage, domain.MaxPerPage)
	if err != nil {
		return domain.WebsitePage{}, err
	}
	techs := []string{}
	for _, t := range f.Technologies {
		if t = strings.TrimSpace(t); t != "" {
			techs = append(techs, t)
		}
	}
	items, err := s.repo.Websites(ctx, techs, perPage, (page-1)*perPage)
	if err != nil {
		s.log.WithError(err).Error("websites")
		return domain.WebsitePage{}, domain.NewStorageError("websites", err)
	}
	if len(items) > perPage {
		items = items[:perPage]
	}
	return domain.WebsitePage{Items: items, Page: page, PerPage: perPage}, nil
}

// Latest returns the most recently discovered websites.
func (s *Service) Latest(ctx context.Context, limit int) ([]domain.WebsiteDetail, error) {
	limit, err := bounded("limit", limit, domain.DefaultLatest, domain.MaxLatest)
	if err != nil {
		return nil, err
	}
	items, err := s.repo.LatestWebsites(ctx, limit)
	if err != nil {
		s.log.WithError(err).Error("latest websites")
		return nil, domain.NewStorageError("latest websites", err)
	}
	if len(items) > limit {
		items = items[:limit]
	}
	return items, nil
}

// Stats returns the top technologies of every category.
func (s *Service) Stats(ctx context.Context) ([]domain.CategoryStats, error) {
	stats, err := s.repo.CategoryCounts(ctx, domain.StatsTopN)
	if err != nil {
		s.log.WithError(err).Error("category counts")
		return nil, domain.NewStorageError("category counts", err)
	}
	for i := range stats {
		if len(stats[i].Technologies) > domain.StatsTopN {
			stats[i].Technologies = stats[i].Technologies[:domain.StatsTopN]
		}
	}
	return stats, nil
}

// bounded resolves a paging parameter: zero means def, negatives and values
// above limit (when limit > 0) are rejected.
func bounded(field string, v, def, limit int) (int, error) {
	switch {
	case v == 0:
		return def, nil
	case v < 0:
		return 0, &domain.ValidationError{Field: field, Msg: "must be positive"}
	case limit > 0 && v > limit:
		return 0, &domain.ValidationError{Field: field, Msg: fmt.Sprintf("must be at most %d", limit)}
	}
	return v, nil
}
