package analyzer

import (
	"context"

	"github.com/sirupsen/logrus"

	"techsnap/internal/detect"
	"techsnap/internal/domain"
)

// Analyzer turns a domain into an observation.
type Analyzer interface {
	Analyze(ctx context.Context, domain string) (domain.Observation, error)
}

type PageFetcher interface {
	Fetch(ctx context.Context, domain string) (Result, error)
}

type HostingResolver interface {
	Provider(ctx context.Context, domain string) (string, error)
}

// CompanyResolver names the organisation that registered a domain.
type CompanyResolver interface {
	Company(ctx context.Context, domain string) (string, error)
}

// Processor fetches the landing page, runs detection and resolves hosting
// and the owning company.
type Processor struct {
	fetcher  PageFetcher
	detector *detect.Detector
	hosting  HostingResolver
	company  CompanyResolver
	log      logrus.FieldLogger
}

// NewProcessor builds a Processor. hosting and company may be nil.
func NewProcessor(f PageFetcher, d *detect.Detector, h HostingResolver, c CompanyResolver, log logrus.FieldLogger) *Processor {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Processor{fetcher: f, detector: d, hosting: h, company: c, log: log}
}

// Analyze returns a partial observation alongside a fetch error so the caller
// can still record the attempt.
func (p *Processor) Analyze(ctx context.Context, name string) (domain.Observation, error) {
	obs := domain.Observation{Domain: name, Technologies: []domain.Technology{}}
	if p.hosting != nil {
		provider, err := p.hosting.Provider(ctx, name)
		if err != nil {
			p.log.WithError(err).WithField("domain", name).Debug("hosting lookup failed")
		} else if provider != "" {
			obs.Hosting = &provider
		}
	}
	if p.company != nil {
		org, err := p.company.Company(ctx, name)
		if err != nil {
			p.log.WithError(err).WithField("domain", name).Debug("whois lookup failed")
		} else if org != "" {
			obs.Company = &org
		}
	}

	res, err := p.fetcher.Fetch(ctx, name)
	obs.URL = res.URL
	if err != nil {
		obs.Status = domain.ScanStatusError
		return obs, err
	}
	obs.Status = domain.ScanStatusOK
	status := res.StatusCode
	obs.HTTPStatus = &status

	meta := detect.ParseMeta(res.Page.Body)
	if meta.Title != "" {
		obs.Title = &meta.Title
	}
	// the page's own name stands in when the registry has none
	if obs.Company == nil && meta.SiteName != "" {
		obs.Company = &meta.SiteName
	}
	obs.Technologies = p.detector.Detect(res.Page)
	return obs, nil
}
