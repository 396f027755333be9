package domain

import "time"

// Core domain models. The HTTP layer has its own JSON shapes in
// internal/adapters/http; keep these decoupled from the wire.

// ScanRequest is a row of the scan queue.
type ScanRequest struct {
	ID          string
	Domain      string
	Processed   bool
	CreatedAt   time.Time
	ClaimedAt   *time.Time
	ProcessedAt *time.Time
	Attempts    int
	LastError   *string
}

// Scan statuses recorded on a website row.
const (
	ScanStatusOK    = "ok"
	ScanStatusError = "error"
)

// Technology is a detected technology and its category.
type Technology struct {
	Name     string
	Category string
}

// Observation is what the analyzer learned about one domain.
type Observation struct {
	Domain       string
	URL          string
	Status       string
	HTTPStatus   *int
	Title        *string
	Company      *string
	Hosting      *string
	Technologies []Technology
}

// TechnologyCount is one row of the aggregated technology usage.
type TechnologyCount struct {
	Name     string
	Category string
	Count    int64
}

// DomainSummary is one domain of a snapshot. Technologies may be empty.
type DomainSummary struct {
	Domain       string
	Company      *string
	Hosting      *string
	Status       string
	Technologies []string
}

// Snapshot is the read-only view served to clients.
type Snapshot struct {
	Technologies []TechnologyCount
	Domains      []DomainSummary
}

// WebsiteDetail is the latest known state of a single domain.
type WebsiteDetail struct {
	DomainSummary
	URL         string
	HTTPStatus  *int
	Title       *string
	LastScanned time.Time
}

// Snapshot bounds.
const (
	MaxTechnologies = 200
	MaxDomains      = 2000
)

// WebsiteFilter selects a page of websites. Zero Page or PerPage means the
// default. Technologies must all be present on a website for it to match.
type WebsiteFilter struct {
	Page         int
	PerPage      int
	Technologies []string
}

// WebsitePage is one page of websites, most recently scanned first.
type WebsitePage struct {
	Items   []WebsiteDetail
	Page    int
	PerPage int
}

// CategoryStats is the most used technologies of one category.
type CategoryStats struct {
	Category     string
	Technologies []TechnologyCount
}

// Listing bounds.
const (
	DefaultPerPage = 50
	MaxPerPage     = 200
	DefaultLatest  = 20
	MaxLatest      = 200
	StatsTopN      = 10
)
