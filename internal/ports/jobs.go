package ports

import (
	"context"
	"time"

	"techsnap/internal/domain"
)

type ScanJob struct {
	ID       string
	Domain   string
	Attempts int
}

// JobRepository supports claiming and settling scan requests.
type JobRepository interface {
	// ClaimNext leases the oldest pending request whose lease is free or expired.
	ClaimNext(ctx context.Context, lease time.Duration) (job ScanJob, found bool, err error)
	// Complete records the observation and marks the request processed atomically.
	Complete(ctx context.Context, jobID string, obs domain.Observation) error
	// Release keeps the request pending for a later attempt.
	Release(ctx context.Context, jobID string, reason string) error
	// Fail marks the request processed with an error and records an error observation.
	Fail(ctx context.Context, jobID string, obs domain.Observation, reason string) error
}
