package analyzer

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"techsnap/internal/domain"
	"techsnap/internal/metrics"
	"techsnap/internal/ports"
)

type Config struct {
	Concurrency  int
	PollInterval time.Duration
	Lease        time.Duration
	MaxAttempts  int
}

// Runner claims pending scan requests and settles them.
type Runner struct {
	repo     ports.JobRepository
	analyzer Analyzer
	cfg      Config
	log      logrus.FieldLogger
	metrics  *metrics.Metrics
}

func NewRunner(repo ports.JobRepository, a Analyzer, cfg Config, log logrus.FieldLogger, m *metrics.Metrics) *Runner {
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = 500 * time.Millisecond
	}
	if cfg.Lease <= 0 {
		cfg.Lease = 2 * time.Minute
	}
	if cfg.MaxAttempts < 1 {
		cfg.MaxAttempts = 1
	}
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Runner{repo: repo, analyzer: a, cfg: cfg, log: log, metrics: m}
}

// Run starts the dispatcher and Concurrency workers and blocks until ctx is done.
func (r *Runner) Run(ctx context.Context) error {
	if r.cfg.Concurrency < 1 {
		return nil
	}
	jobs := make(chan ports.ScanJob, r.cfg.Concurrency)
	g, ctx := errgroup.WithContext(ctx)

	// dispatcher
	g.Go(func() error {
		defer close(jobs)
		ticker := time.NewTicker(r.cfg.PollInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return nil
			case <-ticker.C:
				r.dispatch(ctx, jobs)
			}
		}
	})

	for i := 0; i < r.cfg.Concurrency; i++ {
		log := r.log.WithField("worker", i)
		g.Go(func() error {
			for job := range jobs {
				r.handle(ctx, log, job)
			}
			return nil
		})
	}
	return g.Wait()
}

func (r *Runner) dispatch(ctx context.Context, jobs chan<- ports.ScanJob) {
	for {
		job, found, err := r.repo.ClaimNext(ctx, r.cfg.Lease)
		if err != nil {
			if ctx.Err() == nil {
				r.log.WithError(err).Error("job claim error")
			}
			return
		}
		if !found {
			return
		}
		select {
		case jobs <- job:
		case <-ctx.Done():
			// the lease expires and another worker picks it up
			return
		}
	}
}

// ProcessOne claims and settles a single request synchronously. It reports
// whether a request was found.
func (r *Runner) ProcessOne(ctx context.Context) (bool, error) {
	job, found, err := r.repo.ClaimNext(ctx, r.cfg.Lease)
	if err != nil || !found {
		return false, err
	}
	return true, r.handle(ctx, r.log, job)
}

func (r *Runner) handle(ctx context.Context, log logrus.FieldLogger, job ports.ScanJob) error {
	log = log.WithFields(logrus.Fields{"scan_id": job.ID, "domain": job.Domain, "attempt": job.Attempts})
	obs, err := r.analyzer.Analyze(ctx, job.Domain)

	// settle even when shutting down
	settle, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
	defer cancel()

	if err == nil {
		if err := r.repo.Complete(settle, job.ID, obs); err != nil {
			log.WithError(err).Error("complete failed")
			return err
		}
		r.metrics.Processed(domain.ScanStatusOK)
		log.WithField("technologies", len(obs.Technologies)).Info("scan completed")
		return nil
	}

	if errors.Is(err, context.Canceled) || job.Attempts < r.cfg.MaxAttempts {
		if rerr := r.repo.Release(settle, job.ID, err.Error()); rerr != nil {
			log.WithError(rerr).Error("release failed")
			return rerr
		}
		r.metrics.Processed("retry")
		log.WithError(err).Warn("scan failed, will retry")
		return nil
	}

	if ferr := r.repo.Fail(settle, job.ID, obs, err.Error()); ferr != nil {
		log.WithError(ferr).Error("fail failed")
		return ferr
	}
	r.metrics.Processed(domain.ScanStatusError)
	log.WithError(err).Warn("scan failed permanently")
	return nil
}
