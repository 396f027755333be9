package main

import (
	"context"

	"github.com/spf13/cobra"

	pg "techsnap/internal/adapters/postgres"
	"techsnap/internal/detect"
	"techsnap/internal/hosting"
	"techsnap/internal/metrics"
	"techsnap/internal/whois"
	"techsnap/internal/workers/analyzer"
)

func newWorkerCmd() *cobra.Command {
	var once bool
	cmd := &cobra.Command{
		Use:   "worker",
		Short: "run analyzer workers against the scan queue",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return doWorker(cmd.Context(), once)
		},
	}
	cmd.Flags().Int("workers", 1, "number of concurrent workers")
	cmd.Flags().BoolVar(&once, "once", false, "drain the pending queue once and exit")
	return cmd
}

func doWorker(ctx context.Context, once bool) error {
	if err := requireDatabase(); err != nil {
		return err
	}
	db, err := pg.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer db.Close()

	workers := workerConcurrency()
	runner, err := newRunner(db, metrics.New(false), workers)
	if err != nil {
		return err
	}
	if once {
		n := 0
		for {
			found, err := runner.ProcessOne(ctx)
			if err != nil {
				return err
			}
			if !found {
				logger.WithField("processed", n).Info("queue drained")
				return nil
			}
			n++
		}
	}
	logger.WithField("workers", workers).Info("scan workers started")
	return runner.Run(ctx)
}

// workerConcurrency is scan_workers for the worker command. The shared
// default of 0 means "no in-process workers" for serve; a dedicated worker
// always runs at least one.
func workerConcurrency() int {
	return max(cfg.ScanWorkers, 1)
}

func newRunner(db *pg.DB, m *metrics.Metrics, workers int) (*analyzer.Runner, error) {
	detector, err := detect.Default()
	if err != nil {
		return nil, err
	}
	var resolver analyzer.HostingResolver
	if r, err := hosting.NewResolver(cfg.DNSServer, cfg.FetchTimeout); err != nil {
		logger.WithError(err).Warn("hosting lookup disabled")
	} else {
		resolver = r
	}
	var company analyzer.CompanyResolver
	if cfg.WhoisServer != "" {
		company = whois.New(cfg.WhoisServer, cfg.FetchTimeout)
	} else {
		logger.Info("whois lookup disabled")
	}
	fetcher := analyzer.NewFetcher(cfg.FetchTimeout, cfg.FetchRate, cfg.UserAgent)
	processor := analyzer.NewProcessor(fetcher, detector, resolver, company, logger)
	return analyzer.NewRunner(db, processor, analyzer.Config{
		Concurrency:  workers,
		PollInterval: cfg.PollInterval,
		Lease:        cfg.ClaimLease,
		MaxAttempts:  cfg.MaxAttempts,
	}, logger, m), nil
}
