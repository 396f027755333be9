package main

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	httpadapter "techsnap/internal/adapters/http"
	pg "techsnap/internal/adapters/postgres"
	"techsnap/internal/metrics"
	"techsnap/internal/ports"
	resultsvc "techsnap/internal/services/results"
	scansvc "techsnap/internal/services/scanner"
	"techsnap/internal/workers/analyzer"
)

func newServeCmd() *cobra.Command {
	var migrate bool
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "serve the scan and results API (and in-process workers when scan_workers > 0)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return doServe(cmd.Context(), migrate)
		},
	}
	cmd.Flags().String("listen", ":8080", "listen address")
	cmd.Flags().Int("workers", 0, "in-process analyzer workers")
	cmd.Flags().BoolVar(&migrate, "migrate", false, "apply migrations before serving")
	return cmd
}

func doServe(ctx context.Context, migrate bool) error {
	if err := requireDatabase(); err != nil {
		return err
	}
	db, err := pg.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer db.Close()

	if migrate {
		if err := runMigrations(ctx, db); err != nil {
			return err
		}
	}

	// Wire repositories to services (ports)
	var _ ports.QueueRepository = db
	var _ ports.ResultRepository = db
	var _ ports.JobRepository = db

	m := metrics.New(true)
	scanner := scansvc.New(db, logger, m)
	results := resultsvc.New(db, logger, m)

	var runner *analyzer.Runner
	if cfg.ScanWorkers > 0 {
		if runner, err = newRunner(db, m, cfg.ScanWorkers); err != nil {
			return err
		}
	}

	srv := httpadapter.New(scanner, results, db, m, logger)
	r := chi.NewRouter()
	r.Mount("/", srv.Routes())

	httpSrv := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.WithField("addr", cfg.ListenAddr).Info("listening")
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return httpSrv.Shutdown(shutdownCtx)
	})

	// Optional background workers
	if runner != nil {
		g.Go(func() error { return runner.Run(ctx) })
		logger.WithField("workers", cfg.ScanWorkers).Info("scan workers started")
	}
	return g.Wait()
}
