package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"techsnap/internal/config"
	applog "techsnap/internal/log"
)

var (
	v      = config.New()
	cfg    config.Config
	logger *logrus.Logger

	flagConfigFile string
)

func main() {
	rootCmd.PersistentFlags().StringVar(&flagConfigFile, "config", "", "config file (default is ./techsnap.yaml if present)")
	rootCmd.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", "json", "log format (json, text)")
	rootCmd.PersistentFlags().String("database-url", "", "postgres connection string (or DATABASE_URL)")
	bindFlag(rootCmd, "log.level", "log-level")
	bindFlag(rootCmd, "log.format", "log-format")
	bindFlag(rootCmd, "database_url", "database-url")

	rootCmd.PersistentPreRunE = initTechsnap

	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newWorkerCmd())
	rootCmd.AddCommand(newMigrateCmd())
	rootCmd.AddCommand(newScanCmd())
	rootCmd.AddCommand(newEnqueueCmd())
	rootCmd.AddCommand(versionCmd)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		if logger != nil {
			logger.WithError(err).Error("techsnap failed")
		} else {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		stop()
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:           "techsnap",
	Short:         "Queue domains for technology scans and browse the results",
	SilenceUsage:  true,
	SilenceErrors: true,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "print build information",
	Run: func(cmd *cobra.Command, _ []string) {
		info, ok := debug.ReadBuildInfo()
		if !ok {
			fmt.Fprintln(cmd.OutOrStdout(), "techsnap: version info not available")
			return
		}
		fmt.Fprintf(cmd.OutOrStdout(), "techsnap: %s\n", info.Main.Version)
		fmt.Fprintf(cmd.OutOrStdout(), "go:       %s\n", info.GoVersion)
		for _, s := range info.Settings {
			if s.Key == "vcs.revision" {
				fmt.Fprintf(cmd.OutOrStdout(), "commit:   %s\n", s.Value)
			}
		}
	},
}

// localKeys maps per-command flags onto config keys. They are bound only for
// the command being executed since several commands share a key.
var localKeys = map[string]string{
	"listen":  "listen_addr",
	"workers": "scan_workers",
	"api-url": "api_url",
}

func initTechsnap(cmd *cobra.Command, _ []string) error {
	for flag, key := range localKeys {
		if f := cmd.Flags().Lookup(flag); f != nil {
			if err := v.BindPFlag(key, f); err != nil {
				return err
			}
		}
	}
	if err := config.ReadFile(v, flagConfigFile); err != nil {
		return err
	}
	var err error
	cfg, err = config.Load(v)
	if err != nil && !errors.Is(err, config.ErrNoDatabase) {
		return err
	}
	logger = applog.New(cfg.Log)
	logger.WithField("env", cfg.Env).Debug("configuration loaded")
	return nil
}

// requireDatabase is for commands that need the store.
func requireDatabase() error {
	if cfg.DatabaseURL == "" {
		return config.ErrNoDatabase
	}
	return nil
}

func bindFlag(cmd *cobra.Command, key, flag string) {
	f := cmd.PersistentFlags().Lookup(flag)
	if f == nil {
		f = cmd.Flags().Lookup(flag)
	}
	if err := v.BindPFlag(key, f); err != nil {
		panic(err)
	}
}
