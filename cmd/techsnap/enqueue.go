package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync/atomic"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"techsnap/internal/adapters/httpclient"
	"techsnap/internal/ports"
)

const enqueueParallelism = 4

func newEnqueueCmd() *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "enqueue [domain...]",
		Short: "queue many domains through the API without waiting for results",
		RunE: func(cmd *cobra.Command, args []string) error {
			domains := args
			if file != "" {
				more, err := readDomainsFile(cmd.InOrStdin(), file)
				if err != nil {
					return err
				}
				domains = append(domains, more...)
			}
			if len(domains) == 0 {
				return fmt.Errorf("no domains given")
			}
			client, err := httpclient.New(cfg.APIURL, nil)
			if err != nil {
				return err
			}
			return doEnqueue(cmd.Context(), cmd.OutOrStdout(), client, domains)
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "file with one domain per line (- for stdin)")
	cmd.Flags().String("api-url", "http://127.0.0.1:8080", "techsnap API base URL")
	return cmd
}

func readDomainsFile(stdin io.Reader, path string) ([]string, error) {
	if path == "-" {
		return readDomains(stdin)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return readDomains(f)
}

// readDomains reads one domain per line, skipping blank lines and # comments.
func readDomains(r io.Reader) ([]string, error) {
	var out []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		out = append(out, line)
	}
	return out, sc.Err()
}

// doEnqueue submits every domain and reports each outcome. A failed domain
// does not stop the others.
func doEnqueue(ctx context.Context, out io.Writer, q ports.Scanner, domains []string) error {
	var (
		g      errgroup.Group
		failed atomic.Int64
		lines  = make([]string, len(domains))
	)
	g.SetLimit(enqueueParallelism)
	for i, d := range domains {
		g.Go(func() error {
			if err := q.Enqueue(ctx, d); err != nil {
				failed.Add(1)
				logger.WithError(err).WithField("domain", d).Warn("enqueue failed")
				lines[i] = fmt.Sprintf("%s: %v", d, err)
				return nil
			}
			lines[i] = d + ": queued"
			return nil
		})
	}
	_ = g.Wait()
	for _, l := range lines {
		fmt.Fprintln(out, l)
	}
	if n := failed.Load(); n > 0 {
		return fmt.Errorf("%d of %d domains failed", n, len(domains))
	}
	return ctx.Err()
}
