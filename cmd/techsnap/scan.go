package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"techsnap/internal/adapters/httpclient"
	"techsnap/internal/reconciler"
)

func newScanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scan <domain>",
		Short: "queue a domain through the API and wait for its results",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return doScan(cmd.Context(), cmd.OutOrStdout(), args[0])
		},
	}
	cmd.Flags().String("api-url", "http://127.0.0.1:8080", "techsnap API base URL")
	return cmd
}

func doScan(ctx context.Context, out io.Writer, name string) error {
	client, err := httpclient.New(cfg.APIURL, nil)
	if err != nil {
		return err
	}
	rec := reconciler.New(client, client,
		reconciler.WithLogger(logger),
		reconciler.WithBackoff(reconciler.Backoff{
			InitialDelay: cfg.Reconcile.InitialDelay,
			MaxDelay:     cfg.Reconcile.MaxDelay,
			Multiplier:   cfg.Reconcile.Multiplier,
			MaxPolls:     cfg.Reconcile.MaxPolls,
		}),
	)
	defer rec.Close()

	p := newPrinter(out)
	if err := rec.Submit(ctx, name); err != nil {
		p.line(rec.Status())
		return err
	}

	for {
		select {
		case <-ctx.Done():
			p.done()
			return ctx.Err()
		case st, ok := <-rec.Updates():
			if !ok {
				return nil
			}
			p.line(st)
			switch st.State {
			case reconciler.Resolved:
				p.done()
				return printWebsite(ctx, out, client, st.Domain)
			case reconciler.Failed:
				p.done()
				return fmt.Errorf("%s", st.Message)
			}
		}
	}
}

func printWebsite(ctx context.Context, out io.Writer, client *httpclient.Client, name string) error {
	w, err := client.Website(ctx, name)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "domain:  %s\n", w.Domain)
	fmt.Fprintf(out, "status:  %s\n", w.Status)
	if w.Company != nil {
		fmt.Fprintf(out, "company: %s\n", *w.Company)
	}
	if w.Hosting != nil {
		fmt.Fprintf(out, "hosting: %s\n", *w.Hosting)
	}
	fmt.Fprintf(out, "techs:   %s\n", strings.Join(w.Technologies, ", "))
	return nil
}

// printer rewrites one status line on a terminal and prints one line per
// update otherwise.
type printer struct {
	out  io.Writer
	tty  bool
	last string
}

func newPrinter(out io.Writer) *printer {
	tty := false
	if f, ok := out.(*os.File); ok {
		tty = term.IsTerminal(int(f.Fd()))
	}
	return &printer{out: out, tty: tty}
}

func (p *printer) line(st reconciler.Status) {
	msg := st.Message
	if st.State == reconciler.Awaiting && st.Polls > 0 {
		msg = fmt.Sprintf("%s (check %d)", msg, st.Polls)
	}
	if msg == p.last {
		return
	}
	p.last = msg
	if p.tty {
		fmt.Fprintf(p.out, "\r\033[K%s", msg)
		return
	}
	fmt.Fprintln(p.out, msg)
}

func (p *printer) done() {
	if p.tty && p.last != "" {
		fmt.Fprintln(p.out)
	}
}
