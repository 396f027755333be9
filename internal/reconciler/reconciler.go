// Package reconciler tracks a single in-flight scan request from the client's
// side. There is no completion signal: a scan is considered done once its
// domain shows up in a result snapshot.
package reconciler

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/jonboulle/clockwork"
	"github.com/sirupsen/logrus"

	"techsnap/internal/domain"
)

type State int

const (
	Idle State = iota
	Submitting
	Awaiting
	Resolved
	Failed
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Submitting:
		return "submitting"
	case Awaiting:
		return "awaiting"
	case Resolved:
		return "resolved"
	case Failed:
		return "failed"
	}
	return fmt.Sprintf("state(%d)", int(s))
}

// Terminal reports whether no request is in flight.
func (s State) Terminal() bool { return s == Idle || s == Resolved || s == Failed }

// Status is what a UI shows. Domain is the pending domain while Submitting or
// Awaiting and the last settled domain afterwards.
type Status struct {
	State   State
	Domain  string
	Message string
	Polls   int
}

type Enqueuer interface {
	Enqueue(ctx context.Context, domain string) error
}

type SnapshotFetcher interface {
	Snapshot(ctx context.Context) (domain.Snapshot, error)
}

// Backoff controls polling while Awaiting. MaxPolls of 1 gives a single
// deferred refresh after InitialDelay.
type Backoff struct {
	InitialDelay time.Duration
	MaxDelay     time.Duration
	Multiplier   float64
	MaxPolls     int
}

func DefaultBackoff() Backoff {
	return Backoff{
		InitialDelay: 5 * time.Second,
		MaxDelay:     time.Minute,
		Multiplier:   2,
		MaxPolls:     6,
	}
}

var ErrClosed = errors.New("reconciler closed")

type Option func(*Reconciler)

func WithClock(c clockwork.Clock) Option { return func(r *Reconciler) { r.clock = c } }

func WithBackoff(b Backoff) Option { return func(r *Reconciler) { r.backoff = b } }

func WithLogger(l logrus.FieldLogger) Option { return func(r *Reconciler) { r.log = l } }

type Reconciler struct {
	enq     Enqueuer
	snaps   SnapshotFetcher
	clock   clockwork.Clock
	backoff Backoff
	log     logrus.FieldLogger

	mu sync.Mutex
	// gen identifies the live submission; anything carrying an older value is stale.
	gen     uint64
	status  Status
	pending string
	known   []domain.DomainSummary
	cancel  context.CancelFunc
	closed  bool
	updates chan Status

	wg sync.WaitGroup
}

func New(enq Enqueuer, snaps SnapshotFetcher, opts ...Option) *Reconciler {
	r := &Reconciler{
		enq:     enq,
		snaps:   snaps,
		clock:   clockwork.NewRealClock(),
		backoff: DefaultBackoff(),
		log:     logrus.StandardLogger(),
		updates: make(chan Status, 1),
	}
	for _, o := range opts {
		o(r)
	}
	if r.backoff.MaxPolls < 1 {
		r.backoff.MaxPolls = 1
	}
	if r.backoff.Multiplier < 1 {
		r.backoff.Multiplier = 1
	}
	if r.backoff.MaxDelay < r.backoff.InitialDelay {
		r.backoff.MaxDelay = r.backoff.InitialDelay
	}
	return r
}

// Status returns the current status.
func (r *Reconciler) Status() Status {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.status
}

// Pending returns the domain currently awaited, if any.
func (r *Reconciler) Pending() (string, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.pending, r.pending != ""
}

// Known returns the domains of the most recent snapshot.
func (r *Reconciler) Known() []domain.DomainSummary {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.DomainSummary, len(r.known))
	copy(out, r.known)
	return out
}

// Updates delivers status changes. Only the latest unread status is kept.
// The channel is closed by Close.
func (r *Reconciler) Updates() <-chan Status { return r.updates }

// Submit enqueues name and starts waiting for it. A previous pending domain
// is dropped; its poll loop is cancelled and any late result ignored.
func (r *Reconciler) Submit(ctx context.Context, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return &domain.ValidationError{Field: "domain", Msg: "required"}
	}

	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return ErrClosed
	}
	r.gen++
	gen := r.gen
	r.stopPollLocked()
	r.pending = name
	r.setLocked(Status{State: Submitting, Domain: name, Message: "Queuing scan..."})
	r.mu.Unlock()

	err := r.enq.Enqueue(ctx, name)

	r.mu.Lock()
	defer r.mu.Unlock()
	if gen != r.gen || r.closed {
		r.log.WithField("domain", name).Debug(domain.ErrStaleState.Error() + ": enqueue result discarded")
		return nil
	}
	if err != nil {
		r.pending = ""
		r.gen++
		r.setLocked(Status{State: Failed, Domain: name, Message: failureMessage(err)})
		return err
	}

	r.setLocked(Status{State: Awaiting, Domain: name, Message: fmt.Sprintf("Domain %q queued for scanning", name)})
	pollCtx, cancel := context.WithCancel(context.Background())
	r.cancel = cancel
	r.wg.Add(1)
	go r.poll(pollCtx, gen, name)
	return nil
}

// Refresh fetches a snapshot now. It may resolve the pending domain.
func (r *Reconciler) Refresh(ctx context.Context) error {
	snap, err := r.snaps.Snapshot(ctx)
	if err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return ErrClosed
	}
	r.known = snap.Domains
	if r.pending != "" && r.status.State == Awaiting {
		if d, ok := find(snap.Domains, r.pending); ok {
			r.resolveLocked(d)
		}
	}
	return nil
}

// Close stops polling and waits for background work to exit.
func (r *Reconciler) Close() {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return
	}
	r.closed = true
	r.gen++
	r.stopPollLocked()
	r.mu.Unlock()

	r.wg.Wait()
	close(r.updates)
}

func (r *Reconciler) poll(ctx context.Context, gen uint64, name string) {
	defer r.wg.Done()
	log := r.log.WithField("domain", name)

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = r.backoff.InitialDelay
	b.MaxInterval = r.backoff.MaxDelay
	b.Multiplier = r.backoff.Multiplier
	b.RandomizationFactor = 0
	b.MaxElapsedTime = 0
	b.Reset()

	for attempt := 1; attempt <= r.backoff.MaxPolls; attempt++ {
		select {
		case <-ctx.Done():
			return
		case <-r.clock.After(b.NextBackOff()):
		}

		snap, err := r.snaps.Snapshot(ctx)
		done, err := r.apply(gen, attempt, snap, err)
		if errors.Is(err, domain.ErrStaleState) {
			log.Debug("stale poll discarded")
			return
		}
		if err != nil {
			log.WithError(err).WithField("attempt", attempt).Warn("snapshot fetch failed")
		}
		if done {
			return
		}
	}
	r.giveUp(gen, name)
}

func (r *Reconciler) apply(gen uint64, attempt int, snap domain.Snapshot, fetchErr error) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if gen != r.gen {
		return false, domain.ErrStaleState
	}
	r.status.Polls = attempt
	if fetchErr != nil {
		r.setLocked(r.status)
		return false, fetchErr
	}
	r.known = snap.Domains
	if d, ok := find(snap.Domains, r.pending); ok {
		r.resolveLocked(d)
		return true, nil
	}
	r.setLocked(r.status)
	return false, nil
}

func (r *Reconciler) giveUp(gen uint64, name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if gen != r.gen {
		return
	}
	polls := r.status.Polls
	r.pending = ""
	r.gen++
	r.stopPollLocked()
	r.setLocked(Status{
		State:   Failed,
		Domain:  name,
		Polls:   polls,
		Message: fmt.Sprintf("Scan of %q did not complete after %d checks", name, polls),
	})
}

func (r *Reconciler) resolveLocked(d domain.DomainSummary) {
	name := r.pending
	polls := r.status.Polls
	r.pending = ""
	r.gen++
	r.stopPollLocked()

	msg := fmt.Sprintf("Scan of %q complete: %d technologies", name, len(d.Technologies))
	if d.Status == domain.ScanStatusError {
		msg = fmt.Sprintf("Scan of %q complete but the site could not be fetched", name)
	}
	r.setLocked(Status{State: Resolved, Domain: name, Polls: polls, Message: msg})
}

func (r *Reconciler) stopPollLocked() {
	if r.cancel != nil {
		r.cancel()
		r.cancel = nil
	}
}

func (r *Reconciler) setLocked(s Status) {
	r.status = s
	if r.closed {
		return
	}
	select {
	case <-r.updates:
	default:
	}
	select {
	case r.updates <- s:
	default:
	}
}

func find(domains []domain.DomainSummary, name string) (domain.DomainSummary, bool) {
	for _, d := range domains {
		if strings.EqualFold(d.Domain, name) {
			return d, true
		}
	}
	return domain.DomainSummary{}, false
}

func failureMessage(err error) string {
	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		return "Scan failed: " + ve.Error()
	}
	return "Error while queuing scan"
}
