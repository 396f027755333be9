package reconciler_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"techsnap/internal/domain"
	applog "techsnap/internal/log"
	"techsnap/internal/reconciler"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type fakeEnqueuer struct {
	mu    sync.Mutex
	calls []string
	err   error
	// gates holds domains whose enqueue blocks until the channel is closed
	gates   map[string]chan struct{}
	entered chan string
}

func (f *fakeEnqueuer) Enqueue(_ context.Context, d string) error {
	f.mu.Lock()
	f.calls = append(f.calls, d)
	gate := f.gates[d]
	err := f.err
	f.mu.Unlock()
	if gate != nil {
		f.entered <- d
		<-gate
	}
	return err
}

type fakeFetcher struct {
	mu    sync.Mutex
	calls int
	ctxs  []context.Context
	next  func(call int) (domain.Snapshot, error)
}

func (f *fakeFetcher) Snapshot(ctx context.Context) (domain.Snapshot, error) {
	f.mu.Lock()
	f.calls++
	f.ctxs = append(f.ctxs, ctx)
	call, next := f.calls, f.next
	f.mu.Unlock()
	if next == nil {
		return domain.Snapshot{}, nil
	}
	return next(call)
}

func (f *fakeFetcher) Calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func snapshotOf(names ...string) domain.Snapshot {
	var s domain.Snapshot
	for _, n := range names {
		s.Domains = append(s.Domains, domain.DomainSummary{Domain: n, Status: domain.ScanStatusOK, Technologies: []string{"React"}})
	}
	return s
}

func newReconciler(t *testing.T, enq reconciler.Enqueuer, f reconciler.SnapshotFetcher, b reconciler.Backoff) (*reconciler.Reconciler, *clockwork.FakeClock) {
	t.Helper()
	clock := clockwork.NewFakeClock()
	r := reconciler.New(enq, f,
		reconciler.WithClock(clock),
		reconciler.WithBackoff(b),
		reconciler.WithLogger(applog.Discard()),
	)
	t.Cleanup(r.Close)
	return r, clock
}

// advance waits for the poll loop to arm its timer and then moves time forward.
func advance(t *testing.T, clock *clockwork.FakeClock, d time.Duration) {
	t.Helper()
	ctx, cancel := context.WithTimeout(t.Context(), 2*time.Second)
	defer cancel()
	require.NoError(t, clock.BlockUntilContext(ctx, 1))
	clock.Advance(d)
}

func eventuallyState(t *testing.T, r *reconciler.Reconciler, want reconciler.State) reconciler.Status {
	t.Helper()
	require.Eventually(t, func() bool { return r.Status().State == want }, 2*time.Second, 5*time.Millisecond,
		"want %s, have %+v", want, r.Status())
	return r.Status()
}

var fiveSeconds = reconciler.Backoff{InitialDelay: 5 * time.Second, MaxDelay: time.Minute, Multiplier: 2, MaxPolls: 3}

func TestPresenceResolution(t *testing.T) {
	enq := &fakeEnqueuer{}
	f := &fakeFetcher{next: func(call int) (domain.Snapshot, error) {
		if call == 1 {
			return snapshotOf("other.com"), nil
		}
		return snapshotOf("other.com", "ACME.com"), nil
	}}
	r, clock := newReconciler(t, enq, f, fiveSeconds)

	require.Equal(t, reconciler.Idle, r.Status().State)
	require.NoError(t, r.Submit(t.Context(), "acme.com"))
	st := r.Status()
	require.Equal(t, reconciler.Awaiting, st.State)
	require.Equal(t, "acme.com", st.Domain)
	pending, ok := r.Pending()
	require.True(t, ok)
	require.Equal(t, "acme.com", pending)

	advance(t, clock, 5*time.Second)
	require.Eventually(t, func() bool { return r.Status().Polls == 1 }, 2*time.Second, 5*time.Millisecond)
	require.Equal(t, reconciler.Awaiting, r.Status().State)
	require.Len(t, r.Known(), 1)

	advance(t, clock, 10*time.Second)
	st = eventuallyState(t, r, reconciler.Resolved)
	require.Equal(t, "acme.com", st.Domain)
	require.Equal(t, 2, st.Polls)
	require.Contains(t, st.Message, "complete")
	_, ok = r.Pending()
	require.False(t, ok)
	require.Len(t, r.Known(), 2)
	require.Equal(t, []string{"acme.com"}, enq.calls)
}

func TestResolvedWithFetchError(t *testing.T) {
	f := &fakeFetcher{next: func(int) (domain.Snapshot, error) {
		return domain.Snapshot{Domains: []domain.DomainSummary{{Domain: "down.com", Status: domain.ScanStatusError}}}, nil
	}}
	r, clock := newReconciler(t, &fakeEnqueuer{}, f, fiveSeconds)

	require.NoError(t, r.Submit(t.Context(), "down.com"))
	advance(t, clock, 5*time.Second)
	st := eventuallyState(t, r, reconciler.Resolved)
	require.Contains(t, st.Message, "could not be fetched")
}

func TestSingleShotGivesUp(t *testing.T) {
	f := &fakeFetcher{}
	b := fiveSeconds
	b.MaxPolls = 1
	r, clock := newReconciler(t, &fakeEnqueuer{}, f, b)

	require.NoError(t, r.Submit(t.Context(), "slow.com"))
	advance(t, clock, 5*time.Second)
	st := eventuallyState(t, r, reconciler.Failed)
	require.Equal(t, "slow.com", st.Domain)
	require.Equal(t, 1, st.Polls)
	require.Contains(t, st.Message, "did not complete after 1 checks")
	require.Equal(t, 1, f.Calls())
	_, ok := r.Pending()
	require.False(t, ok)

	// giving up releases the poll context
	f.mu.Lock()
	pollCtx := f.ctxs[0]
	f.mu.Unlock()
	require.Error(t, pollCtx.Err())
}

func TestBackoffSchedule(t *testing.T) {
	f := &fakeFetcher{}
	r, clock := newReconciler(t, &fakeEnqueuer{}, f, reconciler.Backoff{
		InitialDelay: 5 * time.Second,
		MaxDelay:     8 * time.Second,
		Multiplier:   2,
		MaxPolls:     3,
	})
	require.NoError(t, r.Submit(t.Context(), "acme.com"))

	advance(t, clock, 5*time.Second-time.Millisecond)
	require.Never(t, func() bool { return f.Calls() > 0 }, 50*time.Millisecond, 5*time.Millisecond)
	clock.Advance(time.Millisecond)
	require.Eventually(t, func() bool { return f.Calls() == 1 }, 2*time.Second, 5*time.Millisecond)

	// 10s is capped at 8s
	advance(t, clock, 8*time.Second)
	require.Eventually(t, func() bool { return f.Calls() == 2 }, 2*time.Second, 5*time.Millisecond)
	advance(t, clock, 8*time.Second)
	eventuallyState(t, r, reconciler.Failed)
	require.Equal(t, 3, f.Calls())
}

func TestFetchErrorKeepsAwaiting(t *testing.T) {
	f := &fakeFetcher{next: func(call int) (domain.Snapshot, error) {
		if call == 1 {
			return domain.Snapshot{}, domain.NewStorageError("domains", errors.New("down"))
		}
		return snapshotOf("acme.com"), nil
	}}
	r, clock := newReconciler(t, &fakeEnqueuer{}, f, fiveSeconds)
	require.NoError(t, r.Submit(t.Context(), "acme.com"))

	require.Equal(t, reconciler.Awaiting, (<-r.Updates()).State)

	advance(t, clock, 5*time.Second)
	require.Eventually(t, func() bool { return f.Calls() == 1 }, 2*time.Second, 5*time.Millisecond)
	require.Equal(t, reconciler.Awaiting, r.Status().State)

	// a failed check is still reported to subscribers
	select {
	case st := <-r.Updates():
		require.Equal(t, reconciler.Awaiting, st.State)
		require.Equal(t, 1, st.Polls)
	case <-time.After(2 * time.Second):
		t.Fatal("no update after a failed check")
	}

	advance(t, clock, 10*time.Second)
	eventuallyState(t, r, reconciler.Resolved)
}

func TestEnqueueFailure(t *testing.T) {
	tests := []struct {
		name string
		err  error
		msg  string
	}{
		{"storage", domain.NewStorageError("enqueue", errors.New("db error")), "Error while queuing scan"},
		{"transport", errors.New("connection refused"), "Error while queuing scan"},
		{"rejected", &domain.ValidationError{Msg: "domain required"}, "Scan failed: domain required"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := &fakeFetcher{}
			r, _ := newReconciler(t, &fakeEnqueuer{err: tt.err}, f, fiveSeconds)

			err := r.Submit(t.Context(), "acme.com")
			require.ErrorIs(t, err, tt.err)
			st := r.Status()
			require.Equal(t, reconciler.Failed, st.State)
			require.Equal(t, tt.msg, st.Message)
			_, ok := r.Pending()
			require.False(t, ok)
			require.Equal(t, 0, f.Calls())
		})
	}
}

func TestSubmitEmpty(t *testing.T) {
	enq := &fakeEnqueuer{}
	r, _ := newReconciler(t, enq, &fakeFetcher{}, fiveSeconds)

	err := r.Submit(t.Context(), "  ")
	require.True(t, domain.IsValidation(err))
	require.Equal(t, reconciler.Idle, r.Status().State)
	require.Empty(t, enq.calls)
}

func TestStaleTimerDiscarded(t *testing.T) {
	entered := make(chan struct{})
	release := make(chan struct{})
	f := &fakeFetcher{next: func(call int) (domain.Snapshot, error) {
		if call == 1 {
			close(entered)
			<-release
			return domain.Snapshot{}, nil
		}
		return snapshotOf("second.com"), nil
	}}
	b := fiveSeconds
	b.MaxPolls = 1
	r, clock := newReconciler(t, &fakeEnqueuer{}, f, b)

	require.NoError(t, r.Submit(t.Context(), "first.com"))
	advance(t, clock, 5*time.Second)
	<-entered

	require.NoError(t, r.Submit(t.Context(), "second.com"))
	close(release)

	// first.com's single poll came back empty; without the guard it would
	// give up and mark the request Failed
	require.Never(t, func() bool {
		st := r.Status()
		return st.State != reconciler.Awaiting || st.Domain != "second.com" || st.Polls != 0
	}, 100*time.Millisecond, 5*time.Millisecond)

	advance(t, clock, 5*time.Second)
	st := eventuallyState(t, r, reconciler.Resolved)
	require.Equal(t, "second.com", st.Domain)
}

func TestSupersededEnqueueIgnored(t *testing.T) {
	gate := make(chan struct{})
	enq := &fakeEnqueuer{
		gates:   map[string]chan struct{}{"first.com": gate},
		entered: make(chan string, 1),
	}
	r, _ := newReconciler(t, enq, &fakeFetcher{}, fiveSeconds)

	done := make(chan error, 1)
	go func() { done <- r.Submit(context.Background(), "first.com") }()
	require.Equal(t, "first.com", <-enq.entered)
	require.Equal(t, reconciler.Submitting, r.Status().State)

	require.NoError(t, r.Submit(t.Context(), "second.com"))
	close(gate)
	require.NoError(t, <-done)

	st := r.Status()
	require.Equal(t, reconciler.Awaiting, st.State)
	require.Equal(t, "second.com", st.Domain)
	pending, _ := r.Pending()
	require.Equal(t, "second.com", pending)
}

func TestRefresh(t *testing.T) {
	f := &fakeFetcher{next: func(int) (domain.Snapshot, error) { return snapshotOf("acme.com"), nil }}
	r, clock := newReconciler(t, &fakeEnqueuer{}, f, fiveSeconds)

	require.NoError(t, r.Refresh(t.Context()))
	require.Equal(t, reconciler.Idle, r.Status().State)
	require.Len(t, r.Known(), 1)

	require.NoError(t, r.Submit(t.Context(), "Acme.com"))
	require.NoError(t, r.Refresh(t.Context()))
	st := r.Status()
	require.Equal(t, reconciler.Resolved, st.State)
	require.Equal(t, "Acme.com", st.Domain)

	// a late tick from the cancelled poll loop must not disturb the result
	clock.Advance(time.Hour)
	require.Never(t, func() bool {
		st := r.Status()
		return st.State != reconciler.Resolved || st.Domain != "Acme.com"
	}, 50*time.Millisecond, 5*time.Millisecond)
}

func TestRefreshError(t *testing.T) {
	boom := domain.NewStorageError("domains", errors.New("down"))
	f := &fakeFetcher{next: func(int) (domain.Snapshot, error) { return domain.Snapshot{}, boom }}
	r, _ := newReconciler(t, &fakeEnqueuer{}, f, fiveSeconds)

	require.NoError(t, r.Submit(t.Context(), "acme.com"))
	require.ErrorIs(t, r.Refresh(t.Context()), boom)
	require.Equal(t, reconciler.Awaiting, r.Status().State)
}

func TestUpdatesLatestWins(t *testing.T) {
	r, _ := newReconciler(t, &fakeEnqueuer{}, &fakeFetcher{}, fiveSeconds)

	require.NoError(t, r.Submit(t.Context(), "acme.com"))
	st := <-r.Updates()
	require.Equal(t, reconciler.Awaiting, st.State)
	select {
	case st := <-r.Updates():
		t.Fatalf("unexpected update %+v", st)
	default:
	}
}

func TestClose(t *testing.T) {
	r := reconciler.New(&fakeEnqueuer{}, &fakeFetcher{}, reconciler.WithClock(clockwork.NewFakeClock()))
	require.NoError(t, r.Submit(t.Context(), "acme.com"))
	r.Close()
	r.Close()

	require.ErrorIs(t, r.Submit(t.Context(), "acme.com"), reconciler.ErrClosed)
	for range r.Updates() {
	}
}

func TestStateString(t *testing.T) {
	require.Equal(t, "awaiting", reconciler.Awaiting.String())
	require.True(t, reconciler.Resolved.Terminal())
	require.False(t, reconciler.Submitting.Terminal())
}
