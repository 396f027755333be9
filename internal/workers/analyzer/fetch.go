package analyzer

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"techsnap/internal/detect"
)

const maxBody = 2 << 20

// Fetcher downloads a domain's landing page, trying https before http.
type Fetcher struct {
	client    *http.Client
	limiter   *rate.Limiter
	userAgent string
}

// NewFetcher limits outgoing page loads to perSecond across all workers.
// perSecond <= 0 disables the limit.
func NewFetcher(timeout time.Duration, perSecond float64, userAgent string) *Fetcher {
	limit := rate.Inf
	if perSecond > 0 {
		limit = rate.Limit(perSecond)
	}
	return &Fetcher{
		client:    &http.Client{Timeout: timeout},
		limiter:   rate.NewLimiter(limit, 1),
		userAgent: userAgent,
	}
}

// Result is a fetched page and where it came from.
type Result struct {
	URL        string
	StatusCode int
	Page       detect.Page
}

func (f *Fetcher) Fetch(ctx context.Context, domain string) (Result, error) {
	var lastErr error
	for _, scheme := range []string{"https", "http"} {
		url := scheme + "://" + domain
		res, err := f.get(ctx, url)
		if err == nil {
			return res, nil
		}
		if ctx.Err() != nil {
			return Result{URL: url}, ctx.Err()
		}
		lastErr = err
	}
	return Result{URL: "https://" + domain}, lastErr
}

func (f *Fetcher) get(ctx context.Context, url string) (Result, error) {
	if err := f.limiter.Wait(ctx); err != nil {
		return Result{}, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return Result{}, err
	}
	if f.userAgent != "" {
		req.Header.Set("User-Agent", f.userAgent)
	}
	resp, err := f.client.Do(req)
	if err != nil {
		return Result{}, fmt.Errorf("get %s: %w", url, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBody))
	if err != nil {
		return Result{}, fmt.Errorf("read %s: %w", url, err)
	}
	return Result{
		URL:        resp.Request.URL.String(),
		StatusCode: resp.StatusCode,
		Page:       detect.Page{Body: body, Header: resp.Header},
	}, nil
}
