package httpadapter_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	httpadapter "techsnap/internal/adapters/http"
	api "techsnap/internal/api"
	"techsnap/internal/domain"
	applog "techsnap/internal/log"
	"techsnap/internal/metrics"
)

type fakeScanner struct {
	got []string
	err error
}

func (f *fakeScanner) Enqueue(_ context.Context, d string) error {
	f.got = append(f.got, d)
	if strings.TrimSpace(d) == "" {
		return &domain.ValidationError{Field: "domain", Msg: "required"}
	}
	return f.err
}

type fakeResults struct {
	snap    domain.Snapshot
	website map[string]domain.WebsiteDetail
	stats   []domain.CategoryStats
	err     error

	filter domain.WebsiteFilter
	limit  int
}

func (f *fakeResults) Snapshot(context.Context) (domain.Snapshot, error) { return f.snap, f.err }

func (f *fakeResults) Website(_ context.Context, name string) (domain.WebsiteDetail, error) {
	if f.err != nil {
		return domain.WebsiteDetail{}, f.err
	}
	w, ok := f.website[name]
	if !ok {
		return w, domain.ErrNotFound
	}
	return w, nil
}

func (f *fakeResults) Websites(_ context.Context, flt domain.WebsiteFilter) (domain.WebsitePage, error) {
	f.filter = flt
	if f.err != nil {
		return domain.WebsitePage{}, f.err
	}
	if flt.PerPage > domain.MaxPerPage {
		return domain.WebsitePage{}, &domain.ValidationError{Field: "per_page", Msg: "must be at most 200"}
	}
	return domain.WebsitePage{Items: f.sites(), Page: max(flt.Page, 1), PerPage: max(flt.PerPage, 1)}, nil
}

func (f *fakeResults) Latest(_ context.Context, limit int) ([]domain.WebsiteDetail, error) {
	f.limit = limit
	if f.err != nil {
		return nil, f.err
	}
	if limit < 0 {
		return nil, &domain.ValidationError{Field: "limit", Msg: "must be positive"}
	}
	return f.sites(), nil
}

func (f *fakeResults) Stats(context.Context) ([]domain.CategoryStats, error) { return f.stats, f.err }

func (f *fakeResults) sites() []domain.WebsiteDetail {
	out := []domain.WebsiteDetail{}
	for _, w := range f.website {
		out = append(out, w)
	}
	return out
}

type fakePinger struct{ err error }

func (p fakePinger) Ping(context.Context) error { return p.err }

func newServer(t *testing.T, sc *fakeScanner, rs *fakeResults, db httpadapter.Pinger) *httptest.Server {
	t.Helper()
	srv := httpadapter.New(sc, rs, db, metrics.New(false), applog.Discard())
	ts := httptest.NewServer(srv.Routes())
	t.Cleanup(ts.Close)
	return ts
}

func do(t *testing.T, method, url, body string) (int, map[string]any) {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req, err := http.NewRequestWithContext(t.Context(), method, url, r)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer func() {
		_ = resp.Body.Close()
	}()
	require.Equal(t, "application/json", resp.Header.Get("Content-Type"))
	var out map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return resp.StatusCode, out
}

func TestPostScan(t *testing.T) {
	t.Parallel()
	sc := &fakeScanner{}
	ts := newServer(t, sc, &fakeResults{}, nil)

	tests := []struct {
		name   string
		method string
		body   string
		code   int
		want   map[string]any
	}{
		{"queued", http.MethodPost, `{"domain":"Example.com"}`, 200, map[string]any{"status": "queued"}},
		{"queued again", http.MethodPost, `{"domain":"example.com"}`, 200, map[string]any{"status": "queued"}},
		{"missing", http.MethodPost, `{}`, 400, map[string]any{"error": "domain required"}},
		{"not a string", http.MethodPost, `{"domain":42}`, 400, map[string]any{"error": "invalid request body"}},
		{"empty", http.MethodPost, `{"domain":"  "}`, 400, map[string]any{"error": "domain required"}},
		{"malformed", http.MethodPost, `{"domain":`, 400, map[string]any{"error": "invalid request body"}},
		{"get", http.MethodGet, "", 405, map[string]any{"error": "Method not allowed"}},
		{"put", http.MethodPut, `{"domain":"a.com"}`, 405, map[string]any{"error": "Method not allowed"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, out := do(t, tt.method, ts.URL+"/api/scan", tt.body)
			require.Equal(t, tt.code, code)
			require.Equal(t, tt.want, out)
		})
	}
}

func TestPostScanStorageError(t *testing.T) {
	t.Parallel()
	sc := &fakeScanner{err: domain.NewStorageError("enqueue", errors.New("connection reset"))}
	ts := newServer(t, sc, &fakeResults{}, nil)

	code, out := do(t, http.MethodPost, ts.URL+"/api/scan", `{"domain":"acme.com"}`)
	require.Equal(t, http.StatusInternalServerError, code)
	require.Equal(t, map[string]any{"error": "db error"}, out)
}

func TestGetTechs(t *testing.T) {
	t.Parallel()
	company := "Acme Inc"
	rs := &fakeResults{snap: domain.Snapshot{
		Technologies: []domain.TechnologyCount{{Name: "React", Category: "JavaScript framework", Count: 3}},
		Domains: []domain.DomainSummary{
			{Domain: "acme.com", Company: &company, Status: "ok", Technologies: []string{"Nginx", "React"}},
			{Domain: "empty.com", Status: "ok"},
		},
	}}
	ts := newServer(t, &fakeScanner{}, rs, nil)

	resp, err := http.Get(ts.URL + "/api/techs")
	require.NoError(t, err)
	defer func() {
		_ = resp.Body.Close()
	}()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var snap api.Snapshot
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&snap))
	require.Equal(t, []api.Tech{{Name: "React", Category: "JavaScript framework", Cnt: 3}}, snap.Techs)
	require.Len(t, snap.Domains, 2)
	require.Equal(t, "Acme Inc", *snap.Domains[0].Company)
	require.Nil(t, snap.Domains[0].Hosting)
	require.Equal(t, []string{"Nginx", "React"}, snap.Domains[0].Techs)
	require.NotNil(t, snap.Domains[1].Techs)
	require.Empty(t, snap.Domains[1].Techs)
}

func TestGetTechsStorageError(t *testing.T) {
	t.Parallel()
	rs := &fakeResults{err: domain.NewStorageError("domains", errors.New("timeout"))}
	ts := newServer(t, &fakeScanner{}, rs, nil)

	code, out := do(t, http.MethodGet, ts.URL+"/api/techs", "")
	require.Equal(t, http.StatusInternalServerError, code)
	require.Equal(t, "db error", out["error"])
}

func TestGetWebsite(t *testing.T) {
	t.Parallel()
	rs := &fakeResults{website: map[string]domain.WebsiteDetail{
		"acme.com": {
			DomainSummary: domain.DomainSummary{Domain: "acme.com", Status: "ok", Technologies: []string{"React"}},
			URL:           "https://acme.com/",
		},
	}}
	ts := newServer(t, &fakeScanner{}, rs, nil)

	code, out := do(t, http.MethodGet, ts.URL+"/api/websites/acme.com", "")
	require.Equal(t, http.StatusOK, code)
	require.Equal(t, "acme.com", out["domain"])
	require.Equal(t, "https://acme.com/", out["url"])

	code, _ = do(t, http.MethodGet, ts.URL+"/api/websites/nope.com", "")
	require.Equal(t, http.StatusNotFound, code)
}

func TestListWebsites(t *testing.T) {
	t.Parallel()
	rs := &fakeResults{website: map[string]domain.WebsiteDetail{
		"acme.com": {
			DomainSummary: domain.DomainSummary{Domain: "acme.com", Status: "ok", Technologies: []string{"React"}},
			URL:           "https://acme.com/",
		},
	}}
	ts := newServer(t, &fakeScanner{}, rs, nil)

	resp, err := http.Get(ts.URL + "/api/websites?page=2&per_page=5&tech=React&tech=Nginx")
	require.NoError(t, err)
	defer func() {
		_ = resp.Body.Close()
	}()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var page api.WebsitePage
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&page))
	require.Equal(t, 2, page.Page)
	require.Equal(t, 5, page.PerPage)
	require.Len(t, page.Items, 1)
	require.Equal(t, "https://acme.com/", page.Items[0].Url)
	require.Equal(t, domain.WebsiteFilter{Page: 2, PerPage: 5, Technologies: []string{"React", "Nginx"}}, rs.filter)
}

func TestListWebsitesBadParams(t *testing.T) {
	t.Parallel()
	ts := newServer(t, &fakeScanner{}, &fakeResults{}, nil)

	tests := []struct {
		name  string
		query string
		want  string
	}{
		{"zero page", "page=0", "page must be positive"},
		{"zero per_page", "per_page=0", "per_page must be positive"},
		{"too many", "per_page=500", "per_page must be at most 200"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, out := do(t, http.MethodGet, ts.URL+"/api/websites?"+tt.query, "")
			require.Equal(t, http.StatusBadRequest, code)
			require.Equal(t, tt.want, out["error"])
		})
	}

	code, out := do(t, http.MethodGet, ts.URL+"/api/websites?page=abc", "")
	require.Equal(t, http.StatusBadRequest, code)
	require.Contains(t, out["error"], "page")
}

func TestLatestWebsites(t *testing.T) {
	t.Parallel()
	rs := &fakeResults{website: map[string]domain.WebsiteDetail{
		"new.com": {DomainSummary: domain.DomainSummary{Domain: "new.com", Status: "ok"}},
	}}
	ts := newServer(t, &fakeScanner{}, rs, nil)

	resp, err := http.Get(ts.URL + "/api/websites/latest?limit=3")
	require.NoError(t, err)
	defer func() {
		_ = resp.Body.Close()
	}()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var sites []api.Website
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&sites))
	require.Len(t, sites, 1)
	require.Equal(t, "new.com", sites[0].Domain)
	require.NotNil(t, sites[0].Techs)
	require.Equal(t, 3, rs.limit)

	code, out := do(t, http.MethodGet, ts.URL+"/api/websites/latest?limit=0", "")
	require.Equal(t, http.StatusBadRequest, code)
	require.Equal(t, "limit must be positive", out["error"])

	code, out = do(t, http.MethodGet, ts.URL+"/api/websites/latest?limit=-1", "")
	require.Equal(t, http.StatusBadRequest, code)
	require.Equal(t, "limit must be positive", out["error"])
}

func TestGetStats(t *testing.T) {
	t.Parallel()
	rs := &fakeResults{stats: []domain.CategoryStats{
		{Category: "Web server", Technologies: []domain.TechnologyCount{
			{Name: "Nginx", Category: "Web server", Count: 4},
			{Name: "Apache", Category: "Web server", Count: 1},
		}},
	}}
	ts := newServer(t, &fakeScanner{}, rs, nil)

	resp, err := http.Get(ts.URL + "/api/stats")
	require.NoError(t, err)
	defer func() {
		_ = resp.Body.Close()
	}()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var stats api.Stats
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&stats))
	require.Equal(t, api.Stats{Categories: []api.CategoryStats{
		{Category: "Web server", Technologies: []api.TechCount{{Name: "Nginx", Count: 4}, {Name: "Apache", Count: 1}}},
	}}, stats)
}

func TestGetStatsStorageError(t *testing.T) {
	t.Parallel()
	rs := &fakeResults{err: domain.NewStorageError("stats", errors.New("timeout"))}
	ts := newServer(t, &fakeScanner{}, rs, nil)

	code, out := do(t, http.MethodGet, ts.URL+"/api/stats", "")
	require.Equal(t, http.StatusInternalServerError, code)
	require.Equal(t, "db error", out["error"])
}

func TestHealthz(t *testing.T) {
	t.Parallel()
	t.Run("ok", func(t *testing.T) {
		ts := newServer(t, &fakeScanner{}, &fakeResults{}, fakePinger{})
		code, out := do(t, http.MethodGet, ts.URL+"/healthz", "")
		require.Equal(t, http.StatusOK, code)
		require.Equal(t, "ok", out["status"])
	})
	t.Run("store down", func(t *testing.T) {
		ts := newServer(t, &fakeScanner{}, &fakeResults{}, fakePinger{err: errors.New("down")})
		code, _ := do(t, http.MethodGet, ts.URL+"/healthz", "")
		require.Equal(t, http.StatusServiceUnavailable, code)
	})
}

func TestMetrics(t *testing.T) {
	t.Parallel()
	ts := newServer(t, &fakeScanner{}, &fakeResults{}, nil)

	resp, err := http.Get(ts.URL + "/metrics")
	require.NoError(t, err)
	defer func() {
		_ = resp.Body.Close()
	}()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.Contains(t, string(body), "techsnap_snapshot_seconds")
}
