package httpclient_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"techsnap/internal/adapters/httpclient"
	api "techsnap/internal/api"
	"techsnap/internal/domain"
)

func newClient(t *testing.T, url string) *httpclient.Client {
	t.Helper()
	c, err := httpclient.New(url, nil)
	require.NoError(t, err)
	return c
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func TestEnqueue(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		code  int
		body  any
		check func(t *testing.T, err error)
	}{
		{"queued", 200, api.ScanResponse{Status: api.Queued}, func(t *testing.T, err error) {
			require.NoError(t, err)
		}},
		{"no ack", 200, map[string]string{"status": "accepted"}, func(t *testing.T, err error) {
			require.Error(t, err)
			require.False(t, domain.IsValidation(err))
		}},
		{"bad request", 400, api.ErrorResponse{Error: "domain required"}, func(t *testing.T, err error) {
			require.True(t, domain.IsValidation(err))
			require.Equal(t, "domain required", err.Error())
		}},
		{"db error", 500, api.ErrorResponse{Error: "db error"}, func(t *testing.T, err error) {
			require.True(t, domain.IsStorage(err))
		}},
		{"method not allowed", 405, api.ErrorResponse{Error: "Method not allowed"}, func(t *testing.T, err error) {
			require.Error(t, err)
			require.False(t, domain.IsStorage(err))
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var got api.ScanRequest
			var accept string
			ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				require.Equal(t, http.MethodPost, r.Method)
				require.Equal(t, "/api/scan", r.URL.Path)
				accept = r.Header.Get("Accept")
				_ = json.NewDecoder(r.Body).Decode(&got)
				writeJSON(w, tt.code, tt.body)
			}))
			t.Cleanup(ts.Close)

			err := newClient(t, ts.URL+"/").Enqueue(t.Context(), "acme.com")
			tt.check(t, err)
			require.Equal(t, "acme.com", got.Domain)
			require.Equal(t, "application/json", accept)
		})
	}
}

func TestEnqueueUnreachable(t *testing.T) {
	t.Parallel()
	ts := httptest.NewServer(http.NotFoundHandler())
	url := ts.URL
	ts.Close()

	err := newClient(t, url).Enqueue(t.Context(), "acme.com")
	require.Error(t, err)
	require.False(t, domain.IsValidation(err))
}

func TestEnqueueNotJSON(t *testing.T) {
	t.Parallel()
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte("<html>proxy</html>"))
	}))
	t.Cleanup(ts.Close)

	err := newClient(t, ts.URL).Enqueue(t.Context(), "acme.com")
	require.EqualError(t, err, "enqueue: response is not JSON")
}

func TestSnapshot(t *testing.T) {
	t.Parallel()
	hosting := "Cloudflare"
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/techs", r.URL.Path)
		writeJSON(w, http.StatusOK, api.Snapshot{
			Techs:   []api.Tech{{Name: "React", Category: "JavaScript framework", Cnt: 7}},
			Domains: []api.Domain{{Domain: "Acme.com", Hosting: &hosting, Status: "ok", Techs: []string{"React"}}},
		})
	}))
	t.Cleanup(ts.Close)

	snap, err := newClient(t, ts.URL).Snapshot(t.Context())
	require.NoError(t, err)
	require.Equal(t, []domain.TechnologyCount{{Name: "React", Category: "JavaScript framework", Count: 7}}, snap.Technologies)
	require.Len(t, snap.Domains, 1)
	require.Equal(t, "Acme.com", snap.Domains[0].Domain)
	require.Equal(t, "Cloudflare", *snap.Domains[0].Hosting)
}

func TestWebsiteNotFound(t *testing.T) {
	t.Parallel()
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/websites/acme.com", r.URL.Path)
		writeJSON(w, http.StatusNotFound, api.ErrorResponse{Error: "Not found"})
	}))
	t.Cleanup(ts.Close)

	_, err := newClient(t, ts.URL).Website(t.Context(), "acme.com")
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestWebsites(t *testing.T) {
	t.Parallel()
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/websites", r.URL.Path)
		q := r.URL.Query()
		require.Equal(t, "3", q.Get("page"))
		require.Empty(t, q.Get("per_page"))
		require.Equal(t, []string{"React", "Nginx"}, q["tech"])
		writeJSON(w, http.StatusOK, api.WebsitePage{
			Items:   []api.Website{{Domain: "acme.com", Status: "ok", Techs: []string{"Nginx", "React"}, Url: "https://acme.com/"}},
			Page:    3,
			PerPage: 50,
		})
	}))
	t.Cleanup(ts.Close)

	page, err := newClient(t, ts.URL).Websites(t.Context(), domain.WebsiteFilter{Page: 3, Technologies: []string{"React", "Nginx"}})
	require.NoError(t, err)
	require.Equal(t, 3, page.Page)
	require.Equal(t, 50, page.PerPage)
	require.Len(t, page.Items, 1)
	require.Equal(t, "https://acme.com/", page.Items[0].URL)
	require.Equal(t, []string{"Nginx", "React"}, page.Items[0].Technologies)
}

func TestWebsitesRejected(t *testing.T) {
	t.Parallel()
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusBadRequest, api.ErrorResponse{Error: "per_page must be at most 200"})
	}))
	t.Cleanup(ts.Close)

	_, err := newClient(t, ts.URL).Websites(t.Context(), domain.WebsiteFilter{PerPage: 500})
	require.True(t, domain.IsValidation(err))
	require.Equal(t, "per_page must be at most 200", err.Error())
}

func TestLatest(t *testing.T) {
	t.Parallel()
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/websites/latest", r.URL.Path)
		require.Equal(t, "2", r.URL.Query().Get("limit"))
		writeJSON(w, http.StatusOK, []api.Website{{Domain: "new.com", Techs: []string{}}, {Domain: "older.com", Techs: []string{}}})
	}))
	t.Cleanup(ts.Close)

	sites, err := newClient(t, ts.URL).Latest(t.Context(), 2)
	require.NoError(t, err)
	require.Len(t, sites, 2)
	require.Equal(t, "new.com", sites[0].Domain)
}

func TestStats(t *testing.T) {
	t.Parallel()
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/stats", r.URL.Path)
		writeJSON(w, http.StatusOK, api.Stats{Categories: []api.CategoryStats{
			{Category: "Web server", Technologies: []api.TechCount{{Name: "Nginx", Count: 4}}},
		}})
	}))
	t.Cleanup(ts.Close)

	stats, err := newClient(t, ts.URL).Stats(t.Context())
	require.NoError(t, err)
	require.Equal(t, []domain.CategoryStats{
		{Category: "Web server", Technologies: []domain.TechnologyCount{{Name: "Nginx", Category: "Web server", Count: 4}}},
	}, stats)
}
