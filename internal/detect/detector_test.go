package detect_test

import (
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"techsnap/internal/detect"
	"techsnap/internal/domain"
)

func names(techs []domain.Technology) []string {
	out := make([]string, 0, len(techs))
	for _, t := range techs {
		out = append(out, t.Name)
	}
	return out
}

func TestDetectDefaultCatalog(t *testing.T) {
	d, err := detect.Default()
	require.NoError(t, err)

	page := detect.Page{
		Body: []byte(`<html><head>
<script src="/static/react-dom.production.min.js"></script>
<script src="https://www.googletagmanager.com/gtag/js?id=G-1"></script>
</head><body data-reactroot></body></html>`),
		Header: http.Header{"Server": []string{"nginx/1.25.3"}},
	}
	got := d.Detect(page)
	require.Equal(t, []string{"Google Analytics", "Nginx", "React"}, names(got))
	for _, tech := range got {
		require.NotEmpty(t, tech.Category)
	}
}

func TestDetectNothing(t *testing.T) {
	d, err := detect.Default()
	require.NoError(t, err)
	got := d.Detect(detect.Page{Body: []byte("<html><body>hello</body></html>")})
	require.NotNil(t, got)
	require.Empty(t, got)
}

func TestLoad(t *testing.T) {
	t.Run("custom", func(t *testing.T) {
		d, err := detect.Load(strings.NewReader(`
- name: Acme
  category: Testing
  patterns: ['acme-widget']
`))
		require.NoError(t, err)
		got := d.Detect(detect.Page{Body: []byte(`<div class="ACME-Widget">`)})
		require.Equal(t, []domain.Technology{{Name: "Acme", Category: "Testing"}}, got)
	})
	t.Run("bad pattern", func(t *testing.T) {
		_, err := detect.Load(strings.NewReader(`
- name: Broken
  patterns: ['(']
`))
		require.Error(t, err)
	})
	t.Run("missing name", func(t *testing.T) {
		_, err := detect.Load(strings.NewReader(`- patterns: ['x']`))
		require.Error(t, err)
	})
}

func TestParseMeta(t *testing.T) {
	m := detect.ParseMeta([]byte(`<!doctype html><html><head>
<meta property="og:site_name" content=" Acme Corp ">
<title>  Acme | Home </title>
</head><body><title>ignored</title></body></html>`))
	require.Equal(t, "Acme | Home", m.Title)
	require.Equal(t, "Acme Corp", m.SiteName)

	require.Equal(t, detect.Meta{}, detect.ParseMeta(nil))
}
