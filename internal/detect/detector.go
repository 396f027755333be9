// Package detect matches fetched pages against a catalog of technology fingerprints.
package detect

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"sort"
	"strings"

	"golang.org/x/net/html"
	"gopkg.in/yaml.v3"

	"techsnap/internal/domain"
)

//go:embed catalog.yaml
var defaultCatalog []byte

type Rule struct {
	Name     string   `yaml:"name"`
	Category string   `yaml:"category"`
	Patterns []string `yaml:"patterns"`
}

type compiled struct {
	tech     domain.Technology
	patterns []*regexp.Regexp
}

type Detector struct {
	rules []compiled
}

// Page is a fetched document.
type Page struct {
	Body   []byte
	Header http.Header
}

// Default returns a detector for the built-in catalog.
func Default() (*Detector, error) {
	return Load(bytes.NewReader(defaultCatalog))
}

// Load parses a YAML rule list.
func Load(r io.Reader) (*Detector, error) {
	var rules []Rule
	if err := yaml.NewDecoder(r).Decode(&rules); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	d := &Detector{rules: make([]compiled, 0, len(rules))}
	for _, rule := range rules {
		if rule.Name == "" {
			return nil, fmt.Errorf("catalog: rule without name")
		}
		c := compiled{tech: domain.Technology{Name: rule.Name, Category: rule.Category}}
		for _, p := range rule.Patterns {
			re, err := regexp.Compile("(?i)" + p)
			if err != nil {
				return nil, fmt.Errorf("catalog: %s: %w", rule.Name, err)
			}
			c.patterns = append(c.patterns, re)
		}
		d.rules = append(d.rules, c)
	}
	return d, nil
}

// Detect returns the matching technologies ordered by name.
func (d *Detector) Detect(p Page) []domain.Technology {
	var headers []string
	for k, vs := range p.Header {
		for _, v := range vs {
			headers = append(headers, k+": "+v)
		}
	}
	found := []domain.Technology{}
	for _, rule := range d.rules {
		if rule.matches(p.Body, headers) {
			found = append(found, rule.tech)
		}
	}
	sort.Slice(found, func(i, j int) bool { return found[i].Name < found[j].Name })
	return found
}

func (c compiled) matches(body []byte, headers []string) bool {
	for _, re := range c.patterns {
		if re.Match(body) {
			return true
		}
		for _, h := range headers {
			if re.MatchString(h) {
				return true
			}
		}
	}
	return false
}

// Meta is the part of a page's <head> the analyzer records.
type Meta struct {
	Title    string
	SiteName string
}

// ParseMeta extracts <title> and og:site_name (or application-name).
func ParseMeta(body []byte) Meta {
	var m Meta
	z := html.NewTokenizer(bytes.NewReader(body))
	inTitle := false
	for {
		switch z.Next() {
		case html.ErrorToken:
			return m
		case html.StartTagToken, html.SelfClosingTagToken:
			tok := z.Token()
			switch tok.Data {
			case "title":
				inTitle = m.Title == ""
			case "meta":
				key, content := metaAttrs(tok)
				switch key {
				case "og:site_name":
					m.SiteName = content
				case "application-name":
					if m.SiteName == "" {
						m.SiteName = content
					}
				}
			case "body":
				return m
			}
		case html.TextToken:
			if inTitle {
				m.Title = strings.TrimSpace(string(z.Text()))
				inTitle = false
			}
		case html.EndTagToken:
			inTitle = false
		}
	}
}

func metaAttrs(tok html.Token) (key, content string) {
	for _, a := range tok.Attr {
		switch a.Key {
		case "property", "name":
			key = strings.ToLower(a.Val)
		case "content":
			content = strings.TrimSpace(a.Val)
		}
	}
	return key, content
}
