// Package whois looks up the organisation that registered a domain.
package whois

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"net"
	"strings"
	"time"

	"golang.org/x/net/publicsuffix"
)

const (
	// DefaultServer is the IANA root, which refers each TLD to its registry.
	DefaultServer = "whois.iana.org:43"

	maxResponse = 64 << 10
	maxHops     = 3
)

// orgFields are checked in order; keys are compared lower-cased with
// everything but letters removed.
var orgFields = []string{
	"registrantorganization",
	"registrantorg",
	"registrantcompany",
	"org",
	"orgname",
	"organisation",
	"organization",
	"registrantname",
	"registrant",
}

// referFields name the next server to ask.
var referFields = []string{"refer", "whois", "registrarwhoisserver"}

type Client struct {
	server  string
	dialer  net.Dialer
	timeout time.Duration
}

// New queries server first and follows referrals from there. An empty server
// uses DefaultServer.
func New(server string, timeout time.Duration) *Client {
	if server == "" {
		server = DefaultServer
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{server: withPort(server), dialer: net.Dialer{Timeout: timeout}, timeout: timeout}
}

// Company returns the registrant organisation of name's registrable domain,
// or "" when the registry publishes none or redacts it. Only the last server
// in the referral chain is trusted; the root answers with the TLD operator.
func (c *Client) Company(ctx context.Context, name string) (string, error) {
	apex, err := publicsuffix.EffectiveTLDPlusOne(strings.TrimSuffix(strings.ToLower(name), "."))
	if err != nil {
		apex = name
	}
	server := c.server
	seen := map[string]bool{}
	for hop := 0; ; hop++ {
		seen[server] = true
		resp, err := c.query(ctx, server, apex)
		if err != nil {
			return "", err
		}
		fields := Parse(resp)
		next := first(fields, referFields)
		if next == "" || hop+1 == maxHops || seen[withPort(next)] {
			return Organisation(fields), nil
		}
		server = withPort(next)
	}
}

func (c *Client) query(ctx context.Context, server, name string) ([]byte, error) {
	conn, err := c.dialer.DialContext(ctx, "tcp", server)
	if err != nil {
		return nil, fmt.Errorf("whois %s: %w", server, err)
	}
	defer conn.Close()

	deadline := time.Now().Add(c.timeout)
	if d, ok := ctx.Deadline(); ok && d.Before(deadline) {
		deadline = d
	}
	if err := conn.SetDeadline(deadline); err != nil {
		return nil, err
	}
	if _, err := io.WriteString(conn, name+"\r\n"); err != nil {
		return nil, fmt.Errorf("whois %s: %w", server, err)
	}
	body, err := io.ReadAll(io.LimitReader(conn, maxResponse))
	if err != nil && len(body) == 0 {
		return nil, fmt.Errorf("whois %s: %w", server, err)
	}
	return body, nil
}

// Parse collects "Key: value" lines. Keys are normalised and the first
// non-empty value of each key wins.
func Parse(resp []byte) map[string]string {
	out := map[string]string{}
	sc := bufio.NewScanner(bytes.NewReader(resp))
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || line[0] == '%' || line[0] == '#' || strings.HasPrefix(line, ">>>") {
			continue
		}
		key, value, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		key, value = normaliseKey(key), strings.TrimSpace(value)
		if key == "" || value == "" {
			continue
		}
		if _, dup := out[key]; !dup {
			out[key] = value
		}
	}
	return out
}

// Organisation picks the registrant organisation from parsed fields, skipping
// redacted values.
func Organisation(fields map[string]string) string {
	for _, k := range orgFields {
		v, ok := fields[k]
		if !ok || redacted(v) {
			continue
		}
		return v
	}
	return ""
}

func first(fields map[string]string, keys []string) string {
	for _, k := range keys {
		if v := fields[k]; v != "" {
			return v
		}
	}
	return ""
}

func redacted(v string) bool {
	return strings.Contains(strings.ToUpper(v), "REDACTED")
}

func normaliseKey(k string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(k) {
		if r >= 'a' && r <= 'z' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func withPort(server string) string {
	if _, _, err := net.SplitHostPort(server); err == nil {
		return server
	}
	return net.JoinHostPort(server, "43")
}
