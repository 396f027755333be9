// Package hosting guesses who hosts a domain from its authoritative name servers.
package hosting

import (
	"context"
	"fmt"
	"net"
	"sort"
	"strings"
	"time"

	"github.com/miekg/dns"
	"golang.org/x/net/publicsuffix"
)

// Route 53 name servers live under many TLDs (awsdns-NN.com, .net, .org,
// .co.uk) so they are matched by label instead of registrable domain.
const (
	awsLabel    = ".awsdns-"
	awsProvider = "Amazon Web Services"
)

// known maps a name server's registrable domain to a provider name.
var known = map[string]string{
	"cloudflare.com":        "Cloudflare",
	"googledomains.com":     "Google",
	"google.com":            "Google",
	"azure-dns.com":         "Microsoft Azure",
	"azure-dns.net":         "Microsoft Azure",
	"digitalocean.com":      "DigitalOcean",
	"vercel-dns.com":        "Vercel",
	"nsone.net":             "NS1",
	"akam.net":              "Akamai",
	"shopify.com":           "Shopify",
	"wordpress.com":         "WordPress.com",
	"hetzner.com":           "Hetzner",
	"ovh.net":               "OVHcloud",
	"domaincontrol.com":     "GoDaddy",
	"registrar-servers.com": "Namecheap",
}

type Resolver struct {
	client *dns.Client
	server string
}

// NewResolver queries server (host:port). An empty server uses the first
// nameserver of /etc/resolv.conf.
func NewResolver(server string, timeout time.Duration) (*Resolver, error) {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	if server == "" {
		cfg, err := dns.ClientConfigFromFile("/etc/resolv.conf")
		if err != nil || len(cfg.Servers) == 0 {
			return nil, fmt.Errorf("no dns server configured: %v", err)
		}
		server = net.JoinHostPort(cfg.Servers[0], cfg.Port)
	}
	return &Resolver{
		client: &dns.Client{Net: "udp", Timeout: timeout},
		server: server,
	}, nil
}

// Provider looks up the NS records of name's registrable domain and returns
// the hosting provider, or "" when nothing is published.
func (r *Resolver) Provider(ctx context.Context, name string) (string, error) {
	apex, err := publicsuffix.EffectiveTLDPlusOne(strings.TrimSuffix(strings.ToLower(name), "."))
	if err != nil {
		apex = name
	}
	msg := new(dns.Msg)
	msg.SetQuestion(dns.Fqdn(apex), dns.TypeNS)
	msg.RecursionDesired = true

	resp, _, err := r.client.ExchangeContext(ctx, msg, r.server)
	if err != nil {
		return "", fmt.Errorf("ns lookup %s: %w", apex, err)
	}
	if resp.Rcode != dns.RcodeSuccess {
		return "", fmt.Errorf("ns lookup %s: %s", apex, dns.RcodeToString[resp.Rcode])
	}
	var hosts []string
	for _, rr := range resp.Answer {
		if ns, ok := rr.(*dns.NS); ok {
			hosts = append(hosts, ns.Ns)
		}
	}
	return ProviderFromNS(hosts), nil
}

// ProviderFromNS names the provider behind a set of name server host names.
func ProviderFromNS(hosts []string) string {
	if len(hosts) == 0 {
		return ""
	}
	sorted := make([]string, 0, len(hosts))
	for _, h := range hosts {
		sorted = append(sorted, strings.TrimSuffix(strings.ToLower(h), "."))
	}
	sort.Strings(sorted)

	for _, h := range sorted {
		if strings.Contains(h, awsLabel) {
			return awsProvider
		}
		apex, err := publicsuffix.EffectiveTLDPlusOne(h)
		if err != nil {
			continue
		}
		if p, ok := known[apex]; ok {
			return p
		}
	}
	apex, err := publicsuffix.EffectiveTLDPlusOne(sorted[0])
	if err != nil {
		return sorted[0]
	}
	return apex
}
