package hosting_test

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/miekg/dns"
	"github.com/stretchr/testify/require"

	"techsnap/internal/hosting"
)

func TestProviderFromNS(t *testing.T) {
	tests := []struct {
		name  string
		hosts []string
		want  string
	}{
		{"empty", nil, ""},
		{"cloudflare", []string{"lara.ns.cloudflare.com.", "greg.ns.cloudflare.com."}, "Cloudflare"},
		{"aws", []string{"ns-1.awsdns-01.org.", "ns-2.awsdns-02.co.uk."}, "Amazon Web Services"},
		{"aws com first", []string{"ns-61.awsdns-07.com.", "ns-1538.awsdns-03.co.uk."}, "Amazon Web Services"},
		{"unknown", []string{"NS2.Example-Host.co.uk.", "ns1.example-host.co.uk."}, "example-host.co.uk"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, hosting.ProviderFromNS(tt.hosts))
		})
	}
}

func TestResolverProvider(t *testing.T) {
	pc, err := net.ListenPacket("udp", "127.0.0.1:0")
	require.NoError(t, err)

	mux := dns.NewServeMux()
	mux.HandleFunc("acme.com.", func(w dns.ResponseWriter, req *dns.Msg) {
		resp := new(dns.Msg)
		resp.SetReply(req)
		resp.Answer = append(resp.Answer, &dns.NS{
			Hdr: dns.RR_Header{Name: req.Question[0].Name, Rrtype: dns.TypeNS, Class: dns.ClassINET, Ttl: 300},
			Ns:  "dana.ns.cloudflare.com.",
		})
		_ = w.WriteMsg(resp)
	})
	started := make(chan struct{})
	srv := &dns.Server{PacketConn: pc, Handler: mux, NotifyStartedFunc: func() { close(started) }}
	go func() { _ = srv.ActivateAndServe() }()
	t.Cleanup(func() { _ = srv.Shutdown() })
	<-started

	r, err := hosting.NewResolver(pc.LocalAddr().String(), time.Second)
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	got, err := r.Provider(ctx, "www.Acme.com")
	require.NoError(t, err)
	require.Equal(t, "Cloudflare", got)
}
