package mcpserver

import (
	"context"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsBlockedIP(t *testing.T) {
	for _, ip := range []string{"127.0.0.1", "10.1.2.3", "172.16.0.1", "192.168.0.10", "169.254.1.1", "::1", "::", "fe80::1", "fd00::1"} {
		assert.Truef(t, isBlockedIP(net.ParseIP(ip)), "%s should be blocked", ip)
	}
	for _, ip := range []string{"8.8.8.8", "1.1.1.1", "2606:4700:4700::1111"} {
		assert.Falsef(t, isBlockedIP(net.ParseIP(ip)), "%s should be allowed", ip)
	}
}

func TestPublicAddrsRejectsLoopbackLiteral(t *testing.T) {
	_, err := publicAddrs(context.Background(), "127.0.0.1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "blocked request to private/loopback IP")
}

func servePing(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/redirect" {
			http.Redirect(w, r, "/swagger.yaml", http.StatusFound)
			return
		}
		_, _ = w.Write([]byte(minimalSwagger))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestDocSource_URLRefusesLoopback(t *testing.T) {
	docs.reset()
	srv := servePing(t)

	_, err := docSource{URL: srv.URL + "/swagger.yaml"}.resolve()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "blocked request")
	assert.Zero(t, docs.size())
}

func TestDocSource_URLAllowedWhenPrivateIPsAllowed(t *testing.T) {
	docs.reset()
	cfg.AllowPrivateIPs = true
	t.Cleanup(func() { cfg.AllowPrivateIPs = false })
	srv := servePing(t)

	res, err := docSource{URL: srv.URL + "/redirect"}.resolve()
	require.NoError(t, err)
	assert.Equal(t, "Ping API", res.Document.Info.Title)
}

func TestSafeClientRedirectCheck(t *testing.T) {
	client := newSafeHTTPClient()
	require.NotNil(t, client.CheckRedirect)

	req := httptest.NewRequest(http.MethodGet, "http://127.0.0.1/next", nil)
	err := client.CheckRedirect(req, []*http.Request{req})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "blocked")

	err = client.CheckRedirect(req, make([]*http.Request, 10))
	assert.EqualError(t, err, "stopped after 10 redirects")
}
