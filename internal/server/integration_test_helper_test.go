package server_test

import (
	"context"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/nfrund/reservas/internal/domain"
	"github.com/nfrund/reservas/internal/server"
	"github.com/nfrund/reservas/internal/testutils"
)

// harness is a fully wired portal in front of a fake upstream.
type harness struct {
	srv    *server.Server
	ts     *httptest.Server
	fake   *testutils.FakeUpstream
	client *http.Client
}

// setupIntegrationTest builds the portal exactly as the CLI does, with every
// upstream service pointed at a fake.
func setupIntegrationTest(t *testing.T, portal domain.Portal) *harness {
	t.Helper()

	fake := testutils.NewFakeUpstream(t)
	cfg := testutils.ConfigForTests(t, portal, fake)

	srv, err := server.New(cfg, server.ModulesFor(portal)...)
	require.NoError(t, err)
	require.NoError(t, srv.RegisterRoutes(context.Background()))

	ts := httptest.NewServer(srv.E)
	t.Cleanup(func() {
		ts.Close()
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(ctx)
	})

	jar, err := cookiejar.New(nil)
	require.NoError(t, err)
	client := &http.Client{
		Jar: jar,
		CheckRedirect: func(*http.Request, []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}

	return &harness{srv: srv, ts: ts, fake: fake, client: client}
}

func (h *harness) get(t *testing.T, path string) *http.Response {
	t.Helper()
	resp, err := h.client.Get(h.ts.URL + path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })
	return resp
}

func (h *harness) postForm(t *testing.T, path string, form url.Values) *http.Response {
	t.Helper()
	req, err := http.NewRequest(http.MethodPost, h.ts.URL+path, strings.NewReader(form.Encode()))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	resp, err := h.client.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })
	return resp
}

// login signs in as id through the real login form.
func (h *harness) login(t *testing.T, token string, id domain.Identity) {
	t.Helper()
	h.fake.ReplyJSON(http.MethodPost, "/auth/login", http.StatusOK, map[string]any{
		"ok":        true,
		"token":     token,
		"user_info": id,
	})
	h.fake.Authenticate(token, id)

	resp := h.postForm(t, "/login", url.Values{"rut": {id.RUT}, "password": {"secreto"}})
	require.Equal(t, http.StatusSeeOther, resp.StatusCode)
	require.Equal(t, "/dashboard", resp.Header.Get("Location"))
}
