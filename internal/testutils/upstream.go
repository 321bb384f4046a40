package testutils

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/nfrund/reservas/internal/domain"
	"github.com/nfrund/reservas/internal/gateway"
	"github.com/nfrund/reservas/internal/upstream"
)

// Recorded is one request received by a FakeUpstream.
type Recorded struct {
	Method string
	Path   string
	Query  string
	// Authorization is the request's Authorization header.
	Authorization string
	Body          []byte
}

// JSON decodes the recorded body into a generic map.
func (r Recorded) JSON(t *testing.T) map[string]any {
	t.Helper()
	var m map[string]any
	if err := json.Unmarshal(r.Body, &m); err != nil {
		t.Fatalf("request body of %s %s is not a JSON object: %v", r.Method, r.Path, err)
	}
	return m
}

type reply struct {
	status int
	body   string
}

// FakeUpstream is a single HTTP server standing in for every upstream
// service. Service paths never collide, so one server is enough.
type FakeUpstream struct {
	t      *testing.T
	srv    *httptest.Server
	mu     sync.Mutex
	routes map[string]reply
	calls  []Recorded
}

// NewFakeUpstream starts a fake upstream that is closed with the test.
func NewFakeUpstream(t *testing.T) *FakeUpstream {
	t.Helper()
	f := &FakeUpstream{t: t, routes: make(map[string]reply)}
	f.srv = httptest.NewServer(http.HandlerFunc(f.serve))
	t.Cleanup(f.srv.Close)
	return f
}

func (f *FakeUpstream) serve(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)

	f.mu.Lock()
	f.calls = append(f.calls, Recorded{
		Method:        r.Method,
		Path:          r.URL.Path,
		Query:         r.URL.RawQuery,
		Authorization: r.Header.Get("Authorization"),
		Body:          body,
	})
	rep, ok := f.routes[r.Method+" "+r.URL.Path]
	f.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		_, _ = io.WriteString(w, `{"detail": "Not Found"}`)
		return
	}
	w.WriteHeader(rep.status)
	_, _ = io.WriteString(w, rep.body)
}

// URL is the base URL of the fake.
func (f *FakeUpstream) URL() string {
	return f.srv.URL
}

// Reply registers a raw response for method and path.
func (f *FakeUpstream) Reply(method, path string, status int, body string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.routes[method+" "+path] = reply{status: status, body: body}
}

// ReplyJSON registers a JSON-encoded response for method and path.
func (f *FakeUpstream) ReplyJSON(method, path string, status int, v any) {
	f.t.Helper()
	b, err := json.Marshal(v)
	if err != nil {
		f.t.Fatalf("encode fake reply: %v", err)
	}
	f.Reply(method, path, status, string(b))
}

// Authenticate makes token verify as id.
func (f *FakeUpstream) Authenticate(token string, id domain.Identity) {
	f.ReplyJSON(http.MethodGet, "/auth/verify/"+token, http.StatusOK, map[string]any{
		"valid": true,
		"user_info": map[string]any{
			"id":           id.ID.String(),
			"rut":          id.RUT,
			"nombre":       id.Name,
			"tipo_usuario": id.Role,
		},
	})
}

// Addresses is a service table pointing every service at the fake.
func (f *FakeUpstream) Addresses() gateway.Addresses {
	f.t.Helper()
	m := make(map[gateway.Service]string)
	for _, s := range gateway.Services {
		m[s] = f.srv.URL
	}
	addrs, err := gateway.NewAddresses(m)
	if err != nil {
		f.t.Fatalf("fake addresses: %v", err)
	}
	return addrs
}

// Gateway returns a gateway client over the fake.
func (f *FakeUpstream) Gateway() *gateway.Client {
	return gateway.New(f.Addresses())
}

// Clients returns upstream clients over the fake.
func (f *FakeUpstream) Clients() *upstream.Clients {
	return upstream.New(f.Gateway())
}

// Calls returns every recorded request.
func (f *FakeUpstream) Calls() []Recorded {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]Recorded(nil), f.calls...)
}

// CallsTo returns the recorded requests for method and path.
func (f *FakeUpstream) CallsTo(method, path string) []Recorded {
	var out []Recorded
	for _, c := range f.Calls() {
		if c.Method == method && c.Path == path {
			out = append(out, c)
		}
	}
	return out
}

// LastCall returns the most recent request for method and path.
func (f *FakeUpstream) LastCall(method, path string) (Recorded, bool) {
	calls := f.CallsTo(method, path)
	if len(calls) == 0 {
		return Recorded{}, false
	}
	return calls[len(calls)-1], true
}
