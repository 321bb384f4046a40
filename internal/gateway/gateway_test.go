package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sameHost points every service at one test server.
func sameHost(t *testing.T, base string) Addresses {
	t.Helper()
	m := make(map[Service]string)
	for _, s := range Services {
		m[s] = base + "/"
	}
	addrs, err := NewAddresses(m)
	require.NoError(t, err)
	return addrs
}

func TestNewAddresses(t *testing.T) {
	t.Run("defaults cover every service", func(t *testing.T) {
		addrs, err := NewAddresses(DefaultAddresses())
		require.NoError(t, err)

		u, ok := addrs.URL(Auth)
		assert.True(t, ok)
		assert.Equal(t, "http://localhost:5001", u)

		u, ok = addrs.URL(Reports)
		assert.True(t, ok)
		assert.Equal(t, "http://localhost:5009", u)
		assert.Len(t, addrs.Names(), len(Services))
	})

	t.Run("missing service is rejected", func(t *testing.T) {
		m := DefaultAddresses()
		delete(m, Bookings)
		_, err := NewAddresses(m)
		assert.ErrorContains(t, err, "bookings")
	})

	t.Run("relative URL is rejected", func(t *testing.T) {
		m := DefaultAddresses()
		m[Users] = "localhost:5002"
		_, err := NewAddresses(m)
		assert.Error(t, err)
	})

	t.Run("table is copied", func(t *testing.T) {
		m := DefaultAddresses()
		addrs, err := NewAddresses(m)
		require.NoError(t, err)

		m[Auth] = "http://elsewhere"
		u, _ := addrs.URL(Auth)
		assert.Equal(t, "http://localhost:5001", u)

		copied := addrs.Map()
		copied[Auth] = "http://elsewhere"
		u, _ = addrs.URL(Auth)
		assert.Equal(t, "http://localhost:5001", u)
	})
}

func TestClientDo(t *testing.T) {
	var gotMethod, gotPath, gotQuery, gotContentType, gotAuth string
	var gotBody map[string]any

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod, gotPath, gotQuery = r.Method, r.URL.Path, r.URL.RawQuery
		gotContentType = r.Header.Get("Content-Type")
		gotAuth = r.Header.Get("Authorization")
		gotBody = nil
		if b, _ := io.ReadAll(r.Body); len(b) > 0 {
			_ = json.Unmarshal(b, &gotBody)
		}

		switch r.URL.Path {
		case "/bookings/approve":
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"aprobada": true}`))
		case "/bookings":
			_, _ = w.Write([]byte(`[{"id": 1}, {"id": 2}]`))
		case "/bookings/9":
			w.WriteHeader(http.StatusNoContent)
		case "/auth/verify/bad":
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"detail": "Token inválido o expirado"}`))
		case "/users/create":
			w.WriteHeader(http.StatusUnprocessableEntity)
			_, _ = w.Write([]byte(`{"detail": [{"loc": ["body", "rut"], "msg": "field required"}]}`))
		case "/spaces":
			w.WriteHeader(http.StatusBadGateway)
			_, _ = w.Write([]byte(`upstream exploded`))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	reg := prometheus.NewRegistry()
	metrics := NewMetrics(reg)
	client := New(sameHost(t, srv.URL), WithMetrics(metrics))
	ctx := context.Background()

	t.Run("posts JSON and decodes the response", func(t *testing.T) {
		var out map[string]bool
		err := client.Do(ctx, Post(Bookings, "/bookings/approve", map[string]any{"id_reserva": 42}), &out)
		require.NoError(t, err)

		assert.Equal(t, http.MethodPost, gotMethod)
		assert.Equal(t, "/bookings/approve", gotPath)
		assert.Equal(t, "application/json", gotContentType)
		assert.Equal(t, float64(42), gotBody["id_reserva"])
		assert.True(t, out["aprobada"])
	})

	t.Run("no token sends no authorization", func(t *testing.T) {
		require.NoError(t, client.Do(ctx, Delete(Bookings, "/bookings/9"), nil))
		assert.Empty(t, gotAuth)
	})

	t.Run("token from the context is a bearer credential", func(t *testing.T) {
		require.NoError(t, client.Do(WithToken(ctx, "tok-ana"), Delete(Bookings, "/bookings/9"), nil))
		assert.Equal(t, "Bearer tok-ana", gotAuth)
	})

	t.Run("call token wins over the context", func(t *testing.T) {
		call := Delete(Bookings, "/bookings/9")
		call.Token = "tok-admin"
		require.NoError(t, client.Do(WithToken(ctx, "tok-ana"), call, nil))
		assert.Equal(t, "Bearer tok-admin", gotAuth)
	})

	t.Run("encodes the query string", func(t *testing.T) {
		var out []map[string]int
		err := client.Do(ctx, Get(Bookings, "/bookings", url.Values{"estado": {"pendiente"}}), &out)
		require.NoError(t, err)

		assert.Equal(t, "estado=pendiente", gotQuery)
		assert.Len(t, out, 2)
	})

	t.Run("empty body with nil out", func(t *testing.T) {
		require.NoError(t, client.Do(ctx, Delete(Bookings, "/bookings/9"), nil))
		assert.Equal(t, http.MethodDelete, gotMethod)
	})

	t.Run("non-2xx becomes UpstreamError with detail", func(t *testing.T) {
		err := client.Do(ctx, Get(Auth, "/auth/verify/bad", nil), nil)

		var ue *UpstreamError
		require.ErrorAs(t, err, &ue)
		assert.Equal(t, http.StatusUnauthorized, ue.Status)
		assert.Equal(t, Auth, ue.Service)
		assert.Equal(t, "Token inválido o expirado", DetailOf(err))
		assert.Equal(t, http.StatusUnauthorized, StatusOf(err))
	})

	t.Run("validation detail list yields the first message", func(t *testing.T) {
		err := client.Do(ctx, Post(Users, "/users/create", map[string]string{}), nil)
		assert.Equal(t, "field required", DetailOf(err))
	})

	t.Run("plain text error body is kept as detail", func(t *testing.T) {
		err := client.Do(ctx, Get(Spaces, "/spaces", nil), nil)
		assert.Equal(t, "upstream exploded", DetailOf(err))
		assert.Equal(t, http.StatusBadGateway, StatusOf(err))
	})

	t.Run("metrics count calls by status", func(t *testing.T) {
		assert.Equal(t, float64(1), testutil.ToFloat64(metrics.requests.WithLabelValues("auth", "GET", "401")))
		assert.Equal(t, float64(1), testutil.ToFloat64(metrics.requests.WithLabelValues("bookings", "POST", "200")))
	})
}

func TestClientUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	addrs := sameHost(t, srv.URL)
	srv.Close()

	err := New(addrs).Do(context.Background(), Get(Users, "/users", nil), nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnavailable))
	assert.Zero(t, StatusOf(err))
}

func TestClientRelay(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/reports/estadisticas" {
			_, _ = w.Write([]byte(`{"usuarios_activos": 12}`))
			return
		}
		_, _ = w.Write([]byte(`<html>`))
	}))
	defer srv.Close()

	client := New(sameHost(t, srv.URL))

	raw, err := client.Relay(context.Background(), Get(Reports, "/reports/estadisticas", nil))
	require.NoError(t, err)
	assert.JSONEq(t, `{"usuarios_activos": 12}`, string(raw))

	_, err = client.Relay(context.Background(), Get(Reports, "/reports/other", nil))
	assert.ErrorIs(t, err, ErrInvalidJSON)
}

func TestExtractDetail(t *testing.T) {
	assert.Equal(t, "", extractDetail(nil))
	assert.Equal(t, "boom", extractDetail([]byte(`{"error": "boom"}`)))
	assert.Equal(t, "hola", extractDetail([]byte(`{"message": "hola"}`)))
	assert.Equal(t, "", extractDetail([]byte(`{"detail": 5}`)))
}
