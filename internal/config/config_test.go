package config

import (
	"testing"
	"time"

	"github.com/nfrund/reservas/internal/domain"
	"github.com/nfrund/reservas/internal/gateway"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lookupFrom(env map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}
}

func TestFromLookupDefaults(t *testing.T) {
	cfg, err := FromLookup(domain.AdminPortal, lookupFrom(nil))
	require.NoError(t, err)

	assert.Equal(t, 3001, cfg.Port)
	assert.Equal(t, ":3001", cfg.Addr())
	assert.True(t, cfg.UsesDevSecret())
	assert.False(t, cfg.CookieSecure)
	assert.Zero(t, cfg.UpstreamTimeout)

	u, ok := cfg.Services.URL(gateway.Bookings)
	require.True(t, ok)
	assert.Equal(t, "http://localhost:5005", u)
}

func TestFromLookupOverrides(t *testing.T) {
	cfg, err := FromLookup(domain.StudentPortal, lookupFrom(map[string]string{
		"PORT":             "8080",
		"SESSION_SECRET":   "s3cret",
		"COOKIE_SECURE":    "true",
		"UPSTREAM_TIMEOUT": "5s",
		"AUTH_SERVICE_URL": "http://auth.internal:9000/",
		"LOG_FORMAT":       "json",
	}))
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "s3cret", cfg.SessionSecret)
	assert.False(t, cfg.UsesDevSecret())
	assert.True(t, cfg.CookieSecure)
	assert.Equal(t, 5*time.Second, cfg.UpstreamTimeout)
	assert.Equal(t, "json", cfg.LogFormat)

	u, _ := cfg.Services.URL(gateway.Auth)
	assert.Equal(t, "http://auth.internal:9000", u)
}

func TestFromLookupInvalid(t *testing.T) {
	cases := map[string]map[string]string{
		"port":    {"PORT": "abc"},
		"range":   {"PORT": "70000"},
		"secure":  {"COOKIE_SECURE": "maybe"},
		"timeout": {"UPSTREAM_TIMEOUT": "soon"},
		"address": {"REPORTS_SERVICE_URL": "reports:5009"},
	}
	for name, env := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := FromLookup(domain.StudentPortal, lookupFrom(env))
			assert.Error(t, err)
		})
	}
}

func TestServiceEnvCoversEveryService(t *testing.T) {
	for _, s := range gateway.Services {
		assert.NotEmpty(t, ServiceEnv(s), "service %s has no override variable", s)
	}
}
