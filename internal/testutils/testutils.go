package testutils

import (
	"testing"

	"github.com/nfrund/reservas/internal/config"
	"github.com/nfrund/reservas/internal/domain"
	"github.com/nfrund/reservas/internal/gateway"
)

// SessionSecret signs flash cookies in tests.
const SessionSecret = "a-very-secret-key-for-testing-!"

// ConfigForTests returns a config for portal whose service table points
// every upstream at fake. No environment variables are read.
func ConfigForTests(t *testing.T, portal domain.Portal, fake *FakeUpstream) *config.Config {
	t.Helper()

	env := map[string]string{"SESSION_SECRET": SessionSecret}
	for _, s := range gateway.Services {
		env[config.ServiceEnv(s)] = fake.URL()
	}

	cfg, err := config.FromLookup(portal, func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	})
	if err != nil {
		t.Fatalf("failed to build test config: %v", err)
	}
	return cfg
}
