package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/nfrund/reservas/internal/domain"
	"github.com/nfrund/reservas/internal/gateway"
)

// serviceEnv maps each upstream service to the variable that overrides its address.
var serviceEnv = map[gateway.Service]string{
	gateway.Auth:          "AUTH_SERVICE_URL",
	gateway.Users:         "USERS_SERVICE_URL",
	gateway.Spaces:        "SPACES_SERVICE_URL",
	gateway.Availability:  "AVAILABILITY_SERVICE_URL",
	gateway.Bookings:      "BOOKINGS_SERVICE_URL",
	gateway.Incidents:     "INCIDENTS_SERVICE_URL",
	gateway.Admin:         "ADMIN_SERVICE_URL",
	gateway.Notifications: "NOTIFICATIONS_SERVICE_URL",
	gateway.Reports:       "REPORTS_SERVICE_URL",
}

// devSessionSecret signs the flash cookie when SESSION_SECRET is unset.
const devSessionSecret = "reservas-development-session-secret"

// Config holds all configuration for one front-end process. It is loaded
// once at startup and treated as read-only afterwards.
type Config struct {
	Portal          domain.Portal
	Port            int
	Services        gateway.Addresses
	SessionSecret   string
	CookieSecure    bool
	UpstreamTimeout time.Duration
	LogFormat       string
	LogLevel        string
}

// Addr returns the listen address.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

// Load reads configuration for portal from the environment, after loading a
// .env file if one exists.
func Load(portal domain.Portal) (*Config, error) {
	if err := godotenv.Load(); err != nil {
		// slog is not configured yet; the default handler is fine for this one line.
		slog.Debug("No .env file found, relying on environment variables")
	}
	return FromLookup(portal, os.LookupEnv)
}

// FromLookup builds a Config from an arbitrary variable source.
func FromLookup(portal domain.Portal, lookup func(string) (string, bool)) (*Config, error) {
	get := func(key string) string {
		v, _ := lookup(key)
		return strings.TrimSpace(v)
	}

	cfg := &Config{
		Portal:        portal,
		Port:          portal.DefaultPort,
		SessionSecret: get("SESSION_SECRET"),
		LogFormat:     get("LOG_FORMAT"),
		LogLevel:      get("LOG_LEVEL"),
	}

	if v := get("PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil || port <= 0 || port > 65535 {
			return nil, fmt.Errorf("config: invalid PORT %q", v)
		}
		cfg.Port = port
	}

	if v := get("COOKIE_SECURE"); v != "" {
		secure, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("config: invalid COOKIE_SECURE %q: %w", v, err)
		}
		cfg.CookieSecure = secure
	}

	if v := get("UPSTREAM_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil || d < 0 {
			return nil, fmt.Errorf("config: invalid UPSTREAM_TIMEOUT %q", v)
		}
		cfg.UpstreamTimeout = d
	}

	if cfg.SessionSecret == "" {
		cfg.SessionSecret = devSessionSecret
	}

	table := gateway.DefaultAddresses()
	for svc, key := range serviceEnv {
		if v := get(key); v != "" {
			table[svc] = v
		}
	}
	addrs, err := gateway.NewAddresses(table)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	cfg.Services = addrs

	return cfg, nil
}

// UsesDevSecret reports whether the flash cookie is signed with the built-in secret.
func (c *Config) UsesDevSecret() bool {
	return c.SessionSecret == devSessionSecret
}

// ServiceEnv returns the environment variable that overrides s.
func ServiceEnv(s gateway.Service) string {
	return serviceEnv[s]
}
