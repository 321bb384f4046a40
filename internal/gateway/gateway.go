// Package gateway is the single way the front-ends reach upstream services.
// A fixed table maps logical service names to base URLs; every call is one
// HTTP request built from that table, a path and an optional JSON payload.
package gateway

import (
	"fmt"
	"net/url"
	"sort"
	"strings"
)

// Service is the logical name of an upstream service.
type Service string

const (
	Auth          Service = "auth"
	Users         Service = "users"
	Spaces        Service = "spaces"
	Availability  Service = "availability"
	Bookings      Service = "bookings"
	Incidents     Service = "incidents"
	Admin         Service = "admin"
	Notifications Service = "notifications"
	Reports       Service = "reports"
)

// Services lists every upstream service in port order.
var Services = []Service{Auth, Users, Spaces, Availability, Bookings, Incidents, Admin, Notifications, Reports}

// DefaultAddresses returns the local development table (ports 5001-5009).
func DefaultAddresses() map[Service]string {
	m := make(map[Service]string, len(Services))
	for i, s := range Services {
		m[s] = fmt.Sprintf("http://localhost:%d", 5001+i)
	}
	return m
}

// Addresses is the read-only service table. It is built once at startup and
// never reloaded, so it is safe to share between request goroutines.
type Addresses struct {
	base map[Service]string
}

// NewAddresses validates and copies m. Every known service must be present
// with an absolute http(s) URL; trailing slashes are dropped.
func NewAddresses(m map[Service]string) (Addresses, error) {
	base := make(map[Service]string, len(m))
	for _, s := range Services {
		raw, ok := m[s]
		if !ok || strings.TrimSpace(raw) == "" {
			return Addresses{}, fmt.Errorf("gateway: no address for service %q", s)
		}
		u, err := url.Parse(strings.TrimSpace(raw))
		if err != nil {
			return Addresses{}, fmt.Errorf("gateway: address for %q: %w", s, err)
		}
		if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return Addresses{}, fmt.Errorf("gateway: address for %q must be an absolute http(s) URL, got %q", s, raw)
		}
		base[s] = strings.TrimRight(u.String(), "/")
	}
	return Addresses{base: base}, nil
}

// URL returns the base URL of s.
func (a Addresses) URL(s Service) (string, bool) {
	u, ok := a.base[s]
	return u, ok
}

// Map returns a copy of the table.
func (a Addresses) Map() map[Service]string {
	m := make(map[Service]string, len(a.base))
	for k, v := range a.base {
		m[k] = v
	}
	return m
}

// Names returns the configured services sorted by name.
func (a Addresses) Names() []Service {
	names := make([]Service, 0, len(a.base))
	for s := range a.base {
		names = append(names, s)
	}
	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })
	return names
}
