package provider

import (
	"strings"
	"sync"

	"github.com/nephila016/emailcanon/internal/debug"
)

// Registry resolves domains to providers in a fixed order, falling back to
// Generic. It is read-only after construction and safe for concurrent use.
type Registry struct {
	providers []Provider
}

// NewRegistry builds a registry consulting providers in the given order.
// Generic and duplicates are ignored; Generic is always the fallback.
func NewRegistry(providers ...Provider) *Registry {
	seen := make(map[Provider]bool, len(providers))
	r := &Registry{providers: make([]Provider, 0, len(providers))}
	for _, p := range providers {
		if p == Generic || !p.valid() || seen[p] {
			continue
		}
		seen[p] = true
		r.providers = append(r.providers, p)
	}
	return r
}

var (
	defaultRegistry = sync.OnceValue(func() *Registry {
		return NewRegistry(Gmail, Outlook, Yahoo, Icloud, Protonmail, Fastmail)
	})
	extendedRegistry = sync.OnceValue(func() *Registry {
		return NewRegistry(All()...)
	})
)

// Default returns the process-wide registry of Gmail, Outlook, Yahoo,
// Icloud, Protonmail and Fastmail.
func Default() *Registry {
	return defaultRegistry()
}

// Extended returns the default registry plus Yandex and Walla.
func Extended() *Registry {
	return extendedRegistry()
}

// Providers returns the consulted providers in order.
func (r *Registry) Providers() []Provider {
	return append([]Provider(nil), r.providers...)
}

// Lookup returns the first provider supporting domain, or Generic. The
// domain is matched case-insensitively.
func (r *Registry) Lookup(domain string) Provider {
	domain = strings.ToLower(domain)
	for _, p := range r.providers {
		if p.Supports(domain) {
			debug.Trace("PROVIDER", "%s resolved to %s", domain, p)
			return p
		}
	}
	debug.Trace("PROVIDER", "%s resolved to %s", domain, Generic)
	return Generic
}

// Supports reports whether a non-Generic provider claims domain.
func (r *Registry) Supports(domain string) bool {
	return r.Lookup(domain) != Generic
}

// Canonicalize resolves domain and applies the owning provider's rule.
// Generic results carry the lowercased domain.
func (r *Registry) Canonicalize(local, domain string) (string, string, Provider) {
	domain = strings.ToLower(domain)
	p := r.Lookup(domain)
	l, d := p.Canonicalize(local, domain)
	return l, d, p
}
