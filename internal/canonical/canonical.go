// Package canonical computes the provider-normalized form of an address,
// used to tell that two differently written addresses reach the same
// mailbox.
package canonical

import (
	"github.com/nephila016/emailcanon/internal/address"
	"github.com/nephila016/emailcanon/internal/debug"
	"github.com/nephila016/emailcanon/internal/provider"
)

type Canonicalizer struct {
	registry *provider.Registry
}

// New returns a Canonicalizer using reg, or provider.Default() when reg is
// nil.
func New(reg *provider.Registry) *Canonicalizer {
	if reg == nil {
		reg = provider.Default()
	}
	return &Canonicalizer{registry: reg}
}

// Provider returns the provider owning the address domain.
func (c *Canonicalizer) Provider(a address.Address) provider.Provider {
	return c.registry.Lookup(a.Domain())
}

// Canonical returns local'@domain' after applying the owning provider's
// rule. It never fails for a parsed address; the local part may come out
// empty when the rule strips it entirely.
func (c *Canonicalizer) Canonical(a address.Address) string {
	local, domain, p := c.registry.Canonicalize(a.Local(), a.Domain())
	canonical := local + "@" + domain
	debug.Detail("CANONICAL", "%s -> %s (%s)", a, canonical, p)
	return canonical
}

// CanonicalStrict is Canonical but reports provider.ErrEmptyLocal instead
// of producing an address with an empty local part.
func (c *Canonicalizer) CanonicalStrict(a address.Address) (string, error) {
	p := c.Provider(a)
	local, domain, err := p.CanonicalizeStrict(a.Local(), a.Domain())
	if err != nil {
		debug.Detail("CANONICAL", "%s: %v", a, err)
		return "", err
	}
	return local + "@" + domain, nil
}

// CanonicalDomain returns the provider's canonical domain. ok is false when
// the domain falls back to Generic, which has none.
func (c *Canonicalizer) CanonicalDomain(a address.Address) (domain string, ok bool) {
	p := c.Provider(a)
	if p == provider.Generic {
		return "", false
	}
	return p.CanonicalDomain(), true
}

// IsSupported reports whether a non-Generic provider owns the address
// domain.
func (c *Canonicalizer) IsSupported(a address.Address) bool {
	return c.registry.Supports(a.Domain())
}

// Same reports whether a and b canonicalize to the same mailbox.
func (c *Canonicalizer) Same(a, b address.Address) bool {
	return c.Canonical(a) == c.Canonical(b)
}
