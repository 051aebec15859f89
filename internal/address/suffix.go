package address

import (
	"golang.org/x/net/publicsuffix"
)

// RegistrableDomain returns the public suffix plus one label, e.g.
// example.co.uk for mail.example.co.uk. Unlike Provider it knows about
// multi-label suffixes. It fails when the domain is itself a public suffix.
func (a Address) RegistrableDomain() (string, error) {
	return publicsuffix.EffectiveTLDPlusOne(a.domain)
}

// HasICANNSuffix reports whether the domain's public suffix is managed by
// ICANN rather than privately (blogspot.com) or unknown. The list is
// embedded at build time and may lag behind new TLDs.
func (a Address) HasICANNSuffix() bool {
	_, icann := publicsuffix.PublicSuffix(a.domain)
	return icann
}
