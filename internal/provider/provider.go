package provider

import (
	"errors"
	"fmt"
	"strings"
)

// ErrEmptyLocal is reported by the strict helpers when a provider rule
// strips the whole local part.
var ErrEmptyLocal = errors.New("email local part cannot be empty after normalization")

// Provider is a mailbox provider family. The set is closed; Generic, the
// zero value, is the fallback for every domain no other provider claims.
type Provider int

const (
	Generic Provider = iota
	Gmail
	Outlook
	Yahoo
	Icloud
	Protonmail
	Fastmail
	Yandex
	Walla
)

type rule struct {
	name            string
	canonicalDomain string
	domains         []string
	local           func(string) string
}

var rules = [...]rule{
	Generic: {
		name:  "generic",
		local: keep,
	},
	Gmail: {
		name:            "gmail",
		canonicalDomain: "gmail.com",
		domains:         []string{"gmail.com", "googlemail.com"},
		local: func(local string) string {
			return removeDots(stripPlus(local))
		},
	},
	Outlook: {
		name:            "outlook",
		canonicalDomain: "outlook.com",
		domains:         outlookDomains,
		local:           stripPlus,
	},
	Yahoo: {
		name:            "yahoo",
		canonicalDomain: "yahoo.com",
		domains: []string{
			"yahoo.com", "yahoo.co.uk", "yahoo.ca", "yahoo.de", "yahoo.fr", "yahoo.in", "yahoo.it",
			"ymail.com", "rocketmail.com",
		},
		local: stripHyphenSuffix,
	},
	Icloud: {
		name:            "icloud",
		canonicalDomain: "icloud.com",
		domains:         []string{"icloud.com", "me.com", "mac.com"},
		local:           stripPlus,
	},
	Protonmail: {
		name:            "protonmail",
		canonicalDomain: "protonmail.com",
		domains:         []string{"protonmail.com", "proton.me", "pm.me"},
		local:           keep,
	},
	Fastmail: {
		name:            "fastmail",
		canonicalDomain: "fastmail.com",
		domains:         []string{"fastmail.com", "fastmail.fm"},
		local:           keep,
	},
	Yandex: {
		name:            "yandex",
		canonicalDomain: "yandex.ru",
		domains:         []string{"yandex.ru", "yandex.ua", "yandex.kz", "yandex.com", "yandex.by", "ya.ru"},
		local:           keep,
	},
	Walla: {
		name:            "walla",
		canonicalDomain: "walla.co.il",
		domains:         []string{"walla.co.il", "walla.com"},
		local:           keep,
	},
}

var outlookDomains = []string{
	"outlook.com", "outlook.at", "outlook.be", "outlook.cl", "outlook.co.il", "outlook.co.nz", "outlook.co.th", "outlook.co.uk",
	"outlook.com.ar", "outlook.com.au", "outlook.com.br", "outlook.com.gr", "outlook.com.pe", "outlook.com.tr", "outlook.com.vn",
	"outlook.cz", "outlook.de", "outlook.dk", "outlook.es", "outlook.fr", "outlook.hu", "outlook.id", "outlook.ie",
	"outlook.in", "outlook.it", "outlook.jp", "outlook.kr", "outlook.lv", "outlook.my", "outlook.ph", "outlook.pt",
	"outlook.sa", "outlook.sg", "outlook.sk",
	"hotmail.com", "hotmail.at", "hotmail.be", "hotmail.ca", "hotmail.cl", "hotmail.co.il", "hotmail.co.nz", "hotmail.co.th", "hotmail.co.uk",
	"hotmail.com.ar", "hotmail.com.au", "hotmail.com.br", "hotmail.com.gr", "hotmail.com.mx", "hotmail.com.pe", "hotmail.com.tr", "hotmail.com.vn",
	"hotmail.cz", "hotmail.de", "hotmail.dk", "hotmail.es", "hotmail.fr", "hotmail.hu", "hotmail.id", "hotmail.ie",
	"hotmail.in", "hotmail.it", "hotmail.jp", "hotmail.kr", "hotmail.lv", "hotmail.my", "hotmail.ph", "hotmail.pt",
	"hotmail.sa", "hotmail.sg", "hotmail.sk",
	"live.com", "live.be", "live.co.uk", "live.com.ar", "live.com.mx", "live.de", "live.es", "live.eu", "live.fr", "live.it", "live.nl",
	"msn.com", "passport.com",
}

// domainIndex maps every supported domain to its owner.
var domainIndex = func() map[string]Provider {
	idx := make(map[string]Provider)
	for _, p := range All() {
		for _, d := range rules[p].domains {
			idx[d] = p
		}
	}
	return idx
}()

// All returns every provider except Generic, in declaration order.
func All() []Provider {
	return []Provider{Gmail, Outlook, Yahoo, Icloud, Protonmail, Fastmail, Yandex, Walla}
}

// Parse returns the provider with the given name.
func Parse(name string) (Provider, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for p := range rules {
		if rules[p].name == name {
			return Provider(p), nil
		}
	}
	return Generic, fmt.Errorf("unknown provider %q", name)
}

func (p Provider) valid() bool {
	return p >= 0 && int(p) < len(rules)
}

func (p Provider) rule() rule {
	if !p.valid() {
		return rules[Generic]
	}
	return rules[p]
}

func (p Provider) String() string {
	if !p.valid() {
		return fmt.Sprintf("Provider(%d)", int(p))
	}
	return rules[p].name
}

func (p Provider) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// Supports reports exact membership of domain in the provider's domain
// list. Generic supports every domain. Callers pass lowercase domains.
func (p Provider) Supports(domain string) bool {
	if p == Generic || !p.valid() {
		return true
	}
	owner, ok := domainIndex[domain]
	return ok && owner == p
}

// CanonicalDomain is the domain every supported domain normalizes to, or
// "" for Generic.
func (p Provider) CanonicalDomain() string {
	return p.rule().canonicalDomain
}

// SupportedDomains returns a copy of the provider's domain list. Generic
// returns nil.
func (p Provider) SupportedDomains() []string {
	domains := p.rule().domains
	if domains == nil {
		return nil
	}
	return append([]string(nil), domains...)
}

// Canonicalize lowercases local, applies the provider's local-part rule and
// swaps in the canonical domain. Generic keeps domain as given. The
// resulting local part may be empty; see CanonicalizeStrict.
func (p Provider) Canonicalize(local, domain string) (string, string) {
	r := p.rule()
	local = r.local(strings.ToLower(local))
	if r.canonicalDomain != "" {
		domain = r.canonicalDomain
	}
	return local, domain
}

// CanonicalizeStrict is Canonicalize but fails with ErrEmptyLocal instead
// of returning an empty local part.
func (p Provider) CanonicalizeStrict(local, domain string) (string, string, error) {
	l, d := p.Canonicalize(local, domain)
	if l == "" {
		return "", "", fmt.Errorf("%s: %w", p, ErrEmptyLocal)
	}
	return l, d, nil
}

func keep(local string) string {
	return local
}

// stripPlus drops a plus sub-address. A leading '+' is part of the mailbox.
func stripPlus(local string) string {
	if i := strings.IndexByte(local, '+'); i > 0 {
		return local[:i]
	}
	return local
}

func removeDots(local string) string {
	return strings.ReplaceAll(local, ".", "")
}

// stripHyphenSuffix drops everything from the last '-' onward. A leading
// '-' is part of the mailbox.
func stripHyphenSuffix(local string) string {
	if i := strings.LastIndexByte(local, '-'); i > 0 {
		return local[:i]
	}
	return local
}
