package inspector

import (
	"fmt"
	"strings"
	"time"

	"github.com/nephila016/emailcanon/internal/address"
	"github.com/nephila016/emailcanon/internal/canonical"
	"github.com/nephila016/emailcanon/internal/classifier"
	"github.com/nephila016/emailcanon/internal/debug"
	"github.com/nephila016/emailcanon/internal/provider"
)

// Config holds inspector configuration
type Config struct {
	// Reject addresses whose canonical local part comes out empty.
	StrictCanonical bool

	CheckRole    bool
	SuggestTypos bool
}

// DefaultConfig returns default inspector configuration
func DefaultConfig() *Config {
	return &Config{
		CheckRole:    true,
		SuggestTypos: true,
	}
}

// Inspector runs parsing, validation, classification and canonicalization
// for addresses.
type Inspector struct {
	config     *Config
	canon      *canonical.Canonicalizer
	classifier *classifier.Classifier
}

// New creates a new Inspector. A nil canonicalizer uses the default
// provider registry; a nil classifier treats every domain as corporate.
func New(canon *canonical.Canonicalizer, c *classifier.Classifier, config *Config) *Inspector {
	if config == nil {
		config = DefaultConfig()
	}
	if canon == nil {
		canon = canonical.New(nil)
	}
	if c == nil {
		c = classifier.New(classifier.DomainSet{}, classifier.DomainSet{})
	}
	return &Inspector{config: config, canon: canon, classifier: c}
}

// Inspect performs the complete inspection of one raw address
func (i *Inspector) Inspect(raw string) *Result {
	start := time.Now()
	result := NewResult(raw)
	defer func() {
		result.LatencyUs = time.Since(start).Microseconds()
	}()

	log := debug.GetLogger()
	log.Info("INSPECT", "Inspecting: %s", raw)

	a, err := address.Parse(raw)
	if err != nil {
		log.Detail("INSPECT", "Parse failed: %v", err)
		result.SetMalformed(err)
		return result
	}

	result.Normalized = a.String()
	result.LocalPart = a.Local()
	result.Domain = a.Domain()
	result.Provider = a.Provider()
	result.Subdomain = a.Subdomain()
	if registrable, err := a.RegistrableDomain(); err == nil {
		result.RegistrableDomain = registrable
	}
	result.ICANNSuffix = a.HasICANNSuffix()

	result.SyntaxValid = a.IsValid()
	result.LocalValid = a.HasValidLocal()
	result.DomainValid = a.HasValidDomain()

	class := i.classifier.Classify(a)
	result.Class = class
	result.Disposable = class == classifier.ClassDisposable
	result.Free = class == classifier.ClassFree
	result.Corporate = class == classifier.ClassCorporate

	if i.config.CheckRole {
		result.RoleAccount = a.IsRoleAccount()
	}
	if i.config.SuggestTypos {
		result.Suggestion = a.Suggestion()
		if result.Suggestion != "" {
			log.Info("INSPECT", "Possible typo detected: %s -> %s", a.Domain(), result.Suggestion)
		}
	}

	p := i.canon.Provider(a)
	result.CanonicalProvider = p.String()
	result.CanonicalSupported = p != provider.Generic
	if domain, ok := i.canon.CanonicalDomain(a); ok {
		result.CanonicalDomain = domain
	}

	if i.config.StrictCanonical {
		canon, err := i.canon.CanonicalStrict(a)
		if err != nil {
			result.SetInvalid(err.Error())
			return result
		}
		result.Canonical = canon
	} else {
		result.Canonical = i.canon.Canonical(a)
	}

	switch {
	case !result.SyntaxValid:
		result.SetInvalid("invalid email syntax")
	case !result.DomainValid:
		result.SetInvalid("invalid domain")
	default:
		result.SetValid()
	}

	log.Detail("INSPECT", "%s: %s, %s, canonical %s", raw, result.Status, result.Class, result.Canonical)
	return result
}

// InspectBatch inspects multiple addresses sequentially
func (i *Inspector) InspectBatch(raws []string) []*Result {
	results := make([]*Result, len(raws))
	for n, raw := range raws {
		results[n] = i.Inspect(raw)
	}
	return results
}

// InspectDomain classifies a bare domain and reports its provider family.
func (i *Inspector) InspectDomain(domain string) (*DomainResult, error) {
	domain = strings.ToLower(strings.TrimSpace(domain))
	if domain == "" || strings.Contains(domain, "@") {
		return nil, fmt.Errorf("invalid domain %q", domain)
	}

	log := debug.GetLogger()
	log.Info("DOMAIN", "Inspecting domain: %s", domain)

	a := address.MustParse("test@" + domain)
	p := i.canon.Provider(a)
	class := i.classifier.ClassifyDomain(domain)

	result := &DomainResult{
		Domain:             domain,
		Valid:              a.HasValidDomain(),
		Provider:           a.Provider(),
		Subdomain:          a.Subdomain(),
		ICANNSuffix:        a.HasICANNSuffix(),
		Class:              class,
		IsDisposable:       class == classifier.ClassDisposable,
		IsFreeProvider:     class == classifier.ClassFree,
		IsCorporate:        class == classifier.ClassCorporate,
		CanonicalProvider:  p.String(),
		CanonicalDomain:    p.CanonicalDomain(),
		CanonicalSupported: p != provider.Generic,
		AliasDomains:       p.SupportedDomains(),
	}
	if registrable, err := a.RegistrableDomain(); err == nil {
		result.RegistrableDomain = registrable
	} else {
		log.Detail("DOMAIN", "No registrable domain for %s: %v", domain, err)
	}
	if i.config.SuggestTypos {
		result.Suggestion = address.SuggestDomain(domain)
	}

	return result, nil
}
