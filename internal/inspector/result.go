package inspector

import (
	"time"

	"github.com/nephila016/emailcanon/internal/classifier"
)

// Status represents the inspection status
type Status string

const (
	StatusValid     Status = "valid"
	StatusInvalid   Status = "invalid"
	StatusMalformed Status = "malformed"
)

// Result contains the complete inspection of one address
type Result struct {
	Email      string `json:"email"`
	Normalized string `json:"normalized"`
	Status     Status `json:"status"`
	Reason     string `json:"reason,omitempty"`

	// Structure
	LocalPart string `json:"local_part"`
	Domain    string `json:"domain"`
	Provider  string `json:"provider"`
	Subdomain string `json:"subdomain,omitempty"`

	RegistrableDomain string `json:"registrable_domain,omitempty"`
	ICANNSuffix       bool   `json:"icann_suffix"`

	// Syntax check results
	SyntaxValid bool `json:"syntax_valid"`
	LocalValid  bool `json:"local_valid"`
	DomainValid bool `json:"domain_valid"`

	// Classification
	Class       classifier.Class `json:"class,omitempty"`
	Disposable  bool             `json:"disposable"`
	Free        bool             `json:"free"`
	Corporate   bool             `json:"corporate"`
	RoleAccount bool             `json:"role_account"`

	// Canonical form
	Canonical          string `json:"canonical,omitempty"`
	CanonicalProvider  string `json:"canonical_provider,omitempty"`
	CanonicalDomain    string `json:"canonical_domain,omitempty"`
	CanonicalSupported bool   `json:"canonical_supported"`

	Suggestion string    `json:"suggestion,omitempty"`
	CheckedAt  time.Time `json:"checked_at"`
	LatencyUs  int64     `json:"latency_us"`
	Error      string    `json:"error,omitempty"`
}

// NewResult creates a new Result with default values
func NewResult(email string) *Result {
	return &Result{
		Email:     email,
		Status:    StatusInvalid,
		CheckedAt: time.Now(),
	}
}

// SetValid marks the result as valid
func (r *Result) SetValid() {
	r.Status = StatusValid
	r.Reason = ""
}

// SetInvalid marks the result as syntactically invalid
func (r *Result) SetInvalid(reason string) {
	r.Status = StatusInvalid
	r.Reason = reason
}

// SetMalformed marks the result as unparseable
func (r *Result) SetMalformed(err error) {
	r.Status = StatusMalformed
	r.Error = err.Error()
	r.Reason = err.Error()
}

// IsUsable returns true if the address parsed, passed the syntax check and
// is not disposable.
func (r *Result) IsUsable() bool {
	return r.Status == StatusValid && !r.Disposable
}

// Summary returns a human-readable summary
func (r *Result) Summary() string {
	switch r.Status {
	case StatusValid:
		switch {
		case r.Disposable:
			return "Valid address on a disposable domain"
		case r.Free:
			return "Valid address on a free provider"
		default:
			return "Valid corporate address"
		}
	case StatusInvalid:
		return "Invalid address: " + r.Reason
	case StatusMalformed:
		return "Could not parse address: " + r.Error
	default:
		return "Unknown status"
	}
}

// DomainResult contains domain-level inspection results
type DomainResult struct {
	Domain             string           `json:"domain"`
	Valid              bool             `json:"valid"`
	Provider           string           `json:"provider"`
	Subdomain          string           `json:"subdomain,omitempty"`
	RegistrableDomain  string           `json:"registrable_domain,omitempty"`
	ICANNSuffix        bool             `json:"icann_suffix"`
	Class              classifier.Class `json:"class"`
	IsDisposable       bool             `json:"is_disposable"`
	IsFreeProvider     bool             `json:"is_free_provider"`
	IsCorporate        bool             `json:"is_corporate"`
	CanonicalProvider  string           `json:"canonical_provider"`
	CanonicalDomain    string           `json:"canonical_domain,omitempty"`
	CanonicalSupported bool             `json:"canonical_supported"`
	AliasDomains       []string         `json:"alias_domains,omitempty"`
	Suggestion         string           `json:"suggestion,omitempty"`
}
