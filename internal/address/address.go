package address

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrEmptyInput is returned for empty or whitespace-only input.
	ErrEmptyInput = errors.New("email address cannot be empty")
	// ErrMalformedAddress is returned when the input does not split into
	// exactly one non-empty local part and one non-empty domain.
	ErrMalformedAddress = errors.New("must be a valid email address")
)

// ParseError records the input that failed to parse.
type ParseError struct {
	Input string
	Err   error
}

func (e *ParseError) Error() string {
	if errors.Is(e.Err, ErrEmptyInput) {
		return e.Err.Error()
	}
	return fmt.Sprintf("%q %v", e.Input, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Address is a parsed, lowercased email address. The zero value is not a
// valid address; use Parse.
type Address struct {
	raw    string
	local  string
	domain string
}

// Parse trims and lowercases raw and splits it on '@'.
func Parse(raw string) (Address, error) {
	normalized := strings.ToLower(strings.TrimSpace(raw))
	if normalized == "" {
		return Address{}, &ParseError{Input: raw, Err: ErrEmptyInput}
	}

	parts := strings.Split(normalized, "@")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return Address{}, &ParseError{Input: raw, Err: ErrMalformedAddress}
	}

	return Address{
		raw:    normalized,
		local:  parts[0],
		domain: parts[1],
	}, nil
}

// MustParse is like Parse but panics on error.
func MustParse(raw string) Address {
	a, err := Parse(raw)
	if err != nil {
		panic(err)
	}
	return a
}

// String returns the full normalized address.
func (a Address) String() string {
	return a.raw
}

func (a Address) Local() string {
	return a.local
}

func (a Address) Domain() string {
	return a.domain
}

// Provider returns the last two labels of the domain, e.g. company.org for
// mail.company.org. Domains with two labels or fewer are returned as is.
func (a Address) Provider() string {
	labels := strings.Split(a.domain, ".")
	if len(labels) <= 2 {
		return a.domain
	}
	return strings.Join(labels[len(labels)-2:], ".")
}

// Subdomain returns every label before the last two, or "" if there are none.
func (a Address) Subdomain() string {
	labels := strings.Split(a.domain, ".")
	if len(labels) <= 2 {
		return ""
	}
	return strings.Join(labels[:len(labels)-2], ".")
}

func (a Address) HasSubdomain() bool {
	return a.Subdomain() != ""
}

// Format selects a view of an address for Formatted.
type Format string

const (
	FormatFull      Format = "full"
	FormatLocal     Format = "local"
	FormatDomain    Format = "domain"
	FormatProvider  Format = "provider"
	FormatSubdomain Format = "subdomain"
)

// ParseFormat maps a format name to its Format.
func ParseFormat(name string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(name))); f {
	case FormatFull, FormatLocal, FormatDomain, FormatProvider, FormatSubdomain:
		return f, nil
	default:
		return "", fmt.Errorf("unknown format %q", name)
	}
}

// Formatted returns the requested view. Unknown kinds fall back to the full
// address.
func (a Address) Formatted(kind Format) string {
	switch kind {
	case FormatLocal:
		return a.local
	case FormatDomain:
		return a.domain
	case FormatProvider:
		return a.Provider()
	case FormatSubdomain:
		return a.Subdomain()
	default:
		return a.raw
	}
}
