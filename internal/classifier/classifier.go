package classifier

import (
	"fmt"

	"github.com/nephila016/emailcanon/internal/address"
	"github.com/nephila016/emailcanon/internal/debug"
)

// Class is the classification of an address domain.
type Class string

const (
	ClassDisposable Class = "disposable"
	ClassFree       Class = "free"
	ClassCorporate  Class = "corporate"
)

// IsDisposable reports whether the address domain is a disposable domain.
func IsDisposable(a address.Address, disposable DomainSet) bool {
	return disposable.Has(a.Domain())
}

// IsFree reports whether the address domain is free. Disposable wins over
// free when a domain is listed in both sets.
func IsFree(a address.Address, free, disposable DomainSet) bool {
	return free.Has(a.Domain()) && !disposable.Has(a.Domain())
}

// IsCorporate reports whether the address domain is neither free nor
// disposable.
func IsCorporate(a address.Address, free, disposable DomainSet) bool {
	return !IsFree(a, free, disposable) && !IsDisposable(a, disposable)
}

// Classifier holds a snapshot of the free and disposable domain sets.
type Classifier struct {
	free       DomainSet
	disposable DomainSet
}

func New(free, disposable DomainSet) *Classifier {
	overlap := 0
	for _, d := range free.List() {
		if disposable.Has(d) {
			overlap++
		}
	}
	if overlap > 0 {
		debug.Info("CLASSIFY", "%d domains listed as both free and disposable, treating as disposable", overlap)
	}
	return &Classifier{free: free, disposable: disposable}
}

// ClassifyDomain returns exactly one class for domain with the precedence
// disposable > free > corporate.
func (c *Classifier) ClassifyDomain(domain string) Class {
	switch {
	case c.disposable.Has(domain):
		return ClassDisposable
	case c.free.Has(domain):
		return ClassFree
	default:
		return ClassCorporate
	}
}

func (c *Classifier) Classify(a address.Address) Class {
	class := c.ClassifyDomain(a.Domain())
	debug.Detail("CLASSIFY", "%s: %s", a.Domain(), class)
	return class
}

func (c *Classifier) IsDisposable(a address.Address) bool {
	return IsDisposable(a, c.disposable)
}

func (c *Classifier) IsFree(a address.Address) bool {
	return IsFree(a, c.free, c.disposable)
}

func (c *Classifier) IsCorporate(a address.Address) bool {
	return IsCorporate(a, c.free, c.disposable)
}

// ValidCorporate reports whether raw is a valid address on a corporate
// domain. Unparseable input is rejected.
func (c *Classifier) ValidCorporate(raw string) bool {
	a, err := address.Parse(raw)
	if err != nil {
		return false
	}
	return a.IsValid() && c.IsCorporate(a)
}

// ValidNotDisposable reports whether raw is a valid address outside the
// disposable set.
func (c *Classifier) ValidNotDisposable(raw string) bool {
	a, err := address.Parse(raw)
	if err != nil {
		return false
	}
	return a.IsValid() && !c.IsDisposable(a)
}

func (c *Classifier) String() string {
	return fmt.Sprintf("classifier(free=%d, disposable=%d)", c.free.Len(), c.disposable.Len())
}
