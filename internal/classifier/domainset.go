package classifier

import (
	"sort"
	"strings"

	"github.com/scylladb/go-set/strset"
)

// DomainSet is an immutable set of lowercase domains. The zero value is an
// empty set.
type DomainSet struct {
	set *strset.Set
}

// NewDomainSet trims and lowercases every domain; empty entries are dropped.
func NewDomainSet(domains ...string) DomainSet {
	s := strset.NewWithSize(len(domains))
	for _, d := range domains {
		d = strings.ToLower(strings.TrimSpace(d))
		if d != "" {
			s.Add(d)
		}
	}
	return DomainSet{set: s}
}

// Has reports exact membership.
func (s DomainSet) Has(domain string) bool {
	return s.set != nil && s.set.Has(domain)
}

func (s DomainSet) Len() int {
	if s.set == nil {
		return 0
	}
	return s.set.Size()
}

// List returns the domains sorted.
func (s DomainSet) List() []string {
	if s.set == nil {
		return []string{}
	}
	list := s.set.List()
	sort.Strings(list)
	return list
}

// Union returns a new set holding the domains of s and every other set.
func (s DomainSet) Union(others ...DomainSet) DomainSet {
	sets := make([]*strset.Set, 0, len(others)+1)
	for _, o := range append([]DomainSet{s}, others...) {
		if o.set != nil {
			sets = append(sets, o.set)
		}
	}
	if len(sets) == 0 {
		return DomainSet{}
	}
	return DomainSet{set: strset.Union(sets...)}
}
