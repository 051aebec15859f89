package output

import (
	"github.com/scylladb/go-set/strset"

	"github.com/nephila016/emailcanon/internal/inspector"
)

// DuplicateGroup is a set of distinct inputs that reach the same mailbox
type DuplicateGroup struct {
	Canonical string   `json:"canonical"`
	Provider  string   `json:"provider"`
	Emails    []string `json:"emails"`
}

// DuplicateGroups groups valid results by canonical address and returns
// every group with more than one distinct normalized input, in order of
// first appearance. Repeats of the same normalized input are collapsed.
func DuplicateGroups(results []*inspector.Result) []DuplicateGroup {
	index := make(map[string]int)
	groups := make([]DuplicateGroup, 0)
	members := make(map[string]*strset.Set)

	for _, r := range results {
		if r == nil || r.Status != inspector.StatusValid || r.Canonical == "" {
			continue
		}
		i, ok := index[r.Canonical]
		if !ok {
			i = len(groups)
			index[r.Canonical] = i
			groups = append(groups, DuplicateGroup{Canonical: r.Canonical, Provider: r.CanonicalProvider})
			members[r.Canonical] = strset.New()
		}
		if members[r.Canonical].Has(r.Normalized) {
			continue
		}
		members[r.Canonical].Add(r.Normalized)
		groups[i].Emails = append(groups[i].Emails, r.Normalized)
	}

	dups := make([]DuplicateGroup, 0)
	for _, g := range groups {
		if len(g.Emails) > 1 {
			dups = append(dups, g)
		}
	}
	return dups
}
