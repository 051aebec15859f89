package address

import (
	"sort"
	"strings"
)

// Role-based local parts
var roleLocals = map[string]bool{
	// Administrative
	"admin":         true,
	"administrator": true,
	"postmaster":    true,
	"hostmaster":    true,
	"webmaster":     true,
	"root":          true,
	"sysadmin":      true,

	// Support
	"support":         true,
	"help":            true,
	"helpdesk":        true,
	"customerservice": true,
	"service":         true,

	// Contact/Info
	"info":      true,
	"contact":   true,
	"contactus": true,
	"hello":     true,
	"enquiries": true,
	"inquiry":   true,
	"feedback":  true,

	// Sales/Marketing
	"sales":     true,
	"marketing": true,
	"press":     true,
	"media":     true,

	// No-reply
	"noreply":       true,
	"no-reply":      true,
	"donotreply":    true,
	"do-not-reply":  true,
	"mailer-daemon": true,
	"bounce":        true,
	"bounces":       true,

	// Security/Abuse
	"abuse":      true,
	"security":   true,
	"spam":       true,
	"compliance": true,
	"legal":      true,
	"privacy":    true,

	// Finance
	"billing":    true,
	"invoices":   true,
	"accounting": true,
	"finance":    true,
	"payments":   true,

	// HR/Jobs
	"hr":         true,
	"recruiting": true,
	"jobs":       true,
	"careers":    true,

	// Team
	"team":   true,
	"staff":  true,
	"office": true,
	"all":    true,

	// IT/Dev
	"devops":      true,
	"engineering": true,
	"noc":         true,

	// Orders
	"orders":   true,
	"shipping": true,
	"returns":  true,

	// Lists
	"newsletter":    true,
	"notifications": true,
	"alerts":        true,
	"unsubscribe":   true,
}

// Longest first so that "administrator1" is attributed to administrator.
var rolePrefixes = func() []string {
	prefixes := make([]string, 0, len(roleLocals))
	for p := range roleLocals {
		prefixes = append(prefixes, p)
	}
	sort.Slice(prefixes, func(i, j int) bool {
		if len(prefixes[i]) != len(prefixes[j]) {
			return len(prefixes[i]) > len(prefixes[j])
		}
		return prefixes[i] < prefixes[j]
	})
	return prefixes
}()

// IsRoleAccount reports whether the local part names a function rather than
// a person: an exact role name, or a role name followed by '-', '_', '.',
// '+' or a digit.
func (a Address) IsRoleAccount() bool {
	return isRoleLocal(a.local)
}

func isRoleLocal(local string) bool {
	if roleLocals[local] {
		return true
	}

	for _, prefix := range rolePrefixes {
		rest, ok := strings.CutPrefix(local, prefix)
		if !ok || rest == "" {
			continue
		}
		c := rest[0]
		if c == '-' || c == '_' || c == '.' || c == '+' || (c >= '0' && c <= '9') {
			return true
		}
	}

	return false
}

// RoleLocalCount returns the number of known role names.
func RoleLocalCount() int {
	return len(roleLocals)
}
