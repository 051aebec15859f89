package address

// ValidEmail reports whether raw parses and passes the mailbox filter.
// Unparseable input is simply invalid.
func ValidEmail(raw string) bool {
	a, err := Parse(raw)
	if err != nil {
		return false
	}
	return a.IsValid()
}

// ValidEmailLocal is ValidEmail plus the strict local-part policy.
func ValidEmailLocal(raw string) bool {
	a, err := Parse(raw)
	if err != nil {
		return false
	}
	return a.IsValid() && a.HasValidLocal()
}

// ValidEmailDomain is ValidEmail plus the domain checks.
func ValidEmailDomain(raw string) bool {
	a, err := Parse(raw)
	if err != nil {
		return false
	}
	return a.IsValid() && a.HasValidDomain()
}
