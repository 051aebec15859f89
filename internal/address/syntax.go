package address

import (
	"regexp"
	"strings"

	"github.com/nephila016/emailcanon/internal/debug"
)

const (
	LocalMaxLength   = 64
	DomainMaxLength  = 253
	AddressMaxLength = 254
)

const (
	atext    = `[a-zA-Z0-9!#$%&'*+/=?^_` + "`" + `{|}~-]+`
	dnsLabel = `[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?`
	tldLabel = `[a-zA-Z](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?`
)

var (
	// Dot-atom local part and a hostname with at least two labels. The last
	// label starts with a letter, so bare IPs and numeric TLDs are rejected.
	mailboxRegex = regexp.MustCompile(`^` + atext + `(?:\.` + atext + `)*@` + dnsLabel + `(?:\.` + dnsLabel + `)*\.` + tldLabel + `$`)

	localCharsRegex = regexp.MustCompile(`^[a-zA-Z0-9._+-]+$`)
)

// isMailbox is the permissive mailbox filter shared by IsValid and
// HasValidDomain.
func isMailbox(email string) bool {
	if len(email) > AddressMaxLength {
		return false
	}
	at := strings.LastIndexByte(email, '@')
	if at < 0 || at > LocalMaxLength {
		return false
	}
	return mailboxRegex.MatchString(email)
}

// IsValid reports whether the full address passes the mailbox syntax filter.
func (a Address) IsValid() bool {
	valid := isMailbox(a.raw)
	if !valid {
		debug.Detail("SYNTAX", "Failed mailbox syntax: %s", a.raw)
	}
	return valid
}

// HasValidLocal applies the strict local-part policy: at most 64 bytes of
// [a-zA-Z0-9._+-], no consecutive dots, no leading or trailing dot.
func (a Address) HasValidLocal() bool {
	log := debug.GetLogger()

	if len(a.local) > LocalMaxLength {
		log.Detail("SYNTAX", "Local part too long: %d chars (max %d)", len(a.local), LocalMaxLength)
		return false
	}

	if !localCharsRegex.MatchString(a.local) {
		log.Detail("SYNTAX", "Local part has invalid characters: %s", a.local)
		return false
	}

	if strings.Contains(a.local, "..") {
		log.Detail("SYNTAX", "Consecutive dots in local part")
		return false
	}

	if strings.HasPrefix(a.local, ".") || strings.HasSuffix(a.local, ".") {
		log.Detail("SYNTAX", "Local part starts/ends with dot")
		return false
	}

	return true
}

// HasValidDomain checks the domain length and runs test@<domain> through
// the mailbox filter.
func (a Address) HasValidDomain() bool {
	if len(a.domain) > DomainMaxLength {
		debug.Detail("SYNTAX", "Domain too long: %d chars (max %d)", len(a.domain), DomainMaxLength)
		return false
	}

	if !isMailbox("test@" + a.domain) {
		debug.Detail("SYNTAX", "Invalid domain: %s", a.domain)
		return false
	}

	return true
}
