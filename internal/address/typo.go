package address

import "strings"

var domainTypos = map[string]string{
	// Gmail
	"gmial.com":  "gmail.com",
	"gmai.com":   "gmail.com",
	"gmaill.com": "gmail.com",
	"gmail.co":   "gmail.com",
	"gmail.cm":   "gmail.com",
	"gamil.com":  "gmail.com",
	"gnail.com":  "gmail.com",
	"gmal.com":   "gmail.com",
	"gmeil.com":  "gmail.com",
	"gimail.com": "gmail.com",

	// Yahoo
	"yaho.com":   "yahoo.com",
	"yahooo.com": "yahoo.com",
	"yhoo.com":   "yahoo.com",
	"yahoo.co":   "yahoo.com",
	"yahoo.cm":   "yahoo.com",
	"yhaoo.com":  "yahoo.com",

	// Hotmail
	"hotmal.com":   "hotmail.com",
	"hotmial.com":  "hotmail.com",
	"hotmail.co":   "hotmail.com",
	"hotmail.cm":   "hotmail.com",
	"hotmaill.com": "hotmail.com",
	"homail.com":   "hotmail.com",
	"htmail.com":   "hotmail.com",

	// Outlook
	"outlok.com":   "outlook.com",
	"outloo.com":   "outlook.com",
	"outlook.co":   "outlook.com",
	"outllook.com": "outlook.com",

	// iCloud
	"iclod.com":  "icloud.com",
	"icould.com": "icloud.com",
	"icloud.co":  "icloud.com",

	// Others
	"protonmail.co":  "protonmail.com",
	"protonmial.com": "protonmail.com",
	"fastmial.com":   "fastmail.com",
	"yandex.ri":      "yandex.ru",
}

// SuggestDomain returns the domain the user most likely meant when domain
// is a known misspelling of a popular mail domain, or "" otherwise.
func SuggestDomain(domain string) string {
	return domainTypos[strings.ToLower(strings.TrimSpace(domain))]
}

// Suggestion returns the address with its domain replaced by the suggested
// correction, or "" when the domain is not a known misspelling.
func (a Address) Suggestion() string {
	fix := SuggestDomain(a.domain)
	if fix == "" {
		return ""
	}
	return a.local + "@" + fix
}
