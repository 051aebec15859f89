package provider

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCanonicalize(t *testing.T) {
	tests := []struct {
		name       string
		provider   Provider
		local      string
		domain     string
		wantLocal  string
		wantDomain string
	}{
		{"gmail dots and tag", Gmail, "user.name+tag", "gmail.com", "username", "gmail.com"},
		{"gmail googlemail", Gmail, "user.name", "googlemail.com", "username", "gmail.com"},
		{"gmail dotted tag", Gmail, "user.name+tag.with.dots", "gmail.com", "username", "gmail.com"},
		{"gmail empty tag", Gmail, "user+", "gmail.com", "user", "gmail.com"},
		{"gmail leading plus", Gmail, "+user", "gmail.com", "+user", "gmail.com"},
		{"gmail multiple plus", Gmail, "user+tag+more", "gmail.com", "user", "gmail.com"},
		{"gmail uppercase", Gmail, "User.Name+Tag", "gmail.com", "username", "gmail.com"},
		{"gmail edge dots", Gmail, ".user.", "gmail.com", "user", "gmail.com"},
		{"gmail plus before dots", Gmail, ".+x", "gmail.com", "", "gmail.com"},
		{"gmail dots then tag", Gmail, "..a+x", "gmail.com", "a", "gmail.com"},
		{"outlook tag", Outlook, "user.name+tag", "outlook.com", "user.name", "outlook.com"},
		{"outlook hotmail", Outlook, "user.name", "hotmail.co.uk", "user.name", "outlook.com"},
		{"outlook leading plus", Outlook, "+user", "outlook.com", "+user", "outlook.com"},
		{"yahoo last hyphen", Yahoo, "user-name-tag", "yahoo.com", "user-name", "yahoo.com"},
		{"yahoo single hyphen", Yahoo, "user-name", "ymail.com", "user", "yahoo.com"},
		{"yahoo plus kept", Yahoo, "user+tag", "yahoo.com", "user+tag", "yahoo.com"},
		{"yahoo leading hyphen", Yahoo, "-user", "yahoo.com", "-user", "yahoo.com"},
		{"yahoo trailing hyphen", Yahoo, "user-", "yahoo.com", "user", "yahoo.com"},
		{"icloud tag", Icloud, "user.name+tag", "me.com", "user.name", "icloud.com"},
		{"protonmail verbatim", Protonmail, "User.Name+Tag", "pm.me", "user.name+tag", "protonmail.com"},
		{"fastmail verbatim", Fastmail, "user.name+tag", "fastmail.fm", "user.name+tag", "fastmail.com"},
		{"yandex verbatim", Yandex, "user-name+tag", "ya.ru", "user-name+tag", "yandex.ru"},
		{"walla verbatim", Walla, "user.name", "walla.com", "user.name", "walla.co.il"},
		{"generic keeps domain", Generic, "User.Name+Tag", "example.com", "user.name+tag", "example.com"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			local, domain := tt.provider.Canonicalize(tt.local, tt.domain)
			require.Equal(t, tt.wantLocal, local)
			require.Equal(t, tt.wantDomain, domain)
		})
	}
}

func TestCanonicalizeIdempotent(t *testing.T) {
	locals := []string{"user.name+tag", "+user", "user+", "u.s.e.r", "user-name", "a+b.c-d"}
	for _, p := range append(All(), Generic) {
		if p == Yahoo {
			continue
		}
		for _, local := range locals {
			domain := "example.com"
			if p != Generic {
				domain = p.SupportedDomains()[0]
			}
			l1, d1 := p.Canonicalize(local, domain)
			l2, d2 := p.Canonicalize(l1, d1)
			require.Equal(t, l1, l2, "%s %s", p, local)
			require.Equal(t, d1, d2, "%s %s", p, local)
		}
	}
}

func TestCanonicalizeStrict(t *testing.T) {
	_, _, err := Gmail.CanonicalizeStrict("...", "gmail.com")
	require.ErrorIs(t, err, ErrEmptyLocal)

	local, _ := Gmail.Canonicalize("...", "gmail.com")
	require.Equal(t, "", local)

	local, domain, err := Gmail.CanonicalizeStrict("a.b", "gmail.com")
	require.NoError(t, err)
	require.Equal(t, "ab", local)
	require.Equal(t, "gmail.com", domain)
}

func TestSupports(t *testing.T) {
	require.True(t, Gmail.Supports("gmail.com"))
	require.True(t, Gmail.Supports("googlemail.com"))
	require.False(t, Gmail.Supports("mail.gmail.com"))
	require.False(t, Gmail.Supports("GMAIL.COM"))
	require.False(t, Gmail.Supports("outlook.com"))
	require.True(t, Outlook.Supports("passport.com"))
	require.True(t, Outlook.Supports("live.nl"))
	require.True(t, Generic.Supports("anything.example"))
}

func TestCanonicalDomainAndSupportedDomains(t *testing.T) {
	require.Equal(t, "", Generic.CanonicalDomain())
	require.Nil(t, Generic.SupportedDomains())

	for _, p := range All() {
		require.NotEmpty(t, p.CanonicalDomain(), p.String())
		require.Contains(t, p.SupportedDomains(), p.CanonicalDomain(), p.String())
		require.True(t, p.Supports(p.CanonicalDomain()), p.String())
	}

	domains := Gmail.SupportedDomains()
	domains[0] = "mutated.example"
	require.Equal(t, "gmail.com", Gmail.SupportedDomains()[0])
}

func TestParse(t *testing.T) {
	for _, p := range append(All(), Generic) {
		got, err := Parse(p.String())
		require.NoError(t, err)
		require.Equal(t, p, got)
	}

	got, err := Parse(" Gmail ")
	require.NoError(t, err)
	require.Equal(t, Gmail, got)

	_, err = Parse("aol")
	require.Error(t, err)

	require.Equal(t, "Provider(42)", Provider(42).String())
}
