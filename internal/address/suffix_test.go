package address

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRegistrableDomain(t *testing.T) {
	tests := []struct {
		raw   string
		want  string
		icann bool
	}{
		{"user@gmail.com", "gmail.com", true},
		{"user@mail.example.co.uk", "example.co.uk", true},
		{"user@a.b.company.org", "company.org", true},
		{"user@someone.blogspot.com", "someone.blogspot.com", false},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			a := MustParse(tt.raw)
			got, err := a.RegistrableDomain()
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
			require.Equal(t, tt.icann, a.HasICANNSuffix())
		})
	}
}

func TestRegistrableDomainOfSuffix(t *testing.T) {
	_, err := MustParse("user@co.uk").RegistrableDomain()
	require.Error(t, err)
}
