package domainlist

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nephila016/emailcanon/internal/address"
	"github.com/nephila016/emailcanon/internal/classifier"
)

func writeList(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestRead(t *testing.T) {
	input := `# disposable domains
Throwaway.Example

  spam.example
not a domain
-bad.example
# trailing comment
`
	domains, skipped, err := Read(context.Background(), strings.NewReader(input))
	require.NoError(t, err)
	require.Equal(t, []string{"throwaway.example", "spam.example"}, domains)
	require.Equal(t, 2, skipped)
}

func TestReadCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := Read(ctx, strings.NewReader("a.example\n"))
	require.ErrorIs(t, err, context.Canceled)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	sources := []Source{
		{Name: "burner", Path: writeList(t, dir, "burner.txt", "burner.example\nmailinator.com\n"), Kind: KindDisposable},
		{Name: "extra-free", Path: writeList(t, dir, "free.txt", "freemail.example\n"), Kind: KindFree},
		{Name: "optional", Path: filepath.Join(dir, "missing.txt"), Kind: KindFree, Optional: true},
	}

	lists, err := Load(context.Background(), sources)
	require.NoError(t, err)

	require.True(t, lists.Disposable.Has("burner.example"))
	require.True(t, lists.Disposable.Has("10minutemail.com"))
	require.True(t, lists.Free.Has("freemail.example"))
	require.True(t, lists.Free.Has("gmail.com"))
	require.False(t, lists.Free.Has("burner.example"))

	names := make([]string, 0, len(lists.Sources))
	for _, s := range lists.Sources {
		names = append(names, s.Name)
	}
	require.Equal(t, []string{"manual", "manual", "burner", "extra-free"}, names)

	c := lists.Classifier()
	require.Equal(t, classifier.ClassDisposable, c.Classify(address.MustParse("x@burner.example")))
	require.Equal(t, classifier.ClassFree, c.Classify(address.MustParse("x@freemail.example")))
	require.Equal(t, classifier.ClassCorporate, c.Classify(address.MustParse("x@company.org")))
}

func TestLoadAggregatesErrors(t *testing.T) {
	dir := t.TempDir()
	sources := []Source{
		{Name: "first", Path: filepath.Join(dir, "nope-1.txt"), Kind: KindDisposable},
		{Name: "second", Path: filepath.Join(dir, "nope-2.txt"), Kind: KindFree},
		{Name: "weird", Path: writeList(t, dir, "ok.txt", "ok.example\n"), Kind: Kind("spam")},
	}

	lists, err := Load(context.Background(), sources)
	require.Error(t, err)
	require.Nil(t, lists)
	require.Contains(t, err.Error(), "source first")
	require.Contains(t, err.Error(), "source second")
	require.Contains(t, err.Error(), "unknown kind")
}

func TestBuiltin(t *testing.T) {
	lists := Builtin()
	require.True(t, lists.Free.Has("gmail.com"))
	require.True(t, lists.Disposable.Has("mailinator.com"))

	for _, d := range lists.Free.List() {
		require.False(t, lists.Disposable.Has(d), d)
		require.True(t, isDomain(d), d)
	}
	for _, d := range lists.Disposable.List() {
		require.True(t, isDomain(d), d)
	}
}

func TestBuiltinValidators(t *testing.T) {
	c := Builtin().Classifier()

	corporate := []string{
		"test@company.com", "user@business.org", "user@enterprise.net", "user@corporation.co.uk",
		"user@organization.org", "user@firm.com", "user@office.net", "user@work.org",
	}
	free := []string{
		"user@gmail.com", "user@yahoo.com", "user@hotmail.com", "user@outlook.com", "user@live.com",
		"user@aol.com", "user@icloud.com", "user@protonmail.com", "user@zoho.com", "user@yandex.com",
		"user@mail.com", "user@gmx.com", "user@web.de", "user@tutanota.com", "user@fastmail.com",
		"user@hey.com",
	}
	disposable := []string{
		"user@10minutemail.com", "user@tempmail.org", "user@guerrillamail.com", "user@mailinator.com",
		"user@yopmail.com", "user@temp-mail.org", "user@throwaway.email", "user@getnada.com",
		"user@maildrop.cc", "user@sharklasers.com", "user@test.com",
	}
	malformed := []string{"", "invalid-email", "user@example@com", "@example.com", "user@"}

	for _, raw := range corporate {
		require.True(t, c.ValidCorporate(raw), raw)
		require.True(t, c.ValidNotDisposable(raw), raw)
	}
	for _, raw := range free {
		require.False(t, c.ValidCorporate(raw), raw)
		require.True(t, c.ValidNotDisposable(raw), raw)
	}
	for _, raw := range disposable {
		require.False(t, c.ValidCorporate(raw), raw)
		require.False(t, c.ValidNotDisposable(raw), raw)
	}
	for _, raw := range malformed {
		require.False(t, c.ValidCorporate(raw), raw)
		require.False(t, c.ValidNotDisposable(raw), raw)
	}
}
