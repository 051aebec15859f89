package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	chdir(t, t.TempDir())

	cfg, err := Load(viper.New(), "")
	require.NoError(t, err)

	require.Equal(t, 0, cfg.Debug)
	require.False(t, cfg.ExtendedProviders)
	require.True(t, cfg.Inspect.CheckRole)
	require.True(t, cfg.Inspect.SuggestTypos)
	require.False(t, cfg.Inspect.Strict)
	require.Empty(t, cfg.Lists.Disposable)
	require.Equal(t, 4, cfg.Bulk.Workers)
	require.Equal(t, 100, cfg.Bulk.BufferSize)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "emailcanon.yaml")
	content := `
extended_providers: true
inspect:
  strict: true
  suggest_typos: false
lists:
  disposable:
    - /etc/emailcanon/burner.txt
  free:
    - /etc/emailcanon/free.txt
    - /etc/emailcanon/free-extra.txt
bulk:
  workers: 12
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(viper.New(), path)
	require.NoError(t, err)

	require.True(t, cfg.ExtendedProviders)
	require.True(t, cfg.Inspect.Strict)
	require.False(t, cfg.Inspect.SuggestTypos)
	require.True(t, cfg.Inspect.CheckRole)
	require.Equal(t, []string{"/etc/emailcanon/burner.txt"}, cfg.Lists.Disposable)
	require.Len(t, cfg.Lists.Free, 2)
	require.Equal(t, 12, cfg.Bulk.Workers)
}

func TestLoadEnv(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	chdir(t, t.TempDir())
	t.Setenv("EMAILCANON_EXTENDED_PROVIDERS", "true")
	t.Setenv("EMAILCANON_BULK_WORKERS", "7")
	t.Setenv("EMAILCANON_INSPECT_STRICT", "true")

	cfg, err := Load(viper.New(), "")
	require.NoError(t, err)
	require.True(t, cfg.ExtendedProviders)
	require.Equal(t, 7, cfg.Bulk.Workers)
	require.True(t, cfg.Inspect.Strict)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(viper.New(), filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("bulk:\n  workers: 0\n"), 0o644))
	_, err = Load(viper.New(), path)
	require.ErrorContains(t, err, "bulk.workers")

	require.NoError(t, os.WriteFile(path, []byte("debug: 9\n"), 0o644))
	_, err = Load(viper.New(), path)
	require.ErrorContains(t, err, "debug level")
}

// chdir changes the working directory for the duration of the test,
// restoring it on cleanup (equivalent to testing.T.Chdir in Go 1.24+).
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}
