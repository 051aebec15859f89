package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"

	"github.com/nephila016/emailcanon/internal/config"
	"github.com/nephila016/emailcanon/internal/debug"
)

func TestInitDebugReportsConfigFile(t *testing.T) {
	dir := t.TempDir()
	logPath := filepath.Join(dir, "debug.log")
	cfgPath := filepath.Join(dir, "emailcanon.yaml")
	content := "debug: 2\nno_color: true\ndebug_file: " + logPath + "\n"
	require.NoError(t, os.WriteFile(cfgPath, []byte(content), 0o644))

	saved := cfg
	t.Cleanup(func() {
		cfg = saved
		debug.Close()
		debug.GetLogger().SetLevel(debug.LevelOff)
	})

	v := viper.New()
	var err error
	cfg, err = config.Load(v, cfgPath)
	require.NoError(t, err)

	require.NoError(t, initDebug(v))
	debug.Close()

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	require.Contains(t, string(data), "[CONFIG] Using config file: "+cfgPath)
}
