package debug

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLevels(t *testing.T) {
	tests := []struct {
		level Level
		want  []string
	}{
		{LevelOff, nil},
		{LevelBasic, []string{"info", "error", "success"}},
		{LevelDetailed, []string{"info", "detail", "error", "success"}},
		{LevelFull, []string{"info", "detail", "trace", "error", "success"}},
	}

	for _, tt := range tests {
		var buf bytes.Buffer
		l := New(tt.level, &buf)
		l.Info("T", "info")
		l.Detail("T", "detail")
		l.Trace("T", "trace")
		l.Error("T", "error")
		l.Success("T", "success")

		var got []string
		for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
			if line == "" {
				continue
			}
			fields := strings.Fields(line)
			got = append(got, fields[len(fields)-1])
		}
		require.Equal(t, tt.want, got, "level %d", tt.level)
	}
}

type countingStringer struct{ calls int }

func (s *countingStringer) String() string {
	s.calls++
	return "value"
}

func TestDisabledLevelsSkipFormatting(t *testing.T) {
	var buf bytes.Buffer
	arg := &countingStringer{}

	off := New(LevelOff, &buf)
	off.Info("T", "%s", arg)
	off.Error("T", "%s", arg)
	require.Zero(t, arg.calls)

	basic := New(LevelBasic, &buf)
	basic.Detail("T", "%s", arg)
	basic.Trace("T", "%s", arg)
	require.Zero(t, arg.calls)
	require.Empty(t, buf.String())

	basic.Info("T", "%s", arg)
	require.Equal(t, 1, arg.calls)
	require.Contains(t, buf.String(), "[T] value")
}

func TestEnabled(t *testing.T) {
	l := New(LevelDetailed, &bytes.Buffer{})
	require.False(t, l.Enabled(LevelOff))
	require.True(t, l.Enabled(LevelBasic))
	require.True(t, l.Enabled(LevelDetailed))
	require.False(t, l.Enabled(LevelFull))

	l.SetLevel(LevelOff)
	require.False(t, l.Enabled(LevelBasic))
	require.Equal(t, LevelOff, l.GetLevel())
}

func TestLineFormat(t *testing.T) {
	var buf bytes.Buffer
	New(LevelBasic, &buf).Error("LISTS", "failed %d sources", 2)

	line := buf.String()
	require.Contains(t, line, "[ERROR] [LISTS] failed 2 sources\n")
	require.False(t, strings.Contains(line, "\x1b["), "standalone loggers are not colored")
}

func TestTimer(t *testing.T) {
	var buf bytes.Buffer
	l := New(LevelDetailed, &buf)

	timer := l.StartTimer("LOAD", "reading lists")
	require.GreaterOrEqual(t, timer.Stop(), time.Duration(0))
	require.Contains(t, buf.String(), "Starting: reading lists")
	require.Contains(t, buf.String(), "Completed: reading lists")
}

func TestInitDebugFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "debug.log")
	require.NoError(t, Init(LevelBasic, path, true))
	t.Cleanup(func() {
		Close()
		GetLogger().SetLevel(LevelOff)
	})

	Info("INIT", "hello %s", "file")
	Close()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), "[DEBUG] [INIT] hello file")
}
