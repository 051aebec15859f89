package debug

import (
	"fmt"
	"io"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"github.com/fatih/color"
)

type Level int

const (
	LevelOff Level = iota
	LevelBasic
	LevelDetailed
	LevelFull
)

type Logger struct {
	level atomic.Int32

	// mu guards the output fields below; the level is read without it.
	mu      sync.Mutex
	writer  io.Writer
	file    *os.File
	colored bool
}

var globalLogger = &Logger{
	writer:  os.Stderr,
	colored: true,
}

var (
	grayText   = color.New(color.FgHiBlack).SprintFunc()
	cyanText   = color.New(color.FgCyan).SprintFunc()
	yellowText = color.New(color.FgYellow).SprintFunc()
	redText    = color.New(color.FgRed).SprintFunc()
	greenText  = color.New(color.FgGreen).SprintFunc()
)

// Init configures the process-wide logger. A non-empty filePath mirrors
// output into that file without colors.
func Init(level Level, filePath string, colored bool) error {
	l := GetLogger()

	l.mu.Lock()
	defer l.mu.Unlock()

	l.colored = colored

	if filePath != "" {
		f, err := os.OpenFile(filePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return fmt.Errorf("failed to open debug file: %w", err)
		}
		l.file = f
		l.writer = io.MultiWriter(os.Stderr, f)
		l.colored = false
	}

	l.level.Store(int32(level))
	return nil
}

func Close() {
	l := GetLogger()
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.file != nil {
		l.file.Close()
		l.file = nil
		l.writer = os.Stderr
	}
}

func GetLogger() *Logger {
	return globalLogger
}

// New returns a standalone logger writing to w, mostly useful in tests.
func New(level Level, w io.Writer) *Logger {
	l := &Logger{writer: w}
	l.level.Store(int32(level))
	return l
}

func (l *Logger) SetLevel(level Level) {
	l.level.Store(int32(level))
}

func (l *Logger) GetLevel() Level {
	return Level(l.level.Load())
}

// Enabled reports whether messages at level are written. Disabled calls
// return before formatting their arguments.
func (l *Logger) Enabled(level Level) bool {
	return level > LevelOff && l.GetLevel() >= level
}

func (l *Logger) timestamp() string {
	return time.Now().Format("2006-01-02 15:04:05.000")
}

func (l *Logger) colorize(paint func(a ...interface{}) string, text string) string {
	if !l.colored {
		return text
	}
	return paint(text)
}

func (l *Logger) write(tag string, paint func(a ...interface{}) string, category, message string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	fmt.Fprintf(l.writer, "%s %s %s %s\n",
		l.colorize(grayText, l.timestamp()),
		l.colorize(paint, tag),
		l.colorize(yellowText, fmt.Sprintf("[%s]", category)),
		message,
	)
}

// Basic level logging (Level 1)
func (l *Logger) Info(category, format string, args ...interface{}) {
	if !l.Enabled(LevelBasic) {
		return
	}
	l.write("[DEBUG]", cyanText, category, fmt.Sprintf(format, args...))
}

// Detailed level logging (Level 2)
func (l *Logger) Detail(category, format string, args ...interface{}) {
	if !l.Enabled(LevelDetailed) {
		return
	}
	l.write("[DEBUG]", cyanText, category, fmt.Sprintf(format, args...))
}

// Full level logging (Level 3)
func (l *Logger) Trace(category, format string, args ...interface{}) {
	if !l.Enabled(LevelFull) {
		return
	}
	l.write("[DEBUG]", cyanText, category, fmt.Sprintf(format, args...))
}

// Error logging (always shown if debug enabled)
func (l *Logger) Error(category, format string, args ...interface{}) {
	if !l.Enabled(LevelBasic) {
		return
	}
	l.write("[ERROR]", redText, category, fmt.Sprintf(format, args...))
}

func (l *Logger) Success(category, format string, args ...interface{}) {
	if !l.Enabled(LevelBasic) {
		return
	}
	l.write("[OK]", greenText, category, fmt.Sprintf(format, args...))
}

// Timing helper
type Timer struct {
	start    time.Time
	category string
	message  string
	logger   *Logger
}

func (l *Logger) StartTimer(category, message string) *Timer {
	l.Detail(category, "Starting: %s", message)
	return &Timer{
		start:    time.Now(),
		category: category,
		message:  message,
		logger:   l,
	}
}

func (t *Timer) Stop() time.Duration {
	elapsed := time.Since(t.start)
	t.logger.Detail(t.category, "Completed: %s (took %v)", t.message, elapsed)
	return elapsed
}

// Convenience functions using global logger
func Info(category, format string, args ...interface{}) {
	GetLogger().Info(category, format, args...)
}

func Detail(category, format string, args ...interface{}) {
	GetLogger().Detail(category, format, args...)
}

func Trace(category, format string, args ...interface{}) {
	GetLogger().Trace(category, format, args...)
}

func Error(category, format string, args ...interface{}) {
	GetLogger().Error(category, format, args...)
}

func Success(category, format string, args ...interface{}) {
	GetLogger().Success(category, format, args...)
}

func StartTimer(category, message string) *Timer {
	return GetLogger().StartTimer(category, message)
}
