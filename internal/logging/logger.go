package logging

import (
	"fmt"
	"log"
	"os"
	"strings"
	"sync/atomic"
)

// Level is a log severity.
type Level int32

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

var currentLevel atomic.Int32

func init() { currentLevel.Store(int32(LevelInfo)) }

// ParseLevel maps a LOG_LEVEL string to a Level; unknown values mean info.
func ParseLevel(s string) Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	default:
		return LevelInfo
	}
}

// SetLevel sets the process-wide minimum severity.
func SetLevel(l Level) { currentLevel.Store(int32(l)) }

// Logger writes leveled, component-tagged lines through the standard logger.
// Every line passes through Mask so credentials never reach the output.
type Logger struct {
	component string
	out       *log.Logger
}

// New returns a logger tagged with the given component name.
func New(component string) *Logger {
	return &Logger{component: component, out: log.New(os.Stderr, "", log.LstdFlags)}
}

func (l *Logger) write(level Level, label, format string, args ...any) {
	if int32(level) < currentLevel.Load() {
		return
	}
	msg := fmt.Sprintf(format, args...)
	l.out.Printf("| %s | %s | %s", label, l.component, Mask(msg))
}

func (l *Logger) Debugf(format string, args ...any) { l.write(LevelDebug, "DEBUG", format, args...) }
func (l *Logger) Infof(format string, args ...any)  { l.write(LevelInfo, "INFO", format, args...) }
func (l *Logger) Warnf(format string, args ...any)  { l.write(LevelWarn, "WARN", format, args...) }
func (l *Logger) Errorf(format string, args ...any) { l.write(LevelError, "ERROR", format, args...) }
