// Package log writes structured debug entries for signup.
//
// Bubble Tea owns the terminal, so entries go to a file (or any writer in
// tests) and are also published to the in-app log panel. Nothing is logged
// until Init or InitWriter installs a logger.
package log

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/zjrosen/signup/internal/pubsub"
)

// Level is an entry's severity.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

var levelNames = [...]string{"DEBUG", "INFO", "WARN", "ERROR"}

func (l Level) String() string {
	if l < LevelDebug || l > LevelError {
		return "UNKNOWN"
	}
	return levelNames[l]
}

// Category tags which part of the program wrote an entry.
type Category string

const (
	CatConfig Category = "config"
	CatForm   Category = "form"
	CatSubmit Category = "submit"
	CatHTTP   Category = "http"
	CatDB     Category = "db"
	CatTrace  Category = "trace"
	CatUI     Category = "ui"
)

const timeLayout = "2006-01-02T15:04:05"

// Logger serializes entries to a writer and fans them out to subscribers.
type Logger struct {
	mu       sync.Mutex
	out      io.Writer
	minLevel Level
	entries  *pubsub.Broker[string]
}

var current *Logger

func install(w io.Writer) {
	Reset()
	current = &Logger{out: w, minLevel: LevelDebug, entries: pubsub.NewBroker[string]()}
}

// Init appends to the file at path and installs it as the global logger.
// The returned func closes the file.
func Init(path string) (func(), error) {
	f, err := tea.LogToFile(path, "signup")
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	install(f)
	return func() { _ = f.Close() }, nil
}

// InitWriter installs a logger that writes to w.
func InitWriter(w io.Writer) {
	install(w)
}

// Reset removes the global logger and closes its subscriptions.
func Reset() {
	if current != nil {
		current.entries.Close()
	}
	current = nil
}

// SetMinLevel drops entries below level.
func SetMinLevel(level Level) {
	if l := current; l != nil {
		l.mu.Lock()
		l.minLevel = level
		l.mu.Unlock()
	}
}

func Debug(cat Category, msg string, fields ...any) { write(LevelDebug, cat, msg, fields) }
func Info(cat Category, msg string, fields ...any)  { write(LevelInfo, cat, msg, fields) }
func Warn(cat Category, msg string, fields ...any)  { write(LevelWarn, cat, msg, fields) }
func Error(cat Category, msg string, fields ...any) { write(LevelError, cat, msg, fields) }

// ErrorErr logs at error level with err appended as the "error" field.
func ErrorErr(cat Category, msg string, err error, fields ...any) {
	text := "<nil>"
	if err != nil {
		text = err.Error()
	}
	write(LevelError, cat, msg, append(fields, "error", text))
}

// EmailDomain returns what follows the last '@' so that full addresses
// never reach the log.
func EmailDomain(email string) string {
	i := strings.LastIndex(email, "@")
	if i < 0 {
		return "<none>"
	}
	return email[i+1:]
}

// format renders one line:
//
//	2026-03-01T10:45:00 [ERROR] [submit] message key=value
func format(at time.Time, level Level, cat Category, msg string, fields []any) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s [%s] [%s] %s", at.Format(timeLayout), level, cat, msg)
	for len(fields) >= 2 {
		fmt.Fprintf(&b, " %v=%v", fields[0], fields[1])
		fields = fields[2:]
	}
	if len(fields) == 1 {
		fmt.Fprintf(&b, " %v=<missing>", fields[0])
	}
	b.WriteByte('\n')
	return b.String()
}

func write(level Level, cat Category, msg string, fields []any) {
	l := current
	if l == nil {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if level < l.minLevel {
		return
	}

	line := format(time.Now(), level, cat, msg, fields)
	if l.out != nil {
		_, _ = io.WriteString(l.out, line)
	}
	l.entries.Publish(line)
}

// LogEvent carries one formatted entry.
type LogEvent = pubsub.Event[string]

// LogListener feeds entries into the Bubble Tea update loop.
type LogListener = pubsub.Listener[string]

// NewListener subscribes to entries written from now until ctx is done.
// It returns nil when no logger is installed.
func NewListener(ctx context.Context) *LogListener {
	l := current
	if l == nil {
		return nil
	}
	return pubsub.NewListener(ctx, l.entries)
}
