package log

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLog_FormatsFields(t *testing.T) {
	var buf bytes.Buffer
	InitWriter(&buf)
	t.Cleanup(Reset)

	Info(CatSubmit, "submission started", "id", "abc", "domain", "example.com")

	out := buf.String()
	require.Contains(t, out, "[INFO] [submit] submission started")
	require.Contains(t, out, "id=abc")
	require.Contains(t, out, "domain=example.com")
}

func TestLog_OddFieldCount(t *testing.T) {
	var buf bytes.Buffer
	InitWriter(&buf)
	t.Cleanup(Reset)

	Warn(CatForm, "odd", "orphan")
	require.Contains(t, buf.String(), "orphan=<missing>")
}

func TestLog_MinLevel(t *testing.T) {
	var buf bytes.Buffer
	InitWriter(&buf)
	t.Cleanup(Reset)

	SetMinLevel(LevelWarn)
	Debug(CatUI, "hidden")
	Error(CatUI, "shown")

	require.NotContains(t, buf.String(), "hidden")
	require.Contains(t, buf.String(), "shown")
}

func TestErrorErr(t *testing.T) {
	var buf bytes.Buffer
	InitWriter(&buf)
	t.Cleanup(Reset)

	ErrorErr(CatHTTP, "request failed", errors.New("connection refused"))
	require.Contains(t, buf.String(), "error=connection refused")
}

func TestLog_NoLoggerIsNoop(t *testing.T) {
	Reset()
	require.NotPanics(t, func() { Info(CatConfig, "nothing") })
}

func TestEmailDomain(t *testing.T) {
	require.Equal(t, "example.com", EmailDomain("jane@example.com"))
	require.Equal(t, "<none>", EmailDomain("jane"))
}

func TestNewListener_ReceivesEntries(t *testing.T) {
	var buf bytes.Buffer
	InitWriter(&buf)
	t.Cleanup(Reset)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	l := NewListener(ctx)
	require.NotNil(t, l)

	Info(CatSubmit, "submission started", "id", "abc")

	msg := l.Listen()()
	event, ok := msg.(LogEvent)
	require.True(t, ok)
	require.Contains(t, event.Payload, "[INFO] [submit] submission started id=abc")
}

func TestNewListener_NilWithoutLogger(t *testing.T) {
	Reset()
	require.Nil(t, NewListener(context.Background()))
}

func TestFormat(t *testing.T) {
	at := time.Date(2026, 3, 1, 10, 45, 0, 0, time.UTC)
	require.Equal(t,
		"2026-03-01T10:45:00 [WARN] [http] slow status=200 elapsed=2s\n",
		format(at, LevelWarn, CatHTTP, "slow", []any{"status", 200, "elapsed", 2 * time.Second}))
	require.Equal(t,
		"2026-03-01T10:45:00 [DEBUG] [ui] bare\n",
		format(at, LevelDebug, CatUI, "bare", nil))
}

func TestLevelString(t *testing.T) {
	require.Equal(t, "INFO", LevelInfo.String())
	require.Equal(t, "ERROR", LevelError.String())
	require.Equal(t, "UNKNOWN", Level(9).String())
	require.Equal(t, "UNKNOWN", Level(-1).String())
}
