// Package testutil provides test utilities for structured logging.
package testutil

import (
	"bytes"
	"log/slog"
	"strings"
	"sync"
	"testing"
)

// NewTestLogger returns a logger that writes to t.Log().
// Logs only appear on test failure or when running with -v.
func NewTestLogger(t testing.TB) *slog.Logger {
	t.Helper()
	return slog.New(slog.NewTextHandler(testWriter{t: t}, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
}

// LogBuffer collects formatted log lines for assertions.
type LogBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

// Lines returns the captured log lines.
func (b *LogBuffer) Lines() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := strings.TrimRight(b.buf.String(), "\n")
	if out == "" {
		return nil
	}
	return strings.Split(out, "\n")
}

// Count returns how many captured lines contain substr.
func (b *LogBuffer) Count(substr string) int {
	n := 0
	for _, line := range b.Lines() {
		if strings.Contains(line, substr) {
			n++
		}
	}
	return n
}

func (b *LogBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

// NewCapturingLogger returns a debug-level logger that writes to t.Log() and
// to the returned buffer.
func NewCapturingLogger(t testing.TB) (*slog.Logger, *LogBuffer) {
	t.Helper()
	buf := &LogBuffer{}
	return slog.New(slog.NewTextHandler(testWriter{t: t, tee: buf}, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})), buf
}

type testWriter struct {
	t   testing.TB
	tee *LogBuffer
}

func (w testWriter) Write(p []byte) (n int, err error) {
	w.t.Helper()
	w.t.Log(string(p))
	if w.tee != nil {
		return w.tee.Write(p)
	}
	return len(p), nil
}
