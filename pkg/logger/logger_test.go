package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/rs/zerolog"
)

func captureLogger(opts Options) (*Logger, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	opts.Output = buf
	if opts.ServiceName == "" {
		opts.ServiceName = "logger-test"
	}
	return New(opts), buf
}

func lastEntry(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	entry := map[string]any{}
	if err := json.Unmarshal(lines[len(lines)-1], &entry); err != nil {
		t.Fatalf("log output is not JSON: %v (%s)", err, buf.String())
	}
	return entry
}

func TestContextFieldsFlowIntoEntries(t *testing.T) {
	log, buf := captureLogger(Options{Level: zerolog.DebugLevel})

	ctx := log.WithRequestID(context.Background(), "req-123")
	ctx = log.WithUserID(ctx, "user-456")
	ctx = log.WithSessionID(ctx, "sess-789")
	log.Info(ctx, "resume.created")

	entry := lastEntry(t, buf)
	if entry["request_id"] != "req-123" || entry["user_id"] != "user-456" || entry["session_id"] != "sess-789" {
		t.Fatalf("context fields missing from entry: %v", entry)
	}
	if entry["service"] != "logger-test" {
		t.Fatalf("expected service field, got %v", entry["service"])
	}
	if entry["message"] != "resume.created" {
		t.Fatalf("unexpected message %v", entry["message"])
	}
}

func TestErrorIncludesCauseAndStack(t *testing.T) {
	log, buf := captureLogger(Options{Level: zerolog.DebugLevel})

	log.Error(context.Background(), "db.query_failed", errors.New("connection reset"))

	entry := lastEntry(t, buf)
	if entry["error"] != "connection reset" {
		t.Fatalf("expected error field, got %v", entry["error"])
	}
	if stack, _ := entry["stack"].(string); stack == "" {
		t.Fatal("expected stack trace on error entries")
	}
}

func TestWarnStackToggle(t *testing.T) {
	log, buf := captureLogger(Options{Level: zerolog.DebugLevel})
	log.Warn(context.Background(), "cache.miss")
	if _, ok := lastEntry(t, buf)["stack"]; ok {
		t.Fatal("warn should not carry a stack by default")
	}

	log, buf = captureLogger(Options{Level: zerolog.DebugLevel, WarnStack: true})
	log.Warn(context.Background(), "cache.miss")
	if _, ok := lastEntry(t, buf)["stack"]; !ok {
		t.Fatal("expected stack when WarnStack is enabled")
	}
}

func TestLevelFiltersEntries(t *testing.T) {
	log, buf := captureLogger(Options{Level: zerolog.WarnLevel})
	log.Info(context.Background(), "too quiet")
	if buf.Len() != 0 {
		t.Fatalf("info entry should be filtered at warn level: %s", buf.String())
	}
}

func TestParseLevel(t *testing.T) {
	if lvl := ParseLevel("debug"); lvl != zerolog.DebugLevel {
		t.Fatalf("expected debug, got %v", lvl)
	}
	if lvl := ParseLevel(" WARN "); lvl != zerolog.WarnLevel {
		t.Fatalf("expected warn for trimmed uppercase input, got %v", lvl)
	}
	if lvl := ParseLevel(""); lvl != zerolog.InfoLevel {
		t.Fatalf("empty level should default to info, got %v", lvl)
	}
	if lvl := ParseLevel("nonsense"); lvl != zerolog.InfoLevel {
		t.Fatalf("unknown level should default to info, got %v", lvl)
	}
}
