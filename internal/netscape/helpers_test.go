package netscape

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/goliatone/go-bookmarks/internal/runtimeconfig"
	"github.com/goliatone/go-bookmarks/pkg/interfaces"
	"github.com/google/uuid"
)

var fixedNow = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func newTestParser(t *testing.T, mutate func(*runtimeconfig.Config), opts ...Option) *Parser {
	t.Helper()
	cfg := runtimeconfig.DefaultConfig()
	if mutate != nil {
		mutate(&cfg)
	}
	opts = append([]Option{WithClock(func() time.Time { return fixedNow })}, opts...)
	parser, err := New(cfg, opts...)
	if err != nil {
		t.Fatalf("new parser: %v", err)
	}
	return parser
}

// normalizeRecords strips IDs and round-trips records through JSON so they can be
// compared against golden files.
func normalizeRecords(t *testing.T, records []interfaces.Record) []interfaces.Record {
	t.Helper()
	stripped := make([]interfaces.Record, len(records))
	for i, record := range records {
		record.ID = uuid.Nil
		stripped[i] = record
	}
	data, err := json.Marshal(stripped)
	if err != nil {
		t.Fatalf("marshal records: %v", err)
	}
	var out []interfaces.Record
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("unmarshal records: %v", err)
	}
	return out
}

type logEntry struct {
	level string
	msg   string
	args  []any
}

type recordingLogger struct {
	mu      *sync.Mutex
	entries *[]logEntry
}

func newRecordingLogger() *recordingLogger {
	return &recordingLogger{mu: &sync.Mutex{}, entries: &[]logEntry{}}
}

func (r *recordingLogger) add(level, msg string, args []any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	*r.entries = append(*r.entries, logEntry{level: level, msg: msg, args: args})
}

func (r *recordingLogger) Trace(msg string, args ...any) { r.add("trace", msg, args) }
func (r *recordingLogger) Debug(msg string, args ...any) { r.add("debug", msg, args) }
func (r *recordingLogger) Info(msg string, args ...any)  { r.add("info", msg, args) }
func (r *recordingLogger) Warn(msg string, args ...any)  { r.add("warn", msg, args) }
func (r *recordingLogger) Error(msg string, args ...any) { r.add("error", msg, args) }
func (r *recordingLogger) Fatal(msg string, args ...any) { r.add("fatal", msg, args) }

func (r *recordingLogger) WithFields(map[string]any) interfaces.Logger { return r }

func (r *recordingLogger) WithContext(context.Context) interfaces.Logger { return r }

func (r *recordingLogger) count(level, msg string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, entry := range *r.entries {
		if entry.level == level && entry.msg == msg {
			n++
		}
	}
	return n
}
