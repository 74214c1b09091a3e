package bookmarks_test

import (
	"bytes"
	"context"
	"errors"
	"io/fs"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	bookmarks "github.com/goliatone/go-bookmarks"
	goerrors "github.com/goliatone/go-errors"
)

func TestParseFromPathUsesDefaults(t *testing.T) {
	records, err := bookmarks.ParseFromPath(filepath.Join("testdata", "chrome.html"))
	if err != nil {
		t.Fatalf("ParseFromPath: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if !reflect.DeepEqual(records[0].Tags, []string{"bookmarks", "bar"}) {
		t.Fatalf("unexpected folder tags %#v", records[0].Tags)
	}
	if records[0].Pub != 0 {
		t.Fatalf("expected default pub, got %#v", records[0].Pub)
	}
	if records[1].Pub != 1 || !records[1].Public() {
		t.Fatalf("expected PRIVATE=\"0\" to publish, got %#v", records[1].Pub)
	}
	if records[1].Time != 1700000003 {
		t.Fatalf("unexpected time %d", records[1].Time)
	}
}

func TestParseFromPathMissingFile(t *testing.T) {
	_, err := bookmarks.ParseFromPath(filepath.Join(t.TempDir(), "nope.html"))
	if !errors.Is(err, fs.ErrNotExist) || !goerrors.IsCategory(err, bookmarks.CategoryIO) {
		t.Fatalf("expected categorized not-exist error, got %v", err)
	}
}

func TestParseNeverFails(t *testing.T) {
	if got := bookmarks.Parse("<DL><p></DL></DL>"); len(got) != 0 {
		t.Fatalf("expected no records, got %d", len(got))
	}
}

func TestNewAppliesOptions(t *testing.T) {
	cfg := bookmarks.DefaultConfig()
	cfg.DefaultTags = []string{"imported"}
	cfg.KeepNestedTags = false
	cfg.DefaultPub = "draft"

	now := time.Date(2020, 5, 1, 0, 0, 0, 0, time.UTC)
	logger := &countingLogger{}
	parser, err := bookmarks.New(cfg,
		bookmarks.WithLogger(logger),
		bookmarks.WithClock(func() time.Time { return now }),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	records := parser.ParseString(`<DL><DT><H3>Folder</H3><DL><DT><A HREF="https://example.com">Example</A></DL></DL>`)
	if len(records) != 1 {
		t.Fatalf("expected one record, got %d", len(records))
	}
	record := records[0]
	if !reflect.DeepEqual(record.Tags, []string{"imported"}) {
		t.Fatalf("unexpected tags %#v", record.Tags)
	}
	if record.Pub != "draft" {
		t.Fatalf("expected default pub passthrough, got %#v", record.Pub)
	}
	if record.Time != now.Unix() {
		t.Fatalf("expected injected clock, got %d", record.Time)
	}
	if logger.infos == 0 {
		t.Fatalf("expected injected logger to observe parsing")
	}
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	cfg := bookmarks.DefaultConfig()
	cfg.DateRange = "someday"
	if _, err := bookmarks.New(cfg); !goerrors.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}

	cfg = bookmarks.DefaultConfig()
	cfg.Logging.Provider = "syslog"
	if _, err := bookmarks.New(cfg); !errors.Is(err, bookmarks.ErrLoggingProviderUnknown) {
		t.Fatalf("expected ErrLoggingProviderUnknown, got %v", err)
	}
}

func TestNewUsesLoggerProvider(t *testing.T) {
	logger := &countingLogger{}
	provider := &stubProvider{logger: logger}
	parser, err := bookmarks.New(bookmarks.DefaultConfig(), bookmarks.WithLoggerProvider(provider))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	parser.ParseString(`<A HREF="https://example.com">Example</A>`)
	if len(provider.requested) != 1 || provider.requested[0] != "bookmarks.parser" {
		t.Fatalf("expected parser logger request, got %v", provider.requested)
	}
	if logger.infos == 0 {
		t.Fatalf("expected provider logger to be used")
	}
}

func TestNewLoggerProviderFromConfig(t *testing.T) {
	provider, err := bookmarks.NewLoggerProvider(bookmarks.LoggingConfig{})
	if err != nil || provider != nil {
		t.Fatalf("expected no provider for empty config, got %v %v", provider, err)
	}
	provider, err = bookmarks.NewLoggerProvider(bookmarks.LoggingConfig{Provider: "gologger", Level: "debug", Format: "json"})
	if err != nil || provider == nil {
		t.Fatalf("expected gologger provider, got %v %v", provider, err)
	}
	if provider.GetLogger("bookmarks.test") == nil {
		t.Fatalf("expected logger from provider")
	}
}

func TestExportRoundTripThroughFacade(t *testing.T) {
	records, err := bookmarks.ParseFromPath(filepath.Join("testdata", "chrome.html"))
	if err != nil {
		t.Fatalf("ParseFromPath: %v", err)
	}
	var buf bytes.Buffer
	if err := bookmarks.Export(&buf, records); err != nil {
		t.Fatalf("Export: %v", err)
	}
	again := bookmarks.Parse(buf.String())
	if len(again) != len(records) {
		t.Fatalf("expected %d records after round trip, got %d", len(records), len(again))
	}
	for i := range records {
		if again[i].ID != records[i].ID || again[i].Title != records[i].Title {
			t.Fatalf("record %d changed: %+v vs %+v", i, again[i], records[i])
		}
	}
}

type countingLogger struct {
	infos int
}

func (l *countingLogger) Trace(string, ...any)                         {}
func (l *countingLogger) Debug(string, ...any)                         {}
func (l *countingLogger) Info(string, ...any)                          { l.infos++ }
func (l *countingLogger) Warn(string, ...any)                          {}
func (l *countingLogger) Error(string, ...any)                         {}
func (l *countingLogger) Fatal(string, ...any)                         {}
func (l *countingLogger) WithContext(context.Context) bookmarks.Logger { return l }

type stubProvider struct {
	requested []string
	logger    bookmarks.Logger
}

func (p *stubProvider) GetLogger(name string) bookmarks.Logger {
	p.requested = append(p.requested, name)
	return p.logger
}
