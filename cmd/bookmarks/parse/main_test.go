package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/goliatone/go-bookmarks/cmd/bookmarks/internal/bootstrap"
	"github.com/goliatone/go-bookmarks/internal/logging"
	"github.com/goliatone/go-bookmarks/internal/netscape"
	"github.com/goliatone/go-bookmarks/internal/runtimeconfig"
	"github.com/goliatone/go-bookmarks/pkg/interfaces"
)

const export = `<DL><p>
<DT><H3>Work</H3>
<DL><p>
<DT><A HREF="http://a.com" ADD_DATE="1000000000" TAGS="x,y">Site A</A>
</DL><p>
</DL><p>
`

func stubModule(t *testing.T, captured *bootstrap.Options) func(bootstrap.Options) (*bootstrap.Module, error) {
	t.Helper()
	return func(opts bootstrap.Options) (*bootstrap.Module, error) {
		*captured = opts
		parser, err := netscape.New(runtimeconfig.DefaultConfig(), netscape.WithClock(func() time.Time {
			return time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
		}))
		if err != nil {
			return nil, err
		}
		return &bootstrap.Module{
			Parser:   parser,
			Exporter: netscape.NewExporter(),
			Logger:   logging.NoOp(),
		}, nil
	}
}

func writeExport(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "bookmarks.html")
	if err := os.WriteFile(path, []byte(export), 0o600); err != nil {
		t.Fatalf("write export: %v", err)
	}
	return path
}

func swapStdout(t *testing.T) *bytes.Buffer {
	t.Helper()
	original := stdout
	buf := &bytes.Buffer{}
	stdout = buf
	t.Cleanup(func() { stdout = original })
	return buf
}

func TestRunParseEmitsJSON(t *testing.T) {
	original := moduleBuilder
	defer func() { moduleBuilder = original }()

	var opts bootstrap.Options
	moduleBuilder = stubModule(t, &opts)
	out := swapStdout(t)

	if err := runParse([]string{
		"-file", writeExport(t),
		"-default-tags", "a, b",
		"-keep-nested-tags=false",
	}); err != nil {
		t.Fatalf("runParse returned error: %v", err)
	}

	if len(opts.DefaultTags) != 2 || opts.DefaultTags[1] != "b" {
		t.Fatalf("expected default tags to reach the builder, got %#v", opts.DefaultTags)
	}
	if opts.KeepNestedTags == nil || *opts.KeepNestedTags {
		t.Fatalf("expected keep-nested-tags=false to reach the builder")
	}

	var records []interfaces.Record
	if err := json.Unmarshal(out.Bytes(), &records); err != nil {
		t.Fatalf("decode output: %v\n%s", err, out.String())
	}
	if len(records) != 1 || records[0].URI != "http://a.com" || records[0].Title != "Site A" {
		t.Fatalf("unexpected records %+v", records)
	}
	if strings.Join(records[0].Tags, ",") != "work,x,y" || records[0].Time != 1000000000 {
		t.Fatalf("unexpected record %+v", records[0])
	}
}

func TestRunParseEmitsNetscape(t *testing.T) {
	original := moduleBuilder
	defer func() { moduleBuilder = original }()

	var opts bootstrap.Options
	moduleBuilder = stubModule(t, &opts)
	out := swapStdout(t)

	if err := runParse([]string{"-file", writeExport(t), "-format", "netscape"}); err != nil {
		t.Fatalf("runParse returned error: %v", err)
	}
	if !strings.Contains(out.String(), `<DT><A HREF="http://a.com" ADD_DATE="1000000000" PRIVATE="1" TAGS="work,x,y">Site A</A>`) {
		t.Fatalf("unexpected netscape output:\n%s", out.String())
	}
}

func TestRunParseRequiresFile(t *testing.T) {
	if err := runParse(nil); err == nil {
		t.Fatal("expected error without -file")
	}
}

func TestRunParseRejectsUnknownFormat(t *testing.T) {
	original := moduleBuilder
	defer func() { moduleBuilder = original }()

	var opts bootstrap.Options
	moduleBuilder = stubModule(t, &opts)

	if err := runParse([]string{"-file", writeExport(t), "-format", "yaml"}); err == nil {
		t.Fatal("expected error for unknown format")
	}
}

func TestRunParseRejectsOutputWithJSON(t *testing.T) {
	original := moduleBuilder
	defer func() { moduleBuilder = original }()

	var opts bootstrap.Options
	moduleBuilder = stubModule(t, &opts)
	out := swapStdout(t)

	target := filepath.Join(t.TempDir(), "out.json")
	err := runParse([]string{"-file", writeExport(t), "-output", target})
	if err == nil || !strings.Contains(err.Error(), "-output") {
		t.Fatalf("expected -output error, got %v", err)
	}
	if out.Len() != 0 {
		t.Fatalf("expected no output, got %q", out.String())
	}
	if _, statErr := os.Stat(target); !os.IsNotExist(statErr) {
		t.Fatalf("expected no output file, stat err %v", statErr)
	}
}

func TestRunParseMissingFile(t *testing.T) {
	original := moduleBuilder
	defer func() { moduleBuilder = original }()

	var opts bootstrap.Options
	moduleBuilder = stubModule(t, &opts)
	swapStdout(t)

	if err := runParse([]string{"-file", filepath.Join(t.TempDir(), "missing.html")}); err == nil {
		t.Fatal("expected error for missing file")
	}
}
