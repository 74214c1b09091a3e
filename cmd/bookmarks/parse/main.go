package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/goliatone/go-bookmarks/cmd/bookmarks/internal/bootstrap"
	bookmarkscmd "github.com/goliatone/go-bookmarks/internal/commands/bookmarks"
	"github.com/goliatone/go-bookmarks/pkg/interfaces"
)

var (
	moduleBuilder           = bootstrap.BuildModule
	stdout        io.Writer = os.Stdout
)

func main() {
	if err := runParse(os.Args[1:]); err != nil {
		log.Fatalf("bookmarks parse: %v", err)
	}
}

func runParse(args []string) error {
	fs := flag.NewFlagSet("bookmarks-parse", flag.ContinueOnError)
	file := fs.String("file", "", "Path to the Netscape bookmark export")
	keepNestedTags := fs.Bool("keep-nested-tags", true, "Tag links with the names of their enclosing folders")
	defaultTags := fs.String("default-tags", "", "Comma separated tags added to every link")
	defaultPub := fs.String("default-pub", "", "Visibility used when a link has no public/private attribute (default 0)")
	normalizeDates := fs.Bool("normalize-dates", true, "Truncate epochs that land too far in the future")
	dateRange := fs.String("date-range", "30 years", "How far past now a date may land before it is truncated")
	format := fs.String("format", "json", "Output format: json or netscape (html is an alias)")
	output := fs.String("output", "", "Write netscape output to this file instead of stdout")
	title := fs.String("title", "", "Document title for netscape output")
	logProvider := fs.String("log-provider", "", "Logging provider: console or gologger (default silent)")
	logLevel := fs.String("log-level", "info", "Minimum log level")
	logFormat := fs.String("log-format", "", "go-logger output format: json, console or pretty")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if strings.TrimSpace(*file) == "" {
		return fmt.Errorf("-file is required")
	}
	outputFormat := strings.ToLower(strings.TrimSpace(*format))
	if outputFormat == "json" && strings.TrimSpace(*output) != "" {
		return fmt.Errorf("-output is only supported with -format netscape")
	}

	module, err := moduleBuilder(bootstrap.Options{
		KeepNestedTags: keepNestedTags,
		DefaultTags:    bootstrap.SplitTags(*defaultTags),
		DefaultPub:     *defaultPub,
		NormalizeDates: normalizeDates,
		DateRange:      *dateRange,
		ExportTitle:    *title,
		LogProvider:    *logProvider,
		LogLevel:       *logLevel,
		LogFormat:      *logFormat,
	})
	if err != nil {
		return fmt.Errorf("bootstrap module: %w", err)
	}
	if module == nil || module.Parser == nil {
		return fmt.Errorf("bookmark parser not configured")
	}

	ctx := context.Background()

	switch outputFormat {
	case "json":
		handler := bookmarkscmd.NewParseFileHandler(module.Parser, jsonSink(stdout), module.Logger)
		if err := handler.Execute(ctx, bookmarkscmd.ParseFileCommand{Path: *file}); err != nil {
			return fmt.Errorf("execute parse command: %w", err)
		}
	case "netscape", "html":
		handler := bookmarkscmd.NewExportFileHandler(module.Parser, module.Exporter, stdout, module.Logger)
		if err := handler.Execute(ctx, bookmarkscmd.ExportFileCommand{Path: *file, Output: *output}); err != nil {
			return fmt.Errorf("execute export command: %w", err)
		}
	default:
		return fmt.Errorf("unknown format %q", *format)
	}
	return nil
}

func jsonSink(w io.Writer) bookmarkscmd.Sink {
	return func(_ context.Context, records []interfaces.Record) error {
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		encoder.SetEscapeHTML(false)
		return encoder.Encode(records)
	}
}
