package bootstrap

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	bookmarks "github.com/goliatone/go-bookmarks"
	"github.com/goliatone/go-bookmarks/internal/commands"
	"github.com/goliatone/go-bookmarks/pkg/interfaces"
)

// Options captures configuration for bookmark CLI bootstraps. Nil pointers
// keep the library defaults.
type Options struct {
	KeepNestedTags *bool
	DefaultTags    []string
	DefaultPub     string
	NormalizeDates *bool
	DateRange      string
	ExportTitle    string

	LogProvider string
	LogLevel    string
	LogFormat   string
	// LoggerProvider overrides the provider built from the Log* fields.
	LoggerProvider interfaces.LoggerProvider
	Clock          func() time.Time
}

// Module bundles what the CLI commands need.
type Module struct {
	Parser   interfaces.BookmarkParser
	Exporter interfaces.Exporter
	Logger   interfaces.Logger
}

// BuildModule validates the options and builds the parser, exporter and
// command logger.
func BuildModule(opts Options) (*Module, error) {
	cfg := bookmarks.DefaultConfig()
	if opts.KeepNestedTags != nil {
		cfg.KeepNestedTags = *opts.KeepNestedTags
	}
	if len(opts.DefaultTags) > 0 {
		cfg.DefaultTags = cloneStrings(opts.DefaultTags)
	}
	if strings.TrimSpace(opts.DefaultPub) != "" {
		cfg.DefaultPub = ParseDefaultPub(opts.DefaultPub)
	}
	if opts.NormalizeDates != nil {
		cfg.NormalizeDates = *opts.NormalizeDates
	}
	if trimmed := strings.TrimSpace(opts.DateRange); trimmed != "" {
		cfg.DateRange = trimmed
	}
	cfg.Logging.Provider = strings.TrimSpace(opts.LogProvider)
	if level := strings.TrimSpace(opts.LogLevel); level != "" {
		cfg.Logging.Level = level
	}
	cfg.Logging.Format = strings.TrimSpace(opts.LogFormat)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	provider := opts.LoggerProvider
	if provider == nil {
		built, err := bookmarks.NewLoggerProvider(cfg.Logging)
		if err != nil {
			return nil, fmt.Errorf("configure logging: %w", err)
		}
		provider = built
	}

	parser, err := bookmarks.New(cfg, bookmarks.WithLoggerProvider(provider), bookmarks.WithClock(opts.Clock))
	if err != nil {
		return nil, fmt.Errorf("initialise parser: %w", err)
	}

	return &Module{
		Parser:   parser,
		Exporter: bookmarks.NewExporter(provider, opts.ExportTitle),
		Logger:   commands.CommandLogger(provider, "cli"),
	}, nil
}

// SplitTags parses a comma separated tag list into a trimmed slice.
func SplitTags(value string) []string {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	tags := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			tags = append(tags, trimmed)
		}
	}
	return tags
}

// ParseDefaultPub keeps integers numeric, so "0" matches the library
// default, and passes any other text through verbatim.
func ParseDefaultPub(value string) any {
	trimmed := strings.TrimSpace(value)
	if n, err := strconv.Atoi(trimmed); err == nil {
		return n
	}
	return trimmed
}

func cloneStrings(values []string) []string {
	if len(values) == 0 {
		return nil
	}
	out := make([]string, len(values))
	copy(out, values)
	return out
}
