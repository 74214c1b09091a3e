package bookmarks

import (
	"io"
	"sync"
	"time"

	"github.com/goliatone/go-bookmarks/internal/logging"
	"github.com/goliatone/go-bookmarks/internal/netscape"
	"github.com/goliatone/go-bookmarks/pkg/interfaces"
)

// Record is a bookmark extracted from a Netscape export.
type Record = interfaces.Record

// Parser converts Netscape bookmark exports into records. It is safe for
// concurrent use.
type Parser = netscape.Parser

// Exporter writes records as a Netscape bookmark file.
type Exporter = netscape.Exporter

// Logger is the leveled observer accepted by WithLogger.
type Logger = interfaces.Logger

// LoggerProvider hands out module loggers.
type LoggerProvider = interfaces.LoggerProvider

type options struct {
	logger   interfaces.Logger
	provider interfaces.LoggerProvider
	clock    func() time.Time
}

// Option customizes the parser built by New.
type Option func(*options)

// WithLogger sets the observer used by the parser. It takes precedence over
// WithLoggerProvider and the logging configuration.
func WithLogger(logger Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithLoggerProvider supplies the provider the parser logger is requested
// from, instead of building one from Config.Logging.
func WithLoggerProvider(provider LoggerProvider) Option {
	return func(o *options) {
		o.provider = provider
	}
}

// WithClock overrides the clock used for missing dates and normalization.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		o.clock = now
	}
}

// New validates cfg and builds a Parser.
func New(cfg Config, opts ...Option) (*Parser, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var o options
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	logger := o.logger
	if logger == nil {
		provider := o.provider
		if provider == nil {
			built, err := NewLoggerProvider(cfg.Logging)
			if err != nil {
				return nil, err
			}
			provider = built
		}
		logger = logging.ParserLogger(provider)
	}

	return netscape.New(cfg, netscape.WithLogger(logger), netscape.WithClock(o.clock))
}

// NewExporter builds an exporter. A nil provider keeps it silent.
func NewExporter(provider LoggerProvider, title string) *Exporter {
	return netscape.NewExporter(
		netscape.WithTitle(title),
		netscape.WithExportLogger(logging.ExportLogger(provider)),
	)
}

var defaultParser = sync.OnceValue(func() *Parser {
	parser, err := New(DefaultConfig())
	if err != nil {
		panic(err)
	}
	return parser
})

// Parse parses an export held in memory with the default configuration.
func Parse(text string) []Record {
	return defaultParser().ParseString(text)
}

// ParseFromPath reads the export at path and parses it with the default
// configuration.
func ParseFromPath(path string) ([]Record, error) {
	return defaultParser().ParseFile(path)
}

// Export writes records to w as a Netscape bookmark file.
func Export(w io.Writer, records []Record) error {
	return netscape.NewExporter().Export(w, records)
}

// SplitTagString, SanitizeTags and FlattenTagsList expose the tag helpers
// used while parsing.
var (
	SplitTagString  = netscape.SplitTagString
	SanitizeTags    = netscape.SanitizeTags
	FlattenTagsList = netscape.FlattenTagsList
	Sanitize        = netscape.Sanitize
)
