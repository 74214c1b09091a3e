package netscape

import (
	"io"
	"io/fs"
	"os"
	"regexp"
	"slices"
	"strings"
	"time"

	"github.com/goliatone/go-bookmarks/internal/logging"
	"github.com/goliatone/go-bookmarks/internal/runtimeconfig"
	"github.com/goliatone/go-bookmarks/pkg/interfaces"
)

var (
	headerPattern    = regexp.MustCompile(`(?i)^<h\d.*>(.*)</h\d>`)
	closeListPattern = regexp.MustCompile(`(?i)^</DL>`)
	anchorPattern    = regexp.MustCompile(`(?i)<a`)
)

// Parser turns Netscape bookmark exports into records. Options are fixed at
// construction; each call keeps its own folder state, so a Parser can be
// used from several goroutines.
type Parser struct {
	keepNestedTags bool
	defaultTags    []string
	defaultPub     any
	normalizeDates bool
	dateRange      runtimeconfig.Range

	logger interfaces.Logger
	now    func() time.Time

	timeRules ruleChain[int64]
	pubRules  ruleChain[any]
}

var _ interfaces.BookmarkParser = (*Parser)(nil)

// Option customizes a Parser.
type Option func(*Parser)

// WithLogger sets the observer notified while parsing. Nil restores the
// no-op logger.
func WithLogger(logger interfaces.Logger) Option {
	return func(p *Parser) {
		p.logger = logging.OrNoOp(logger)
	}
}

// WithClock replaces the wall clock used for missing dates and the
// normalization bound.
func WithClock(now func() time.Time) Option {
	return func(p *Parser) {
		if now != nil {
			p.now = now
		}
	}
}

// New builds a Parser from cfg. The date range is only checked when date
// normalization is enabled.
func New(cfg runtimeconfig.Config, opts ...Option) (*Parser, error) {
	p := &Parser{
		keepNestedTags: cfg.KeepNestedTags,
		defaultTags:    slices.Clone(cfg.DefaultTags),
		defaultPub:     cfg.DefaultPub,
		normalizeDates: cfg.NormalizeDates,
		logger:         logging.NoOp(),
		now:            time.Now,
	}
	if p.defaultTags == nil {
		p.defaultTags = []string{}
	}
	if cfg.NormalizeDates {
		dateRange, err := runtimeconfig.ParseRange(cfg.DateRange)
		if err != nil {
			return nil, err
		}
		p.dateRange = dateRange
	}
	for _, opt := range opts {
		if opt != nil {
			opt(p)
		}
	}
	p.buildRules()
	return p, nil
}

// ParseString parses a bookmark export held in memory. It never fails: every
// line containing an anchor yields exactly one record, in document order.
func (p *Parser) ParseString(text string) []interfaces.Record {
	return p.parse(p.logger, text)
}

// ParseReader reads r to the end and parses its content.
func (p *Parser) ParseReader(r io.Reader) ([]interfaces.Record, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, readError(err, "reader")
	}
	return p.parse(p.logger, string(data)), nil
}

// ParseFile reads and parses the export stored at path.
func (p *Parser) ParseFile(path string) ([]interfaces.Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, readError(err, path)
	}
	return p.parse(logging.WithSource(p.logger, path, "netscape"), string(data)), nil
}

// ParseFS reads and parses name from fsys.
func (p *Parser) ParseFS(fsys fs.FS, name string) ([]interfaces.Record, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, readError(err, name)
	}
	return p.parse(logging.WithSource(p.logger, name, "netscape"), string(data)), nil
}

func (p *Parser) parse(logger interfaces.Logger, text string) []interfaces.Record {
	logger.Info("bookmarks.parse.start")

	var folders folderStack
	inherited := []string{}
	records := []interfaces.Record{}

	for number, line := range strings.Split(Sanitize(text), "\n") {
		lineLogger := logging.WithFields(logger, map[string]any{"line": number})
		lineLogger.Info("bookmarks.parse.line")
		lineLogger.Debug("bookmarks.parse.content", "content", line)

		if match := headerPattern.FindStringSubmatch(line); match != nil {
			tags := SanitizeTags(match[1])
			folders.push(tags)
			inherited = folders.flatten()
			lineLogger.Debug("bookmarks.parse.folder_start", "tags", tags, "depth", folders.depth())
			continue
		}
		if closeListPattern.MatchString(line) {
			tags := folders.pop()
			inherited = folders.flatten()
			lineLogger.Debug("bookmarks.parse.folder_end", "tags", tags, "depth", folders.depth())
			continue
		}
		if anchorPattern.MatchString(line) {
			records = append(records, p.extractLink(lineLogger, line, inherited))
		}
	}

	logger.Info("bookmarks.parse.done", "records", len(records))
	return records
}
