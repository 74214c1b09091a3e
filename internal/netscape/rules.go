package netscape

import (
	"regexp"

	"github.com/goliatone/go-bookmarks/pkg/interfaces"
)

// rule extracts one field from a line: pattern selects the text, group picks
// the capture and convert turns it into the field value.
type rule[T any] struct {
	name    string
	pattern *regexp.Regexp
	group   int
	convert func(string) T
}

// ruleChain is an ordered list of rules. The first matching rule wins.
type ruleChain[T any] []rule[T]

func (c ruleChain[T]) resolve(line string) (T, string, bool) {
	for _, r := range c {
		match := r.pattern.FindStringSubmatch(line)
		if match == nil {
			continue
		}
		return r.convert(match[r.group]), r.name, true
	}
	var zero T
	return zero, "", false
}

// resolveField runs chain against line, reporting the outcome to logger, and
// returns fallback when no rule matches.
func resolveField[T any](logger interfaces.Logger, field string, chain ruleChain[T], line string, fallback T) T {
	value, name, ok := chain.resolve(line)
	if !ok {
		logger.Debug("bookmarks.parse.field_empty", "field", field)
		return fallback
	}
	logger.Debug("bookmarks.parse.field_found", "field", field, "rule", name)
	return value
}

func verbatim(s string) string { return s }
