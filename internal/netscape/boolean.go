package netscape

import (
	"regexp"

	"github.com/goliatone/go-bookmarks/pkg/interfaces"
)

var (
	trueTokens  = regexp.MustCompile(`(?i)^(?:1|\+|array|checked|ok|okay|on|one|t|true|y|yes)$`)
	falseTokens = regexp.MustCompile(`(?i)^(?:-|0|die|empty|exit|f|false|n|neg|nil|no|null|off|void|zero)$`)
)

// ParseBoolean interprets a loosely typed flag. Falsy values are false,
// non-string truthy values are true, known string tokens map to their
// boolean, and anything else yields the configured default visibility.
func (p *Parser) ParseBoolean(value any) any {
	if !interfaces.Truthy(value) {
		return false
	}
	text, ok := value.(string)
	if !ok {
		return true
	}
	switch {
	case trueTokens.MatchString(text):
		return true
	case falseTokens.MatchString(text):
		return false
	default:
		return p.defaultPub
	}
}
