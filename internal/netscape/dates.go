package netscape

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

var epochPattern = regexp.MustCompile(`^[+-]?\d+(?:\.\d+)?$`)

// ParseDate converts an ADD_DATE value to unix seconds. Bare epochs are
// normalized when enabled; anything else goes through a permissive date
// parser; unparseable or missing values resolve to now. Fragments such as
// "12/" or "1:" parse to year zero or one and are treated as unparseable.
func (p *Parser) ParseDate(raw string) int64 {
	raw = strings.TrimSpace(raw)
	if epochPattern.MatchString(raw) {
		if epoch, ok := epochDigits(raw); ok {
			if p.normalizeDates {
				return p.NormalizeDate(epoch)
			}
			if value, err := strconv.ParseInt(epoch, 10, 64); err == nil {
				return value
			}
		}
		return p.now().Unix()
	}
	if raw != "" {
		parsed, err := dateparse.ParseIn(raw, time.UTC)
		if err == nil && parsed.Year() > 1 {
			return parsed.Unix()
		}
	}
	return p.now().Unix()
}

// NormalizeDate drops trailing digits from epoch until it lands at or before
// now plus the configured range. Exports written in milliseconds or
// microseconds come back as seconds this way. Digit strings too long for an
// int64 count as out of range.
func (p *Parser) NormalizeDate(epoch string) int64 {
	if idx := strings.IndexByte(epoch, '.'); idx >= 0 {
		epoch = epoch[:idx]
	}
	limit := p.dateRange.From(p.now()).Unix()

	var last int64
	for candidate := epoch; hasDigits(candidate); candidate = candidate[:len(candidate)-1] {
		value, err := strconv.ParseInt(candidate, 10, 64)
		if err != nil {
			continue
		}
		if value <= limit {
			return value
		}
		last = value
	}
	return last
}

// epochDigits returns the integer part of a bare epoch, rejecting zero.
func epochDigits(raw string) (string, bool) {
	if idx := strings.IndexByte(raw, '.'); idx >= 0 {
		raw = raw[:idx]
	}
	if strings.Trim(raw, "+-0") == "" {
		return "", false
	}
	return raw, true
}

func hasDigits(s string) bool {
	return strings.Trim(s, "+-") != ""
}
