package runtimeconfig

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// ErrDateRangeInvalid is returned when a date range cannot be parsed.
var ErrDateRangeInvalid = errors.New("bookmarks config: date range is invalid")

var (
	rangeTermPattern = regexp.MustCompile(`(?i)([+-]?\d+)\s*(secs?|seconds?|mins?|minutes?|hours?|days?|weeks?|fortnights?|months?|years?)\b`)
	rangeFullPattern = regexp.MustCompile(`(?i)^(?:\s*[+-]?\d+\s*(?:secs?|seconds?|mins?|minutes?|hours?|days?|weeks?|fortnights?|months?|years?)\b)+\s*$`)
)

// Range is a calendar-aware offset parsed from strings like "30 years".
type Range struct {
	Years    int
	Months   int
	Days     int
	Duration time.Duration
}

// ParseRange parses one or more "<n> <unit>" terms. Units are seconds,
// minutes, hours, days, weeks, fortnights, months and years, singular or
// plural, with an optional sign on the count.
func ParseRange(raw string) (Range, error) {
	var r Range
	if !rangeFullPattern.MatchString(raw) {
		return r, fmt.Errorf("%w: %q", ErrDateRangeInvalid, raw)
	}

	for _, term := range rangeTermPattern.FindAllStringSubmatch(raw, -1) {
		n, err := strconv.Atoi(term[1])
		if err != nil {
			return Range{}, fmt.Errorf("%w: %q", ErrDateRangeInvalid, raw)
		}
		unit := strings.ToLower(term[2])
		switch {
		case strings.HasPrefix(unit, "sec"):
			r.Duration += time.Duration(n) * time.Second
		case strings.HasPrefix(unit, "min"):
			r.Duration += time.Duration(n) * time.Minute
		case strings.HasPrefix(unit, "hour"):
			r.Duration += time.Duration(n) * time.Hour
		case strings.HasPrefix(unit, "day"):
			r.Days += n
		case strings.HasPrefix(unit, "fortnight"):
			r.Days += 14 * n
		case strings.HasPrefix(unit, "week"):
			r.Days += 7 * n
		case strings.HasPrefix(unit, "month"):
			r.Months += n
		case strings.HasPrefix(unit, "year"):
			r.Years += n
		}
	}
	return r, nil
}

// From returns t shifted by the range.
func (r Range) From(t time.Time) time.Time {
	return t.AddDate(r.Years, r.Months, r.Days).Add(r.Duration)
}
