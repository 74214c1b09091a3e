package netscape

import (
	"regexp"
	"strings"
)

var (
	whitespaceRun      = regexp.MustCompile(`\s{2,}`)
	leadingPunctuation = regexp.MustCompile(`^[[:punct:]]`)
	tagStrip           = regexp.MustCompile(`[^\p{L}\p{N}\-_]+`)
	tagStripKeepSpaces = regexp.MustCompile(`[^\p{L}\p{N}\-_ ]+`)
)

// tagSeparator picks "," when the text contains a comma, a space otherwise.
func tagSeparator(text string) string {
	if strings.Contains(text, ",") {
		return ","
	}
	return " "
}

// asciiSpace is trimmed from tag tokens; other Unicode spaces are kept.
const asciiSpace = " \t\n\r\x00\x0B"

// SplitTagString lowercases text, splits it on separator and returns the
// trimmed, non-empty tokens in order. Runs of whitespace inside a token
// collapse to one space. Duplicates are kept.
func SplitTagString(text, separator string) []string {
	parts := strings.Split(strings.ToLower(text), separator)
	tags := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.Trim(whitespaceRun.ReplaceAllString(part, " "), asciiSpace)
		if part != "" {
			tags = append(tags, part)
		}
	}
	return tags
}

// SanitizeTags splits text like SplitTagString and cleans tokens that are
// not plain alphanumerics: one leading punctuation character is dropped,
// then everything but letters, digits, '-' and '_' is removed. Spaces
// survive only in comma separated lists. Tokens left empty are dropped.
func SanitizeTags(text string) []string {
	separator := tagSeparator(text)
	strip := tagStrip
	if separator == "," {
		strip = tagStripKeepSpaces
	}

	tags := SplitTagString(text, separator)
	out := tags[:0]
	for _, tag := range tags {
		if !isASCIIAlnum(tag) {
			tag = leadingPunctuation.ReplaceAllString(strings.ToLower(tag), "")
			tag = strip.ReplaceAllString(tag, "")
		}
		if tag != "" {
			out = append(out, tag)
		}
	}
	return out
}

// FlattenTagsList concatenates grouped tags in order.
func FlattenTagsList(groups [][]string) []string {
	size := 0
	for _, group := range groups {
		size += len(group)
	}
	flat := make([]string, 0, size)
	for _, group := range groups {
		flat = append(flat, group...)
	}
	return flat
}

func isASCIIAlnum(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !('a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' || '0' <= c && c <= '9') {
			return false
		}
	}
	return true
}
