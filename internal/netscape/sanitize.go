package netscape

import (
	"regexp"
	"strings"
)

const lineBreak = "<br>"

var (
	commentPattern     = regexp.MustCompile(`(?s)<!--.*?-->`)
	tagBoundaryPattern = regexp.MustCompile(`>\s*<`)
	metadataPattern    = regexp.MustCompile(`(?im)^(?:<!DOCTYPE|<META|<TITLE|<H1|<P)[^\n]*(?:\n|$)`)
	descriptionPattern = regexp.MustCompile(`(?is)<DD>(.*?)(</?:?(?:DT|DD|DL))`)
	anchorBlockPattern = regexp.MustCompile(`(?is)<A(.*?)</A>`)
	brContinuation     = regexp.MustCompile(`(?i)\n<br>`)
	ddContinuation     = regexp.MustCompile(`(?i)\n<DD`)
)

// Sanitize normalizes a bookmark export so that each tag starts its own line
// and each bookmark entry (anchor plus optional description) occupies exactly
// one line. Comments and document metadata are removed; line breaks inside
// descriptions and anchors become <br> placeholders.
func Sanitize(raw string) string {
	out := commentPattern.ReplaceAllString(raw, "")
	out = tagBoundaryPattern.ReplaceAllString(out, ">\n<")
	out = metadataPattern.ReplaceAllString(out, "")
	out = strings.TrimSpace(out)
	out = strings.ReplaceAll(out, "\r", "")

	out = replaceSubmatches(descriptionPattern, out, func(groups []string) string {
		return "<DD>" + collapseLines(groups[1]) + "\n" + groups[2]
	})
	out = replaceSubmatches(anchorBlockPattern, out, func(groups []string) string {
		return "<A " + collapseLines(groups[1]) + "</A>"
	})

	out = brContinuation.ReplaceAllString(out, lineBreak)
	return ddContinuation.ReplaceAllString(out, "<DD")
}

func collapseLines(text string) string {
	return strings.ReplaceAll(strings.TrimSpace(text), "\n", lineBreak)
}

// replaceSubmatches is ReplaceAllStringFunc with access to capture groups.
func replaceSubmatches(re *regexp.Regexp, src string, fn func(groups []string) string) string {
	matches := re.FindAllStringSubmatchIndex(src, -1)
	if len(matches) == 0 {
		return src
	}

	var b strings.Builder
	b.Grow(len(src))
	last := 0
	for _, loc := range matches {
		b.WriteString(src[last:loc[0]])
		groups := make([]string, len(loc)/2)
		for i := range groups {
			if start := loc[2*i]; start >= 0 {
				groups[i] = src[start:loc[2*i+1]]
			}
		}
		b.WriteString(fn(groups))
		last = loc[1]
	}
	b.WriteString(src[last:])
	return b.String()
}
