// Package netscape parses Netscape bookmark exports, the HTML-like files
// browsers write from "export bookmarks".
//
// Parsing is line oriented and pattern driven. Sanitize rewrites the input
// so every bookmark entry sits on one line, then the parser walks the lines
// keeping a stack of folder headings whose names become inherited tags.
// Malformed markup never produces an error: every field of a record has a
// default.
package netscape
