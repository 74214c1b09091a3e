package netscape

import (
	"regexp"
	"testing"
)

func TestRuleChainFirstMatchWins(t *testing.T) {
	chain := ruleChain[string]{
		{name: "first", pattern: regexp.MustCompile(`a=(\w+)`), group: 1, convert: verbatim},
		{name: "second", pattern: regexp.MustCompile(`b=(\w+)`), group: 1, convert: verbatim},
	}

	value, name, ok := chain.resolve("b=2 a=1")
	if !ok || name != "first" || value != "1" {
		t.Fatalf("expected first rule to win, got %q %q %v", value, name, ok)
	}
	value, name, ok = chain.resolve("b=2")
	if !ok || name != "second" || value != "2" {
		t.Fatalf("expected fallback to second rule, got %q %q %v", value, name, ok)
	}
	if _, _, ok := chain.resolve("c=3"); ok {
		t.Fatalf("expected no match")
	}
}

func TestNoteAttributeWinsOverDescription(t *testing.T) {
	parser := newTestParser(t, nil)

	records := parser.ParseString(`<A HREF="x" DESCRIPTION="from attribute">T</A><DD>from block`)
	if records[0].Note != "from attribute" {
		t.Fatalf("expected attribute note, got %q", records[0].Note)
	}
	records = parser.ParseString(`<A HREF="x" NOTE="noted">T</A>`)
	if records[0].Note != "noted" {
		t.Fatalf("expected note attribute, got %q", records[0].Note)
	}
	records = parser.ParseString("<A HREF=\"x\">T</A>\n<DD>one\ntwo\n</DL>")
	if records[0].Note != "one\ntwo" {
		t.Fatalf("expected description block with line breaks, got %q", records[0].Note)
	}
}

func TestExplicitTagSeparators(t *testing.T) {
	parser := newTestParser(t, nil)
	cases := map[string][]string{
		`<A HREF="x" TAGS="Go,  Web Dev">T</A>`: {"go", "web dev"},
		`<A HREF="x" TAG="go web">T</A>`:        {"go", "web"},
		`<A HREF="x" FOLDERS="">T</A>`:          {},
	}
	for line, want := range cases {
		got := parser.ParseString(line)[0].Tags
		if len(got) != len(want) {
			t.Fatalf("tags for %s = %#v, want %#v", line, got, want)
		}
		for i := range want {
			if got[i] != want[i] {
				t.Fatalf("tags for %s = %#v, want %#v", line, got, want)
			}
		}
	}
}
