package netscape

import (
	"regexp"
	"strings"

	"github.com/goliatone/go-bookmarks/internal/identity"
	"github.com/goliatone/go-bookmarks/pkg/interfaces"
)

const untitled = "untitled"

var (
	hrefPattern        = regexp.MustCompile(`(?i)href="(.*?)"`)
	iconPattern        = regexp.MustCompile(`(?i)icon="(.*?)"`)
	titlePattern       = regexp.MustCompile(`(?i)<a(?:<br>|[^>])*>(.*?)</a>`)
	noteAttrPattern    = regexp.MustCompile(`(?i)(description|note)="(.*?)"`)
	noteBlockPattern   = regexp.MustCompile(`(?i)<dd>(.*?)$`)
	tagsPattern        = regexp.MustCompile(`(?i)(tags?|labels?|folders?)="(.*?)"`)
	addDatePattern     = regexp.MustCompile(`(?i)add_date="(.*?)"`)
	publicAttrPattern  = regexp.MustCompile(`(?i)(public|published|pub)="(.*?)"`)
	privateAttrPattern = regexp.MustCompile(`(?i)(private|shared)="(.*?)"`)
)

var (
	uriRules   = ruleChain[string]{{name: "href", pattern: hrefPattern, group: 1, convert: verbatim}}
	iconRules  = ruleChain[string]{{name: "icon", pattern: iconPattern, group: 1, convert: verbatim}}
	titleRules = ruleChain[string]{{name: "anchor", pattern: titlePattern, group: 1, convert: verbatim}}
	noteRules  = ruleChain[string]{
		{name: "attribute", pattern: noteAttrPattern, group: 2, convert: verbatim},
		{name: "description", pattern: noteBlockPattern, group: 1, convert: func(s string) string {
			return strings.ReplaceAll(s, lineBreak, "\n")
		}},
	}
	tagRules = ruleChain[[]string]{{name: "attribute", pattern: tagsPattern, group: 2, convert: func(s string) []string {
		return SplitTagString(s, tagSeparator(s))
	}}}
)

// buildRules prepares the chains whose conversions depend on parser options.
func (p *Parser) buildRules() {
	p.timeRules = ruleChain[int64]{
		{name: "add_date", pattern: addDatePattern, group: 1, convert: p.ParseDate},
	}
	p.pubRules = ruleChain[any]{
		{name: "public", pattern: publicAttrPattern, group: 2, convert: func(s string) any {
			return visibility(interfaces.Truthy(p.ParseBoolean(s)))
		}},
		{name: "private", pattern: privateAttrPattern, group: 2, convert: func(s string) any {
			return visibility(!interfaces.Truthy(p.ParseBoolean(s)))
		}},
	}
}

func visibility(public bool) any {
	if public {
		return 1
	}
	return 0
}

// extractLink builds a record from a sanitized anchor line. inherited holds
// the tags of the enclosing folders.
func (p *Parser) extractLink(logger interfaces.Logger, line string, inherited []string) interfaces.Record {
	logger.Debug("bookmarks.parse.link_found")

	record := interfaces.Record{
		URI:   resolveField(logger, "uri", uriRules, line, ""),
		Icon:  resolveField(logger, "icon", iconRules, line, ""),
		Title: resolveField(logger, "title", titleRules, line, ""),
		Note:  resolveField(logger, "note", noteRules, line, ""),
	}
	if record.Title == "" {
		record.Title = untitled
	}
	record.ID = identity.RecordUUID(record.URI)

	tags := make([]string, 0, len(p.defaultTags)+len(inherited))
	tags = append(tags, p.defaultTags...)
	if p.keepNestedTags {
		tags = append(tags, inherited...)
	}
	tags = append(tags, resolveField(logger, "tags", tagRules, line, nil)...)
	record.Tags = tags
	logger.Debug("bookmarks.parse.tags", "tags", tags)

	record.Time = resolveField(logger, "time", p.timeRules, line, p.now().Unix())
	logger.Debug("bookmarks.parse.date", "time", record.Time)

	record.Pub = resolveField(logger, "pub", p.pubRules, line, p.defaultPub)
	logger.Debug("bookmarks.parse.visibility", "public", interfaces.Truthy(record.Pub))

	return record
}
