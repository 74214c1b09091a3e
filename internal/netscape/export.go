package netscape

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/goliatone/go-bookmarks/internal/logging"
	"github.com/goliatone/go-bookmarks/pkg/interfaces"
)

const exportHeader = `<!DOCTYPE NETSCAPE-Bookmark-file-1>
<META HTTP-EQUIV="Content-Type" CONTENT="text/html; charset=UTF-8">
<TITLE>%[1]s</TITLE>
<H1>%[1]s</H1>
<DL><p>
`

const exportFooter = "</DL><p>\n"

// Only the characters that would break an entry apart are escaped. The
// parser reads values verbatim and does not decode entities, so a value
// containing '"', '<' or '>' reads back with &quot;, &lt; or &gt; in place.
var (
	attributeEscaper = strings.NewReplacer(`"`, "&quot;", "\n", " ", "\r", "")
	textEscaper      = strings.NewReplacer("<", "&lt;", ">", "&gt;", "\r", "", "\n", " ")
	noteEscaper      = strings.NewReplacer("<", "&lt;", ">", "&gt;", "\r", "", "\n", lineBreak)
)

// Exporter writes records as a flat Netscape bookmark document. Records whose
// text avoids '"', '<' and '>' read back into equivalent records.
type Exporter struct {
	title  string
	logger interfaces.Logger
}

var _ interfaces.Exporter = (*Exporter)(nil)

// ExportOption customizes an Exporter.
type ExportOption func(*Exporter)

// WithTitle sets the document title. Defaults to "Bookmarks".
func WithTitle(title string) ExportOption {
	return func(e *Exporter) {
		if trimmed := strings.TrimSpace(title); trimmed != "" {
			e.title = trimmed
		}
	}
}

// WithExportLogger sets the logger notified for each written record.
func WithExportLogger(logger interfaces.Logger) ExportOption {
	return func(e *Exporter) {
		e.logger = logging.OrNoOp(logger)
	}
}

func NewExporter(opts ...ExportOption) *Exporter {
	e := &Exporter{
		title:  "Bookmarks",
		logger: logging.NoOp(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(e)
		}
	}
	return e
}

// Export writes records to w in order.
func (e *Exporter) Export(w io.Writer, records []interfaces.Record) error {
	buf := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(buf, exportHeader, textEscaper.Replace(e.title)); err != nil {
		return err
	}
	for _, record := range records {
		if _, err := buf.WriteString(MarshalRecord(record)); err != nil {
			return err
		}
		e.logger.Debug("bookmarks.export.record", "uri", record.URI)
	}
	if _, err := buf.WriteString(exportFooter); err != nil {
		return err
	}
	if err := buf.Flush(); err != nil {
		return err
	}
	e.logger.Info("bookmarks.export.done", "records", len(records))
	return nil
}

// MarshalRecord renders one record as a <DT> entry, followed by a <DD> line
// when the record has a note.
func MarshalRecord(record interfaces.Record) string {
	var b strings.Builder
	fmt.Fprintf(&b, `<DT><A HREF="%s" ADD_DATE="%d" PRIVATE="%d"`,
		attributeEscaper.Replace(record.URI),
		record.Time,
		privateFlag(record),
	)
	if len(record.Tags) > 0 {
		fmt.Fprintf(&b, ` TAGS="%s"`, attributeEscaper.Replace(joinTags(record.Tags)))
	}
	if record.Icon != "" {
		fmt.Fprintf(&b, ` ICON="%s"`, attributeEscaper.Replace(record.Icon))
	}
	fmt.Fprintf(&b, ">%s</A>\n", textEscaper.Replace(record.Title))
	if record.Note != "" {
		fmt.Fprintf(&b, "<DD>%s\n", noteEscaper.Replace(record.Note))
	}
	return b.String()
}

func privateFlag(record interfaces.Record) int {
	if record.Public() {
		return 0
	}
	return 1
}

// joinTags comma-separates tags. A lone tag containing a space gets a
// trailing comma so it is not split on the space when read back.
func joinTags(tags []string) string {
	joined := strings.Join(tags, ",")
	if len(tags) == 1 && strings.Contains(joined, " ") {
		joined += ","
	}
	return joined
}
