package interfaces

import (
	"io"
	"io/fs"

	"github.com/google/uuid"
)

// Record is a single bookmark extracted from a Netscape export.
type Record struct {
	// ID is derived from URI; uuid.Nil when the link had no href.
	ID    uuid.UUID `json:"id"`
	URI   string    `json:"uri"`
	Icon  string    `json:"icon"`
	Title string    `json:"title"`
	Note  string    `json:"note"`
	// Tags holds default tags, then inherited folder tags, then the link's own
	// tags. Duplicates are kept.
	Tags []string `json:"tags"`
	// Time is a unix timestamp in seconds.
	Time int64 `json:"time"`
	// Pub is 1 (public) or 0 (private) when the link carried a visibility
	// attribute, otherwise the configured default passed through as given.
	Pub any `json:"pub"`
}

// Public reports whether Pub reads as a published flag. nil, false, zero
// numbers, "" and "0" are private; everything else is public.
func (r Record) Public() bool {
	return Truthy(r.Pub)
}

// Truthy applies loose truthiness to a passthrough value.
func Truthy(value any) bool {
	switch v := value.(type) {
	case nil:
		return false
	case bool:
		return v
	case string:
		return v != "" && v != "0"
	case int:
		return v != 0
	case int8:
		return v != 0
	case int16:
		return v != 0
	case int32:
		return v != 0
	case int64:
		return v != 0
	case uint:
		return v != 0
	case uint8:
		return v != 0
	case uint16:
		return v != 0
	case uint32:
		return v != 0
	case uint64:
		return v != 0
	case float32:
		return v != 0
	case float64:
		return v != 0
	default:
		return true
	}
}

// BookmarkParser converts Netscape bookmark exports into records.
type BookmarkParser interface {
	ParseString(text string) []Record
	ParseReader(r io.Reader) ([]Record, error)
	ParseFile(path string) ([]Record, error)
	ParseFS(fsys fs.FS, name string) ([]Record, error)
}

// Exporter writes records as a bookmark document.
type Exporter interface {
	Export(w io.Writer, records []Record) error
}
