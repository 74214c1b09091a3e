package netscape

import (
	goerrors "github.com/goliatone/go-errors"
)

// CategoryIO tags failures to read a bookmark source. The underlying error
// stays reachable through errors.Is and errors.As.
var CategoryIO = goerrors.Category("bookmarks_io")

const textCodeReadFailed = "BOOKMARKS_READ_FAILED"

func readError(err error, source string) error {
	return goerrors.Wrap(err, CategoryIO, "bookmarks: unable to read "+source).
		WithTextCode(textCodeReadFailed).
		WithMetadata(map[string]any{"source": source})
}
