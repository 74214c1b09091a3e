package identity

import (
	"strings"

	hashid "github.com/goliatone/hashid/pkg/hashid"
	"github.com/google/uuid"
)

const recordNamespace = "go-bookmarks:record:"

// UUID derives a deterministic UUID from a stable key using go-hashid.
func UUID(key string) uuid.UUID {
	trimmed := strings.TrimSpace(key)
	if trimmed == "" {
		return uuid.Nil
	}
	uid, err := hashid.NewUUID(trimmed, hashid.WithHashAlgorithm(hashid.SHA256), hashid.WithNormalization(true))
	if err != nil || uid == uuid.Nil {
		return uuid.NewSHA1(uuid.NameSpaceURL, []byte(trimmed))
	}
	return uid
}

// RecordUUID identifies a bookmark by its URI. Links without an href get
// uuid.Nil. Equal URIs share an ID; deciding what to do with them is up to
// the caller.
func RecordUUID(uri string) uuid.UUID {
	if strings.TrimSpace(uri) == "" {
		return uuid.Nil
	}
	return UUID(recordNamespace + strings.TrimSpace(uri))
}
