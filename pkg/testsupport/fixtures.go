package testsupport

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

// LoadFixture reads a bookmark export used as parser input.
func LoadFixture(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// LoadGolden decodes the expected JSON output stored at path into v.
func LoadGolden(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, v)
}

// MustFixture is LoadFixture for tests; it resolves name under testdata/.
func MustFixture(tb testing.TB, name string) string {
	tb.Helper()
	data, err := LoadFixture(filepath.Join("testdata", name))
	if err != nil {
		tb.Fatalf("load fixture %s: %v", name, err)
	}
	return string(data)
}

// MustGolden is LoadGolden for tests; it resolves name under testdata/.
func MustGolden(tb testing.TB, name string, v any) {
	tb.Helper()
	if err := LoadGolden(filepath.Join("testdata", name), v); err != nil {
		tb.Fatalf("load golden %s: %v", name, err)
	}
}
