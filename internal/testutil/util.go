// Package testutil holds shared helpers for golden-file tests.
package testutil

import (
	"bytes"
	"encoding/json"
	"flag"
	"os"
	"path/filepath"
	"testing"
)

var update = flag.Bool("update", false, "update golden files")

// CompareWithGolden marshals v as indented JSON and compares it against
// testdata/<name>.golden in the calling package, rewriting the file when
// the -update flag is set.
func CompareWithGolden(t *testing.T, name string, v any) {
	t.Helper()

	actual, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		t.Fatalf("marshal %s: %v", name, err)
	}

	path := filepath.Join("testdata", name+".golden")

	if *update {
		if err := os.WriteFile(path, actual, 0644); err != nil {
			t.Fatalf("write golden %s: %v", path, err)
		}
		return
	}

	expected, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read golden %s: %v", path, err)
	}

	if !bytes.Equal(expected, actual) {
		t.Fatalf("golden mismatch for %s\nexpected:\n%s\nactual:\n%s",
			name, expected, actual)
	}
}
