package zenith

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// Sub-packages that carry a license header must all use the same one.
func TestLicenseHeadersConsistent(t *testing.T) {
	const want = "// SPDX-License-Identifier: MIT"
	for _, dir := range []string{"surface", "integration"} {
		err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
			if err != nil || d.IsDir() || !strings.HasSuffix(path, ".go") {
				return err
			}
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}
			lines := strings.SplitN(string(data), "\n", 3)
			if len(lines) < 2 || !strings.HasPrefix(lines[0], "// Copyright") || lines[1] != want {
				t.Errorf("%s: header %q, want copyright line then %q", path, lines[:min(2, len(lines))], want)
			}
			return nil
		})
		if err != nil {
			t.Fatal(err)
		}
	}
}
