// Command resultfiles is a post-process hook for trx-reporter. It reads a
// case from stdin and reports every file under ARTIFACT_DIR whose name
// contains the case's slug, e.g. screenshots saved by the test itself.
package main

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"trx-reporter/internal/hooks"
)

func main() {
	var in hooks.Input
	if err := json.NewDecoder(os.Stdin).Decode(&in); err != nil {
		fmt.Fprintf(os.Stderr, "decode: %v\n", err)
		os.Exit(1)
	}
	dir := os.Getenv("ARTIFACT_DIR")
	if dir == "" {
		dir = "artifacts"
	}
	files, err := find(dir, in.Test.FullName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "scan %s: %v\n", dir, err)
		os.Exit(1)
	}
	_ = json.NewEncoder(os.Stdout).Encode(hooks.Output{ResultFiles: files})
}

func find(dir, fullName string) ([]string, error) {
	want := slug(fullName)
	if want == "" {
		return nil, nil
	}
	var out []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if os.IsNotExist(err) && path == dir {
				return fs.SkipAll
			}
			return err
		}
		if !d.IsDir() && strings.Contains(slug(d.Name()), want) {
			out = append(out, path)
		}
		return nil
	})
	sort.Strings(out)
	return out, err
}

// slug lowercases s and collapses runs of non-alphanumerics into "-".
func slug(s string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(s) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
			dash = false
			continue
		}
		if !dash && b.Len() > 0 {
			b.WriteByte('-')
			dash = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
