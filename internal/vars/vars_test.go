package vars_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"trx-reporter/internal/vars"
)

func write(t *testing.T, dir, name, content string) string {
	t.Helper()
	fp := filepath.Join(dir, name)
	if err := os.WriteFile(fp, []byte(content), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	return fp
}

func TestLoadFiles(t *testing.T) {
	dir := t.TempDir()
	jsonFile := write(t, dir, "env.json", `{"ARTIFACT_DIR":"shots","NUM":42,"BOOL":true}`)
	yamlFile := write(t, dir, "env.yaml", "NUM: 7\nEMPTY:\n_private: x\n")

	m, err := vars.LoadFiles([]string{jsonFile, "", yamlFile})
	if err != nil {
		t.Fatalf("LoadFiles: %v", err)
	}
	want := map[string]string{"ARTIFACT_DIR": "shots", "NUM": "7", "BOOL": "true", "EMPTY": "", "_private": "x"}
	if diff := cmp.Diff(want, m); diff != "" {
		t.Fatalf("LoadFiles mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadFiles_Errors(t *testing.T) {
	dir := t.TempDir()

	if _, err := vars.LoadFiles([]string{filepath.Join(dir, "missing.json")}); err == nil {
		t.Fatal("expected error for missing file")
	}
	if _, err := vars.LoadFiles([]string{write(t, dir, "list.yaml", "- a\n- b\n")}); err == nil {
		t.Fatal("expected error for a non-mapping document")
	}
}

func TestLoadFiles_RejectsInvalidEntries(t *testing.T) {
	dir := t.TempDir()
	bad := write(t, dir, "bad.yaml", "OUTER:\n  INNER: 1\n\"1ST\": x\n\"WITH=EQ\": y\nOK: fine\n")

	_, err := vars.LoadFiles([]string{bad})
	if err == nil {
		t.Fatal("expected error for invalid entries")
	}
	msg := err.Error()
	for _, want := range []string{"value of OUTER must be a scalar", `"1ST" is not a valid`, `"WITH=EQ" is not a valid`} {
		if !strings.Contains(msg, want) {
			t.Errorf("error %q missing %q", msg, want)
		}
	}
}

func TestEnviron(t *testing.T) {
	base := []string{"PATH=/bin"}
	got := vars.Environ(base, map[string]string{"B": "2", "A": "1"})
	want := []string{"PATH=/bin", "A=1", "B=2"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("Environ mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"PATH=/bin"}, base); diff != "" {
		t.Fatalf("Environ modified base (-want +got):\n%s", diff)
	}
}
