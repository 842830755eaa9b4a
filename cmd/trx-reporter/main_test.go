package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"trx-reporter/internal/config"
	"trx-reporter/internal/hooks"
)

func TestSplitCSV(t *testing.T) {
	if diff := cmp.Diff([]string{"a.json", "b.yaml"}, splitCSV(" a.json, ,b.yaml ")); diff != "" {
		t.Fatalf("splitCSV mismatch (-want +got):\n%s", diff)
	}
	if got := splitCSV(""); got != nil {
		t.Fatalf("splitCSV(\"\") = %v, want nil", got)
	}
}

func TestPostProcessors(t *testing.T) {
	got, err := postProcessors(config.Args{})
	if err != nil || len(got) != 0 {
		t.Fatalf("postProcessors() = %d hooks, %v; want 0, nil", len(got), err)
	}

	envFile := filepath.Join(t.TempDir(), "hook.env.json")
	if err := os.WriteFile(envFile, []byte(`{"ARTIFACT_DIR":"shots"}`), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	got, err = postProcessors(config.Args{
		AttachModuleFiles: true,
		HookCmd:           "collect",
		HookArgs:          []string{"-v"},
		HookEnvFiles:      []string{envFile},
		HookTimeoutMs:     250,
	})
	if err != nil {
		t.Fatalf("postProcessors() unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("postProcessors() = %d hooks, want 2", len(got))
	}
	p, ok := got[1].(*hooks.Process)
	if !ok {
		t.Fatalf("second hook is %T, want *hooks.Process", got[1])
	}
	if p.Cmd != "collect" || p.Timeout.Milliseconds() != 250 || p.Env["ARTIFACT_DIR"] != "shots" {
		t.Fatalf("process hook = %+v", p)
	}

	if _, err := postProcessors(config.Args{HookCmd: "collect", HookEnvFiles: []string{envFile + ".missing"}}); err == nil {
		t.Fatal("expected error for missing hook env file")
	}
}
