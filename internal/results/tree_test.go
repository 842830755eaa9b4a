package results_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"trx-reporter/internal/results"
)

func names(cases []results.Case) []string {
	out := make([]string, 0, len(cases))
	for _, c := range cases {
		out = append(out, c.FullName())
	}
	return out
}

func TestTree_Views(t *testing.T) {
	m := results.NewModule("src/math.test.ts", results.StatePassed, results.ModuleDiagnostic{Duration: 30})
	m.AddTest("top", "", results.Result{State: results.StatePassed}, results.Diagnostic{StartTime: 1, Duration: 10})

	math := m.AddSuite("math", "")
	math.AddTest("adds", "", results.Result{State: results.StatePassed}, results.Diagnostic{Duration: 10})
	nested := math.AddSuite("nested", "")
	nested.AddTest("deep", "", results.Result{State: results.StateSkipped}, results.Diagnostic{})
	m.AddSuite("strings", "custom strings").AddTest("concat", "", results.Result{State: results.StateFailed}, results.Diagnostic{})

	if diff := cmp.Diff([]string{"top"}, names(m.Tests())); diff != "" {
		t.Fatalf("direct tests mismatch (-want +got):\n%s", diff)
	}

	want := []string{"top", "math > adds", "math > nested > deep", "custom strings > concat"}
	if diff := cmp.Diff(want, names(m.AllTests())); diff != "" {
		t.Fatalf("all tests mismatch (-want +got):\n%s", diff)
	}

	var suites []string
	for _, s := range m.AllSuites() {
		suites = append(suites, s.FullName())
	}
	if diff := cmp.Diff([]string{"math", "math > nested", "custom strings"}, suites); diff != "" {
		t.Fatalf("suites mismatch (-want +got):\n%s", diff)
	}

	if got := math.Tests()[0].Module().ModuleID(); got != "src/math.test.ts" {
		t.Fatalf("module back-reference = %q", got)
	}
	if got := len(math.Tests()); got != 1 {
		t.Fatalf("math direct tests = %d, want 1", got)
	}
}

func TestModules_Widen(t *testing.T) {
	a := results.NewModule("a", results.StatePassed, results.ModuleDiagnostic{})
	b := results.NewModule("b", results.StateFailed, results.ModuleDiagnostic{}, results.Error{Message: "boom"})

	ms := results.Modules(a, b)
	if got, want := len(ms), 2; got != want {
		t.Fatalf("len = %d, want %d", got, want)
	}
	if ms[1].Errors()[0].Message != "boom" {
		t.Fatalf("errors not carried: %+v", ms[1].Errors())
	}
}
