package trx

import (
	"strconv"

	"trx-reporter/internal/results"
)

// RunSummary holds the run-level counters.
type RunSummary struct {
	Outcome  Outcome `json:"outcome"`
	Total    int     `json:"total"`
	Executed int     `json:"executed"`
	Passed   int     `json:"passed"`
	Failed   int     `json:"failed"`
	Error    int     `json:"error"`
}

// Summarize counts every case reachable from the modules plus module-level
// errors. States other than passed, failed, pending and skipped count towards
// Total and Executed only.
func Summarize(modules []results.Module) RunSummary {
	var all, passed, failed, pending, errs int

	for _, m := range modules {
		errs += len(m.Errors())
		for _, tc := range m.AllTests() {
			switch tc.Result().State {
			case results.StateFailed:
				failed++
			case results.StatePassed:
				passed++
			case results.StatePending, results.StateSkipped:
				pending++
			}
			all++
		}
	}

	outcome := OutcomePassed
	if failed > 0 || errs > 0 {
		outcome = OutcomeFailed
	}
	return RunSummary{
		Outcome:  outcome,
		Total:    all + errs,
		Executed: all - pending,
		Passed:   passed,
		Failed:   failed,
		Error:    errs,
	}
}

func renderResultSummary(parent *Element, s RunSummary) {
	parent.Ele("ResultSummary").
		Att("outcome", string(s.Outcome)).
		Ele("Counters").
		Att("total", strconv.Itoa(s.Total)).
		Att("executed", strconv.Itoa(s.Executed)).
		Att("passed", strconv.Itoa(s.Passed)).
		Att("failed", strconv.Itoa(s.Failed)).
		Att("error", strconv.Itoa(s.Error))
}
