package trx

import (
	"fmt"
	"path/filepath"
	"time"

	"trx-reporter/internal/results"
)

// suiteRenderer fills the three containers of a document in lockstep.
type suiteRenderer struct {
	definitions  *Element
	entries      *Element
	results      *Element
	computerName string
	workDir      string
	ids          IDGenerator
	now          func() time.Time
	hooks        []PostProcessor
}

// renderSuite emits one result per direct case of the suite and, when the
// suite itself reported errors, one synthetic failed result for the suite.
//
// Every case shares the suite's first start time and ends at that anchor plus
// the durations of the cases before it. This timing is nominal only.
func (r *suiteRenderer) renderSuite(suite results.Suite) error {
	cases := suite.Tests()
	anchor := firstStartTime(cases)
	startTime := FormatTime(anchor)

	var runningDuration float64
	for _, tc := range cases {
		testID, executionID := r.ids.NewID(), r.ids.NewID()
		fullName := tc.FullName()
		duration := tc.Diagnostic().Duration
		res := tc.Result()

		r.renderDefinition(fullName, testID, executionID, r.relative(tc.Module().ModuleID()), suite.FullName())
		r.renderEntry(testID, executionID)

		node := r.renderResult(testID, executionID, fullName,
			FormatDuration(duration), startTime, FormatTime(anchor+runningDuration), OutcomeFor(res.State))

		runningDuration += duration

		if res.State == results.StateFailed {
			renderErrorInfo(node, joinMessages(res.Errors))
		}

		for _, hook := range r.hooks {
			if err := hook.PostProcess(suite, tc, ResultNode{el: node}); err != nil {
				return fmt.Errorf("post-process %q: %w", fullName, err)
			}
		}
	}

	if errs := suite.Errors(); len(errs) > 0 {
		testID, executionID := r.ids.NewID(), r.ids.NewID()
		fullName := suite.FullName()
		now := formatInstant(r.now())

		r.renderDefinition(fullName, testID, executionID, r.relative(suite.Module().ModuleID()), fullName)
		r.renderEntry(testID, executionID)
		node := r.renderResult(testID, executionID, fullName, "0", now, now, OutcomeFailed)
		renderErrorInfo(node, joinMessages(errs))
	}
	return nil
}

func (r *suiteRenderer) renderDefinition(name, testID, executionID, storage, className string) {
	unitTest := r.definitions.Ele("UnitTest").
		Att("name", name).
		Att("id", testID).
		Att("storage", storage)
	unitTest.Ele("Execution").Att("id", executionID)
	unitTest.Ele("TestMethod").
		Att("codeBase", storage).
		Att("name", name).
		Att("className", className)
}

func (r *suiteRenderer) renderEntry(testID, executionID string) {
	r.entries.Ele("TestEntry").
		Att("testId", testID).
		Att("executionId", executionID).
		Att("testListId", TestListNotInListID)
}

func (r *suiteRenderer) renderResult(testID, executionID, name, duration, start, end string, outcome Outcome) *Element {
	return r.results.Ele("UnitTestResult").
		Att("testId", testID).
		Att("executionId", executionID).
		Att("testName", name).
		Att("computerName", r.computerName).
		Att("duration", duration).
		Att("startTime", start).
		Att("endTime", end).
		Att("testType", UnitTestType).
		Att("outcome", string(outcome)).
		Att("testListId", TestListNotInListID)
}

func renderErrorInfo(node *Element, message string) {
	node.Ele("Output").Ele("ErrorInfo").Ele("Message").SetText(message)
}

// relative expresses a module id relative to the working directory. Ids that
// cannot be relativized are returned unchanged.
func (r *suiteRenderer) relative(moduleID string) string {
	abs := moduleID
	if !filepath.IsAbs(abs) {
		abs = filepath.Join(r.workDir, abs)
	}
	rel, err := filepath.Rel(r.workDir, abs)
	if err != nil {
		return moduleID
	}
	return rel
}
