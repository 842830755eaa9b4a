package trx

import "trx-reporter/internal/results"

const (
	Namespace        = "http://microsoft.com/schemas/VisualStudio/TeamTest/2010"
	TestSettingsName = "Jest test run"

	TestListNotInListID        = "8c84fa94-04c1-424b-9868-57a2d4851a1d"
	TestListAllLoadedResultsID = "19431567-8539-422a-85d7-44ee4e166bda"

	// UnitTestType identifies a unit test in the TRX schema.
	UnitTestType = "13cdc9d9-ddb5-4fa4-a97d-d965ccfc6d4b"
)

type Outcome string

const (
	OutcomePassed      Outcome = "Passed"
	OutcomeFailed      Outcome = "Failed"
	OutcomeNotExecuted Outcome = "NotExecuted"
)

var outcomeTable = map[results.State]Outcome{
	results.StatePassed:  OutcomePassed,
	results.StateFailed:  OutcomeFailed,
	results.StatePending: OutcomeNotExecuted,
	results.StateSkipped: OutcomeNotExecuted,
}

// OutcomeFor maps a runner state to a TRX outcome. Unknown states are NotExecuted.
func OutcomeFor(state results.State) Outcome {
	if o, ok := outcomeTable[state]; ok {
		return o
	}
	return OutcomeNotExecuted
}
