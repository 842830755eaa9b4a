package trx

import "trx-reporter/internal/results"

// RunTimes is the run window in epoch milliseconds. Creation and queuing are
// reported as Start.
type RunTimes struct {
	Start  float64
	Finish float64
}

// ComputeTimes anchors the run at the first direct case of the first module
// and extends it by each module's own reported duration.
func ComputeTimes(modules []results.Module) RunTimes {
	if len(modules) == 0 {
		return RunTimes{}
	}
	start := firstStartTime(modules[0].Tests())

	var total float64
	for _, m := range modules {
		total += m.Diagnostic().Duration
	}
	return RunTimes{Start: start, Finish: start + total}
}

func renderTimes(parent *Element, t RunTimes) {
	start := FormatTime(t.Start)
	parent.Ele("Times").
		Att("creation", start).
		Att("queuing", start).
		Att("start", start).
		Att("finish", FormatTime(t.Finish))
}
