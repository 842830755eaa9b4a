package hooks

import (
	"trx-reporter/internal/results"
	"trx-reporter/internal/trx"
)

// AttachModuleFile records the case's module file as a result file.
var AttachModuleFile = trx.PostProcessorFunc(func(_ results.Suite, tc results.Case, node trx.ResultNode) error {
	appendResultFiles(node, []string{tc.Module().ModuleID()})
	return nil
})
