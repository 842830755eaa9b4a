package trx

import (
	"os"
	"time"

	"github.com/sirupsen/logrus"

	"trx-reporter/internal/envinfo"
	"trx-reporter/internal/results"
)

// PostProcessor augments the result node of a real case after it is built.
// Returned errors abort generation.
type PostProcessor interface {
	PostProcess(suite results.Suite, tc results.Case, node ResultNode) error
}

type PostProcessorFunc func(suite results.Suite, tc results.Case, node ResultNode) error

func (f PostProcessorFunc) PostProcess(suite results.Suite, tc results.Case, node ResultNode) error {
	return f(suite, tc, node)
}

// Options tune a single generation. The zero value is usable.
type Options struct {
	// DefaultUserName is reported when the real user or host cannot be detected.
	DefaultUserName string
	// PostProcessors run in order for every real case result.
	PostProcessors []PostProcessor

	IDs      IDGenerator
	Now      func() time.Time
	Resolver envinfo.Resolver
	// WorkDir is the base for storage paths. Defaults to the process working directory.
	WorkDir string
}

func (o Options) withDefaults() Options {
	if o.IDs == nil {
		o.IDs = UUIDGenerator{}
	}
	if o.Now == nil {
		o.Now = time.Now
	}
	if o.WorkDir == "" {
		if wd, err := os.Getwd(); err == nil {
			o.WorkDir = wd
		} else {
			o.WorkDir = "."
		}
	}
	return o
}

// Build assembles the TestRun document for the given modules.
func Build(modules []results.Module, opts Options) (*Element, error) {
	opts = opts.withDefaults()
	env := opts.Resolver.Resolve(opts.DefaultUserName)
	times := ComputeTimes(modules)
	summary := Summarize(modules)

	root := NewElement("TestRun").
		Att("id", opts.IDs.NewID()).
		Att("name", env.UserName+"@"+env.ComputerName+" "+FormatTime(times.Start)).
		Att("runUser", env.UserName).
		Att("xmlns", Namespace)

	root.Ele("TestSettings").
		Att("name", TestSettingsName).
		Att("id", opts.IDs.NewID())
	renderTimes(root, times)
	renderResultSummary(root, summary)

	r := &suiteRenderer{
		definitions:  root.Ele("TestDefinitions"),
		computerName: env.ComputerName,
		workDir:      opts.WorkDir,
		ids:          opts.IDs,
		now:          opts.Now,
		hooks:        opts.PostProcessors,
	}
	renderTestLists(root)
	r.entries = root.Ele("TestEntries")
	r.results = root.Ele("Results")

	for _, m := range modules {
		for _, suite := range m.AllSuites() {
			if err := r.renderSuite(suite); err != nil {
				return nil, err
			}
		}
	}

	logrus.WithFields(logrus.Fields{
		"modules":  len(modules),
		"outcome":  summary.Outcome,
		"total":    summary.Total,
		"executed": summary.Executed,
		"passed":   summary.Passed,
		"failed":   summary.Failed,
		"error":    summary.Error,
	}).Debug("built TRX document")
	return root, nil
}

// Generate builds and serializes the TRX document.
func Generate(modules []results.Module, opts Options) (string, error) {
	root, err := Build(modules, opts)
	if err != nil {
		return "", err
	}
	return root.Serialize()
}

func renderTestLists(parent *Element) {
	lists := parent.Ele("TestLists")
	lists.Ele("TestList").Att("name", "Results Not in a List").Att("id", TestListNotInListID)
	lists.Ele("TestList").Att("name", "All Loaded Results").Att("id", TestListAllLoadedResultsID)
}
