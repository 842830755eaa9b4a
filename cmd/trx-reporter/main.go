package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"trx-reporter/internal/config"
	"trx-reporter/internal/hooks"
	"trx-reporter/internal/parser"
	"trx-reporter/internal/reporter"
	"trx-reporter/internal/results"
	"trx-reporter/internal/trx"
	"trx-reporter/internal/vars"
)

func main() {
	args, err := config.Load()
	if err != nil {
		fail("config: %v", err)
	}

	var (
		input         = flag.String("input", strings.Join(args.Input, ","), "Comma-separated result dumps (YAML or JSON)")
		outFile       = flag.String("out", args.OutputFile, "Path to the resulting TRX file")
		defaultUser   = flag.String("default-user", args.DefaultUserName, "User name to report when it cannot be detected")
		summaryFile   = flag.String("summary", args.SummaryFile, "Optional path for a JSON run summary")
		attachModules = flag.Bool("attach-module-files", args.AttachModuleFiles, "Attach each case's module file as a result file")
		hookCmd       = flag.String("hook-cmd", args.HookCmd, "Command run for every case; prints {\"resultFiles\": [...]} as JSON")
		hookArgs      = flag.String("hook-args", strings.Join(args.HookArgs, ","), "Comma-separated arguments for --hook-cmd")
		hookEnv       = flag.String("hook-env", strings.Join(args.HookEnvFiles, ","), "Comma-separated YAML/JSON files of extra environment for --hook-cmd")
		hookTimeout   = flag.Int("hook-timeout-ms", args.HookTimeoutMs, "Timeout per hook invocation in milliseconds")
		incremental   = flag.Bool("incremental", false, "Rewrite the TRX file after each module, as a watching runner would")
		failOnFailure = flag.Bool("fail-on-failure", args.FailOnFailure, "Exit 1 when the run outcome is Failed")
		logLevel      = flag.String("log-level", args.Level, "Log level (debug, info, warn, error)")
	)
	flag.Parse()

	args.Input = splitCSV(*input)
	args.OutputFile = *outFile
	args.DefaultUserName = *defaultUser
	args.SummaryFile = *summaryFile
	args.AttachModuleFiles = *attachModules
	args.HookCmd = *hookCmd
	args.HookArgs = splitCSV(*hookArgs)
	args.HookEnvFiles = splitCSV(*hookEnv)
	args.HookTimeoutMs = *hookTimeout
	args.FailOnFailure = *failOnFailure
	args.Level = *logLevel

	if err := config.ConfigureLogging(args); err != nil {
		fail("%v", err)
	}
	if err := config.ValidateInputs(args); err != nil {
		fail("%v", err)
	}

	// Parse every dump, preserving module order across files
	p := parser.New()
	var modules []results.Module
	for _, path := range args.Input {
		ms, err := p.ParseFile(path)
		if err != nil {
			fail("%v", err)
		}
		modules = append(modules, results.Modules(ms...)...)
		logrus.WithField("File", path).Infof("Loaded %d modules", len(ms))
	}

	processors, err := postProcessors(args)
	if err != nil {
		fail("%v", err)
	}
	opts := reporter.Options{
		OutputFile: args.OutputFile,
		Options: trx.Options{
			DefaultUserName: args.DefaultUserName,
			PostProcessors:  processors,
		},
	}

	if *incremental {
		r := reporter.New(opts)
		for _, m := range modules {
			if err := r.OnModuleEnd(m); err != nil {
				fail("%v", err)
			}
		}
	} else if _, err := reporter.Processor(opts)(modules); err != nil {
		fail("%v", err)
	}

	summary := trx.Summarize(modules)
	if args.SummaryFile != "" {
		if err := reporter.WriteFile(args.SummaryFile, func(w io.Writer) error {
			return reporter.WriteSummaryJSON(w, summary)
		}); err != nil {
			fail("%v", err)
		}
	}

	logrus.WithFields(logrus.Fields{
		"Total":    summary.Total,
		"Executed": summary.Executed,
		"Passed":   summary.Passed,
		"Failed":   summary.Failed,
		"Error":    summary.Error,
	}).Infof("Run outcome: %s", summary.Outcome)

	if summary.Outcome == trx.OutcomeFailed {
		fmt.Println("FAIL")
		if args.FailOnFailure {
			os.Exit(1)
		}
		return
	}
	fmt.Println("PASS")
}

func postProcessors(args config.Args) ([]trx.PostProcessor, error) {
	var out []trx.PostProcessor
	if args.AttachModuleFiles {
		out = append(out, hooks.AttachModuleFile)
	}
	if args.HookCmd != "" {
		env, err := vars.LoadFiles(args.HookEnvFiles)
		if err != nil {
			return nil, fmt.Errorf("load hook env: %w", err)
		}
		out = append(out, &hooks.Process{
			Cmd:     args.HookCmd,
			Args:    args.HookArgs,
			Env:     env,
			Timeout: time.Duration(args.HookTimeoutMs) * time.Millisecond,
		})
	}
	return out, nil
}

// ---- helpers ----

func fail(format string, a ...any) {
	fmt.Fprintf(os.Stderr, "error: "+format+"\n", a...)
	os.Exit(2)
}

func splitCSV(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
