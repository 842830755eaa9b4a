package reporter

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/sirupsen/logrus"

	"trx-reporter/internal/envinfo"
	"trx-reporter/internal/results"
	"trx-reporter/internal/trx"
)

const DefaultOutputFile = "test-results.trx"

// Options configure where and how the TRX file is written.
type Options struct {
	OutputFile string
	trx.Options
}

func (o Options) withDefaults() Options {
	if o.OutputFile == "" {
		o.OutputFile = DefaultOutputFile
	}
	if o.DefaultUserName == "" {
		o.DefaultUserName = envinfo.DefaultUserName
	}
	return o
}

// -------- TRX --------

func WriteTRX(w io.Writer, modules []results.Module, opts trx.Options) error {
	doc, err := trx.Generate(modules, opts)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, doc)
	return err
}

// -------- JSON summary --------

func WriteSummaryJSON(w io.Writer, s trx.RunSummary) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(s)
}

// WriteFile creates the parent directory and writes the file through fn.
func WriteFile(path string, fn func(io.Writer) error) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir %s: %w", filepath.Dir(path), err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := fn(f); err != nil {
		_ = f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}

// writeTRXFile generates the document first so a failing hook leaves any
// previous file untouched.
func writeTRXFile(modules []results.Module, opts Options) error {
	doc, err := trx.Generate(modules, opts.Options)
	if err != nil {
		return fmt.Errorf("generate trx: %w", err)
	}
	if err := WriteFile(opts.OutputFile, func(w io.Writer) error {
		_, err := io.WriteString(w, doc)
		return err
	}); err != nil {
		return err
	}
	logrus.Infof("TRX file output to '%s'", opts.OutputFile)
	return nil
}

// -------- Host integration --------

// Reporter rewrites the whole TRX file each time a module finishes, covering
// every module seen so far.
type Reporter struct {
	opts Options

	mu      sync.Mutex
	modules []results.Module
}

func New(opts Options) *Reporter {
	return &Reporter{opts: opts.withDefaults()}
}

func (r *Reporter) OnModuleEnd(m results.Module) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.modules = append(r.modules, m)
	logrus.WithField("Module", m.ModuleID()).Debug("Module finished")
	return writeTRXFile(r.modules, r.opts)
}

// Modules returns the modules reported so far.
func (r *Reporter) Modules() []results.Module {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]results.Module(nil), r.modules...)
}

// Processor writes the TRX file for a finished run and hands the modules back
// unchanged so processors can be chained.
func Processor(opts Options) func([]results.Module) ([]results.Module, error) {
	opts = opts.withDefaults()
	return func(modules []results.Module) ([]results.Module, error) {
		logrus.Info("Generating TRX file...")
		if err := writeTRXFile(modules, opts); err != nil {
			return modules, err
		}
		return modules, nil
	}
}
