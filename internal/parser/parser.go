package parser

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/hashicorp/go-multierror"
	"gopkg.in/yaml.v3"

	"trx-reporter/internal/results"
)

var ErrValidation = errors.New("validation error")

// Dump is the on-disk shape of a runner result tree. JSON is accepted as YAML.
type Dump struct {
	Modules []ModuleDoc `json:"modules" yaml:"modules"`
}

type ModuleDoc struct {
	ModuleID   string                   `json:"moduleId" yaml:"moduleId"`
	State      results.State            `json:"state" yaml:"state"`
	Diagnostic results.ModuleDiagnostic `json:"diagnostic" yaml:"diagnostic"`
	Errors     []results.Error          `json:"errors,omitempty" yaml:"errors,omitempty"`
	Tests      []CaseDoc                `json:"tests,omitempty" yaml:"tests,omitempty"`
	Suites     []SuiteDoc               `json:"suites,omitempty" yaml:"suites,omitempty"`
}

type SuiteDoc struct {
	Name     string          `json:"name" yaml:"name"`
	FullName string          `json:"fullName,omitempty" yaml:"fullName,omitempty"`
	Errors   []results.Error `json:"errors,omitempty" yaml:"errors,omitempty"`
	Tests    []CaseDoc       `json:"tests,omitempty" yaml:"tests,omitempty"`
	Suites   []SuiteDoc      `json:"suites,omitempty" yaml:"suites,omitempty"`
}

type CaseDoc struct {
	Name       string             `json:"name" yaml:"name"`
	FullName   string             `json:"fullName,omitempty" yaml:"fullName,omitempty"`
	Result     results.Result     `json:"result" yaml:"result"`
	Diagnostic results.Diagnostic `json:"diagnostic" yaml:"diagnostic"`
}

type Parser struct{}

func New() *Parser { return &Parser{} }

// ParseBytes decodes a YAML (or JSON) dump, validates it and builds the module tree.
func (p *Parser) ParseBytes(b []byte) ([]*results.TestModule, error) {
	var dump Dump

	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true) // fail on unknown fields

	if err := dec.Decode(&dump); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrValidation)
		}
		return nil, fmt.Errorf("decode: %w", err)
	}
	if err := validateDump(&dump); err != nil {
		return nil, err
	}
	return Build(dump), nil
}

// ParseFile reads and parses a dump from disk.
func (p *Parser) ParseFile(path string) ([]*results.TestModule, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	modules, err := p.ParseBytes(data)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return modules, nil
}

// Build turns a decoded dump into the module tree. Missing full names are
// derived from the suite ancestry.
func Build(dump Dump) []*results.TestModule {
	out := make([]*results.TestModule, 0, len(dump.Modules))
	for _, md := range dump.Modules {
		m := results.NewModule(md.ModuleID, md.State, md.Diagnostic, md.Errors...)
		for _, cd := range md.Tests {
			m.AddTest(cd.Name, cd.FullName, cd.Result, cd.Diagnostic)
		}
		for _, sd := range md.Suites {
			addSuite(m.AddSuite(sd.Name, sd.FullName, sd.Errors...), sd)
		}
		out = append(out, m)
	}
	return out
}

func addSuite(s *results.TestSuite, sd SuiteDoc) {
	for _, cd := range sd.Tests {
		s.AddTest(cd.Name, cd.FullName, cd.Result, cd.Diagnostic)
	}
	for _, child := range sd.Suites {
		addSuite(s.AddSuite(child.Name, child.FullName, child.Errors...), child)
	}
}

// --- validation helpers ---

func validateDump(d *Dump) error {
	var result *multierror.Error
	for i := range d.Modules {
		result = multierror.Append(result, validateModule(&d.Modules[i], i)...)
	}
	if err := result.ErrorOrNil(); err != nil {
		return fmt.Errorf("%w: %w", ErrValidation, err)
	}
	return nil
}

func validateModule(m *ModuleDoc, idx int) []error {
	var errs []error
	path := fmt.Sprintf("modules[%d]", idx)
	if m.ModuleID == "" {
		errs = append(errs, fmt.Errorf("%s.moduleId must not be empty", path))
	}
	if m.Diagnostic.Duration < 0 {
		errs = append(errs, fmt.Errorf("%s.diagnostic.duration must not be negative", path))
	}
	for j := range m.Tests {
		errs = append(errs, validateCase(&m.Tests[j], fmt.Sprintf("%s.tests[%d]", path, j))...)
	}
	for j := range m.Suites {
		errs = append(errs, validateSuite(&m.Suites[j], fmt.Sprintf("%s.suites[%d]", path, j))...)
	}
	return errs
}

func validateSuite(s *SuiteDoc, path string) []error {
	var errs []error
	if s.Name == "" && s.FullName == "" {
		errs = append(errs, fmt.Errorf("%s.name must not be empty", path))
	}
	for j := range s.Tests {
		errs = append(errs, validateCase(&s.Tests[j], fmt.Sprintf("%s.tests[%d]", path, j))...)
	}
	for j := range s.Suites {
		errs = append(errs, validateSuite(&s.Suites[j], fmt.Sprintf("%s.suites[%d]", path, j))...)
	}
	return errs
}

func validateCase(c *CaseDoc, path string) []error {
	var errs []error
	if c.Name == "" && c.FullName == "" {
		errs = append(errs, fmt.Errorf("%s.name must not be empty", path))
	}
	if c.Diagnostic.Duration < 0 {
		errs = append(errs, fmt.Errorf("%s.diagnostic.duration must not be negative", path))
	}
	return errs
}
