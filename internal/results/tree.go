package results

// FullNameSeparator joins ancestry names into a full name.
const FullNameSeparator = " > "

// TestModule is the in-memory Module implementation.
type TestModule struct {
	id         string
	state      State
	diagnostic ModuleDiagnostic
	errors     []Error
	tests      []*TestCase
	suites     []*TestSuite
}

func NewModule(id string, state State, diag ModuleDiagnostic, errs ...Error) *TestModule {
	return &TestModule{id: id, state: state, diagnostic: diag, errors: errs}
}

func (m *TestModule) ModuleID() string             { return m.id }
func (m *TestModule) State() State                 { return m.state }
func (m *TestModule) Diagnostic() ModuleDiagnostic { return m.diagnostic }
func (m *TestModule) Errors() []Error              { return m.errors }

// AddTest appends a direct case to the module. An empty fullName defaults to name.
func (m *TestModule) AddTest(name, fullName string, res Result, diag Diagnostic) *TestCase {
	if fullName == "" {
		fullName = name
	}
	tc := &TestCase{name: name, fullName: fullName, module: m, result: res, diagnostic: diag}
	m.tests = append(m.tests, tc)
	return tc
}

// AddSuite appends a top-level suite. An empty fullName defaults to name.
func (m *TestModule) AddSuite(name, fullName string, errs ...Error) *TestSuite {
	if fullName == "" {
		fullName = name
	}
	s := &TestSuite{name: name, fullName: fullName, module: m, errors: errs}
	m.suites = append(m.suites, s)
	return s
}

func (m *TestModule) Tests() []Case {
	return casesOf(m.tests)
}

func (m *TestModule) AllTests() []Case {
	out := casesOf(m.tests)
	for _, s := range m.AllSuites() {
		out = append(out, s.Tests()...)
	}
	return out
}

func (m *TestModule) AllSuites() []Suite {
	var out []Suite
	var walk func(ss []*TestSuite)
	walk = func(ss []*TestSuite) {
		for _, s := range ss {
			out = append(out, s)
			walk(s.suites)
		}
	}
	walk(m.suites)
	return out
}

// TestSuite is the in-memory Suite implementation.
type TestSuite struct {
	name     string
	fullName string
	module   *TestModule
	errors   []Error
	tests    []*TestCase
	suites   []*TestSuite
}

func (s *TestSuite) Name() string     { return s.name }
func (s *TestSuite) FullName() string { return s.fullName }
func (s *TestSuite) Module() Module   { return s.module }
func (s *TestSuite) Errors() []Error  { return s.errors }
func (s *TestSuite) Tests() []Case    { return casesOf(s.tests) }

// AddTest appends a direct case. An empty fullName is derived from the suite's full name.
func (s *TestSuite) AddTest(name, fullName string, res Result, diag Diagnostic) *TestCase {
	if fullName == "" {
		fullName = s.fullName + FullNameSeparator + name
	}
	tc := &TestCase{name: name, fullName: fullName, module: s.module, result: res, diagnostic: diag}
	s.tests = append(s.tests, tc)
	return tc
}

// AddSuite appends a nested suite. An empty fullName is derived from the parent's full name.
func (s *TestSuite) AddSuite(name, fullName string, errs ...Error) *TestSuite {
	if fullName == "" {
		fullName = s.fullName + FullNameSeparator + name
	}
	child := &TestSuite{name: name, fullName: fullName, module: s.module, errors: errs}
	s.suites = append(s.suites, child)
	return child
}

// TestCase is the in-memory Case implementation.
type TestCase struct {
	name       string
	fullName   string
	module     *TestModule
	result     Result
	diagnostic Diagnostic
}

func (c *TestCase) Name() string           { return c.name }
func (c *TestCase) FullName() string       { return c.fullName }
func (c *TestCase) Module() Module         { return c.module }
func (c *TestCase) Result() Result         { return c.result }
func (c *TestCase) Diagnostic() Diagnostic { return c.diagnostic }

// Modules widens a slice of concrete modules to the Module interface.
func Modules(ms ...*TestModule) []Module {
	out := make([]Module, 0, len(ms))
	for _, m := range ms {
		out = append(out, m)
	}
	return out
}

func casesOf(tcs []*TestCase) []Case {
	out := make([]Case, 0, len(tcs))
	for _, tc := range tcs {
		out = append(out, tc)
	}
	return out
}
