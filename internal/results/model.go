package results

// Result states reported by the runner.
const (
	StatePassed  State = "passed"
	StateFailed  State = "failed"
	StatePending State = "pending"
	StateSkipped State = "skipped"
)

type State string

// Error is a failure message attached to a case, a suite or a module.
type Error struct {
	Message string `json:"message" yaml:"message"`
	Stack   string `json:"stack,omitempty" yaml:"stack,omitempty"`
}

type Location struct {
	Line   int `json:"line" yaml:"line"`
	Column int `json:"column" yaml:"column"`
}

type Result struct {
	State    State     `json:"state" yaml:"state"`
	Errors   []Error   `json:"errors,omitempty" yaml:"errors,omitempty"`
	Location *Location `json:"location,omitempty" yaml:"location,omitempty"`
}

// Diagnostic carries timing in milliseconds. StartTime is epoch milliseconds, 0 when unknown.
type Diagnostic struct {
	StartTime float64 `json:"startTime,omitempty" yaml:"startTime,omitempty"`
	Duration  float64 `json:"duration" yaml:"duration"`
}

type ModuleDiagnostic struct {
	Duration float64 `json:"duration" yaml:"duration"`
}

// Module is one test file as seen by the runner.
type Module interface {
	ModuleID() string
	State() State
	Diagnostic() ModuleDiagnostic
	// Errors are failures not attached to any case.
	Errors() []Error
	// Tests returns the module's direct cases only.
	Tests() []Case
	// AllTests returns every case in the module, nested ones included.
	AllTests() []Case
	// AllSuites returns every suite in the module in depth-first order.
	AllSuites() []Suite
}

// Suite is a named group of cases, e.g. a describe block.
type Suite interface {
	Name() string
	FullName() string
	Module() Module
	Errors() []Error
	// Tests returns the suite's direct cases only.
	Tests() []Case
}

// Case is a single test.
type Case interface {
	Name() string
	FullName() string
	Module() Module
	Result() Result
	Diagnostic() Diagnostic
}
