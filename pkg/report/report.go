// Package report owns the manual health-report state machine:
// idle → loading → success | error. Only the report view drives it; no other
// component mutates report state.
package report

import "gitlab.com/tinyland/lab/vital-pulse/pkg/api"

// Phase is the report machine's current state.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseLoading
	PhaseSuccess
	PhaseError
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseLoading:
		return "loading"
	case PhaseSuccess:
		return "success"
	case PhaseError:
		return "error"
	}
	return "unknown"
}

// Machine tracks one report generation lifecycle. Not safe for concurrent
// use: it is driven entirely from the serialized UI update loop.
type Machine struct {
	phase       Phase
	parsed      *api.ParsedReport
	historySize int
	errMsg      string
}

// New returns a machine in the idle phase.
func New() *Machine {
	return &Machine{}
}

// Phase returns the current phase.
func (m *Machine) Phase() Phase {
	return m.phase
}

// Begin moves idle, success, or error to loading and reports whether the
// transition happened. A generation already in flight refuses a second one.
func (m *Machine) Begin() bool {
	if m.phase == PhaseLoading {
		return false
	}
	m.phase = PhaseLoading
	return true
}

// Succeed records a completed backend report. A report whose llm_parsed
// block is missing is a parse failure even though the request succeeded:
// the machine rolls to error and any previously shown report is discarded,
// so stale content cannot be mistaken for current.
func (m *Machine) Succeed(rep *api.Report, parseFailedMsg string) {
	if rep == nil || rep.LLMParsed == nil {
		m.Fail(parseFailedMsg)
		return
	}
	m.phase = PhaseSuccess
	m.parsed = rep.LLMParsed
	m.historySize = rep.HistorySize
	m.errMsg = ""
}

// Fail rolls the machine to error and hides any previous report.
func (m *Machine) Fail(msg string) {
	m.phase = PhaseError
	m.parsed = nil
	m.historySize = 0
	m.errMsg = msg
}

// Report returns the parsed report shown in the success phase, or nil.
func (m *Machine) Report() *api.ParsedReport {
	if m.phase != PhaseSuccess {
		return nil
	}
	return m.parsed
}

// HistorySize returns the number of analysis windows behind the current
// report. Zero outside the success phase.
func (m *Machine) HistorySize() int {
	if m.phase != PhaseSuccess {
		return 0
	}
	return m.historySize
}

// ErrMessage returns the message shown in the error phase, or "".
func (m *Machine) ErrMessage() string {
	if m.phase != PhaseError {
		return ""
	}
	return m.errMsg
}
