package validator

import "fmt"

// Recorder accumulates violation messages in insertion order. It does not
// deduplicate: a rule that fails twice is reported twice. A Recorder is
// scoped to a single validation pass and is not safe for concurrent use.
type Recorder struct {
	violations []string
}

// NewRecorder creates an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Record appends one violation message.
func (r *Recorder) Record(message string) {
	r.violations = append(r.violations, message)
}

// Recordf appends one violation message built from a format string.
func (r *Recorder) Recordf(format string, args ...any) {
	r.violations = append(r.violations, fmt.Sprintf(format, args...))
}

// Empty reports whether no violations have been recorded.
func (r *Recorder) Empty() bool {
	return len(r.violations) == 0
}

// Count returns the number of recorded violations.
func (r *Recorder) Count() int {
	return len(r.violations)
}

// Violations returns the recorded messages in insertion order and resets
// the Recorder for the next pass. The returned slice is owned by the
// caller.
func (r *Recorder) Violations() []string {
	out := r.violations
	r.violations = nil
	if out == nil {
		out = []string{}
	}
	return out
}
