package hawkes

import "fmt"

// InvalidInputError reports a precondition violation detected while
// validating inputs, before any computation begins. Field names the offending
// input so callers can diagnose the violation.
type InvalidInputError struct {
	Field  string
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid input %s: %s", e.Field, e.Reason)
}

// DomainError reports a non-positive instantaneous intensity encountered
// during likelihood evaluation. The logarithm is undefined there; it is
// surfaced as a typed failure rather than coerced to -Inf so callers can
// tell a degenerate model apart from a programming error.
type DomainError struct {
	Index  int     // index of the event in the realization
	Mark   int     // process whose intensity was evaluated
	Lambda float64 // the offending intensity value
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("non-positive intensity %g for process %d at event %d", e.Lambda, e.Mark, e.Index)
}

// ResourceExhaustedError reports a branching simulation that hit a
// configured generation or event cap before dying out. Under supercritical
// parameters the cluster process has no almost-sure termination guarantee;
// the caps bound the run instead.
type ResourceExhaustedError struct {
	Generations int    // generations produced when the cap tripped
	Events      int    // events accumulated when the cap tripped
	Limit       string // which cap tripped: "generations" or "events"
}

func (e *ResourceExhaustedError) Error() string {
	return fmt.Sprintf("simulation exceeded %s limit after %d generations and %d events",
		e.Limit, e.Generations, e.Events)
}
