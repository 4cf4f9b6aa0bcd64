package refine

import "fmt"

// RefinementError reports a failure during a refinement iteration. Reaching
// the iteration bound is not an error; only a failed model call or an
// unusable response is.
type RefinementError struct {
	Message string
	Cause   error
}

func (e *RefinementError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("refinement error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("refinement error: %s", e.Message)
}

func (e *RefinementError) Unwrap() error {
	return e.Cause
}
