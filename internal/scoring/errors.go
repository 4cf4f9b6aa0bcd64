package scoring

import "fmt"

// ScoringError reports a failure to score a single resume-job pair. One
// pair failing never aborts the other pairs in the same request.
type ScoringError struct {
	Message string
	Cause   error
}

func (e *ScoringError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("scoring error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("scoring error: %s", e.Message)
}

func (e *ScoringError) Unwrap() error {
	return e.Cause
}
