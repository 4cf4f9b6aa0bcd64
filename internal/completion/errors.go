package completion

import "fmt"

// CompletionError indicates the completion stage failed: either the model
// call itself failed, or it returned a structure that cannot be merged into
// the original record.
type CompletionError struct {
	Message string
	Cause   error
}

func (e *CompletionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("completion error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("completion error: %s", e.Message)
}

func (e *CompletionError) Unwrap() error {
	return e.Cause
}
