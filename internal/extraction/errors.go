package extraction

import "fmt"

// InputError reports empty or blank input text. It is the only error that
// crosses the component boundary; AI failures are absorbed by the fallback.
type InputError struct {
	Message string
}

func (e *InputError) Error() string {
	return fmt.Sprintf("input error: %s", e.Message)
}

// ExtractionError represents an AI extraction failure. It never escapes
// Extract; it is logged and converted into a heuristic-strategy run.
type ExtractionError struct {
	Message string
	Cause   error
}

func (e *ExtractionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("extraction failed: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("extraction failed: %s", e.Message)
}

func (e *ExtractionError) Unwrap() error {
	return e.Cause
}
