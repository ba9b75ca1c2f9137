package gap

import "fmt"

// InputError reports empty or blank resume/job text. It is the only error
// Resolve returns; AI failures degrade to deterministic fallbacks instead.
type InputError struct {
	Message string
}

func (e *InputError) Error() string {
	return fmt.Sprintf("input error: %s", e.Message)
}
