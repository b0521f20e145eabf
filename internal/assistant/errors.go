package assistant

import "fmt"

// UnavailableMessage is the fixed user-facing message for transport failures.
// Internal transport details are logged, never shown to the end user.
const UnavailableMessage = "AI service is currently unavailable"

// ServiceUnavailableError indicates the LLM call could not complete (network,
// auth, quota). The orchestrator never retries; any retry policy belongs to
// the caller.
type ServiceUnavailableError struct {
	Cause error
}

func (e *ServiceUnavailableError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", UnavailableMessage, e.Cause)
	}
	return UnavailableMessage
}

func (e *ServiceUnavailableError) Unwrap() error {
	return e.Cause
}
