package llm

import "fmt"

// UpstreamError indicates the remote completion call could not be completed
// (network failure, auth failure, quota). It is never retried internally.
type UpstreamError struct {
	Message string
	Cause   error
}

func (e *UpstreamError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("upstream model error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("upstream model error: %s", e.Message)
}

func (e *UpstreamError) Unwrap() error {
	return e.Cause
}
