package ingestion

import "fmt"

// LoadError represents a failure to read or convert a CV file
type LoadError struct {
	Path    string
	Message string
	Cause   error
}

func (e *LoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("load error for %s: %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("load error for %s: %s", e.Path, e.Message)
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}
