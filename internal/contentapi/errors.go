package contentapi

import "fmt"

// APIError is an application-level failure: the content API was reachable
// but returned an error payload. Transport failures are returned as plain
// wrapped errors so callers can tell the two apart with errors.As.
type APIError struct {
	Status  int
	Code    string
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("content api: %s (status %d)", e.Message, e.Status)
	}
	return fmt.Sprintf("content api: status %d", e.Status)
}
