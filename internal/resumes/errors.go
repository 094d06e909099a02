package resumes

import "errors"

// ErrNotFound is returned when no resume matches the requested ID.
var ErrNotFound = errors.New("resume not found")

// ErrInvalidInput is returned for payloads that fail schema validation or
// are missing required fields.
var ErrInvalidInput = errors.New("invalid input")
