package resumes

import "time"

// Record is one stored resume: an opaque ID plus the flat attribute bag the
// builder exchanges wholesale. Attributes holds every document field except
// the identity, which lives on the record itself and never changes after
// creation.
type Record struct {
	ID         string
	UserEmail  string
	Title      string
	Attributes map[string]any
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
