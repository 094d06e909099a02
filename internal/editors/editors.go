// Package editors implements the per-section form controllers that sit
// between user input and the shared document store. Each editor owns a local
// draft of one section; only a successful save writes the draft through the
// persistence gateway and merges it into the store. The preview re-renders
// from the store, so unsaved drafts never leak into it. The one exception
// is the summary editor, which mirrors every keystroke.
package editors

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

// Gateway is the slice of the persistence gateway editors use: a partial,
// section-scoped update to an existing document. Single attempt, no retry.
type Gateway interface {
	Update(ctx context.Context, id string, sections map[string]any) error
}

// ErrNoDocument is returned by Save when the store holds no persisted
// document to scope the update to.
var ErrNoDocument = errors.New("editors: no document loaded")

// ErrMinimumEntries is returned when removal would drop a list section
// below one entry.
var ErrMinimumEntries = errors.New("editors: section must keep at least one entry")

// ErrSaveInFlight is returned when a save or generate call is already
// running for this editor. Other editors remain unaffected.
var ErrSaveInFlight = errors.New("editors: operation already in flight")

// ValidationError blocks a save locally; nothing is sent to the gateway.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("editors: %s %s", e.Field, e.Reason)
}

// state tracks the editor-local in-flight flag. Each editor disables only
// its own save/generate control; there is no global lock.
type state struct {
	mu       sync.Mutex
	inFlight bool
}

func (s *state) begin() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.inFlight {
		return false
	}
	s.inFlight = true
	return true
}

func (s *state) end() {
	s.mu.Lock()
	s.inFlight = false
	s.mu.Unlock()
}

// InFlight reports whether a gateway call is currently running.
func (s *state) InFlight() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inFlight
}
