package editors

import (
	"context"

	"resume-builder/internal/resume"
)

// ListEditor is the generalized draft contract shared by every list-shaped
// section. Edits stay local until Save succeeds; the list never shrinks
// below one entry so the form always has a row to display.
type ListEditor[T any] struct {
	store *resume.Store
	gw    Gateway

	key       string
	empty     func() T
	seed      func(resume.Document) []T
	validate  func([]T) error
	normalize func([]T) []T
	merge     func(*resume.Document, []T)

	draft []T
	state state
}

// Load seeds the draft from the store if it already holds entries for this
// section, otherwise from the section's empty-shaped default.
func (e *ListEditor[T]) Load() {
	if doc, ok := e.store.Get(); ok {
		if entries := e.seed(doc); len(entries) > 0 {
			e.draft = append([]T(nil), entries...)
			return
		}
	}
	e.draft = []T{e.empty()}
}

// Entries returns a copy of the current draft.
func (e *ListEditor[T]) Entries() []T {
	return append([]T(nil), e.draft...)
}

// Edit mutates the draft entry at index. List-based sections never touch
// the store here.
func (e *ListEditor[T]) Edit(index int, mutate func(*T)) bool {
	if index < 0 || index >= len(e.draft) {
		return false
	}
	mutate(&e.draft[index])
	return true
}

// Add appends an empty-shaped entry to the draft.
func (e *ListEditor[T]) Add() {
	e.draft = append(e.draft, e.empty())
}

// Remove drops the last entry. It is rejected when exactly one entry
// remains.
func (e *ListEditor[T]) Remove() error {
	return e.RemoveAt(len(e.draft) - 1)
}

// RemoveAt drops the entry at index, subject to the one-entry floor.
func (e *ListEditor[T]) RemoveAt(index int) error {
	if index < 0 || index >= len(e.draft) {
		return &ValidationError{Field: "index", Reason: "is out of range"}
	}
	if len(e.draft) <= 1 {
		return ErrMinimumEntries
	}
	e.draft = append(e.draft[:index], e.draft[index+1:]...)
	return nil
}

// InFlight reports whether a save is currently running.
func (e *ListEditor[T]) InFlight() bool {
	return e.state.InFlight()
}

// Save validates and normalizes the draft, writes it through the gateway
// scoped to the loaded document, and merges it into the store only on
// success. On failure the store and the draft are left untouched so the
// user can retry.
func (e *ListEditor[T]) Save(ctx context.Context) error {
	if !e.state.begin() {
		return ErrSaveInFlight
	}
	defer e.state.end()

	doc, ok := e.store.Get()
	if !ok || doc.ID == "" {
		return ErrNoDocument
	}
	if e.validate != nil {
		if err := e.validate(e.draft); err != nil {
			return err
		}
	}

	normalized := e.normalize(e.draft)
	if err := e.gw.Update(ctx, doc.ID, map[string]any{e.key: normalized}); err != nil {
		return err
	}

	e.store.Apply(func(d *resume.Document) {
		e.merge(d, normalized)
	})
	return nil
}
