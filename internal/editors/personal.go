package editors

import (
	"context"
	"strings"

	"resume-builder/internal/resume"
)

// PersonalDetails is the identity block draft edited by the personal
// details form.
type PersonalDetails struct {
	FirstName string
	LastName  string
	JobTitle  string
	Address   string
	Phone     string
	Email     string
	GitHub    string
	LinkedIn  string
}

// PersonalEditor edits the document's identity block. Unlike the list
// sections there is no entry floor; the draft is a flat set of fields
// persisted together.
type PersonalEditor struct {
	store *resume.Store
	gw    Gateway

	draft PersonalDetails
	state state
}

// NewPersonalEditor returns the editor for the personal details section.
func NewPersonalEditor(store *resume.Store, gw Gateway) *PersonalEditor {
	return &PersonalEditor{store: store, gw: gw}
}

// Load seeds the draft from the store's current document.
func (e *PersonalEditor) Load() {
	doc, ok := e.store.Get()
	if !ok {
		e.draft = PersonalDetails{}
		return
	}
	e.draft = PersonalDetails{
		FirstName: doc.FirstName,
		LastName:  doc.LastName,
		JobTitle:  doc.JobTitle,
		Address:   doc.Address,
		Phone:     doc.Phone,
		Email:     doc.Email,
		GitHub:    doc.GitHub,
		LinkedIn:  doc.LinkedIn,
	}
}

// Draft returns the current draft.
func (e *PersonalEditor) Draft() PersonalDetails {
	return e.draft
}

// Edit replaces the draft. Local only; the store is untouched until Save.
func (e *PersonalEditor) Edit(details PersonalDetails) {
	e.draft = details
}

// InFlight reports whether a save is currently running.
func (e *PersonalEditor) InFlight() bool {
	return e.state.InFlight()
}

// Save validates the draft, persists the identity fields, and merges them
// into the store on success.
func (e *PersonalEditor) Save(ctx context.Context) error {
	if !e.state.begin() {
		return ErrSaveInFlight
	}
	defer e.state.end()

	doc, ok := e.store.Get()
	if !ok || doc.ID == "" {
		return ErrNoDocument
	}
	if strings.TrimSpace(e.draft.FirstName) == "" {
		return &ValidationError{Field: "firstName", Reason: "is required"}
	}
	if strings.TrimSpace(e.draft.LastName) == "" {
		return &ValidationError{Field: "lastName", Reason: "is required"}
	}

	draft := e.draft
	patch := map[string]any{
		"firstName": draft.FirstName,
		"lastName":  draft.LastName,
		"jobTitle":  draft.JobTitle,
		"address":   draft.Address,
		"phone":     draft.Phone,
		"email":     draft.Email,
		"github":    draft.GitHub,
		"linkedin":  draft.LinkedIn,
	}
	if err := e.gw.Update(ctx, doc.ID, patch); err != nil {
		return err
	}

	e.store.Apply(func(d *resume.Document) {
		d.FirstName = draft.FirstName
		d.LastName = draft.LastName
		d.JobTitle = draft.JobTitle
		d.Address = draft.Address
		d.Phone = draft.Phone
		d.Email = draft.Email
		d.GitHub = draft.GitHub
		d.LinkedIn = draft.LinkedIn
	})
	return nil
}
