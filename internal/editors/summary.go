package editors

import (
	"context"
	"strings"

	"resume-builder/internal/assist"
	"resume-builder/internal/resume"
)

// SummaryEditor edits the free-text summary. Unlike the save-gated list
// sections, this editor mirrors every edit into the store immediately.
type SummaryEditor struct {
	store *resume.Store
	gw    Gateway
	ai    assist.Client

	draft string
	state state
}

// NewSummaryEditor returns the editor for the summary section.
func NewSummaryEditor(store *resume.Store, gw Gateway, ai assist.Client) *SummaryEditor {
	return &SummaryEditor{store: store, gw: gw, ai: ai}
}

// Load seeds the draft from the store's current document.
func (e *SummaryEditor) Load() {
	if doc, ok := e.store.Get(); ok {
		e.draft = doc.Summary
	}
}

// Draft returns the current draft text.
func (e *SummaryEditor) Draft() string {
	return e.draft
}

// Edit updates the draft and propagates it to the store so the live
// preview tracks each keystroke.
func (e *SummaryEditor) Edit(text string) {
	e.draft = text
	e.store.Apply(func(d *resume.Document) {
		d.Summary = text
	})
}

// InFlight reports whether a save or generate call is currently running.
func (e *SummaryEditor) InFlight() bool {
	return e.state.InFlight()
}

// Save persists the summary scoped to the loaded document.
func (e *SummaryEditor) Save(ctx context.Context) error {
	if !e.state.begin() {
		return ErrSaveInFlight
	}
	defer e.state.end()

	doc, ok := e.store.Get()
	if !ok || doc.ID == "" {
		return ErrNoDocument
	}
	if strings.TrimSpace(e.draft) == "" {
		return &ValidationError{Field: "summary", Reason: "is required"}
	}

	summary := e.draft
	if err := e.gw.Update(ctx, doc.ID, map[string]any{resume.SectionSummary: summary}); err != nil {
		return err
	}
	e.store.Apply(func(d *resume.Document) {
		d.Summary = summary
	})
	return nil
}

// Suggest asks the assist gateway for leveled summary suggestions based on
// the document's job title. The user picks one via Edit; nothing is saved
// automatically.
func (e *SummaryEditor) Suggest(ctx context.Context) ([]assist.SummarySuggestion, error) {
	doc, _ := e.store.Get()
	raw, err := e.ai.SendPrompt(ctx, assist.SummaryPrompt(doc.JobTitle))
	if err != nil {
		return nil, err
	}
	return assist.ParseSummarySuggestions(raw)
}
