package editors

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"

	"resume-builder/internal/resume"
)

type fakeGateway struct {
	updates []map[string]any
	err     error
}

func (f *fakeGateway) Update(ctx context.Context, id string, sections map[string]any) error {
	if f.err != nil {
		return f.err
	}
	f.updates = append(f.updates, sections)
	return nil
}

type fakeAssist struct {
	response string
	err      error
	prompts  []string
}

func (f *fakeAssist) SendPrompt(ctx context.Context, prompt string) (string, error) {
	f.prompts = append(f.prompts, prompt)
	if f.err != nil {
		return "", f.err
	}
	return f.response, nil
}

func loadedStore(doc resume.Document) *resume.Store {
	s := resume.NewStore()
	if doc.ID == "" {
		doc.ID = "doc-1"
	}
	s.Set(doc)
	return s
}

func TestRemoveFloorHoldsAtOneEntry(t *testing.T) {
	ed := NewSkillsEditor(loadedStore(resume.Document{}), &fakeGateway{})
	ed.Load()

	if err := ed.Remove(); !errors.Is(err, ErrMinimumEntries) {
		t.Fatalf("expected ErrMinimumEntries, got %v", err)
	}
	if len(ed.Entries()) != 1 {
		t.Fatalf("list shrank below one entry: %d", len(ed.Entries()))
	}

	ed.Add()
	if err := ed.Remove(); err != nil {
		t.Fatalf("remove with two entries: %v", err)
	}
	if len(ed.Entries()) != 1 {
		t.Fatalf("expected one entry after removal, got %d", len(ed.Entries()))
	}
}

func TestRemoveAtRejectsOutOfRangeIndex(t *testing.T) {
	ed := NewSkillsEditor(loadedStore(resume.Document{}), &fakeGateway{})
	ed.Load()
	ed.Add()
	ed.Add()

	var vErr *ValidationError
	if err := ed.RemoveAt(7); !errors.As(err, &vErr) || vErr.Field != "index" {
		t.Fatalf("expected index validation error, got %v", err)
	}
	if err := ed.RemoveAt(-1); !errors.As(err, &vErr) {
		t.Fatalf("expected index validation error for negative index, got %v", err)
	}
	if errors.Is(ed.RemoveAt(7), ErrMinimumEntries) {
		t.Fatal("out-of-range index reported as a floor violation")
	}
	if len(ed.Entries()) != 3 {
		t.Fatalf("failed removals changed the draft: %d entries", len(ed.Entries()))
	}
}

func TestListEditDoesNotTouchStore(t *testing.T) {
	store := loadedStore(resume.Document{})
	ed := NewSkillsEditor(store, &fakeGateway{})
	ed.Load()

	ed.Edit(0, func(s *resume.Skill) {
		s.Name = "React"
		s.Rating = 4
	})

	doc, _ := store.Get()
	if len(doc.Skills) != 0 {
		t.Fatalf("unsaved edit leaked into store: %+v", doc.Skills)
	}
}

func TestSaveMergesNormalizedDraft(t *testing.T) {
	store := loadedStore(resume.Document{})
	gw := &fakeGateway{}
	ed := NewCertificationsEditor(store, gw)
	ed.Load()
	ed.Edit(0, func(c *resume.Certification) {
		c.ID = 12 // transient backend id picked up from a reload
		c.Title = "CKA"
		c.Issuer = "CNCF"
		c.Year = "2024"
	})

	if err := ed.Save(context.Background()); err != nil {
		t.Fatalf("save: %v", err)
	}

	doc, _ := store.Get()
	want := []resume.Certification{{Title: "CKA", Issuer: "CNCF", Year: "2024"}}
	if !reflect.DeepEqual(doc.Certifications, want) {
		t.Fatalf("stored section kept transient fields: %+v", doc.Certifications)
	}
	sent, ok := gw.updates[0][resume.SectionCertifications].([]resume.Certification)
	if !ok || !reflect.DeepEqual(sent, want) {
		t.Fatalf("gateway received unnormalized draft: %+v", gw.updates[0])
	}
}

func TestSaveIdempotentForUnchangedDraft(t *testing.T) {
	store := loadedStore(resume.Document{})
	gw := &fakeGateway{}
	ed := NewSkillsEditor(store, gw)
	ed.Load()
	ed.Edit(0, func(s *resume.Skill) { s.Name = "Go"; s.Rating = 5 })

	if err := ed.Save(context.Background()); err != nil {
		t.Fatalf("first save: %v", err)
	}
	if err := ed.Save(context.Background()); err != nil {
		t.Fatalf("second save: %v", err)
	}
	if len(gw.updates) != 2 || !reflect.DeepEqual(gw.updates[0], gw.updates[1]) {
		t.Fatalf("saves not idempotent: %+v", gw.updates)
	}
}

func TestFailedSaveLeavesStoreAndDraftIntact(t *testing.T) {
	before := []resume.Certification{{Title: "Old Cert", Issuer: "Org", Year: "2020"}}
	store := loadedStore(resume.Document{Certifications: before})
	gw := &fakeGateway{err: errors.New("network down")}
	ed := NewCertificationsEditor(store, gw)
	ed.Load()
	ed.Edit(0, func(c *resume.Certification) { c.Title = "New Cert" })

	if err := ed.Save(context.Background()); err == nil {
		t.Fatalf("expected save failure")
	}

	doc, _ := store.Get()
	if !reflect.DeepEqual(doc.Certifications, before) {
		t.Fatalf("failed save mutated store: %+v", doc.Certifications)
	}
	if ed.Entries()[0].Title != "New Cert" {
		t.Fatalf("failed save lost the draft: %+v", ed.Entries())
	}
}

func TestInterestsSaveDropsBlanks(t *testing.T) {
	store := loadedStore(resume.Document{})
	gw := &fakeGateway{}
	ed := NewInterestsEditor(store, gw)
	ed.Load()
	ed.Edit(0, func(s *string) { *s = "Photography" })
	ed.Add()
	ed.Add()
	ed.Edit(2, func(s *string) { *s = "Chess" })

	if err := ed.Save(context.Background()); err != nil {
		t.Fatalf("save: %v", err)
	}

	doc, _ := store.Get()
	if !reflect.DeepEqual(doc.Interests, []string{"Photography", "Chess"}) {
		t.Fatalf("blank interests persisted: %v", doc.Interests)
	}
	if len(ed.Entries()) != 3 {
		t.Fatalf("draft was normalized in place: %v", ed.Entries())
	}
}

func TestSaveRequiresTitleOnNonEmptyEntries(t *testing.T) {
	store := loadedStore(resume.Document{})
	gw := &fakeGateway{}
	ed := NewExperienceEditor(store, gw, nil)
	ed.Load()
	ed.Edit(0, func(e *resume.Experience) { e.CompanyName = "Acme" })

	err := ed.Save(context.Background())
	var vErr *ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if len(gw.updates) != 0 {
		t.Fatalf("validation failure still hit the gateway")
	}
}

func TestSaveWithoutDocumentRejected(t *testing.T) {
	ed := NewSkillsEditor(resume.NewStore(), &fakeGateway{})
	ed.Load()
	if err := ed.Save(context.Background()); !errors.Is(err, ErrNoDocument) {
		t.Fatalf("expected ErrNoDocument, got %v", err)
	}
}

func TestSummaryEditPropagatesImmediately(t *testing.T) {
	store := loadedStore(resume.Document{})
	ed := NewSummaryEditor(store, &fakeGateway{}, nil)
	ed.Load()

	ed.Edit("Hands-on engineer")

	doc, _ := store.Get()
	if doc.Summary != "Hands-on engineer" {
		t.Fatalf("summary edit did not propagate: %q", doc.Summary)
	}
}

func TestSummaryEditBeforeLoadKeepsStoreEmpty(t *testing.T) {
	store := resume.NewStore()
	ed := NewSummaryEditor(store, &fakeGateway{}, nil)

	ed.Edit("typed before anything loaded")

	if ed.Draft() != "typed before anything loaded" {
		t.Fatalf("draft lost the edit: %q", ed.Draft())
	}
	if _, loaded := store.Get(); loaded {
		t.Fatal("editing before load conjured a document in the store")
	}
}

func TestSummarySuggestUsesJobTitle(t *testing.T) {
	store := loadedStore(resume.Document{JobTitle: "Backend Engineer"})
	ai := &fakeAssist{response: `[{"summary":"Ships reliable services.","experience_level":"Senior"}]`}
	ed := NewSummaryEditor(store, &fakeGateway{}, ai)
	ed.Load()

	list, err := ed.Suggest(context.Background())
	if err != nil {
		t.Fatalf("suggest: %v", err)
	}
	if len(list) != 1 || list[0].ExperienceLevel != "Senior" {
		t.Fatalf("unexpected suggestions: %+v", list)
	}
	if len(ai.prompts) != 1 || !strings.Contains(ai.prompts[0], "Backend Engineer") {
		t.Fatalf("prompt missing job title: %v", ai.prompts)
	}
}

func TestExperienceGenerateBulletsFillsDraftOnly(t *testing.T) {
	store := loadedStore(resume.Document{})
	gw := &fakeGateway{}
	ai := &fakeAssist{response: `["Built X", "Led Y"]`}
	ed := NewExperienceEditor(store, gw, ai)
	ed.Load()
	ed.Edit(0, func(e *resume.Experience) { e.Title = "Staff Engineer" })

	if err := ed.GenerateBullets(context.Background(), 0); err != nil {
		t.Fatalf("generate: %v", err)
	}

	got := ed.Entries()[0].WorkSummary
	if got != "<ul><li>Built X</li><li>Led Y</li></ul>" {
		t.Fatalf("unexpected work summary: %s", got)
	}
	if len(gw.updates) != 0 {
		t.Fatalf("generate must not auto-save")
	}
	doc, _ := store.Get()
	if len(doc.Experience) != 0 {
		t.Fatalf("generate leaked into store: %+v", doc.Experience)
	}
}

func TestExperienceGenerateRequiresTitle(t *testing.T) {
	ed := NewExperienceEditor(loadedStore(resume.Document{}), &fakeGateway{}, &fakeAssist{})
	ed.Load()
	if err := ed.GenerateBullets(context.Background(), 0); err == nil {
		t.Fatalf("expected error without a position title")
	}
}

func TestProjectGenerateDescriptionRequiresTitleAndStack(t *testing.T) {
	ai := &fakeAssist{response: "A solid project."}
	ed := NewProjectsEditor(loadedStore(resume.Document{}), &fakeGateway{}, ai)
	ed.Load()

	if err := ed.GenerateDescription(context.Background(), 0); err == nil {
		t.Fatalf("expected error without title and tech stack")
	}

	ed.Edit(0, func(p *resume.Project) {
		p.Title = "Shop"
		p.TechStack = "Go, Postgres"
	})
	if err := ed.GenerateDescription(context.Background(), 0); err != nil {
		t.Fatalf("generate: %v", err)
	}
	if ed.Entries()[0].Description != "A solid project." {
		t.Fatalf("description not filled: %+v", ed.Entries()[0])
	}
}

func TestPersonalSaveMergesIdentityBlock(t *testing.T) {
	store := loadedStore(resume.Document{Summary: "untouched"})
	gw := &fakeGateway{}
	ed := NewPersonalEditor(store, gw)
	ed.Load()
	ed.Edit(PersonalDetails{FirstName: "Ann", LastName: "Lee", JobTitle: "SRE"})

	if err := ed.Save(context.Background()); err != nil {
		t.Fatalf("save: %v", err)
	}

	doc, _ := store.Get()
	if doc.FirstName != "Ann" || doc.LastName != "Lee" || doc.JobTitle != "SRE" {
		t.Fatalf("identity block not merged: %+v", doc)
	}
	if doc.Summary != "untouched" {
		t.Fatalf("personal save disturbed other sections")
	}
}
