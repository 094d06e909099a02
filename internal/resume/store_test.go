package resume

import "testing"

func TestStoreGetBeforeLoad(t *testing.T) {
	s := NewStore()
	if _, loaded := s.Get(); loaded {
		t.Fatalf("expected not-loaded before first Set")
	}
}

func TestStoreSetNotifiesSubscribers(t *testing.T) {
	s := NewStore()
	var seen []string
	s.Subscribe(func(d Document) {
		seen = append(seen, d.Title)
	})

	s.Set(Document{Title: "first"})
	s.Set(Document{Title: "second"})

	if len(seen) != 2 || seen[0] != "first" || seen[1] != "second" {
		t.Fatalf("unexpected notifications: %v", seen)
	}
}

func TestStoreSubscribeObservesCurrent(t *testing.T) {
	s := NewStore()
	s.Set(Document{Title: "loaded"})

	var got string
	s.Subscribe(func(d Document) { got = d.Title })
	if got != "loaded" {
		t.Fatalf("late subscriber did not observe current document, got %q", got)
	}
}

func TestStoreApplyMergesSingleSection(t *testing.T) {
	s := NewStore()
	s.Set(Document{Summary: "keep me", Skills: []Skill{{Name: "Go", Rating: 5}}})

	s.Apply(func(d *Document) {
		d.Interests = []string{"Chess"}
	})

	doc, _ := s.Get()
	if doc.Summary != "keep me" {
		t.Fatalf("apply disturbed other sections: %+v", doc)
	}
	if len(doc.Interests) != 1 || doc.Interests[0] != "Chess" {
		t.Fatalf("apply did not merge section: %+v", doc.Interests)
	}
}

func TestStoreApplyBeforeSetIsNoop(t *testing.T) {
	s := NewStore()

	var notified bool
	s.Subscribe(func(Document) { notified = true })

	got := s.Apply(func(d *Document) {
		d.Summary = "should not stick"
	})

	if got.Summary != "" {
		t.Fatalf("apply before load returned a mutated document: %+v", got)
	}
	if _, loaded := s.Get(); loaded {
		t.Fatal("apply before load marked the store as loaded")
	}
	if notified {
		t.Fatal("apply before load notified subscribers")
	}
}
