package resume

import "sync"

// Store holds the single live document shared by every section editor and
// the preview. It is an explicit object passed to consumers at construction
// time, never a package-level singleton. Mutations notify subscribers
// synchronously. The store performs no validation; that is each editor's
// responsibility before writing.
type Store struct {
	mu     sync.RWMutex
	doc    Document
	loaded bool
	subs   []func(Document)
}

// NewStore returns an empty store. Get reports not-loaded until the first
// Set, which consumers must treat as distinct from "loaded but empty."
func NewStore() *Store {
	return &Store{}
}

// Get returns the current document and whether one has been loaded.
func (s *Store) Get() (Document, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.doc, s.loaded
}

// Set replaces the held document and notifies subscribers.
func (s *Store) Set(doc Document) {
	s.mu.Lock()
	s.doc = doc
	s.loaded = true
	subs := s.subs
	s.mu.Unlock()

	for _, fn := range subs {
		fn(doc)
	}
}

// Apply mutates the held document in place under the store's lock and
// notifies subscribers with the result. Editors use it to merge a single
// section without disturbing the rest of the document. Before the first Set
// there is nothing to merge into, so Apply is a no-op and the store keeps
// reporting not-loaded.
func (s *Store) Apply(fn func(*Document)) Document {
	s.mu.Lock()
	if !s.loaded {
		s.mu.Unlock()
		return Document{}
	}
	fn(&s.doc)
	doc := s.doc
	subs := s.subs
	s.mu.Unlock()

	for _, sub := range subs {
		sub(doc)
	}
	return doc
}

// Subscribe registers fn to run synchronously on every mutation. If a
// document is already loaded, fn observes it immediately.
func (s *Store) Subscribe(fn func(Document)) {
	s.mu.Lock()
	s.subs = append(s.subs, fn)
	doc, loaded := s.doc, s.loaded
	s.mu.Unlock()

	if loaded {
		fn(doc)
	}
}
