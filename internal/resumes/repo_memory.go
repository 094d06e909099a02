package resumes

import (
	"context"
	"encoding/json"
	"sync"
)

// MemoryRepo is an in-memory implementation of Repo, used when no database
// is configured and in handler tests.
type MemoryRepo struct {
	mu   sync.RWMutex
	data map[string]Record
	keys []string // insertion order, so list results are stable
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		data: make(map[string]Record),
	}
}

// Create stores a new record.
func (r *MemoryRepo) Create(ctx context.Context, rec Record) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.data[rec.ID]; !exists {
		r.keys = append(r.keys, rec.ID)
	}
	r.data[rec.ID] = cloneRecord(rec)
	return nil
}

// GetByID returns the record with the given ID.
func (r *MemoryRepo) GetByID(ctx context.Context, id string) (Record, error) {
	if err := ctx.Err(); err != nil {
		return Record{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	rec, ok := r.data[id]
	if !ok {
		return Record{}, ErrNotFound
	}
	return cloneRecord(rec), nil
}

// ListByOwner returns records owned by userEmail in creation order.
func (r *MemoryRepo) ListByOwner(ctx context.Context, userEmail string) ([]Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := []Record{}
	for _, id := range r.keys {
		rec, ok := r.data[id]
		if ok && rec.UserEmail == userEmail {
			out = append(out, cloneRecord(rec))
		}
	}
	return out, nil
}

// Replace overwrites an existing record.
func (r *MemoryRepo) Replace(ctx context.Context, rec Record) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.data[rec.ID]; !ok {
		return ErrNotFound
	}
	r.data[rec.ID] = cloneRecord(rec)
	return nil
}

// Delete removes a record.
func (r *MemoryRepo) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.data[id]; !ok {
		return ErrNotFound
	}
	delete(r.data, id)
	for i, key := range r.keys {
		if key == id {
			r.keys = append(r.keys[:i], r.keys[i+1:]...)
			break
		}
	}
	return nil
}

func cloneRecord(rec Record) Record {
	if rec.Attributes == nil {
		return rec
	}
	// Deep copy through JSON so callers can't mutate stored attributes.
	raw, err := json.Marshal(rec.Attributes)
	if err != nil {
		return rec
	}
	var attrs map[string]any
	if err := json.Unmarshal(raw, &attrs); err != nil {
		return rec
	}
	rec.Attributes = attrs
	return rec
}

var _ Repo = (*MemoryRepo)(nil)
