package export

import (
	"context"
	"sync"
)

// MemoryArtifactsRepo is an in-memory ArtifactsRepo for database-less runs
// and tests.
type MemoryArtifactsRepo struct {
	mu   sync.RWMutex
	arts []Artifact
}

// NewMemoryArtifactsRepo constructs a MemoryArtifactsRepo.
func NewMemoryArtifactsRepo() *MemoryArtifactsRepo {
	return &MemoryArtifactsRepo{}
}

// Create appends an artifact record.
func (r *MemoryArtifactsRepo) Create(ctx context.Context, art Artifact) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.arts = append(r.arts, art)
	return nil
}

// ListByResume returns artifacts for a resume in creation order.
func (r *MemoryArtifactsRepo) ListByResume(ctx context.Context, resumeID string) ([]Artifact, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := []Artifact{}
	for _, art := range r.arts {
		if art.ResumeID == resumeID {
			out = append(out, art)
		}
	}
	return out, nil
}

var _ ArtifactsRepo = (*MemoryArtifactsRepo)(nil)
