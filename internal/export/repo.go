package export

import "context"

// ArtifactsRepo records generated artifacts.
type ArtifactsRepo interface {
	Create(ctx context.Context, art Artifact) error
	ListByResume(ctx context.Context, resumeID string) ([]Artifact, error)
}
