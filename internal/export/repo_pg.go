package export

import (
	"context"
	"database/sql"
)

// PGArtifactsRepo implements ArtifactsRepo using Postgres.
type PGArtifactsRepo struct {
	DB *sql.DB
}

// Create inserts an artifact record.
func (r *PGArtifactsRepo) Create(ctx context.Context, art Artifact) error {
	const query = `
INSERT INTO export_artifacts (id, resume_id, format, storage_key, size_bytes, created_at)
VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.DB.ExecContext(ctx, query, art.ID, art.ResumeID, art.Format, art.StorageKey, art.SizeBytes, art.CreatedAt)
	return err
}

// ListByResume lists artifacts for a resume, oldest first.
func (r *PGArtifactsRepo) ListByResume(ctx context.Context, resumeID string) ([]Artifact, error) {
	const query = `
SELECT id, resume_id, format, storage_key, size_bytes, created_at
FROM export_artifacts
WHERE resume_id = $1
ORDER BY created_at ASC`

	rows, err := r.DB.QueryContext(ctx, query, resumeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Artifact{}
	for rows.Next() {
		var art Artifact
		if err := rows.Scan(&art.ID, &art.ResumeID, &art.Format, &art.StorageKey, &art.SizeBytes, &art.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, art)
	}
	return out, rows.Err()
}

var _ ArtifactsRepo = (*PGArtifactsRepo)(nil)
