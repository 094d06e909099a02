package resumes

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
)

// PGRepo implements Repo using Postgres. The attribute bag is stored as a
// single jsonb column; title and owner are lifted into their own columns for
// filtering.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts a new resume.
func (r *PGRepo) Create(ctx context.Context, rec Record) error {
	const query = `
INSERT INTO user_resumes (id, user_email, title, document, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6)`

	doc, err := json.Marshal(rec.Attributes)
	if err != nil {
		return fmt.Errorf("encode resume document: %w", err)
	}

	_, err = r.DB.ExecContext(ctx, query, rec.ID, rec.UserEmail, rec.Title, doc, rec.CreatedAt, rec.UpdatedAt)
	return err
}

// GetByID fetches a resume by ID.
func (r *PGRepo) GetByID(ctx context.Context, id string) (Record, error) {
	const query = `
SELECT id, user_email, title, document, created_at, updated_at
FROM user_resumes
WHERE id = $1
LIMIT 1`

	var rec Record
	var doc []byte
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&rec.ID,
		&rec.UserEmail,
		&rec.Title,
		&doc,
		&rec.CreatedAt,
		&rec.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Record{}, ErrNotFound
		}
		return Record{}, err
	}
	if err := json.Unmarshal(doc, &rec.Attributes); err != nil {
		return Record{}, fmt.Errorf("decode resume document: %w", err)
	}
	return rec, nil
}

// ListByOwner lists resumes for an owner, oldest first.
func (r *PGRepo) ListByOwner(ctx context.Context, userEmail string) ([]Record, error) {
	const query = `
SELECT id, user_email, title, document, created_at, updated_at
FROM user_resumes
WHERE user_email = $1
ORDER BY created_at ASC`

	rows, err := r.DB.QueryContext(ctx, query, userEmail)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Record{}
	for rows.Next() {
		var rec Record
		var doc []byte
		if err := rows.Scan(
			&rec.ID,
			&rec.UserEmail,
			&rec.Title,
			&doc,
			&rec.CreatedAt,
			&rec.UpdatedAt,
		); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(doc, &rec.Attributes); err != nil {
			return nil, fmt.Errorf("decode resume document: %w", err)
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

// Replace overwrites an existing resume.
func (r *PGRepo) Replace(ctx context.Context, rec Record) error {
	const query = `
UPDATE user_resumes
SET title = $1, document = $2, updated_at = $3
WHERE id = $4`

	doc, err := json.Marshal(rec.Attributes)
	if err != nil {
		return fmt.Errorf("encode resume document: %w", err)
	}

	res, err := r.DB.ExecContext(ctx, query, rec.Title, doc, rec.UpdatedAt, rec.ID)
	if err != nil {
		return err
	}
	updated, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if updated == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a resume.
func (r *PGRepo) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM user_resumes WHERE id = $1`

	res, err := r.DB.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	deleted, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if deleted == 0 {
		return ErrNotFound
	}
	return nil
}

var _ Repo = (*PGRepo)(nil)
