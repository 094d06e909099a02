package resumes

import "context"

// Repo defines persistence operations for resume records.
type Repo interface {
	Create(ctx context.Context, rec Record) error
	GetByID(ctx context.Context, id string) (Record, error)
	ListByOwner(ctx context.Context, userEmail string) ([]Record, error)
	Replace(ctx context.Context, rec Record) error
	Delete(ctx context.Context, id string) error
}
