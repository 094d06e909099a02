package resumes

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Service contains business logic for stored resumes.
type Service struct {
	Repo Repo
}

// NewService constructs a Service.
func NewService(repo Repo) *Service {
	return &Service{Repo: repo}
}

// Create validates the attribute bag and stores a new resume. Title and
// userEmail are required; everything else starts however the client sent it.
func (s *Service) Create(ctx context.Context, attrs map[string]any) (Record, error) {
	if attrs == nil {
		attrs = map[string]any{}
	}
	if err := validateAttributes(attrs); err != nil {
		return Record{}, err
	}

	title := strings.TrimSpace(stringAttr(attrs, "title"))
	owner := strings.TrimSpace(stringAttr(attrs, "userEmail"))
	if title == "" {
		return Record{}, fmt.Errorf("%w: title is required", ErrInvalidInput)
	}
	if owner == "" {
		return Record{}, fmt.Errorf("%w: userEmail is required", ErrInvalidInput)
	}

	now := time.Now().UTC()
	rec := Record{
		ID:         uuid.NewString(),
		UserEmail:  owner,
		Title:      title,
		Attributes: attrs,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := s.Repo.Create(ctx, rec); err != nil {
		return Record{}, err
	}
	return rec, nil
}

// Get returns a single resume by ID.
func (s *Service) Get(ctx context.Context, id string) (Record, error) {
	if strings.TrimSpace(id) == "" {
		return Record{}, fmt.Errorf("%w: id is required", ErrInvalidInput)
	}
	return s.Repo.GetByID(ctx, id)
}

// ListByOwner returns the resumes owned by userEmail in creation order.
func (s *Service) ListByOwner(ctx context.Context, userEmail string) ([]Record, error) {
	if strings.TrimSpace(userEmail) == "" {
		return nil, fmt.Errorf("%w: userEmail filter is required", ErrInvalidInput)
	}
	return s.Repo.ListByOwner(ctx, userEmail)
}

// Update merges a partial attribute patch into the stored resume. Only the
// keys present in the patch change; identity fields on the record never do.
func (s *Service) Update(ctx context.Context, id string, patch map[string]any) (Record, error) {
	if strings.TrimSpace(id) == "" {
		return Record{}, fmt.Errorf("%w: id is required", ErrInvalidInput)
	}
	if len(patch) == 0 {
		return Record{}, fmt.Errorf("%w: empty update", ErrInvalidInput)
	}
	if err := validateAttributes(patch); err != nil {
		return Record{}, err
	}

	rec, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return Record{}, err
	}
	if rec.Attributes == nil {
		rec.Attributes = map[string]any{}
	}
	for key, value := range patch {
		rec.Attributes[key] = value
	}
	if title := strings.TrimSpace(stringAttr(patch, "title")); title != "" {
		rec.Title = title
	}
	rec.UpdatedAt = time.Now().UTC()

	if err := s.Repo.Replace(ctx, rec); err != nil {
		return Record{}, err
	}
	return rec, nil
}

// Delete removes a resume permanently.
func (s *Service) Delete(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("%w: id is required", ErrInvalidInput)
	}
	return s.Repo.Delete(ctx, id)
}

func stringAttr(attrs map[string]any, key string) string {
	if v, ok := attrs[key].(string); ok {
		return v
	}
	return ""
}
