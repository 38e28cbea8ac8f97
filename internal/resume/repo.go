package resume

import "context"

// Repo defines persistence operations for resumes. GetByID returns the row
// regardless of owner so the service can distinguish forbidden from
// not-found; every write is keyed by both id and owner.
type Repo interface {
	Create(ctx context.Context, r Resume) error
	GetByID(ctx context.Context, id string) (Resume, error)
	ListByUser(ctx context.Context, userID string) ([]Resume, error)
	Update(ctx context.Context, r Resume) error
	Delete(ctx context.Context, id, userID string) error
}
