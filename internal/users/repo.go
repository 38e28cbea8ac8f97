package users

import "context"

// Repo persists user accounts.
type Repo interface {
	Create(ctx context.Context, u User) error
	GetByID(ctx context.Context, id string) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)
	UpdatePlan(ctx context.Context, id, plan string) error
}
