package usage

import "context"

type store interface {
	Get(ctx context.Context, userID, plan string) (Usage, error)
	Consume(ctx context.Context, userID, plan string, n int) (Usage, error)
	Release(ctx context.Context, userID string, n int) (Usage, error)
}

// Service tracks per-owner resume counts against plan limits.
type Service struct {
	store store
}

// NewService constructs a Service with an in-memory store.
func NewService() *Service {
	return &Service{store: newMemoryStore()}
}

// NewPostgresService constructs a Service backed by Postgres.
func NewPostgresService(pgStore store) *Service {
	return &Service{store: pgStore}
}

// Get returns the current usage for an owner, initializing defaults if absent.
func (s *Service) Get(ctx context.Context, userID, plan string) (Usage, error) {
	return s.store.Get(ctx, userID, plan)
}

// CanConsume reports whether the owner can create n more resumes.
func (s *Service) CanConsume(ctx context.Context, userID, plan string, n int) (bool, Usage, error) {
	u, err := s.store.Get(ctx, userID, plan)
	if err != nil {
		return false, Usage{}, err
	}
	if n <= 0 {
		return true, u, nil
	}
	if u.Used+n > u.Limit {
		return false, u, nil
	}
	return true, u, nil
}

// Consume increments the owner's resume count by n if within limit.
func (s *Service) Consume(ctx context.Context, userID, plan string, n int) (Usage, error) {
	return s.store.Consume(ctx, userID, plan, n)
}

// Release decrements the owner's resume count by n, flooring at zero.
func (s *Service) Release(ctx context.Context, userID string, n int) (Usage, error) {
	return s.store.Release(ctx, userID, n)
}
