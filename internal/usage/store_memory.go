package usage

import (
	"context"
	"sync"
)

type memoryStore struct {
	mu   sync.Mutex
	data map[string]Usage
}

func newMemoryStore() *memoryStore {
	return &memoryStore{data: make(map[string]Usage)}
}

func (s *memoryStore) Get(ctx context.Context, userID, plan string) (Usage, error) {
	if err := ctx.Err(); err != nil {
		return Usage{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ensureLocked(userID, plan), nil
}

func (s *memoryStore) Consume(ctx context.Context, userID, plan string, n int) (Usage, error) {
	if err := ctx.Err(); err != nil {
		return Usage{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	u := s.ensureLocked(userID, plan)
	if n <= 0 {
		return u, nil
	}
	if u.Used+n > u.Limit {
		return Usage{}, ErrLimitReached
	}
	u.Used += n
	s.data[userID] = u
	return u, nil
}

func (s *memoryStore) Release(ctx context.Context, userID string, n int) (Usage, error) {
	if err := ctx.Err(); err != nil {
		return Usage{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	u := s.ensureLocked(userID, "")
	u.Used -= n
	if u.Used < 0 {
		u.Used = 0
	}
	s.data[userID] = u
	return u, nil
}

// ensureLocked initializes the row and keeps plan/limit in sync with the
// caller's identity claims. Callers must hold s.mu.
func (s *memoryStore) ensureLocked(userID, plan string) Usage {
	u, ok := s.data[userID]
	if !ok {
		if plan == "" {
			plan = PlanFree
		}
		u = Usage{Plan: plan, Limit: LimitFor(plan), Used: 0}
		s.data[userID] = u
		return u
	}
	if plan != "" && plan != u.Plan {
		u.Plan = plan
		u.Limit = LimitFor(plan)
		s.data[userID] = u
	}
	return u
}
