package usage

import (
	"context"
	"errors"
	"testing"
)

func TestConsumeEnforcesFreeLimit(t *testing.T) {
	svc := NewService()
	ctx := context.Background()

	for i := 0; i < freeLimit; i++ {
		if _, err := svc.Consume(ctx, "user-1", PlanFree, 1); err != nil {
			t.Fatalf("consume %d: %v", i, err)
		}
	}

	if _, err := svc.Consume(ctx, "user-1", PlanFree, 1); !errors.Is(err, ErrLimitReached) {
		t.Fatalf("expected ErrLimitReached, got %v", err)
	}

	ok, u, err := svc.CanConsume(ctx, "user-1", PlanFree, 1)
	if err != nil {
		t.Fatalf("CanConsume: %v", err)
	}
	if ok {
		t.Fatalf("expected no headroom, usage %+v", u)
	}
}

func TestReleaseFloorsAtZero(t *testing.T) {
	svc := NewService()
	ctx := context.Background()

	if _, err := svc.Consume(ctx, "user-1", PlanFree, 1); err != nil {
		t.Fatalf("Consume: %v", err)
	}
	u, err := svc.Release(ctx, "user-1", 5)
	if err != nil {
		t.Fatalf("Release: %v", err)
	}
	if u.Used != 0 {
		t.Fatalf("expected used floored at 0, got %d", u.Used)
	}
}

func TestPlanChangeRaisesLimit(t *testing.T) {
	svc := NewService()
	ctx := context.Background()

	for i := 0; i < freeLimit; i++ {
		if _, err := svc.Consume(ctx, "user-1", PlanFree, 1); err != nil {
			t.Fatalf("consume %d: %v", i, err)
		}
	}

	// The plan claim follows the user's upgraded token.
	u, err := svc.Consume(ctx, "user-1", PlanPro, 1)
	if err != nil {
		t.Fatalf("expected pro plan to allow more resumes: %v", err)
	}
	if u.Limit != proLimit {
		t.Fatalf("expected pro limit %d, got %d", proLimit, u.Limit)
	}
	if u.Used != freeLimit+1 {
		t.Fatalf("expected used carried over, got %d", u.Used)
	}
}
