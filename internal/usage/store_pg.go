package usage

import (
	"context"
	"database/sql"
)

type pgStore struct {
	DB *sql.DB
}

// NewPGStore constructs a Postgres-backed usage store.
func NewPGStore(db *sql.DB) *pgStore {
	return &pgStore{DB: db}
}

func (s *pgStore) Get(ctx context.Context, userID, plan string) (Usage, error) {
	if plan == "" {
		plan = PlanFree
	}
	const query = `
INSERT INTO usage (user_id, plan, limit_amount, used)
VALUES ($1, $2, $3, 0)
ON CONFLICT (user_id) DO UPDATE SET plan = EXCLUDED.plan, limit_amount = EXCLUDED.limit_amount, updated_at = now()
RETURNING plan, limit_amount, used`
	var u Usage
	err := s.DB.QueryRowContext(ctx, query, userID, plan, LimitFor(plan)).Scan(&u.Plan, &u.Limit, &u.Used)
	if err != nil {
		return Usage{}, err
	}
	return u, nil
}

func (s *pgStore) Consume(ctx context.Context, userID, plan string, n int) (Usage, error) {
	if n <= 0 {
		return s.Get(ctx, userID, plan)
	}
	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return Usage{}, err
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	u, err := s.lockAndEnsure(ctx, tx, userID, plan)
	if err != nil {
		return Usage{}, err
	}
	if u.Used+n > u.Limit {
		err = ErrLimitReached
		return Usage{}, err
	}
	u.Used += n
	if _, err = tx.ExecContext(ctx, `
UPDATE usage SET used = $1, updated_at = now() WHERE user_id = $2`, u.Used, userID); err != nil {
		return Usage{}, err
	}
	if err = tx.Commit(); err != nil {
		return Usage{}, err
	}
	return u, nil
}

func (s *pgStore) Release(ctx context.Context, userID string, n int) (Usage, error) {
	if n <= 0 {
		return s.Get(ctx, userID, "")
	}
	const query = `
UPDATE usage SET used = GREATEST(used - $1, 0), updated_at = now()
WHERE user_id = $2
RETURNING plan, limit_amount, used`
	var u Usage
	err := s.DB.QueryRowContext(ctx, query, n, userID).Scan(&u.Plan, &u.Limit, &u.Used)
	if err == sql.ErrNoRows {
		return s.Get(ctx, userID, "")
	}
	if err != nil {
		return Usage{}, err
	}
	return u, nil
}

func (s *pgStore) lockAndEnsure(ctx context.Context, tx *sql.Tx, userID, plan string) (Usage, error) {
	if plan == "" {
		plan = PlanFree
	}
	if _, err := tx.ExecContext(ctx, `
INSERT INTO usage (user_id, plan, limit_amount, used)
VALUES ($1, $2, $3, 0)
ON CONFLICT (user_id) DO UPDATE SET plan = EXCLUDED.plan, limit_amount = EXCLUDED.limit_amount, updated_at = now()`,
		userID, plan, LimitFor(plan)); err != nil {
		return Usage{}, err
	}
	var u Usage
	err := tx.QueryRowContext(ctx, `
SELECT plan, limit_amount, used FROM usage WHERE user_id = $1 FOR UPDATE`, userID).Scan(&u.Plan, &u.Limit, &u.Used)
	if err != nil {
		return Usage{}, err
	}
	return u, nil
}
