package users

import (
	"context"
	"errors"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"resume-builder/internal/shared/auth"
	"resume-builder/internal/shared/telemetry"
	"resume-builder/internal/usage"
)

const minPasswordLen = 8

// Service owns account registration, login and OAuth upserts.
type Service struct {
	Repo Repo
}

// Register creates a password-based account and issues a session token.
func (s *Service) Register(ctx context.Context, name, email, password string) (User, string, error) {
	name = strings.TrimSpace(name)
	email = normalizeEmail(email)
	if name == "" || email == "" || len(password) < minPasswordLen {
		return User{}, "", ErrInvalidInput
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return User{}, "", ErrInvalidInput
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return User{}, "", err
	}

	now := time.Now().UTC()
	u := User{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Plan:         usage.PlanFree,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.Repo.Create(ctx, u); err != nil {
		return User{}, "", err
	}

	token, err := s.issueToken(u)
	if err != nil {
		return User{}, "", err
	}
	telemetry.Info("user.registered", map[string]any{"user_id": u.ID})
	return u, token, nil
}

// Login verifies credentials and issues a session token. Unknown email
// and wrong password are indistinguishable to the caller.
func (s *Service) Login(ctx context.Context, email, password string) (User, string, error) {
	u, err := s.Repo.GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return User{}, "", ErrInvalidCredentials
		}
		return User{}, "", err
	}
	if u.PasswordHash == "" {
		return User{}, "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return User{}, "", ErrInvalidCredentials
	}

	token, err := s.issueToken(u)
	if err != nil {
		return User{}, "", err
	}
	return u, token, nil
}

// Get fetches an account by id.
func (s *Service) Get(ctx context.Context, id string) (User, error) {
	return s.Repo.GetByID(ctx, id)
}

// UpsertOAuth finds or creates the account backing an OAuth identity and
// issues a session token.
func (s *Service) UpsertOAuth(ctx context.Context, name, email string) (User, string, error) {
	email = normalizeEmail(email)
	if email == "" {
		return User{}, "", ErrInvalidInput
	}

	u, err := s.Repo.GetByEmail(ctx, email)
	if errors.Is(err, ErrNotFound) {
		now := time.Now().UTC()
		u = User{
			ID:        uuid.NewString(),
			Name:      strings.TrimSpace(name),
			Email:     email,
			Plan:      usage.PlanFree,
			CreatedAt: now,
			UpdatedAt: now,
		}
		err = s.Repo.Create(ctx, u)
	}
	if err != nil {
		return User{}, "", err
	}

	token, err := s.issueToken(u)
	if err != nil {
		return User{}, "", err
	}
	return u, token, nil
}

// UpgradePlan switches an account's plan tier.
func (s *Service) UpgradePlan(ctx context.Context, id, plan string) (User, string, error) {
	if plan != usage.PlanFree && plan != usage.PlanPro {
		return User{}, "", ErrInvalidInput
	}
	if err := s.Repo.UpdatePlan(ctx, id, plan); err != nil {
		return User{}, "", err
	}
	u, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return User{}, "", err
	}
	token, err := s.issueToken(u)
	if err != nil {
		return User{}, "", err
	}
	telemetry.Info("user.plan_changed", map[string]any{"user_id": id, "plan": plan})
	return u, token, nil
}

func (s *Service) issueToken(u User) (string, error) {
	return auth.SignJWT(auth.Claims{
		Sub:   u.ID,
		Email: u.Email,
		Name:  u.Name,
		Plan:  u.Plan,
	})
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
