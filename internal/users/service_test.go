package users

import (
	"context"
	"errors"
	"testing"

	"resume-builder/internal/shared/auth"
	"resume-builder/internal/usage"
)

func TestRegisterAndLogin(t *testing.T) {
	svc := &Service{Repo: NewMemoryRepo()}
	ctx := context.Background()

	u, token, err := svc.Register(ctx, "Ada Lovelace", "Ada@Example.com", "correct horse battery")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if u.Email != "ada@example.com" {
		t.Fatalf("expected normalized email, got %q", u.Email)
	}
	if u.Plan != usage.PlanFree {
		t.Fatalf("expected free plan, got %q", u.Plan)
	}
	if u.PasswordHash == "correct horse battery" {
		t.Fatalf("expected hashed password")
	}

	claims, err := auth.VerifyJWT(token)
	if err != nil {
		t.Fatalf("verify token: %v", err)
	}
	if claims.Sub != u.ID || claims.Plan != usage.PlanFree {
		t.Fatalf("unexpected claims: %+v", claims)
	}

	if _, _, err := svc.Login(ctx, "ada@example.com", "correct horse battery"); err != nil {
		t.Fatalf("Login: %v", err)
	}
}

func TestLoginDoesNotRevealWhichFieldWasWrong(t *testing.T) {
	svc := &Service{Repo: NewMemoryRepo()}
	ctx := context.Background()

	if _, _, err := svc.Register(ctx, "Ada", "ada@example.com", "correct horse battery"); err != nil {
		t.Fatalf("Register: %v", err)
	}

	_, _, wrongPassword := svc.Login(ctx, "ada@example.com", "wrong")
	_, _, unknownEmail := svc.Login(ctx, "nobody@example.com", "whatever")

	if !errors.Is(wrongPassword, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for wrong password, got %v", wrongPassword)
	}
	if !errors.Is(unknownEmail, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for unknown email, got %v", unknownEmail)
	}
}

func TestRegisterValidatesInput(t *testing.T) {
	svc := &Service{Repo: NewMemoryRepo()}
	ctx := context.Background()

	cases := []struct {
		name     string
		userName string
		email    string
		password string
	}{
		{"short password", "Ada", "ada@example.com", "short"},
		{"empty name", "", "ada@example.com", "correct horse battery"},
		{"bad email", "Ada", "not-an-email", "correct horse battery"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, _, err := svc.Register(ctx, tc.userName, tc.email, tc.password); !errors.Is(err, ErrInvalidInput) {
				t.Fatalf("expected ErrInvalidInput, got %v", err)
			}
		})
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := &Service{Repo: NewMemoryRepo()}
	ctx := context.Background()

	if _, _, err := svc.Register(ctx, "Ada", "ada@example.com", "correct horse battery"); err != nil {
		t.Fatalf("Register: %v", err)
	}
	if _, _, err := svc.Register(ctx, "Imposter", "ADA@example.com", "another password"); !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestUpsertOAuthReusesAccount(t *testing.T) {
	svc := &Service{Repo: NewMemoryRepo()}
	ctx := context.Background()

	first, _, err := svc.UpsertOAuth(ctx, "Ada", "ada@example.com")
	if err != nil {
		t.Fatalf("UpsertOAuth: %v", err)
	}
	second, _, err := svc.UpsertOAuth(ctx, "Ada L.", "ada@example.com")
	if err != nil {
		t.Fatalf("UpsertOAuth: %v", err)
	}
	if first.ID != second.ID {
		t.Fatalf("expected same account, got %q and %q", first.ID, second.ID)
	}
}

func TestOAuthAccountsCannotPasswordLogin(t *testing.T) {
	svc := &Service{Repo: NewMemoryRepo()}
	ctx := context.Background()

	if _, _, err := svc.UpsertOAuth(ctx, "Ada", "ada@example.com"); err != nil {
		t.Fatalf("UpsertOAuth: %v", err)
	}
	if _, _, err := svc.Login(ctx, "ada@example.com", ""); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestUpgradePlanIssuesFreshToken(t *testing.T) {
	svc := &Service{Repo: NewMemoryRepo()}
	ctx := context.Background()

	u, _, err := svc.Register(ctx, "Ada", "ada@example.com", "correct horse battery")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	upgraded, token, err := svc.UpgradePlan(ctx, u.ID, usage.PlanPro)
	if err != nil {
		t.Fatalf("UpgradePlan: %v", err)
	}
	if upgraded.Plan != usage.PlanPro {
		t.Fatalf("expected pro plan, got %q", upgraded.Plan)
	}
	claims, err := auth.VerifyJWT(token)
	if err != nil {
		t.Fatalf("verify token: %v", err)
	}
	if claims.Plan != usage.PlanPro {
		t.Fatalf("expected pro claim, got %q", claims.Plan)
	}

	if _, _, err := svc.UpgradePlan(ctx, u.ID, "enterprise"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for unknown plan, got %v", err)
	}
}
