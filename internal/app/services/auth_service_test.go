package services

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/rs/zerolog"
	"github.com/yigit/collegefinance/internal/app/models"
	"github.com/yigit/collegefinance/internal/pkg/apperrors"
	"github.com/yigit/collegefinance/internal/pkg/auth"
	"golang.org/x/crypto/bcrypt"
)

type stubTokens struct {
	issued int
}

func (s *stubTokens) GenerateToken(admin *models.Admin) (string, int, error) {
	s.issued++
	return fmt.Sprintf("token-%s-%d", admin.Username, s.issued), 3600, nil
}

func newAuthFixture(t *testing.T) (AuthService, *memStore, *stubTokens, int64) {
	t.Helper()
	store := newMemStore()
	hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	id, err := memAdmins{store}.Create(context.Background(), &models.Admin{Username: "admin", PasswordHash: string(hash)})
	if err != nil {
		t.Fatalf("seed admin: %v", err)
	}
	tokens := &stubTokens{}
	return NewAuthService(memAdmins{store}, tokens, zerolog.Nop()), store, tokens, id
}

func TestLogin(t *testing.T) {
	svc, _, _, _ := newAuthFixture(t)

	tests := []struct {
		name     string
		username string
		password string
		wantErr  error
	}{
		{name: "valid credentials", username: "admin", password: "admin123"},
		{name: "surrounding spaces in username", username: " admin ", password: "admin123"},
		{name: "wrong password", username: "admin", password: "nope", wantErr: apperrors.ErrInvalidCredentials},
		{name: "unknown user", username: "root", password: "admin123", wantErr: apperrors.ErrInvalidCredentials},
		{name: "empty input", username: "", password: "", wantErr: apperrors.ErrInvalidCredentials},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := svc.Login(context.Background(), tt.username, tt.password)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Login() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Login() error = %v", err)
			}
			if res.Token == "" || res.ExpiresIn != 3600 || res.Admin.Username != "admin" {
				t.Errorf("Login() = %+v", res)
			}
		})
	}
}

func TestChangePassword(t *testing.T) {
	svc, _, _, id := newAuthFixture(t)
	ctx := context.Background()

	if err := svc.ChangePassword(ctx, id, "wrong", "newsecret"); !errors.Is(err, apperrors.ErrInvalidCredentials) {
		t.Errorf("wrong current password error = %v, want invalid credentials", err)
	}
	if err := svc.ChangePassword(ctx, id, "admin123", "abc"); !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Errorf("short password error = %v, want validation failure", err)
	}
	if err := svc.ChangePassword(ctx, id, "admin123", "newsecret"); err != nil {
		t.Fatalf("ChangePassword() error = %v", err)
	}
	if _, err := svc.Login(ctx, "admin", "newsecret"); err != nil {
		t.Errorf("Login with new password error = %v", err)
	}
	if _, err := svc.Login(ctx, "admin", "admin123"); !errors.Is(err, apperrors.ErrInvalidCredentials) {
		t.Errorf("Login with old password error = %v, want invalid credentials", err)
	}
}

func TestChangeUsernameIssuesFreshToken(t *testing.T) {
	svc, store, tokens, id := newAuthFixture(t)
	ctx := context.Background()

	if _, err := svc.ChangeUsername(ctx, id, "bursar", "wrong"); !errors.Is(err, apperrors.ErrInvalidCredentials) {
		t.Errorf("wrong password error = %v, want invalid credentials", err)
	}
	if _, err := svc.ChangeUsername(ctx, id, "a b", "admin123"); !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Errorf("invalid username error = %v, want validation failure", err)
	}

	other, _ := bcrypt.GenerateFromPassword([]byte("x"), bcrypt.MinCost)
	if _, err := (memAdmins{store}).Create(ctx, &models.Admin{Username: "taken", PasswordHash: string(other)}); err != nil {
		t.Fatalf("seed second admin: %v", err)
	}
	if _, err := svc.ChangeUsername(ctx, id, "taken", "admin123"); !errors.Is(err, apperrors.ErrConflict) {
		t.Errorf("taken username error = %v, want conflict", err)
	}

	res, err := svc.ChangeUsername(ctx, id, "bursar", "admin123")
	if err != nil {
		t.Fatalf("ChangeUsername() error = %v", err)
	}
	if res.Admin.Username != "bursar" || res.Token != fmt.Sprintf("token-bursar-%d", tokens.issued) {
		t.Errorf("ChangeUsername() = %+v", res)
	}

	profile, err := svc.GetProfile(ctx, id)
	if err != nil {
		t.Fatalf("GetProfile() error = %v", err)
	}
	if profile.Username != "bursar" {
		t.Errorf("profile username = %q, want bursar", profile.Username)
	}
}

func TestEnsureDefaultAdmin(t *testing.T) {
	store := newMemStore()
	svc := NewAuthService(memAdmins{store}, &stubTokens{}, zerolog.Nop())
	ctx := context.Background()

	created, err := svc.EnsureDefaultAdmin(ctx, "admin", "admin123")
	if err != nil {
		t.Fatalf("EnsureDefaultAdmin() error = %v", err)
	}
	if !created {
		t.Fatal("EnsureDefaultAdmin() should create the first admin")
	}
	admin, err := memAdmins{store}.GetByUsername(ctx, "admin")
	if err != nil {
		t.Fatalf("GetByUsername() error = %v", err)
	}
	if !auth.CheckPassword(admin.PasswordHash, "admin123") {
		t.Error("stored hash does not match the default password")
	}

	created, err = svc.EnsureDefaultAdmin(ctx, "other", "other123")
	if err != nil {
		t.Fatalf("second EnsureDefaultAdmin() error = %v", err)
	}
	if created {
		t.Error("EnsureDefaultAdmin() must not create a second admin")
	}
}
