package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/yigit/collegefinance/internal/app/models"
	"github.com/yigit/collegefinance/internal/pkg/apperrors"
)

func newTestJWTService(now time.Time) *JWTService {
	s := NewJWTService(JWTConfig{
		SecretKey:      "test-secret",
		AccessTokenExp: time.Hour,
		TokenIssuer:    "collegefinance.test",
	})
	s.now = func() time.Time { return now }
	return s
}

func TestGenerateAndValidateToken(t *testing.T) {
	now := time.Now()
	s := newTestJWTService(now)

	token, expiresIn, err := s.GenerateToken(&models.Admin{ID: 1, Username: "admin"})
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}
	if expiresIn != 3600 {
		t.Errorf("expiresIn = %d, want 3600", expiresIn)
	}

	claims, err := s.ValidateAndExtractClaims(token)
	if err != nil {
		t.Fatalf("ValidateAndExtractClaims() error = %v", err)
	}
	if claims.AdminID != 1 || claims.Username != "admin" {
		t.Errorf("claims = %+v", claims)
	}
	if claims.Issuer != "collegefinance.test" {
		t.Errorf("issuer = %q", claims.Issuer)
	}
}

func TestValidateTokenExpired(t *testing.T) {
	issued := time.Now().Add(-2 * time.Hour)
	token, _, err := newTestJWTService(issued).GenerateToken(&models.Admin{ID: 1, Username: "admin"})
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}

	_, err = newTestJWTService(time.Now()).ValidateToken(token)
	if !errors.Is(err, apperrors.ErrTokenExpired) {
		t.Fatalf("err = %v, want ErrTokenExpired", err)
	}
}

func TestValidateTokenWrongSecret(t *testing.T) {
	now := time.Now()
	token, _, err := newTestJWTService(now).GenerateToken(&models.Admin{ID: 1, Username: "admin"})
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}

	other := NewJWTService(JWTConfig{SecretKey: "other", AccessTokenExp: time.Hour})
	if _, err := other.ValidateToken(token); !errors.Is(err, apperrors.ErrTokenInvalid) {
		t.Fatalf("err = %v, want ErrTokenInvalid", err)
	}
}

func TestExtractBearerToken(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		want    string
		wantErr bool
	}{
		{"bearer prefix", "Bearer a.b.c", "a.b.c", false},
		{"raw token", "a.b.c", "a.b.c", false},
		{"empty", "", "", true},
		{"not a jwt", "Bearer abc", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractBearerToken(tt.header)
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPasswordRoundTrip(t *testing.T) {
	hash, err := HashPassword("admin123")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}
	if !CheckPassword(hash, "admin123") {
		t.Error("CheckPassword() rejected the right password")
	}
	if CheckPassword(hash, "admin124") {
		t.Error("CheckPassword() accepted a wrong password")
	}
}
