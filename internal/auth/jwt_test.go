package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/Thanushree0531-aradhya/military-assets-backend/internal/model"
)

const testSecret = "test-secret"

func TestTokenRoundTrip(t *testing.T) {
	baseID := int64(2)
	token, err := GenerateToken(testSecret, 42, model.RoleBaseCommander, &baseID)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	claims, err := ValidateToken(testSecret, token)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}
	if claims.UserID != 42 {
		t.Errorf("UserID = %d, want 42", claims.UserID)
	}
	if claims.Role != model.RoleBaseCommander {
		t.Errorf("Role = %q, want %q", claims.Role, model.RoleBaseCommander)
	}
	if claims.BaseID == nil || *claims.BaseID != 2 {
		t.Errorf("BaseID = %v, want 2", claims.BaseID)
	}
}

func TestTokenWithoutBase(t *testing.T) {
	token, err := GenerateToken(testSecret, 1, model.RoleAdmin, nil)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	claims, err := ValidateToken(testSecret, token)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}
	if claims.BaseID != nil {
		t.Errorf("BaseID = %v, want nil", claims.BaseID)
	}
}

func TestWrongSecretRejected(t *testing.T) {
	token, _ := GenerateToken(testSecret, 1, model.RoleAdmin, nil)
	if _, err := ValidateToken("other-secret", token); err == nil {
		t.Error("expected error for wrong secret")
	}
}

func TestGarbageTokenRejected(t *testing.T) {
	if _, err := ValidateToken(testSecret, "not.a.token"); err == nil {
		t.Error("expected error for malformed token")
	}
}

func TestExpiredTokenRejected(t *testing.T) {
	claims := Claims{
		UserID: 1,
		Role:   model.RoleAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, _ := token.SignedString([]byte(testSecret))

	if _, err := ValidateToken(testSecret, signed); err == nil {
		t.Error("expected error for expired token")
	}
}

func TestUnknownRoleClaimRejected(t *testing.T) {
	// A signed token with a role outside the closed set is rejected at the
	// parsing boundary.
	claims := Claims{
		UserID: 1,
		Role:   "SUPERUSER",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, _ := token.SignedString([]byte(testSecret))

	_, err := ValidateToken(testSecret, signed)
	if err == nil || !strings.Contains(err.Error(), "invalid role claim") {
		t.Errorf("expected invalid role claim error, got %v", err)
	}
}

func TestRoleClaimNormalized(t *testing.T) {
	// Lowercase role strings in older tokens still parse into the closed set.
	claims := Claims{
		UserID: 1,
		Role:   "admin",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, _ := token.SignedString([]byte(testSecret))

	got, err := ValidateToken(testSecret, signed)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}
	if got.Role != model.RoleAdmin {
		t.Errorf("Role = %q, want %q", got.Role, model.RoleAdmin)
	}
}
