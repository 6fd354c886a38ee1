package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/Thanushree0531-aradhya/military-assets-backend/internal/model"
)

// Claims represents the JWT claims attached to authenticated requests.
// BaseID is only set for base commanders.
type Claims struct {
	UserID int64      `json:"user_id"`
	Role   model.Role `json:"role"`
	BaseID *int64     `json:"base_id,omitempty"`
	jwt.RegisteredClaims
}

// TokenExpiry is the default token lifetime.
const TokenExpiry = 24 * time.Hour

// GenerateToken creates a new JWT for a user.
func GenerateToken(secret string, userID int64, role model.Role, baseID *int64) (string, error) {
	claims := Claims{
		UserID: userID,
		Role:   role,
		BaseID: baseID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(TokenExpiry)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}
	return signed, nil
}

// ValidateToken parses and validates a JWT, returning the claims. The role
// claim is normalized into the closed role set here so that downstream
// code never observes a raw role string.
func ValidateToken(secret, tokenStr string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("parsing token: %w", err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	role, err := model.ParseRole(string(claims.Role))
	if err != nil {
		return nil, fmt.Errorf("invalid role claim: %w", err)
	}
	claims.Role = role

	return claims, nil
}
