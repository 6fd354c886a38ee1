package model

import (
	"fmt"
	"strings"
	"time"
	"unicode"
)

// User represents an authentication user.
type User struct {
	ID           int64     `db:"id" json:"id"`
	Name         string    `db:"name" json:"name"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password_hash" json:"-"`
	Role         Role      `db:"role" json:"role"`
	Rank         *string   `db:"rank" json:"rank,omitempty"`
	BaseID       *int64    `db:"base_id" json:"base_id,omitempty"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}

// ValidateEmail checks the signup email rule.
func ValidateEmail(email string) error {
	if !strings.Contains(email, "@gmail.com") {
		return fmt.Errorf("invalid email format")
	}
	return nil
}

// ValidatePassword enforces the signup password policy: at least 8
// characters with an uppercase letter, a lowercase letter, a digit and a
// special character.
func ValidatePassword(password string) error {
	if len(password) < 8 {
		return fmt.Errorf("password must be at least 8 characters")
	}

	var upper, lower, digit, special bool
	for _, c := range password {
		switch {
		case unicode.IsUpper(c):
			upper = true
		case unicode.IsLower(c):
			lower = true
		case unicode.IsDigit(c):
			digit = true
		case strings.ContainsRune("@$!%*?#&", c):
			special = true
		}
	}
	if !upper || !lower || !digit || !special {
		return fmt.Errorf("password must include uppercase, lowercase, number, and special character")
	}
	return nil
}
