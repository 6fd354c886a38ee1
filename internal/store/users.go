package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/Thanushree0531-aradhya/military-assets-backend/internal/model"
)

// CreateUser creates a new user. Rank and baseID may be nil; baseID is only
// meaningful for base commanders.
func CreateUser(ctx context.Context, db *sqlx.DB, name, email, passwordHash string, role model.Role, rank *string, baseID *int64) (*model.User, error) {
	var id int64
	err := db.GetContext(ctx, &id, db.Rebind(
		`INSERT INTO users (name, email, password_hash, role, rank, base_id)
		 VALUES (?, ?, ?, ?, ?, ?) RETURNING id`),
		name, email, passwordHash, role, rank, baseID,
	)
	if err != nil {
		return nil, fmt.Errorf("creating user: %w", err)
	}

	return GetUser(ctx, db, id)
}

// GetUser returns a user by ID.
func GetUser(ctx context.Context, db *sqlx.DB, id int64) (*model.User, error) {
	u := &model.User{}
	err := db.GetContext(ctx, u, db.Rebind(
		`SELECT id, name, email, password_hash, role, rank, base_id, created_at
		 FROM users WHERE id = ?`), id,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting user: %w", err)
	}
	return u, nil
}

// GetUserByEmail returns a user by email.
func GetUserByEmail(ctx context.Context, db *sqlx.DB, email string) (*model.User, error) {
	u := &model.User{}
	err := db.GetContext(ctx, u, db.Rebind(
		`SELECT id, name, email, password_hash, role, rank, base_id, created_at
		 FROM users WHERE email = ?`), email,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting user by email: %w", err)
	}
	return u, nil
}
