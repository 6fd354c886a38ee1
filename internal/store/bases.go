package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/Thanushree0531-aradhya/military-assets-backend/internal/model"
)

// ListBases returns all bases ordered by id.
func ListBases(ctx context.Context, db *sqlx.DB) ([]model.Base, error) {
	var bases []model.Base
	err := db.SelectContext(ctx, &bases,
		`SELECT id, name, location FROM bases ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("listing bases: %w", err)
	}
	return bases, nil
}

// ListBasesByName returns all bases ordered by name, for dropdowns.
func ListBasesByName(ctx context.Context, db *sqlx.DB) ([]model.Base, error) {
	var bases []model.Base
	err := db.SelectContext(ctx, &bases,
		`SELECT id, name, location FROM bases ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("listing bases by name: %w", err)
	}
	return bases, nil
}

// GetBase returns a base by ID.
func GetBase(ctx context.Context, db *sqlx.DB, id int64) (*model.Base, error) {
	b := &model.Base{}
	err := db.GetContext(ctx, b,
		db.Rebind(`SELECT id, name, location FROM bases WHERE id = ?`), id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting base: %w", err)
	}
	return b, nil
}

// GetBaseByName returns a base by case-insensitive name match.
func GetBaseByName(ctx context.Context, db *sqlx.DB, name string) (*model.Base, error) {
	b := &model.Base{}
	err := db.GetContext(ctx, b,
		db.Rebind(`SELECT id, name, location FROM bases WHERE LOWER(name) = LOWER(?)`), name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting base by name: %w", err)
	}
	return b, nil
}
