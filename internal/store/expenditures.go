package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/Thanushree0531-aradhya/military-assets-backend/internal/model"
)

// CreateExpenditure records consumed equipment. AssignedTo may be nil.
func CreateExpenditure(ctx context.Context, db *sqlx.DB, baseID int64, equipmentType string, quantity int, assignedTo *string, reason string) (*model.Expenditure, error) {
	if quantity <= 0 {
		return nil, fmt.Errorf("quantity must be positive")
	}

	var id int64
	err := db.GetContext(ctx, &id, db.Rebind(
		`INSERT INTO expenditures (base_id, equipment_type, quantity, assigned_to, reason)
		 VALUES (?, ?, ?, ?, ?) RETURNING id`),
		baseID, equipmentType, quantity, assignedTo, reason,
	)
	if err != nil {
		return nil, fmt.Errorf("creating expenditure: %w", err)
	}

	return GetExpenditure(ctx, db, id)
}

// GetExpenditure returns an expenditure by ID.
func GetExpenditure(ctx context.Context, db *sqlx.DB, id int64) (*model.Expenditure, error) {
	e := &model.Expenditure{}
	err := db.GetContext(ctx, e, db.Rebind(
		`SELECT e.id, e.base_id, e.equipment_type, e.quantity, e.assigned_to, e.reason, e.created_at,
		        b.name AS base_name
		 FROM expenditures e
		 JOIN bases b ON b.id = e.base_id
		 WHERE e.id = ?`), id,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting expenditure: %w", err)
	}
	return e, nil
}

// UpdateExpenditure edits an expenditure in place. Returns (nil, nil) when
// no expenditure with the given ID exists.
func UpdateExpenditure(ctx context.Context, db *sqlx.DB, id, baseID int64, equipmentType string, quantity int, assignedTo *string, reason string) (*model.Expenditure, error) {
	if quantity <= 0 {
		return nil, fmt.Errorf("quantity must be positive")
	}

	res, err := db.ExecContext(ctx, db.Rebind(
		`UPDATE expenditures
		 SET base_id = ?, equipment_type = ?, quantity = ?, assigned_to = ?, reason = ?
		 WHERE id = ?`),
		baseID, equipmentType, quantity, assignedTo, reason, id,
	)
	if err != nil {
		return nil, fmt.Errorf("updating expenditure: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("updating expenditure: %w", err)
	}
	if affected == 0 {
		return nil, nil
	}

	return GetExpenditure(ctx, db, id)
}

// ListExpenditures returns all expenditures, newest first.
func ListExpenditures(ctx context.Context, db *sqlx.DB) ([]model.Expenditure, error) {
	var expenditures []model.Expenditure
	err := db.SelectContext(ctx, &expenditures,
		`SELECT e.id, e.base_id, e.equipment_type, e.quantity, e.assigned_to, e.reason, e.created_at,
		        b.name AS base_name
		 FROM expenditures e
		 JOIN bases b ON b.id = e.base_id
		 ORDER BY e.created_at DESC, e.id DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("listing expenditures: %w", err)
	}
	return expenditures, nil
}
