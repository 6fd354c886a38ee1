package store

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/Thanushree0531-aradhya/military-assets-backend/internal/model"
)

// CreateAssignment records equipment assigned to personnel.
func CreateAssignment(ctx context.Context, db *sqlx.DB, baseID int64, equipmentType string, quantity int, assignedTo, reason string) (*model.Assignment, error) {
	if quantity <= 0 {
		return nil, fmt.Errorf("quantity must be positive")
	}

	var id int64
	err := db.GetContext(ctx, &id, db.Rebind(
		`INSERT INTO assignments (base_id, equipment_type, quantity, assigned_to, reason)
		 VALUES (?, ?, ?, ?, ?) RETURNING id`),
		baseID, equipmentType, quantity, assignedTo, reason,
	)
	if err != nil {
		return nil, fmt.Errorf("creating assignment: %w", err)
	}

	a := &model.Assignment{}
	err = db.GetContext(ctx, a, db.Rebind(
		`SELECT a.id, a.base_id, a.equipment_type, a.quantity, a.assigned_to, a.reason, a.created_at,
		        b.name AS base_name
		 FROM assignments a
		 JOIN bases b ON b.id = a.base_id
		 WHERE a.id = ?`), id,
	)
	if err != nil {
		return nil, fmt.Errorf("getting assignment: %w", err)
	}
	return a, nil
}

// ListAssignments returns all assignments, newest first. Assignments are
// not base-scoped: every role sees the full list.
func ListAssignments(ctx context.Context, db *sqlx.DB) ([]model.Assignment, error) {
	var assignments []model.Assignment
	err := db.SelectContext(ctx, &assignments,
		`SELECT a.id, a.base_id, a.equipment_type, a.quantity, a.assigned_to, a.reason, a.created_at,
		        b.name AS base_name
		 FROM assignments a
		 JOIN bases b ON b.id = a.base_id
		 ORDER BY a.created_at DESC, a.id DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("listing assignments: %w", err)
	}
	return assignments, nil
}
