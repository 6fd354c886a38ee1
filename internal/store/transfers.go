package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/Thanushree0531-aradhya/military-assets-backend/internal/model"
	"github.com/Thanushree0531-aradhya/military-assets-backend/internal/scope"
)

const transferColumns = `
	t.id, t.from_base, t.to_base, t.product_id, t.equipment_type, t.quantity, t.created_at,
	b1.name AS from_base_name, b2.name AS to_base_name,
	pr.name AS product_name`

const transferJoins = `
	FROM transfers t
	JOIN bases b1 ON b1.id = t.from_base
	JOIN bases b2 ON b2.id = t.to_base
	LEFT JOIN products pr ON pr.id = t.product_id`

// CreateTransfer records an equipment movement between two bases. Exactly
// one of productID and equipmentType identifies the equipment.
func CreateTransfer(ctx context.Context, db *sqlx.DB, fromBase, toBase int64, productID *int64, equipmentType *string, quantity int) (*model.Transfer, error) {
	if fromBase == toBase {
		return nil, fmt.Errorf("from base and to base cannot be the same")
	}
	if quantity <= 0 {
		return nil, fmt.Errorf("quantity must be positive")
	}
	if productID == nil && equipmentType == nil {
		return nil, fmt.Errorf("equipment type is required")
	}

	var id int64
	err := db.GetContext(ctx, &id, db.Rebind(
		`INSERT INTO transfers (from_base, to_base, product_id, equipment_type, quantity)
		 VALUES (?, ?, ?, ?, ?) RETURNING id`),
		fromBase, toBase, productID, equipmentType, quantity,
	)
	if err != nil {
		return nil, fmt.Errorf("creating transfer: %w", err)
	}

	return GetTransfer(ctx, db, id)
}

// GetTransfer returns a transfer by ID with joined base and product names.
func GetTransfer(ctx context.Context, db *sqlx.DB, id int64) (*model.Transfer, error) {
	t := &model.Transfer{}
	err := db.GetContext(ctx, t, db.Rebind(
		`SELECT`+transferColumns+transferJoins+`
		 WHERE t.id = ?`), id,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting transfer: %w", err)
	}
	return t, nil
}

// ListTransfers returns transfers visible inside the given scope, newest
// first. A commander's scope matches transfers touching their base on
// either end.
func ListTransfers(ctx context.Context, db *sqlx.DB, sc scope.Scope) ([]model.Transfer, error) {
	query := `SELECT` + transferColumns + transferJoins

	var args []any
	if clause, clauseArgs := sc.TransferFilter(); clause != "" {
		query += ` WHERE ` + clause
		args = clauseArgs
	}

	query += ` ORDER BY t.created_at DESC, t.id DESC`

	var transfers []model.Transfer
	if err := db.SelectContext(ctx, &transfers, db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("listing transfers: %w", err)
	}
	return transfers, nil
}
