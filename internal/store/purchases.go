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

// purchaseColumns selects a purchase row together with its derived
// transfer_in/transfer_out sums. Transfers are matched on base and exact
// equipment_type label; a transfer carrying only a product_id never
// contributes. That is a known modeling gap in the equipment-identity
// scheme and is kept as-is rather than silently fixed.
const purchaseColumns = `
	p.id, p.base_id, p.equipment_type, p.quantity, p.created_at,
	b.name AS base_name,
	COALESCE((SELECT SUM(t.quantity) FROM transfers t
	          WHERE t.to_base = p.base_id AND t.equipment_type = p.equipment_type), 0) AS transfer_in,
	COALESCE((SELECT SUM(t.quantity) FROM transfers t
	          WHERE t.from_base = p.base_id AND t.equipment_type = p.equipment_type), 0) AS transfer_out`

// CreatePurchase records an acquisition for a base.
func CreatePurchase(ctx context.Context, db *sqlx.DB, baseID int64, equipmentType string, quantity int) (*model.Purchase, error) {
	if quantity <= 0 {
		return nil, fmt.Errorf("quantity must be positive")
	}

	var id int64
	err := db.GetContext(ctx, &id, db.Rebind(
		`INSERT INTO purchases (base_id, equipment_type, quantity)
		 VALUES (?, ?, ?) RETURNING id`),
		baseID, equipmentType, quantity,
	)
	if err != nil {
		return nil, fmt.Errorf("creating purchase: %w", err)
	}

	return GetPurchase(ctx, db, id)
}

// GetPurchase returns a purchase by ID, with its movement sums.
func GetPurchase(ctx context.Context, db *sqlx.DB, id int64) (*model.Purchase, error) {
	p := &model.Purchase{}
	err := db.GetContext(ctx, p, db.Rebind(
		`SELECT`+purchaseColumns+`
		 FROM purchases p
		 JOIN bases b ON b.id = p.base_id
		 WHERE p.id = ?`), id,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting purchase: %w", err)
	}
	p.AssetName = p.EquipmentType
	return p, nil
}

// ListPurchases returns purchases visible inside the given scope, newest
// first, each row carrying its transfer_in/transfer_out sums.
func ListPurchases(ctx context.Context, db *sqlx.DB, sc scope.Scope) ([]model.Purchase, error) {
	query := `SELECT` + purchaseColumns + `
	          FROM purchases p
	          JOIN bases b ON b.id = p.base_id`

	var args []any
	if clause, clauseArgs := sc.PurchaseFilter(); clause != "" {
		query += ` WHERE ` + clause
		args = clauseArgs
	}

	query += ` ORDER BY p.created_at DESC, p.id DESC`

	var purchases []model.Purchase
	if err := db.SelectContext(ctx, &purchases, db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("listing purchases: %w", err)
	}
	for i := range purchases {
		purchases[i].AssetName = purchases[i].EquipmentType
	}
	return purchases, nil
}

// ListBaseAssets returns all purchases recorded for a single base, newest
// first, for the base commander asset view.
func ListBaseAssets(ctx context.Context, db *sqlx.DB, baseID int64) ([]model.Purchase, error) {
	var purchases []model.Purchase
	err := db.SelectContext(ctx, &purchases, db.Rebind(
		`SELECT`+purchaseColumns+`
		 FROM purchases p
		 JOIN bases b ON b.id = p.base_id
		 WHERE p.base_id = ?
		 ORDER BY p.created_at DESC, p.id DESC`), baseID,
	)
	if err != nil {
		return nil, fmt.Errorf("listing base assets: %w", err)
	}
	for i := range purchases {
		purchases[i].AssetName = purchases[i].EquipmentType
	}
	return purchases, nil
}
