package model

import "time"

// Transfer represents an equipment movement between two bases. Append-only.
// Equipment identity is either a product reference or a free-text label,
// never both: numeric input is stored as ProductID, textual input as
// EquipmentType.
type Transfer struct {
	ID            int64     `db:"id" json:"id"`
	FromBaseID    int64     `db:"from_base" json:"from_base_id"`
	ToBaseID      int64     `db:"to_base" json:"to_base_id"`
	ProductID     *int64    `db:"product_id" json:"product_id,omitempty"`
	EquipmentType *string   `db:"equipment_type" json:"equipment_type,omitempty"`
	Quantity      int       `db:"quantity" json:"quantity"`
	CreatedAt     time.Time `db:"created_at" json:"created_at"`

	// Joined fields (not always populated).
	FromBaseName string  `db:"from_base_name" json:"from_base,omitempty"`
	ToBaseName   string  `db:"to_base_name" json:"to_base,omitempty"`
	ProductName  *string `db:"product_name" json:"product_name,omitempty"`
}
