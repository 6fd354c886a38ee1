package model

import "time"

// Purchase represents an acquisition record adding equipment quantity to a
// base. Append-only: purchases are never edited once recorded.
//
// TransferIn and TransferOut are derived, not stored: the sums of transfer
// quantities into and out of the purchase's base for the same equipment
// type. Net movement (in minus out) is left to the consumer so that the
// dominating direction stays visible.
type Purchase struct {
	ID            int64     `db:"id" json:"id"`
	BaseID        int64     `db:"base_id" json:"base_id"`
	BaseName      string    `db:"base_name" json:"base_name,omitempty"`
	EquipmentType string    `db:"equipment_type" json:"equipment_type"`
	AssetName     string    `db:"-" json:"asset_name"`
	Quantity      int       `db:"quantity" json:"quantity"`
	CreatedAt     time.Time `db:"created_at" json:"created_at"`
	TransferIn    int       `db:"transfer_in" json:"transfer_in"`
	TransferOut   int       `db:"transfer_out" json:"transfer_out"`
}
