package model

import "time"

// Assignment represents equipment assigned out of a base's stock to
// personnel. Append-only.
type Assignment struct {
	ID            int64     `db:"id" json:"id"`
	BaseID        int64     `db:"base_id" json:"base_id"`
	BaseName      string    `db:"base_name" json:"base_name,omitempty"`
	EquipmentType string    `db:"equipment_type" json:"equipment_type"`
	Quantity      int       `db:"quantity" json:"quantity"`
	AssignedTo    string    `db:"assigned_to" json:"assigned_to"`
	Reason        string    `db:"reason" json:"reason"`
	CreatedAt     time.Time `db:"created_at" json:"created_at"`
}

// Expenditure represents consumed equipment. Unlike the other records it
// supports an in-place edit, and AssignedTo is optional.
type Expenditure struct {
	ID            int64     `db:"id" json:"id"`
	BaseID        int64     `db:"base_id" json:"base_id"`
	BaseName      string    `db:"base_name" json:"base_name,omitempty"`
	EquipmentType string    `db:"equipment_type" json:"equipment_type"`
	Quantity      int       `db:"quantity" json:"quantity"`
	AssignedTo    *string   `db:"assigned_to" json:"assigned_to,omitempty"`
	Reason        string    `db:"reason" json:"reason"`
	CreatedAt     time.Time `db:"created_at" json:"created_at"`
}
