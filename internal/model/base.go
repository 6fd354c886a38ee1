package model

// Base represents a military installation holding equipment stock.
// Bases are seed data: created by migration, never mutated at runtime.
type Base struct {
	ID       int64  `db:"id" json:"id"`
	Name     string `db:"name" json:"name"`
	Location string `db:"location" json:"location,omitempty"`
}
