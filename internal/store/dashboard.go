package store

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// Stats holds the dashboard totals.
type Stats struct {
	TotalBases     int `json:"totalBases"`
	TotalPurchases int `json:"totalPurchases"`
	TotalTransfers int `json:"totalTransfers"`
}

// GetStats returns the dashboard counts.
func GetStats(ctx context.Context, db *sqlx.DB) (*Stats, error) {
	s := &Stats{}

	counts := []struct {
		query string
		dest  *int
	}{
		{`SELECT COUNT(*) FROM bases`, &s.TotalBases},
		{`SELECT COUNT(*) FROM purchases`, &s.TotalPurchases},
		{`SELECT COUNT(*) FROM transfers`, &s.TotalTransfers},
	}
	for _, c := range counts {
		if err := db.GetContext(ctx, c.dest, c.query); err != nil {
			return nil, fmt.Errorf("counting dashboard stats: %w", err)
		}
	}

	return s, nil
}
