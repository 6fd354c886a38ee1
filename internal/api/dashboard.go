package api

import (
	"log/slog"
	"net/http"

	"github.com/jmoiron/sqlx"

	"github.com/Thanushree0531-aradhya/military-assets-backend/internal/store"
)

// DashboardHandler handles dashboard endpoints.
type DashboardHandler struct {
	DB *sqlx.DB
}

// Stats handles GET /api/dashboard/stats.
func (h *DashboardHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := store.GetStats(r.Context(), h.DB)
	if err != nil {
		slog.Error("failed to fetch dashboard stats", "error", err)
		jsonError(w, http.StatusInternalServerError, "server error fetching stats")
		return
	}
	jsonResponse(w, http.StatusOK, stats)
}

// Logistics handles GET /api/dashboard/logistics.
func (h *DashboardHandler) Logistics(w http.ResponseWriter, r *http.Request) {
	jsonResponse(w, http.StatusOK, map[string]string{
		"message": "Welcome Logistics Officer! You can manage purchases and transfers.",
	})
}

// Me handles GET /api/dashboard/me: echoes the authenticated caller's
// claims.
func (h *DashboardHandler) Me(w http.ResponseWriter, r *http.Request) {
	claims := GetClaims(r.Context())
	jsonResponse(w, http.StatusOK, map[string]any{"user": claims})
}
