package api

import (
	"log/slog"
	"net/http"

	"github.com/jmoiron/sqlx"

	"github.com/Thanushree0531-aradhya/military-assets-backend/internal/model"
	"github.com/Thanushree0531-aradhya/military-assets-backend/internal/store"
)

// BasesHandler handles base reference endpoints. Bases are read-only seed
// data.
type BasesHandler struct {
	DB *sqlx.DB
}

// List handles GET /api/bases.
func (h *BasesHandler) List(w http.ResponseWriter, r *http.Request) {
	bases, err := store.ListBases(r.Context(), h.DB)
	if err != nil {
		slog.Error("failed to list bases", "error", err)
		jsonError(w, http.StatusInternalServerError, "failed to fetch bases")
		return
	}
	if bases == nil {
		bases = []model.Base{}
	}
	jsonResponse(w, http.StatusOK, bases)
}

// Dropdown handles GET /api/bases/dropdown: id and name only, ordered by
// name.
func (h *BasesHandler) Dropdown(w http.ResponseWriter, r *http.Request) {
	bases, err := store.ListBasesByName(r.Context(), h.DB)
	if err != nil {
		slog.Error("failed to list bases", "error", err)
		jsonError(w, http.StatusInternalServerError, "failed to fetch bases for dropdown")
		return
	}

	type option struct {
		ID   int64  `json:"id"`
		Name string `json:"name"`
	}
	options := make([]option, 0, len(bases))
	for _, b := range bases {
		options = append(options, option{ID: b.ID, Name: b.Name})
	}
	jsonResponse(w, http.StatusOK, options)
}
