package api

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/jmoiron/sqlx"

	"github.com/Thanushree0531-aradhya/military-assets-backend/internal/model"
	"github.com/Thanushree0531-aradhya/military-assets-backend/internal/store"
)

// ExpendituresHandler handles expenditure endpoints.
type ExpendituresHandler struct {
	DB *sqlx.DB
}

type expenditureRequest struct {
	BaseID        int64   `json:"base_id"`
	EquipmentType string  `json:"equipment_type"`
	Quantity      int     `json:"quantity"`
	AssignedTo    *string `json:"assigned_to"`
	Reason        string  `json:"reason"`
}

func (req *expenditureRequest) validate() string {
	if req.BaseID <= 0 || req.EquipmentType == "" || req.Quantity == 0 || req.Reason == "" {
		return "missing required fields"
	}
	if req.Quantity < 0 {
		return "quantity must be a positive number"
	}
	return ""
}

// Create handles POST /api/expenditures. AssignedTo is optional.
func (h *ExpendituresHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req expenditureRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if msg := req.validate(); msg != "" {
		jsonError(w, http.StatusBadRequest, msg)
		return
	}

	expenditure, err := store.CreateExpenditure(r.Context(), h.DB, req.BaseID, req.EquipmentType, req.Quantity, req.AssignedTo, req.Reason)
	if err != nil {
		slog.Error("expenditure creation failed", "error", err)
		jsonError(w, http.StatusInternalServerError, "error saving expenditure")
		return
	}

	jsonResponse(w, http.StatusCreated, expenditure)
}

// Update handles PUT /api/expenditures/{id}, the one in-place edit in the
// system.
func (h *ExpendituresHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid expenditure id")
		return
	}

	var req expenditureRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if msg := req.validate(); msg != "" {
		jsonError(w, http.StatusBadRequest, msg)
		return
	}

	expenditure, err := store.UpdateExpenditure(r.Context(), h.DB, id, req.BaseID, req.EquipmentType, req.Quantity, req.AssignedTo, req.Reason)
	if err != nil {
		slog.Error("expenditure update failed", "error", err)
		jsonError(w, http.StatusInternalServerError, "error updating expenditure")
		return
	}
	if expenditure == nil {
		jsonError(w, http.StatusNotFound, "expenditure not found")
		return
	}

	jsonResponse(w, http.StatusOK, expenditure)
}

// List handles GET /api/expenditures.
func (h *ExpendituresHandler) List(w http.ResponseWriter, r *http.Request) {
	expenditures, err := store.ListExpenditures(r.Context(), h.DB)
	if err != nil {
		slog.Error("failed to list expenditures", "error", err)
		jsonError(w, http.StatusInternalServerError, "failed to fetch expenditures")
		return
	}
	if expenditures == nil {
		expenditures = []model.Expenditure{}
	}
	jsonResponse(w, http.StatusOK, expenditures)
}
