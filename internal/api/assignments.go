package api

import (
	"log/slog"
	"net/http"

	"github.com/jmoiron/sqlx"

	"github.com/Thanushree0531-aradhya/military-assets-backend/internal/model"
	"github.com/Thanushree0531-aradhya/military-assets-backend/internal/store"
)

// AssignmentsHandler handles assignment endpoints.
type AssignmentsHandler struct {
	DB *sqlx.DB
}

type createAssignmentRequest struct {
	BaseID        int64  `json:"base_id"`
	EquipmentType string `json:"equipment_type"`
	Quantity      int    `json:"quantity"`
	AssignedTo    string `json:"assigned_to"`
	Reason        string `json:"reason"`
}

// Create handles POST /api/assignments.
func (h *AssignmentsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createAssignmentRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.BaseID <= 0 || req.EquipmentType == "" || req.Quantity == 0 || req.AssignedTo == "" || req.Reason == "" {
		jsonError(w, http.StatusBadRequest, "all fields are required")
		return
	}
	if req.Quantity < 0 {
		jsonError(w, http.StatusBadRequest, "quantity must be a positive number")
		return
	}

	assignment, err := store.CreateAssignment(r.Context(), h.DB, req.BaseID, req.EquipmentType, req.Quantity, req.AssignedTo, req.Reason)
	if err != nil {
		slog.Error("assignment creation failed", "error", err)
		jsonError(w, http.StatusInternalServerError, "server error while recording assignment")
		return
	}

	claims := GetClaims(r.Context())
	slog.Info("assignment recorded", "user_id", claims.UserID,
		"base", assignment.BaseName, "assigned_to", assignment.AssignedTo)
	jsonResponse(w, http.StatusCreated, map[string]any{
		"message":    "Assignment recorded successfully",
		"assignment": assignment,
	})
}

// List handles GET /api/assignments. Assignments are not base-scoped.
func (h *AssignmentsHandler) List(w http.ResponseWriter, r *http.Request) {
	assignments, err := store.ListAssignments(r.Context(), h.DB)
	if err != nil {
		slog.Error("failed to list assignments", "error", err)
		jsonError(w, http.StatusInternalServerError, "server error while fetching assignments")
		return
	}
	if assignments == nil {
		assignments = []model.Assignment{}
	}
	jsonResponse(w, http.StatusOK, assignments)
}
