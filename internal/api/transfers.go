package api

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/jmoiron/sqlx"

	"github.com/Thanushree0531-aradhya/military-assets-backend/internal/model"
	"github.com/Thanushree0531-aradhya/military-assets-backend/internal/scope"
	"github.com/Thanushree0531-aradhya/military-assets-backend/internal/store"
)

// TransfersHandler handles transfer endpoints.
type TransfersHandler struct {
	DB *sqlx.DB
}

type createTransferRequest struct {
	FromBase      json.RawMessage `json:"from_base"`
	ToBase        json.RawMessage `json:"to_base"`
	EquipmentType string          `json:"equipment_type"`
	Quantity      int             `json:"quantity"`
}

// resolveBaseRef accepts either a base id (number or numeric string) or a
// base name (case-insensitive) and resolves it to an id.
func resolveBaseRef(ctx context.Context, db *sqlx.DB, raw json.RawMessage) (int64, error) {
	if len(raw) == 0 {
		return 0, fmt.Errorf("base is required")
	}

	var id int64
	if err := json.Unmarshal(raw, &id); err == nil {
		return id, nil
	}

	var name string
	if err := json.Unmarshal(raw, &name); err != nil {
		return 0, fmt.Errorf("invalid base reference")
	}
	if id, err := strconv.ParseInt(name, 10, 64); err == nil {
		return id, nil
	}

	base, err := store.GetBaseByName(ctx, db, name)
	if err != nil {
		return 0, err
	}
	if base == nil {
		return 0, fmt.Errorf("invalid base name: %s", name)
	}
	return base.ID, nil
}

// Create handles POST /api/transfers. Numeric equipment input is stored as
// a product reference, textual input as a free-text label.
func (h *TransfersHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createTransferRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if len(req.FromBase) == 0 || len(req.ToBase) == 0 || req.EquipmentType == "" || req.Quantity == 0 {
		jsonError(w, http.StatusBadRequest, "all fields are required")
		return
	}
	if req.Quantity < 0 {
		jsonError(w, http.StatusBadRequest, "quantity must be a positive number")
		return
	}

	fromBase, err := resolveBaseRef(r.Context(), h.DB, req.FromBase)
	if err != nil {
		jsonError(w, http.StatusBadRequest, err.Error())
		return
	}
	toBase, err := resolveBaseRef(r.Context(), h.DB, req.ToBase)
	if err != nil {
		jsonError(w, http.StatusBadRequest, err.Error())
		return
	}
	if fromBase == toBase {
		jsonError(w, http.StatusBadRequest, "from base and to base cannot be the same")
		return
	}

	var productID *int64
	var equipmentType *string
	if id, err := strconv.ParseInt(req.EquipmentType, 10, 64); err == nil {
		productID = &id
	} else {
		equipmentType = &req.EquipmentType
	}

	transfer, err := store.CreateTransfer(r.Context(), h.DB, fromBase, toBase, productID, equipmentType, req.Quantity)
	if err != nil {
		jsonError(w, http.StatusBadRequest, err.Error())
		return
	}

	claims := GetClaims(r.Context())
	slog.Info("transfer recorded", "user_id", claims.UserID,
		"from", transfer.FromBaseName, "to", transfer.ToBaseName, "quantity", transfer.Quantity)
	jsonResponse(w, http.StatusCreated, map[string]any{
		"message":  "Transfer recorded successfully",
		"transfer": transfer,
	})
}

// List handles GET /api/transfers, filtered through the caller's
// visibility scope: a commander sees transfers touching their base on
// either end.
func (h *TransfersHandler) List(w http.ResponseWriter, r *http.Request) {
	claims := GetClaims(r.Context())

	sc, err := scope.Resolve(claims.Role, claims.BaseID)
	if err != nil {
		jsonError(w, http.StatusForbidden, "access denied: insufficient permissions")
		return
	}
	if sc.Empty() {
		jsonResponse(w, http.StatusOK, map[string]any{
			"message":   noBaseMessage,
			"transfers": []model.Transfer{},
		})
		return
	}

	transfers, err := store.ListTransfers(r.Context(), h.DB, sc)
	if err != nil {
		slog.Error("failed to list transfers", "error", err)
		jsonError(w, http.StatusInternalServerError, "server error while fetching transfers")
		return
	}
	if transfers == nil {
		transfers = []model.Transfer{}
	}
	jsonResponse(w, http.StatusOK, transfers)
}
