package api

import (
	"log/slog"
	"net/http"

	"github.com/jmoiron/sqlx"

	"github.com/Thanushree0531-aradhya/military-assets-backend/internal/model"
	"github.com/Thanushree0531-aradhya/military-assets-backend/internal/scope"
	"github.com/Thanushree0531-aradhya/military-assets-backend/internal/store"
)

// noBaseMessage is returned when a base commander without a base assignment
// queries scoped data. The request succeeds with an empty result instead of
// failing; the frontend shows the message as-is.
const noBaseMessage = "No base assigned to your account"

// PurchasesHandler handles purchase endpoints.
type PurchasesHandler struct {
	DB *sqlx.DB
}

type createPurchaseRequest struct {
	BaseID        int64  `json:"base_id"`
	EquipmentType string `json:"equipment_type"`
	Quantity      int    `json:"quantity"`
}

// Create handles POST /api/purchases.
func (h *PurchasesHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createPurchaseRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.BaseID <= 0 || req.EquipmentType == "" || req.Quantity == 0 {
		jsonError(w, http.StatusBadRequest, "all fields are required")
		return
	}
	if req.Quantity < 0 {
		jsonError(w, http.StatusBadRequest, "quantity must be a positive number")
		return
	}

	base, err := store.GetBase(r.Context(), h.DB, req.BaseID)
	if err != nil {
		slog.Error("purchase base lookup failed", "error", err)
		jsonError(w, http.StatusInternalServerError, "server error while recording purchase")
		return
	}
	if base == nil {
		jsonError(w, http.StatusBadRequest, "invalid base")
		return
	}

	purchase, err := store.CreatePurchase(r.Context(), h.DB, req.BaseID, req.EquipmentType, req.Quantity)
	if err != nil {
		slog.Error("purchase creation failed", "error", err)
		jsonError(w, http.StatusInternalServerError, "server error while recording purchase")
		return
	}

	claims := GetClaims(r.Context())
	slog.Info("purchase recorded", "user_id", claims.UserID, "base", base.Name,
		"equipment", purchase.EquipmentType, "quantity", purchase.Quantity)
	jsonResponse(w, http.StatusCreated, map[string]any{
		"message":  "Purchase recorded successfully",
		"purchase": purchase,
	})
}

// List handles GET /api/purchases. Rows are filtered through the caller's
// visibility scope and carry transfer_in/transfer_out movement sums.
func (h *PurchasesHandler) List(w http.ResponseWriter, r *http.Request) {
	claims := GetClaims(r.Context())

	sc, err := scope.Resolve(claims.Role, claims.BaseID)
	if err != nil {
		jsonError(w, http.StatusForbidden, "access denied: insufficient permissions")
		return
	}
	if sc.Empty() {
		jsonResponse(w, http.StatusOK, map[string]any{
			"message":   noBaseMessage,
			"purchases": []model.Purchase{},
		})
		return
	}

	purchases, err := store.ListPurchases(r.Context(), h.DB, sc)
	if err != nil {
		slog.Error("failed to list purchases", "error", err)
		jsonError(w, http.StatusInternalServerError, "server error while fetching purchases")
		return
	}
	if purchases == nil {
		purchases = []model.Purchase{}
	}
	jsonResponse(w, http.StatusOK, purchases)
}
