package api

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/jmoiron/sqlx"

	"github.com/Thanushree0531-aradhya/military-assets-backend/internal/model"
	"github.com/Thanushree0531-aradhya/military-assets-backend/internal/store"
)

// CommanderHandler handles the base commander asset views.
type CommanderHandler struct {
	DB *sqlx.DB
}

type assetsResponse struct {
	Assets  []model.Purchase `json:"assets"`
	Message string           `json:"message,omitempty"`
}

// Assets handles GET /api/base-commander/assets: the purchases recorded
// for the commander's own base. A commander without a base assignment gets
// an empty list with a message, not an error.
func (h *CommanderHandler) Assets(w http.ResponseWriter, r *http.Request) {
	claims := GetClaims(r.Context())
	if claims.BaseID == nil {
		jsonResponse(w, http.StatusOK, assetsResponse{
			Assets:  []model.Purchase{},
			Message: noBaseMessage,
		})
		return
	}

	h.writeAssets(w, r, *claims.BaseID)
}

// AssetsByBase handles GET /api/base-commander/assets/{baseId}.
func (h *CommanderHandler) AssetsByBase(w http.ResponseWriter, r *http.Request) {
	baseID, err := strconv.ParseInt(r.PathValue("baseId"), 10, 64)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid base id")
		return
	}

	h.writeAssets(w, r, baseID)
}

func (h *CommanderHandler) writeAssets(w http.ResponseWriter, r *http.Request, baseID int64) {
	assets, err := store.ListBaseAssets(r.Context(), h.DB, baseID)
	if err != nil {
		slog.Error("failed to list base assets", "error", err, "base_id", baseID)
		jsonError(w, http.StatusInternalServerError, "server error while fetching base assets")
		return
	}

	resp := assetsResponse{Assets: assets}
	if len(assets) == 0 {
		resp.Assets = []model.Purchase{}
		resp.Message = "No assets found for this base"
	}
	jsonResponse(w, http.StatusOK, resp)
}
