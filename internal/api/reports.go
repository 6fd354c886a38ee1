package api

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/jmoiron/sqlx"
	"github.com/xuri/excelize/v2"

	"github.com/Thanushree0531-aradhya/military-assets-backend/internal/scope"
	"github.com/Thanushree0531-aradhya/military-assets-backend/internal/store"
)

// ReportsHandler renders ledger exports.
type ReportsHandler struct {
	DB *sqlx.DB
}

// PurchasesXLSX handles GET /api/reports/purchases.xlsx: the purchase
// ledger, scoped like the JSON listing, as a spreadsheet.
func (h *ReportsHandler) PurchasesXLSX(w http.ResponseWriter, r *http.Request) {
	claims := GetClaims(r.Context())

	sc, err := scope.Resolve(claims.Role, claims.BaseID)
	if err != nil {
		jsonError(w, http.StatusForbidden, "access denied: insufficient permissions")
		return
	}

	purchases, err := store.ListPurchases(r.Context(), h.DB, sc)
	if err != nil {
		slog.Error("failed to list purchases for report", "error", err)
		jsonError(w, http.StatusInternalServerError, "server error while building report")
		return
	}

	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	sheet := f.GetSheetName(f.GetActiveSheetIndex())

	header := []any{"id", "base", "equipment_type", "quantity", "transfer_in", "transfer_out", "net_movement", "created_at"}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		slog.Error("failed to build report header", "error", err)
		jsonError(w, http.StatusInternalServerError, "server error while building report")
		return
	}

	row := 2
	for _, p := range purchases {
		cell := fmt.Sprintf("A%d", row)
		values := []any{
			p.ID,
			p.BaseName,
			p.EquipmentType,
			p.Quantity,
			p.TransferIn,
			p.TransferOut,
			p.TransferIn - p.TransferOut,
			p.CreatedAt.Format("02/01/2006 15:04:05"),
		}
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			slog.Error("failed to build report row", "error", err)
			jsonError(w, http.StatusInternalServerError, "server error while building report")
			return
		}
		row++
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="purchases.xlsx"`)
	if err := f.Write(w); err != nil {
		slog.Error("failed to write report", "error", err)
	}
}
