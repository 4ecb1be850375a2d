package handler

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/xuri/excelize/v2"

	"github.com/amorty-hall/api/internal/store"
	"github.com/amorty-hall/api/internal/table"
)

// ReportsHandler exports any entity's table view as a spreadsheet,
// using the same column specs and cell formatting the screens render
// with.
type ReportsHandler struct {
	collections *store.Collections
}

// NewReportsHandler creates a new ReportsHandler.
func NewReportsHandler(collections *store.Collections) *ReportsHandler {
	return &ReportsHandler{collections: collections}
}

// RegisterRoutes registers report endpoints.
func (h *ReportsHandler) RegisterRoutes(r chi.Router) {
	r.Get("/{entity}/export", h.Export)
}

// Export writes an .xlsx of the requested entity's records.
func (h *ReportsHandler) Export(w http.ResponseWriter, r *http.Request) {
	entity := chi.URLParam(r, "entity")

	headers, rows, err := h.sheetData(r.Context(), entity)
	if err != nil {
		log.Printf("ERROR: export %s: %v", entity, err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		return
	}
	if headers == nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "unknown entity"})
		return
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	if err := f.SetSheetRow(sheet, "A1", &headers); err != nil {
		log.Printf("ERROR: export %s: %v", entity, err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		return
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			log.Printf("ERROR: export %s: %v", entity, err)
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
			return
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			log.Printf("ERROR: export %s: %v", entity, err)
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
			return
		}
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", entity+".xlsx"))
	if err := f.Write(w); err != nil {
		log.Printf("ERROR: export %s: write response: %v", entity, err)
	}
}

// sheetData renders an entity's grid. A nil headers slice means the
// entity name is unknown.
func (h *ReportsHandler) sheetData(ctx context.Context, entity string) ([]string, [][]string, error) {
	switch entity {
	case store.KeyCustomers:
		return sheet(ctx, customerColumns, h.collections.Customers)
	case store.KeyEmployees:
		return sheet(ctx, employeeColumns, h.collections.Employees)
	case store.KeyMenu:
		return sheet(ctx, menuColumns, h.collections.Menu)
	case store.KeyTables:
		return sheet(ctx, tableColumns, h.collections.Tables)
	case store.KeyOrders:
		return sheet(ctx, orderColumns, h.collections.Orders)
	case store.KeyPayments:
		return sheet(ctx, paymentColumns, h.collections.Payments)
	case store.KeyReservations:
		return sheet(ctx, reservationColumns, h.collections.Reservations)
	case store.KeyRentals:
		return sheet(ctx, rentalColumns, h.collections.Rentals)
	default:
		return nil, nil, nil
	}
}

func sheet[T store.Record](ctx context.Context, cols []table.Column[T], coll *store.Collection[T]) ([]string, [][]string, error) {
	records, err := coll.Load(ctx)
	if err != nil {
		return nil, nil, err
	}
	return table.Headers(cols), table.Rows(cols, records), nil
}
