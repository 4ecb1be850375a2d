package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/amorty-hall/api/internal/enum"
	"github.com/amorty-hall/api/internal/model"
	"github.com/amorty-hall/api/internal/store"
	"github.com/amorty-hall/api/internal/table"
)

var tableColumns = []table.Column[model.BilliardTable]{
	{Key: "tableNumber", Label: "Table #", Sortable: true, Value: func(t model.BilliardTable) any { return t.TableNumber }},
	{Key: "type", Label: "Type", Sortable: true, Value: func(t model.BilliardTable) any { return t.Type }},
	{Key: "status", Label: "Status", Value: func(t model.BilliardTable) any { return t.Status }},
	{Key: "hourlyRate", Label: "Hourly Rate", Sortable: true, Value: func(t model.BilliardTable) any { return t.HourlyRate },
		Render: func(t model.BilliardTable) string { return fmt.Sprintf("$%.2f/hr", t.HourlyRate) }},
	{Key: "location", Label: "Location", Value: func(t model.BilliardTable) any { return t.Location }},
	{Key: "condition", Label: "Condition", Value: func(t model.BilliardTable) any { return t.Condition }},
}

// BilliardTableHandler handles the billiard table screen's CRUD
// endpoints.
type BilliardTableHandler struct {
	tables *store.Collection[model.BilliardTable]
}

// NewBilliardTableHandler creates a new BilliardTableHandler.
func NewBilliardTableHandler(tables *store.Collection[model.BilliardTable]) *BilliardTableHandler {
	return &BilliardTableHandler{tables: tables}
}

// RegisterRoutes registers table endpoints on the given router.
func (h *BilliardTableHandler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Route("/{id}", func(r chi.Router) {
		r.Get("/", h.Get)
		r.Put("/", h.Update)
		r.Delete("/", h.Delete)
	})
}

type billiardTableRequest struct {
	TableNumber int                 `json:"tableNumber"`
	Type        enum.TableType      `json:"type"`
	Status      enum.TableStatus    `json:"status"`
	HourlyRate  float64             `json:"hourlyRate"`
	Location    string              `json:"location"`
	Condition   enum.TableCondition `json:"condition"`
}

func (req *billiardTableRequest) validate() string {
	if req.TableNumber <= 0 {
		return "tableNumber is required"
	}
	if !enum.Valid(req.Type, enum.AllTableTypes()) {
		return "invalid type"
	}
	if req.Status == "" {
		req.Status = enum.TableAvailable
	}
	if !enum.Valid(req.Status, enum.AllTableStatuses()) {
		return "invalid status"
	}
	if req.HourlyRate < 0 {
		return "hourlyRate must not be negative"
	}
	if req.Condition == "" {
		req.Condition = enum.ConditionGood
	}
	if !enum.Valid(req.Condition, enum.AllTableConditions()) {
		return "invalid condition"
	}
	return ""
}

func (req *billiardTableRequest) toRecord(id string) model.BilliardTable {
	return model.BilliardTable{
		ID:          id,
		TableNumber: req.TableNumber,
		Type:        req.Type,
		Status:      req.Status,
		HourlyRate:  req.HourlyRate,
		Location:    req.Location,
		Condition:   req.Condition,
	}
}

// List returns tables with optional search (by location), sort, and
// table view.
func (h *BilliardTableHandler) List(w http.ResponseWriter, r *http.Request) {
	listCollection(w, r, tableColumns, h.tables, "location")
}

// Get returns a single billiard table by ID.
func (h *BilliardTableHandler) Get(w http.ResponseWriter, r *http.Request) {
	bt, ok := getRecord(w, r, h.tables, chi.URLParam(r, "id"), "table")
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, bt)
}

// Create adds a new billiard table with a freshly generated id.
func (h *BilliardTableHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req billiardTableRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	if msg := req.validate(); msg != "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": msg})
		return
	}

	bt := req.toRecord(uuid.NewString())
	if err := h.tables.Insert(r.Context(), bt); err != nil {
		log.Printf("ERROR: create table: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		return
	}

	writeJSON(w, http.StatusCreated, bt)
}

// Update replaces an existing billiard table; the id is immutable.
func (h *BilliardTableHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req billiardTableRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	if msg := req.validate(); msg != "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": msg})
		return
	}

	bt := req.toRecord(chi.URLParam(r, "id"))
	if err := h.tables.Update(r.Context(), bt); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "table not found"})
			return
		}
		log.Printf("ERROR: update table: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		return
	}

	writeJSON(w, http.StatusOK, bt)
}

// Delete removes a billiard table from the collection.
func (h *BilliardTableHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.tables.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "table not found"})
			return
		}
		log.Printf("ERROR: delete table: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
