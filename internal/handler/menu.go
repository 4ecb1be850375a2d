package handler

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/amorty-hall/api/internal/enum"
	"github.com/amorty-hall/api/internal/model"
	"github.com/amorty-hall/api/internal/store"
	"github.com/amorty-hall/api/internal/table"
)

var menuColumns = []table.Column[model.MenuItem]{
	{Key: "name", Label: "Name", Sortable: true, Value: func(m model.MenuItem) any { return m.Name }},
	{Key: "category", Label: "Category", Sortable: true, Value: func(m model.MenuItem) any { return m.Category }},
	{Key: "price", Label: "Price", Sortable: true, Value: func(m model.MenuItem) any { return m.Price }},
	{Key: "ingredients", Label: "Ingredients", Value: func(m model.MenuItem) any { return m.Ingredients }},
	{Key: "availability", Label: "Available", Value: func(m model.MenuItem) any { return m.Availability }},
	{Key: "preparationTime", Label: "Prep (min)", Sortable: true, Value: func(m model.MenuItem) any { return m.PreparationTime }},
}

// MenuHandler handles the cafe menu screen's CRUD endpoints.
type MenuHandler struct {
	menu *store.Collection[model.MenuItem]
}

// NewMenuHandler creates a new MenuHandler.
func NewMenuHandler(menu *store.Collection[model.MenuItem]) *MenuHandler {
	return &MenuHandler{menu: menu}
}

// RegisterRoutes registers menu endpoints on the given router.
func (h *MenuHandler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Route("/{id}", func(r chi.Router) {
		r.Get("/", h.Get)
		r.Put("/", h.Update)
		r.Delete("/", h.Delete)
	})
}

type menuItemRequest struct {
	Name            string            `json:"name"`
	Category        enum.MenuCategory `json:"category"`
	Price           float64           `json:"price"`
	Description     string            `json:"description"`
	Ingredients     []string          `json:"ingredients"`
	Availability    *bool             `json:"availability"`
	PreparationTime int               `json:"preparationTime"`
	ImageURL        string            `json:"imageUrl"`
}

func (req *menuItemRequest) validate() string {
	if req.Name == "" {
		return "name is required"
	}
	if !enum.Valid(req.Category, enum.AllMenuCategories()) {
		return "invalid category"
	}
	if req.Price < 0 {
		return "price must not be negative"
	}
	if req.PreparationTime < 0 {
		return "preparationTime must not be negative"
	}
	return ""
}

func (req *menuItemRequest) toRecord(id string) model.MenuItem {
	availability := true
	if req.Availability != nil {
		availability = *req.Availability
	}
	ingredients := req.Ingredients
	if ingredients == nil {
		ingredients = []string{}
	}
	return model.MenuItem{
		ID:              id,
		Name:            req.Name,
		Category:        req.Category,
		Price:           req.Price,
		Description:     req.Description,
		Ingredients:     ingredients,
		Availability:    availability,
		PreparationTime: req.PreparationTime,
		ImageURL:        req.ImageURL,
	}
}

// List returns menu items with optional search (by name), sort, and
// table view.
func (h *MenuHandler) List(w http.ResponseWriter, r *http.Request) {
	listCollection(w, r, menuColumns, h.menu, "name")
}

// Get returns a single menu item by ID.
func (h *MenuHandler) Get(w http.ResponseWriter, r *http.Request) {
	item, ok := getRecord(w, r, h.menu, chi.URLParam(r, "id"), "menu item")
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, item)
}

// Create adds a new menu item with a freshly generated id.
func (h *MenuHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req menuItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	if msg := req.validate(); msg != "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": msg})
		return
	}

	item := req.toRecord(uuid.NewString())
	if err := h.menu.Insert(r.Context(), item); err != nil {
		log.Printf("ERROR: create menu item: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		return
	}

	writeJSON(w, http.StatusCreated, item)
}

// Update replaces an existing menu item; the id is immutable.
func (h *MenuHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req menuItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	if msg := req.validate(); msg != "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": msg})
		return
	}

	item := req.toRecord(chi.URLParam(r, "id"))
	if err := h.menu.Update(r.Context(), item); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "menu item not found"})
			return
		}
		log.Printf("ERROR: update menu item: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		return
	}

	writeJSON(w, http.StatusOK, item)
}

// Delete removes a menu item from the collection.
func (h *MenuHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.menu.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "menu item not found"})
			return
		}
		log.Printf("ERROR: delete menu item: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
