package handler

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/amorty-hall/api/internal/enum"
	"github.com/amorty-hall/api/internal/model"
	"github.com/amorty-hall/api/internal/store"
	"github.com/amorty-hall/api/internal/table"
)

// customerColumns drives the customer screen's table, search and
// export.
var customerColumns = []table.Column[model.Customer]{
	{Key: "name", Label: "Name", Sortable: true, Value: func(c model.Customer) any { return c.Name }},
	{Key: "email", Label: "Email", Value: func(c model.Customer) any { return c.Email }},
	{Key: "phone", Label: "Phone", Value: func(c model.Customer) any { return c.Phone }},
	{Key: "membershipType", Label: "Membership", Sortable: true, Value: func(c model.Customer) any { return c.MembershipType }},
	{Key: "joinDate", Label: "Join Date", Sortable: true, Value: func(c model.Customer) any { return c.JoinDate }},
	{Key: "totalSpent", Label: "Total Spent", Sortable: true, Value: func(c model.Customer) any { return c.TotalSpent }},
	{Key: "loyaltyPoints", Label: "Loyalty Points", Sortable: true, Value: func(c model.Customer) any { return c.LoyaltyPoints }},
}

// CustomerHandler handles the customer screen's CRUD endpoints.
type CustomerHandler struct {
	customers *store.Collection[model.Customer]
}

// NewCustomerHandler creates a new CustomerHandler.
func NewCustomerHandler(customers *store.Collection[model.Customer]) *CustomerHandler {
	return &CustomerHandler{customers: customers}
}

// RegisterRoutes registers customer endpoints on the given router.
func (h *CustomerHandler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Route("/{id}", func(r chi.Router) {
		r.Get("/", h.Get)
		r.Put("/", h.Update)
		r.Delete("/", h.Delete)
	})
}

type customerRequest struct {
	Name           string              `json:"name"`
	Email          string              `json:"email"`
	Phone          string              `json:"phone"`
	Address        string              `json:"address"`
	MembershipType enum.MembershipType `json:"membershipType"`
	JoinDate       string              `json:"joinDate"`
	TotalSpent     float64             `json:"totalSpent"`
	LoyaltyPoints  int                 `json:"loyaltyPoints"`
}

func (req *customerRequest) validate() string {
	if req.Name == "" {
		return "name is required"
	}
	if req.Email == "" {
		return "email is required"
	}
	if req.Phone == "" {
		return "phone is required"
	}
	if req.MembershipType == "" {
		req.MembershipType = enum.MembershipRegular
	}
	if !enum.Valid(req.MembershipType, enum.AllMembershipTypes()) {
		return "invalid membershipType"
	}
	if req.TotalSpent < 0 {
		return "totalSpent must not be negative"
	}
	return ""
}

func (req *customerRequest) toRecord(id string) model.Customer {
	joinDate := req.JoinDate
	if joinDate == "" {
		joinDate = time.Now().UTC().Format("2006-01-02")
	}
	return model.Customer{
		ID:             id,
		Name:           req.Name,
		Email:          req.Email,
		Phone:          req.Phone,
		Address:        req.Address,
		MembershipType: req.MembershipType,
		JoinDate:       joinDate,
		TotalSpent:     req.TotalSpent,
		LoyaltyPoints:  req.LoyaltyPoints,
	}
}

// List returns customers with optional search (by name), sort, and
// table view.
func (h *CustomerHandler) List(w http.ResponseWriter, r *http.Request) {
	listCollection(w, r, customerColumns, h.customers, "name")
}

// Get returns a single customer by ID.
func (h *CustomerHandler) Get(w http.ResponseWriter, r *http.Request) {
	customer, ok := getRecord(w, r, h.customers, chi.URLParam(r, "id"), "customer")
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, customer)
}

// Create adds a new customer with a freshly generated id.
func (h *CustomerHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req customerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	if msg := req.validate(); msg != "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": msg})
		return
	}

	customer := req.toRecord(uuid.NewString())
	if err := h.customers.Insert(r.Context(), customer); err != nil {
		log.Printf("ERROR: create customer: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		return
	}

	writeJSON(w, http.StatusCreated, customer)
}

// Update replaces an existing customer; the id is immutable.
func (h *CustomerHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req customerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	if msg := req.validate(); msg != "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": msg})
		return
	}

	customer := req.toRecord(chi.URLParam(r, "id"))
	if err := h.customers.Update(r.Context(), customer); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "customer not found"})
			return
		}
		log.Printf("ERROR: update customer: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		return
	}

	writeJSON(w, http.StatusOK, customer)
}

// Delete removes a customer from the collection.
func (h *CustomerHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.customers.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "customer not found"})
			return
		}
		log.Printf("ERROR: delete customer: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
