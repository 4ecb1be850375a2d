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

var employeeColumns = []table.Column[model.Employee]{
	{Key: "name", Label: "Name", Sortable: true, Value: func(e model.Employee) any { return e.Name }},
	{Key: "position", Label: "Position", Sortable: true, Value: func(e model.Employee) any { return e.Position }},
	{Key: "department", Label: "Department", Sortable: true, Value: func(e model.Employee) any { return e.Department }},
	{Key: "salary", Label: "Salary", Sortable: true, Value: func(e model.Employee) any { return e.Salary }},
	{Key: "hireDate", Label: "Hire Date", Sortable: true, Value: func(e model.Employee) any { return e.HireDate }},
	{Key: "status", Label: "Status", Value: func(e model.Employee) any { return e.Status }},
	{Key: "shift", Label: "Shift", Value: func(e model.Employee) any { return e.Shift }},
}

// EmployeeHandler handles the employee screen's CRUD endpoints.
type EmployeeHandler struct {
	employees *store.Collection[model.Employee]
}

// NewEmployeeHandler creates a new EmployeeHandler.
func NewEmployeeHandler(employees *store.Collection[model.Employee]) *EmployeeHandler {
	return &EmployeeHandler{employees: employees}
}

// RegisterRoutes registers employee endpoints on the given router.
func (h *EmployeeHandler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Route("/{id}", func(r chi.Router) {
		r.Get("/", h.Get)
		r.Put("/", h.Update)
		r.Delete("/", h.Delete)
	})
}

type employeeRequest struct {
	Name       string              `json:"name"`
	Email      string              `json:"email"`
	Phone      string              `json:"phone"`
	Position   string              `json:"position"`
	Department enum.Department     `json:"department"`
	Salary     float64             `json:"salary"`
	HireDate   string              `json:"hireDate"`
	Status     enum.EmployeeStatus `json:"status"`
	Shift      enum.Shift          `json:"shift"`
}

func (req *employeeRequest) validate() string {
	if req.Name == "" {
		return "name is required"
	}
	if req.Position == "" {
		return "position is required"
	}
	if !enum.Valid(req.Department, enum.AllDepartments()) {
		return "invalid department"
	}
	if req.Salary < 0 {
		return "salary must not be negative"
	}
	if req.Status == "" {
		req.Status = enum.EmployeeActive
	}
	if !enum.Valid(req.Status, enum.AllEmployeeStatuses()) {
		return "invalid status"
	}
	if !enum.Valid(req.Shift, enum.AllShifts()) {
		return "invalid shift"
	}
	return ""
}

func (req *employeeRequest) toRecord(id string) model.Employee {
	hireDate := req.HireDate
	if hireDate == "" {
		hireDate = time.Now().UTC().Format("2006-01-02")
	}
	return model.Employee{
		ID:         id,
		Name:       req.Name,
		Email:      req.Email,
		Phone:      req.Phone,
		Position:   req.Position,
		Department: req.Department,
		Salary:     req.Salary,
		HireDate:   hireDate,
		Status:     req.Status,
		Shift:      req.Shift,
	}
}

// List returns employees with optional search (by name), sort, and
// table view.
func (h *EmployeeHandler) List(w http.ResponseWriter, r *http.Request) {
	listCollection(w, r, employeeColumns, h.employees, "name")
}

// Get returns a single employee by ID.
func (h *EmployeeHandler) Get(w http.ResponseWriter, r *http.Request) {
	employee, ok := getRecord(w, r, h.employees, chi.URLParam(r, "id"), "employee")
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, employee)
}

// Create adds a new employee with a freshly generated id.
func (h *EmployeeHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req employeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	if msg := req.validate(); msg != "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": msg})
		return
	}

	employee := req.toRecord(uuid.NewString())
	if err := h.employees.Insert(r.Context(), employee); err != nil {
		log.Printf("ERROR: create employee: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		return
	}

	writeJSON(w, http.StatusCreated, employee)
}

// Update replaces an existing employee; the id is immutable.
func (h *EmployeeHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req employeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	if msg := req.validate(); msg != "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": msg})
		return
	}

	employee := req.toRecord(chi.URLParam(r, "id"))
	if err := h.employees.Update(r.Context(), employee); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "employee not found"})
			return
		}
		log.Printf("ERROR: update employee: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		return
	}

	writeJSON(w, http.StatusOK, employee)
}

// Delete removes an employee from the collection.
func (h *EmployeeHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.employees.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "employee not found"})
			return
		}
		log.Printf("ERROR: delete employee: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
