package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/amorty-hall/api/internal/handler"
	"github.com/amorty-hall/api/internal/store"
)

func setupCustomerRouter(c *store.Collections) *chi.Mux {
	h := handler.NewCustomerHandler(c.Customers)
	r := chi.NewRouter()
	r.Route("/customers", h.RegisterRoutes)
	return r
}

func TestCustomerList(t *testing.T) {
	router := setupCustomerRouter(testCollections())

	req := httptest.NewRequest(http.MethodGet, "/customers", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rr.Code)
	}

	resp := decodeResponse(t, rr)
	if resp["total"].(float64) != 2 {
		t.Errorf("expected total 2, got %v", resp["total"])
	}
	if resp["filtered"].(float64) != 2 {
		t.Errorf("expected filtered 2, got %v", resp["filtered"])
	}
}

func TestCustomerListWithSearch(t *testing.T) {
	router := setupCustomerRouter(testCollections())

	// Case-insensitive, matched against the name column
	req := httptest.NewRequest(http.MethodGet, "/customers?search=SITI", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rr.Code)
	}

	resp := decodeResponse(t, rr)
	if resp["filtered"].(float64) != 1 {
		t.Errorf("expected 1 match, got %v", resp["filtered"])
	}
	if resp["total"].(float64) != 2 {
		t.Errorf("total must count all records, got %v", resp["total"])
	}
}

func TestCustomerListNoMatches(t *testing.T) {
	router := setupCustomerRouter(testCollections())

	req := httptest.NewRequest(http.MethodGet, "/customers?search=nonexistent", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	resp := decodeResponse(t, rr)
	if resp["emptyState"] != "no_matches" {
		t.Errorf("expected no_matches, got %v", resp["emptyState"])
	}
}

func TestCustomerListSorted(t *testing.T) {
	router := setupCustomerRouter(testCollections())

	req := httptest.NewRequest(http.MethodGet, "/customers?sort=name&dir=desc", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	recs := records(t, rr)
	first := recs[0].(map[string]interface{})
	if first["name"] != "Siti Rahayu" {
		t.Errorf("expected Siti Rahayu first, got %v", first["name"])
	}
}

func TestCustomerListTableView(t *testing.T) {
	router := setupCustomerRouter(testCollections())

	req := httptest.NewRequest(http.MethodGet, "/customers?view=table", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	resp := decodeResponse(t, rr)
	cols, ok := resp["columns"].([]interface{})
	if !ok {
		t.Fatalf("expected columns in table view, got %v", resp)
	}
	if cols[0] != "Name" {
		t.Errorf("first column: got %v, want Name", cols[0])
	}
	rows, ok := resp["rows"].([]interface{})
	if !ok || len(rows) != 2 {
		t.Fatalf("expected 2 rendered rows, got %v", resp["rows"])
	}
}

func TestCustomerGet(t *testing.T) {
	router := setupCustomerRouter(testCollections())

	req := httptest.NewRequest(http.MethodGet, "/customers/c1", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d; body: %s", rr.Code, rr.Body.String())
	}

	resp := decodeResponse(t, rr)
	if resp["name"] != "Budi Santoso" {
		t.Errorf("name: got %v, want Budi Santoso", resp["name"])
	}
	if resp["membershipType"] != "VIP" {
		t.Errorf("membershipType: got %v, want VIP", resp["membershipType"])
	}
}

func TestCustomerGetNotFound(t *testing.T) {
	router := setupCustomerRouter(testCollections())

	req := httptest.NewRequest(http.MethodGet, "/customers/missing", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Errorf("expected status 404, got %d", rr.Code)
	}
}

func TestCustomerCreate(t *testing.T) {
	collections := testCollections()
	router := setupCustomerRouter(collections)

	body := map[string]interface{}{
		"name":  "Andre Wijaya",
		"email": "andre@example.com",
		"phone": "0855-555",
	}
	bodyJSON, _ := json.Marshal(body)

	req := httptest.NewRequest(http.MethodPost, "/customers", bytes.NewReader(bodyJSON))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d; body: %s", rr.Code, rr.Body.String())
	}

	resp := decodeResponse(t, rr)
	if resp["name"] != "Andre Wijaya" {
		t.Errorf("name: got %v", resp["name"])
	}
	// Omitted membership defaults to Regular
	if resp["membershipType"] != "Regular" {
		t.Errorf("membershipType: got %v, want Regular", resp["membershipType"])
	}
	if resp["id"] == "" {
		t.Error("expected generated id")
	}
	if resp["joinDate"] == "" {
		t.Error("expected defaulted joinDate")
	}
}

func TestCustomerCreateMissingName(t *testing.T) {
	router := setupCustomerRouter(testCollections())

	bodyJSON, _ := json.Marshal(map[string]interface{}{"email": "x@example.com", "phone": "081"})
	req := httptest.NewRequest(http.MethodPost, "/customers", bytes.NewReader(bodyJSON))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rr.Code)
	}
	resp := decodeResponse(t, rr)
	if !strings.Contains(resp["error"].(string), "name is required") {
		t.Errorf("expected 'name is required', got %v", resp["error"])
	}
}

func TestCustomerCreateInvalidMembership(t *testing.T) {
	router := setupCustomerRouter(testCollections())

	bodyJSON, _ := json.Marshal(map[string]interface{}{
		"name": "X", "email": "x@example.com", "phone": "081", "membershipType": "Gold",
	})
	req := httptest.NewRequest(http.MethodPost, "/customers", bytes.NewReader(bodyJSON))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", rr.Code)
	}
}

func TestCustomerUpdate(t *testing.T) {
	collections := testCollections()
	router := setupCustomerRouter(collections)

	bodyJSON, _ := json.Marshal(map[string]interface{}{
		"name": "Budi S.", "email": "budi@example.com", "phone": "0811-111", "membershipType": "Premium",
	})
	req := httptest.NewRequest(http.MethodPut, "/customers/c1", bytes.NewReader(bodyJSON))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d; body: %s", rr.Code, rr.Body.String())
	}

	resp := decodeResponse(t, rr)
	if resp["id"] != "c1" {
		t.Errorf("id must be immutable, got %v", resp["id"])
	}
	if resp["membershipType"] != "Premium" {
		t.Errorf("membershipType: got %v, want Premium", resp["membershipType"])
	}
}

func TestCustomerUpdateNotFound(t *testing.T) {
	router := setupCustomerRouter(testCollections())

	bodyJSON, _ := json.Marshal(map[string]interface{}{
		"name": "Ghost", "email": "g@example.com", "phone": "081",
	})
	req := httptest.NewRequest(http.MethodPut, "/customers/missing", bytes.NewReader(bodyJSON))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Errorf("expected status 404, got %d", rr.Code)
	}
}

func TestCustomerDelete(t *testing.T) {
	collections := testCollections()
	router := setupCustomerRouter(collections)

	req := httptest.NewRequest(http.MethodDelete, "/customers/c1", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusNoContent {
		t.Fatalf("expected status 204, got %d", rr.Code)
	}

	// The other record must survive
	req = httptest.NewRequest(http.MethodGet, "/customers/c2", nil)
	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Errorf("expected c2 to survive, got %d", rr.Code)
	}
}

func TestCustomerDeleteNotFound(t *testing.T) {
	router := setupCustomerRouter(testCollections())

	req := httptest.NewRequest(http.MethodDelete, "/customers/missing", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Errorf("expected status 404, got %d", rr.Code)
	}
}
