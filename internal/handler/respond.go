package handler

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/amorty-hall/api/internal/store"
	"github.com/amorty-hall/api/internal/table"
)

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("ERROR: failed to encode JSON response: %v", err)
	}
}

// listResponse is the common envelope every entity list endpoint
// returns. Columns and Rows are populated only for view=table
// requests.
type listResponse[T any] struct {
	Records    []T        `json:"records"`
	Total      int        `json:"total"`
	Filtered   int        `json:"filtered"`
	EmptyState string     `json:"emptyState,omitempty"`
	Columns    []string   `json:"columns,omitempty"`
	Rows       [][]string `json:"rows,omitempty"`
}

// listCollection runs the table engine over a collection for a list
// request: ?search= filters (against searchKey when the screen
// designates one), ?sort=&dir= orders, ?view=table adds the rendered
// grid.
func listCollection[T store.Record](w http.ResponseWriter, r *http.Request, cols []table.Column[T], coll *store.Collection[T], searchKey string) {
	records, err := coll.Load(r.Context())
	if err != nil {
		log.Printf("ERROR: list %s: %v", coll.Key(), err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		return
	}

	q := table.Query{
		Search:    r.URL.Query().Get("search"),
		SearchKey: searchKey,
		SortKey:   r.URL.Query().Get("sort"),
		Dir:       r.URL.Query().Get("dir"),
	}
	result := table.Apply(cols, records, q)

	resp := listResponse[T]{
		Records:    result.Records,
		Total:      result.Total,
		Filtered:   result.Filtered,
		EmptyState: result.EmptyState,
	}
	if r.URL.Query().Get("view") == "table" {
		resp.Columns = table.Headers(cols)
		resp.Rows = table.Rows(cols, result.Records)
	}

	writeJSON(w, http.StatusOK, resp)
}

// getRecord fetches one record by path id, translating ErrNotFound to
// a 404.
func getRecord[T store.Record](w http.ResponseWriter, r *http.Request, coll *store.Collection[T], id, name string) (T, bool) {
	rec, err := coll.Get(r.Context(), id)
	if err != nil {
		var zero T
		if errors.Is(err, store.ErrNotFound) {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": name + " not found"})
			return zero, false
		}
		log.Printf("ERROR: get %s: %v", coll.Key(), err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		return zero, false
	}
	return rec, true
}
