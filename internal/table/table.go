// Package table is the generic record-table engine behind every
// entity screen: free-text search, column sorting, and default cell
// formatting over any record type, driven by plain-data column
// descriptors.
package table

import (
	"fmt"
	"sort"
	"strings"
)

// Column describes one table column for record type T. Key identifies
// the column for sort/search requests, Value extracts the raw field,
// and Render overrides the default cell formatting when set.
type Column[T any] struct {
	Key      string
	Label    string
	Sortable bool
	Value    func(T) any
	Render   func(T) string
}

// Query is one view request against a collection.
type Query struct {
	Search    string
	SearchKey string
	SortKey   string
	Dir       string // "asc" (default) or "desc"
}

// Empty states distinguish a collection with no records at all from
// one where nothing matches the current search.
const (
	EmptyNone      = ""
	EmptyNoRecords = "no_records"
	EmptyNoMatches = "no_matches"
)

// Result is the filtered, sorted view of a collection.
type Result[T any] struct {
	Records    []T
	Total      int
	Filtered   int
	EmptyState string
}

// Apply filters and sorts records per the query. Search is a
// case-insensitive substring match on the SearchKey column when one is
// designated, otherwise on the string form of every column's value.
// Sorting compares raw values: numerically for numbers,
// lexicographically for everything else. An unknown or unsortable sort
// key leaves the order untouched.
func Apply[T any](cols []Column[T], records []T, q Query) Result[T] {
	filtered := records
	if q.Search != "" {
		needle := strings.ToLower(q.Search)
		searchCols := cols
		if q.SearchKey != "" {
			if col, ok := findColumn(cols, q.SearchKey); ok {
				searchCols = []Column[T]{col}
			}
		}

		filtered = nil
		for _, rec := range records {
			if matches(searchCols, rec, needle) {
				filtered = append(filtered, rec)
			}
		}
	} else {
		filtered = append([]T(nil), records...)
	}

	if col, ok := findColumn(cols, q.SortKey); ok && col.Sortable {
		desc := q.Dir == "desc"
		sort.SliceStable(filtered, func(i, j int) bool {
			a, b := col.Value(filtered[i]), col.Value(filtered[j])
			if desc {
				return compare(b, a) < 0
			}
			return compare(a, b) < 0
		})
	}

	state := EmptyNone
	if len(filtered) == 0 {
		if len(records) == 0 {
			state = EmptyNoRecords
		} else {
			state = EmptyNoMatches
		}
	}

	return Result[T]{
		Records:    filtered,
		Total:      len(records),
		Filtered:   len(filtered),
		EmptyState: state,
	}
}

// Cell renders one cell. Without a custom renderer: booleans become
// Yes/No, numeric values in price/amount/salary columns are currency
// formatted, and empty values render as a dash.
func Cell[T any](col Column[T], rec T) string {
	if col.Render != nil {
		return col.Render(rec)
	}

	v := col.Value(rec)
	if b, ok := v.(bool); ok {
		if b {
			return "Yes"
		}
		return "No"
	}

	if f, ok := toFloat(v); ok {
		if isCurrencyKey(col.Key) {
			return fmt.Sprintf("$%.2f", f)
		}
		if f == 0 {
			return "-"
		}
		return valueString(v)
	}

	s := valueString(v)
	if s == "" {
		return "-"
	}
	return s
}

// Headers returns the column labels in declaration order.
func Headers[T any](cols []Column[T]) []string {
	labels := make([]string, len(cols))
	for i, col := range cols {
		labels[i] = col.Label
	}
	return labels
}

// Rows renders the full grid with default cell formatting.
func Rows[T any](cols []Column[T], records []T) [][]string {
	rows := make([][]string, len(records))
	for i, rec := range records {
		row := make([]string, len(cols))
		for j, col := range cols {
			row[j] = Cell(col, rec)
		}
		rows[i] = row
	}
	return rows
}

func findColumn[T any](cols []Column[T], key string) (Column[T], bool) {
	for _, col := range cols {
		if col.Key == key && key != "" {
			return col, true
		}
	}
	return Column[T]{}, false
}

func matches[T any](cols []Column[T], rec T, needle string) bool {
	for _, col := range cols {
		if strings.Contains(strings.ToLower(valueString(col.Value(rec))), needle) {
			return true
		}
	}
	return false
}

func isCurrencyKey(key string) bool {
	k := strings.ToLower(key)
	return strings.Contains(k, "price") || strings.Contains(k, "amount") || strings.Contains(k, "salary")
}

func valueString(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case []string:
		return strings.Join(t, ", ")
	case float64:
		return trimFloat(t)
	case float32:
		return trimFloat(float64(t))
	default:
		return fmt.Sprintf("%v", v)
	}
}

func trimFloat(f float64) string {
	s := fmt.Sprintf("%.2f", f)
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}

// compare orders raw field values: numbers numerically, everything
// else by string form. Mixed types fall back to string comparison.
func compare(a, b any) int {
	af, aok := toFloat(a)
	bf, bok := toFloat(b)
	if aok && bok {
		switch {
		case af < bf:
			return -1
		case af > bf:
			return 1
		default:
			return 0
		}
	}
	return strings.Compare(valueString(a), valueString(b))
}

func toFloat(v any) (float64, bool) {
	switch t := v.(type) {
	case int:
		return float64(t), true
	case int32:
		return float64(t), true
	case int64:
		return float64(t), true
	case float32:
		return float64(t), true
	case float64:
		return t, true
	default:
		return 0, false
	}
}
