package table_test

import (
	"reflect"
	"testing"

	"github.com/amorty-hall/api/internal/table"
)

type item struct {
	Name      string
	Price     float64
	Stock     int
	Available bool
	Tags      []string
}

var itemColumns = []table.Column[item]{
	{Key: "name", Label: "Name", Sortable: true, Value: func(i item) any { return i.Name }},
	{Key: "price", Label: "Price", Sortable: true, Value: func(i item) any { return i.Price }},
	{Key: "stock", Label: "Stock", Sortable: true, Value: func(i item) any { return i.Stock }},
	{Key: "available", Label: "Available", Value: func(i item) any { return i.Available }},
	{Key: "tags", Label: "Tags", Value: func(i item) any { return i.Tags }},
}

var items = []item{
	{Name: "Cheeseburger", Price: 8.50, Stock: 12, Available: true, Tags: []string{"beef", "lunch"}},
	{Name: "Iced Latte", Price: 4.50, Stock: 30, Available: true},
	{Name: "Chicken Wings", Price: 7.00, Stock: 0, Available: false, Tags: []string{"spicy"}},
}

func names(records []item) []string {
	out := make([]string, len(records))
	for i, rec := range records {
		out[i] = rec.Name
	}
	return out
}

func TestApplyNoQuery(t *testing.T) {
	result := table.Apply(itemColumns, items, table.Query{})

	if result.Total != 3 || result.Filtered != 3 {
		t.Errorf("got total=%d filtered=%d, want 3/3", result.Total, result.Filtered)
	}
	if result.EmptyState != table.EmptyNone {
		t.Errorf("emptyState: got %q, want none", result.EmptyState)
	}
	if !reflect.DeepEqual(names(result.Records), []string{"Cheeseburger", "Iced Latte", "Chicken Wings"}) {
		t.Errorf("order changed: %v", names(result.Records))
	}
}

func TestApplySearchCaseInsensitive(t *testing.T) {
	result := table.Apply(itemColumns, items, table.Query{Search: "CHEESE"})

	if result.Filtered != 1 {
		t.Fatalf("filtered: got %d, want 1", result.Filtered)
	}
	if result.Records[0].Name != "Cheeseburger" {
		t.Errorf("got %q", result.Records[0].Name)
	}
}

func TestApplySearchKeyRestrictsColumns(t *testing.T) {
	// "spicy" only appears in the tags column; a name-keyed search
	// must not see it.
	result := table.Apply(itemColumns, items, table.Query{Search: "spicy", SearchKey: "name"})
	if result.Filtered != 0 {
		t.Errorf("name search: got %d matches, want 0", result.Filtered)
	}

	result = table.Apply(itemColumns, items, table.Query{Search: "spicy"})
	if result.Filtered != 1 {
		t.Errorf("all-column search: got %d matches, want 1", result.Filtered)
	}
}

func TestApplyEmptyStates(t *testing.T) {
	result := table.Apply(itemColumns, nil, table.Query{})
	if result.EmptyState != table.EmptyNoRecords {
		t.Errorf("empty collection: got %q, want %q", result.EmptyState, table.EmptyNoRecords)
	}

	result = table.Apply(itemColumns, items, table.Query{Search: "zzz"})
	if result.EmptyState != table.EmptyNoMatches {
		t.Errorf("no matches: got %q, want %q", result.EmptyState, table.EmptyNoMatches)
	}
	if result.Total != 3 {
		t.Errorf("total must still count all records, got %d", result.Total)
	}
}

func TestApplySortNumeric(t *testing.T) {
	result := table.Apply(itemColumns, items, table.Query{SortKey: "price"})
	if !reflect.DeepEqual(names(result.Records), []string{"Iced Latte", "Chicken Wings", "Cheeseburger"}) {
		t.Errorf("asc: %v", names(result.Records))
	}

	result = table.Apply(itemColumns, items, table.Query{SortKey: "price", Dir: "desc"})
	if !reflect.DeepEqual(names(result.Records), []string{"Cheeseburger", "Chicken Wings", "Iced Latte"}) {
		t.Errorf("desc: %v", names(result.Records))
	}
}

func TestApplySortString(t *testing.T) {
	result := table.Apply(itemColumns, items, table.Query{SortKey: "name"})
	if !reflect.DeepEqual(names(result.Records), []string{"Cheeseburger", "Chicken Wings", "Iced Latte"}) {
		t.Errorf("got %v", names(result.Records))
	}
}

func TestApplySortUnknownKeyKeepsOrder(t *testing.T) {
	result := table.Apply(itemColumns, items, table.Query{SortKey: "nonsense"})
	if !reflect.DeepEqual(names(result.Records), names(items)) {
		t.Errorf("order changed: %v", names(result.Records))
	}
}

func TestApplySortUnsortableKeyKeepsOrder(t *testing.T) {
	// "available" is declared without Sortable.
	result := table.Apply(itemColumns, items, table.Query{SortKey: "available"})
	if !reflect.DeepEqual(names(result.Records), names(items)) {
		t.Errorf("order changed: %v", names(result.Records))
	}
}

func TestCellFormatting(t *testing.T) {
	rows := table.Rows(itemColumns, items)

	// Currency column
	if rows[0][1] != "$8.50" {
		t.Errorf("price cell: got %q, want $8.50", rows[0][1])
	}
	// Booleans
	if rows[0][3] != "Yes" || rows[2][3] != "No" {
		t.Errorf("available cells: got %q/%q", rows[0][3], rows[2][3])
	}
	// Zero numeric renders as a dash
	if rows[2][2] != "-" {
		t.Errorf("zero stock cell: got %q, want -", rows[2][2])
	}
	// String slices join with commas
	if rows[0][4] != "beef, lunch" {
		t.Errorf("tags cell: got %q", rows[0][4])
	}
	// Empty values render as a dash
	if rows[1][4] != "-" {
		t.Errorf("empty tags cell: got %q, want -", rows[1][4])
	}
}

func TestCellCustomRender(t *testing.T) {
	col := table.Column[item]{
		Key:    "stock",
		Label:  "Stock",
		Value:  func(i item) any { return i.Stock },
		Render: func(i item) string { return "custom" },
	}
	if got := table.Cell(col, items[0]); got != "custom" {
		t.Errorf("got %q, want custom", got)
	}
}

func TestHeaders(t *testing.T) {
	want := []string{"Name", "Price", "Stock", "Available", "Tags"}
	if got := table.Headers(itemColumns); !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestApplySortStable(t *testing.T) {
	records := []item{
		{Name: "B", Price: 5},
		{Name: "A", Price: 5},
		{Name: "C", Price: 5},
	}
	result := table.Apply(itemColumns, records, table.Query{SortKey: "price"})
	if !reflect.DeepEqual(names(result.Records), []string{"B", "A", "C"}) {
		t.Errorf("equal keys must keep input order, got %v", names(result.Records))
	}
}
