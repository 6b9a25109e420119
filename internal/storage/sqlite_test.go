package storage

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/hyperjump/zaiko/internal/models"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	store, err := NewSQLiteStore(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func f(v float64) *float64 { return &v }

func seedComponents(t *testing.T, store *SQLiteStore) {
	t.Helper()
	ctx := context.Background()
	used := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	components := []*models.Component{
		{
			ID: "r1", Name: "10k resistor", Category: "resistor",
			Manufacturer: "yageo", Package: "0805", Location: "a3",
			Quantity: 200, MinQuantity: 50, UnitPrice: 0.02,
			Resistance: f(10000), LastUsedAt: &used,
		},
		{
			ID: "r2", Name: "4.7k resistor", Category: "resistor",
			Manufacturer: "vishay", Package: "THT", Location: "a3",
			Quantity: 5, MinQuantity: 50, UnitPrice: 0.05,
			Resistance: f(4700),
		},
		{
			ID: "c1", Name: "100nF ceramic capacitor", Category: "capacitor",
			Manufacturer: "murata", Package: "0603", Location: "drawer b2",
			Quantity: 0, MinQuantity: 100, UnitPrice: 0.01,
			Capacitance: f(100e-9),
		},
		{
			ID: "u1", Name: "LM358 opamp", Category: "ic",
			Manufacturer: "texas instruments", Package: "DIP-8", Location: "shelf-3",
			Quantity: 40, MinQuantity: 10, UnitPrice: 0.45,
			Voltage: f(32),
		},
	}
	for _, c := range components {
		if err := store.CreateComponent(ctx, c); err != nil {
			t.Fatal(err)
		}
	}
}

func TestSQLiteStore_CRUD(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	c := &models.Component{
		ID: "r1", Name: "10k resistor", Category: "resistor",
		Quantity: 100, MinQuantity: 20, UnitPrice: 0.02,
		Resistance: f(10000),
	}
	if err := store.CreateComponent(ctx, c); err != nil {
		t.Fatal(err)
	}
	if c.CreatedAt.IsZero() {
		t.Error("CreatedAt should be set")
	}

	got, err := store.GetComponent(ctx, "r1")
	if err != nil {
		t.Fatal(err)
	}
	if got.Name != "10k resistor" || got.Category != "resistor" {
		t.Errorf("got %+v", got)
	}
	if got.Resistance == nil || *got.Resistance != 10000 {
		t.Errorf("resistance = %v", got.Resistance)
	}
	if got.LastUsedAt != nil {
		t.Errorf("expected nil last_used_at, got %v", got.LastUsedAt)
	}

	c.Quantity = 90
	now := time.Now()
	c.LastUsedAt = &now
	if err := store.UpdateComponent(ctx, c); err != nil {
		t.Fatal(err)
	}
	got, _ = store.GetComponent(ctx, "r1")
	if got.Quantity != 90 {
		t.Errorf("expected quantity 90, got %d", got.Quantity)
	}
	if got.LastUsedAt == nil {
		t.Error("expected last_used_at to be set")
	}

	list, err := store.ListComponents(ctx, 0, 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(list) != 1 {
		t.Errorf("expected 1 component, got %d", len(list))
	}

	if err := store.DeleteComponent(ctx, "r1"); err != nil {
		t.Fatal(err)
	}
	if _, err := store.GetComponent(ctx, "r1"); err == nil {
		t.Error("expected error after delete")
	}
}

func TestSQLiteStore_UpdateMissing(t *testing.T) {
	store := newTestStore(t)
	err := store.UpdateComponent(context.Background(), &models.Component{ID: "nope", Name: "x", Category: "y"})
	if err == nil {
		t.Error("expected error updating missing component")
	}
}

func TestSQLiteStore_SearchComponents(t *testing.T) {
	store := newTestStore(t)
	seedComponents(t, store)
	ctx := context.Background()

	tests := []struct {
		name    string
		filters map[string]interface{}
		wantIDs []string
	}{
		{"category", map[string]interface{}{"category": "resistor"}, []string{"r1", "r2"}},
		{"low stock", map[string]interface{}{"stock_status": "low"}, []string{"r2"}},
		{"out of stock", map[string]interface{}{"stock_status": "out"}, []string{"c1"}},
		{"available", map[string]interface{}{"stock_status": "available"}, []string{"r1", "u1"}},
		{"reorder", map[string]interface{}{"stock_status": "reorder"}, []string{"r2", "c1"}},
		{"unused", map[string]interface{}{"stock_status": "unused"}, []string{"r2", "c1", "u1"}},
		{"location substring", map[string]interface{}{"location": "a3"}, []string{"r1", "r2"}},
		{"package", map[string]interface{}{"package": "dip-8"}, []string{"u1"}},
		{"manufacturer", map[string]interface{}{"manufacturer": "murata"}, []string{"c1"}},
		{"resistance within tolerance", map[string]interface{}{"resistance": 10100.0}, []string{"r1"}},
		{"resistance outside tolerance", map[string]interface{}{"resistance": 12000.0}, nil},
		{"capacitance", map[string]interface{}{"capacitance": 100e-9}, []string{"c1"}},
		{"max price", map[string]interface{}{"max_price": 0.02}, []string{"r1", "c1"}},
		{"min price", map[string]interface{}{"min_price": 0.4}, []string{"u1"}},
		{"exact price", map[string]interface{}{"exact_price": 0.05}, []string{"r2"}},
		{"price range", map[string]interface{}{"min_price": 0.02, "max_price": 0.05}, []string{"r1", "r2"}},
		{
			"combined",
			map[string]interface{}{"category": "resistor", "stock_status": "low"},
			[]string{"r2"},
		},
		{"ids", map[string]interface{}{"ids": []string{"u1", "r1"}}, []string{"r1", "u1"}},
		{"empty ids match nothing", map[string]interface{}{"ids": []string{}}, nil},
		{"no filters returns all", map[string]interface{}{}, []string{"r1", "r2", "c1", "u1"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, total, err := store.SearchComponents(ctx, tt.filters, 100, 0)
			if err != nil {
				t.Fatal(err)
			}
			if total != len(tt.wantIDs) {
				t.Errorf("total = %d, want %d", total, len(tt.wantIDs))
			}
			gotIDs := make(map[string]bool, len(got))
			for _, c := range got {
				gotIDs[c.ID] = true
			}
			if len(got) != len(tt.wantIDs) {
				t.Fatalf("got %d components %v, want %d", len(got), gotIDs, len(tt.wantIDs))
			}
			for _, id := range tt.wantIDs {
				if !gotIDs[id] {
					t.Errorf("missing %s in %v", id, gotIDs)
				}
			}
		})
	}
}

func TestSQLiteStore_SearchComponentsPaging(t *testing.T) {
	store := newTestStore(t)
	seedComponents(t, store)
	ctx := context.Background()

	page, total, err := store.SearchComponents(ctx, nil, 2, 0)
	if err != nil {
		t.Fatal(err)
	}
	if total != 4 {
		t.Errorf("total = %d, want 4", total)
	}
	if len(page) != 2 {
		t.Errorf("page size = %d, want 2", len(page))
	}

	rest, _, err := store.SearchComponents(ctx, nil, 2, 2)
	if err != nil {
		t.Fatal(err)
	}
	if len(rest) != 2 {
		t.Errorf("second page size = %d, want 2", len(rest))
	}
}

func TestSQLiteStore_SearchComponentsBadFilter(t *testing.T) {
	store := newTestStore(t)
	_, _, err := store.SearchComponents(context.Background(),
		map[string]interface{}{"stock_status": "plentiful"}, 10, 0)
	if err == nil {
		t.Error("expected error for unknown stock status")
	}
	_, _, err = store.SearchComponents(context.Background(),
		map[string]interface{}{"resistance": "ten"}, 10, 0)
	if err == nil {
		t.Error("expected error for non-numeric value filter")
	}
}

func TestSQLiteStore_GetComponentsByIDs(t *testing.T) {
	store := newTestStore(t)
	seedComponents(t, store)

	got, err := store.GetComponentsByIDs(context.Background(), []string{"u1", "missing", "r2"})
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 || got[0].ID != "u1" || got[1].ID != "r2" {
		t.Errorf("expected [u1 r2] in input order, got %+v", got)
	}
}

func TestSQLiteStore_Facets(t *testing.T) {
	store := newTestStore(t)
	seedComponents(t, store)
	ctx := context.Background()

	categories, err := store.ListCategories(ctx)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"capacitor", "ic", "resistor"}
	if len(categories) != len(want) {
		t.Fatalf("categories = %v, want %v", categories, want)
	}
	for i := range want {
		if categories[i] != want[i] {
			t.Errorf("categories[%d] = %q, want %q", i, categories[i], want[i])
		}
	}

	locations, err := store.ListLocations(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(locations) != 3 {
		t.Errorf("locations = %v, want 3 distinct", locations)
	}
}

func TestSQLiteStore_Counts(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	n, err := store.CountComponents(ctx)
	if err != nil || n != 0 {
		t.Errorf("CountComponents: %v, %d", err, n)
	}

	seedComponents(t, store)
	n, _ = store.CountComponents(ctx)
	if n != 4 {
		t.Errorf("expected 4 components, got %d", n)
	}
	low, _ := store.CountLowStock(ctx)
	if low != 2 {
		t.Errorf("expected 2 at or below minimum, got %d", low)
	}
}
