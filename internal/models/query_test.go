package models

import (
	"testing"
)

func TestSearchQuery_Validate(t *testing.T) {
	tests := []struct {
		name    string
		query   *SearchQuery
		wantErr bool
	}{
		{"empty query", &SearchQuery{Query: ""}, true},
		{"valid query", &SearchQuery{Query: "hello"}, false},
		{"filters only", &SearchQuery{Filters: map[string]interface{}{"category": "resistor"}}, false},
		{"sets default limit", &SearchQuery{Query: "x", Limit: 0}, false},
		{"caps limit at 100", &SearchQuery{Query: "x", Limit: 200}, false},
		{"negative offset reset", &SearchQuery{Query: "x", Offset: -5}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.query.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if tt.query.Limit == 0 {
				t.Error("expected default limit to be set")
			}
			if tt.query.Limit > 100 {
				t.Errorf("expected limit capped at 100, got %d", tt.query.Limit)
			}
			if tt.query.Offset < 0 {
				t.Errorf("expected offset reset, got %d", tt.query.Offset)
			}
		})
	}
}

func TestComponent_StockStatus(t *testing.T) {
	tests := []struct {
		name        string
		quantity    int
		minQuantity int
		want        string
	}{
		{"out", 0, 10, StockOut},
		{"negative is out", -1, 10, StockOut},
		{"low", 3, 10, StockLow},
		{"at minimum is available", 10, 10, StockAvailable},
		{"available", 50, 10, StockAvailable},
		{"no minimum", 1, 0, StockAvailable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &Component{Quantity: tt.quantity, MinQuantity: tt.minQuantity}
			if got := c.StockStatus(); got != tt.want {
				t.Errorf("StockStatus() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestComponent_NeedsReorder(t *testing.T) {
	if (&Component{Quantity: 10, MinQuantity: 10}).NeedsReorder() != true {
		t.Error("at minimum should need reorder")
	}
	if (&Component{Quantity: 11, MinQuantity: 10}).NeedsReorder() != false {
		t.Error("above minimum should not need reorder")
	}
}
