package nlquery

import (
	"reflect"
	"testing"
)

func TestParserStructuredQueries(t *testing.T) {
	p := New(Config{})

	tests := []struct {
		name     string
		query    string
		intent   Intent
		entities []EntityType
		filters  map[string]any
	}{
		{
			"verb and type",
			"find resistors",
			IntentSearchByType,
			[]EntityType{EntityComponentType},
			map[string]any{FilterCategory: "resistor"},
		},
		{
			"compound filter query",
			"10k SMD resistors with low stock",
			IntentFilterByStock,
			[]EntityType{EntityComponentType, EntityStockStatus, EntityValue, EntityPackage},
			map[string]any{
				FilterCategory:    "resistor",
				FilterStockStatus: "low",
				"resistance":      10000.0,
				FilterPackage:     "SMD",
			},
		},
		{
			"price query",
			"capacitors under $1",
			IntentFilterByPrice,
			[]EntityType{EntityComponentType, EntityPrice},
			map[string]any{FilterCategory: "capacitor", FilterMaxPrice: 1.0},
		},
		{
			"location query",
			"parts in drawer b2",
			IntentFilterByLocation,
			[]EntityType{EntityLocation},
			map[string]any{FilterLocation: "drawer b2"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pq := p.Parse(tt.query)
			if pq.Intent != tt.intent {
				t.Errorf("intent = %s, want %s", pq.Intent, tt.intent)
			}
			if pq.Fallback {
				t.Errorf("unexpected fallback at confidence %g", pq.Confidence)
			}
			if pq.Confidence < p.Threshold() {
				t.Errorf("confidence %g below threshold", pq.Confidence)
			}
			if len(pq.Entities) != len(tt.entities) {
				t.Errorf("got %d entities %v, want %d", len(pq.Entities), pq.Entities, len(tt.entities))
			}
			for _, et := range tt.entities {
				if _, ok := pq.Entities[et]; !ok {
					t.Errorf("missing entity %s", et)
				}
			}
			if got := MapParameters(pq.Entities); !reflect.DeepEqual(got, tt.filters) {
				t.Errorf("filters = %v, want %v", got, tt.filters)
			}
		})
	}
}

func TestParserFallbackQueries(t *testing.T) {
	p := New(Config{})

	tests := []struct {
		name  string
		query string
	}{
		{"vague", "show me stuff"},
		{"no entities", "hello world"},
		{"empty", ""},
		{"whitespace", "   "},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pq := p.Parse(tt.query)
			if !pq.Fallback {
				t.Error("expected fallback")
			}
			if pq.Intent != IntentUnclassified {
				t.Errorf("intent = %s, want unclassified", pq.Intent)
			}
			if pq.Confidence != 0 {
				t.Errorf("confidence = %g, want 0", pq.Confidence)
			}
		})
	}
}

func TestParserIsDeterministic(t *testing.T) {
	p := New(Config{})
	first := p.Parse("10k smd resistors with low stock in a3 under $1")
	for i := 0; i < 20; i++ {
		got := p.Parse("10k smd resistors with low stock in a3 under $1")
		if !reflect.DeepEqual(got, first) {
			t.Fatalf("parse %d differs: %+v vs %+v", i, got, first)
		}
	}
}

func TestParserConfigOverrides(t *testing.T) {
	strict := New(Config{ConfidenceThreshold: 0.99})
	pq := strict.Parse("find resistors")
	if !pq.Fallback {
		t.Errorf("confidence %g should fall below a 0.99 threshold", pq.Confidence)
	}

	cheap := New(Config{CheapPriceCeiling: 0.1})
	res := cheap.ParseToResult("cheap resistors", nil)
	if res.FallbackToFTS {
		t.Fatalf("unexpected fallback at confidence %g", res.Confidence)
	}
	if res.Entities[FilterMaxPrice] != 0.1 {
		t.Errorf("max_price = %v, want 0.1", res.Entities[FilterMaxPrice])
	}
}

func TestParseToResult(t *testing.T) {
	p := New(Config{})

	res := p.ParseToResult("  Find Resistors  ", nil)
	if res.Query != "find resistors" {
		t.Errorf("query = %q, want normalized form", res.Query)
	}
	if res.Intent != "search_by_type" {
		t.Errorf("intent = %q", res.Intent)
	}
	if res.FallbackToFTS {
		t.Error("unexpected fallback")
	}
	if res.Entities[FilterCategory] != "resistor" {
		t.Errorf("category = %v", res.Entities[FilterCategory])
	}
}

func TestParseToResultManualFiltersWin(t *testing.T) {
	p := New(Config{})

	res := p.ParseToResult("find resistors", map[string]any{FilterCategory: "capacitor"})
	if res.Entities[FilterCategory] != "capacitor" {
		t.Errorf("manual filter must win, got %v", res.Entities[FilterCategory])
	}
}

func TestParseToResultFallbackKeepsManualFilters(t *testing.T) {
	p := New(Config{})

	res := p.ParseToResult("show me stuff", map[string]any{FilterLocation: "a3"})
	if !res.FallbackToFTS {
		t.Fatal("expected fallback")
	}
	if len(res.Entities) != 1 || res.Entities[FilterLocation] != "a3" {
		t.Errorf("entities = %v, want only the manual location", res.Entities)
	}
}
