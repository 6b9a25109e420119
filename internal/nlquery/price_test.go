package nlquery

import "testing"

func TestPriceExtractor(t *testing.T) {
	e := NewPriceExtractor(DefaultVocabulary(), 0)

	tests := []struct {
		name  string
		input string
		kind  PriceKind
		min   float64
		max   float64
	}{
		{"under with dollar", "caps under $1", PriceUnder, 0, 1},
		{"under without dollar", "under 2.50", PriceUnder, 0, 2.5},
		{"less than", "less than $5", PriceUnder, 0, 5},
		{"over", "over $10", PriceOver, 10, 0},
		{"at least", "at least 3", PriceOver, 3, 0},
		{"range", "between $1 and $5", PriceRange, 1, 5},
		{"range dash", "$2-$4", PriceRange, 2, 4},
		{"range reversed", "between $5 and $1", PriceRange, 1, 5},
		{"exact", "$0.50 resistors", PriceExact, 0.5, 0.5},
		{"cheap word", "cheap leds", PriceUnder, 0, DefaultCheapPriceCeiling},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			best := dedupe(e.Extract(tt.input))
			m, ok := best[EntityPrice]
			if !ok {
				t.Fatalf("no price match in %q", tt.input)
			}
			if m.Price.Kind != tt.kind {
				t.Errorf("kind = %s, want %s", m.Price.Kind, tt.kind)
			}
			if m.Price.Min != tt.min || m.Price.Max != tt.max {
				t.Errorf("bounds = [%g, %g], want [%g, %g]", m.Price.Min, m.Price.Max, tt.min, tt.max)
			}
		})
	}
}

func TestPriceExtractorCustomCheapCeiling(t *testing.T) {
	e := NewPriceExtractor(DefaultVocabulary(), 0.25)
	best := dedupe(e.Extract("budget capacitors"))
	m, ok := best[EntityPrice]
	if !ok {
		t.Fatal("expected cheap-word match")
	}
	if m.Price.Max != 0.25 {
		t.Errorf("ceiling = %g, want 0.25", m.Price.Max)
	}
	if m.Confidence != priceCheapConfidence {
		t.Errorf("confidence = %g, want %g", m.Confidence, priceCheapConfidence)
	}
}

func TestPriceExtractorGrammarBeatsBareExact(t *testing.T) {
	// "under $1" also matches the bare-$ exact grammar; the bound grammar
	// must win dedupe.
	e := NewPriceExtractor(DefaultVocabulary(), 0)
	best := dedupe(e.Extract("under $1"))
	if best[EntityPrice].Price.Kind != PriceUnder {
		t.Errorf("kind = %s, want under", best[EntityPrice].Price.Kind)
	}
}

func TestPriceExtractorNoMatch(t *testing.T) {
	e := NewPriceExtractor(DefaultVocabulary(), 0)
	if matches := e.Extract("resistors in a3"); len(matches) != 0 {
		t.Errorf("expected no matches, got %+v", matches)
	}
}
