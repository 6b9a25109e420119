package nlquery

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"lowercases", "Find Resistors", "find resistors"},
		{"trims", "  leds  ", "leds"},
		{"collapses whitespace", "10k\t resistors \n in a3", "10k resistors in a3"},
		{"empty", "", ""},
		{"whitespace only", "   \t\n", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.input); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestDedupe(t *testing.T) {
	matches := []EntityMatch{
		{Type: EntityLocation, Raw: "a3", Confidence: 0.5},
		{Type: EntityLocation, Raw: "in shelf a3", Confidence: 0.85},
		{Type: EntityComponentType, Raw: "res", Confidence: 0.9},
	}
	best := dedupe(matches)

	if len(best) != 2 {
		t.Fatalf("expected 2 types, got %d", len(best))
	}
	if best[EntityLocation].Raw != "in shelf a3" {
		t.Errorf("expected higher-confidence location to win, got %q", best[EntityLocation].Raw)
	}
}

func TestDedupeTieBreaksOnSpanLength(t *testing.T) {
	matches := []EntityMatch{
		{Type: EntityPackage, Raw: "smd", Confidence: 0.7},
		{Type: EntityPackage, Raw: "through-hole", Confidence: 0.7},
	}
	best := dedupe(matches)
	if best[EntityPackage].Raw != "through-hole" {
		t.Errorf("expected longer span to win tie, got %q", best[EntityPackage].Raw)
	}
}

type panicExtractor struct{}

func (panicExtractor) Type() EntityType             { return EntityLocation }
func (panicExtractor) Extract(string) []EntityMatch { panic("boom") }

func TestExtractAllIsolatesPanics(t *testing.T) {
	extractors := []Extractor{panicExtractor{}, NewValueExtractor()}
	matches := extractAll(extractors, "10k resistors")
	if len(matches) == 0 {
		t.Fatal("expected value match to survive a panicking sibling")
	}
	for _, m := range matches {
		if m.Type == EntityLocation {
			t.Errorf("panicking extractor must contribute nothing, got %+v", m)
		}
	}
}
