package nlquery

import (
	"math"
	"testing"
)

func newTestScorer() *Scorer {
	return NewScorer(DefaultVocabulary(), 0, 0, 0, 0)
}

func TestScorerDefaults(t *testing.T) {
	s := newTestScorer()
	if s.Threshold != DefaultConfidenceThreshold {
		t.Errorf("Threshold = %g, want %g", s.Threshold, DefaultConfidenceThreshold)
	}
	if s.BoostStep != DefaultMultiEntityBoostStep {
		t.Errorf("BoostStep = %g, want %g", s.BoostStep, DefaultMultiEntityBoostStep)
	}
	if s.BoostCap != DefaultMultiEntityBoostCap {
		t.Errorf("BoostCap = %g, want %g", s.BoostCap, DefaultMultiEntityBoostCap)
	}
	if s.AmbiguityPenalty != DefaultAmbiguityPenalty {
		t.Errorf("AmbiguityPenalty = %g, want %g", s.AmbiguityPenalty, DefaultAmbiguityPenalty)
	}
}

func entitiesWithConfidence(confs ...float64) map[EntityType]EntityMatch {
	types := []EntityType{
		EntityComponentType, EntityStockStatus, EntityLocation,
		EntityValue, EntityPackage, EntityManufacturer, EntityPrice,
	}
	m := make(map[EntityType]EntityMatch, len(confs))
	for i, c := range confs {
		m[types[i]] = EntityMatch{Type: types[i], Confidence: c}
	}
	return m
}

func TestScorerScore(t *testing.T) {
	s := newTestScorer()

	tests := []struct {
		name     string
		text     string
		base     float64
		entities map[EntityType]EntityMatch
		want     float64
	}{
		{"no entities scores zero", "find me parts", 0.9, nil, 0},
		{"single entity averages", "find resistors", 0.9, entitiesWithConfidence(0.9), 0.9},
		{"two entities boosted", "caps under $1", 0.8, entitiesWithConfidence(0.9, 0.9), 0.95},
		{
			"boost caps at three steps",
			"10k smd resistors with low stock from ti",
			0.85,
			entitiesWithConfidence(0.8, 0.85, 0.7, 0.9, 0.8),
			1.0,
		},
		{"vague token penalized", "find resistor stuff", 0.9, entitiesWithConfidence(0.9), 0.75},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := s.Score(tt.text, tt.base, tt.entities)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Score = %g, want %g", got, tt.want)
			}
		})
	}
}

func TestScorerScoreIsClamped(t *testing.T) {
	s := newTestScorer()
	got := s.Score("a b c", 1.0, entitiesWithConfidence(1, 1, 1, 1, 1, 1, 1))
	if got != 1 {
		t.Errorf("Score = %g, want clamp to 1", got)
	}
}

func TestScorerMoreEntitiesNeverScoreLower(t *testing.T) {
	s := newTestScorer()
	prev := 0.0
	for n := 1; n <= 5; n++ {
		confs := make([]float64, n)
		for i := range confs {
			confs[i] = 0.85
		}
		got := s.Score("query", 0.85, entitiesWithConfidence(confs...))
		if got < prev {
			t.Errorf("score dropped from %g to %g at %d entities", prev, got, n)
		}
		prev = got
	}
}

func TestScorerFallback(t *testing.T) {
	s := newTestScorer()

	if !s.Fallback(0.9, nil) {
		t.Error("no entities must always fall back")
	}
	if !s.Fallback(0.49, entitiesWithConfidence(0.5)) {
		t.Error("confidence below threshold must fall back")
	}
	if s.Fallback(0.5, entitiesWithConfidence(0.5)) {
		t.Error("confidence at threshold must not fall back")
	}
}
