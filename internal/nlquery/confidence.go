package nlquery

import (
	"regexp"

	"github.com/hyperjump/zaiko/pkg/utils"
)

// Default tuning constants for the confidence model. Each can be overridden
// through the parser section of the config file.
const (
	DefaultConfidenceThreshold  = 0.5
	DefaultMultiEntityBoostStep = 0.1
	DefaultMultiEntityBoostCap  = 0.3
	DefaultAmbiguityPenalty     = 0.15
)

// Scorer aggregates rule and extractor confidences into one number in [0,1]
// and decides the fallback bit. The pipeline is deterministic: the same
// inputs always produce the same score.
type Scorer struct {
	// Threshold is the minimum confidence for the structured path.
	Threshold float64
	// BoostStep is added once per entity beyond the first.
	BoostStep float64
	// BoostCap limits the total multi-entity boost.
	BoostCap float64
	// AmbiguityPenalty is subtracted when the query contains a vague token.
	AmbiguityPenalty float64

	vagueRe *regexp.Regexp
}

// NewScorer builds a scorer with the given tuning constants; non-positive
// values select the defaults.
func NewScorer(vocab *Vocabulary, threshold, boostStep, boostCap, penalty float64) *Scorer {
	if threshold <= 0 {
		threshold = DefaultConfidenceThreshold
	}
	if boostStep <= 0 {
		boostStep = DefaultMultiEntityBoostStep
	}
	if boostCap <= 0 {
		boostCap = DefaultMultiEntityBoostCap
	}
	if penalty <= 0 {
		penalty = DefaultAmbiguityPenalty
	}
	pattern := `\b(?:`
	for i, t := range vocab.VagueTokens {
		if i > 0 {
			pattern += "|"
		}
		pattern += regexp.QuoteMeta(t)
	}
	pattern += `)\b`
	return &Scorer{
		Threshold:        threshold,
		BoostStep:        boostStep,
		BoostCap:         boostCap,
		AmbiguityPenalty: penalty,
		vagueRe:          regexp.MustCompile(pattern),
	}
}

// Score combines the intent rule's base confidence with the entity match
// confidences:
//
//  1. start from the rule base
//  2. average it with the mean entity confidence (when entities exist)
//  3. add BoostStep per entity beyond the first, capped at BoostCap
//  4. subtract AmbiguityPenalty when the text contains a vague token
//  5. clamp to [0,1]
//
// A query with no entities scores zero regardless of the rule base: there is
// nothing structured to act on.
func (s *Scorer) Score(text string, base float64, entities map[EntityType]EntityMatch) float64 {
	if len(entities) == 0 {
		return 0
	}

	confidences := make([]float64, 0, len(entities))
	for _, m := range entities {
		confidences = append(confidences, m.Confidence)
	}

	conf := (base + utils.Mean(confidences)) / 2

	boost := s.BoostStep * float64(len(entities)-1)
	if boost > s.BoostCap {
		boost = s.BoostCap
	}
	conf += boost

	if s.vagueRe.MatchString(text) {
		conf -= s.AmbiguityPenalty
	}

	return utils.Clamp01(conf)
}

// Fallback reports whether the structured interpretation should be abandoned
// in favor of full-text search.
func (s *Scorer) Fallback(confidence float64, entities map[EntityType]EntityMatch) bool {
	return len(entities) == 0 || confidence < s.Threshold
}
