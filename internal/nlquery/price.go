package nlquery

import (
	"regexp"
	"strconv"
)

const (
	priceGrammarConfidence = 0.9
	priceExactConfidence   = 0.85
	// Implicit "cheap/budget" ceiling is a guess, not a stated bound.
	priceCheapConfidence = 0.6
)

// DefaultCheapPriceCeiling is the implicit maximum applied to "cheap",
// "affordable", "budget" style queries when no explicit ceiling is configured.
const DefaultCheapPriceCeiling = 1.0

var (
	priceRangeRe = regexp.MustCompile(`(?:between\s+)?\$(\d+(?:\.\d+)?)\s*(?:to|and|-)\s*\$?(\d+(?:\.\d+)?)`)
	priceUnderRe = regexp.MustCompile(`(?:under|below|less than|cheaper than|at most|max)\s+\$?(\d+(?:\.\d+)?)`)
	priceOverRe  = regexp.MustCompile(`(?:over|above|more than|at least|min)\s+\$?(\d+(?:\.\d+)?)`)
	priceExactRe = regexp.MustCompile(`\$(\d+(?:\.\d+)?)`)
)

// PriceExtractor matches price bounds using four grammars (under, over,
// exact, range) plus a closed "cheap" vocabulary mapped to an implicit
// configurable ceiling.
type PriceExtractor struct {
	cheapWords   []*regexp.Regexp
	cheapCeiling float64
}

// NewPriceExtractor builds the extractor. cheapCeiling <= 0 selects the
// default implicit ceiling.
func NewPriceExtractor(vocab *Vocabulary, cheapCeiling float64) *PriceExtractor {
	if cheapCeiling <= 0 {
		cheapCeiling = DefaultCheapPriceCeiling
	}
	e := &PriceExtractor{cheapCeiling: cheapCeiling}
	for _, w := range vocab.CheapWords {
		e.cheapWords = append(e.cheapWords, regexp.MustCompile(`\b`+regexp.QuoteMeta(w)+`\b`))
	}
	return e
}

// Type implements Extractor.
func (e *PriceExtractor) Type() EntityType { return EntityPrice }

// Extract implements Extractor.
func (e *PriceExtractor) Extract(text string) []EntityMatch {
	var out []EntityMatch

	if m := priceRangeRe.FindStringSubmatch(text); m != nil {
		lo, hi := parsePrice(m[1]), parsePrice(m[2])
		if lo > hi {
			lo, hi = hi, lo
		}
		out = append(out, EntityMatch{
			Type:       EntityPrice,
			Raw:        m[0],
			Normalized: m[0],
			Confidence: priceGrammarConfidence,
			Price:      &PriceDetail{Kind: PriceRange, Min: lo, Max: hi},
		})
	}

	if m := priceUnderRe.FindStringSubmatch(text); m != nil {
		out = append(out, EntityMatch{
			Type:       EntityPrice,
			Raw:        m[0],
			Normalized: m[0],
			Confidence: priceGrammarConfidence,
			Price:      &PriceDetail{Kind: PriceUnder, Max: parsePrice(m[1])},
		})
	}

	if m := priceOverRe.FindStringSubmatch(text); m != nil {
		out = append(out, EntityMatch{
			Type:       EntityPrice,
			Raw:        m[0],
			Normalized: m[0],
			Confidence: priceGrammarConfidence,
			Price:      &PriceDetail{Kind: PriceOver, Min: parsePrice(m[1])},
		})
	}

	// A bare dollar amount reads as an exact price; when an under/over/range
	// grammar also matched the same amount, its higher confidence wins at
	// the dedupe stage.
	if m := priceExactRe.FindStringSubmatch(text); m != nil {
		v := parsePrice(m[1])
		out = append(out, EntityMatch{
			Type:       EntityPrice,
			Raw:        m[0],
			Normalized: m[0],
			Confidence: priceExactConfidence,
			Price:      &PriceDetail{Kind: PriceExact, Min: v, Max: v},
		})
	}

	for _, re := range e.cheapWords {
		span := re.FindString(text)
		if span == "" {
			continue
		}
		out = append(out, EntityMatch{
			Type:       EntityPrice,
			Raw:        span,
			Normalized: span,
			Confidence: priceCheapConfidence,
			Price:      &PriceDetail{Kind: PriceUnder, Max: e.cheapCeiling},
		})
		break
	}

	return out
}

func parsePrice(s string) float64 {
	v, _ := strconv.ParseFloat(s, 64)
	return v
}
