package nlquery

import "regexp"

const stockPhraseConfidence = 0.85

// StockStatusExtractor matches stock availability phrase groups and maps
// them to canonical statuses.
type StockStatusExtractor struct {
	patterns []stockPattern
}

type stockPattern struct {
	status string
	re     *regexp.Regexp
}

// NewStockStatusExtractor compiles whole-phrase patterns for every phrase
// group in the vocabulary.
func NewStockStatusExtractor(vocab *Vocabulary) *StockStatusExtractor {
	e := &StockStatusExtractor{}
	for status, phrases := range vocab.StockPhrases {
		for _, phrase := range phrases {
			e.patterns = append(e.patterns, stockPattern{
				status: status,
				re:     regexp.MustCompile(`\b` + regexp.QuoteMeta(phrase) + `\b`),
			})
		}
	}
	return e
}

// Type implements Extractor.
func (e *StockStatusExtractor) Type() EntityType { return EntityStockStatus }

// Extract implements Extractor.
func (e *StockStatusExtractor) Extract(text string) []EntityMatch {
	var out []EntityMatch
	for _, p := range e.patterns {
		span := p.re.FindString(text)
		if span == "" {
			continue
		}
		out = append(out, EntityMatch{
			Type:       EntityStockStatus,
			Raw:        span,
			Normalized: p.status,
			Confidence: stockPhraseConfidence,
		})
	}
	return out
}
