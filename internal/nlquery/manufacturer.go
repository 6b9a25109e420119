package nlquery

import "regexp"

const (
	manufacturerNameConfidence = 0.8
	// Short abbreviations ("ti", "st") collide with ordinary words more
	// easily and get slightly less trust.
	manufacturerAbbrevConfidence = 0.7
)

// ManufacturerExtractor matches a fixed manufacturer name/abbreviation list
// case-insensitively as whole words.
type ManufacturerExtractor struct {
	patterns []manufacturerPattern
}

type manufacturerPattern struct {
	canonical  string
	re         *regexp.Regexp
	confidence float64
}

// NewManufacturerExtractor compiles whole-word patterns for every alias in
// the vocabulary.
func NewManufacturerExtractor(vocab *Vocabulary) *ManufacturerExtractor {
	e := &ManufacturerExtractor{}
	for canonical, aliases := range vocab.Manufacturers {
		for _, alias := range aliases {
			conf := manufacturerNameConfidence
			if len(alias) <= 3 {
				conf = manufacturerAbbrevConfidence
			}
			e.patterns = append(e.patterns, manufacturerPattern{
				canonical:  canonical,
				re:         regexp.MustCompile(`\b` + regexp.QuoteMeta(alias) + `\b`),
				confidence: conf,
			})
		}
	}
	return e
}

// Type implements Extractor.
func (e *ManufacturerExtractor) Type() EntityType { return EntityManufacturer }

// Extract implements Extractor.
func (e *ManufacturerExtractor) Extract(text string) []EntityMatch {
	var out []EntityMatch
	for _, p := range e.patterns {
		span := p.re.FindString(text)
		if span == "" {
			continue
		}
		out = append(out, EntityMatch{
			Type:       EntityManufacturer,
			Raw:        span,
			Normalized: p.canonical,
			Confidence: p.confidence,
		})
	}
	return out
}
