package nlquery

import "regexp"

const (
	componentExactConfidence = 0.9
	componentStemConfidence  = 0.8
)

// ComponentTypeExtractor matches the fixed category vocabulary, including
// lexical aliases and plural stems, as whole words.
type ComponentTypeExtractor struct {
	patterns []componentPattern
}

type componentPattern struct {
	canonical string
	alias     string
	re        *regexp.Regexp
}

// NewComponentTypeExtractor compiles whole-word patterns for every alias in
// the vocabulary. Plural stems ("resistors", "caps") are matched by the same
// pattern at slightly lower confidence.
func NewComponentTypeExtractor(vocab *Vocabulary) *ComponentTypeExtractor {
	e := &ComponentTypeExtractor{}
	for canonical, aliases := range vocab.ComponentAliases {
		for _, alias := range aliases {
			e.patterns = append(e.patterns, componentPattern{
				canonical: canonical,
				alias:     alias,
				re:        regexp.MustCompile(`\b` + regexp.QuoteMeta(alias) + `(?:es|s)?\b`),
			})
		}
	}
	return e
}

// Type implements Extractor.
func (e *ComponentTypeExtractor) Type() EntityType { return EntityComponentType }

// Extract implements Extractor.
func (e *ComponentTypeExtractor) Extract(text string) []EntityMatch {
	var out []EntityMatch
	for _, p := range e.patterns {
		span := p.re.FindString(text)
		if span == "" {
			continue
		}
		conf := componentExactConfidence
		if span != p.alias {
			conf = componentStemConfidence
		}
		out = append(out, EntityMatch{
			Type:       EntityComponentType,
			Raw:        span,
			Normalized: p.canonical,
			Confidence: conf,
		})
	}
	return out
}
