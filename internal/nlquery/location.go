package nlquery

import (
	"regexp"
	"strings"
)

// Preposition-guided matches are trusted most; bare codes risk collision
// with component part codes and get the lowest confidence.
const (
	locationPhraseConfidence = 0.85
	locationNamedConfidence  = 0.7
	locationCodeConfidence   = 0.5
)

var (
	// "in a3", "from shelf b", "at bin 4" — capture up to three words after
	// the preposition, truncated at the first stop word.
	locationPhraseRe = regexp.MustCompile(`\b(?:in|at|from|on)\s+([a-z][a-z0-9_-]*(?:\s+[a-z0-9_-]+){0,2})`)
	// Named locations with a Word-Number shape: "shelf-3", "drawer-12".
	locationNamedRe = regexp.MustCompile(`\b([a-z]+-\d+)\b`)
	// Bare alphanumeric codes with a letter+digits shape: "a3", "b12".
	locationCodeRe = regexp.MustCompile(`\b([a-z]\d{1,3})\b`)
)

// Package families also have the Word-Number shape; they are never locations.
var locationExcludedPrefixes = map[string]struct{}{
	"dip": {}, "soic": {}, "sot": {}, "tqfp": {}, "qfn": {}, "to": {},
	"smd": {}, "tht": {},
}

// LocationExtractor matches storage locations using three grammars:
// preposition-guided phrases, named Word-Number locations, and bare
// letter+digit codes.
type LocationExtractor struct {
	stopWords map[string]struct{}
}

// NewLocationExtractor builds the extractor with the vocabulary's stop words.
func NewLocationExtractor(vocab *Vocabulary) *LocationExtractor {
	stop := make(map[string]struct{}, len(vocab.LocationStopWords)+1)
	for _, w := range vocab.LocationStopWords {
		stop[w] = struct{}{}
	}
	// "in stock" is a stock phrase, never a location.
	stop["stock"] = struct{}{}
	return &LocationExtractor{stopWords: stop}
}

// Type implements Extractor.
func (e *LocationExtractor) Type() EntityType { return EntityLocation }

// Extract implements Extractor.
func (e *LocationExtractor) Extract(text string) []EntityMatch {
	var out []EntityMatch

	if m := locationPhraseRe.FindStringSubmatch(text); m != nil {
		if loc := e.truncateAtStopWord(m[1]); loc != "" {
			out = append(out, EntityMatch{
				Type:       EntityLocation,
				Raw:        m[0],
				Normalized: loc,
				Confidence: locationPhraseConfidence,
			})
		}
	}

	if m := locationNamedRe.FindStringSubmatch(text); m != nil {
		prefix := m[1][:strings.Index(m[1], "-")]
		if _, excluded := locationExcludedPrefixes[prefix]; !excluded {
			out = append(out, EntityMatch{
				Type:       EntityLocation,
				Raw:        m[1],
				Normalized: m[1],
				Confidence: locationNamedConfidence,
			})
		}
	}

	if m := locationCodeRe.FindStringSubmatch(text); m != nil {
		out = append(out, EntityMatch{
			Type:       EntityLocation,
			Raw:        m[1],
			Normalized: m[1],
			Confidence: locationCodeConfidence,
		})
	}

	return out
}

// truncateAtStopWord cuts a captured phrase at its first stop word.
func (e *LocationExtractor) truncateAtStopWord(phrase string) string {
	words := strings.Fields(phrase)
	kept := words[:0]
	for _, w := range words {
		if _, stop := e.stopWords[w]; stop {
			break
		}
		kept = append(kept, w)
	}
	return strings.Join(kept, " ")
}
