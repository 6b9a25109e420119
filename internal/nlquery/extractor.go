package nlquery

import (
	"strings"
	"sync"
)

// Extractor finds entity matches of a single type in normalized query text.
// Extractors are pure: they read only the input string and the shared
// immutable vocabulary, never fail, and report non-matches by returning
// an empty slice.
type Extractor interface {
	// Type returns the entity type this extractor produces.
	Type() EntityType
	// Extract returns zero or more matches found in text.
	Extract(text string) []EntityMatch
}

// Normalize returns the canonical form of a raw query: trimmed, lower-cased,
// with runs of whitespace collapsed to single spaces.
func Normalize(query string) string {
	return strings.Join(strings.Fields(strings.ToLower(query)), " ")
}

// extractAll fans the normalized text out to every extractor and collects
// the candidate matches. Extractors run concurrently; each writes only its
// own result slot, so the merge is deterministic regardless of completion
// order. A panicking extractor is isolated and treated as "no match".
func extractAll(extractors []Extractor, text string) []EntityMatch {
	results := make([][]EntityMatch, len(extractors))
	var wg sync.WaitGroup
	for i, ex := range extractors {
		wg.Add(1)
		go func(i int, ex Extractor) {
			defer wg.Done()
			defer func() {
				// A faulty rule must not break the pipeline.
				_ = recover()
			}()
			results[i] = ex.Extract(text)
		}(i, ex)
	}
	wg.Wait()

	var all []EntityMatch
	for _, r := range results {
		all = append(all, r...)
	}
	return all
}

// dedupe keeps at most one match per entity type: the highest confidence
// wins, ties go to the longer span, remaining ties to the earlier candidate.
// Losing candidates are discarded silently.
func dedupe(matches []EntityMatch) map[EntityType]EntityMatch {
	best := make(map[EntityType]EntityMatch)
	for _, m := range matches {
		cur, ok := best[m.Type]
		if !ok || betterMatch(m, cur) {
			best[m.Type] = m
		}
	}
	return best
}

func betterMatch(a, b EntityMatch) bool {
	if a.Confidence != b.Confidence {
		return a.Confidence > b.Confidence
	}
	return len(a.Raw) > len(b.Raw)
}
