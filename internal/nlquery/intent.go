package nlquery

import "regexp"

// Base confidences seeded by the winning classification rule.
const (
	baseSearchByType     = 0.9
	baseFilterByStock    = 0.85
	baseFilterByLocation = 0.85
	baseFilterByValue    = 0.8
	baseFilterByPrice    = 0.8
)

// intentRule is one entry of the ordered classification list. Rules are
// evaluated in sequence and the first match wins, so new rules can be
// inserted or reordered without touching the others.
type intentRule struct {
	matches func(text string, entities map[EntityType]EntityMatch) bool
	intent  Intent
	base    float64
}

// Classifier assigns one intent label from an ordered rule list. The intent
// only seeds the base confidence and diagnostics; all extracted entities are
// forwarded to the mapper regardless of which rule wins.
type Classifier struct {
	actionVerbRe *regexp.Regexp
	rules        []intentRule
}

// NewClassifier builds the ordered rule list from the vocabulary's action verbs.
func NewClassifier(vocab *Vocabulary) *Classifier {
	pattern := `\b(?:`
	for i, v := range vocab.ActionVerbs {
		if i > 0 {
			pattern += "|"
		}
		pattern += regexp.QuoteMeta(v)
	}
	pattern += `)\b`
	c := &Classifier{actionVerbRe: regexp.MustCompile(pattern)}

	hasType := func(entities map[EntityType]EntityMatch, t EntityType) bool {
		_, ok := entities[t]
		return ok
	}
	c.rules = []intentRule{
		{
			matches: func(text string, entities map[EntityType]EntityMatch) bool {
				return c.actionVerbRe.MatchString(text) && hasType(entities, EntityComponentType)
			},
			intent: IntentSearchByType,
			base:   baseSearchByType,
		},
		{
			matches: func(_ string, entities map[EntityType]EntityMatch) bool {
				return hasType(entities, EntityStockStatus)
			},
			intent: IntentFilterByStock,
			base:   baseFilterByStock,
		},
		{
			matches: func(_ string, entities map[EntityType]EntityMatch) bool {
				return hasType(entities, EntityLocation)
			},
			intent: IntentFilterByLocation,
			base:   baseFilterByLocation,
		},
		{
			matches: func(_ string, entities map[EntityType]EntityMatch) bool {
				return hasType(entities, EntityValue)
			},
			intent: IntentFilterByValue,
			base:   baseFilterByValue,
		},
		{
			matches: func(_ string, entities map[EntityType]EntityMatch) bool {
				return hasType(entities, EntityPrice)
			},
			intent: IntentFilterByPrice,
			base:   baseFilterByPrice,
		},
	}
	return c
}

// Classify returns the first matching rule's intent and base confidence.
// When no rule matches, the query is Unclassified with base confidence 0:
// an uninterpretable phrase must not be trusted, even if entity-like
// substrings exist.
func (c *Classifier) Classify(text string, entities map[EntityType]EntityMatch) (Intent, float64) {
	for _, rule := range c.rules {
		if rule.matches(text, entities) {
			return rule.intent, rule.base
		}
	}
	return IntentUnclassified, 0
}
