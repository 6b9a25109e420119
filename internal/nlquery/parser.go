package nlquery

// Config holds the tuning constants of the parsing pipeline. The zero value
// selects every default, so config files only need to name what they change.
type Config struct {
	ConfidenceThreshold  float64 `yaml:"confidence_threshold"`
	MultiEntityBoostStep float64 `yaml:"multi_entity_boost_step"`
	MultiEntityBoostCap  float64 `yaml:"multi_entity_boost_cap"`
	AmbiguityPenalty     float64 `yaml:"ambiguity_penalty"`
	CheapPriceCeiling    float64 `yaml:"cheap_price_ceiling"`
}

// Parser is the full query understanding pipeline: normalize, extract,
// dedupe, classify, score, map. A Parser is immutable after construction and
// safe for concurrent use; every Parse builds fresh result values.
type Parser struct {
	vocab      *Vocabulary
	extractors []Extractor
	classifier *Classifier
	scorer     *Scorer
}

// New builds a parser over the built-in vocabulary.
func New(cfg Config) *Parser {
	return NewWithVocabulary(cfg, DefaultVocabulary())
}

// NewWithVocabulary builds a parser over a caller-supplied vocabulary.
// Extractor order fixes the cross-type collision priority used by the mapper.
func NewWithVocabulary(cfg Config, vocab *Vocabulary) *Parser {
	return &Parser{
		vocab: vocab,
		extractors: []Extractor{
			NewComponentTypeExtractor(vocab),
			NewStockStatusExtractor(vocab),
			NewLocationExtractor(vocab),
			NewValueExtractor(),
			NewPackageExtractor(),
			NewManufacturerExtractor(vocab),
			NewPriceExtractor(vocab, cfg.CheapPriceCeiling),
		},
		classifier: NewClassifier(vocab),
		scorer: NewScorer(vocab,
			cfg.ConfidenceThreshold,
			cfg.MultiEntityBoostStep,
			cfg.MultiEntityBoostCap,
			cfg.AmbiguityPenalty),
	}
}

// Threshold returns the configured fallback threshold.
func (p *Parser) Threshold() float64 { return p.scorer.Threshold }

// Parse runs the pipeline over one raw query. It never fails: empty or
// uninterpretable input yields an unclassified result with zero confidence
// and the fallback bit set.
func (p *Parser) Parse(query string) *ParsedQuery {
	text := Normalize(query)
	pq := &ParsedQuery{
		Raw:      text,
		Intent:   IntentUnclassified,
		Entities: map[EntityType]EntityMatch{},
		Fallback: true,
	}
	if text == "" {
		return pq
	}

	pq.Entities = dedupe(extractAll(p.extractors, text))

	var base float64
	pq.Intent, base = p.classifier.Classify(text, pq.Entities)
	pq.Confidence = p.scorer.Score(text, base, pq.Entities)
	pq.Fallback = p.scorer.Fallback(pq.Confidence, pq.Entities)
	return pq
}

// ParseToResult parses the query and folds in manually supplied filters,
// producing the routing contract the search layer consumes. Manual filters
// always survive, even when the parse falls back to full-text search.
func (p *Parser) ParseToResult(query string, manual map[string]any) *ParseResult {
	pq := p.Parse(query)

	filters := MapParameters(pq.Entities)
	if pq.Fallback {
		// A low-confidence parse contributes nothing; only explicit
		// selections filter the full-text results.
		filters = map[string]any{}
	}
	filters = MergeFilters(filters, manual)

	return &ParseResult{
		Query:         pq.Raw,
		Confidence:    pq.Confidence,
		Intent:        pq.Intent.String(),
		Entities:      filters,
		FallbackToFTS: pq.Fallback,
	}
}
