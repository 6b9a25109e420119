// Package nlquery converts free-text inventory queries into structured
// filter parameters, with a confidence model deciding when to fall back
// to full-text search instead.
package nlquery

// EntityType identifies the kind of structured fragment an extractor finds.
type EntityType string

const (
	// EntityComponentType is a part category ("resistor", "mcu", ...).
	EntityComponentType EntityType = "component_type"
	// EntityStockStatus is a stock availability phrase ("low stock", "out of stock").
	EntityStockStatus EntityType = "stock_status"
	// EntityLocation is a storage location ("shelf-3", "in bin a2").
	EntityLocation EntityType = "location"
	// EntityValue is an electrical value ("10k", "100pF", "5V").
	EntityValue EntityType = "value"
	// EntityPackage is a component package ("0805", "DIP-8", "SMD").
	EntityPackage EntityType = "package"
	// EntityManufacturer is a known manufacturer name or abbreviation.
	EntityManufacturer EntityType = "manufacturer"
	// EntityPrice is a price bound ("under $1", "$2 to $5", "cheap").
	EntityPrice EntityType = "price"
)

// ValueKind classifies an electrical value by physical quantity.
type ValueKind string

const (
	KindResistance  ValueKind = "resistance"
	KindCapacitance ValueKind = "capacitance"
	KindVoltage     ValueKind = "voltage"
	KindInductance  ValueKind = "inductance"
	KindCurrent     ValueKind = "current"
	KindFrequency   ValueKind = "frequency"
)

// PriceKind classifies a price bound by its grammar.
type PriceKind string

const (
	PriceUnder PriceKind = "under"
	PriceOver  PriceKind = "over"
	PriceExact PriceKind = "exact"
	PriceRange PriceKind = "range"
)

// ValueDetail carries the parsed quantity of an EntityValue match.
type ValueDetail struct {
	Kind      ValueKind `json:"kind"`
	Magnitude float64   `json:"magnitude"`
	Unit      string    `json:"unit"`
}

// PriceDetail carries the parsed bound of an EntityPrice match.
// Min is set for over/range, Max for under/range, both for exact (Min == Max).
type PriceDetail struct {
	Kind PriceKind `json:"kind"`
	Min  float64   `json:"min,omitempty"`
	Max  float64   `json:"max,omitempty"`
}

// EntityMatch is one typed fragment of meaning found in the query text.
type EntityMatch struct {
	Type EntityType `json:"type"`
	// Raw is the matched span of the normalized query.
	Raw string `json:"raw_span"`
	// Normalized is the canonical value ("resistor" for "res", "Ω" units, etc.).
	Normalized string `json:"normalized_value"`
	// Confidence is the extractor's trust in this match, in [0,1].
	Confidence float64 `json:"match_confidence"`

	// Value is set only for EntityValue matches.
	Value *ValueDetail `json:"value,omitempty"`
	// Price is set only for EntityPrice matches.
	Price *PriceDetail `json:"price,omitempty"`
}

// Intent is the classified purpose of a query. It seeds the base confidence
// and diagnostics only; it never gates which filters are applied.
type Intent int

const (
	// IntentUnclassified means no rule matched; base confidence is zero and
	// the query falls back to full-text search.
	IntentUnclassified Intent = iota
	// IntentSearchByType is an explicit component search ("find resistors").
	IntentSearchByType
	// IntentFilterByStock filters on stock availability.
	IntentFilterByStock
	// IntentFilterByLocation filters on storage location.
	IntentFilterByLocation
	// IntentFilterByValue filters on an electrical value.
	IntentFilterByValue
	// IntentFilterByPrice filters on price.
	IntentFilterByPrice
)

// String returns a string representation of the intent.
func (i Intent) String() string {
	switch i {
	case IntentSearchByType:
		return "search_by_type"
	case IntentFilterByStock:
		return "filter_by_stock"
	case IntentFilterByLocation:
		return "filter_by_location"
	case IntentFilterByValue:
		return "filter_by_value"
	case IntentFilterByPrice:
		return "filter_by_price"
	case IntentUnclassified:
		return "unclassified"
	default:
		return "unknown"
	}
}

// ParsedQuery is the full output of the parsing pipeline for one query.
// It is a value object built fresh per request; nothing is shared or persisted.
type ParsedQuery struct {
	// Raw is the normalized (trimmed, lower-cased) query string.
	Raw string
	// Intent is the winning classification rule's label.
	Intent Intent
	// Entities holds at most one match per entity type
	// (highest confidence, then longest span).
	Entities map[EntityType]EntityMatch
	// Confidence is the aggregated trust in the structured interpretation, in [0,1].
	Confidence float64
	// Fallback is true iff Confidence is below the threshold or no entities matched.
	Fallback bool
}

// ParseResult is the routing contract handed to the search layer.
// Entities contains the mapped (and manual-merged) structured filter
// parameters; when FallbackToFTS is true the consumer uses Query as a
// full-text search term instead.
type ParseResult struct {
	Query         string         `json:"query"`
	Confidence    float64        `json:"confidence"`
	Intent        string         `json:"intent"`
	Entities      map[string]any `json:"parsed_entities"`
	FallbackToFTS bool           `json:"fallback_to_fts"`
	Error         string         `json:"error,omitempty"`
}
