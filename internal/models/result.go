package models

// NLMetadata describes how the query text was interpreted.
type NLMetadata struct {
	Query string `json:"query"`
	// Confidence of the structured interpretation, in [0,1].
	Confidence float64 `json:"confidence"`
	Intent     string  `json:"intent"`
	// ParsedEntities holds the filter parameters derived from the text,
	// merged with any manual filters.
	ParsedEntities map[string]interface{} `json:"parsed_entities"`
	// FallbackToFTS is true when full-text search answered the query
	// instead of structured filters. The field name predates the move
	// away from SQLite FTS5 and is kept for API compatibility.
	FallbackToFTS bool `json:"fallback_to_fts5"`
}

// SearchResponse is the response for a search request.
type SearchResponse struct {
	Components []*Component `json:"components"`
	// Total counts all matches, not just the returned page.
	Total     int         `json:"total"`
	QueryTime int64       `json:"query_time_ms"`
	NL        *NLMetadata `json:"nl_metadata,omitempty"`
}
