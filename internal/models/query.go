package models

import "fmt"

// SearchQuery represents a search request with optional manual filters.
// Filters supplied here always outrank anything inferred from the query text.
type SearchQuery struct {
	Query   string                 `json:"query"`
	Limit   int                    `json:"limit,omitempty"`
	Offset  int                    `json:"offset,omitempty"`
	Filters map[string]interface{} `json:"filters,omitempty"`
}

// Validate ensures the search query has valid fields and sets defaults.
// Returns an error if both the query text and filters are empty; otherwise
// normalizes limit and offset.
func (q *SearchQuery) Validate() error {
	if q.Query == "" && len(q.Filters) == 0 {
		return fmt.Errorf("query cannot be empty")
	}
	if q.Limit <= 0 {
		q.Limit = 10
	}
	if q.Limit > 100 {
		q.Limit = 100
	}
	if q.Offset < 0 {
		q.Offset = 0
	}
	return nil
}
