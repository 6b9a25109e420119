// Package keyword provides full-text indexing and search over components.
package keyword

import (
	"context"

	"github.com/hyperjump/zaiko/internal/models"
)

// SearchOptions optional parameters for full-text search. Nil means use defaults.
type SearchOptions struct {
	// NameBoost multiplies the score contribution from matches in the name
	// field. Values > 1 make name matches rank higher (e.g. 3.0). Use 1.0
	// for no boost.
	NameBoost float64
}

// ComponentIndex defines full-text search operations over components.
type ComponentIndex interface {
	Index(ctx context.Context, id string, c *models.Component) error
	Search(ctx context.Context, query string, limit int, opts *SearchOptions) ([]*Result, error)
	Delete(ctx context.Context, id string) error
	Close() error
	// DocCount returns the total number of indexed components.
	DocCount() (uint64, error)
}

// Result is a single full-text search hit.
type Result struct {
	ID    string
	Score float64
}
