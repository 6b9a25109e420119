// Package search provides the inventory search engine: natural-language
// parsing routed to structured SQL filters or full-text fallback.
package search

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/hyperjump/zaiko/internal/config"
	"github.com/hyperjump/zaiko/internal/keyword"
	"github.com/hyperjump/zaiko/internal/models"
	"github.com/hyperjump/zaiko/internal/nlquery"
	"github.com/hyperjump/zaiko/internal/storage"
)

// Engine answers search requests and keeps the SQL store and the full-text
// index in sync on writes.
type Engine struct {
	store  storage.Store
	index  keyword.ComponentIndex
	config *config.SearchConfig
	logger *zap.Logger

	mu     sync.RWMutex
	parser *nlquery.Parser
}

// NewEngine creates a search engine with the given dependencies.
func NewEngine(
	store storage.Store,
	index keyword.ComponentIndex,
	parser *nlquery.Parser,
	cfg *config.SearchConfig,
	logger *zap.Logger,
) *Engine {
	return &Engine{
		store:  store,
		index:  index,
		parser: parser,
		config: cfg,
		logger: logger,
	}
}

// SetParser atomically replaces the query parser. Used by config hot-reload;
// in-flight searches keep the parser they started with.
func (e *Engine) SetParser(p *nlquery.Parser) {
	e.mu.Lock()
	e.parser = p
	e.mu.Unlock()
}

func (e *Engine) currentParser() *nlquery.Parser {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.parser
}

// Search interprets the query text, runs the structured or full-text path,
// and assembles the response envelope.
func (e *Engine) Search(ctx context.Context, query *models.SearchQuery) (*models.SearchResponse, error) {
	startTime := time.Now()
	if err := query.Validate(); err != nil {
		return nil, err
	}
	if query.Limit > e.config.MaxLimit {
		query.Limit = e.config.MaxLimit
	}

	parsed := e.currentParser().ParseToResult(query.Query, query.Filters)
	e.logger.Debug("parsed query",
		zap.String("query", parsed.Query),
		zap.String("intent", parsed.Intent),
		zap.Float64("confidence", parsed.Confidence),
		zap.Bool("fallback", parsed.FallbackToFTS))

	var (
		components []*models.Component
		total      int
		err        error
	)
	// A fallback with no query text can still carry manual filters; that is
	// a structured query, not a full-text one.
	if parsed.FallbackToFTS && query.Query != "" {
		components, total, err = e.fullTextSearch(ctx, query, parsed.Entities)
	} else {
		components, total, err = e.store.SearchComponents(ctx, parsed.Entities, query.Limit, query.Offset)
	}
	if err != nil {
		return nil, err
	}

	if components == nil {
		components = []*models.Component{}
	}
	return &models.SearchResponse{
		Components: components,
		Total:      total,
		QueryTime:  time.Since(startTime).Milliseconds(),
		NL: &models.NLMetadata{
			Query:          parsed.Query,
			Confidence:     parsed.Confidence,
			Intent:         parsed.Intent,
			ParsedEntities: parsed.Entities,
			FallbackToFTS:  parsed.FallbackToFTS,
		},
	}, nil
}

// fullTextSearch answers a fallback query from the Bleve index. When manual
// filters are present they are applied on top of the full-text candidates
// via an id filter; otherwise the index's score order is preserved.
func (e *Engine) fullTextSearch(ctx context.Context, query *models.SearchQuery, manual map[string]interface{}) ([]*models.Component, int, error) {
	hits, err := e.index.Search(ctx, query.Query, e.config.TopKCandidates,
		&keyword.SearchOptions{NameBoost: e.config.NameBoost})
	if err != nil {
		return nil, 0, fmt.Errorf("full-text search failed: %w", err)
	}
	ids := make([]string, len(hits))
	for i, h := range hits {
		ids[i] = h.ID
	}

	if len(manual) > 0 {
		filters := make(map[string]interface{}, len(manual)+1)
		for k, v := range manual {
			filters[k] = v
		}
		filters["ids"] = ids
		return e.store.SearchComponents(ctx, filters, query.Limit, query.Offset)
	}

	start := query.Offset
	end := query.Offset + query.Limit
	if start > len(ids) {
		start = len(ids)
	}
	if end > len(ids) {
		end = len(ids)
	}
	components, err := e.store.GetComponentsByIDs(ctx, ids[start:end])
	if err != nil {
		return nil, 0, err
	}
	return components, len(ids), nil
}

// Parse exposes the parser's interpretation of a query without running a
// search. Used by the parse debugging command.
func (e *Engine) Parse(query string) *nlquery.ParseResult {
	return e.currentParser().ParseToResult(query, nil)
}

// CreateComponent stores a component and indexes it for full-text search.
func (e *Engine) CreateComponent(ctx context.Context, c *models.Component) error {
	if err := e.store.CreateComponent(ctx, c); err != nil {
		return err
	}
	if err := e.index.Index(ctx, c.ID, c); err != nil {
		return fmt.Errorf("component stored but not indexed: %w", err)
	}
	return nil
}

// UpdateComponent updates a component and re-indexes it.
func (e *Engine) UpdateComponent(ctx context.Context, c *models.Component) error {
	if err := e.store.UpdateComponent(ctx, c); err != nil {
		return err
	}
	if err := e.index.Index(ctx, c.ID, c); err != nil {
		return fmt.Errorf("component updated but not re-indexed: %w", err)
	}
	return nil
}

// DeleteComponent removes a component from the store and the index.
func (e *Engine) DeleteComponent(ctx context.Context, id string) error {
	if err := e.store.DeleteComponent(ctx, id); err != nil {
		return err
	}
	if err := e.index.Delete(ctx, id); err != nil {
		e.logger.Warn("failed to remove component from index",
			zap.String("id", id), zap.Error(err))
	}
	return nil
}

// Status describes the engine's data volumes.
type Status struct {
	Components int64  `json:"components"`
	LowStock   int64  `json:"low_stock"`
	Indexed    uint64 `json:"indexed"`
}

// Status returns component and index counts.
func (e *Engine) Status(ctx context.Context) (*Status, error) {
	components, err := e.store.CountComponents(ctx)
	if err != nil {
		return nil, err
	}
	lowStock, err := e.store.CountLowStock(ctx)
	if err != nil {
		return nil, err
	}
	indexed, err := e.index.DocCount()
	if err != nil {
		return nil, err
	}
	return &Status{Components: components, LowStock: lowStock, Indexed: indexed}, nil
}
