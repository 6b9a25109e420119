// Package keyword provides the Bleve implementation of ComponentIndex.
package keyword

import (
	"context"
	"fmt"
	"os"
	"sort"

	"github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/analysis/analyzer/standard"

	"github.com/hyperjump/zaiko/internal/models"
)

// componentDoc is the flat shape handed to Bleve. Only the searchable text
// fields are indexed; everything else lives in SQLite.
type componentDoc struct {
	Name         string `json:"name"`
	Description  string `json:"description"`
	Category     string `json:"category"`
	Manufacturer string `json:"manufacturer"`
	PartNumber   string `json:"part_number"`
	Location     string `json:"location"`
}

// BleveIndex implements ComponentIndex using Bleve.
type BleveIndex struct {
	index bleve.Index
}

// NewBleveIndex creates or opens a Bleve index at path.
// An existing index is opened and reused so restarts do not re-index the
// inventory. If the mapping changes in code, remove the index directory to
// force a full re-index.
func NewBleveIndex(path string) (*BleveIndex, error) {
	im := bleve.NewIndexMapping()

	docMapping := bleve.NewDocumentMapping()
	textFieldMapping := bleve.NewTextFieldMapping()
	// Standard analyzer (lowercase + tokenize, no stemming) so part names
	// like "LM358" and categories like "resistor" match exactly as typed.
	textFieldMapping.Analyzer = standard.Name
	for _, field := range []string{"name", "description", "category", "manufacturer", "location"} {
		docMapping.AddFieldMappingsAt(field, textFieldMapping)
	}
	keywordFieldMapping := bleve.NewKeywordFieldMapping()
	docMapping.AddFieldMappingsAt("part_number", keywordFieldMapping)
	im.AddDocumentMapping("component", docMapping)
	im.DefaultType = "component"
	im.DefaultMapping = docMapping

	if _, err := os.Stat(path); err == nil {
		index, openErr := bleve.Open(path)
		if openErr != nil {
			return nil, fmt.Errorf("failed to open Bleve index: %w", openErr)
		}
		return &BleveIndex{index: index}, nil
	}

	index, err := bleve.New(path, im)
	if err != nil {
		return nil, fmt.Errorf("failed to create Bleve index: %w", err)
	}
	return &BleveIndex{index: index}, nil
}

// Index indexes a component by id.
func (b *BleveIndex) Index(ctx context.Context, id string, c *models.Component) error {
	return b.index.Index(id, componentDoc{
		Name:         c.Name,
		Description:  c.Description,
		Category:     c.Category,
		Manufacturer: c.Manufacturer,
		PartNumber:   c.PartNumber,
		Location:     c.Location,
	})
}

// Search runs a match query and returns up to limit results.
// When opts is nil or NameBoost <= 1, a single match query over all fields is
// used. When opts.NameBoost > 1, a separate name query is run and merged with
// additive scoring so name hits outrank description hits.
func (b *BleveIndex) Search(ctx context.Context, query string, limit int, opts *SearchOptions) ([]*Result, error) {
	nameBoost := 1.0
	if opts != nil && opts.NameBoost > 0 {
		nameBoost = opts.NameBoost
	}
	if nameBoost <= 1.0 {
		return b.searchSingle(query, limit)
	}
	return b.searchWithNameBoost(query, limit, nameBoost)
}

func (b *BleveIndex) searchSingle(query string, limit int) ([]*Result, error) {
	search := bleve.NewSearchRequest(bleve.NewMatchQuery(query))
	search.Size = limit
	results, err := b.index.Search(search)
	if err != nil {
		return nil, fmt.Errorf("Bleve search failed: %w", err)
	}
	out := make([]*Result, len(results.Hits))
	for i, hit := range results.Hits {
		out[i] = &Result{ID: hit.ID, Score: hit.Score}
	}
	return out, nil
}

func (b *BleveIndex) searchWithNameBoost(query string, limit int, nameBoost float64) ([]*Result, error) {
	// Request enough from each so the merged top "limit" is correct (the
	// same component can appear in both result sets).
	reqSize := limit * 2
	if reqSize < 50 {
		reqSize = 50
	}

	nameQuery := bleve.NewMatchQuery(query)
	nameQuery.SetField("name")
	nameReq := bleve.NewSearchRequest(nameQuery)
	nameReq.Size = reqSize

	allReq := bleve.NewSearchRequest(bleve.NewMatchQuery(query))
	allReq.Size = reqSize

	nameResults, err := b.index.Search(nameReq)
	if err != nil {
		return nil, fmt.Errorf("Bleve name search failed: %w", err)
	}
	allResults, err := b.index.Search(allReq)
	if err != nil {
		return nil, fmt.Errorf("Bleve search failed: %w", err)
	}

	scores := make(map[string]float64)
	for _, hit := range allResults.Hits {
		scores[hit.ID] = hit.Score
	}
	for _, hit := range nameResults.Hits {
		scores[hit.ID] += hit.Score * nameBoost
	}

	type scored struct {
		id    string
		score float64
	}
	merged := make([]scored, 0, len(scores))
	for id, score := range scores {
		merged = append(merged, scored{id: id, score: score})
	}
	sort.Slice(merged, func(i, j int) bool {
		if merged[i].score != merged[j].score {
			return merged[i].score > merged[j].score
		}
		return merged[i].id < merged[j].id
	})
	if len(merged) > limit {
		merged = merged[:limit]
	}

	out := make([]*Result, len(merged))
	for i, s := range merged {
		out[i] = &Result{ID: s.id, Score: s.score}
	}
	return out, nil
}

// Delete removes a component from the index.
func (b *BleveIndex) Delete(ctx context.Context, id string) error {
	return b.index.Delete(id)
}

// Close closes the Bleve index.
func (b *BleveIndex) Close() error {
	return b.index.Close()
}

// DocCount returns the total number of indexed components.
func (b *BleveIndex) DocCount() (uint64, error) {
	return b.index.DocCount()
}
