// Package storage defines the persistence interface for inventory components.
package storage

import (
	"context"

	"github.com/hyperjump/zaiko/internal/models"
)

// Store defines component persistence and structured query operations.
type Store interface {
	// Component operations
	CreateComponent(ctx context.Context, c *models.Component) error
	GetComponent(ctx context.Context, id string) (*models.Component, error)
	UpdateComponent(ctx context.Context, c *models.Component) error
	DeleteComponent(ctx context.Context, id string) error
	ListComponents(ctx context.Context, offset, limit int) ([]*models.Component, error)
	GetComponentsByIDs(ctx context.Context, ids []string) ([]*models.Component, error)

	// SearchComponents executes a structured filtered query. Filter keys
	// follow the parameter mapper's vocabulary (category, stock_status,
	// location, package, manufacturer, electrical kinds, price bounds, ids).
	// Returns the page of components plus the unpaged match count.
	SearchComponents(ctx context.Context, filters map[string]interface{}, limit, offset int) ([]*models.Component, int, error)

	// Facets
	ListCategories(ctx context.Context) ([]string, error)
	ListLocations(ctx context.Context) ([]string, error)

	// Stats
	CountComponents(ctx context.Context) (int64, error)
	CountLowStock(ctx context.Context) (int64, error)

	Close() error
}
