// Package models defines core data structures for components, queries, and search results.
package models

import "time"

// Stock status values derived from quantity and min_quantity.
const (
	StockAvailable = "available"
	StockLow       = "low"
	StockOut       = "out"
)

// Component represents a stored inventory part with stock and pricing data.
type Component struct {
	ID           string  `json:"id" db:"id"`
	Name         string  `json:"name" db:"name"`
	Description  string  `json:"description,omitempty" db:"description"`
	Category     string  `json:"category" db:"category"`
	Manufacturer string  `json:"manufacturer,omitempty" db:"manufacturer"`
	PartNumber   string  `json:"part_number,omitempty" db:"part_number"`
	Package      string  `json:"package,omitempty" db:"package"`
	Location     string  `json:"location,omitempty" db:"location"`
	Quantity     int     `json:"quantity" db:"quantity"`
	MinQuantity  int     `json:"min_quantity" db:"min_quantity"`
	UnitPrice    float64 `json:"unit_price" db:"unit_price"`

	// Electrical characteristics in base units; nil when not applicable
	// to the component's category.
	Resistance  *float64 `json:"resistance,omitempty" db:"resistance"`
	Capacitance *float64 `json:"capacitance,omitempty" db:"capacitance"`
	Voltage     *float64 `json:"voltage,omitempty" db:"voltage"`
	Inductance  *float64 `json:"inductance,omitempty" db:"inductance"`
	Current     *float64 `json:"current,omitempty" db:"current"`
	Frequency   *float64 `json:"frequency,omitempty" db:"frequency"`

	// LastUsedAt is nil for components never taken from stock.
	LastUsedAt *time.Time `json:"last_used_at,omitempty" db:"last_used_at"`
	CreatedAt  time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at" db:"updated_at"`
}

// StockStatus derives the availability label from the quantity fields.
func (c *Component) StockStatus() string {
	switch {
	case c.Quantity <= 0:
		return StockOut
	case c.Quantity < c.MinQuantity:
		return StockLow
	default:
		return StockAvailable
	}
}

// NeedsReorder reports whether the component is at or below its minimum.
func (c *Component) NeedsReorder() bool {
	return c.Quantity <= c.MinQuantity
}

// ComponentInput is the input for creating or updating a component.
type ComponentInput struct {
	ID           string  `json:"id,omitempty"`
	Name         string  `json:"name"`
	Description  string  `json:"description,omitempty"`
	Category     string  `json:"category"`
	Manufacturer string  `json:"manufacturer,omitempty"`
	PartNumber   string  `json:"part_number,omitempty"`
	Package      string  `json:"package,omitempty"`
	Location     string  `json:"location,omitempty"`
	Quantity     int     `json:"quantity"`
	MinQuantity  int     `json:"min_quantity,omitempty"`
	UnitPrice    float64 `json:"unit_price,omitempty"`

	Resistance  *float64 `json:"resistance,omitempty"`
	Capacitance *float64 `json:"capacitance,omitempty"`
	Voltage     *float64 `json:"voltage,omitempty"`
	Inductance  *float64 `json:"inductance,omitempty"`
	Current     *float64 `json:"current,omitempty"`
	Frequency   *float64 `json:"frequency,omitempty"`
}
