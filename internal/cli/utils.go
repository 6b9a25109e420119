// Package cli provides CLI utilities for Zaiko.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/hyperjump/zaiko/internal/models"
)

// SearchOutputFormat is the format for search result output.
type SearchOutputFormat string

const (
	// OutputText is human-readable text (default).
	OutputText SearchOutputFormat = "text"
	// OutputJSON is structured JSON for machine consumption.
	OutputJSON SearchOutputFormat = "json"
)

// WriteSearchResults writes search results to w in the given format.
// Use OutputJSON for parseable output consumable by other apps.
func WriteSearchResults(w io.Writer, response *models.SearchResponse, format SearchOutputFormat) error {
	switch format {
	case OutputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(response)
	default:
		writeSearchResultsText(w, response)
		return nil
	}
}

func writeSearchResultsText(w io.Writer, response *models.SearchResponse) {
	fmt.Fprintf(w, "\nFound %d components in %dms\n", response.Total, response.QueryTime)
	if nl := response.NL; nl != nil {
		mode := "structured filters"
		if nl.FallbackToFTS {
			mode = "full-text search"
		}
		fmt.Fprintf(w, "Interpreted as %s (confidence %.2f) via %s\n", nl.Intent, nl.Confidence, mode)
	}
	fmt.Fprintln(w)
	for _, c := range response.Components {
		writeOneComponent(w, c)
	}
}

func writeOneComponent(w io.Writer, c *models.Component) {
	fmt.Fprintf(w, "─────────────────────────────────────────────────────────\n")
	fmt.Fprintf(w, "%s  [%s]\n", c.Name, c.Category)
	fmt.Fprintf(w, "ID: %s\n", c.ID)
	if c.Manufacturer != "" || c.PartNumber != "" {
		fmt.Fprintf(w, "Manufacturer: %s  Part: %s\n", c.Manufacturer, c.PartNumber)
	}
	fmt.Fprintf(w, "Stock: %d (%s)", c.Quantity, c.StockStatus())
	if c.Location != "" {
		fmt.Fprintf(w, "  Location: %s", c.Location)
	}
	fmt.Fprintln(w)
	if c.UnitPrice > 0 {
		fmt.Fprintf(w, "Unit price: $%.2f\n", c.UnitPrice)
	}
	if c.Description != "" {
		fmt.Fprintf(w, "\n%s\n", Truncate(c.Description, 200))
	}
	fmt.Fprintln(w)
}

// PrintSearchResults prints search results to stdout in text format (backward compatible).
func PrintSearchResults(response *models.SearchResponse) {
	_ = WriteSearchResults(os.Stdout, response, OutputText)
}

// Truncate truncates s to maxLen and appends "..." if truncated.
func Truncate(s string, maxLen int) string {
	if maxLen <= 0 || len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}

// TruncateWords returns up to maxWords from the space-separated string.
func TruncateWords(s string, maxWords int) string {
	words := strings.Fields(s)
	if len(words) <= maxWords {
		return s
	}
	return strings.Join(words[:maxWords], " ") + "..."
}
