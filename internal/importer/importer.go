// Package importer loads components in bulk from spreadsheets.
package importer

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/hyperjump/zaiko/internal/models"
	"github.com/hyperjump/zaiko/internal/search"
)

// Report summarizes one import run. Row numbers in Errors are 1-based and
// include the header row, matching what the user sees in a spreadsheet.
type Report struct {
	Imported int      `json:"imported"`
	Skipped  int      `json:"skipped"`
	Errors   []string `json:"errors,omitempty"`
}

// Importer reads component rows from xlsx spreadsheets and stores them
// through the search engine so they are indexed as they land.
type Importer struct {
	engine *search.Engine
	logger *zap.Logger
}

// New creates an importer.
func New(engine *search.Engine, logger *zap.Logger) *Importer {
	return &Importer{engine: engine, logger: logger}
}

// Import reads an xlsx spreadsheet from r. The first sheet is used; its first
// row must be a header naming the columns. Bad rows are skipped and counted,
// they never abort the run.
func (imp *Importer) Import(ctx context.Context, r io.Reader) (*Report, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open spreadsheet: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("spreadsheet has no sheets")
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheets[0], err)
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("sheet %q has no data rows", sheets[0])
	}

	columns := headerColumns(rows[0])
	if _, ok := columns["name"]; !ok {
		return nil, fmt.Errorf("header row is missing the name column")
	}

	report := &Report{}
	for i, row := range rows[1:] {
		rowNum := i + 2
		c, err := componentFromRow(columns, row)
		if err != nil {
			report.Skipped++
			report.Errors = append(report.Errors, fmt.Sprintf("row %d: %v", rowNum, err))
			continue
		}
		if err := imp.engine.CreateComponent(ctx, c); err != nil {
			report.Skipped++
			report.Errors = append(report.Errors, fmt.Sprintf("row %d: %v", rowNum, err))
			continue
		}
		report.Imported++
	}

	imp.logger.Info("import finished",
		zap.Int("imported", report.Imported),
		zap.Int("skipped", report.Skipped))
	return report, nil
}

// ImportFile imports the xlsx file at path.
func (imp *Importer) ImportFile(ctx context.Context, path string) (*Report, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer file.Close()
	return imp.Import(ctx, file)
}

// headerColumns maps normalized header names to column positions. Unknown
// headers are kept too; componentFromRow just never reads them.
func headerColumns(header []string) map[string]int {
	columns := make(map[string]int, len(header))
	for i, h := range header {
		key := strings.ToLower(strings.TrimSpace(h))
		key = strings.ReplaceAll(key, " ", "_")
		if key != "" {
			columns[key] = i
		}
	}
	return columns
}

func componentFromRow(columns map[string]int, row []string) (*models.Component, error) {
	cell := func(key string) string {
		i, ok := columns[key]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	name := cell("name")
	if name == "" {
		return nil, fmt.Errorf("name is empty")
	}
	category := cell("category")
	if category == "" {
		return nil, fmt.Errorf("category is empty")
	}

	c := &models.Component{
		ID:           cell("id"),
		Name:         name,
		Description:  cell("description"),
		Category:     strings.ToLower(category),
		Manufacturer: cell("manufacturer"),
		PartNumber:   cell("part_number"),
		Package:      cell("package"),
		Location:     cell("location"),
	}
	if c.ID == "" {
		c.ID = uuid.NewString()
	}

	var err error
	if c.Quantity, err = cellInt(cell("quantity")); err != nil {
		return nil, fmt.Errorf("quantity: %w", err)
	}
	if c.MinQuantity, err = cellInt(cell("min_quantity")); err != nil {
		return nil, fmt.Errorf("min_quantity: %w", err)
	}
	if c.UnitPrice, err = cellFloat(cell("unit_price")); err != nil {
		return nil, fmt.Errorf("unit_price: %w", err)
	}

	values := map[string]**float64{
		"resistance":  &c.Resistance,
		"capacitance": &c.Capacitance,
		"voltage":     &c.Voltage,
		"inductance":  &c.Inductance,
		"current":     &c.Current,
		"frequency":   &c.Frequency,
	}
	for key, dst := range values {
		raw := cell(key)
		if raw == "" {
			continue
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", key, err)
		}
		*dst = &v
	}
	return c, nil
}

func cellInt(raw string) (int, error) {
	if raw == "" {
		return 0, nil
	}
	return strconv.Atoi(raw)
}

func cellFloat(raw string) (float64, error) {
	if raw == "" {
		return 0, nil
	}
	return strconv.ParseFloat(raw, 64)
}
