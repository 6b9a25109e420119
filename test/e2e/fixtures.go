// This file builds xlsx import fixtures matching the importer's header contract.
package e2e

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/xuri/excelize/v2"

	"github.com/hyperjump/zaiko/internal/models"
)

// importHeaders is the column layout used by the generated import sheets.
// Every column name matches what the importer recognizes.
var importHeaders = []string{
	"id", "name", "description", "category", "manufacturer", "part_number",
	"package", "location", "quantity", "min_quantity", "unit_price",
	"resistance", "capacitance", "voltage", "inductance", "current", "frequency",
}

// ImportSheetBytes renders the components as an xlsx spreadsheet in the
// importer's expected shape: a header row followed by one row per component.
func ImportSheetBytes(components []*models.Component) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	for col, h := range importHeaders {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue("Sheet1", cell, h); err != nil {
			return nil, err
		}
	}

	for row, c := range components {
		values := []string{
			c.ID, c.Name, c.Description, c.Category, c.Manufacturer, c.PartNumber,
			c.Package, c.Location,
			strconv.Itoa(c.Quantity), strconv.Itoa(c.MinQuantity),
			formatFloat(c.UnitPrice),
			formatOptional(c.Resistance), formatOptional(c.Capacitance),
			formatOptional(c.Voltage), formatOptional(c.Inductance),
			formatOptional(c.Current), formatOptional(c.Frequency),
		}
		for col, v := range values {
			if v == "" {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue("Sheet1", cell, v); err != nil {
				return nil, err
			}
		}
	}

	var buf bytes.Buffer
	if _, err := f.WriteTo(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func formatFloat(v float64) string {
	if v == 0 {
		return ""
	}
	return fmt.Sprintf("%g", v)
}

func formatOptional(v *float64) string {
	if v == nil {
		return ""
	}
	return fmt.Sprintf("%g", *v)
}
