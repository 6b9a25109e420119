// Package e2e exercises the full search stack over a realistic parts inventory.
package e2e

import "github.com/hyperjump/zaiko/internal/models"

// QueryTestCase defines a query and the component ID(s) it must surface.
// Structured queries assert the exact result set; full-text fallback queries
// only require that every expected ID appears somewhere in the results.
type QueryTestCase struct {
	Query       string
	ExpectedIDs []string
	Exact       bool
	Description string
}

// Corpus holds components and query test cases for the E2E tests.
type Corpus struct {
	Components []*models.Component
	TestCases  []QueryTestCase
}

func fp(v float64) *float64 { return &v }

// BuildCorpus returns a small but varied inventory: every category, package,
// location, and stock situation the query test cases rely on.
func BuildCorpus() *Corpus {
	components := []*models.Component{
		{ID: "res-10k-0805", Name: "10k resistor 1%", Category: "resistor",
			Manufacturer: "yageo", Package: "0805", Location: "a1",
			Quantity: 500, MinQuantity: 100, UnitPrice: 0.02, Resistance: fp(10000)},
		{ID: "res-4k7-tht", Name: "4.7k resistor", Category: "resistor",
			Manufacturer: "vishay", Package: "THT", Location: "a1",
			Quantity: 20, MinQuantity: 50, UnitPrice: 0.05, Resistance: fp(4700)},
		{ID: "res-100r-0603", Name: "100 ohm resistor", Category: "resistor",
			Manufacturer: "yageo", Package: "0603", Location: "a2",
			Quantity: 300, MinQuantity: 100, UnitPrice: 0.01, Resistance: fp(100)},
		{ID: "res-1m-0805", Name: "1M resistor", Category: "resistor",
			Manufacturer: "yageo", Package: "0805", Location: "a2",
			Quantity: 0, MinQuantity: 50, UnitPrice: 0.02, Resistance: fp(1e6)},
		{ID: "cap-100n-0603", Name: "100nF ceramic capacitor", Category: "capacitor",
			Manufacturer: "murata", Package: "0603", Location: "b1",
			Quantity: 1000, MinQuantity: 200, UnitPrice: 0.01,
			Capacitance: fp(100e-9), Voltage: fp(50)},
		{ID: "cap-10u-elec", Name: "10uF electrolytic capacitor", Category: "capacitor",
			Manufacturer: "panasonic", Package: "THT", Location: "b2",
			Quantity: 80, MinQuantity: 40, UnitPrice: 0.08,
			Capacitance: fp(10e-6), Voltage: fp(25)},
		{ID: "cap-1u-0805", Name: "1uF ceramic capacitor", Category: "capacitor",
			Manufacturer: "samsung", Package: "0805", Location: "b1",
			Quantity: 15, MinQuantity: 100, UnitPrice: 0.03, Capacitance: fp(1e-6)},
		{ID: "ic-lm358", Name: "LM358 dual opamp", Category: "ic",
			Manufacturer: "texas instruments", Package: "DIP-8", Location: "shelf-3",
			Quantity: 40, MinQuantity: 10, UnitPrice: 0.45},
		{ID: "ic-ne555", Name: "NE555 timer", Category: "ic",
			Manufacturer: "texas instruments", Package: "DIP-8", Location: "shelf-3",
			Quantity: 60, MinQuantity: 20, UnitPrice: 0.30},
		{ID: "mcu-atmega328", Name: "ATmega328P", Category: "microcontroller",
			Manufacturer: "microchip", Package: "TQFP-32", Location: "shelf-4",
			Quantity: 8, MinQuantity: 10, UnitPrice: 2.20},
		{ID: "mod-esp32", Name: "ESP32-WROOM-32 module", Category: "module",
			Manufacturer: "espressif", Package: "SMD", Location: "shelf-4",
			Quantity: 12, MinQuantity: 5, UnitPrice: 3.80},
		{ID: "ind-10uh", Name: "10uH power inductor", Category: "inductor",
			Manufacturer: "tdk", Package: "0805", Location: "c1",
			Quantity: 200, MinQuantity: 50, UnitPrice: 0.04, Inductance: fp(10e-6)},
		{ID: "dio-1n4148", Name: "1N4148 switching diode", Category: "diode",
			Manufacturer: "onsemi", Package: "THT", Location: "c2",
			Quantity: 500, MinQuantity: 100, UnitPrice: 0.01},
		{ID: "led-red-5mm", Name: "red LED 5mm", Category: "led",
			Manufacturer: "kingbright", Package: "THT", Location: "c2",
			Quantity: 300, MinQuantity: 100, UnitPrice: 0.02},
		{ID: "tr-2n2222", Name: "2N2222 NPN transistor", Category: "transistor",
			Manufacturer: "onsemi", Package: "TO-92", Location: "c3",
			Quantity: 150, MinQuantity: 50, UnitPrice: 0.03},
		{ID: "tr-irf540", Name: "IRF540N MOSFET", Category: "transistor",
			Manufacturer: "infineon", Package: "TO-220", Location: "c3",
			Quantity: 25, MinQuantity: 10, UnitPrice: 0.60, Current: fp(33)},
		{ID: "xtal-16mhz", Name: "16MHz crystal", Category: "crystal",
			Manufacturer: "abracon", Package: "HC-49", Location: "d1",
			Quantity: 90, MinQuantity: 30, UnitPrice: 0.15, Frequency: fp(16e6)},
		{ID: "conn-usb-c", Name: "USB-C receptacle", Category: "connector",
			Manufacturer: "amphenol", Package: "SMD", Location: "drawer b2",
			Quantity: 45, MinQuantity: 20, UnitPrice: 0.35},
		{ID: "conn-header-254", Name: "2.54mm pin header", Category: "connector",
			Manufacturer: "sullins", Package: "THT", Location: "drawer b2",
			Quantity: 400, MinQuantity: 100, UnitPrice: 0.05},
		{ID: "vreg-ams1117", Name: "AMS1117-3.3 regulator", Category: "voltage_regulator",
			Manufacturer: "ams", Package: "SOT-223", Location: "shelf-4",
			Quantity: 70, MinQuantity: 20, UnitPrice: 0.12, Voltage: fp(3.3)},
	}

	cases := []QueryTestCase{
		{
			Query:       "find resistors",
			ExpectedIDs: []string{"res-10k-0805", "res-4k7-tht", "res-100r-0603", "res-1m-0805"},
			Exact:       true,
			Description: "category from action verb query",
		},
		{
			Query:       "resistors with low stock",
			ExpectedIDs: []string{"res-4k7-tht"},
			Exact:       true,
			Description: "category combined with stock status",
		},
		{
			Query:       "find 10k resistors",
			ExpectedIDs: []string{"res-10k-0805"},
			Exact:       true,
			Description: "resistance value with tolerance window",
		},
		{
			Query:       "capacitors under $0.05",
			ExpectedIDs: []string{"cap-100n-0603", "cap-1u-0805"},
			Exact:       true,
			Description: "price ceiling on a category",
		},
		{
			Query:       "parts in drawer b2",
			ExpectedIDs: []string{"conn-usb-c", "conn-header-254"},
			Exact:       true,
			Description: "preposition-guided location phrase",
		},
		{
			Query:       "ti chips in stock",
			ExpectedIDs: []string{"ic-lm358", "ic-ne555"},
			Exact:       true,
			Description: "manufacturer alias with availability",
		},
		{
			Query:       "ics on shelf-3",
			ExpectedIDs: []string{"ic-lm358", "ic-ne555"},
			Exact:       true,
			Description: "named location with category",
		},
		{
			Query:       "16mhz crystals",
			ExpectedIDs: []string{"xtal-16mhz"},
			Exact:       true,
			Description: "frequency value on a category",
		},
		{
			Query:       "esp32 wroom",
			ExpectedIDs: []string{"mod-esp32"},
			Description: "part name falls back to full-text search",
		},
		{
			Query:       "lm358",
			ExpectedIDs: []string{"ic-lm358"},
			Description: "bare part number falls back to full-text search",
		},
	}

	return &Corpus{Components: components, TestCases: cases}
}
