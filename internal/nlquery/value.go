package nlquery

import (
	"fmt"
	"regexp"
	"strconv"
)

const (
	valueUnitConfidence      = 0.9
	valueShorthandConfidence = 0.7
)

// valueGrammar recognizes one quantity kind. Unit vocabularies are disjoint
// across kinds, so a voltage can never parse as a capacitance.
type valueGrammar struct {
	kind       ValueKind
	re         *regexp.Regexp
	symbol     string
	prefixes   map[string]float64
	confidence float64
}

// Input is already lower-cased, so Ω appears as ω and unit letters are
// lower-case. Word boundaries cannot follow ω (non-ASCII), hence the
// ohm alternation shape.
var valueGrammars = []valueGrammar{
	{
		kind:   KindResistance,
		re:     regexp.MustCompile(`\b(\d+(?:\.\d+)?)\s*(k|meg|m|g)?\s*(?:ohms?\b|ω)`),
		symbol: "Ω",
		// Resistor shorthand: both "m" and "meg" read as megaohm.
		prefixes:   map[string]float64{"k": 1e3, "meg": 1e6, "m": 1e6, "g": 1e9},
		confidence: valueUnitConfidence,
	},
	{
		// Bare metric suffix with no unit ("10k", "4.7meg") is resistance
		// by electronics convention.
		kind:       KindResistance,
		re:         regexp.MustCompile(`\b(\d+(?:\.\d+)?)(k|meg|m|g)\b`),
		symbol:     "Ω",
		prefixes:   map[string]float64{"k": 1e3, "meg": 1e6, "m": 1e6, "g": 1e9},
		confidence: valueShorthandConfidence,
	},
	{
		kind:       KindCapacitance,
		re:         regexp.MustCompile(`\b(\d+(?:\.\d+)?)\s*(p|n|u|µ|m)?f(?:arads?)?\b`),
		symbol:     "F",
		prefixes:   map[string]float64{"p": 1e-12, "n": 1e-9, "u": 1e-6, "µ": 1e-6, "m": 1e-3},
		confidence: valueUnitConfidence,
	},
	{
		kind:       KindVoltage,
		re:         regexp.MustCompile(`\b(\d+(?:\.\d+)?)\s*(m|k)?v(?:olts?)?\b`),
		symbol:     "V",
		prefixes:   map[string]float64{"m": 1e-3, "k": 1e3},
		confidence: valueUnitConfidence,
	},
	{
		kind:       KindInductance,
		re:         regexp.MustCompile(`\b(\d+(?:\.\d+)?)\s*(n|u|µ|m)?h(?:enr(?:y|ies))?\b`),
		symbol:     "H",
		prefixes:   map[string]float64{"n": 1e-9, "u": 1e-6, "µ": 1e-6, "m": 1e-3},
		confidence: valueUnitConfidence,
	},
	{
		kind:       KindCurrent,
		re:         regexp.MustCompile(`\b(\d+(?:\.\d+)?)\s*(m|u|µ)?a(?:mps?|mperes?)?\b`),
		symbol:     "A",
		prefixes:   map[string]float64{"m": 1e-3, "u": 1e-6, "µ": 1e-6},
		confidence: valueUnitConfidence,
	},
	{
		kind:       KindFrequency,
		re:         regexp.MustCompile(`\b(\d+(?:\.\d+)?)\s*(k|meg|m|g)?\s*(?:hz|hertz)\b`),
		symbol:     "Hz",
		prefixes:   map[string]float64{"k": 1e3, "meg": 1e6, "m": 1e6, "g": 1e9},
		confidence: valueUnitConfidence,
	},
}

// ValueExtractor matches electrical values like "10k", "100pF", "3.3V",
// "16MHz" and normalizes unit synonyms.
type ValueExtractor struct{}

// NewValueExtractor returns a value extractor.
func NewValueExtractor() *ValueExtractor { return &ValueExtractor{} }

// Type implements Extractor.
func (e *ValueExtractor) Type() EntityType { return EntityValue }

// Extract implements Extractor.
func (e *ValueExtractor) Extract(text string) []EntityMatch {
	var out []EntityMatch
	for _, g := range valueGrammars {
		m := g.re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		number, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			continue
		}
		magnitude := number
		if m[2] != "" {
			magnitude *= g.prefixes[m[2]]
		}
		out = append(out, EntityMatch{
			Type:       EntityValue,
			Raw:        m[0],
			Normalized: fmt.Sprintf("%g%s", magnitude, g.symbol),
			Confidence: g.confidence,
			Value: &ValueDetail{
				Kind:      g.kind,
				Magnitude: magnitude,
				Unit:      g.symbol,
			},
		})
	}
	return out
}
