package nlquery

import (
	"regexp"
	"strings"
)

const (
	packageFamilyConfidence  = 0.9
	packageGenericConfidence = 0.7
)

var (
	// SMD imperial size codes.
	packageImperialRe = regexp.MustCompile(`\b(0201|0402|0603|0805|1206|1210|2010|2512)\b`)
	// Leaded/IC family codes: DIP-8, SOIC-16, SOT-23, TQFP-32, TO-220.
	packageFamilyRe = regexp.MustCompile(`\b(dip|soic|sot|tqfp|qfn|to)-?(\d+)\b`)
	// Generic mount-technology tokens.
	packageGenericRe = regexp.MustCompile(`\b(smd|smt|tht|through[- ]hole)\b`)
)

// PackageExtractor matches component package designators.
type PackageExtractor struct{}

// NewPackageExtractor returns a package extractor.
func NewPackageExtractor() *PackageExtractor { return &PackageExtractor{} }

// Type implements Extractor.
func (e *PackageExtractor) Type() EntityType { return EntityPackage }

// Extract implements Extractor.
func (e *PackageExtractor) Extract(text string) []EntityMatch {
	var out []EntityMatch

	if m := packageImperialRe.FindStringSubmatch(text); m != nil {
		out = append(out, EntityMatch{
			Type:       EntityPackage,
			Raw:        m[1],
			Normalized: m[1],
			Confidence: packageFamilyConfidence,
		})
	}

	if m := packageFamilyRe.FindStringSubmatch(text); m != nil {
		out = append(out, EntityMatch{
			Type:       EntityPackage,
			Raw:        m[0],
			Normalized: strings.ToUpper(m[1]) + "-" + m[2],
			Confidence: packageFamilyConfidence,
		})
	}

	if m := packageGenericRe.FindStringSubmatch(text); m != nil {
		norm := strings.ToUpper(m[1])
		if strings.HasPrefix(m[1], "through") {
			norm = "THT"
		}
		out = append(out, EntityMatch{
			Type:       EntityPackage,
			Raw:        m[1],
			Normalized: norm,
			Confidence: packageGenericConfidence,
		})
	}

	return out
}
