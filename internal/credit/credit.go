// Package credit reads a running debt figure out of credit-report text.
package credit

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// DefaultMarker is the currency sign that tags debt figures.
const DefaultMarker = "₪"

// Extractor computes one non-negative debt total for a credit report.
type Extractor interface {
	Total(text string) decimal.Decimal
}

// MarkerExtractor sums every number that immediately follows the currency
// marker on any line containing it.
//
// This is a heuristic: a report that prints both a subtotal and its
// principal/interest breakdown is counted twice.
type MarkerExtractor struct {
	Marker string

	pattern *regexp.Regexp
}

// NewMarkerExtractor builds an extractor for marker, or DefaultMarker when empty.
func NewMarkerExtractor(marker string) *MarkerExtractor {
	if marker == "" {
		marker = DefaultMarker
	}
	return &MarkerExtractor{Marker: marker, pattern: markerPattern(marker)}
}

func markerPattern(marker string) *regexp.Regexp {
	return regexp.MustCompile(regexp.QuoteMeta(marker) + `[ \t\x{00A0}]*(\d[\d,]*(?:\.\d+)?)`)
}

// Total implements Extractor.
func (e *MarkerExtractor) Total(text string) decimal.Decimal {
	marker, pattern := e.Marker, e.pattern
	if marker == "" {
		marker = DefaultMarker
	}
	if pattern == nil {
		pattern = markerPattern(marker)
	}

	total := decimal.Zero
	for _, line := range strings.Split(text, "\n") {
		if !strings.Contains(line, marker) {
			continue
		}
		for _, m := range pattern.FindAllStringSubmatch(line, -1) {
			v, err := decimal.NewFromString(strings.ReplaceAll(m[1], ",", ""))
			if err != nil {
				continue
			}
			total = total.Add(v)
		}
	}
	return total
}
