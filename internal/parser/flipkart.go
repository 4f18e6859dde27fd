package parser

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// FlipkartParser extracts the price from a Flipkart product page.
//
// Flipkart's CSS class names churn too often for structural selectors
// to survive, so extraction scans the raw body for the first
// currency-prefixed, comma-grouped numeral instead.
type FlipkartParser struct{}

var flipkartPricePattern = regexp.MustCompile(`₹([\d,]+)`)

// Extract takes the first ₹-prefixed numeral in document order as the
// canonical price, with thousands separators stripped. No match yields
// absence.
func (FlipkartParser) Extract(body []byte) (PriceResult, error) {
	match := flipkartPricePattern.FindSubmatch(body)
	if match == nil {
		return NoPrice, nil
	}

	text := string(match[1])
	digits := strings.ReplaceAll(text, ",", "")

	price, err := strconv.ParseFloat(digits, 64)
	if err != nil {
		return NoPrice, fmt.Errorf("price text %q is not a valid number", text)
	}

	return Price(price), nil
}
