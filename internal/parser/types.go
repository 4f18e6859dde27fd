package parser

// Platform identifies one supported retail site
type Platform string

const (
	PlatformAmazon   Platform = "amazon"
	PlatformFlipkart Platform = "flipkart"
)

// PriceResult carries an extracted price or an explicit absence.
// Absence is the expected outcome when a page stops showing a price or
// changes its markup; it is distinct from a numeric zero and from an
// error.
type PriceResult struct {
	Value float64
	Found bool
}

// NoPrice is the absence marker
var NoPrice = PriceResult{}

// Price wraps a present price value
func Price(value float64) PriceResult {
	return PriceResult{Value: value, Found: true}
}

// Parser extracts a price from raw page content.
//
// A nil error with NoPrice means the page holds no recognizable price;
// a non-nil error means matched text failed to parse as a number. The
// dispatcher logs the error and degrades it to absence either way.
type Parser interface {
	Extract(body []byte) (PriceResult, error)
}
