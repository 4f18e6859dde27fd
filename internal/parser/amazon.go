package parser

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// AmazonParser extracts the price from an Amazon product page.
//
// Amazon renders the price split across sibling spans; this parser
// reads only the whole-number element (span.a-price-whole), so
// sub-unit precision is discarded. That is a known approximation kept
// on purpose, not a bug.
type AmazonParser struct{}

var amazonDigitCleaner = strings.NewReplacer(",", "", ".", "")

// Extract locates the first span.a-price-whole element, strips
// thousands separators and decimal punctuation, and parses the
// remaining digit string. A missing element yields absence; that is
// the normal signal for changed markup or an unlisted price.
func (AmazonParser) Extract(body []byte) (PriceResult, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return NoPrice, fmt.Errorf("HTML parse error: %w", err)
	}

	sel := doc.Find("span.a-price-whole").First()
	if sel.Length() == 0 {
		return NoPrice, nil
	}

	text := strings.TrimSpace(sel.Text())
	digits := strings.TrimSpace(amazonDigitCleaner.Replace(text))

	price, err := strconv.ParseFloat(digits, 64)
	if err != nil || price < 0 {
		return NoPrice, fmt.Errorf("price text %q is not a valid number", text)
	}

	return Price(price), nil
}
