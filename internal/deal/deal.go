package deal

import (
	"fmt"
	"strconv"
	"strings"

	"pricewatcher/config"
	"pricewatcher/internal/parser"
)

// Record represents one observed price at or below its target
type Record struct {
	ProductName   string  `json:"product_name"`
	Platform      string  `json:"platform"`
	ObservedPrice float64 `json:"observed_price"`
	TargetPrice   float64 `json:"target_price"`
	URL           string  `json:"url"`
}

// Evaluate returns a deal record when the extracted price is present
// and at or below the product's target. The boundary is inclusive, and
// there is no cooldown: a price that stays low is re-reported on every
// run.
func Evaluate(product config.ProductSpec, source config.SourceSpec, result parser.PriceResult) *Record {
	if !result.Found || result.Value > product.TargetPrice {
		return nil
	}

	return &Record{
		ProductName:   product.Name,
		Platform:      source.Platform,
		ObservedPrice: result.Value,
		TargetPrice:   product.TargetPrice,
		URL:           source.URL,
	}
}

// Summary renders the alert body shared by every notification channel
func Summary(records []Record) string {
	var b strings.Builder
	b.WriteString("Deal Alert!\n\n")

	for _, r := range records {
		fmt.Fprintf(&b, "%s\n", r.ProductName)
		fmt.Fprintf(&b, "  %s: ₹%s (Target: ₹%s)\n",
			r.Platform, formatPrice(r.ObservedPrice), formatPrice(r.TargetPrice))
		fmt.Fprintf(&b, "  %s\n\n", r.URL)
	}

	return b.String()
}

func formatPrice(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
