package extractor

import (
	"context"
	"errors"
	"time"

	"pricewatcher/helpers"
	"pricewatcher/internal/parser"
	"pricewatcher/logger"
)

// FetchFunc retrieves the raw content of a product page
type FetchFunc func(ctx context.Context, url string) ([]byte, error)

type strategy struct {
	parser parser.Parser
	fetch  FetchFunc
}

// Extractor dispatches price extraction by platform. Platforms are
// added through Register, so supporting a new site is a registration,
// not a new code path.
type Extractor struct {
	strategies map[parser.Platform]strategy
	timeout    time.Duration
	log        *logger.Logger
}

// New creates an empty extractor with the given per-fetch timeout
func New(timeout time.Duration, log *logger.Logger) *Extractor {
	return &Extractor{
		strategies: make(map[parser.Platform]strategy),
		timeout:    timeout,
		log:        log,
	}
}

// NewDefault builds the production registry: Amazon through the plain
// browser-header fetch, Flipkart through the challenge-solving client.
func NewDefault(timeout time.Duration, browser *Browser) *Extractor {
	e := New(timeout, logger.ForExtractor())
	e.Register(parser.PlatformAmazon, parser.AmazonParser{}, helpers.FetchPage)
	e.Register(parser.PlatformFlipkart, parser.FlipkartParser{}, browser.Fetch)
	return e
}

// Register binds a platform to a parser and fetch behavior
func (e *Extractor) Register(platform parser.Platform, p parser.Parser, fetch FetchFunc) {
	e.strategies[platform] = strategy{parser: p, fetch: fetch}
}

// Known reports whether a platform has a registered strategy
func (e *Extractor) Known(platform parser.Platform) bool {
	_, ok := e.strategies[platform]
	return ok
}

// FetchPrice fetches a product page and extracts its price. Every
// failure mode short of a crash degrades to absence: unknown platform,
// network errors, non-success status codes, missing price markup, and
// matched text that does not parse as a number. Only the log stream
// distinguishes them.
func (e *Extractor) FetchPrice(ctx context.Context, platform parser.Platform, url string) parser.PriceResult {
	strat, ok := e.strategies[platform]
	if !ok {
		e.log.Warn().
			Str("platform", string(platform)).
			Msg("Unknown platform, skipping")
		return parser.NoPrice
	}

	fetchCtx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	body, err := strat.fetch(fetchCtx, url)
	if err != nil {
		var statusErr *helpers.StatusError
		if errors.As(err, &statusErr) {
			e.log.Warn().
				Str("platform", string(platform)).
				Str("url", url).
				Int("status", statusErr.Code).
				Msg("Fetch returned non-success status")
		} else {
			e.log.Warn().
				Str("platform", string(platform)).
				Str("url", url).
				Err(err).
				Msg("Fetch failed")
		}
		return parser.NoPrice
	}

	result, err := strat.parser.Extract(body)
	if err != nil {
		e.log.Warn().
			Str("platform", string(platform)).
			Str("url", url).
			Err(err).
			Msg("Price extraction failed")
		return parser.NoPrice
	}

	if !result.Found {
		e.log.Info().
			Str("platform", string(platform)).
			Str("url", url).
			Msg("No price markup found on page")
		return parser.NoPrice
	}

	e.log.Debug().
		Str("platform", string(platform)).
		Float64("price", result.Value).
		Msg("Extracted price")

	return result
}
