package extractor

import (
	"context"
	"fmt"
	"math/rand"
	"net/http"
	"time"

	"github.com/chromedp/chromedp"

	"pricewatcher/helpers"
)

// userAgents are real browser strings rotated per session so each run
// fingerprints as a different desktop browser
var userAgents = []string{
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/131.0.0.0 Safari/537.36",
	"Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/131.0.0.0 Safari/537.36",
	"Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/130.0.0.0 Safari/537.36",
}

// Browser is a challenge-solving fetch client backed by headless
// Chrome. Platforms that fingerprint plain HTTP clients (Flipkart)
// only serve real content after their JS checks run, so those pages
// are loaded through a full browser instead of a GET.
type Browser struct {
	allocCtx    context.Context
	allocCancel context.CancelFunc
}

// NewBrowser prepares a Chrome allocator with automation hidden. The
// browser process itself launches lazily on the first fetch.
func NewBrowser(headless bool) *Browser {
	allocCtx, allocCancel := chromedp.NewExecAllocator(
		context.Background(),
		stealthOpts(headless)...,
	)
	return &Browser{
		allocCtx:    allocCtx,
		allocCancel: allocCancel,
	}
}

// Close shuts down the browser
func (b *Browser) Close() {
	b.allocCancel()
}

// Fetch navigates a fresh tab to the URL, lets the page's challenge
// scripts settle, and returns the rendered HTML. A non-success
// navigation status is reported as a StatusError so the dispatcher can
// log the code.
func (b *Browser) Fetch(ctx context.Context, url string) ([]byte, error) {
	tabCtx, tabCancel := chromedp.NewContext(b.allocCtx)
	defer tabCancel()

	if deadline, ok := ctx.Deadline(); ok {
		var cancel context.CancelFunc
		tabCtx, cancel = context.WithDeadline(tabCtx, deadline)
		defer cancel()
	}

	resp, err := chromedp.RunResponse(tabCtx,
		chromedp.Navigate(url),
	)
	if err != nil {
		return nil, fmt.Errorf("challenge navigation failed: %w", err)
	}
	if resp != nil && resp.Status != http.StatusOK {
		return nil, &helpers.StatusError{URL: url, Code: int(resp.Status)}
	}

	var html string
	if err := chromedp.Run(tabCtx,
		hideWebDriver(),
		chromedp.Sleep(2*time.Second),
		chromedp.OuterHTML("html", &html),
	); err != nil {
		return nil, fmt.Errorf("failed to read page content: %w", err)
	}

	return []byte(html), nil
}

// stealthOpts returns Chrome launch options that hide automation:
// disable-blink-features=AutomationControlled removes the
// navigator.webdriver flag, and a normal window size avoids the tiny
// default viewport bots are known for.
func stealthOpts(headless bool) []chromedp.ExecAllocatorOption {
	opts := []chromedp.ExecAllocatorOption{
		chromedp.NoFirstRun,
		chromedp.NoDefaultBrowserCheck,
		chromedp.Flag("disable-blink-features", "AutomationControlled"),
		chromedp.Flag("excludeSwitches", "enable-automation"),
		chromedp.Flag("useAutomationExtension", false),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.WindowSize(1920, 1080),
		chromedp.UserAgent(userAgents[rand.Intn(len(userAgents))]),
	}

	if headless {
		opts = append(opts, chromedp.Flag("headless", "new"))
	}

	return opts
}

// hideWebDriver patches the JS properties challenge scripts probe for,
// since some checks run on the page even with the launch flags set
func hideWebDriver() chromedp.Action {
	return chromedp.ActionFunc(func(ctx context.Context) error {
		return chromedp.Evaluate(`
			Object.defineProperty(navigator, 'webdriver', { get: () => undefined });
			Object.defineProperty(navigator, 'plugins', { get: () => [1, 2, 3, 4, 5] });
			Object.defineProperty(navigator, 'languages', { get: () => ['en-US', 'en'] });
		`, nil).Do(ctx)
	})
}
