package worker

import (
	"context"

	"pricewatcher/config"
	"pricewatcher/internal/deal"
	"pricewatcher/internal/extractor"
	"pricewatcher/internal/parser"
	"pricewatcher/logger"
	"pricewatcher/services/notify"
	"pricewatcher/services/publisher"
)

const alertSubject = "Deal Alert! Price dropped!"

// Runner drives one complete pass over the configured products:
// fetch, extract, evaluate, then notify once at the end
type Runner struct {
	cfg       *config.Config
	extractor *extractor.Extractor
	notifiers []notify.Notifier
	feed      publisher.Publisher
	log       *logger.Logger
}

// NewRunner creates a run controller. feed may be nil when no deal
// feed is configured.
func NewRunner(
	cfg *config.Config,
	ext *extractor.Extractor,
	notifiers []notify.Notifier,
	feed publisher.Publisher,
) *Runner {
	return &Runner{
		cfg:       cfg,
		extractor: ext,
		notifiers: notifiers,
		feed:      feed,
		log:       logger.ForRunner(),
	}
}

// Run processes products and their sources strictly sequentially, in
// configuration order, and returns the deals it collected. Individual
// source failures have already degraded to absence by the time they
// reach this loop; nothing here aborts the pass.
func (r *Runner) Run(ctx context.Context) []deal.Record {
	var deals []deal.Record

	for _, product := range r.cfg.Products {
		r.log.Info().
			Str("product", product.Name).
			Float64("target", product.TargetPrice).
			Msg("Checking product")

		for _, source := range product.Sources {
			result := r.extractor.FetchPrice(ctx, parser.Platform(source.Platform), source.URL)

			record := deal.Evaluate(product, source, result)
			switch {
			case !result.Found:
				r.log.Warn().
					Str("platform", source.Platform).
					Msg("Could not fetch price")
			case record != nil:
				r.log.Info().
					Str("platform", source.Platform).
					Float64("price", result.Value).
					Msg("Deal found")
				deals = append(deals, *record)
			default:
				r.log.Info().
					Str("platform", source.Platform).
					Float64("price", result.Value).
					Msg("Above target")
			}
		}
	}

	if len(deals) == 0 {
		r.log.Info().Msg("No deals found")
		return deals
	}

	r.dispatch(ctx, deals)
	return deals
}

// dispatch renders the summary once and attempts every channel
// independently, so a failure in one channel never suppresses another
func (r *Runner) dispatch(ctx context.Context, deals []deal.Record) {
	body := deal.Summary(deals)

	for _, n := range r.notifiers {
		if !n.Enabled() {
			r.log.Info().
				Str("channel", n.Name()).
				Msg("Channel not configured, skipping")
			continue
		}

		if err := n.Send(ctx, alertSubject, body); err != nil {
			r.log.Error().
				Str("channel", n.Name()).
				Err(err).
				Msg("Notification failed")
			continue
		}

		r.log.Info().
			Str("channel", n.Name()).
			Msg("Notification sent")
	}

	if r.feed == nil {
		return
	}

	for _, d := range deals {
		if err := r.feed.Publish(ctx, d); err != nil {
			r.log.Error().Err(err).Msg("Deal feed publish failed")
		}
	}
	if err := r.feed.Trim(ctx); err != nil {
		r.log.Error().Err(err).Msg("Deal feed trim failed")
	}
}
