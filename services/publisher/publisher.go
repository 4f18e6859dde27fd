package publisher

import (
	"context"

	"pricewatcher/internal/deal"
)

// Publisher represents an optional side feed of deal records for
// downstream consumers
type Publisher interface {
	// Publish appends one deal record to the feed
	Publish(ctx context.Context, record deal.Record) error

	// Trim caps the feed at its configured maximum length
	Trim(ctx context.Context) error

	// Close closes the feed connection
	Close() error
}
