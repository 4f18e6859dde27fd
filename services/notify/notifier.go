// Package notify holds the notification channels a run can dispatch
// deal summaries through. Channels are constructed from explicit
// option structs; a channel missing required settings reports itself
// disabled instead of failing the run.
package notify

import "context"

// Notifier is one alert delivery channel
type Notifier interface {
	// Name identifies the channel in logs
	Name() string

	// Enabled reports whether the channel has complete configuration
	Enabled() bool

	// Send delivers one alert. Implementations return transport
	// errors to the caller; they never abort the process.
	Send(ctx context.Context, subject, body string) error
}
