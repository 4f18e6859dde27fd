package notify

import (
	"context"

	"gopkg.in/gomail.v2"

	"pricewatcher/config"
	"pricewatcher/logger"
)

// EmailNotifier sends plain-text alerts over an encrypted SMTP
// submission connection
type EmailNotifier struct {
	cfg config.EmailConfig
	log *logger.Logger
}

// NewEmailNotifier creates the email channel. The channel is disabled
// when sender, password or recipient is missing.
func NewEmailNotifier(cfg config.EmailConfig) *EmailNotifier {
	return &EmailNotifier{
		cfg: cfg,
		log: logger.ForNotifier("email"),
	}
}

// Name identifies the channel in logs
func (n *EmailNotifier) Name() string {
	return "email"
}

// Enabled reports whether all required credentials are present
func (n *EmailNotifier) Enabled() bool {
	return n.cfg.Sender != "" && n.cfg.Password != "" && n.cfg.Recipient != ""
}

// Send delivers one alert message. Calling Send on a disabled channel
// is a logged no-op.
func (n *EmailNotifier) Send(_ context.Context, subject, body string) error {
	if !n.Enabled() {
		n.log.Info().Msg("Email not configured, skipping")
		return nil
	}

	m := gomail.NewMessage()
	m.SetHeader("From", n.cfg.Sender)
	m.SetHeader("To", n.cfg.Recipient)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	d := gomail.NewDialer(n.cfg.Host, n.cfg.Port, n.cfg.Sender, n.cfg.Password)
	// Port 465 is implicit TLS; anything else negotiates STARTTLS
	d.SSL = n.cfg.Port == 465

	if err := d.DialAndSend(m); err != nil {
		return err
	}

	n.log.Info().Str("recipient", n.cfg.Recipient).Msg("Email sent")
	return nil
}
