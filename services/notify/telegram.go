package notify

import (
	"context"
	"fmt"

	"resty.dev/v3"

	"pricewatcher/config"
	"pricewatcher/logger"
)

const telegramAPIBase = "https://api.telegram.org"

// TelegramNotifier posts alerts to a chat through the Telegram bot API
type TelegramNotifier struct {
	cfg    config.TelegramConfig
	client *resty.Client
	log    *logger.Logger
}

// NewTelegramNotifier creates the telegram channel. The channel is
// disabled when the bot token or chat id is missing.
func NewTelegramNotifier(cfg config.TelegramConfig) *TelegramNotifier {
	return &TelegramNotifier{
		cfg:    cfg,
		client: resty.New().SetBaseURL(telegramAPIBase),
		log:    logger.ForNotifier("telegram"),
	}
}

// SetAPIBase overrides the bot API endpoint, for tests
func (n *TelegramNotifier) SetAPIBase(baseURL string) {
	n.client.SetBaseURL(baseURL)
}

// Name identifies the channel in logs
func (n *TelegramNotifier) Name() string {
	return "telegram"
}

// Enabled reports whether the bot token and chat id are present
func (n *TelegramNotifier) Enabled() bool {
	return n.cfg.BotToken != "" && n.cfg.ChatID != ""
}

// Send posts one text message. The subject is folded into the body;
// Telegram messages have no separate subject line.
func (n *TelegramNotifier) Send(ctx context.Context, _ string, body string) error {
	if !n.Enabled() {
		n.log.Info().Msg("Telegram not configured, skipping")
		return nil
	}

	resp, err := n.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]string{
			"chat_id": n.cfg.ChatID,
			"text":    body,
		}).
		Post("/bot" + n.cfg.BotToken + "/sendMessage")
	if err != nil {
		return fmt.Errorf("telegram request failed: %w", err)
	}
	if resp.IsError() {
		return fmt.Errorf("telegram API returned status %d", resp.StatusCode())
	}

	n.log.Info().Msg("Telegram message sent")
	return nil
}
