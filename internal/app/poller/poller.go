package poller

import (
	"github.com/IT-Nick/interview-assistant/internal/infra/config"
	"gopkg.in/telebot.v4"
)

// NewPoller создает Poller в зависимости от режима бота
func NewPoller(cfg *config.Config) telebot.Poller {
	if cfg.TelegramBot.Mode == config.ModeWebhook {
		return &telebot.Webhook{
			Listen: cfg.TelegramBot.ListenAddr,
			Endpoint: &telebot.WebhookEndpoint{
				PublicURL: cfg.TelegramBot.WebhookURL,
			},
		}
	}
	return &telebot.LongPoller{Timeout: cfg.TelegramBot.PollTimeout}
}
