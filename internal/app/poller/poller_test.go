package poller

import (
	"testing"
	"time"

	"github.com/IT-Nick/interview-assistant/internal/infra/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/telebot.v4"
)

func TestNewPoller(t *testing.T) {
	cfg := config.Default()
	lp, ok := NewPoller(cfg).(*telebot.LongPoller)
	require.True(t, ok)
	assert.Equal(t, 10*time.Second, lp.Timeout)

	cfg.TelegramBot.Mode = config.ModeWebhook
	cfg.TelegramBot.WebhookURL = "https://example.com/bot"
	wh, ok := NewPoller(cfg).(*telebot.Webhook)
	require.True(t, ok)
	assert.Equal(t, ":8443", wh.Listen)
	assert.Equal(t, "https://example.com/bot", wh.Endpoint.PublicURL)
}
