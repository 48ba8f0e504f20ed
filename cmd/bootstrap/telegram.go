package bootstrap

import (
	"context"
	"log/slog"
	"strings"

	"foody/internal/handler/api"
	"foody/internal/infra/telegram"
	"foody/internal/pkg/config"

	"go.uber.org/fx"
)

const webhookPath = "/tg/webhook"

var TelegramModule = fx.Module("telegram",
	fx.Provide(
		NewTelegramClient,
		func(c *telegram.Client) api.BotMessenger { return c },
	),
	fx.Invoke(RegisterWebhook),
)

func NewTelegramClient(cfg config.Config) *telegram.Client {
	return telegram.NewClient(cfg.Bot)
}

// RegisterWebhook points the bot at this server on startup. A failure is
// logged and does not stop the API.
func RegisterWebhook(lc fx.Lifecycle, client *telegram.Client, cfg config.Config, logger *slog.Logger) {
	if !cfg.Bot.Enabled() || cfg.Bot.PublicURL == "" {
		return
	}
	url := strings.TrimRight(cfg.Bot.PublicURL, "/") + webhookPath
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := client.SetWebhook(ctx, url, cfg.Bot.WebhookSecret); err != nil {
				logger.Error("failed to register bot webhook", "url", url, "error", err)
				return nil
			}
			logger.Info("bot webhook registered", "url", url)
			return nil
		},
	})
}
