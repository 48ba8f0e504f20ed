package api

import (
	"context"
	"crypto/subtle"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"foody/internal/handler/httperr"
	"foody/internal/infra/telegram"
	"foody/internal/pkg/config"

	"github.com/gin-gonic/gin"
)

const (
	HeaderBotSecret = "X-Telegram-Bot-Api-Secret-Token"

	startGreeting = "Hi! I help rescue food 💚\nPick a section:"
)

var errBadBotSecret = errors.New("bad webhook secret")

type BotMessenger interface {
	SendMessage(ctx context.Context, chatID int64, text string, markup *telegram.InlineKeyboardMarkup) error
}

type BotHandler struct {
	messenger BotMessenger
	cfg       config.BotConfig
}

func NewBotHandler(messenger BotMessenger, cfg config.Config) *BotHandler {
	return &BotHandler{messenger: messenger, cfg: cfg.Bot}
}

// @Summary Telegram webhook
// @Description Receives bot updates. Answers 200 for anything it could read so Telegram does not redeliver.
// @Tags bot
// @Accept json
// @Produce plain
// @Param X-Telegram-Bot-Api-Secret-Token header string true "Webhook secret"
// @Success 200 {string} string "OK"
// @Failure 401 {object} httperr.Response
// @Router /tg/webhook [post]
func (h *BotHandler) Webhook(c *gin.Context) {
	secret := c.GetHeader(HeaderBotSecret)
	if h.cfg.WebhookSecret == "" || subtle.ConstantTimeCompare([]byte(secret), []byte(h.cfg.WebhookSecret)) != 1 {
		slog.Warn("Bot webhook rejected: bad secret header")
		httperr.AbortWithError(c, http.StatusUnauthorized, errBadBotSecret, "bad secret", nil)
		return
	}

	// Bot API updates carry many fields we do not model, so decode leniently.
	var upd telegram.Update
	if err := json.NewDecoder(c.Request.Body).Decode(&upd); err != nil {
		slog.Warn("Bot webhook: undecodable update", "error", err)
		c.String(http.StatusOK, "OK")
		return
	}

	if msg := upd.Message; msg != nil && isStartCommand(msg.Text) {
		slog.Info("Handling /start", "chat_id", msg.Chat.ID, "update_id", upd.UpdateID)
		if err := h.messenger.SendMessage(c.Request.Context(), msg.Chat.ID, startGreeting, h.startKeyboard()); err != nil {
			slog.Error("Bot reply failed", "chat_id", msg.Chat.ID, "error", err)
		}
	}
	c.String(http.StatusOK, "OK")
}

func (h *BotHandler) startKeyboard() *telegram.InlineKeyboardMarkup {
	return &telegram.InlineKeyboardMarkup{
		InlineKeyboard: [][]telegram.InlineKeyboardButton{{
			{Text: "🛒 Offers", WebApp: &telegram.WebAppInfo{URL: h.cfg.BuyerWebAppURL}},
			{Text: "👨‍🍳 Partner cabinet", WebApp: &telegram.WebAppInfo{URL: h.cfg.MerchantWebAppURL}},
		}},
	}
}

// isStartCommand accepts "/start", "/start payload" and "/start@BotName".
func isStartCommand(text string) bool {
	cmd, _, _ := strings.Cut(strings.TrimSpace(text), " ")
	cmd, _, _ = strings.Cut(cmd, "@")
	return cmd == "/start"
}
