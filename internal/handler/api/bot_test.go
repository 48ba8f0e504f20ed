//go:build unit

package api_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"foody/internal/handler/api"
	"foody/internal/infra/telegram"
	"foody/internal/pkg/config"
	"foody/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sentMessage struct {
	chatID int64
	text   string
	markup *telegram.InlineKeyboardMarkup
}

type fakeMessenger struct {
	sent []sentMessage
	err  error
}

func (f *fakeMessenger) SendMessage(_ context.Context, chatID int64, text string, markup *telegram.InlineKeyboardMarkup) error {
	f.sent = append(f.sent, sentMessage{chatID: chatID, text: text, markup: markup})
	return f.err
}

func newBotRouter(messenger api.BotMessenger) *gin.Engine {
	gin.SetMode(gin.TestMode)
	cfg := config.NewTestConfig()
	cfg.Bot = config.BotConfig{
		Token:             "123:abc",
		WebhookSecret:     "hook-secret",
		BuyerWebAppURL:    "https://app.example/buyer",
		MerchantWebAppURL: "https://app.example/merchant",
	}
	router := gin.New()
	router.POST("/tg/webhook", api.NewBotHandler(messenger, cfg).Webhook)
	return router
}

func secretHeader(v string) map[string]string {
	return map[string]string{api.HeaderBotSecret: v}
}

func startUpdate(text string) map[string]any {
	return map[string]any{
		"update_id": 7,
		"message": map[string]any{
			"message_id": 1,
			"chat":       map[string]any{"id": 4242, "type": "private"},
			"text":       text,
			"entities":   []any{map[string]any{"type": "bot_command", "offset": 0, "length": 6}},
		},
	}
}

func TestBotWebhook(t *testing.T) {
	t.Run("start replies with both web apps", func(t *testing.T) {
		for _, text := range []string{"/start", "/start promo", "/start@FoodyBot"} {
			m := &fakeMessenger{}
			rec := httptest.PerformRequest(t, newBotRouter(m), http.MethodPost, "/tg/webhook", startUpdate(text), secretHeader("hook-secret"))

			assert.Equal(t, http.StatusOK, rec.Code, text)
			require.Len(t, m.sent, 1, text)
			assert.Equal(t, int64(4242), m.sent[0].chatID)
			require.NotNil(t, m.sent[0].markup)
			row := m.sent[0].markup.InlineKeyboard[0]
			require.Len(t, row, 2)
			assert.Equal(t, "https://app.example/buyer", row[0].WebApp.URL)
			assert.Equal(t, "https://app.example/merchant", row[1].WebApp.URL)
		}
	})

	t.Run("other messages are acknowledged silently", func(t *testing.T) {
		m := &fakeMessenger{}
		rec := httptest.PerformRequest(t, newBotRouter(m), http.MethodPost, "/tg/webhook", startUpdate("hello"), secretHeader("hook-secret"))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Empty(t, m.sent)
	})

	t.Run("updates without message are acknowledged", func(t *testing.T) {
		m := &fakeMessenger{}
		rec := httptest.PerformRequest(t, newBotRouter(m), http.MethodPost, "/tg/webhook", map[string]any{"update_id": 8, "callback_query": map[string]any{"id": "q"}}, secretHeader("hook-secret"))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Empty(t, m.sent)
	})

	t.Run("undecodable body still answers 200", func(t *testing.T) {
		m := &fakeMessenger{}
		rec := httptest.PerformRawRequest(t, newBotRouter(m), http.MethodPost, "/tg/webhook", []byte("{not json"), true, secretHeader("hook-secret"))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Empty(t, m.sent)
	})

	t.Run("send failure still answers 200", func(t *testing.T) {
		m := &fakeMessenger{err: errors.New("telegram down")}
		rec := httptest.PerformRequest(t, newBotRouter(m), http.MethodPost, "/tg/webhook", startUpdate("/start"), secretHeader("hook-secret"))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Len(t, m.sent, 1)
	})

	t.Run("wrong or missing secret is rejected", func(t *testing.T) {
		m := &fakeMessenger{}
		router := newBotRouter(m)

		rec := httptest.PerformRequest(t, router, http.MethodPost, "/tg/webhook", startUpdate("/start"), secretHeader("nope"))
		httptest.AssertErrorResponse(t, rec, http.StatusUnauthorized, "bad secret")

		rec = httptest.PerformRequest(t, router, http.MethodPost, "/tg/webhook", startUpdate("/start"), nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Empty(t, m.sent)
	})
}
