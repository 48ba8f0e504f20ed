package telegram

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"foody/internal/pkg/config"
	"foody/internal/pkg/errs"
	"foody/internal/pkg/metrics"

	"github.com/go-resty/resty/v2"
	"github.com/sony/gobreaker"
)

const breakerName = "telegram"

var (
	ErrBotDisabled = errs.New("telegram bot is not configured")
	ErrBotAPI      = errs.New("telegram api call failed")
	ErrCircuitOpen = errs.New("telegram circuit breaker is open")
)

// Client calls the Telegram Bot API through a circuit breaker so a Telegram
// outage fails fast instead of piling up blocked webhook handlers.
type Client struct {
	http    *resty.Client
	breaker *gobreaker.CircuitBreaker
	token   string
}

func NewClient(cfg config.BotConfig) *Client {
	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	httpClient := resty.New().
		SetBaseURL(cfg.APIBaseURL).
		SetTimeout(timeout).
		SetHeader("Content-Type", "application/json")

	return &Client{
		http:    httpClient,
		breaker: newBreaker(),
		token:   cfg.Token,
	}
}

func newBreaker() *gobreaker.CircuitBreaker {
	metrics.CircuitBreakerState.WithLabelValues(breakerName).Set(0)
	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        breakerName,
		MaxRequests: 3,
		Interval:    30 * time.Second,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return counts.Requests >= 3 && failureRatio >= 0.6
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			state := float64(0)
			switch to {
			case gobreaker.StateOpen:
				state = 1
			case gobreaker.StateHalfOpen:
				state = 2
			}
			metrics.CircuitBreakerState.WithLabelValues(name).Set(state)
			slog.Info("Circuit breaker state changed", "circuit", name, "from", from.String(), "to", to.String())
		},
	})
}

// SetWebhook registers url as the update endpoint. Telegram echoes secret in
// the X-Telegram-Bot-Api-Secret-Token header of every update.
func (c *Client) SetWebhook(ctx context.Context, url, secret string) error {
	return c.call(ctx, "setWebhook", setWebhookRequest{
		URL:            url,
		SecretToken:    secret,
		AllowedUpdates: []string{"message"},
	})
}

func (c *Client) SendMessage(ctx context.Context, chatID int64, text string, markup *InlineKeyboardMarkup) error {
	return c.call(ctx, "sendMessage", sendMessageRequest{
		ChatID:      chatID,
		Text:        text,
		ParseMode:   "HTML",
		ReplyMarkup: markup,
	})
}

func (c *Client) call(ctx context.Context, method string, body any) error {
	if c.token == "" {
		return ErrBotDisabled
	}

	_, err := c.breaker.Execute(func() (any, error) {
		var out apiResponse
		resp, err := c.http.R().
			SetContext(ctx).
			SetBody(body).
			SetResult(&out).
			SetError(&out).
			Post(fmt.Sprintf("/bot%s/%s", c.token, method))
		if err != nil {
			return nil, errs.Wrap(err, method)
		}
		if resp.IsError() || !out.OK {
			return nil, errs.Mark(fmt.Errorf("%s: status %d: %s", method, resp.StatusCode(), out.Description), ErrBotAPI)
		}
		return nil, nil
	})
	switch err {
	case nil:
		return nil
	case gobreaker.ErrOpenState, gobreaker.ErrTooManyRequests:
		return errs.Mark(err, ErrCircuitOpen)
	default:
		return err
	}
}
