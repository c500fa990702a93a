package notify

import (
	"context"
	"fmt"
	"html"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"gopkg.in/telebot.v4"

	"github.com/shrutirout/foxdeal/pkg/platform"
	domain "github.com/shrutirout/foxdeal/pkg/types"
)

// sender is the slice of the telebot API the notifier needs.
type sender interface {
	Send(to telebot.Recipient, what interface{}, opts ...interface{}) (*telebot.Message, error)
}

// TelegramNotifier implements Notifier with a Telegram bot. Recipients that
// are numeric chat IDs receive the alert directly; all others go to the
// default chat.
type TelegramNotifier struct {
	bot         sender
	defaultChat int64
	log         *slog.Logger
}

// TelegramOption configures a TelegramNotifier.
type TelegramOption func(*telebot.Settings)

// WithTelegramAPIURL overrides the Bot API base URL.
func WithTelegramAPIURL(u string) TelegramOption {
	return func(s *telebot.Settings) {
		if u != "" {
			s.URL = u
		}
	}
}

// WithTelegramHTTPClient overrides the HTTP client.
func WithTelegramHTTPClient(c *http.Client) TelegramOption {
	return func(s *telebot.Settings) {
		s.Client = c
	}
}

// NewTelegramNotifier creates a bot client that only sends messages.
func NewTelegramNotifier(token string, defaultChat int64, log *slog.Logger, opts ...TelegramOption) (*TelegramNotifier, error) {
	settings := telebot.Settings{
		Token:   token,
		Offline: true,
	}
	for _, opt := range opts {
		opt(&settings)
	}

	bot, err := telebot.NewBot(settings)
	if err != nil {
		return nil, fmt.Errorf("creating telegram bot: %w", err)
	}
	return newTelegramNotifier(bot, defaultChat, log), nil
}

func newTelegramNotifier(s sender, defaultChat int64, log *slog.Logger) *TelegramNotifier {
	if log == nil {
		log = slog.Default()
	}
	return &TelegramNotifier{bot: s, defaultChat: defaultChat, log: log}
}

// NotifyPriceDrop sends an HTML-formatted message.
func (t *TelegramNotifier) NotifyPriceDrop(
	_ context.Context,
	recipient string,
	product domain.TrackedProduct,
	oldPrice, newPrice decimal.Decimal,
) error {
	chat := t.defaultChat
	if id, err := strconv.ParseInt(recipient, 10, 64); err == nil {
		chat = id
	}
	if chat == 0 {
		return fmt.Errorf("no telegram chat for recipient %q", recipient)
	}

	msg := telegramMessage(product, oldPrice, newPrice)
	if _, err := t.bot.Send(telebot.ChatID(chat), msg, &telebot.SendOptions{
		ParseMode: telebot.ModeHTML,
	}); err != nil {
		return fmt.Errorf("sending telegram message: %w", err)
	}

	t.log.Debug("telegram alert sent", "chat", chat, "product", product.Name)
	return nil
}

func telegramMessage(p domain.TrackedProduct, oldPrice, newPrice decimal.Decimal) string {
	var b strings.Builder
	fmt.Fprintf(&b, "📉 <b>Price drop: %s</b>\n", html.EscapeString(p.Name))
	fmt.Fprintf(&b, "%s → <b>%s</b> (-%.1f%%)\n",
		FormatPrice(oldPrice, p.Currency),
		FormatPrice(newPrice, p.Currency),
		DropPercent(oldPrice, newPrice),
	)
	fmt.Fprintf(&b, "Deal score: %.1f/100 on %s\n", p.DealScore, html.EscapeString(platform.Name(p.PlatformDomain)))
	fmt.Fprintf(&b, `<a href="%s">View product</a>`, html.EscapeString(p.URL))
	return b.String()
}
