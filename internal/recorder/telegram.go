package recorder

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/firegate-ai/firegate/internal/config"
	"github.com/firegate-ai/firegate/internal/schema"
)

// TelegramSink posts tool run outcomes to a Telegram chat.
// The bot connection is established lazily on the first delivered event so a
// misconfigured token does not prevent the runtime from starting.
type TelegramSink struct {
	cfg *config.TelegramSinkConfig
	bot *tgbotapi.BotAPI
}

func NewTelegramSink(cfg *config.TelegramSinkConfig) *TelegramSink {
	return &TelegramSink{cfg: cfg}
}

func (t *TelegramSink) Name() string { return "telegram" }

func (t *TelegramSink) Notify(_ context.Context, ev schema.IOEvent) error {
	if ev.Kind == schema.EventInput {
		return nil
	}
	if t.cfg.ErrorsOnly && ev.Kind != schema.EventError {
		return nil
	}

	if t.bot == nil {
		bot, err := tgbotapi.NewBotAPI(t.cfg.Token)
		if err != nil {
			return fmt.Errorf("telegram: create bot: %w", err)
		}
		t.bot = bot
	}

	_, err := t.bot.Send(tgbotapi.NewMessage(t.cfg.ChatID, ev.Summary()))
	return err
}

var _ schema.Sink = (*TelegramSink)(nil)
