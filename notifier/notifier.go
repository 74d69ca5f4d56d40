package notifier

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/simhonchourasia/playbet-be/config"
	"github.com/sirupsen/logrus"
)

type Notifier interface {
	Notify(ctx context.Context, text string) error
}

// Nop drops every notification.
type Nop struct{}

func (Nop) Notify(context.Context, string) error { return nil }

// Telegram posts admin notifications to one chat.
type Telegram struct {
	bot    *tgbotapi.BotAPI
	chatID int64
}

func NewTelegram(cfg config.TelegramConfig) (*Telegram, error) {
	return newTelegram(cfg, tgbotapi.APIEndpoint)
}

func newTelegram(cfg config.TelegramConfig, endpoint string) (*Telegram, error) {
	bot, err := tgbotapi.NewBotAPIWithAPIEndpoint(cfg.BotToken, endpoint)
	if err != nil {
		return nil, err
	}
	return &Telegram{bot: bot, chatID: cfg.ChatID}, nil
}

func (t *Telegram) Notify(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	msg := tgbotapi.NewMessage(t.chatID, text)
	msg.DisableWebPagePreview = true
	_, err := t.bot.Send(msg)
	return err
}

// FromConfig returns a Telegram notifier, or Nop when the bot is not configured or unreachable.
func FromConfig(cfg config.TelegramConfig, log logrus.FieldLogger) Notifier {
	if cfg.BotToken == "" || cfg.ChatID == 0 {
		log.Info("telegram notifications disabled")
		return Nop{}
	}
	tg, err := NewTelegram(cfg)
	if err != nil {
		log.WithError(err).Warn("telegram bot unavailable, notifications disabled")
		return Nop{}
	}
	log.WithField("bot", tg.bot.Self.UserName).Info("telegram notifications enabled")
	return tg
}
