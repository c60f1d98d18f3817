// Package notify delivers digests and failure notices to the user.
package notify

import (
	"fmt"
	"log"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Notifier is an outbound message sink.
type Notifier interface {
	Send(text string) error
}

// Telegram sends messages to a fixed chat.
type Telegram struct {
	api    *tgbotapi.BotAPI
	chatID int64
}

func NewTelegram(token string, chatID int64) (*Telegram, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create bot api: %w", err)
	}
	log.Printf("[info] notifier authorized on account %s", api.Self.UserName)
	return &Telegram{api: api, chatID: chatID}, nil
}

func (t *Telegram) Send(text string) error {
	msg := tgbotapi.NewMessage(t.chatID, text)
	if _, err := t.api.Send(msg); err != nil {
		return fmt.Errorf("send message: %w", err)
	}
	return nil
}

// Log writes notifications to the process log. Used when no Telegram
// credentials are configured.
type Log struct{}

func (Log) Send(text string) error {
	log.Printf("[info] notification:\n%s", text)
	return nil
}
