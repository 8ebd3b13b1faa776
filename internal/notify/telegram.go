package notify

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// TelegramNotifier posts the report summary to a chat, with the report
// file attached as a document. The recipient argument is unused; the
// destination chat is fixed at construction.
type TelegramNotifier struct {
	bot    *tgbotapi.BotAPI
	chatID int64
}

func NewTelegramNotifier(token string, chatID int64) (*TelegramNotifier, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("failed to init telegram bot: %w", err)
	}
	return &TelegramNotifier{bot: bot, chatID: chatID}, nil
}

func (t *TelegramNotifier) Send(_ context.Context, _, subject, _ string, att *Attachment) error {
	// telegram HTML parse mode rejects table markup, so the rendered
	// report travels as the attachment and the text is just the title
	msg := tgbotapi.NewMessage(t.chatID, subject)
	if _, err := t.bot.Send(msg); err != nil {
		return err
	}

	if att != nil {
		doc := tgbotapi.NewDocument(t.chatID, tgbotapi.FileBytes{
			Name:  att.Filename,
			Bytes: att.Data,
		})
		if _, err := t.bot.Send(doc); err != nil {
			return err
		}
	}
	return nil
}
