// Package gateway is the outbound messaging surface. Handlers and the
// scheduler talk to the Gateway interface; main wires in the Telegram
// implementation.
package gateway

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type Gateway interface {
	// SendMessage sends a plain text message and returns its message id.
	SendMessage(chatID int64, text string) (int, error)
	// SendKeyboard sends a text message with an inline keyboard.
	SendKeyboard(chatID int64, text string, kb tgbotapi.InlineKeyboardMarkup) (int, error)
	// EditText replaces a message's text and drops its keyboard.
	EditText(chatID int64, messageID int, text string) error
	// EditKeyboard replaces a message's text and inline keyboard.
	EditKeyboard(chatID int64, messageID int, text string, kb tgbotapi.InlineKeyboardMarkup) error
	SendSticker(chatID int64, fileID string) error
	DeleteMessage(chatID int64, messageID int) error
	// AnswerCallback clears the client-side spinner on a pressed button.
	AnswerCallback(callbackID string) error
}

// Telegram implements Gateway over the bot API.
type Telegram struct {
	bot *tgbotapi.BotAPI
}

func NewTelegram(bot *tgbotapi.BotAPI) *Telegram {
	return &Telegram{bot: bot}
}

func (t *Telegram) SendMessage(chatID int64, text string) (int, error) {
	m, err := t.bot.Send(tgbotapi.NewMessage(chatID, text))
	if err != nil {
		return 0, err
	}
	return m.MessageID, nil
}

func (t *Telegram) SendKeyboard(chatID int64, text string, kb tgbotapi.InlineKeyboardMarkup) (int, error) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ReplyMarkup = kb
	m, err := t.bot.Send(msg)
	if err != nil {
		return 0, err
	}
	return m.MessageID, nil
}

func (t *Telegram) EditText(chatID int64, messageID int, text string) error {
	_, err := t.bot.Send(tgbotapi.NewEditMessageText(chatID, messageID, text))
	return err
}

func (t *Telegram) EditKeyboard(chatID int64, messageID int, text string, kb tgbotapi.InlineKeyboardMarkup) error {
	_, err := t.bot.Send(tgbotapi.NewEditMessageTextAndMarkup(chatID, messageID, text, kb))
	return err
}

func (t *Telegram) SendSticker(chatID int64, fileID string) error {
	_, err := t.bot.Send(tgbotapi.NewSticker(chatID, tgbotapi.FileID(fileID)))
	return err
}

func (t *Telegram) DeleteMessage(chatID int64, messageID int) error {
	_, err := t.bot.Request(tgbotapi.NewDeleteMessage(chatID, messageID))
	return err
}

func (t *Telegram) AnswerCallback(callbackID string) error {
	_, err := t.bot.Request(tgbotapi.NewCallback(callbackID, ""))
	return err
}
