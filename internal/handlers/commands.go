package handlers

import (
	"log"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"telegram-reminder-bot/internal/session"
)

func (h *Handler) HandleCommand(msg *tgbotapi.Message) {
	chatID := msg.Chat.ID

	switch msg.Command() {
	case "remind":
		h.handleRemind(chatID)
	case "datetime":
		h.send(chatID, textDateTime(h.now()))
	case "start", "help":
		if h.Stickers.Hello != "" {
			if err := h.GW.SendSticker(chatID, h.Stickers.Hello); err != nil {
				log.Printf("send hello sticker: %v", err)
			}
		}
		h.send(chatID, textHelp)
	}
}

// handleRemind opens a fresh occurrence prompt. Any dialogue already in
// progress for the chat is abandoned; its old prompt will answer with the
// expired notice if pressed.
func (h *Handler) handleRemind(chatID int64) {
	h.Sessions.Set(chatID, session.State{Page: session.PageOccurrence})
	if _, err := h.GW.SendKeyboard(chatID, textOccurrence, occurrenceKeyboard()); err != nil {
		log.Printf("send occurrence page: %v", err)
		h.Sessions.Reset(chatID)
	}
}

func (h *Handler) send(chatID int64, text string) {
	if _, err := h.GW.SendMessage(chatID, text); err != nil {
		log.Printf("send message: %v", err)
	}
}
