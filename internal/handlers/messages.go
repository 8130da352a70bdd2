package handlers

import (
	"log"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"telegram-reminder-bot/internal/session"
)

// HandleText consumes a plain message. It only matters while the chat is
// waiting for reminder text; everything else is left alone so the bot
// stays quiet in normal conversation.
func (h *Handler) HandleText(msg *tgbotapi.Message) {
	chatID := msg.Chat.ID
	st := h.Sessions.Get(chatID)
	if st.Page != session.PageConfirmDateTime {
		return
	}

	text := strings.TrimSpace(msg.Text)
	if text == "" {
		h.send(chatID, textEmptyReminder)
		return
	}

	h.Sessions.Set(chatID, session.State{
		Page:     session.PageConfirmText,
		DateTime: st.DateTime,
		Text:     text,
	})
	if _, err := h.GW.SendKeyboard(chatID, textJobSummary(st.DateTime, text), confirmKeyboard()); err != nil {
		log.Printf("send confirmation page: %v", err)
	}
}
