// Package handlers routes inbound chat events into the /remind dialogue.
// Dialogue progress is per-chat in-memory state; the handler assumes one
// chat's updates arrive in order, which holds as long as updates are
// consumed from a single loop the way main does.
package handlers

import (
	"log"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"telegram-reminder-bot/internal/calendar"
	"telegram-reminder-bot/internal/config"
	"telegram-reminder-bot/internal/gateway"
	"telegram-reminder-bot/internal/scheduler"
	"telegram-reminder-bot/internal/session"
	"telegram-reminder-bot/internal/timepick"
)

// Occurrence and confirmation callback tokens. The spinner and calendar
// tokens live with their keyboards.
const (
	tokenOneOff     = "One-Off"
	tokenRecurring  = "Recurring"
	tokenBack       = "Back"
	tokenConfirm    = "Confirm"
	tokenChangeTime = "Change Time"
)

type Handler struct {
	GW       gateway.Gateway
	Sched    *scheduler.Scheduler
	Sessions *session.Manager
	Loc      *time.Location
	Now      func() time.Time
	Stickers config.Stickers
}

func New(gw gateway.Gateway, sched *scheduler.Scheduler, loc *time.Location, stickers config.Stickers) *Handler {
	return &Handler{
		GW:       gw,
		Sched:    sched,
		Sessions: session.NewManager(),
		Loc:      loc,
		Now:      time.Now,
		Stickers: stickers,
	}
}

func (h *Handler) now() time.Time {
	return h.Now().In(h.Loc)
}

// ---------- page rendering --------------------------------------------------

func occurrenceKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(tokenOneOff, tokenOneOff),
			tgbotapi.NewInlineKeyboardButtonData(tokenRecurring, tokenRecurring),
		),
	)
}

func confirmKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(tokenBack, tokenBack),
			tgbotapi.NewInlineKeyboardButtonData(tokenConfirm, tokenConfirm),
		),
	)
}

func (h *Handler) showOccurrence(chatID int64, msgID int) {
	if err := h.GW.EditKeyboard(chatID, msgID, textOccurrence, occurrenceKeyboard()); err != nil {
		log.Printf("edit occurrence page: %v", err)
	}
}

// showCalendar re-renders the date page. A calendar arithmetic error is
// fatal to the interaction: the prompt becomes the expired notice instead
// of an inconsistent grid.
func (h *Handler) showCalendar(chatID int64, msgID, day, month, year int) {
	kb, err := calendar.Keyboard(day, month, year, h.now())
	if err != nil {
		log.Printf("render calendar: %v", err)
		h.expire(chatID, msgID)
		return
	}
	if err := h.GW.EditKeyboard(chatID, msgID, textDatePick, kb); err != nil {
		log.Printf("edit date page: %v", err)
	}
}

func (h *Handler) showTime(chatID int64, msgID int, date time.Time, sp timepick.Spinner) {
	if err := h.GW.EditKeyboard(chatID, msgID, textTimePick(date), timepick.Keyboard(sp)); err != nil {
		log.Printf("edit time page: %v", err)
	}
}

func (h *Handler) showRemindText(chatID int64, msgID int, dt time.Time) {
	kb := tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(tokenBack, tokenChangeTime),
		),
	)
	if err := h.GW.EditKeyboard(chatID, msgID, textRemindText(dt), kb); err != nil {
		log.Printf("edit remind-text page: %v", err)
	}
}

// expire is the universal fallback for stale or unparseable callbacks.
func (h *Handler) expire(chatID int64, msgID int) {
	h.Sessions.Reset(chatID)
	if err := h.GW.EditText(chatID, msgID, textExpired); err != nil {
		log.Printf("edit expired notice: %v", err)
	}
}
