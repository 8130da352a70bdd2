package handlers

import (
	"errors"
	"log"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"telegram-reminder-bot/internal/calendar"
	"telegram-reminder-bot/internal/scheduler"
	"telegram-reminder-bot/internal/session"
	"telegram-reminder-bot/internal/timepick"
)

// HandleCallback routes a button press through the dialogue state machine.
// The chat's current page decides how the payload is interpreted; anything
// that doesn't fit the page falls through to the expired notice. Blank
// payloads belong to filler cells and are only acknowledged.
func (h *Handler) HandleCallback(cq *tgbotapi.CallbackQuery) {
	if err := h.GW.AnswerCallback(cq.ID); err != nil {
		log.Printf("answer callback: %v", err)
	}
	if cq.Message == nil {
		log.Printf("callback %s carries no message", cq.ID)
		return
	}

	data := cq.Data
	chatID := cq.Message.Chat.ID
	msgID := cq.Message.MessageID

	if strings.TrimSpace(data) == "" {
		return
	}

	st := h.Sessions.Get(chatID)
	switch st.Page {
	case session.PageOccurrence:
		h.occurrenceCallback(chatID, msgID, data)
	case session.PagePickDate:
		h.dateCallback(chatID, msgID, data)
	case session.PagePickTime:
		h.timeCallback(chatID, msgID, data, st)
	case session.PageConfirmDateTime:
		h.confirmDateTimeCallback(chatID, msgID, data, st)
	case session.PageConfirmText:
		h.confirmTextCallback(chatID, msgID, data, st, cq.From)
	default: // PageExpired, including sessions lost to a restart
		h.expire(chatID, msgID)
	}
}

func (h *Handler) occurrenceCallback(chatID int64, msgID int, data string) {
	switch data {
	case tokenOneOff:
		now := h.now()
		h.Sessions.Set(chatID, session.State{Page: session.PagePickDate})
		h.showCalendar(chatID, msgID, now.Day(), int(now.Month()), now.Year())
	case tokenRecurring:
		// not implemented yet
		h.Sessions.Reset(chatID)
		if err := h.GW.DeleteMessage(chatID, msgID); err != nil {
			log.Printf("delete occurrence page: %v", err)
		}
		if err := h.GW.SendSticker(chatID, h.Stickers.ComingSoon); err != nil {
			log.Printf("send coming-soon sticker: %v", err)
		}
	default:
		h.expire(chatID, msgID)
	}
}

func (h *Handler) dateCallback(chatID int64, msgID int, data string) {
	switch {
	case calendar.IsPrevPage(data):
		day, month, year, err := calendar.ParsePrevPage(data)
		if err != nil {
			log.Printf("bad prev-page payload: %v", err)
			h.expire(chatID, msgID)
			return
		}
		h.showCalendar(chatID, msgID, day, month, year)

	case calendar.IsNextPage(data):
		day, month, year, err := calendar.ParseNextPage(data)
		if err != nil {
			log.Printf("bad next-page payload: %v", err)
			h.expire(chatID, msgID)
			return
		}
		h.showCalendar(chatID, msgID, day, month, year)

	case data == calendar.TokenBack:
		h.Sessions.Set(chatID, session.State{Page: session.PageOccurrence})
		h.showOccurrence(chatID, msgID)

	case data == calendar.TokenCurrent:
		now := h.now()
		h.showCalendar(chatID, msgID, now.Day(), int(now.Month()), now.Year())

	default:
		day, month, year, err := calendar.ParseDate(data)
		if err != nil {
			h.expire(chatID, msgID)
			return
		}
		date := time.Date(year, time.Month(month), day, 0, 0, 0, 0, h.Loc)
		sp := timepick.Default()
		h.Sessions.Set(chatID, session.State{Page: session.PagePickTime, Date: date, Spinner: sp})
		h.showTime(chatID, msgID, date, sp)
	}
}

func (h *Handler) timeCallback(chatID int64, msgID int, data string, st session.State) {
	switch data {
	case timepick.TokenBack:
		now := h.now()
		h.Sessions.Set(chatID, session.State{Page: session.PagePickDate})
		h.showCalendar(chatID, msgID, now.Day(), int(now.Month()), now.Year())

	case timepick.TokenNext:
		hour, minute := st.Spinner.HourMinute()
		dt := time.Date(st.Date.Year(), st.Date.Month(), st.Date.Day(), hour, minute, 0, 0, h.Loc)
		now := h.now()
		if !dt.After(now) {
			// stay on the time page so the user can pick again
			h.send(chatID, textPast(now))
			return
		}
		h.Sessions.Set(chatID, session.State{Page: session.PageConfirmDateTime, DateTime: dt})
		h.showRemindText(chatID, msgID, dt)

	default:
		sp, ok := timepick.Apply(st.Spinner, data)
		if !ok {
			h.expire(chatID, msgID)
			return
		}
		st.Spinner = sp
		h.Sessions.Set(chatID, st)
		h.showTime(chatID, msgID, st.Date, sp)
	}
}

func (h *Handler) confirmDateTimeCallback(chatID int64, msgID int, data string, st session.State) {
	if data != tokenChangeTime {
		h.expire(chatID, msgID)
		return
	}
	sp, err := timepick.New(st.DateTime.Hour(), st.DateTime.Minute())
	if err != nil {
		log.Printf("seed spinner from %s: %v", st.DateTime, err)
		h.expire(chatID, msgID)
		return
	}
	date := time.Date(st.DateTime.Year(), st.DateTime.Month(), st.DateTime.Day(), 0, 0, 0, 0, h.Loc)
	h.Sessions.Set(chatID, session.State{Page: session.PagePickTime, Date: date, Spinner: sp})
	h.showTime(chatID, msgID, date, sp)
}

func (h *Handler) confirmTextCallback(chatID int64, msgID int, data string, st session.State, from *tgbotapi.User) {
	switch data {
	case tokenBack:
		h.Sessions.Set(chatID, session.State{Page: session.PageConfirmDateTime, DateTime: st.DateTime})
		h.showRemindText(chatID, msgID, st.DateTime)

	case tokenConfirm:
		if from == nil || from.UserName == "" {
			h.Sessions.Reset(chatID)
			if err := h.GW.EditText(chatID, msgID, textNoUsername); err != nil {
				log.Printf("edit no-username notice: %v", err)
			}
			return
		}

		_, err := h.Sched.ConfirmReminder(chatID, from.UserName, st.Text, st.DateTime)
		h.Sessions.Reset(chatID)

		notice := textConfirmed
		switch {
		case errors.Is(err, scheduler.ErrPastDateTime):
			notice = textPast(h.now())
		case err != nil:
			log.Printf("confirm reminder: %v", err)
			notice = textConfirmFailed
		}
		if err := h.GW.EditText(chatID, msgID, notice); err != nil {
			log.Printf("edit confirmation notice: %v", err)
		}

	default:
		h.expire(chatID, msgID)
	}
}
