package timepick

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Callback tokens for the eight digit buttons.
const (
	TokenTenHourUp   = "TenHourUp"
	TokenHourUp      = "HourUp"
	TokenTenMinuteUp = "TenMinuteUp"
	TokenMinuteUp    = "MinuteUp"

	TokenTenHourDown   = "TenHourDown"
	TokenHourDown      = "HourDown"
	TokenTenMinuteDown = "TenMinuteDown"
	TokenMinuteDown    = "MinuteDown"

	TokenBack = "Back"
	TokenNext = "Next"
)

// Apply runs the mutator named by a callback token. ok is false when the
// token is not one of the eight digit buttons.
func Apply(s Spinner, token string) (next Spinner, ok bool) {
	switch token {
	case TokenTenHourUp:
		return s.TenHourUp(), true
	case TokenHourUp:
		return s.HourUp(), true
	case TokenTenMinuteUp:
		return s.TenMinuteUp(), true
	case TokenMinuteUp:
		return s.MinuteUp(), true
	case TokenTenHourDown:
		return s.TenHourDown(), true
	case TokenHourDown:
		return s.HourDown(), true
	case TokenTenMinuteDown:
		return s.TenMinuteDown(), true
	case TokenMinuteDown:
		return s.MinuteDown(), true
	}
	return s, false
}

// Keyboard renders the spinner as four digit columns with up arrows above
// and down arrows below, plus a Back/Next row.
func Keyboard(s Spinner) tgbotapi.InlineKeyboardMarkup {
	const up = "↑"
	const down = "↓"

	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(up, TokenTenHourUp),
			tgbotapi.NewInlineKeyboardButtonData(up, TokenHourUp),
			tgbotapi.NewInlineKeyboardButtonData(up, TokenTenMinuteUp),
			tgbotapi.NewInlineKeyboardButtonData(up, TokenMinuteUp),
		),
		tgbotapi.NewInlineKeyboardRow(
			digitButton(s.TenHour),
			digitButton(s.Hour),
			digitButton(s.TenMinute),
			digitButton(s.Minute),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(down, TokenTenHourDown),
			tgbotapi.NewInlineKeyboardButtonData(down, TokenHourDown),
			tgbotapi.NewInlineKeyboardButtonData(down, TokenTenMinuteDown),
			tgbotapi.NewInlineKeyboardButtonData(down, TokenMinuteDown),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(TokenBack, TokenBack),
			tgbotapi.NewInlineKeyboardButtonData(TokenNext, TokenNext),
		),
	)
}

func digitButton(d uint8) tgbotapi.InlineKeyboardButton {
	return tgbotapi.NewInlineKeyboardButtonData(string('0'+rune(d)), " ")
}
