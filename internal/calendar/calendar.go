// Package calendar builds the inline-keyboard month grid used by the date
// page. The grid is Monday-first and only offers days from the requested
// day to the end of the month; earlier cells are rendered as blank filler
// buttons so every week row stays seven cells wide.
package calendar

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

const (
	// TokenBack leaves the date page for the occurrence page.
	TokenBack = "Occurrence"
	// TokenCurrent jumps a paged-forward calendar back to today.
	TokenCurrent = "Current"
	// Blank is the payload of filler cells; callbacks carrying it are
	// acknowledged and otherwise ignored.
	Blank = " "

	prevSuffix = " <<"
	nextPrefix = ">> "
)

var ErrInvalidDate = errors.New("invalid calendar date")

var monthNames = [...]string{
	"Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
}

// Keyboard renders the month grid for the given day/month/year. now decides
// how the previous-month button behaves: paging back past the month now is
// in is not offered, and paging back into that month lands on today rather
// than day 1.
func Keyboard(day, month, year int, now time.Time) (tgbotapi.InlineKeyboardMarkup, error) {
	if month < 1 || month > 12 || year < 1 {
		return tgbotapi.InlineKeyboardMarkup{}, fmt.Errorf("%w: %d-%d-%d", ErrInvalidDate, day, month, year)
	}

	loc := now.Location()
	firstOfMonth := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, loc)
	lastDay := firstOfMonth.AddDate(0, 1, -1).Day()
	if day < 1 || day > lastDay {
		return tgbotapi.InlineKeyboardMarkup{}, fmt.Errorf("%w: %d-%d-%d", ErrInvalidDate, day, month, year)
	}

	var cells []tgbotapi.InlineKeyboardButton

	// leading blanks up to the weekday of day 1, Monday first
	for i := 0; i < mondayIndex(firstOfMonth.Weekday()); i++ {
		cells = append(cells, blankButton())
	}
	// blanks for days already elapsed before the requested day
	for i := 1; i < day; i++ {
		cells = append(cells, blankButton())
	}
	for d := day; d <= lastDay; d++ {
		payload := fmt.Sprintf("%d-%d-%d", d, month, year)
		cells = append(cells, tgbotapi.NewInlineKeyboardButtonData(strconv.Itoa(d), payload))
	}
	// trailing blanks to complete the final week
	lastOfMonth := time.Date(year, time.Month(month), lastDay, 0, 0, 0, 0, loc)
	for i := mondayIndex(lastOfMonth.Weekday()); i < 6; i++ {
		cells = append(cells, blankButton())
	}

	rows := [][]tgbotapi.InlineKeyboardButton{
		paginationRow(month, year, now),
		weekdayRow(),
	}
	for i := 0; i < len(cells); i += 7 {
		rows = append(rows, cells[i:i+7])
	}

	bottom := []tgbotapi.InlineKeyboardButton{
		tgbotapi.NewInlineKeyboardButtonData("Back", TokenBack),
	}
	if month != int(now.Month()) || year != now.Year() {
		bottom = append(bottom, tgbotapi.NewInlineKeyboardButtonData(TokenCurrent, TokenCurrent))
	}
	rows = append(rows, bottom)

	return tgbotapi.NewInlineKeyboardMarkup(rows...), nil
}

// paginationRow builds "<< | MonthName Year | >>". The previous-month
// button pages back only while the previous month is not over: fully in the
// future it targets day 1, the month currently in progress targets today,
// anything older is a blank.
func paginationRow(month, year int, now time.Time) []tgbotapi.InlineKeyboardButton {
	prevMonth, prevYear := month-1, year
	if month == 1 {
		prevMonth, prevYear = 12, year-1
	}
	nextMonth, nextYear := month+1, year
	if month == 12 {
		nextMonth, nextYear = 1, year+1
	}

	prev := blankButton()
	firstOfPrev := time.Date(prevYear, time.Month(prevMonth), 1, 0, 0, 0, 0, now.Location())
	switch {
	case firstOfPrev.After(now):
		payload := fmt.Sprintf("1-%d-%d%s", prevMonth, prevYear, prevSuffix)
		prev = tgbotapi.NewInlineKeyboardButtonData("<<", payload)
	case prevMonth == int(now.Month()) && prevYear == now.Year():
		payload := fmt.Sprintf("%d-%d-%d%s", now.Day(), prevMonth, prevYear, prevSuffix)
		prev = tgbotapi.NewInlineKeyboardButtonData("<<", payload)
	}

	title := fmt.Sprintf("%s %d", monthNames[month-1], year)
	next := tgbotapi.NewInlineKeyboardButtonData(
		">>", fmt.Sprintf("%s1-%d-%d", nextPrefix, nextMonth, nextYear))

	return []tgbotapi.InlineKeyboardButton{
		prev,
		tgbotapi.NewInlineKeyboardButtonData(title, Blank),
		next,
	}
}

func weekdayRow() []tgbotapi.InlineKeyboardButton {
	names := []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}
	row := make([]tgbotapi.InlineKeyboardButton, 0, len(names))
	for _, n := range names {
		row = append(row, tgbotapi.NewInlineKeyboardButtonData(n, Blank))
	}
	return row
}

func blankButton() tgbotapi.InlineKeyboardButton {
	return tgbotapi.NewInlineKeyboardButtonData(Blank, Blank)
}

// mondayIndex maps time.Weekday to a Monday-first column index.
func mondayIndex(wd time.Weekday) int {
	return (int(wd) + 6) % 7
}

// ParseDate parses a "d-m-yyyy" day-button payload.
func ParseDate(payload string) (day, month, year int, err error) {
	parts := strings.Split(payload, "-")
	if len(parts) != 3 {
		return 0, 0, 0, fmt.Errorf("%w: %q", ErrInvalidDate, payload)
	}
	nums := make([]int, 3)
	for i, p := range parts {
		n, convErr := strconv.Atoi(p)
		if convErr != nil {
			return 0, 0, 0, fmt.Errorf("%w: %q", ErrInvalidDate, payload)
		}
		nums[i] = n
	}
	day, month, year = nums[0], nums[1], nums[2]
	if month < 1 || month > 12 || year < 1 {
		return 0, 0, 0, fmt.Errorf("%w: %q", ErrInvalidDate, payload)
	}
	lastDay := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC).AddDate(0, 1, -1).Day()
	if day < 1 || day > lastDay {
		return 0, 0, 0, fmt.Errorf("%w: %q", ErrInvalidDate, payload)
	}
	return day, month, year, nil
}

// ParsePrevPage parses a "d-m-yyyy <<" previous-month payload, giving the
// day to land on.
func ParsePrevPage(payload string) (day, month, year int, err error) {
	raw, found := strings.CutSuffix(payload, prevSuffix)
	if !found {
		return 0, 0, 0, fmt.Errorf("%w: %q", ErrInvalidDate, payload)
	}
	return ParseDate(raw)
}

// ParseNextPage parses a ">> d-m-yyyy" next-month payload.
func ParseNextPage(payload string) (day, month, year int, err error) {
	raw, found := strings.CutPrefix(payload, nextPrefix)
	if !found {
		return 0, 0, 0, fmt.Errorf("%w: %q", ErrInvalidDate, payload)
	}
	return ParseDate(raw)
}

// IsPrevPage reports whether the payload is a previous-month page token.
func IsPrevPage(payload string) bool { return strings.HasSuffix(payload, prevSuffix) }

// IsNextPage reports whether the payload is a next-month page token.
func IsNextPage(payload string) bool { return strings.HasPrefix(payload, nextPrefix) }
