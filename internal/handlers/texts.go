package handlers

import (
	"fmt"
	"time"
)

// Everything the bot says lives here.
const (
	textOccurrence = `One-Off refers to a reminder that only appears once.

Recurring refers to a reminder that appears at interval.`

	textDatePick = "Pick your date 🐢"

	textEmptyReminder = "I need some text for the reminder. Say it in your next message. 🐢"

	textNoUsername = "I can't set reminders for accounts without a username. 😅"

	textConfirmFailed = "Something went wrong and the reminder was not saved. 😅 Try /remind again."

	textConfirmed = "confirmed 🐢 - your message will be sent."

	textExpired = "This has expired 😅 🐢🐢🐢"

	textHelp = `These commands are supported:

/remind - set a reminder
/datetime - current datetime
/help - see all available commands`
)

func textTimePick(date time.Time) string {
	return fmt.Sprintf(`You have chosen:

year: %d
month: %d
day: %d

Now, let's choose the time. 🐢
The time is in 24 hours format.`,
		date.Year(), int(date.Month()), date.Day())
}

func textRemindText(dt time.Time) string {
	return fmt.Sprintf(`You have chosen:

year: %d
month: %d
day: %d
hour: %d
minute: %d

What is it that you want me to remind you of?
Say it in your next message. 🐢`,
		dt.Year(), int(dt.Month()), dt.Day(), dt.Hour(), dt.Minute())
}

func textJobSummary(dt time.Time, text string) string {
	return fmt.Sprintf(`You have chosen:

year: %d
month: %d
day: %d
hour: %d
minute: %d

text:
%s`,
		dt.Year(), int(dt.Month()), dt.Day(), dt.Hour(), dt.Minute(), text)
}

func textPast(now time.Time) string {
	return fmt.Sprintf(`You can't send a message into the past. ❌

Messages should be after this instant.
The current time is %s.`,
		now.Format("15:04:05"))
}

func textDateTime(now time.Time) string {
	return now.Format("Mon, 02 Jan 2006 15:04:05 MST")
}
