// Package timepick holds the four-digit time spinner shown on the
// time-of-day page. Each digit has its own up/down button; mutations keep
// the combined value a valid 24-hour clock time through carry and borrow
// rules, so there is no invalid state to reject.
package timepick

import "fmt"

// Spinner is a 24-hour clock time split into four digits. The combined
// hour never exceeds 23 and the combined minute never exceeds 59.
type Spinner struct {
	TenHour   uint8
	Hour      uint8
	TenMinute uint8
	Minute    uint8
}

// Default is the time first shown to the user: 12:00.
func Default() Spinner {
	return Spinner{TenHour: 1, Hour: 2}
}

// New splits an hour and minute into digits.
func New(hour, minute int) (Spinner, error) {
	if hour < 0 || hour > 23 {
		return Spinner{}, fmt.Errorf("invalid hour: %d", hour)
	}
	if minute < 0 || minute > 59 {
		return Spinner{}, fmt.Errorf("invalid minute: %d", minute)
	}
	return Spinner{
		TenHour:   uint8(hour / 10),
		Hour:      uint8(hour % 10),
		TenMinute: uint8(minute / 10),
		Minute:    uint8(minute % 10),
	}, nil
}

// HourMinute recombines the digits into a clock time.
func (s Spinner) HourMinute() (hour, minute int) {
	return int(s.TenHour)*10 + int(s.Hour), int(s.TenMinute)*10 + int(s.Minute)
}

func (s Spinner) String() string {
	return fmt.Sprintf("%d%d:%d%d", s.TenHour, s.Hour, s.TenMinute, s.Minute)
}

// TenHourUp cycles the tens-of-hour digit through the values that keep the
// hour below 24: 0,1,2 while the ones digit is at most 3, otherwise 0,1.
func (s Spinner) TenHourUp() Spinner {
	switch {
	case s.Hour <= 3:
		if s.TenHour >= 2 {
			s.TenHour = 0
		} else {
			s.TenHour++
		}
	default:
		if s.TenHour >= 1 {
			s.TenHour = 0
		} else {
			s.TenHour++
		}
	}
	return s
}

func (s Spinner) TenHourDown() Spinner {
	if s.TenHour >= 1 {
		s.TenHour--
		return s
	}
	if s.Hour <= 3 {
		s.TenHour = 2
	} else {
		s.TenHour = 1
	}
	return s
}

// HourUp increments the ones-of-hour digit. Below 20 hours it carries into
// the tens digit; from 20 hours on it cycles 20→21→22→23→20 so the tens
// digit is left alone.
func (s Spinner) HourUp() Spinner {
	if s.TenHour <= 1 {
		if s.Hour >= 9 {
			s.Hour = 0
			s.TenHour++
		} else {
			s.Hour++
		}
		return s
	}
	if s.Hour >= 3 {
		s.Hour = 0
	} else {
		s.Hour++
	}
	return s
}

func (s Spinner) HourDown() Spinner {
	if s.TenHour >= 1 {
		if s.Hour == 0 {
			s.TenHour--
			s.Hour = 9
		} else {
			s.Hour--
		}
		return s
	}
	if s.Hour == 0 {
		s.TenHour = 2
		s.Hour = 3
	} else {
		s.Hour--
	}
	return s
}

func (s Spinner) TenMinuteUp() Spinner {
	if s.TenMinute >= 5 {
		s.TenMinute = 0
	} else {
		s.TenMinute++
	}
	return s
}

func (s Spinner) TenMinuteDown() Spinner {
	if s.TenMinute == 0 {
		s.TenMinute = 5
	} else {
		s.TenMinute--
	}
	return s
}

func (s Spinner) MinuteUp() Spinner {
	if s.Minute >= 9 {
		s.Minute = 0
	} else {
		s.Minute++
	}
	return s
}

func (s Spinner) MinuteDown() Spinner {
	if s.Minute == 0 {
		s.Minute = 9
	} else {
		s.Minute--
	}
	return s
}
