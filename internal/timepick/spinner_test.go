package timepick

import "testing"

var allTokens = []string{
	TokenTenHourUp, TokenHourUp, TokenTenMinuteUp, TokenMinuteUp,
	TokenTenHourDown, TokenHourDown, TokenTenMinuteDown, TokenMinuteDown,
}

func TestDefaultIsNoon(t *testing.T) {
	hour, minute := Default().HourMinute()
	if hour != 12 || minute != 0 {
		t.Errorf("default spinner is %02d:%02d, want 12:00", hour, minute)
	}
}

func TestMutatorsNeverLeaveValidRange(t *testing.T) {
	// every reachable spinner is a valid clock time, so enumerating all
	// clock times covers the whole state space
	for hour := 0; hour <= 23; hour++ {
		for minute := 0; minute <= 59; minute++ {
			sp, err := New(hour, minute)
			if err != nil {
				t.Fatalf("New(%d, %d): %v", hour, minute, err)
			}
			for _, token := range allTokens {
				next, ok := Apply(sp, token)
				if !ok {
					t.Fatalf("Apply(%v, %s) not recognized", sp, token)
				}
				h, m := next.HourMinute()
				if h < 0 || h > 23 || m < 0 || m > 59 {
					t.Errorf("%s on %02d:%02d gives invalid %02d:%02d", token, hour, minute, h, m)
				}
			}
		}
	}
}

func TestMinuteUpCycles(t *testing.T) {
	sp, _ := New(12, 34)
	got := sp
	for i := 0; i < 10; i++ {
		got = got.MinuteUp()
	}
	if got != sp {
		t.Errorf("ten MinuteUp applications give %v, want %v", got, sp)
	}
	if got.TenMinute != sp.TenMinute {
		t.Errorf("MinuteUp touched the tens digit: %v", got)
	}
}

func TestHourUpWrapsWithinTwenties(t *testing.T) {
	sp, _ := New(20, 0)
	want := []int{21, 22, 23, 20}
	for _, w := range want {
		sp = sp.HourUp()
		if h, _ := sp.HourMinute(); h != w {
			t.Fatalf("HourUp gives hour %d, want %d", h, w)
		}
	}
}

func TestHourUpCarries(t *testing.T) {
	for _, tc := range []struct{ from, to int }{
		{9, 10},
		{19, 20},
		{12, 13},
	} {
		sp, _ := New(tc.from, 0)
		if h, _ := sp.HourUp().HourMinute(); h != tc.to {
			t.Errorf("HourUp from %d gives %d, want %d", tc.from, h, tc.to)
		}
	}
}

func TestHourDownBorrows(t *testing.T) {
	for _, tc := range []struct{ from, to int }{
		{10, 9},
		{20, 19},
		{0, 23},
	} {
		sp, _ := New(tc.from, 0)
		if h, _ := sp.HourDown().HourMinute(); h != tc.to {
			t.Errorf("HourDown from %d gives %d, want %d", tc.from, h, tc.to)
		}
	}
}

func TestTenHourUpRespectsOnesDigit(t *testing.T) {
	// with ones digit 3 the tens digit may reach 2 (23 is valid)
	sp, _ := New(3, 0)
	seq := []int{13, 23, 3}
	for _, w := range seq {
		sp = sp.TenHourUp()
		if h, _ := sp.HourMinute(); h != w {
			t.Fatalf("TenHourUp gives hour %d, want %d", h, w)
		}
	}

	// with ones digit 4 the tens digit must skip 2 (24 would be invalid)
	sp, _ = New(4, 0)
	seq = []int{14, 4}
	for _, w := range seq {
		sp = sp.TenHourUp()
		if h, _ := sp.HourMinute(); h != w {
			t.Fatalf("TenHourUp gives hour %d, want %d", h, w)
		}
	}
}

func TestTenMinuteCycles(t *testing.T) {
	sp, _ := New(0, 50)
	if _, m := sp.TenMinuteUp().HourMinute(); m != 0 {
		t.Errorf("TenMinuteUp from :50 gives minute %d, want 0", m)
	}
	sp, _ = New(0, 5)
	if _, m := sp.TenMinuteDown().HourMinute(); m != 55 {
		t.Errorf("TenMinuteDown from :05 gives minute %d, want 55", m)
	}
}

func TestNewRejectsInvalid(t *testing.T) {
	if _, err := New(24, 0); err == nil {
		t.Error("New(24, 0) accepted")
	}
	if _, err := New(0, 60); err == nil {
		t.Error("New(0, 60) accepted")
	}
}

func TestApplyUnknownToken(t *testing.T) {
	sp := Default()
	got, ok := Apply(sp, "Garbage")
	if ok {
		t.Error("Apply accepted an unknown token")
	}
	if got != sp {
		t.Errorf("Apply changed the spinner on unknown token: %v", got)
	}
}
