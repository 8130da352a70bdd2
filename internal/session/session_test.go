package session

import (
	"testing"
	"time"
)

func TestUnknownChatIsExpired(t *testing.T) {
	m := NewManager()
	st := m.Get(42)
	if st.Page != PageExpired {
		t.Errorf("unknown chat page = %v, want PageExpired", st.Page)
	}
}

func TestSetGetReset(t *testing.T) {
	m := NewManager()
	dt := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	m.Set(1, State{Page: PageConfirmDateTime, DateTime: dt})
	st := m.Get(1)
	if st.Page != PageConfirmDateTime || !st.DateTime.Equal(dt) {
		t.Errorf("got %+v", st)
	}

	// sessions are independent per chat
	if got := m.Get(2); got.Page != PageExpired {
		t.Errorf("chat 2 page = %v, want PageExpired", got.Page)
	}

	m.Reset(1)
	if got := m.Get(1); got.Page != PageExpired {
		t.Errorf("after reset page = %v, want PageExpired", got.Page)
	}
}

func TestSetOverwrites(t *testing.T) {
	m := NewManager()
	m.Set(1, State{Page: PagePickDate})
	m.Set(1, State{Page: PageOccurrence})
	if got := m.Get(1); got.Page != PageOccurrence {
		t.Errorf("page = %v, want PageOccurrence", got.Page)
	}
}
