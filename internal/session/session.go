// Package session keeps per-chat dialogue state in process memory. State
// is deliberately not persisted: a restart resets every in-flight dialogue
// to the expired page, and a callback arriving for a chat with no state is
// answered with the expired notice rather than treated as an error.
package session

import (
	"sync"
	"time"

	"telegram-reminder-bot/internal/timepick"
)

// Page names the step of the /remind dialogue a chat is on.
type Page int

const (
	// PageExpired is the zero value: no dialogue in progress.
	PageExpired Page = iota
	PageOccurrence
	PagePickDate
	PagePickTime
	PageConfirmDateTime
	PageConfirmText
)

// State is the dialogue state of one chat. Which data fields are
// meaningful depends on Page: Date and Spinner on PagePickTime, DateTime
// from PageConfirmDateTime on, Text on PageConfirmText.
type State struct {
	Page     Page
	Date     time.Time
	Spinner  timepick.Spinner
	DateTime time.Time
	Text     string
}

// Manager holds dialogue state keyed by chat id.
type Manager struct {
	mu     sync.RWMutex
	states map[int64]State
}

func NewManager() *Manager {
	return &Manager{states: make(map[int64]State)}
}

// Get returns the chat's state. Unknown chats get the zero State, whose
// page is PageExpired.
func (m *Manager) Get(chatID int64) State {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.states[chatID]
}

// Set replaces the chat's state.
func (m *Manager) Set(chatID int64, st State) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.states[chatID] = st
}

// Reset drops the chat's state, returning it to PageExpired.
func (m *Manager) Reset(chatID int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.states, chatID)
}
