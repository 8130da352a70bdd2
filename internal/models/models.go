package models

import (
	"time"

	"github.com/google/uuid"
)

// Reminder is a one-shot deferred message confirmed through the /remind
// dialogue. Rows are never deleted; Completed flips to true once the
// scheduled job has fired. JobID is uuid.Nil until the scheduler has
// armed a timer for the row.
type Reminder struct {
	ID         int64     `db:"id"`
	TargetChat int64     `db:"target_chat"`
	Username   string    `db:"username"`
	Message    string    `db:"message"`
	DueAt      time.Time `db:"due_at"`
	Completed  bool      `db:"completed"`
	JobID      uuid.UUID `db:"job_id"`
	CreatedAt  time.Time `db:"created_at"`
}

type GreetingKind string

const (
	GreetingMorning GreetingKind = "morning"
	GreetingNight   GreetingKind = "night"
)

// Greeting is a cron-scheduled message+sticker pair. Rows are loaded once
// at startup and not mutated afterwards, apart from backfilling JobID.
type Greeting struct {
	ID         int64        `db:"id"`
	TargetChat int64        `db:"target_chat"`
	CronExpr   string       `db:"cron_expr"`
	Message    string       `db:"message"`
	Sticker    string       `db:"sticker"`
	Kind       GreetingKind `db:"kind"`
	JobID      uuid.UUID    `db:"job_id"`
}
