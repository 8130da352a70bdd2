// Package scheduler turns confirmed selections into durable reminder rows
// backed by armed gocron jobs, and re-arms everything pending after a
// restart. A row is always inserted before its timer is armed, so a failed
// insert never leaves an orphaned timer; the reverse gap (a row whose
// arming failed) is surfaced to the caller and will be retried by recovery
// on the next start.
package scheduler

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/go-co-op/gocron/v2"
	cronparse "github.com/robfig/cron/v3"

	"telegram-reminder-bot/internal/config"
	"telegram-reminder-bot/internal/gateway"
	"telegram-reminder-bot/internal/models"
	"telegram-reminder-bot/internal/storage"
)

// ErrPastDateTime rejects a confirmation whose instant is no longer in the
// future. The dialogue checks this earlier too, but time keeps moving
// between selection and confirmation.
var ErrPastDateTime = errors.New("chosen datetime is in the past")

type Scheduler struct {
	runtime  gocron.Scheduler
	db       *storage.DB
	gw       gateway.Gateway
	stickers config.Stickers
	now      func() time.Time
}

// New builds a stopped scheduler; call Start after recovery has re-armed
// persisted jobs. now is injectable for tests.
func New(db *storage.DB, gw gateway.Gateway, loc *time.Location, stickers config.Stickers, now func() time.Time) (*Scheduler, error) {
	runtime, err := gocron.NewScheduler(gocron.WithLocation(loc))
	if err != nil {
		return nil, fmt.Errorf("create scheduler runtime: %w", err)
	}
	if now == nil {
		now = time.Now
	}
	return &Scheduler{runtime: runtime, db: db, gw: gw, stickers: stickers, now: now}, nil
}

func (s *Scheduler) Start() { s.runtime.Start() }

func (s *Scheduler) Shutdown() error { return s.runtime.Shutdown() }

// ConfirmReminder persists a reminder and arms its one-shot timer,
// returning the new row id. The reminder fires exactly once; delivery
// failure at fire time is logged, not retried.
func (s *Scheduler) ConfirmReminder(chatID int64, username, text string, due time.Time) (int64, error) {
	if !due.After(s.now()) {
		return 0, ErrPastDateTime
	}

	r := &models.Reminder{
		TargetChat: chatID,
		Username:   username,
		Message:    text,
		DueAt:      due,
	}
	if err := s.db.InsertReminder(r); err != nil {
		return 0, fmt.Errorf("insert reminder: %w", err)
	}
	if err := s.armReminder(*r); err != nil {
		return 0, fmt.Errorf("arm reminder %d: %w", r.ID, err)
	}
	return r.ID, nil
}

// Recover re-arms all unfired future reminders and all recurring
// greetings. A job that fails to arm is logged and skipped for this
// process lifetime; recovery only fails when the store cannot be read.
func (s *Scheduler) Recover() error {
	now := s.now()

	pending, err := s.db.ListPendingReminders(now)
	if err != nil {
		return fmt.Errorf("list pending reminders: %w", err)
	}
	reminders := 0
	for _, r := range pending {
		if err := s.armReminder(r); err != nil {
			log.Printf("recovery: skipping reminder %d: %v", r.ID, err)
			continue
		}
		reminders++
	}

	list, err := s.db.ListGreetings()
	if err != nil {
		return fmt.Errorf("list greetings: %w", err)
	}
	greetings := 0
	for _, g := range list {
		if err := s.armGreeting(g); err != nil {
			log.Printf("recovery: skipping greeting %d: %v", g.ID, err)
			continue
		}
		greetings++
	}

	log.Printf("recovery: armed %d reminder(s), %d greeting(s)", reminders, greetings)
	return nil
}

func (s *Scheduler) armReminder(r models.Reminder) error {
	job, err := s.runtime.NewJob(
		gocron.OneTimeJob(gocron.OneTimeJobStartDateTime(r.DueAt)),
		gocron.NewTask(s.fireReminder, r.ID, r.TargetChat, r.Username, r.Message),
	)
	if err != nil {
		return err
	}
	// best effort: a missing correlation id doesn't stop the job firing
	if err := s.db.SetReminderJobID(r.ID, job.ID()); err != nil {
		log.Printf("record job id for reminder %d: %v", r.ID, err)
	}
	return nil
}

// fireReminder is the body of an armed one-shot job. Both the delivery
// and the completion update are attempted once; failures are logged and
// never propagated, since nobody is waiting on the result.
func (s *Scheduler) fireReminder(id, chatID int64, username, message string) {
	text := fmt.Sprintf("From: @%s\n\n%s", username, message)
	if _, err := s.gw.SendMessage(chatID, text); err != nil {
		log.Printf("send reminder %d: %v", id, err)
	}
	if err := s.db.CompleteReminder(id); err != nil {
		log.Printf("mark reminder %d completed: %v", id, err)
	}
}

func (s *Scheduler) armGreeting(g models.Greeting) error {
	sched, err := cronparse.ParseStandard(g.CronExpr)
	if err != nil {
		return fmt.Errorf("parse cron %q: %w", g.CronExpr, err)
	}
	job, err := s.runtime.NewJob(
		gocron.CronJob(g.CronExpr, false),
		gocron.NewTask(s.fireGreeting, g.ID, g.TargetChat, g.Message, s.greetingSticker(g)),
	)
	if err != nil {
		return err
	}
	if err := s.db.SetGreetingJobID(g.ID, job.ID()); err != nil {
		log.Printf("record job id for greeting %d: %v", g.ID, err)
	}
	log.Printf("greeting %d (%s): next run %s", g.ID, g.Kind, sched.Next(s.now()).Format(time.RFC3339))
	return nil
}

// greetingSticker resolves the sticker a greeting fires with: the row's
// own sticker when set, otherwise the stock sticker for its kind.
func (s *Scheduler) greetingSticker(g models.Greeting) string {
	if g.Sticker != "" {
		return g.Sticker
	}
	switch g.Kind {
	case models.GreetingNight:
		return s.stickers.Sleep
	default:
		return s.stickers.Hello
	}
}

func (s *Scheduler) fireGreeting(id, chatID int64, message, sticker string) {
	if sticker != "" {
		if err := s.gw.SendSticker(chatID, sticker); err != nil {
			log.Printf("send greeting sticker %d: %v", id, err)
		}
	}
	if _, err := s.gw.SendMessage(chatID, message); err != nil {
		log.Printf("send greeting %d: %v", id, err)
	}
}
