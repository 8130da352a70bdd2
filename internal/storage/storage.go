package storage

import (
	"database/sql"
	"embed"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"telegram-reminder-bot/internal/models"
)

//go:embed schema.sql
var ddl embed.FS

type DB struct{ *sql.DB }

func New(path string) (*DB, error) {
	db, err := sql.Open("sqlite", path+"?_pragma=journal_mode(wal)&_pragma=foreign_keys(1)")
	if err != nil {
		return nil, err
	}
	if err = migrate(db); err != nil {
		db.Close()
		return nil, err
	}
	return &DB{db}, nil
}

func migrate(db *sql.DB) error {
	b, err := ddl.ReadFile("schema.sql")
	if err != nil {
		return err
	}
	_, err = db.Exec(string(b))
	return err
}

// ---------- reminders -------------------------------------------------------

// InsertReminder stores a new reminder and fills in its id. DueAt and
// CreatedAt are persisted as unix timestamps, so sub-second precision is
// dropped.
func (d *DB) InsertReminder(r *models.Reminder) error {
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now()
	}
	res, err := d.Exec(`
        INSERT INTO reminders (target_chat, username, message, due_at, completed, job_id, created_at)
        VALUES (?,?,?,?,?,NULL,?)
    `, r.TargetChat, r.Username, r.Message, r.DueAt.Unix(), r.Completed, r.CreatedAt.Unix())
	if err != nil {
		return err
	}
	r.ID, err = res.LastInsertId()
	return err
}

// SetReminderJobID backfills the scheduler's correlation id onto a row.
func (d *DB) SetReminderJobID(id int64, jobID uuid.UUID) error {
	_, err := d.Exec(`UPDATE reminders SET job_id=? WHERE id=?`, jobID.String(), id)
	return err
}

// CompleteReminder marks a reminder fired. Matching is by primary key so
// rows that happen to share target, due time and username stay independent.
func (d *DB) CompleteReminder(id int64) error {
	_, err := d.Exec(`UPDATE reminders SET completed=1 WHERE id=?`, id)
	return err
}

// ListPendingReminders returns unfired reminders still due in the future.
func (d *DB) ListPendingReminders(now time.Time) ([]models.Reminder, error) {
	rows, err := d.Query(`
        SELECT id, target_chat, username, message, due_at, completed, job_id, created_at
        FROM reminders
        WHERE completed = 0 AND due_at > ?
    `, now.Unix())
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var res []models.Reminder
	for rows.Next() {
		r, err := scanReminder(rows)
		if err != nil {
			return nil, err
		}
		res = append(res, r)
	}
	return res, rows.Err()
}

func (d *DB) GetReminder(id int64) (*models.Reminder, error) {
	rows, err := d.Query(`
        SELECT id, target_chat, username, message, due_at, completed, job_id, created_at
        FROM reminders WHERE id=?
    `, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	if !rows.Next() {
		return nil, rows.Err()
	}
	r, err := scanReminder(rows)
	if err != nil {
		return nil, err
	}
	return &r, nil
}

func scanReminder(rows *sql.Rows) (models.Reminder, error) {
	var r models.Reminder
	var dueAt, createdAt int64
	var jobID sql.NullString
	if err := rows.Scan(&r.ID, &r.TargetChat, &r.Username, &r.Message,
		&dueAt, &r.Completed, &jobID, &createdAt); err != nil {
		return r, err
	}
	r.DueAt = time.Unix(dueAt, 0)
	r.CreatedAt = time.Unix(createdAt, 0)
	if jobID.Valid {
		id, err := uuid.Parse(jobID.String)
		if err != nil {
			return r, fmt.Errorf("reminder %d: bad job_id: %w", r.ID, err)
		}
		r.JobID = id
	}
	return r, nil
}

// ---------- recurring greetings ---------------------------------------------

func (d *DB) InsertGreeting(g *models.Greeting) error {
	res, err := d.Exec(`
        INSERT INTO recurring_greetings (target_chat, cron_expr, message, sticker, kind, job_id)
        VALUES (?,?,?,?,?,NULL)
    `, g.TargetChat, g.CronExpr, g.Message, g.Sticker, string(g.Kind))
	if err != nil {
		return err
	}
	g.ID, err = res.LastInsertId()
	return err
}

func (d *DB) ListGreetings() ([]models.Greeting, error) {
	rows, err := d.Query(`
        SELECT id, target_chat, cron_expr, message, sticker, kind, job_id
        FROM recurring_greetings
    `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var res []models.Greeting
	for rows.Next() {
		var g models.Greeting
		var kind string
		var jobID sql.NullString
		if err := rows.Scan(&g.ID, &g.TargetChat, &g.CronExpr, &g.Message,
			&g.Sticker, &kind, &jobID); err != nil {
			return nil, err
		}
		g.Kind = models.GreetingKind(kind)
		if jobID.Valid {
			id, err := uuid.Parse(jobID.String)
			if err != nil {
				return nil, fmt.Errorf("greeting %d: bad job_id: %w", g.ID, err)
			}
			g.JobID = id
		}
		res = append(res, g)
	}
	return res, rows.Err()
}

func (d *DB) SetGreetingJobID(id int64, jobID uuid.UUID) error {
	_, err := d.Exec(`UPDATE recurring_greetings SET job_id=? WHERE id=?`, jobID.String(), id)
	return err
}
