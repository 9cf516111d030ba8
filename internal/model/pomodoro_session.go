package model

import (
	"time"
)

const (
	PomodoroKindFocus = "focus"
	PomodoroKindBreak = "break"
)

// PomodoroSession logs one timer run. The timer itself runs client-side; the
// backend only records starts and outcomes so streaks survive reloads.
type PomodoroSession struct {
	ID          string     `db:"id" json:"id"`
	UserID      string     `db:"user_id" json:"-"`
	Date        string     `db:"date" json:"date"`
	Kind        string     `db:"kind" json:"kind"`
	Label       string     `db:"label" json:"label"`
	PlannedMin  int        `db:"planned_min" json:"plannedMin"`
	StartedAt   time.Time  `db:"started_at" json:"startedAt"`
	CompletedAt *time.Time `db:"completed_at" json:"completedAt,omitempty"`
	Abandoned   bool       `db:"abandoned" json:"abandoned"`
}
