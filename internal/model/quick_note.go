package model

import (
	"time"
)

// QuickNote is the single free-form notepad of a Day.
type QuickNote struct {
	ID        string    `db:"id" json:"id"`
	DayID     string    `db:"day_id" json:"dayId"`
	Content   string    `db:"content" json:"content"`
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"`
}
