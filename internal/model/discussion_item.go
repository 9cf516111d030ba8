package model

import (
	"time"
)

// DiscussionItem is a "talk to X about Y" entry scoped to one Day.
type DiscussionItem struct {
	ID        string    `db:"id" json:"id"`
	DayID     string    `db:"day_id" json:"dayId"`
	Person    string    `db:"person" json:"person"`
	Topic     string    `db:"topic" json:"topic"`
	Done      bool      `db:"done" json:"done"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}
