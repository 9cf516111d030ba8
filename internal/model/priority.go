package model

import (
	"time"
)

// Priority is a ranked task item scoped to one Day. Position is assigned as
// count+1 at creation and never renumbered, so gaps appear after deletions.
type Priority struct {
	ID        string    `db:"id" json:"id"`
	DayID     string    `db:"day_id" json:"dayId"`
	Title     string    `db:"title" json:"title"`
	Completed bool      `db:"completed" json:"completed"`
	Position  int       `db:"position" json:"order"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}
