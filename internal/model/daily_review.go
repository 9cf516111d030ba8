package model

import (
	"time"
)

// DailyReview is the end-of-day retrospective of a Day. At most one per Day.
type DailyReview struct {
	ID           string     `db:"id" json:"id"`
	DayID        string     `db:"day_id" json:"dayId"`
	WentWell     string     `db:"went_well" json:"wentWell"`
	NeedsWork    string     `db:"needs_work" json:"needsWork"`
	TomorrowNote string     `db:"tomorrow_note" json:"tomorrowNote"`
	CompletedAt  *time.Time `db:"completed_at" json:"completedAt,omitempty"`
	UpdatedAt    time.Time  `db:"updated_at" json:"updatedAt"`
}
