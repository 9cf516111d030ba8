package model

import (
	"time"
)

// TimeBlock is a scheduled slot on a Day. Start and end are minutes-of-day
// local clock values (HH:MM on the wire), not timestamps.
type TimeBlock struct {
	ID         string    `db:"id" json:"id"`
	DayID      string    `db:"day_id" json:"dayId"`
	Label      string    `db:"label" json:"label"`
	StartMin   int       `db:"start_min" json:"startMin"`
	EndMin     int       `db:"end_min" json:"endMin"`
	LifeAreaID *string   `db:"life_area_id" json:"lifeAreaId,omitempty"`
	CreatedAt  time.Time `db:"created_at" json:"createdAt"`
}
