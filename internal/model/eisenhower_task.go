package model

import (
	"time"
)

const (
	QuadrantUrgentImportant       = 1
	QuadrantNotUrgentImportant    = 2
	QuadrantUrgentNotImportant    = 3
	QuadrantNotUrgentNotImportant = 4
)

// EisenhowerTask is a user-scoped matrix task. It belongs to the user, not to
// a Day; promotion converts it into a Day's Priority and destroys the task.
type EisenhowerTask struct {
	ID         string    `db:"id" json:"id"`
	UserID     string    `db:"user_id" json:"-"`
	Title      string    `db:"title" json:"title"`
	Note       string    `db:"note" json:"note"`
	Quadrant   int       `db:"quadrant" json:"quadrant"`
	LifeAreaID *string   `db:"life_area_id" json:"lifeAreaId,omitempty"`
	CreatedAt  time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt  time.Time `db:"updated_at" json:"updatedAt"`
}

// ClampQuadrant forces a quadrant value into [1,4]. Applied on task create and
// update only; the promotion path copies titles and never re-reads quadrants.
func ClampQuadrant(q int) int {
	if q < QuadrantUrgentImportant {
		return QuadrantUrgentImportant
	}
	if q > QuadrantNotUrgentNotImportant {
		return QuadrantNotUrgentNotImportant
	}
	return q
}
