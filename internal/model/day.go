package model

import (
	"time"
)

// Day is the per-user, per-date aggregate root. At most one row exists per
// (user_id, date); dates are stored as YYYY-MM-DD strings with no time part.
type Day struct {
	ID        string    `db:"id" json:"id"`
	UserID    string    `db:"user_id" json:"-"`
	Date      string    `db:"date" json:"date"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"`
}
