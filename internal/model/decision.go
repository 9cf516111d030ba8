package model

import (
	"time"
)

const (
	DecisionStatusOpen     = "open"
	DecisionStatusDecided  = "decided"
	DecisionStatusReviewed = "reviewed"
)

// Decision is a decision-log entry: the situation, the choice made, and an
// optional later outcome review.
type Decision struct {
	ID        string     `db:"id" json:"id"`
	UserID    string     `db:"user_id" json:"-"`
	Title     string     `db:"title" json:"title"`
	Context   string     `db:"context" json:"context"`
	Choice    string     `db:"choice" json:"choice"`
	Outcome   string     `db:"outcome" json:"outcome"`
	Status    string     `db:"status" json:"status"`
	DecidedAt *time.Time `db:"decided_at" json:"decidedAt,omitempty"`
	CreatedAt time.Time  `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time  `db:"updated_at" json:"updatedAt"`
}
