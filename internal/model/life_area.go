package model

import (
	"time"
)

// LifeArea is a user-defined grouping dimension ("Work", "Health") used to
// filter day content and matrix tasks. Not load-bearing for any workflow.
type LifeArea struct {
	ID        string    `db:"id" json:"id"`
	UserID    string    `db:"user_id" json:"-"`
	Name      string    `db:"name" json:"name"`
	Color     string    `db:"color" json:"color"`
	Position  int       `db:"position" json:"position"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}
