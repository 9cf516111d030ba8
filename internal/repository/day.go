package repository

import (
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/daymark-app/daymark/internal/model"
)

var (
	ErrDayNotFound = errors.New("day not found")
)

type DayRepository interface {
	Create(day *model.Day) error
	ByUserAndDate(userID, date string) (*model.Day, error)
	ByID(userID, dayID string) (*model.Day, error)
	UserIDsWithDay(date string) ([]string, error)
}

type dayRepository struct {
	db *sqlx.DB
}

func NewDayRepository(db *sqlx.DB) DayRepository {
	return &dayRepository{db: db}
}

// Create inserts the day unless a row for (user_id, date) already exists.
// Losing a race to another insert is not an error; callers refetch by key.
func (r *dayRepository) Create(day *model.Day) error {
	query := `INSERT INTO days (id, user_id, date, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5)
	          ON CONFLICT (user_id, date) DO NOTHING`

	_, err := r.db.Exec(query,
		day.ID,
		day.UserID,
		day.Date,
		day.CreatedAt,
		day.UpdatedAt,
	)

	return err
}

func (r *dayRepository) ByUserAndDate(userID, date string) (*model.Day, error) {
	day := &model.Day{}
	query := `SELECT * FROM days WHERE user_id = $1 AND date = $2`

	err := r.db.Get(day, query, userID, date)
	if err == sql.ErrNoRows {
		return nil, ErrDayNotFound
	}

	return day, err
}

func (r *dayRepository) ByID(userID, dayID string) (*model.Day, error) {
	day := &model.Day{}
	query := `SELECT * FROM days WHERE id = $1 AND user_id = $2`

	err := r.db.Get(day, query, dayID, userID)
	if err == sql.ErrNoRows {
		return nil, ErrDayNotFound
	}

	return day, err
}

// UserIDsWithDay lists users that have a Day row on the given date. Used by
// the nightly carry-forward job to find who has something to carry.
func (r *dayRepository) UserIDsWithDay(date string) ([]string, error) {
	var ids []string
	query := `SELECT user_id FROM days WHERE date = $1 ORDER BY user_id`

	err := r.db.Select(&ids, query, date)
	if err != nil {
		return nil, err
	}

	return ids, nil
}
