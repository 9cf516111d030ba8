package repository

import (
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/daymark-app/daymark/internal/model"
)

var (
	ErrDailyReviewNotFound = errors.New("daily review not found")
)

type DailyReviewRepository interface {
	ByDay(dayID string) (*model.DailyReview, error)
	Upsert(review *model.DailyReview) error
}

type dailyReviewRepository struct {
	db *sqlx.DB
}

func NewDailyReviewRepository(db *sqlx.DB) DailyReviewRepository {
	return &dailyReviewRepository{db: db}
}

func (r *dailyReviewRepository) ByDay(dayID string) (*model.DailyReview, error) {
	review := &model.DailyReview{}
	query := `SELECT * FROM daily_reviews WHERE day_id = $1`

	err := r.db.Get(review, query, dayID)
	if err == sql.ErrNoRows {
		return nil, ErrDailyReviewNotFound
	}

	return review, err
}

func (r *dailyReviewRepository) Upsert(review *model.DailyReview) error {
	query := `INSERT INTO daily_reviews (id, day_id, went_well, needs_work, tomorrow_note, completed_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7)
	          ON CONFLICT (day_id) DO UPDATE SET
	            went_well = $3, needs_work = $4, tomorrow_note = $5, completed_at = $6, updated_at = $7`

	_, err := r.db.Exec(query,
		review.ID,
		review.DayID,
		review.WentWell,
		review.NeedsWork,
		review.TomorrowNote,
		review.CompletedAt,
		review.UpdatedAt,
	)

	return err
}
