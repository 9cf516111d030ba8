package repository

import (
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/daymark-app/daymark/internal/model"
)

var (
	ErrTimeBlockNotFound = errors.New("time block not found")
)

type TimeBlockRepository interface {
	Create(block *model.TimeBlock) error
	ByID(userID, blockID string) (*model.TimeBlock, error)
	ByDay(dayID string) ([]*model.TimeBlock, error)
	Update(userID string, block *model.TimeBlock) error
	Delete(userID, blockID string) error
}

type timeBlockRepository struct {
	db *sqlx.DB
}

func NewTimeBlockRepository(db *sqlx.DB) TimeBlockRepository {
	return &timeBlockRepository{db: db}
}

func (r *timeBlockRepository) Create(block *model.TimeBlock) error {
	query := `INSERT INTO time_blocks (id, day_id, label, start_min, end_min, life_area_id, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.db.Exec(query,
		block.ID,
		block.DayID,
		block.Label,
		block.StartMin,
		block.EndMin,
		block.LifeAreaID,
		block.CreatedAt,
	)

	return err
}

func (r *timeBlockRepository) ByID(userID, blockID string) (*model.TimeBlock, error) {
	block := &model.TimeBlock{}
	query := `SELECT b.* FROM time_blocks b
	          JOIN days d ON d.id = b.day_id
	          WHERE b.id = $1 AND d.user_id = $2`

	err := r.db.Get(block, query, blockID, userID)
	if err == sql.ErrNoRows {
		return nil, ErrTimeBlockNotFound
	}

	return block, err
}

func (r *timeBlockRepository) ByDay(dayID string) ([]*model.TimeBlock, error) {
	var blocks []*model.TimeBlock
	query := `SELECT * FROM time_blocks WHERE day_id = $1 ORDER BY start_min ASC`

	err := r.db.Select(&blocks, query, dayID)
	if err != nil {
		return nil, err
	}

	return blocks, nil
}

func (r *timeBlockRepository) Update(userID string, block *model.TimeBlock) error {
	query := `UPDATE time_blocks
	          SET label = $1, start_min = $2, end_min = $3, life_area_id = $4
	          WHERE id = $5 AND day_id IN (SELECT id FROM days WHERE user_id = $6)`

	result, err := r.db.Exec(query, block.Label, block.StartMin, block.EndMin, block.LifeAreaID, block.ID, userID)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrTimeBlockNotFound
	}

	return nil
}

func (r *timeBlockRepository) Delete(userID, blockID string) error {
	query := `DELETE FROM time_blocks
	          WHERE id = $1 AND day_id IN (SELECT id FROM days WHERE user_id = $2)`

	result, err := r.db.Exec(query, blockID, userID)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrTimeBlockNotFound
	}

	return nil
}
