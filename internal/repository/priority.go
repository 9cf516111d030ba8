package repository

import (
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/daymark-app/daymark/internal/model"
)

var (
	ErrPriorityNotFound = errors.New("priority not found")
)

type PriorityRepository interface {
	Create(p *model.Priority) error
	ByID(userID, priorityID string) (*model.Priority, error)
	ByDay(dayID string) ([]*model.Priority, error)
	IncompleteByDay(dayID string) ([]*model.Priority, error)
	CountByDay(dayID string) (int, error)
	Update(userID string, p *model.Priority) error
	Delete(userID, priorityID string) error
}

type priorityRepository struct {
	db *sqlx.DB
}

func NewPriorityRepository(db *sqlx.DB) PriorityRepository {
	return &priorityRepository{db: db}
}

func (r *priorityRepository) Create(p *model.Priority) error {
	query := `INSERT INTO priorities (id, day_id, title, completed, position, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.db.Exec(query,
		p.ID,
		p.DayID,
		p.Title,
		p.Completed,
		p.Position,
		p.CreatedAt,
	)

	return err
}

func (r *priorityRepository) ByID(userID, priorityID string) (*model.Priority, error) {
	p := &model.Priority{}
	query := `SELECT p.* FROM priorities p
	          JOIN days d ON d.id = p.day_id
	          WHERE p.id = $1 AND d.user_id = $2`

	err := r.db.Get(p, query, priorityID, userID)
	if err == sql.ErrNoRows {
		return nil, ErrPriorityNotFound
	}

	return p, err
}

func (r *priorityRepository) ByDay(dayID string) ([]*model.Priority, error) {
	var priorities []*model.Priority
	query := `SELECT * FROM priorities WHERE day_id = $1 ORDER BY position ASC`

	err := r.db.Select(&priorities, query, dayID)
	if err != nil {
		return nil, err
	}

	return priorities, nil
}

// IncompleteByDay returns open priorities in stored position order. Carry
// order is this order: first in source order wins the remaining slots.
func (r *priorityRepository) IncompleteByDay(dayID string) ([]*model.Priority, error) {
	var priorities []*model.Priority
	query := `SELECT * FROM priorities WHERE day_id = $1 AND completed = false ORDER BY position ASC`

	err := r.db.Select(&priorities, query, dayID)
	if err != nil {
		return nil, err
	}

	return priorities, nil
}

func (r *priorityRepository) CountByDay(dayID string) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM priorities WHERE day_id = $1`
	err := r.db.QueryRow(query, dayID).Scan(&count)
	return count, err
}

func (r *priorityRepository) Update(userID string, p *model.Priority) error {
	query := `UPDATE priorities
	          SET title = $1, completed = $2
	          WHERE id = $3 AND day_id IN (SELECT id FROM days WHERE user_id = $4)`

	result, err := r.db.Exec(query, p.Title, p.Completed, p.ID, userID)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrPriorityNotFound
	}

	return nil
}

func (r *priorityRepository) Delete(userID, priorityID string) error {
	query := `DELETE FROM priorities
	          WHERE id = $1 AND day_id IN (SELECT id FROM days WHERE user_id = $2)`

	result, err := r.db.Exec(query, priorityID, userID)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrPriorityNotFound
	}

	return nil
}
