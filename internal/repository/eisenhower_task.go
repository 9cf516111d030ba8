package repository

import (
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/daymark-app/daymark/internal/model"
)

var (
	ErrEisenhowerTaskNotFound = errors.New("eisenhower task not found")
)

type EisenhowerTaskRepository interface {
	Create(task *model.EisenhowerTask) error
	ByID(userID, taskID string) (*model.EisenhowerTask, error)
	Tasks(userID string, quadrant int, lifeAreaID string) ([]*model.EisenhowerTask, error)
	Update(task *model.EisenhowerTask) error
	Delete(userID, taskID string) error
}

type eisenhowerTaskRepository struct {
	db *sqlx.DB
}

func NewEisenhowerTaskRepository(db *sqlx.DB) EisenhowerTaskRepository {
	return &eisenhowerTaskRepository{db: db}
}

func (r *eisenhowerTaskRepository) Create(task *model.EisenhowerTask) error {
	query := `INSERT INTO eisenhower_tasks (id, user_id, title, note, quadrant, life_area_id, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := r.db.Exec(query,
		task.ID,
		task.UserID,
		task.Title,
		task.Note,
		task.Quadrant,
		task.LifeAreaID,
		task.CreatedAt,
		task.UpdatedAt,
	)

	return err
}

func (r *eisenhowerTaskRepository) ByID(userID, taskID string) (*model.EisenhowerTask, error) {
	task := &model.EisenhowerTask{}
	query := `SELECT * FROM eisenhower_tasks WHERE id = $1 AND user_id = $2`

	err := r.db.Get(task, query, taskID, userID)
	if err == sql.ErrNoRows {
		return nil, ErrEisenhowerTaskNotFound
	}

	return task, err
}

// Tasks lists the user's matrix. quadrant 0 and lifeAreaID "" mean no filter.
func (r *eisenhowerTaskRepository) Tasks(userID string, quadrant int, lifeAreaID string) ([]*model.EisenhowerTask, error) {
	var tasks []*model.EisenhowerTask

	query := `SELECT * FROM eisenhower_tasks WHERE user_id = $1`
	args := []any{userID}

	if quadrant != 0 {
		args = append(args, quadrant)
		query += ` AND quadrant = $2`
	}
	if lifeAreaID != "" {
		args = append(args, lifeAreaID)
		if quadrant != 0 {
			query += ` AND life_area_id = $3`
		} else {
			query += ` AND life_area_id = $2`
		}
	}
	query += ` ORDER BY quadrant ASC, created_at ASC`

	err := r.db.Select(&tasks, query, args...)
	if err != nil {
		return nil, err
	}

	return tasks, nil
}

func (r *eisenhowerTaskRepository) Update(task *model.EisenhowerTask) error {
	query := `UPDATE eisenhower_tasks
	          SET title = $1, note = $2, quadrant = $3, life_area_id = $4, updated_at = $5
	          WHERE id = $6 AND user_id = $7`

	result, err := r.db.Exec(query,
		task.Title,
		task.Note,
		task.Quadrant,
		task.LifeAreaID,
		task.UpdatedAt,
		task.ID,
		task.UserID,
	)

	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrEisenhowerTaskNotFound
	}

	return nil
}

func (r *eisenhowerTaskRepository) Delete(userID, taskID string) error {
	query := `DELETE FROM eisenhower_tasks WHERE id = $1 AND user_id = $2`
	result, err := r.db.Exec(query, taskID, userID)

	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrEisenhowerTaskNotFound
	}

	return nil
}
