package repository

import (
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/daymark-app/daymark/internal/model"
)

var (
	ErrLifeAreaNotFound = errors.New("life area not found")
)

type LifeAreaRepository interface {
	Create(area *model.LifeArea) error
	ByID(userID, areaID string) (*model.LifeArea, error)
	Areas(userID string) ([]*model.LifeArea, error)
	Update(area *model.LifeArea) error
	Delete(userID, areaID string) error
}

type lifeAreaRepository struct {
	db *sqlx.DB
}

func NewLifeAreaRepository(db *sqlx.DB) LifeAreaRepository {
	return &lifeAreaRepository{db: db}
}

func (r *lifeAreaRepository) Create(area *model.LifeArea) error {
	query := `INSERT INTO life_areas (id, user_id, name, color, position, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.db.Exec(query,
		area.ID,
		area.UserID,
		area.Name,
		area.Color,
		area.Position,
		area.CreatedAt,
	)

	return err
}

func (r *lifeAreaRepository) ByID(userID, areaID string) (*model.LifeArea, error) {
	area := &model.LifeArea{}
	query := `SELECT * FROM life_areas WHERE id = $1 AND user_id = $2`

	err := r.db.Get(area, query, areaID, userID)
	if err == sql.ErrNoRows {
		return nil, ErrLifeAreaNotFound
	}

	return area, err
}

func (r *lifeAreaRepository) Areas(userID string) ([]*model.LifeArea, error) {
	var areas []*model.LifeArea
	query := `SELECT * FROM life_areas WHERE user_id = $1 ORDER BY position ASC, created_at ASC`

	err := r.db.Select(&areas, query, userID)
	if err != nil {
		return nil, err
	}

	return areas, nil
}

func (r *lifeAreaRepository) Update(area *model.LifeArea) error {
	query := `UPDATE life_areas
	          SET name = $1, color = $2, position = $3
	          WHERE id = $4 AND user_id = $5`

	result, err := r.db.Exec(query, area.Name, area.Color, area.Position, area.ID, area.UserID)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrLifeAreaNotFound
	}

	return nil
}

func (r *lifeAreaRepository) Delete(userID, areaID string) error {
	query := `DELETE FROM life_areas WHERE id = $1 AND user_id = $2`
	result, err := r.db.Exec(query, areaID, userID)

	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrLifeAreaNotFound
	}

	return nil
}
