package repository

import (
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/daymark-app/daymark/internal/model"
)

var (
	ErrDecisionNotFound = errors.New("decision not found")
)

type DecisionRepository interface {
	Create(decision *model.Decision) error
	ByID(userID, decisionID string) (*model.Decision, error)
	Decisions(userID, status string) ([]*model.Decision, error)
	Update(decision *model.Decision) error
	Delete(userID, decisionID string) error
}

type decisionRepository struct {
	db *sqlx.DB
}

func NewDecisionRepository(db *sqlx.DB) DecisionRepository {
	return &decisionRepository{db: db}
}

func (r *decisionRepository) Create(decision *model.Decision) error {
	query := `INSERT INTO decisions (id, user_id, title, context, choice, outcome, status, decided_at, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	_, err := r.db.Exec(query,
		decision.ID,
		decision.UserID,
		decision.Title,
		decision.Context,
		decision.Choice,
		decision.Outcome,
		decision.Status,
		decision.DecidedAt,
		decision.CreatedAt,
		decision.UpdatedAt,
	)

	return err
}

func (r *decisionRepository) ByID(userID, decisionID string) (*model.Decision, error) {
	decision := &model.Decision{}
	query := `SELECT * FROM decisions WHERE id = $1 AND user_id = $2`

	err := r.db.Get(decision, query, decisionID, userID)
	if err == sql.ErrNoRows {
		return nil, ErrDecisionNotFound
	}

	return decision, err
}

// Decisions lists the log, newest first. status "" means no filter.
func (r *decisionRepository) Decisions(userID, status string) ([]*model.Decision, error) {
	var decisions []*model.Decision

	query := `SELECT * FROM decisions WHERE user_id = $1`
	args := []any{userID}

	if status != "" {
		args = append(args, status)
		query += ` AND status = $2`
	}
	query += ` ORDER BY created_at DESC`

	err := r.db.Select(&decisions, query, args...)
	if err != nil {
		return nil, err
	}

	return decisions, nil
}

func (r *decisionRepository) Update(decision *model.Decision) error {
	query := `UPDATE decisions
	          SET title = $1, context = $2, choice = $3, outcome = $4, status = $5, decided_at = $6, updated_at = $7
	          WHERE id = $8 AND user_id = $9`

	result, err := r.db.Exec(query,
		decision.Title,
		decision.Context,
		decision.Choice,
		decision.Outcome,
		decision.Status,
		decision.DecidedAt,
		decision.UpdatedAt,
		decision.ID,
		decision.UserID,
	)

	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrDecisionNotFound
	}

	return nil
}

func (r *decisionRepository) Delete(userID, decisionID string) error {
	query := `DELETE FROM decisions WHERE id = $1 AND user_id = $2`
	result, err := r.db.Exec(query, decisionID, userID)

	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrDecisionNotFound
	}

	return nil
}
