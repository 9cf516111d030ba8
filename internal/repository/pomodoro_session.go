package repository

import (
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/daymark-app/daymark/internal/model"
)

var (
	ErrPomodoroSessionNotFound = errors.New("pomodoro session not found")
)

type PomodoroSessionRepository interface {
	Create(session *model.PomodoroSession) error
	ByID(userID, sessionID string) (*model.PomodoroSession, error)
	ByDate(userID, date string) ([]*model.PomodoroSession, error)
	Finish(userID, sessionID string, completedAt time.Time, abandoned bool) error
}

type pomodoroSessionRepository struct {
	db *sqlx.DB
}

func NewPomodoroSessionRepository(db *sqlx.DB) PomodoroSessionRepository {
	return &pomodoroSessionRepository{db: db}
}

func (r *pomodoroSessionRepository) Create(session *model.PomodoroSession) error {
	query := `INSERT INTO pomodoro_sessions (id, user_id, date, kind, label, planned_min, started_at, completed_at, abandoned)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := r.db.Exec(query,
		session.ID,
		session.UserID,
		session.Date,
		session.Kind,
		session.Label,
		session.PlannedMin,
		session.StartedAt,
		session.CompletedAt,
		session.Abandoned,
	)

	return err
}

func (r *pomodoroSessionRepository) ByID(userID, sessionID string) (*model.PomodoroSession, error) {
	session := &model.PomodoroSession{}
	query := `SELECT * FROM pomodoro_sessions WHERE id = $1 AND user_id = $2`

	err := r.db.Get(session, query, sessionID, userID)
	if err == sql.ErrNoRows {
		return nil, ErrPomodoroSessionNotFound
	}

	return session, err
}

func (r *pomodoroSessionRepository) ByDate(userID, date string) ([]*model.PomodoroSession, error) {
	var sessions []*model.PomodoroSession
	query := `SELECT * FROM pomodoro_sessions WHERE user_id = $1 AND date = $2 ORDER BY started_at ASC`

	err := r.db.Select(&sessions, query, userID, date)
	if err != nil {
		return nil, err
	}

	return sessions, nil
}

func (r *pomodoroSessionRepository) Finish(userID, sessionID string, completedAt time.Time, abandoned bool) error {
	query := `UPDATE pomodoro_sessions
	          SET completed_at = $1, abandoned = $2
	          WHERE id = $3 AND user_id = $4 AND completed_at IS NULL`

	result, err := r.db.Exec(query, completedAt, abandoned, sessionID, userID)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrPomodoroSessionNotFound
	}

	return nil
}
