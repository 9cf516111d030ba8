package repository

import (
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/daymark-app/daymark/internal/model"
)

var (
	ErrQuickNoteNotFound = errors.New("quick note not found")
)

type QuickNoteRepository interface {
	ByDay(dayID string) (*model.QuickNote, error)
	Upsert(note *model.QuickNote) error
}

type quickNoteRepository struct {
	db *sqlx.DB
}

func NewQuickNoteRepository(db *sqlx.DB) QuickNoteRepository {
	return &quickNoteRepository{db: db}
}

func (r *quickNoteRepository) ByDay(dayID string) (*model.QuickNote, error) {
	note := &model.QuickNote{}
	query := `SELECT * FROM quick_notes WHERE day_id = $1`

	err := r.db.Get(note, query, dayID)
	if err == sql.ErrNoRows {
		return nil, ErrQuickNoteNotFound
	}

	return note, err
}

// Upsert writes the day's single note, replacing content on repeat saves.
// Debounced autosave from the client hits this path repeatedly.
func (r *quickNoteRepository) Upsert(note *model.QuickNote) error {
	query := `INSERT INTO quick_notes (id, day_id, content, updated_at)
	          VALUES ($1, $2, $3, $4)
	          ON CONFLICT (day_id) DO UPDATE SET content = $3, updated_at = $4`

	_, err := r.db.Exec(query,
		note.ID,
		note.DayID,
		note.Content,
		note.UpdatedAt,
	)

	return err
}
