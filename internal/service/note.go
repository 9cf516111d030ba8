package service

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/daymark-app/daymark/internal/model"
	"github.com/daymark-app/daymark/internal/repository"
)

type NoteService struct {
	days  *DayService
	notes repository.QuickNoteRepository
}

func NewNoteService(days *DayService, notes repository.QuickNoteRepository) *NoteService {
	return &NoteService{
		days:  days,
		notes: notes,
	}
}

// Save upserts the day's single quick note. Empty content is allowed; the
// client's debounced autosave sends whatever is in the box, including nothing.
func (s *NoteService) Save(userID, date, content string) (*model.QuickNote, error) {
	day, err := s.days.GetOrCreate(userID, date)
	if err != nil {
		return nil, err
	}

	note := &model.QuickNote{
		ID:        uuid.New().String(),
		DayID:     day.ID,
		Content:   content,
		UpdatedAt: time.Now(),
	}

	existing, err := s.notes.ByDay(day.ID)
	if err == nil {
		note.ID = existing.ID
	} else if err != repository.ErrQuickNoteNotFound {
		return nil, err
	}

	err = s.notes.Upsert(note)
	if err != nil {
		return nil, fmt.Errorf("failed to save note: %w", err)
	}

	return note, nil
}
