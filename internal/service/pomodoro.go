package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/daymark-app/daymark/internal/model"
	"github.com/daymark-app/daymark/internal/repository"
)

var (
	ErrInvalidPomodoroKind = errors.New("pomodoro kind must be focus or break")
	ErrInvalidPomodoroLen  = errors.New("pomodoro length must be between 1 and 180 minutes")
)

type PomodoroService struct {
	sessions repository.PomodoroSessionRepository
}

func NewPomodoroService(sessions repository.PomodoroSessionRepository) *PomodoroService {
	return &PomodoroService{sessions: sessions}
}

func (s *PomodoroService) Start(userID, date, kind, label string, plannedMin int) (*model.PomodoroSession, error) {
	if kind != model.PomodoroKindFocus && kind != model.PomodoroKindBreak {
		return nil, ErrInvalidPomodoroKind
	}
	if plannedMin < 1 || plannedMin > 180 {
		return nil, ErrInvalidPomodoroLen
	}

	session := &model.PomodoroSession{
		ID:         uuid.New().String(),
		UserID:     userID,
		Date:       date,
		Kind:       kind,
		Label:      label,
		PlannedMin: plannedMin,
		StartedAt:  time.Now(),
	}

	err := s.sessions.Create(session)
	if err != nil {
		return nil, fmt.Errorf("failed to start pomodoro: %w", err)
	}

	return session, nil
}

// Finish closes an open session. abandoned marks timers stopped early.
// Finishing an already-finished session is NotFound, keeping retries honest.
func (s *PomodoroService) Finish(userID, sessionID string, abandoned bool) (*model.PomodoroSession, error) {
	err := s.sessions.Finish(userID, sessionID, time.Now(), abandoned)
	if err != nil {
		return nil, err
	}

	return s.sessions.ByID(userID, sessionID)
}

func (s *PomodoroService) ByDate(userID, date string) ([]*model.PomodoroSession, error) {
	return s.sessions.ByDate(userID, date)
}
