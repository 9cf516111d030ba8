package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/daymark-app/daymark/internal/model"
	"github.com/daymark-app/daymark/internal/repository"
	"github.com/daymark-app/daymark/internal/settings"
)

var (
	ErrPriorityLimitReached = errors.New("top priority limit reached for this day")
	ErrTitleRequired        = errors.New("title is required")
)

type PriorityService struct {
	days       *DayService
	priorities repository.PriorityRepository
	settings   settings.Provider
}

func NewPriorityService(days *DayService, priorities repository.PriorityRepository, settings settings.Provider) *PriorityService {
	return &PriorityService{
		days:       days,
		priorities: priorities,
		settings:   settings,
	}
}

// nextPosition is count+1 at creation time, never a persisted counter.
// Deletions leave gaps; no renumbering happens.
func (s *PriorityService) nextPosition(dayID string) (int, error) {
	count, err := s.priorities.CountByDay(dayID)
	if err != nil {
		return 0, err
	}
	return count + 1, nil
}

func (s *PriorityService) canAdd(dayID string, max int) (bool, error) {
	count, err := s.priorities.CountByDay(dayID)
	if err != nil {
		return false, err
	}
	return count < max, nil
}

// Add creates a priority on the given date's Day, enforcing the per-day
// capacity ceiling. The check is advisory application-level read-then-insert,
// not a database constraint.
func (s *PriorityService) Add(userID, date, title string) (*model.Priority, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, ErrTitleRequired
	}

	day, err := s.days.GetOrCreate(userID, date)
	if err != nil {
		return nil, err
	}

	max := s.settings.MaxTopPriorities(userID)
	ok, err := s.canAdd(day.ID, max)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrPriorityLimitReached
	}

	position, err := s.nextPosition(day.ID)
	if err != nil {
		return nil, err
	}

	priority := &model.Priority{
		ID:        uuid.New().String(),
		DayID:     day.ID,
		Title:     title,
		Completed: false,
		Position:  position,
		CreatedAt: time.Now(),
	}

	err = s.priorities.Create(priority)
	if err != nil {
		return nil, fmt.Errorf("failed to create priority: %w", err)
	}

	return priority, nil
}

// Update edits title and/or completed. Nil fields are left unchanged.
func (s *PriorityService) Update(userID, priorityID string, title *string, completed *bool) (*model.Priority, error) {
	priority, err := s.priorities.ByID(userID, priorityID)
	if err != nil {
		return nil, err
	}

	if title != nil {
		trimmed := strings.TrimSpace(*title)
		if trimmed == "" {
			return nil, ErrTitleRequired
		}
		priority.Title = trimmed
	}
	if completed != nil {
		priority.Completed = *completed
	}

	err = s.priorities.Update(userID, priority)
	if err != nil {
		return nil, err
	}

	return priority, nil
}

func (s *PriorityService) Delete(userID, priorityID string) error {
	return s.priorities.Delete(userID, priorityID)
}
