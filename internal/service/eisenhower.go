package service

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/daymark-app/daymark/internal/model"
	"github.com/daymark-app/daymark/internal/repository"
)

type EisenhowerService struct {
	tasks      repository.EisenhowerTaskRepository
	days       *DayService
	priorities repository.PriorityRepository
}

func NewEisenhowerService(tasks repository.EisenhowerTaskRepository, days *DayService, priorities repository.PriorityRepository) *EisenhowerService {
	return &EisenhowerService{
		tasks:      tasks,
		days:       days,
		priorities: priorities,
	}
}

func (s *EisenhowerService) Create(userID, title, note string, quadrant int, lifeAreaID *string) (*model.EisenhowerTask, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, ErrTitleRequired
	}

	now := time.Now()
	task := &model.EisenhowerTask{
		ID:         uuid.New().String(),
		UserID:     userID,
		Title:      title,
		Note:       note,
		Quadrant:   model.ClampQuadrant(quadrant),
		LifeAreaID: lifeAreaID,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	err := s.tasks.Create(task)
	if err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	return task, nil
}

func (s *EisenhowerService) ByID(userID, taskID string) (*model.EisenhowerTask, error) {
	return s.tasks.ByID(userID, taskID)
}

func (s *EisenhowerService) Tasks(userID string, quadrant int, lifeAreaID string) ([]*model.EisenhowerTask, error) {
	return s.tasks.Tasks(userID, quadrant, lifeAreaID)
}

func (s *EisenhowerService) Update(userID, taskID, title, note string, quadrant int, lifeAreaID *string) (*model.EisenhowerTask, error) {
	task, err := s.tasks.ByID(userID, taskID)
	if err != nil {
		return nil, err
	}

	title = strings.TrimSpace(title)
	if title == "" {
		return nil, ErrTitleRequired
	}

	task.Title = title
	task.Note = note
	task.Quadrant = model.ClampQuadrant(quadrant)
	task.LifeAreaID = lifeAreaID
	task.UpdatedAt = time.Now()

	err = s.tasks.Update(task)
	if err != nil {
		return nil, err
	}

	return task, nil
}

func (s *EisenhowerService) Delete(userID, taskID string) error {
	return s.tasks.Delete(userID, taskID)
}

// PromoteToDaily converts a matrix task into a priority on the given date's
// Day and destroys the task. The promotion path deliberately skips the
// per-day capacity ceiling: a promoted task always lands, even on a full day.
// Quadrant values are not re-clamped here either; only create/update clamp.
func (s *EisenhowerService) PromoteToDaily(userID, taskID, date string) (*model.Priority, error) {
	task, err := s.tasks.ByID(userID, taskID)
	if err != nil {
		return nil, err
	}

	day, err := s.days.GetOrCreate(userID, date)
	if err != nil {
		return nil, err
	}

	count, err := s.priorities.CountByDay(day.ID)
	if err != nil {
		return nil, err
	}

	priority := &model.Priority{
		ID:        uuid.New().String(),
		DayID:     day.ID,
		Title:     task.Title,
		Completed: false,
		Position:  count + 1,
		CreatedAt: time.Now(),
	}

	err = s.priorities.Create(priority)
	if err != nil {
		return nil, fmt.Errorf("failed to create priority: %w", err)
	}

	err = s.tasks.Delete(userID, taskID)
	if err != nil {
		// Undo the create so a failed promotion leaves no half-promoted pair.
		delErr := s.priorities.Delete(userID, priority.ID)
		if delErr != nil {
			slog.Error("failed to delete priority during promotion rollback", "error", delErr, "priorityID", priority.ID)
		}
		return nil, fmt.Errorf("failed to delete promoted task: %w", err)
	}

	return priority, nil
}
