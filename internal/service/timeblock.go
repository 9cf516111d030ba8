package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/daymark-app/daymark/internal/model"
	"github.com/daymark-app/daymark/internal/repository"
)

var (
	ErrInvalidTimeRange = errors.New("time block must end after it starts")
)

const minutesPerDay = 24 * 60

type TimeBlockService struct {
	days   *DayService
	blocks repository.TimeBlockRepository
}

func NewTimeBlockService(days *DayService, blocks repository.TimeBlockRepository) *TimeBlockService {
	return &TimeBlockService{
		days:   days,
		blocks: blocks,
	}
}

func validateBlockRange(startMin, endMin int) error {
	if startMin < 0 || endMin > minutesPerDay || endMin <= startMin {
		return ErrInvalidTimeRange
	}
	return nil
}

func (s *TimeBlockService) Add(userID, date, label string, startMin, endMin int, lifeAreaID *string) (*model.TimeBlock, error) {
	label = strings.TrimSpace(label)
	if label == "" {
		return nil, ErrTitleRequired
	}
	if err := validateBlockRange(startMin, endMin); err != nil {
		return nil, err
	}

	day, err := s.days.GetOrCreate(userID, date)
	if err != nil {
		return nil, err
	}

	block := &model.TimeBlock{
		ID:         uuid.New().String(),
		DayID:      day.ID,
		Label:      label,
		StartMin:   startMin,
		EndMin:     endMin,
		LifeAreaID: lifeAreaID,
		CreatedAt:  time.Now(),
	}

	err = s.blocks.Create(block)
	if err != nil {
		return nil, fmt.Errorf("failed to create time block: %w", err)
	}

	return block, nil
}

func (s *TimeBlockService) Update(userID, blockID, label string, startMin, endMin int, lifeAreaID *string) (*model.TimeBlock, error) {
	block, err := s.blocks.ByID(userID, blockID)
	if err != nil {
		return nil, err
	}

	label = strings.TrimSpace(label)
	if label == "" {
		return nil, ErrTitleRequired
	}
	if err := validateBlockRange(startMin, endMin); err != nil {
		return nil, err
	}

	block.Label = label
	block.StartMin = startMin
	block.EndMin = endMin
	block.LifeAreaID = lifeAreaID

	err = s.blocks.Update(userID, block)
	if err != nil {
		return nil, err
	}

	return block, nil
}

func (s *TimeBlockService) Delete(userID, blockID string) error {
	return s.blocks.Delete(userID, blockID)
}
