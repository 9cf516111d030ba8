package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/daymark-app/daymark/internal/model"
	"github.com/daymark-app/daymark/internal/repository"
)

type DiscussionService struct {
	days  *DayService
	items repository.DiscussionItemRepository
}

func NewDiscussionService(days *DayService, items repository.DiscussionItemRepository) *DiscussionService {
	return &DiscussionService{
		days:  days,
		items: items,
	}
}

func (s *DiscussionService) Add(userID, date, person, topic string) (*model.DiscussionItem, error) {
	topic = strings.TrimSpace(topic)
	if topic == "" {
		return nil, ErrTitleRequired
	}

	day, err := s.days.GetOrCreate(userID, date)
	if err != nil {
		return nil, err
	}

	item := &model.DiscussionItem{
		ID:        uuid.New().String(),
		DayID:     day.ID,
		Person:    strings.TrimSpace(person),
		Topic:     topic,
		Done:      false,
		CreatedAt: time.Now(),
	}

	err = s.items.Create(item)
	if err != nil {
		return nil, fmt.Errorf("failed to create discussion item: %w", err)
	}

	return item, nil
}

func (s *DiscussionService) Update(userID, itemID string, person, topic *string, done *bool) (*model.DiscussionItem, error) {
	item, err := s.items.ByID(userID, itemID)
	if err != nil {
		return nil, err
	}

	if person != nil {
		item.Person = strings.TrimSpace(*person)
	}
	if topic != nil {
		trimmed := strings.TrimSpace(*topic)
		if trimmed == "" {
			return nil, ErrTitleRequired
		}
		item.Topic = trimmed
	}
	if done != nil {
		item.Done = *done
	}

	err = s.items.Update(userID, item)
	if err != nil {
		return nil, err
	}

	return item, nil
}

func (s *DiscussionService) Delete(userID, itemID string) error {
	return s.items.Delete(userID, itemID)
}
