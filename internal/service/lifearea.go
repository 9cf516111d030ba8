package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/daymark-app/daymark/internal/model"
	"github.com/daymark-app/daymark/internal/repository"
)

type LifeAreaService struct {
	areas repository.LifeAreaRepository
}

func NewLifeAreaService(areas repository.LifeAreaRepository) *LifeAreaService {
	return &LifeAreaService{areas: areas}
}

func (s *LifeAreaService) Create(userID, name, color string, position int) (*model.LifeArea, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrTitleRequired
	}

	area := &model.LifeArea{
		ID:        uuid.New().String(),
		UserID:    userID,
		Name:      name,
		Color:     color,
		Position:  position,
		CreatedAt: time.Now(),
	}

	err := s.areas.Create(area)
	if err != nil {
		return nil, fmt.Errorf("failed to create life area: %w", err)
	}

	return area, nil
}

func (s *LifeAreaService) Areas(userID string) ([]*model.LifeArea, error) {
	return s.areas.Areas(userID)
}

func (s *LifeAreaService) Update(userID, areaID, name, color string, position int) (*model.LifeArea, error) {
	area, err := s.areas.ByID(userID, areaID)
	if err != nil {
		return nil, err
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrTitleRequired
	}

	area.Name = name
	area.Color = color
	area.Position = position

	err = s.areas.Update(area)
	if err != nil {
		return nil, err
	}

	return area, nil
}

func (s *LifeAreaService) Delete(userID, areaID string) error {
	return s.areas.Delete(userID, areaID)
}
