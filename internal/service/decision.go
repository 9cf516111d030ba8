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
	ErrInvalidDecisionStatus = errors.New("invalid decision status")
)

type DecisionService struct {
	decisions repository.DecisionRepository
}

func NewDecisionService(decisions repository.DecisionRepository) *DecisionService {
	return &DecisionService{decisions: decisions}
}

func validDecisionStatus(status string) bool {
	switch status {
	case model.DecisionStatusOpen, model.DecisionStatusDecided, model.DecisionStatusReviewed:
		return true
	}
	return false
}

func (s *DecisionService) Create(userID, title, context, choice string) (*model.Decision, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, ErrTitleRequired
	}

	now := time.Now()
	decision := &model.Decision{
		ID:        uuid.New().String(),
		UserID:    userID,
		Title:     title,
		Context:   context,
		Choice:    choice,
		Status:    model.DecisionStatusOpen,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err := s.decisions.Create(decision)
	if err != nil {
		return nil, fmt.Errorf("failed to create decision: %w", err)
	}

	return decision, nil
}

func (s *DecisionService) Decisions(userID, status string) ([]*model.Decision, error) {
	if status != "" && !validDecisionStatus(status) {
		return nil, ErrInvalidDecisionStatus
	}
	return s.decisions.Decisions(userID, status)
}

func (s *DecisionService) Update(userID, decisionID, title, context, choice, outcome, status string) (*model.Decision, error) {
	decision, err := s.decisions.ByID(userID, decisionID)
	if err != nil {
		return nil, err
	}

	title = strings.TrimSpace(title)
	if title == "" {
		return nil, ErrTitleRequired
	}
	if !validDecisionStatus(status) {
		return nil, ErrInvalidDecisionStatus
	}

	// Moving out of "open" stamps the decision time once.
	if decision.Status == model.DecisionStatusOpen && status != model.DecisionStatusOpen && decision.DecidedAt == nil {
		now := time.Now()
		decision.DecidedAt = &now
	}

	decision.Title = title
	decision.Context = context
	decision.Choice = choice
	decision.Outcome = outcome
	decision.Status = status
	decision.UpdatedAt = time.Now()

	err = s.decisions.Update(decision)
	if err != nil {
		return nil, err
	}

	return decision, nil
}

func (s *DecisionService) Delete(userID, decisionID string) error {
	return s.decisions.Delete(userID, decisionID)
}
