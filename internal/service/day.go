package service

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/daymark-app/daymark/internal/model"
	"github.com/daymark-app/daymark/internal/repository"
)

type DayService struct {
	days        repository.DayRepository
	priorities  repository.PriorityRepository
	discussions repository.DiscussionItemRepository
	blocks      repository.TimeBlockRepository
	notes       repository.QuickNoteRepository
	reviews     repository.DailyReviewRepository
}

func NewDayService(
	days repository.DayRepository,
	priorities repository.PriorityRepository,
	discussions repository.DiscussionItemRepository,
	blocks repository.TimeBlockRepository,
	notes repository.QuickNoteRepository,
	reviews repository.DailyReviewRepository,
) *DayService {
	return &DayService{
		days:        days,
		priorities:  priorities,
		discussions: discussions,
		blocks:      blocks,
		notes:       notes,
		reviews:     reviews,
	}
}

// DayContents is the dashboard aggregate: the Day row plus all children.
// Note and Review are nil until the user first writes them.
type DayContents struct {
	Day         *model.Day              `json:"day"`
	Priorities  []*model.Priority       `json:"priorities"`
	Discussions []*model.DiscussionItem `json:"discussions"`
	TimeBlocks  []*model.TimeBlock      `json:"timeBlocks"`
	Note        *model.QuickNote        `json:"note,omitempty"`
	Review      *model.DailyReview      `json:"review,omitempty"`
}

// GetOrCreate resolves the single Day row for (userID, date), creating it on
// first access. The days table carries a unique (user_id, date) constraint
// and the insert is ON CONFLICT DO NOTHING, so two racing calls converge on
// the same row; the loser of the insert refetches by key.
func (s *DayService) GetOrCreate(userID, date string) (*model.Day, error) {
	day, err := s.days.ByUserAndDate(userID, date)
	if err == nil {
		return day, nil
	}
	if err != repository.ErrDayNotFound {
		return nil, err
	}

	now := time.Now()
	day = &model.Day{
		ID:        uuid.New().String(),
		UserID:    userID,
		Date:      date,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err = s.days.Create(day)
	if err != nil {
		return nil, fmt.Errorf("failed to create day: %w", err)
	}

	// Refetch so a lost insert race still returns the surviving row.
	return s.days.ByUserAndDate(userID, date)
}

// Dashboard loads the full day aggregate for the given date, lazily creating
// the Day itself.
func (s *DayService) Dashboard(userID, date string) (*DayContents, error) {
	day, err := s.GetOrCreate(userID, date)
	if err != nil {
		return nil, err
	}

	priorities, err := s.priorities.ByDay(day.ID)
	if err != nil {
		return nil, err
	}

	discussions, err := s.discussions.ByDay(day.ID)
	if err != nil {
		return nil, err
	}

	blocks, err := s.blocks.ByDay(day.ID)
	if err != nil {
		return nil, err
	}

	contents := &DayContents{
		Day:         day,
		Priorities:  priorities,
		Discussions: discussions,
		TimeBlocks:  blocks,
	}

	note, err := s.notes.ByDay(day.ID)
	if err == nil {
		contents.Note = note
	} else if err != repository.ErrQuickNoteNotFound {
		return nil, err
	}

	review, err := s.reviews.ByDay(day.ID)
	if err == nil {
		contents.Review = review
	} else if err != repository.ErrDailyReviewNotFound {
		return nil, err
	}

	return contents, nil
}
