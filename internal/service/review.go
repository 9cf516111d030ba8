package service

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/daymark-app/daymark/internal/model"
	"github.com/daymark-app/daymark/internal/repository"
	"github.com/daymark-app/daymark/internal/settings"
)

type ReviewService struct {
	days       *DayService
	dayRepo    repository.DayRepository
	reviews    repository.DailyReviewRepository
	priorities repository.PriorityRepository
	settings   settings.Provider
	email      *EmailService
}

func NewReviewService(
	days *DayService,
	dayRepo repository.DayRepository,
	reviews repository.DailyReviewRepository,
	priorities repository.PriorityRepository,
	settings settings.Provider,
	email *EmailService,
) *ReviewService {
	return &ReviewService{
		days:       days,
		dayRepo:    dayRepo,
		reviews:    reviews,
		priorities: priorities,
		settings:   settings,
		email:      email,
	}
}

type ReviewInput struct {
	WentWell     string
	NeedsWork    string
	TomorrowNote string
	Complete     bool
}

// Upsert writes the day's single review. Marking it complete for the first
// time stamps CompletedAt and, when configured, sends the evening digest.
func (s *ReviewService) Upsert(userID, userEmail, date string, input ReviewInput) (*model.DailyReview, error) {
	day, err := s.days.GetOrCreate(userID, date)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	review := &model.DailyReview{
		ID:           uuid.New().String(),
		DayID:        day.ID,
		WentWell:     input.WentWell,
		NeedsWork:    input.NeedsWork,
		TomorrowNote: input.TomorrowNote,
		UpdatedAt:    now,
	}

	existing, err := s.reviews.ByDay(day.ID)
	if err == nil {
		review.ID = existing.ID
		review.CompletedAt = existing.CompletedAt
	} else if err != repository.ErrDailyReviewNotFound {
		return nil, err
	}

	firstCompletion := input.Complete && review.CompletedAt == nil
	if firstCompletion {
		review.CompletedAt = &now
	}

	err = s.reviews.Upsert(review)
	if err != nil {
		return nil, fmt.Errorf("failed to save review: %w", err)
	}

	if firstCompletion && s.email != nil && userEmail != "" {
		priorities, perr := s.priorities.ByDay(day.ID)
		if perr != nil {
			slog.Warn("review digest skipped", "error", perr, "user_id", userID, "date", date)
		} else {
			derr := s.email.SendReviewDigest(userEmail, date, priorities, review)
			if derr != nil {
				// Digest delivery never fails the review save.
				slog.Warn("review digest failed", "error", derr, "user_id", userID, "date", date)
			}
		}
	}

	return review, nil
}

// CarryForwardResult reports what happened to each incomplete source item.
// carried + skipped always equals the source day's incomplete count.
type CarryForwardResult struct {
	Carried    int               `json:"carried"`
	Skipped    int               `json:"skipped"`
	Priorities []*model.Priority `json:"priorities"`
}

// CarryForward copies incomplete priorities from fromDate's Day onto toDate's
// Day, in stored position order, bounded by the target day's remaining
// capacity. It is a copy, not a move: source rows are never touched, so the
// original day still shows its open items after the carry.
func (s *ReviewService) CarryForward(userID, fromDate, toDate string) (*CarryForwardResult, error) {
	result := &CarryForwardResult{Priorities: []*model.Priority{}}

	source, err := s.dayRepo.ByUserAndDate(userID, fromDate)
	if err == repository.ErrDayNotFound {
		// Nothing planned that day, nothing to carry.
		return result, nil
	}
	if err != nil {
		return nil, err
	}

	incomplete, err := s.priorities.IncompleteByDay(source.ID)
	if err != nil {
		return nil, err
	}
	if len(incomplete) == 0 {
		return result, nil
	}

	target, err := s.days.GetOrCreate(userID, toDate)
	if err != nil {
		return nil, err
	}

	targetCount, err := s.priorities.CountByDay(target.ID)
	if err != nil {
		return nil, err
	}

	remaining := s.settings.MaxTopPriorities(userID) - targetCount
	if remaining < 0 {
		remaining = 0
	}

	position := targetCount
	for _, src := range incomplete {
		if remaining == 0 {
			result.Skipped++
			continue
		}

		position++
		carried := &model.Priority{
			ID:        uuid.New().String(),
			DayID:     target.ID,
			Title:     src.Title,
			Completed: false,
			Position:  position,
			CreatedAt: time.Now(),
		}

		err = s.priorities.Create(carried)
		if err != nil {
			return nil, fmt.Errorf("failed to carry priority forward: %w", err)
		}

		result.Carried++
		result.Priorities = append(result.Priorities, carried)
		remaining--
	}

	return result, nil
}

// CarryForwardAll runs the carry for every user that planned fromDate.
// Used by the nightly scheduler; per-user failures are logged, not fatal.
func (s *ReviewService) CarryForwardAll(fromDate, toDate string) {
	userIDs, err := s.dayRepo.UserIDsWithDay(fromDate)
	if err != nil {
		slog.Error("auto carry-forward failed to list users", "error", err, "from", fromDate)
		return
	}

	for _, userID := range userIDs {
		result, err := s.CarryForward(userID, fromDate, toDate)
		if err != nil {
			slog.Error("auto carry-forward failed", "error", err, "user_id", userID, "from", fromDate, "to", toDate)
			continue
		}
		if result.Carried > 0 || result.Skipped > 0 {
			slog.Info("auto carry-forward", "user_id", userID, "from", fromDate, "to", toDate,
				"carried", result.Carried, "skipped", result.Skipped)
		}
	}
}
