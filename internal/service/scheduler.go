package service

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/robfig/cron/v3"
)

// SchedulerService runs the nightly auto carry-forward. Opt-in via config;
// when disabled the app never constructs one.
type SchedulerService struct {
	cron    *cron.Cron
	reviews *ReviewService
	loc     *time.Location
}

func NewSchedulerService(reviews *ReviewService, loc *time.Location) *SchedulerService {
	return &SchedulerService{
		cron:    cron.New(cron.WithLocation(loc)),
		reviews: reviews,
		loc:     loc,
	}
}

// ScheduleCarryForward registers the daily job at the given HH:MM local time.
// Each run carries yesterday's open priorities onto today for every user that
// had a planned day.
func (s *SchedulerService) ScheduleCarryForward(at string) error {
	spec, err := dailyCronSpec(at)
	if err != nil {
		return err
	}

	_, err = s.cron.AddFunc(spec, func() {
		today := time.Now().In(s.loc)
		yesterday := today.AddDate(0, 0, -1)
		s.reviews.CarryForwardAll(yesterday.Format("2006-01-02"), today.Format("2006-01-02"))
	})
	if err != nil {
		return err
	}

	slog.Info("auto carry-forward scheduled", "at", at)
	return nil
}

func (s *SchedulerService) Start() {
	s.cron.Start()
}

func (s *SchedulerService) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
}

func dailyCronSpec(at string) (string, error) {
	parts := strings.Split(at, ":")
	if len(parts) != 2 {
		return "", fmt.Errorf("invalid time %q, expected HH:MM", at)
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return "", fmt.Errorf("invalid hour in %q", at)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return "", fmt.Errorf("invalid minute in %q", at)
	}
	return fmt.Sprintf("%d %d * * *", minute, hour), nil
}
