package service

import (
	"errors"
	"sort"
	"time"

	"github.com/daymark-app/daymark/internal/model"
	"github.com/daymark-app/daymark/internal/repository"
)

// In-memory repositories backing the service tests. Ownership checks mirror
// the SQL: day-scoped rows resolve their user through the day row.

type fakeDayRepo struct {
	days []*model.Day
}

func (r *fakeDayRepo) Create(day *model.Day) error {
	for _, d := range r.days {
		if d.UserID == day.UserID && d.Date == day.Date {
			return nil // ON CONFLICT DO NOTHING
		}
	}
	copied := *day
	r.days = append(r.days, &copied)
	return nil
}

func (r *fakeDayRepo) ByUserAndDate(userID, date string) (*model.Day, error) {
	for _, d := range r.days {
		if d.UserID == userID && d.Date == date {
			return d, nil
		}
	}
	return nil, repository.ErrDayNotFound
}

func (r *fakeDayRepo) ByID(userID, dayID string) (*model.Day, error) {
	for _, d := range r.days {
		if d.ID == dayID && d.UserID == userID {
			return d, nil
		}
	}
	return nil, repository.ErrDayNotFound
}

func (r *fakeDayRepo) UserIDsWithDay(date string) ([]string, error) {
	var ids []string
	for _, d := range r.days {
		if d.Date == date {
			ids = append(ids, d.UserID)
		}
	}
	sort.Strings(ids)
	return ids, nil
}

func (r *fakeDayRepo) ownerOf(dayID string) string {
	for _, d := range r.days {
		if d.ID == dayID {
			return d.UserID
		}
	}
	return ""
}

type fakePriorityRepo struct {
	days  *fakeDayRepo
	items []*model.Priority
}

func (r *fakePriorityRepo) Create(p *model.Priority) error {
	copied := *p
	r.items = append(r.items, &copied)
	return nil
}

func (r *fakePriorityRepo) ByID(userID, priorityID string) (*model.Priority, error) {
	for _, p := range r.items {
		if p.ID == priorityID && r.days.ownerOf(p.DayID) == userID {
			return p, nil
		}
	}
	return nil, repository.ErrPriorityNotFound
}

func (r *fakePriorityRepo) ByDay(dayID string) ([]*model.Priority, error) {
	var out []*model.Priority
	for _, p := range r.items {
		if p.DayID == dayID {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Position < out[j].Position })
	return out, nil
}

func (r *fakePriorityRepo) IncompleteByDay(dayID string) ([]*model.Priority, error) {
	all, _ := r.ByDay(dayID)
	var out []*model.Priority
	for _, p := range all {
		if !p.Completed {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakePriorityRepo) CountByDay(dayID string) (int, error) {
	count := 0
	for _, p := range r.items {
		if p.DayID == dayID {
			count++
		}
	}
	return count, nil
}

func (r *fakePriorityRepo) Update(userID string, p *model.Priority) error {
	for _, existing := range r.items {
		if existing.ID == p.ID && r.days.ownerOf(existing.DayID) == userID {
			existing.Title = p.Title
			existing.Completed = p.Completed
			return nil
		}
	}
	return repository.ErrPriorityNotFound
}

func (r *fakePriorityRepo) Delete(userID, priorityID string) error {
	for i, p := range r.items {
		if p.ID == priorityID && r.days.ownerOf(p.DayID) == userID {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return repository.ErrPriorityNotFound
}

type fakeTaskRepo struct {
	tasks      []*model.EisenhowerTask
	failDelete bool
}

func (r *fakeTaskRepo) Create(task *model.EisenhowerTask) error {
	copied := *task
	r.tasks = append(r.tasks, &copied)
	return nil
}

func (r *fakeTaskRepo) ByID(userID, taskID string) (*model.EisenhowerTask, error) {
	for _, t := range r.tasks {
		if t.ID == taskID && t.UserID == userID {
			return t, nil
		}
	}
	return nil, repository.ErrEisenhowerTaskNotFound
}

func (r *fakeTaskRepo) Tasks(userID string, quadrant int, lifeAreaID string) ([]*model.EisenhowerTask, error) {
	var out []*model.EisenhowerTask
	for _, t := range r.tasks {
		if t.UserID != userID {
			continue
		}
		if quadrant != 0 && t.Quadrant != quadrant {
			continue
		}
		if lifeAreaID != "" && (t.LifeAreaID == nil || *t.LifeAreaID != lifeAreaID) {
			continue
		}
		out = append(out, t)
	}
	return out, nil
}

func (r *fakeTaskRepo) Update(task *model.EisenhowerTask) error {
	for _, t := range r.tasks {
		if t.ID == task.ID && t.UserID == task.UserID {
			*t = *task
			return nil
		}
	}
	return repository.ErrEisenhowerTaskNotFound
}

func (r *fakeTaskRepo) Delete(userID, taskID string) error {
	if r.failDelete {
		return errors.New("storage failure")
	}
	for i, t := range r.tasks {
		if t.ID == taskID && t.UserID == userID {
			r.tasks = append(r.tasks[:i], r.tasks[i+1:]...)
			return nil
		}
	}
	return repository.ErrEisenhowerTaskNotFound
}

type fakeDiscussionRepo struct {
	days  *fakeDayRepo
	items []*model.DiscussionItem
}

func (r *fakeDiscussionRepo) Create(item *model.DiscussionItem) error {
	copied := *item
	r.items = append(r.items, &copied)
	return nil
}

func (r *fakeDiscussionRepo) ByID(userID, itemID string) (*model.DiscussionItem, error) {
	for _, i := range r.items {
		if i.ID == itemID && r.days.ownerOf(i.DayID) == userID {
			return i, nil
		}
	}
	return nil, repository.ErrDiscussionItemNotFound
}

func (r *fakeDiscussionRepo) ByDay(dayID string) ([]*model.DiscussionItem, error) {
	var out []*model.DiscussionItem
	for _, i := range r.items {
		if i.DayID == dayID {
			out = append(out, i)
		}
	}
	return out, nil
}

func (r *fakeDiscussionRepo) Update(userID string, item *model.DiscussionItem) error {
	for _, i := range r.items {
		if i.ID == item.ID && r.days.ownerOf(i.DayID) == userID {
			*i = *item
			return nil
		}
	}
	return repository.ErrDiscussionItemNotFound
}

func (r *fakeDiscussionRepo) Delete(userID, itemID string) error {
	for idx, i := range r.items {
		if i.ID == itemID && r.days.ownerOf(i.DayID) == userID {
			r.items = append(r.items[:idx], r.items[idx+1:]...)
			return nil
		}
	}
	return repository.ErrDiscussionItemNotFound
}

type fakeBlockRepo struct {
	days   *fakeDayRepo
	blocks []*model.TimeBlock
}

func (r *fakeBlockRepo) Create(block *model.TimeBlock) error {
	copied := *block
	r.blocks = append(r.blocks, &copied)
	return nil
}

func (r *fakeBlockRepo) ByID(userID, blockID string) (*model.TimeBlock, error) {
	for _, b := range r.blocks {
		if b.ID == blockID && r.days.ownerOf(b.DayID) == userID {
			return b, nil
		}
	}
	return nil, repository.ErrTimeBlockNotFound
}

func (r *fakeBlockRepo) ByDay(dayID string) ([]*model.TimeBlock, error) {
	var out []*model.TimeBlock
	for _, b := range r.blocks {
		if b.DayID == dayID {
			out = append(out, b)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartMin < out[j].StartMin })
	return out, nil
}

func (r *fakeBlockRepo) Update(userID string, block *model.TimeBlock) error {
	for _, b := range r.blocks {
		if b.ID == block.ID && r.days.ownerOf(b.DayID) == userID {
			*b = *block
			return nil
		}
	}
	return repository.ErrTimeBlockNotFound
}

func (r *fakeBlockRepo) Delete(userID, blockID string) error {
	for i, b := range r.blocks {
		if b.ID == blockID && r.days.ownerOf(b.DayID) == userID {
			r.blocks = append(r.blocks[:i], r.blocks[i+1:]...)
			return nil
		}
	}
	return repository.ErrTimeBlockNotFound
}

type fakeNoteRepo struct {
	notes map[string]*model.QuickNote // by day id
}

func (r *fakeNoteRepo) ByDay(dayID string) (*model.QuickNote, error) {
	note, ok := r.notes[dayID]
	if !ok {
		return nil, repository.ErrQuickNoteNotFound
	}
	return note, nil
}

func (r *fakeNoteRepo) Upsert(note *model.QuickNote) error {
	if r.notes == nil {
		r.notes = map[string]*model.QuickNote{}
	}
	copied := *note
	if existing, ok := r.notes[note.DayID]; ok {
		copied.ID = existing.ID
	}
	r.notes[note.DayID] = &copied
	return nil
}

type fakeReviewRepo struct {
	reviews map[string]*model.DailyReview // by day id
}

func (r *fakeReviewRepo) ByDay(dayID string) (*model.DailyReview, error) {
	review, ok := r.reviews[dayID]
	if !ok {
		return nil, repository.ErrDailyReviewNotFound
	}
	return review, nil
}

func (r *fakeReviewRepo) Upsert(review *model.DailyReview) error {
	if r.reviews == nil {
		r.reviews = map[string]*model.DailyReview{}
	}
	copied := *review
	r.reviews[review.DayID] = &copied
	return nil
}

type fakeDecisionRepo struct {
	decisions []*model.Decision
}

func (r *fakeDecisionRepo) Create(decision *model.Decision) error {
	copied := *decision
	r.decisions = append(r.decisions, &copied)
	return nil
}

func (r *fakeDecisionRepo) ByID(userID, decisionID string) (*model.Decision, error) {
	for _, d := range r.decisions {
		if d.ID == decisionID && d.UserID == userID {
			copied := *d
			return &copied, nil
		}
	}
	return nil, repository.ErrDecisionNotFound
}

func (r *fakeDecisionRepo) Decisions(userID, status string) ([]*model.Decision, error) {
	var out []*model.Decision
	for _, d := range r.decisions {
		if d.UserID != userID {
			continue
		}
		if status != "" && d.Status != status {
			continue
		}
		out = append(out, d)
	}
	return out, nil
}

func (r *fakeDecisionRepo) Update(decision *model.Decision) error {
	for _, d := range r.decisions {
		if d.ID == decision.ID && d.UserID == decision.UserID {
			*d = *decision
			return nil
		}
	}
	return repository.ErrDecisionNotFound
}

func (r *fakeDecisionRepo) Delete(userID, decisionID string) error {
	for i, d := range r.decisions {
		if d.ID == decisionID && d.UserID == userID {
			r.decisions = append(r.decisions[:i], r.decisions[i+1:]...)
			return nil
		}
	}
	return repository.ErrDecisionNotFound
}

type fakePomodoroRepo struct {
	sessions []*model.PomodoroSession
}

func (r *fakePomodoroRepo) Create(session *model.PomodoroSession) error {
	copied := *session
	r.sessions = append(r.sessions, &copied)
	return nil
}

func (r *fakePomodoroRepo) ByID(userID, sessionID string) (*model.PomodoroSession, error) {
	for _, s := range r.sessions {
		if s.ID == sessionID && s.UserID == userID {
			copied := *s
			return &copied, nil
		}
	}
	return nil, repository.ErrPomodoroSessionNotFound
}

func (r *fakePomodoroRepo) ByDate(userID, date string) ([]*model.PomodoroSession, error) {
	var out []*model.PomodoroSession
	for _, s := range r.sessions {
		if s.UserID == userID && s.Date == date {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *fakePomodoroRepo) Finish(userID, sessionID string, completedAt time.Time, abandoned bool) error {
	for _, s := range r.sessions {
		if s.ID == sessionID && s.UserID == userID && s.CompletedAt == nil {
			at := completedAt
			s.CompletedAt = &at
			s.Abandoned = abandoned
			return nil
		}
	}
	return repository.ErrPomodoroSessionNotFound
}

type fixedSettings struct {
	max int
}

func (s fixedSettings) MaxTopPriorities(userID string) int { return s.max }

// newTestStack wires a DayService over fresh fakes shared by the other
// service constructors in a test.
func newTestStack() (*DayService, *fakeDayRepo, *fakePriorityRepo, *fakeDiscussionRepo, *fakeBlockRepo, *fakeNoteRepo, *fakeReviewRepo) {
	days := &fakeDayRepo{}
	priorities := &fakePriorityRepo{days: days}
	discussions := &fakeDiscussionRepo{days: days}
	blocks := &fakeBlockRepo{days: days}
	notes := &fakeNoteRepo{}
	reviews := &fakeReviewRepo{}
	dayService := NewDayService(days, priorities, discussions, blocks, notes, reviews)
	return dayService, days, priorities, discussions, blocks, notes, reviews
}

func testEmailService() *EmailService {
	return NewEmailService("", "noreply@example.com", "Daymark", true)
}

func mustAddPriority(t interface{ Fatalf(string, ...any) }, priorities *fakePriorityRepo, dayID, title string, position int, completed bool) *model.Priority {
	p := &model.Priority{
		ID:        title + "-id",
		DayID:     dayID,
		Title:     title,
		Completed: completed,
		Position:  position,
		CreatedAt: time.Now(),
	}
	if err := priorities.Create(p); err != nil {
		t.Fatalf("create priority: %v", err)
	}
	return p
}
