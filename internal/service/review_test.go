package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daymark-app/daymark/internal/model"
)

func newReviewStack(max int) (*ReviewService, *fakeDayRepo, *fakePriorityRepo, *fakeReviewRepo, *DayService) {
	dayService, days, priorities, _, _, _, reviews := newTestStack()
	svc := NewReviewService(dayService, days, reviews, priorities, fixedSettings{max: max}, testEmailService())
	return svc, days, priorities, reviews, dayService
}

func TestCarryForward_NoSourceDay(t *testing.T) {
	svc, _, _, _, _ := newReviewStack(3)

	result, err := svc.CarryForward("user-1", "2026-03-02", "2026-03-03")
	require.NoError(t, err)
	assert.Equal(t, 0, result.Carried)
	assert.Equal(t, 0, result.Skipped)
	assert.Empty(t, result.Priorities)
}

func TestCarryForward_NoIncompleteItems(t *testing.T) {
	svc, _, priorities, _, dayService := newReviewStack(3)

	source, err := dayService.GetOrCreate("user-1", "2026-03-02")
	require.NoError(t, err)
	mustAddPriority(t, priorities, source.ID, "done", 1, true)

	result, err := svc.CarryForward("user-1", "2026-03-02", "2026-03-03")
	require.NoError(t, err)
	assert.Equal(t, 0, result.Carried)
	assert.Equal(t, 0, result.Skipped)
}

func TestCarryForward_CopiesInOrderToEmptyTarget(t *testing.T) {
	svc, _, priorities, _, dayService := newReviewStack(3)

	source, err := dayService.GetOrCreate("user-1", "2026-03-02")
	require.NoError(t, err)
	mustAddPriority(t, priorities, source.ID, "A", 1, false)
	mustAddPriority(t, priorities, source.ID, "B", 2, false)
	mustAddPriority(t, priorities, source.ID, "C", 3, true)

	result, err := svc.CarryForward("user-1", "2026-03-02", "2026-03-03")
	require.NoError(t, err)
	assert.Equal(t, 2, result.Carried)
	assert.Equal(t, 0, result.Skipped)

	target, err := dayService.GetOrCreate("user-1", "2026-03-03")
	require.NoError(t, err)
	onTarget, err := priorities.ByDay(target.ID)
	require.NoError(t, err)
	require.Len(t, onTarget, 2)
	assert.Equal(t, "A", onTarget[0].Title)
	assert.Equal(t, "B", onTarget[1].Title)
	assert.Equal(t, 1, onTarget[0].Position)
	assert.Equal(t, 2, onTarget[1].Position)
	assert.False(t, onTarget[0].Completed)
}

func TestCarryForward_LowerOrderWinsRemainingSlot(t *testing.T) {
	svc, _, priorities, _, dayService := newReviewStack(3)

	source, err := dayService.GetOrCreate("user-1", "2026-03-02")
	require.NoError(t, err)
	mustAddPriority(t, priorities, source.ID, "first", 1, false)
	mustAddPriority(t, priorities, source.ID, "second", 2, false)

	target, err := dayService.GetOrCreate("user-1", "2026-03-03")
	require.NoError(t, err)
	mustAddPriority(t, priorities, target.ID, "x", 1, false)
	mustAddPriority(t, priorities, target.ID, "y", 2, false)

	result, err := svc.CarryForward("user-1", "2026-03-02", "2026-03-03")
	require.NoError(t, err)
	assert.Equal(t, 1, result.Carried)
	assert.Equal(t, 1, result.Skipped)
	require.Len(t, result.Priorities, 1)
	assert.Equal(t, "first", result.Priorities[0].Title)
	assert.Equal(t, 3, result.Priorities[0].Position)
}

func TestCarryForward_TargetAlreadyFull(t *testing.T) {
	svc, _, priorities, _, dayService := newReviewStack(3)

	source, err := dayService.GetOrCreate("user-1", "2026-03-02")
	require.NoError(t, err)
	mustAddPriority(t, priorities, source.ID, "A", 1, false)
	mustAddPriority(t, priorities, source.ID, "B", 2, false)

	target, err := dayService.GetOrCreate("user-1", "2026-03-03")
	require.NoError(t, err)
	mustAddPriority(t, priorities, target.ID, "x", 1, false)
	mustAddPriority(t, priorities, target.ID, "y", 2, false)
	mustAddPriority(t, priorities, target.ID, "z", 3, false)

	result, err := svc.CarryForward("user-1", "2026-03-02", "2026-03-03")
	require.NoError(t, err)
	assert.Equal(t, 0, result.Carried)
	assert.Equal(t, 2, result.Skipped)
}

func TestCarryForward_TargetOverCapacityClampsAtZero(t *testing.T) {
	// 4 priorities on a max-3 day can happen via promotion; remaining
	// capacity must clamp at zero, not go negative.
	svc, _, priorities, _, dayService := newReviewStack(3)

	source, err := dayService.GetOrCreate("user-1", "2026-03-02")
	require.NoError(t, err)
	mustAddPriority(t, priorities, source.ID, "A", 1, false)

	target, err := dayService.GetOrCreate("user-1", "2026-03-03")
	require.NoError(t, err)
	for i, title := range []string{"w", "x", "y", "z"} {
		mustAddPriority(t, priorities, target.ID, title, i+1, false)
	}

	result, err := svc.CarryForward("user-1", "2026-03-02", "2026-03-03")
	require.NoError(t, err)
	assert.Equal(t, 0, result.Carried)
	assert.Equal(t, 1, result.Skipped)
}

func TestCarryForward_SourceDayUntouched(t *testing.T) {
	svc, _, priorities, _, dayService := newReviewStack(3)

	source, err := dayService.GetOrCreate("user-1", "2026-03-02")
	require.NoError(t, err)
	a := mustAddPriority(t, priorities, source.ID, "A", 1, false)
	b := mustAddPriority(t, priorities, source.ID, "B", 2, true)

	before := map[string]model.Priority{a.ID: *a, b.ID: *b}

	_, err = svc.CarryForward("user-1", "2026-03-02", "2026-03-03")
	require.NoError(t, err)

	after, err := priorities.ByDay(source.ID)
	require.NoError(t, err)
	require.Len(t, after, 2)
	for _, p := range after {
		want, ok := before[p.ID]
		require.True(t, ok, "source priority set changed")
		assert.Equal(t, want.Title, p.Title)
		assert.Equal(t, want.Completed, p.Completed)
		assert.Equal(t, want.Position, p.Position)
	}
}

func TestCarryForward_CarriedPlusSkippedEqualsIncomplete(t *testing.T) {
	for _, existing := range []int{0, 1, 2, 3} {
		svc, _, priorities, _, dayService := newReviewStack(3)

		source, err := dayService.GetOrCreate("user-1", "2026-03-02")
		require.NoError(t, err)
		incomplete := 3
		for i := 0; i < incomplete; i++ {
			mustAddPriority(t, priorities, source.ID, string(rune('a'+i)), i+1, false)
		}

		target, err := dayService.GetOrCreate("user-1", "2026-03-03")
		require.NoError(t, err)
		for i := 0; i < existing; i++ {
			mustAddPriority(t, priorities, target.ID, string(rune('x'+i)), i+1, false)
		}

		result, err := svc.CarryForward("user-1", "2026-03-02", "2026-03-03")
		require.NoError(t, err)
		assert.Equal(t, incomplete, result.Carried+result.Skipped, "existing=%d", existing)
	}
}

func TestReviewUpsert_StampsCompletionOnce(t *testing.T) {
	svc, _, _, reviews, _ := newReviewStack(3)

	review, err := svc.Upsert("user-1", "", "2026-03-02", ReviewInput{WentWell: "shipped"})
	require.NoError(t, err)
	assert.Nil(t, review.CompletedAt)

	review, err = svc.Upsert("user-1", "", "2026-03-02", ReviewInput{WentWell: "shipped", Complete: true})
	require.NoError(t, err)
	require.NotNil(t, review.CompletedAt)
	firstStamp := *review.CompletedAt

	// Later edits keep the original completion time and the same row.
	again, err := svc.Upsert("user-1", "", "2026-03-02", ReviewInput{WentWell: "shipped more", Complete: true})
	require.NoError(t, err)
	assert.Equal(t, review.ID, again.ID)
	require.NotNil(t, again.CompletedAt)
	assert.Equal(t, firstStamp, *again.CompletedAt)
	assert.Len(t, reviews.reviews, 1)
}

func TestCarryForwardAll_RunsPerPlannedUser(t *testing.T) {
	svc, _, priorities, _, dayService := newReviewStack(3)

	for _, user := range []string{"user-1", "user-2"} {
		day, err := dayService.GetOrCreate(user, "2026-03-02")
		require.NoError(t, err)
		mustAddPriority(t, priorities, day.ID, user+"-open", 1, false)
	}

	svc.CarryForwardAll("2026-03-02", "2026-03-03")

	for _, user := range []string{"user-1", "user-2"} {
		target, err := dayService.GetOrCreate(user, "2026-03-03")
		require.NoError(t, err)
		onTarget, err := priorities.ByDay(target.ID)
		require.NoError(t, err)
		require.Len(t, onTarget, 1)
		assert.Equal(t, user+"-open", onTarget[0].Title)
	}
}
