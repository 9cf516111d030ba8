package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPriorityService_Add_AssignsSequentialPositions(t *testing.T) {
	dayService, _, priorities, _, _, _, _ := newTestStack()
	svc := NewPriorityService(dayService, priorities, fixedSettings{max: 3})

	for i, title := range []string{"first", "second", "third"} {
		p, err := svc.Add("user-1", "2026-03-02", title)
		require.NoError(t, err)
		assert.Equal(t, i+1, p.Position)
		assert.False(t, p.Completed)
	}
}

func TestPriorityService_Add_EnforcesCapacity(t *testing.T) {
	dayService, _, priorities, _, _, _, _ := newTestStack()
	svc := NewPriorityService(dayService, priorities, fixedSettings{max: 3})

	for _, title := range []string{"a", "b", "c"} {
		_, err := svc.Add("user-1", "2026-03-02", title)
		require.NoError(t, err)
	}

	_, err := svc.Add("user-1", "2026-03-02", "d")
	assert.ErrorIs(t, err, ErrPriorityLimitReached)

	// A different day has its own capacity.
	_, err = svc.Add("user-1", "2026-03-03", "d")
	assert.NoError(t, err)
}

func TestPriorityService_Add_RequiresTitle(t *testing.T) {
	dayService, _, priorities, _, _, _, _ := newTestStack()
	svc := NewPriorityService(dayService, priorities, fixedSettings{max: 3})

	_, err := svc.Add("user-1", "2026-03-02", "   ")
	assert.ErrorIs(t, err, ErrTitleRequired)
}

func TestPriorityService_DeleteLeavesGaps(t *testing.T) {
	dayService, _, priorities, _, _, _, _ := newTestStack()
	svc := NewPriorityService(dayService, priorities, fixedSettings{max: 3})

	a, err := svc.Add("user-1", "2026-03-02", "a")
	require.NoError(t, err)
	b, err := svc.Add("user-1", "2026-03-02", "b")
	require.NoError(t, err)

	require.NoError(t, svc.Delete("user-1", a.ID))

	// No renumbering: the survivor keeps position 2.
	remaining, err := priorities.ByDay(b.DayID)
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, 2, remaining[0].Position)
}

func TestPriorityService_Update_PartialFields(t *testing.T) {
	dayService, _, priorities, _, _, _, _ := newTestStack()
	svc := NewPriorityService(dayService, priorities, fixedSettings{max: 3})

	p, err := svc.Add("user-1", "2026-03-02", "write report")
	require.NoError(t, err)

	done := true
	updated, err := svc.Update("user-1", p.ID, nil, &done)
	require.NoError(t, err)
	assert.True(t, updated.Completed)
	assert.Equal(t, "write report", updated.Title)

	newTitle := "ship report"
	updated, err = svc.Update("user-1", p.ID, &newTitle, nil)
	require.NoError(t, err)
	assert.Equal(t, "ship report", updated.Title)
	assert.True(t, updated.Completed, "completed untouched when nil")
}

func TestPriorityService_CrossUserAccessFails(t *testing.T) {
	dayService, _, priorities, _, _, _, _ := newTestStack()
	svc := NewPriorityService(dayService, priorities, fixedSettings{max: 3})

	p, err := svc.Add("user-1", "2026-03-02", "secret")
	require.NoError(t, err)

	done := true
	_, err = svc.Update("user-2", p.ID, nil, &done)
	assert.Error(t, err)

	err = svc.Delete("user-2", p.ID)
	assert.Error(t, err)
}
