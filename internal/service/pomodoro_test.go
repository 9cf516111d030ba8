package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daymark-app/daymark/internal/model"
	"github.com/daymark-app/daymark/internal/repository"
)

func TestPomodoroStart(t *testing.T) {
	service := NewPomodoroService(&fakePomodoroRepo{})

	session, err := service.Start("user-1", "2026-08-29", model.PomodoroKindFocus, "write report", 25)
	require.NoError(t, err)

	assert.Equal(t, model.PomodoroKindFocus, session.Kind)
	assert.Equal(t, 25, session.PlannedMin)
	assert.Nil(t, session.CompletedAt)
	assert.False(t, session.Abandoned)
}

func TestPomodoroStart_Invalid(t *testing.T) {
	service := NewPomodoroService(&fakePomodoroRepo{})

	_, err := service.Start("user-1", "2026-08-29", "nap", "", 25)
	assert.ErrorIs(t, err, ErrInvalidPomodoroKind)

	_, err = service.Start("user-1", "2026-08-29", model.PomodoroKindFocus, "", 0)
	assert.ErrorIs(t, err, ErrInvalidPomodoroLen)

	_, err = service.Start("user-1", "2026-08-29", model.PomodoroKindBreak, "", 181)
	assert.ErrorIs(t, err, ErrInvalidPomodoroLen)
}

func TestPomodoroFinish(t *testing.T) {
	service := NewPomodoroService(&fakePomodoroRepo{})

	session, err := service.Start("user-1", "2026-08-29", model.PomodoroKindFocus, "write report", 25)
	require.NoError(t, err)

	finished, err := service.Finish("user-1", session.ID, false)
	require.NoError(t, err)
	require.NotNil(t, finished.CompletedAt)
	assert.False(t, finished.Abandoned)

	// A closed session stays closed.
	_, err = service.Finish("user-1", session.ID, true)
	assert.ErrorIs(t, err, repository.ErrPomodoroSessionNotFound)
}

func TestPomodoroFinish_Abandoned(t *testing.T) {
	service := NewPomodoroService(&fakePomodoroRepo{})

	session, err := service.Start("user-1", "2026-08-29", model.PomodoroKindBreak, "", 5)
	require.NoError(t, err)

	finished, err := service.Finish("user-1", session.ID, true)
	require.NoError(t, err)
	assert.True(t, finished.Abandoned)
}

func TestPomodoroByDate(t *testing.T) {
	service := NewPomodoroService(&fakePomodoroRepo{})

	_, err := service.Start("user-1", "2026-08-29", model.PomodoroKindFocus, "a", 25)
	require.NoError(t, err)
	_, err = service.Start("user-1", "2026-08-30", model.PomodoroKindFocus, "b", 25)
	require.NoError(t, err)
	_, err = service.Start("user-2", "2026-08-29", model.PomodoroKindFocus, "c", 25)
	require.NoError(t, err)

	sessions, err := service.ByDate("user-1", "2026-08-29")
	require.NoError(t, err)
	require.Len(t, sessions, 1)
	assert.Equal(t, "a", sessions[0].Label)
}
