package directory_test

import (
	"testing"

	"github.com/Makepad-fr/staff/internal/directory"
	"github.com/Makepad-fr/staff/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readyState(t *testing.T) *directory.State {
	t.Helper()
	s := directory.NewState()
	s.Loaded(sample())
	require.Equal(t, directory.StatusReady, s.Status())
	return s
}

func TestState_InitialLoad(t *testing.T) {
	t.Parallel()

	s := directory.NewState()

	assert.Equal(t, directory.StatusLoading, s.Status())
	assert.True(t, s.Loading())
	assert.False(t, s.BeginLoad(), "first load is already in flight")
}

func TestState_FailureThenReload(t *testing.T) {
	t.Parallel()

	s := directory.NewState()
	s.Failed(assert.AnError)

	assert.Equal(t, directory.StatusError, s.Status())
	assert.ErrorIs(t, s.Err(), assert.AnError)

	require.True(t, s.BeginLoad())
	assert.Equal(t, directory.StatusLoading, s.Status())
	assert.NoError(t, s.Err())
	assert.False(t, s.BeginLoad(), "second reload while in flight must be ignored")

	s.Loaded(nil)
	assert.Equal(t, directory.StatusReady, s.Status())
	assert.Empty(t, s.Visible(), "empty result is not an error")
}

func TestState_ToggleExpandedTwiceReturnsToNone(t *testing.T) {
	t.Parallel()

	s := readyState(t)

	s.ToggleExpanded(2)
	id, ok := s.Expanded()
	require.True(t, ok)
	assert.Equal(t, 2, id)

	s.ToggleExpanded(2)
	_, ok = s.Expanded()
	assert.False(t, ok)
}

func TestState_ExpandingAnotherCardMovesExpansion(t *testing.T) {
	t.Parallel()

	s := readyState(t)
	s.ToggleExpanded(1)
	s.ToggleExpanded(3)

	assert.False(t, s.IsExpanded(1))
	assert.True(t, s.IsExpanded(3))
}

func TestState_ToggleUnknownIDIsIgnored(t *testing.T) {
	t.Parallel()

	s := readyState(t)
	s.ToggleExpanded(99)

	_, ok := s.Expanded()
	assert.False(t, ok)
}

func TestState_Modal(t *testing.T) {
	t.Parallel()

	s := readyState(t)

	assert.False(t, s.OpenModal(42))
	_, open := s.Modal()
	assert.False(t, open)

	require.True(t, s.OpenModal(2))
	e, open := s.Modal()
	require.True(t, open)
	assert.Equal(t, "Bruno Lima", e.Name)

	s.CloseModal()
	_, open = s.Modal()
	assert.False(t, open)
}

func TestState_ReloadPrunesStaleSelections(t *testing.T) {
	t.Parallel()

	s := readyState(t)
	s.ToggleExpanded(1)
	require.True(t, s.OpenModal(4))

	require.True(t, s.BeginLoad())
	s.Loaded([]model.Employee{{ID: 4, Name: "Diego"}})

	_, expanded := s.Expanded()
	assert.False(t, expanded)
	e, open := s.Modal()
	require.True(t, open)
	assert.Equal(t, 4, e.ID)
}

func TestState_VisibleFollowsQuery(t *testing.T) {
	t.Parallel()

	s := readyState(t)
	s.SetQuery("bruno")

	got := s.Visible()
	require.Len(t, got, 1)
	assert.Equal(t, 2, got[0].ID)
	assert.Equal(t, "bruno", s.Query())
}

func TestStatus_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "loading", directory.StatusLoading.String())
	assert.Equal(t, "ready", directory.StatusReady.String())
	assert.Equal(t, "error", directory.StatusError.String())
	assert.Equal(t, "unknown", directory.Status(9).String())
}
