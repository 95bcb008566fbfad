package cmd

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchSpinnerShowsLabelUntilSettled(t *testing.T) {
	t.Parallel()

	model := newFetchSpinner("Fetching activity...", func() tea.Msg { return nil })
	assert.Contains(t, model.View(), "Fetching activity...")

	updated, cmd := model.Update(fetchSettledMsg{})
	settled, ok := updated.(fetchSpinner)
	require.True(t, ok)
	assert.Empty(t, settled.View())
	require.NotNil(t, cmd, "settling quits the program")
}

func TestFetchSpinnerForwardsFetchError(t *testing.T) {
	t.Parallel()

	fetchErr := errors.New("connection refused")
	model := newFetchSpinner("Fetching activity...", func() tea.Msg { return nil })

	updated, _ := model.Update(fetchSettledMsg{err: fetchErr})
	settled, ok := updated.(fetchSpinner)
	require.True(t, ok)
	assert.ErrorIs(t, settled.err, fetchErr)
}
