package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindActiveMembership(t *testing.T) {
	t.Parallel()

	members := []Member{
		{ID: "m-1", UserID: "u-1", Status: StatusLeft},
		{ID: "m-2", UserID: "u-1", Status: StatusActive},
		{ID: "m-3", UserID: "u-2", Status: StatusActive},
	}

	id, ok := FindActiveMembership(members, "u-1")
	require.True(t, ok)
	assert.Equal(t, "m-2", id)

	_, ok = FindActiveMembership(members, "u-3")
	assert.False(t, ok)

	_, ok = FindActiveMembership([]Member{{ID: "m-4", UserID: "u-4", Status: StatusPending}}, "u-4")
	assert.False(t, ok, "pending membership is not active")
}

func TestSortActivityDateDesc(t *testing.T) {
	t.Parallel()

	items := []ActivityItem{
		{ID: "a", LocalDate: "2025-09-01"},
		{ID: "b", LocalDate: "2025-09-10"},
		{ID: "c", LocalDate: "2025-09-05"},
	}

	SortActivityDateDesc(items)

	assert.Equal(t, []string{"b", "c", "a"}, []string{items[0].ID, items[1].ID, items[2].ID})
}

func TestActivityItemDefaults(t *testing.T) {
	t.Parallel()

	binary := ActivityItem{Type: GoalBinary}
	assert.False(t, binary.IsDone())
	assert.Zero(t, binary.Amount())

	done := true
	value := 4.0
	full := ActivityItem{Type: GoalCount, Done: &done, Value: &value}
	assert.True(t, full.IsDone())
	assert.Equal(t, 4.0, full.Amount())
}
