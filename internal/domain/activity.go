package domain

import "sort"

// ActivityItem is one row of group activity: a log entry joined with the
// goal and member it belongs to. Value and Done stay optional; a binary
// item without Done counts as not done, a count item without Value as 0.
type ActivityItem struct {
	ID              string
	UserDisplayName string
	GoalTitle       string
	LocalDate       Date
	Type            GoalType
	Value           *float64
	Done            *bool
}

// IsDone resolves the optional Done for display.
func (a ActivityItem) IsDone() bool {
	return a.Done != nil && *a.Done
}

// Amount resolves the optional Value for display.
func (a ActivityItem) Amount() float64 {
	if a.Value == nil {
		return 0
	}
	return *a.Value
}

// SortActivityDateDesc orders newest first. Plain string comparison is
// correct because Date is fixed-width and zero-padded.
func SortActivityDateDesc(items []ActivityItem) {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].LocalDate > items[j].LocalDate
	})
}
