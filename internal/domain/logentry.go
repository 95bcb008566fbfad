package domain

// LogEntry is one day's record against a goal.
type LogEntry struct {
	ID        string
	GoalID    string
	LocalDate Date
	Value     *float64
	Done      *bool
}
