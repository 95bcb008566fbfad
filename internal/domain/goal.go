package domain

type GoalType string

const (
	GoalBinary GoalType = "binary"
	GoalCount  GoalType = "count"
)

func (t GoalType) Valid() bool {
	return t == GoalBinary || t == GoalCount
}

type Goal struct {
	ID           string
	MembershipID string
	Title        string
	Type         GoalType
	Unit         string
	PerDayTarget int
}
