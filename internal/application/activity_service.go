package application

import (
	"context"
	"fmt"

	"huddle/internal/domain"
	"huddle/internal/ports"
)

// DefaultWindowDays is the activity range shown when the caller gives none.
const DefaultWindowDays = 14

// ActivityClient is the slice of the request gateway the activity service
// needs: the aggregated endpoint plus everything required to rebuild "my
// activity" when the server lacks it.
type ActivityClient interface {
	FetchGroupActivity(ctx context.Context, groupID string, from, to domain.Date) ([]domain.ActivityItem, bool, error)
	ListMembers(ctx context.Context, groupID string) ([]domain.Member, error)
	ListGoals(ctx context.Context, membershipID string) ([]domain.Goal, error)
	ListLogEntries(ctx context.Context, goalID string, from, to domain.Date) ([]domain.LogEntry, error)
}

type ActivityService struct {
	client ActivityClient
	clock  ports.Clock
}

func NewActivityService(client ActivityClient, clock ports.Clock) *ActivityService {
	if clock == nil {
		clock = ports.SystemClock{}
	}

	return &ActivityService{client: client, clock: clock}
}

// DefaultRange is the last DefaultWindowDays days ending today.
func (s *ActivityService) DefaultRange() (domain.Date, domain.Date) {
	return s.RangeEndingToday(DefaultWindowDays)
}

// RangeEndingToday is the last windowDays days ending today; a
// non-positive window falls back to the default.
func (s *ActivityService) RangeEndingToday(windowDays int) (domain.Date, domain.Date) {
	if windowDays <= 0 {
		windowDays = DefaultWindowDays
	}

	to := domain.DateFromTime(s.clock.Now())
	from, err := to.AddDays(-windowDays)
	if err != nil {
		// Today always parses; reaching this means a broken clock.
		return to, to
	}
	return from, to
}

// GroupActivity prefers the server-aggregated feed. When the server says
// the endpoint does not exist, the caller's own activity is reconstructed
// from their goals and log entries over the same range. Every other
// failure from the primary call propagates untouched.
func (s *ActivityService) GroupActivity(ctx context.Context, groupID, userID string, from, to domain.Date) ([]domain.ActivityItem, error) {
	items, ok, err := s.client.FetchGroupActivity(ctx, groupID, from, to)
	if err != nil {
		return nil, err
	}
	if ok {
		return items, nil
	}

	return s.myActivity(ctx, groupID, userID, from, to)
}

func (s *ActivityService) myActivity(ctx context.Context, groupID, userID string, from, to domain.Date) ([]domain.ActivityItem, error) {
	members, err := s.client.ListMembers(ctx, groupID)
	if err != nil {
		return nil, fmt.Errorf("list members for activity fallback: %w", err)
	}

	membershipID, ok := domain.FindActiveMembership(members, userID)
	if !ok {
		return []domain.ActivityItem{}, nil
	}

	goals, err := s.client.ListGoals(ctx, membershipID)
	if err != nil {
		return nil, fmt.Errorf("list goals for activity fallback: %w", err)
	}

	items := make([]domain.ActivityItem, 0, len(goals))
	for _, goal := range goals {
		entries, err := s.client.ListLogEntries(ctx, goal.ID, from, to)
		if err != nil {
			return nil, fmt.Errorf("list log entries for goal %s: %w", goal.ID, err)
		}

		for _, entry := range entries {
			items = append(items, domain.ActivityItem{
				ID:              entry.ID,
				UserDisplayName: "(you)",
				GoalTitle:       goal.Title,
				LocalDate:       entry.LocalDate,
				Type:            goal.Type,
				Value:           entry.Value,
				Done:            entry.Done,
			})
		}
	}

	domain.SortActivityDateDesc(items)
	return items, nil
}
