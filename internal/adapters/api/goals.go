package api

import (
	"context"
	"fmt"
	"net/url"
	"unicode/utf8"

	"huddle/internal/domain"
)

const minGoalTitleLen = 2

func (c *Client) ListGoals(ctx context.Context, membershipID string) ([]domain.Goal, error) {
	query := url.Values{"membershipId": {membershipID}}
	raw, err := c.get(ctx, "/goals?"+query.Encode(), "goals:list")
	if err != nil {
		return nil, err
	}

	items, err := decodeList(raw, "goal")
	if err != nil {
		return nil, err
	}

	goals := make([]domain.Goal, 0, len(items))
	for _, item := range items {
		goal, err := decodeGoal(item)
		if err != nil {
			return nil, err
		}
		goals = append(goals, goal)
	}

	return goals, nil
}

type CreateGoalInput struct {
	MembershipID string `json:"membership_id"`
	Title        string `json:"title"`
	Type         string `json:"type"`
	Unit         string `json:"unit,omitempty"`
	PerDayTarget int    `json:"per_day_target,omitempty"`
}

func (in CreateGoalInput) Validate() error {
	if utf8.RuneCountInString(in.Title) < minGoalTitleLen {
		return fmt.Errorf("goal title must be at least %d characters", minGoalTitleLen)
	}

	goalType := domain.GoalType(in.Type)
	if !goalType.Valid() {
		return fmt.Errorf("unknown goal type %q", in.Type)
	}

	// A per-day target only makes sense for count goals.
	if in.PerDayTarget < 0 {
		return fmt.Errorf("per-day target must be positive")
	}
	if in.PerDayTarget > 0 && goalType != domain.GoalCount {
		return fmt.Errorf("per-day target is only valid for count goals")
	}

	return nil
}

func (c *Client) CreateGoal(ctx context.Context, in CreateGoalInput) (domain.Goal, error) {
	if err := in.Validate(); err != nil {
		return domain.Goal{}, err
	}

	raw, err := c.post(ctx, "/goals", in, "goals:create")
	if err != nil {
		return domain.Goal{}, err
	}

	return decodeGoal(raw)
}
