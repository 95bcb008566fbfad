package api

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"huddle/internal/domain"
)

// The server drifts between snake_case and camelCase and between calendar
// dates and full timestamps. Decoding accepts both shapes and normalizes
// to the canonical domain types immediately at the boundary; a missing
// required field is an error, never a silent default.

type groupPayload struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Description  *string `json:"description"`
	StartDate    string  `json:"start_date"`
	EndDate      string  `json:"end_date"`
	StartDateAlt string  `json:"startDate"`
	EndDateAlt   string  `json:"endDate"`
	Visibility   string  `json:"visibility"`
	OwnerID      *string `json:"owner_id"`
}

func decodeGroup(raw json.RawMessage) (domain.Group, error) {
	var p groupPayload
	if err := json.Unmarshal(raw, &p); err != nil {
		return domain.Group{}, fmt.Errorf("decode group: %w", err)
	}

	if err := requireUUID("group id", p.ID); err != nil {
		return domain.Group{}, err
	}
	if p.Name == "" {
		return domain.Group{}, fmt.Errorf("group %s is missing a name", p.ID)
	}

	start := firstNonEmpty(p.StartDate, p.StartDateAlt)
	end := firstNonEmpty(p.EndDate, p.EndDateAlt)
	if start == "" || end == "" {
		return domain.Group{}, fmt.Errorf("group %s is missing start/end date fields", p.ID)
	}

	startDate, err := domain.NormalizeDate(start)
	if err != nil {
		return domain.Group{}, fmt.Errorf("group %s start date: %w", p.ID, err)
	}
	endDate, err := domain.NormalizeDate(end)
	if err != nil {
		return domain.Group{}, fmt.Errorf("group %s end date: %w", p.ID, err)
	}

	visibility := domain.Visibility(p.Visibility)
	if !visibility.Valid() {
		return domain.Group{}, fmt.Errorf("group %s has unknown visibility %q", p.ID, p.Visibility)
	}

	return domain.Group{
		ID:          p.ID,
		Name:        p.Name,
		Description: stringOrEmpty(p.Description),
		StartDate:   startDate,
		EndDate:     endDate,
		Visibility:  visibility,
		OwnerID:     stringOrEmpty(p.OwnerID),
	}, nil
}

type memberPayload struct {
	ID          string  `json:"id"`
	UserID      string  `json:"user_id"`
	DisplayName *string `json:"display_name"`
	Role        string  `json:"role"`
	Status      string  `json:"status"`
	JoinedAt    *string `json:"joined_at"`
}

func decodeMember(raw json.RawMessage) (domain.Member, error) {
	var p memberPayload
	if err := json.Unmarshal(raw, &p); err != nil {
		return domain.Member{}, fmt.Errorf("decode member: %w", err)
	}

	if err := requireUUID("membership id", p.ID); err != nil {
		return domain.Member{}, err
	}
	if err := requireUUID("member user id", p.UserID); err != nil {
		return domain.Member{}, err
	}

	role := domain.MemberRole(p.Role)
	if role != domain.RoleOwner && role != domain.RoleMember {
		return domain.Member{}, fmt.Errorf("member %s has unknown role %q", p.ID, p.Role)
	}

	status := domain.MemberStatus(p.Status)
	switch status {
	case domain.StatusPending, domain.StatusActive, domain.StatusLeft, domain.StatusRemoved:
	default:
		return domain.Member{}, fmt.Errorf("member %s has unknown status %q", p.ID, p.Status)
	}

	member := domain.Member{
		ID:          p.ID,
		UserID:      p.UserID,
		DisplayName: stringOrEmpty(p.DisplayName),
		Role:        role,
		Status:      status,
	}

	if p.JoinedAt != nil && *p.JoinedAt != "" {
		joined, err := domain.NormalizeDate(*p.JoinedAt)
		if err != nil {
			return domain.Member{}, fmt.Errorf("member %s joined_at: %w", p.ID, err)
		}
		member.JoinedAt = joined
	}

	return member, nil
}

type goalPayload struct {
	ID           string   `json:"id"`
	MembershipID string   `json:"membership_id"`
	Title        string   `json:"title"`
	Type         string   `json:"type"`
	Unit         *string  `json:"unit"`
	PerDayTarget *float64 `json:"per_day_target"`
}

func decodeGoal(raw json.RawMessage) (domain.Goal, error) {
	var p goalPayload
	if err := json.Unmarshal(raw, &p); err != nil {
		return domain.Goal{}, fmt.Errorf("decode goal: %w", err)
	}

	if err := requireUUID("goal id", p.ID); err != nil {
		return domain.Goal{}, err
	}
	if err := requireUUID("goal membership id", p.MembershipID); err != nil {
		return domain.Goal{}, err
	}
	if p.Title == "" {
		return domain.Goal{}, fmt.Errorf("goal %s is missing a title", p.ID)
	}

	goalType := domain.GoalType(p.Type)
	if !goalType.Valid() {
		return domain.Goal{}, fmt.Errorf("goal %s has unknown type %q", p.ID, p.Type)
	}

	goal := domain.Goal{
		ID:           p.ID,
		MembershipID: p.MembershipID,
		Title:        p.Title,
		Type:         goalType,
		Unit:         stringOrEmpty(p.Unit),
	}
	if p.PerDayTarget != nil {
		goal.PerDayTarget = int(*p.PerDayTarget)
	}

	return goal, nil
}

type activityPayload struct {
	ID              string   `json:"id"`
	UserDisplayName *string  `json:"user_display_name"`
	GoalTitle       string   `json:"goal_title"`
	LocalDate       string   `json:"local_date"`
	Type            string   `json:"type"`
	Value           *float64 `json:"value"`
	Done            *bool    `json:"done"`
}

func decodeActivityItem(raw json.RawMessage) (domain.ActivityItem, error) {
	var p activityPayload
	if err := json.Unmarshal(raw, &p); err != nil {
		return domain.ActivityItem{}, fmt.Errorf("decode activity item: %w", err)
	}

	if err := requireUUID("activity id", p.ID); err != nil {
		return domain.ActivityItem{}, err
	}
	if p.GoalTitle == "" {
		return domain.ActivityItem{}, fmt.Errorf("activity %s is missing a goal title", p.ID)
	}

	goalType := domain.GoalType(p.Type)
	if !goalType.Valid() {
		return domain.ActivityItem{}, fmt.Errorf("activity %s has unknown type %q", p.ID, p.Type)
	}

	localDate, err := domain.NormalizeDate(p.LocalDate)
	if err != nil {
		return domain.ActivityItem{}, fmt.Errorf("activity %s local date: %w", p.ID, err)
	}

	return domain.ActivityItem{
		ID:              p.ID,
		UserDisplayName: stringOrEmpty(p.UserDisplayName),
		GoalTitle:       p.GoalTitle,
		LocalDate:       localDate,
		Type:            goalType,
		Value:           p.Value,
		Done:            p.Done,
	}, nil
}

type logEntryPayload struct {
	ID        string   `json:"id"`
	GoalID    string   `json:"goal_id"`
	LocalDate string   `json:"local_date"`
	Value     *float64 `json:"value"`
	Done      *bool    `json:"done"`
}

func decodeLogEntry(raw json.RawMessage) (domain.LogEntry, error) {
	var p logEntryPayload
	if err := json.Unmarshal(raw, &p); err != nil {
		return domain.LogEntry{}, fmt.Errorf("decode log entry: %w", err)
	}

	if err := requireUUID("log entry id", p.ID); err != nil {
		return domain.LogEntry{}, err
	}

	localDate, err := domain.NormalizeDate(p.LocalDate)
	if err != nil {
		return domain.LogEntry{}, fmt.Errorf("log entry %s local date: %w", p.ID, err)
	}

	return domain.LogEntry{
		ID:        p.ID,
		GoalID:    p.GoalID,
		LocalDate: localDate,
		Value:     p.Value,
		Done:      p.Done,
	}, nil
}

// decodeList splits a top-level JSON array. Anything that is not a
// sequence fails explicitly instead of mapping to an empty result.
func decodeList(raw json.RawMessage, what string) ([]json.RawMessage, error) {
	if raw == nil {
		return nil, fmt.Errorf("server did not return a %s list", what)
	}

	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("server did not return a %s list: %w", what, err)
	}

	return items, nil
}

func requireUUID(field, value string) error {
	if _, err := uuid.Parse(value); err != nil {
		return fmt.Errorf("%s is not a valid uuid: %q", field, value)
	}
	return nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func stringOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
