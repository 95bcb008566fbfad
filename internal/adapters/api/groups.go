package api

import (
	"context"
	"fmt"
	"net/url"
	"unicode/utf8"

	"huddle/internal/domain"
)

const minGroupNameLen = 3

type GroupScope string

const (
	ScopeMine   GroupScope = "mine"
	ScopePublic GroupScope = "public"
)

func (s GroupScope) Valid() bool {
	return s == ScopeMine || s == ScopePublic
}

func (c *Client) ListGroups(ctx context.Context, scope GroupScope) ([]domain.Group, error) {
	if !scope.Valid() {
		return nil, fmt.Errorf("unknown group scope %q", scope)
	}

	raw, err := c.get(ctx, "/groups?scope="+string(scope), "groups:"+string(scope))
	if err != nil {
		return nil, err
	}

	items, err := decodeList(raw, "group")
	if err != nil {
		return nil, err
	}

	groups := make([]domain.Group, 0, len(items))
	for _, item := range items {
		group, err := decodeGroup(item)
		if err != nil {
			return nil, err
		}
		groups = append(groups, group)
	}

	return groups, nil
}

type CreateGroupInput struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	Visibility  string `json:"visibility"`
}

func (in CreateGroupInput) Validate() error {
	if utf8.RuneCountInString(in.Name) < minGroupNameLen {
		return fmt.Errorf("group name must be at least %d characters", minGroupNameLen)
	}
	if !domain.ValidDate(in.StartDate) {
		return fmt.Errorf("start date %q is not a calendar date", in.StartDate)
	}
	if !domain.ValidDate(in.EndDate) {
		return fmt.Errorf("end date %q is not a calendar date", in.EndDate)
	}
	if !domain.Visibility(in.Visibility).Valid() {
		return fmt.Errorf("unknown visibility %q", in.Visibility)
	}
	return nil
}

func (c *Client) CreateGroup(ctx context.Context, in CreateGroupInput) (domain.Group, error) {
	if err := in.Validate(); err != nil {
		return domain.Group{}, err
	}

	raw, err := c.post(ctx, "/groups", in, "groups:create")
	if err != nil {
		return domain.Group{}, err
	}

	return decodeGroup(raw)
}

func (c *Client) GetGroup(ctx context.Context, groupID string) (domain.Group, error) {
	raw, err := c.get(ctx, "/groups/"+url.PathEscape(groupID), "group:one")
	if err != nil {
		return domain.Group{}, err
	}

	return decodeGroup(raw)
}

func (c *Client) JoinGroup(ctx context.Context, groupID string) error {
	_, err := c.post(ctx, "/groups/"+url.PathEscape(groupID)+"/join", nil, "groups:join")
	return err
}

func (c *Client) LeaveGroup(ctx context.Context, groupID string) error {
	_, err := c.post(ctx, "/groups/"+url.PathEscape(groupID)+"/leave", nil, "groups:leave")
	return err
}

func (c *Client) ListMembers(ctx context.Context, groupID string) ([]domain.Member, error) {
	raw, err := c.get(ctx, "/groups/"+url.PathEscape(groupID)+"/members", "group:members")
	if err != nil {
		return nil, err
	}

	items, err := decodeList(raw, "member")
	if err != nil {
		return nil, err
	}

	members := make([]domain.Member, 0, len(items))
	for _, item := range items {
		member, err := decodeMember(item)
		if err != nil {
			return nil, err
		}
		members = append(members, member)
	}

	return members, nil
}
